package handler

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"wordrace/internal/domain"
	"wordrace/internal/race"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const (
	progressBarWidth  = 8
	raceRefreshPeriod = time.Second
	tilesPerRow       = 4
)

// handleRaceStart creates a fresh race session and starts rendering it.
func (h *Handler) handleRaceStart(c tele.Context) error {
	userID := c.Sender().ID

	// Only one race per user; starting over abandons the old one.
	h.teardownSession(userID)

	engine, err := h.raceService.NewSession(userID)
	if err != nil {
		h.logger.Error("Failed to prepare race session",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return c.Respond(&tele.CallbackResponse{Text: "Couldn't start the race, try again later"})
	}

	text, markup := raceView(engine.Snapshot())
	msg, err := h.bot.Send(c.Sender(), text, markup)
	if err != nil {
		h.logger.Error("Failed to send race message", zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "Couldn't start the race, try again later"})
	}

	if err := engine.Start(); err != nil {
		h.logger.Error("Failed to start race engine", zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "Couldn't start the race, try again later"})
	}

	ctx, cancel := context.WithCancel(context.Background())
	h.putSession(userID, &raceSession{engine: engine, msg: msg, cancel: cancel})
	h.SetState(userID, &domain.StateData{State: domain.StateRacing})

	go h.renderLoop(ctx, engine, msg)

	h.logger.Info("Race started", zap.Int64("user_id", userID))
	return c.Respond(&tele.CallbackResponse{Text: "🏁 And they're off!"})
}

// renderLoop periodically redraws the race message until the race finishes
// or the session is torn down.
func (h *Handler) renderLoop(ctx context.Context, engine *race.Engine, msg *tele.Message) {
	ticker := time.NewTicker(raceRefreshPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			snap := engine.Snapshot()
			h.editRaceMessage(msg, snap)
			if snap.State == race.StateFinished {
				return
			}
		}
	}
}

func (h *Handler) editRaceMessage(msg *tele.Message, snap race.Snapshot) {
	text, markup := raceView(snap)
	if _, err := h.bot.Edit(msg, text, markup); err != nil {
		// Concurrent edits of an unchanged board are expected noise.
		if strings.Contains(err.Error(), "message is not modified") {
			return
		}
		h.logger.Warn("Failed to edit race message", zap.Error(err))
	}
}

// handleTile appends a rack tile to the player's selection.
func (h *Handler) handleTile(c tele.Context, data string) error {
	userID := c.Sender().ID
	s := h.getSession(userID)
	if s == nil {
		return c.Respond(&tele.CallbackResponse{Text: "No race in progress"})
	}

	index, err := strconv.Atoi(strings.TrimSpace(data))
	if err != nil {
		h.logger.Warn("Bad tile index in callback", zap.String("data", data))
		return c.Respond()
	}

	if err := s.engine.SelectTile(index); err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "That tile is already picked"})
	}

	h.editRaceMessage(s.msg, s.engine.Snapshot())
	return c.Respond()
}

// handleRaceSubmit validates the assembled word and reports the outcome.
func (h *Handler) handleRaceSubmit(c tele.Context) error {
	userID := c.Sender().ID
	s := h.getSession(userID)
	if s == nil {
		return c.Respond(&tele.CallbackResponse{Text: "No race in progress"})
	}

	res := s.engine.Submit()
	h.editRaceMessage(s.msg, s.engine.Snapshot())

	h.logger.Info("Word submitted",
		zap.Int64("user_id", userID),
		zap.String("word", res.Word),
		zap.String("status", string(res.Status)),
	)

	return c.Respond(&tele.CallbackResponse{Text: submitFeedback(res)})
}

func (h *Handler) handleRaceShuffle(c tele.Context) error {
	s := h.getSession(c.Sender().ID)
	if s == nil {
		return c.Respond(&tele.CallbackResponse{Text: "No race in progress"})
	}
	s.engine.Shuffle()
	h.editRaceMessage(s.msg, s.engine.Snapshot())
	return c.Respond()
}

func (h *Handler) handleRaceClear(c tele.Context) error {
	s := h.getSession(c.Sender().ID)
	if s == nil {
		return c.Respond(&tele.CallbackResponse{Text: "No race in progress"})
	}
	s.engine.ClearSelection()
	h.editRaceMessage(s.msg, s.engine.Snapshot())
	return c.Respond()
}

// handleRaceAgain restarts a finished race with the same tier and vocabulary.
func (h *Handler) handleRaceAgain(c tele.Context) error {
	userID := c.Sender().ID
	s := h.getSession(userID)
	if s == nil {
		// Session already gone, start from scratch.
		return h.handleRaceStart(c)
	}

	if err := s.engine.Restart(); err != nil {
		h.logger.Error("Failed to restart race", zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "Couldn't restart, try /start"})
	}

	// The previous render loop exited when the race finished.
	s.cancel()
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	go h.renderLoop(ctx, s.engine, s.msg)

	h.editRaceMessage(s.msg, s.engine.Snapshot())
	return c.Respond(&tele.CallbackResponse{Text: "🏁 And they're off!"})
}

// handleRaceQuit abandons the race and returns to the main menu.
func (h *Handler) handleRaceQuit(c tele.Context) error {
	userID := c.Sender().ID
	h.teardownSession(userID)
	h.ResetState(userID)

	h.logger.Info("Race abandoned", zap.Int64("user_id", userID))

	if err := c.Edit("🏠 Main menu\n\nSend me an English word to save it, or pick an action:", mainMenuMarkup()); err != nil {
		return c.Send("🏠 Main menu", mainMenuMarkup())
	}
	return c.Respond()
}

func (h *Handler) getSession(userID int64) *raceSession {
	h.sessionMux.Lock()
	defer h.sessionMux.Unlock()
	return h.sessions[userID]
}

func (h *Handler) putSession(userID int64, s *raceSession) {
	h.sessionMux.Lock()
	defer h.sessionMux.Unlock()
	h.sessions[userID] = s
}

// teardownSession stops the user's engine and render loop, if any.
func (h *Handler) teardownSession(userID int64) {
	h.sessionMux.Lock()
	s := h.sessions[userID]
	delete(h.sessions, userID)
	h.sessionMux.Unlock()

	if s != nil {
		s.cancel()
		s.engine.Stop()
	}
}

// raceView renders a snapshot into message text and keyboard.
func raceView(snap race.Snapshot) (string, *tele.ReplyMarkup) {
	var b strings.Builder

	if snap.State == race.StateFinished {
		b.WriteString("🏁 Race finished!\n\n")
		if snap.Winner != nil && snap.Winner.IsPlayer {
			b.WriteString("🎉 You won!\n")
		} else if snap.Winner != nil {
			fmt.Fprintf(&b, "😿 Rival %d won this time.\n", snap.Winner.Opponent+1)
		}
		fmt.Fprintf(&b, "⭐ Final score: %d", snap.Score)
		return b.String(), finishedMarkup()
	}

	b.WriteString("🏇 Build words to spur your horse!\n\n")
	fmt.Fprintf(&b, "🏇 You      %s\n", progressBar(snap.PlayerProgress))
	for i, p := range snap.OpponentProgress {
		fmt.Fprintf(&b, "🐴 Rival %d  %s\n", i+1, progressBar(p))
	}
	fmt.Fprintf(&b, "\n⭐ Score: %d\n", snap.Score)
	fmt.Fprintf(&b, "✍️ Word: %s", strings.ToUpper(snap.Word))

	return b.String(), rackMarkup(snap)
}

// progressBar renders a [0,1] fraction as a fixed-width bar with a percentage.
func progressBar(fraction float64) string {
	filled := int(fraction * float64(progressBarWidth))
	if filled > progressBarWidth {
		filled = progressBarWidth
	}
	return strings.Repeat("▰", filled) +
		strings.Repeat("▱", progressBarWidth-filled) +
		fmt.Sprintf(" %d%%", int(fraction*100))
}

// rackMarkup lays out the letter tiles plus the action buttons.
func rackMarkup(snap race.Snapshot) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}

	selected := make(map[int]bool, len(snap.Selection))
	for _, idx := range snap.Selection {
		selected[idx] = true
	}

	var rows []tele.Row
	var row tele.Row
	for i, letter := range snap.Rack {
		label := strings.ToUpper(string(letter))
		if selected[i] {
			label = "·"
		}
		row = append(row, markup.Data(label, "tile", strconv.Itoa(i)))
		if len(row) == tilesPerRow {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	rows = append(rows, markup.Row(
		markup.Data("✅ Send", "race_submit"),
		markup.Data("🔀 Shuffle", "race_shuffle"),
		markup.Data("🧹 Clear", "race_clear"),
	))
	rows = append(rows, markup.Row(markup.Data("🚪 Quit race", "race_quit")))

	markup.Inline(rows...)
	return markup
}

func finishedMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(markup.Data("🔄 Race again", "race_again")),
		markup.Row(btnMainMenu),
	)
	return markup
}

// submitFeedback maps a submit result to a short toast message.
func submitFeedback(res race.SubmitResult) string {
	switch res.Status {
	case race.StatusAccepted:
		return fmt.Sprintf("✅ %s! +%d points", strings.ToUpper(res.Word), res.ScoreDelta)
	case race.StatusTooShort:
		return "Pick at least 2 letters"
	case race.StatusTooLong:
		return "Too long for this round"
	case race.StatusInvalidWord:
		if res.Suggestion != "" {
			return fmt.Sprintf("🤔 Not a word you know. Did you mean %s?", strings.ToUpper(res.Suggestion))
		}
		return "🤔 Not a word you know"
	case race.StatusDuplicateWord:
		return "Already used, try another one"
	default:
		return ""
	}
}
