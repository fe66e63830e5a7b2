package handler

import (
	"fmt"
	"strings"
	"unicode"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleCallback handles ALL callback queries
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	// Clean data from all non-printable characters
	data := cleanCallbackData(callback.Data)
	h.logger.Debug("handleCallback: Processing callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
		zap.Int64("user_id", c.Sender().ID),
	)

	// Handle specific button callbacks by Unique first
	switch callback.Unique {
	case "race":
		return h.handleRaceStart(c)
	case "race_submit":
		return h.handleRaceSubmit(c)
	case "race_shuffle":
		return h.handleRaceShuffle(c)
	case "race_clear":
		return h.handleRaceClear(c)
	case "race_again":
		return h.handleRaceAgain(c)
	case "race_quit":
		return h.handleRaceQuit(c)
	case "tile":
		return h.handleTile(c, data)
	case "rem_del":
		return h.handleReminderDelete(c, data)
	case "rem_toggle":
		return h.handleReminderToggle(c, data)
	case "reminders":
		return h.handleReminders(c)
	case "add_reminder":
		return h.handleAddReminder(c)
	case "random_pair", "more":
		return h.handleRandomPair(c)
	case "cancel":
		return h.handleCancel(c)
	case "main_menu":
		return h.handleStart(c)
	}

	// If it's not handled, acknowledge it anyway
	h.logger.Warn("Unhandled callback in handleCallback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}

// handleRandomPair shows a random saved word for practice
func (h *Handler) handleRandomPair(c tele.Context) error {
	userID := c.Sender().ID

	word, err := h.vocabService.GetRandomPair(userID)
	if err != nil {
		h.logger.Error("Failed to get random pair", zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "Couldn't load a word"})
	}

	if word == nil {
		return c.Respond(&tele.CallbackResponse{
			Text:      "You haven't saved any words yet",
			ShowAlert: true,
		})
	}

	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(btnMore),
		markup.Row(btnMainMenu),
	)

	text := fmt.Sprintf("🎲 %s — %s", word.Word, word.Translation)
	if err := c.Edit(text, markup); err != nil {
		return c.Send(text, markup)
	}
	return c.Respond()
}

// handleCancel aborts the current input flow
func (h *Handler) handleCancel(c tele.Context) error {
	userID := c.Sender().ID
	h.ResetState(userID)

	if err := c.Edit("🏠 Main menu\n\nSend me an English word to save it, or pick an action:", mainMenuMarkup()); err != nil {
		return c.Send("🏠 Main menu", mainMenuMarkup())
	}
	return c.Respond()
}
