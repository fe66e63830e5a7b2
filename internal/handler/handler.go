package handler

import (
	"context"
	"sync"

	"wordrace/internal/domain"
	"wordrace/internal/race"
	"wordrace/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot             *tele.Bot
	authService     *service.AuthService
	vocabService    *service.VocabService
	raceService     *service.RaceService
	reminderService *service.ReminderService
	logger          *zap.Logger

	// User states (in-memory state machine)
	states   map[int64]*domain.StateData
	stateMux sync.RWMutex

	// Active race sessions, one per user
	sessions   map[int64]*raceSession
	sessionMux sync.Mutex
}

// raceSession ties a running engine to the message it is rendered in.
type raceSession struct {
	engine *race.Engine
	msg    *tele.Message
	cancel context.CancelFunc
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	authService *service.AuthService,
	vocabService *service.VocabService,
	raceService *service.RaceService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:          bot,
		authService:  authService,
		vocabService: vocabService,
		raceService:  raceService,
		logger:       logger,
		states:       make(map[int64]*domain.StateData),
		sessions:     make(map[int64]*raceSession),
	}
}

// SetReminderService wires the reminder service after construction. The
// handler is itself the service's notifier, so neither can be built first.
func (h *Handler) SetReminderService(s *service.ReminderService) {
	h.reminderService = s
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnRace, h.handleRaceStart)
	h.bot.Handle(&btnRandomPair, h.handleRandomPair)
	h.bot.Handle(&btnReminders, h.handleReminders)
	h.bot.Handle(&btnAddReminder, h.handleAddReminder)
	h.bot.Handle(&btnCancel, h.handleCancel)
	h.bot.Handle(&btnMore, h.handleRandomPair)
	h.bot.Handle(&btnMainMenu, h.handleStart)

	// Generic callback handler for dynamic data
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// Notify implements service.Notifier: reminder deliveries go out as plain
// bot messages.
func (h *Handler) Notify(userID int64, message string) error {
	_, err := h.bot.Send(tele.ChatID(userID), message)
	return err
}

// GetState returns user's current state
func (h *Handler) GetState(userID int64) *domain.StateData {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	state, exists := h.states[userID]
	if !exists {
		return &domain.StateData{State: domain.StateIdle}
	}
	return state
}

// SetState sets user's state
func (h *Handler) SetState(userID int64, state *domain.StateData) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	h.states[userID] = state
}

// ResetState resets user to idle state
func (h *Handler) ResetState(userID int64) {
	h.SetState(userID, &domain.StateData{State: domain.StateIdle})
}

// Shutdown tears down every active race session so no tick outlives the bot.
func (h *Handler) Shutdown() {
	h.sessionMux.Lock()
	defer h.sessionMux.Unlock()
	for userID, s := range h.sessions {
		s.cancel()
		s.engine.Stop()
		delete(h.sessions, userID)
	}
}

// Inline keyboard buttons
var (
	btnRace = tele.Btn{
		Unique: "race",
		Text:   "🏇 Word race",
	}
	btnRandomPair = tele.Btn{
		Unique: "random_pair",
		Text:   "🎲 Random pair",
	}
	btnReminders = tele.Btn{
		Unique: "reminders",
		Text:   "⏰ Reminders",
	}
	btnAddReminder = tele.Btn{
		Unique: "add_reminder",
		Text:   "➕ Add reminder",
	}
	btnCancel = tele.Btn{
		Unique: "cancel",
		Text:   "❌ Cancel",
	}
	btnMore = tele.Btn{
		Unique: "more",
		Text:   "🔄 More",
	}
	btnMainMenu = tele.Btn{
		Unique: "main_menu",
		Text:   "🏠 Main menu",
	}
)

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnRace),
		menu.Row(btnRandomPair),
		menu.Row(btnReminders),
	)
	return menu
}
