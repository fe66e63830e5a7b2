package handler

import (
	"strings"

	"wordrace/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText handles all text messages based on state
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	// Ensure user exists
	if err := h.authService.EnsureUserExists(userID); err != nil {
		h.logger.Error("Failed to ensure user exists", zap.Error(err))
		return nil
	}

	// Check authorization first
	authorized, err := h.authService.IsAuthorized(userID)
	if err != nil {
		h.logger.Error("Failed to check authorization", zap.Error(err))
		return c.Send("Something went wrong. Please try again later.")
	}

	// If not authorized, check password
	if !authorized {
		if h.authService.CheckPassword(text) {
			// Correct password
			if err := h.authService.AuthorizeUser(userID); err != nil {
				h.logger.Error("Failed to authorize user", zap.Error(err))
				return c.Send("Something went wrong. Please try again later.")
			}

			h.logger.Info("User authorized", zap.Int64("user_id", userID))
			h.ResetState(userID)
			return c.Send(
				"✅ You're in!\n\n🏠 Main menu\n\nSend me an English word to save it, or pick an action:",
				mainMenuMarkup(),
			)
		}

		// Wrong password
		return c.Send("Nope, that's not it.")
	}

	// User is authorized, handle based on state
	state := h.GetState(userID)

	switch state.State {
	case domain.StateWaitingTranslation:
		// User sent translation, save the pair
		word := state.CurrentWord
		translation := text

		if err := h.vocabService.SaveWordPair(userID, word, translation); err != nil {
			h.logger.Error("Failed to save word pair",
				zap.Error(err),
				zap.Int64("user_id", userID),
			)
			return c.Send("Couldn't save the word. Please try again.")
		}

		h.logger.Info("Word pair saved",
			zap.Int64("user_id", userID),
			zap.String("word", word),
			zap.String("translation", translation),
		)

		// Reset to waiting for next word
		h.SetState(userID, &domain.StateData{State: domain.StateWaitingWord})

		return c.Send("✅ Saved!\n\nSend another word, or go back with /start")

	case domain.StateWaitingReminder:
		// User sent a reminder time like "20:00 1111111"
		return h.handleReminderInput(c, text)

	case domain.StateRacing:
		return c.Send("Use the letter buttons on the race board 🏇")

	default:
		// Idle or waiting for a word - start word input flow
		cancelMarkup := &tele.ReplyMarkup{}
		cancelMarkup.Inline(cancelMarkup.Row(btnCancel))

		h.SetState(userID, &domain.StateData{
			State:       domain.StateWaitingTranslation,
			CurrentWord: text,
		})

		return c.Send("Now send the translation", cancelMarkup)
	}
}
