package handler

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"wordrace/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleReminders shows the user's reminders with delete/toggle buttons.
func (h *Handler) handleReminders(c tele.Context) error {
	userID := c.Sender().ID

	reminders, err := h.reminderService.List(userID)
	if err != nil {
		h.logger.Error("Failed to list reminders", zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "Couldn't load reminders"})
	}

	markup := &tele.ReplyMarkup{}
	var rows []tele.Row
	for _, rem := range reminders {
		status := "🔔"
		if !rem.Enabled {
			status = "🔕"
		}
		id := strconv.Itoa(rem.ID)
		rows = append(rows, markup.Row(
			markup.Data(status+" "+rem.DisplayString(), "rem_toggle", id),
			markup.Data("🗑", "rem_del", id),
		))
	}
	rows = append(rows,
		markup.Row(btnAddReminder),
		markup.Row(btnMainMenu),
	)
	markup.Inline(rows...)

	text := "⏰ Your study reminders:"
	if len(reminders) == 0 {
		text = "⏰ No reminders yet. Add one and I'll ping you to practice!"
	}

	if err := c.Edit(text, markup); err != nil {
		return c.Send(text, markup)
	}
	return c.Respond()
}

// handleAddReminder asks for a reminder time and repeat days.
func (h *Handler) handleAddReminder(c tele.Context) error {
	userID := c.Sender().ID

	cancelMarkup := &tele.ReplyMarkup{}
	cancelMarkup.Inline(cancelMarkup.Row(btnCancel))

	h.SetState(userID, &domain.StateData{State: domain.StateWaitingReminder})

	return c.Send(
		"Send a time and repeat days, Monday to Sunday.\n\n"+
			"Examples:\n"+
			"20:00 1111111 — every day at 20:00\n"+
			"08:30 1111100 — weekdays at 08:30\n"+
			"19:15 — one time at 19:15",
		cancelMarkup,
	)
}

// handleReminderInput parses "HH:MM [1111111]" sent by the user.
func (h *Handler) handleReminderInput(c tele.Context, text string) error {
	userID := c.Sender().ID

	fields := strings.Fields(text)
	if len(fields) == 0 {
		return c.Send("Send a time like 20:00, optionally followed by repeat days.")
	}

	hour, minute, err := parseClock(fields[0])
	if err != nil {
		return c.Send("I couldn't read that time. Use HH:MM, like 20:00.")
	}

	repeatDays := ""
	if len(fields) > 1 {
		repeatDays = fields[1]
	}

	rem, err := h.reminderService.Create(userID, hour, minute, repeatDays)
	if err != nil {
		h.logger.Warn("Failed to create reminder",
			zap.Int64("user_id", userID),
			zap.String("input", text),
			zap.Error(err),
		)
		return c.Send("That doesn't look right. Use HH:MM and seven 0/1 digits for the days.")
	}

	h.ResetState(userID)

	next := rem.NextFire(time.Now())
	return c.Send(
		fmt.Sprintf("✅ Reminder set: %s\nNext one: %s",
			rem.DisplayString(),
			next.Format("Mon 15:04"),
		),
		mainMenuMarkup(),
	)
}

// handleReminderDelete removes a reminder.
func (h *Handler) handleReminderDelete(c tele.Context, data string) error {
	userID := c.Sender().ID

	id, err := strconv.Atoi(strings.TrimSpace(data))
	if err != nil {
		h.logger.Warn("Bad reminder id in callback", zap.String("data", data))
		return c.Respond()
	}

	if err := h.reminderService.Delete(id, userID); err != nil {
		h.logger.Error("Failed to delete reminder", zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "Couldn't delete the reminder"})
	}

	return h.handleReminders(c)
}

// handleReminderToggle flips a reminder between on and off.
func (h *Handler) handleReminderToggle(c tele.Context, data string) error {
	userID := c.Sender().ID

	id, err := strconv.Atoi(strings.TrimSpace(data))
	if err != nil {
		h.logger.Warn("Bad reminder id in callback", zap.String("data", data))
		return c.Respond()
	}

	reminders, err := h.reminderService.List(userID)
	if err != nil {
		h.logger.Error("Failed to list reminders", zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "Couldn't update the reminder"})
	}

	for _, rem := range reminders {
		if rem.ID == id {
			if err := h.reminderService.SetEnabled(id, userID, !rem.Enabled); err != nil {
				h.logger.Error("Failed to toggle reminder", zap.Error(err))
				return c.Respond(&tele.CallbackResponse{Text: "Couldn't update the reminder"})
			}
			break
		}
	}

	return h.handleReminders(c)
}

// parseClock parses HH:MM into hour and minute.
func parseClock(s string) (int, int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected HH:MM, got %q", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("bad hour in %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("bad minute in %q", s)
	}
	return hour, minute, nil
}
