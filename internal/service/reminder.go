package service

import (
	"context"
	"fmt"
	"time"

	"wordrace/internal/domain"
	"wordrace/internal/repository"

	"go.uber.org/zap"
)

// Notifier delivers a reminder message to a user.
type Notifier interface {
	Notify(userID int64, message string) error
}

// ReminderService manages study reminders and drives their delivery
type ReminderService struct {
	reminderRepo repository.ReminderRepository
	notifier     Notifier
	logger       *zap.Logger

	now          func() time.Time
	pollInterval time.Duration
}

// NewReminderService creates a new reminder service
func NewReminderService(
	reminderRepo repository.ReminderRepository,
	notifier Notifier,
	logger *zap.Logger,
) *ReminderService {
	return &ReminderService{
		reminderRepo: reminderRepo,
		notifier:     notifier,
		logger:       logger,
		now:          time.Now,
		pollInterval: 30 * time.Second,
	}
}

// Create validates and stores a new reminder
func (s *ReminderService) Create(userID int64, hour, minute int, repeatDays string) (*domain.Reminder, error) {
	if hour < 0 || hour > 23 {
		return nil, fmt.Errorf("hour must be 0-23, got %d", hour)
	}
	if minute < 0 || minute > 59 {
		return nil, fmt.Errorf("minute must be 0-59, got %d", minute)
	}
	if repeatDays == "" {
		repeatDays = "0000000"
	}
	if len(repeatDays) != 7 {
		return nil, fmt.Errorf("repeat mask must have 7 days, got %q", repeatDays)
	}
	for _, c := range repeatDays {
		if c != '0' && c != '1' {
			return nil, fmt.Errorf("repeat mask must contain only 0 and 1, got %q", repeatDays)
		}
	}

	rem := &domain.Reminder{
		UserID:     userID,
		Hour:       hour,
		Minute:     minute,
		RepeatDays: repeatDays,
		Enabled:    true,
	}
	if err := s.reminderRepo.Save(rem); err != nil {
		return nil, err
	}

	s.logger.Info("reminder created",
		zap.Int64("user_id", userID),
		zap.Int("reminder_id", rem.ID),
		zap.String("schedule", rem.DisplayString()),
	)
	return rem, nil
}

// List returns the user's reminders
func (s *ReminderService) List(userID int64) ([]domain.Reminder, error) {
	return s.reminderRepo.ListByUser(userID)
}

// Delete removes a reminder, cancelling its future triggers
func (s *ReminderService) Delete(id int, userID int64) error {
	return s.reminderRepo.Delete(id, userID)
}

// SetEnabled toggles a reminder on or off
func (s *ReminderService) SetEnabled(id int, userID int64, enabled bool) error {
	return s.reminderRepo.SetEnabled(id, userID, enabled)
}

// Run polls for due reminders until the context is cancelled. Each delivery
// recomputes the reminder's next fire instant, so schedules self-advance
// without any stored timer state.
func (s *ReminderService) Run(ctx context.Context) {
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	last := s.now()
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("reminder scheduler stopped")
			return
		case <-ticker.C:
			now := s.now()
			s.deliverDue(last, now)
			last = now
		}
	}
}

// deliverDue fires every enabled reminder whose next trigger after `from`
// has arrived by `to`. One-time reminders are disabled after delivery.
func (s *ReminderService) deliverDue(from, to time.Time) {
	reminders, err := s.reminderRepo.ListEnabled()
	if err != nil {
		s.logger.Error("failed to list reminders", zap.Error(err))
		return
	}

	for _, rem := range reminders {
		fire := rem.NextFire(from)
		if fire.After(to) {
			continue
		}

		if err := s.notifier.Notify(rem.UserID, "⏰ Time to practice your words! Ready for a race?"); err != nil {
			s.logger.Error("failed to deliver reminder",
				zap.Int("reminder_id", rem.ID),
				zap.Int64("user_id", rem.UserID),
				zap.Error(err),
			)
			continue
		}

		s.logger.Info("reminder delivered",
			zap.Int("reminder_id", rem.ID),
			zap.Int64("user_id", rem.UserID),
		)

		if !rem.Repeats() {
			if err := s.reminderRepo.SetEnabled(rem.ID, rem.UserID, false); err != nil {
				s.logger.Error("failed to disable one-time reminder",
					zap.Int("reminder_id", rem.ID),
					zap.Error(err),
				)
			}
		}
	}
}
