package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/samber/lo"

	"detransport-ads-bot/internal/stories/submissions"
)

const pendingPageSize = 50

// Service шлет админу ежедневные уведомления: сколько заявок ждет модерации
// и у каких активных размещений закончилось окно показа. Воркеры только
// уведомляют, статусы заявок они не трогают.
type Service struct {
	storage     Storage
	telegramBot TelegramBot
	localizer   Localizer
	adminChatID int64
	logger      *slog.Logger
	cron        *cron.Cron
	now         func() time.Time
}

func NewService(storage Storage, telegramBot TelegramBot, localizer Localizer, adminChatID int64, logger *slog.Logger) *Service {
	return &Service{
		storage:     storage,
		telegramBot: telegramBot,
		localizer:   localizer,
		adminChatID: adminChatID,
		logger:      logger,
		cron:        cron.New(),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Start starts the cron workers
func (s *Service) Start() error {
	if s.adminChatID == 0 {
		s.logger.Warn("Admin chat ID is not configured, workers disabled")
		return nil
	}

	s.logger.Info("Starting worker service")

	// Pending reminder: runs daily at 09:00
	_, err := s.cron.AddFunc("0 9 * * *", func() {
		ctx := context.Background()
		s.logger.Info("Running pending reminder worker")
		if err := s.runPendingReminder(ctx); err != nil {
			s.logger.Error("Pending reminder worker failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to add pending reminder worker: %w", err)
	}

	// Expiration notifier: runs daily at 10:00
	_, err = s.cron.AddFunc("0 10 * * *", func() {
		ctx := context.Background()
		s.logger.Info("Running expiration notifier worker")
		if err := s.runExpirationNotifier(ctx); err != nil {
			s.logger.Error("Expiration notifier worker failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to add expiration notifier worker: %w", err)
	}

	s.cron.Start()
	return nil
}

// Stop stops the cron workers
func (s *Service) Stop() {
	s.logger.Info("Stopping worker service")
	s.cron.Stop()
}

func (s *Service) runPendingReminder(ctx context.Context) error {
	pending, err := s.storage.ListSubmissions(ctx, submissions.ListCriteria{
		ModerationStatus: lo.ToPtr(submissions.ModerationPending),
		Limit:            pendingPageSize,
	})
	if err != nil {
		return fmt.Errorf("list pending submissions: %w", err)
	}

	if len(pending) == 0 {
		return nil
	}

	text := s.localizer.Get("uk", "worker.pending_reminder", map[string]interface{}{
		"count": len(pending),
	})

	return s.telegramBot.SendMessage(s.adminChatID, text)
}

func (s *Service) runExpirationNotifier(ctx context.Context) error {
	active, err := s.storage.ListSubmissions(ctx, submissions.ListCriteria{
		ModerationStatus: lo.ToPtr(submissions.ModerationActive),
	})
	if err != nil {
		return fmt.Errorf("list active submissions: %w", err)
	}

	today := day(s.now())
	yesterday := today.AddDate(0, 0, -1)

	for _, sub := range active {
		if sub.EndDate == nil {
			continue
		}

		// Шлем ровно одно уведомление: в последний день показа и на
		// следующий день после окончания.
		var key string
		switch {
		case sub.EndDate.Equal(today):
			key = "worker.expiring_today"
		case sub.EndDate.Equal(yesterday):
			key = "worker.expired"
		default:
			continue
		}

		text := s.localizer.Get("uk", key, map[string]interface{}{
			"id":    sub.ID,
			"title": sub.Title,
			"date":  sub.EndDate.Format("02.01.2006"),
		})

		if err := s.telegramBot.SendMessage(s.adminChatID, text); err != nil {
			s.logger.Error("Failed to notify admin",
				"submission_id", sub.ID, "error", err)
		}
	}

	return nil
}

func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
