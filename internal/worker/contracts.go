package worker

import (
	"context"

	"detransport-ads-bot/internal/stories/submissions"
)

type (
	// Storage provides database operations for workers
	Storage interface {
		ListSubmissions(ctx context.Context, criteria submissions.ListCriteria) ([]*submissions.Submission, error)
	}

	// TelegramBot provides Telegram API operations
	TelegramBot interface {
		SendMessage(chatID int64, text string) error
	}

	// Localizer provides translated notification texts
	Localizer interface {
		Get(lang, key string, params map[string]interface{}) string
	}
)
