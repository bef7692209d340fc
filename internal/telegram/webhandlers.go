package telegram

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"detransport-ads-bot/internal/stories/submissions"
)

type publishedLister interface {
	ListPublished(ctx context.Context) ([]*submissions.Submission, error)
}

type adItem struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	MediaURL    string `json:"mediaUrl"`
	LinkURL     string `json:"linkUrl"`
	ContactInfo string `json:"contactInfo"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
}

// AdsAPIHandler отдает активные заявки для внешней витрины. Единственный
// публичный read endpoint. При ошибке хранилища наружу уходит только общий
// 500, детали остаются в логах.
func AdsAPIHandler(service publishedLister, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		requestID := uuid.NewString()

		published, err := service.ListPublished(r.Context())
		if err != nil {
			logger.Error("Failed to list published submissions",
				slog.String("request_id", requestID),
				slog.Any("error", err))
			http.Error(w, `{"error":"Server error"}`, http.StatusInternalServerError)
			return
		}

		items := make([]adItem, 0, len(published))
		for _, sub := range published {
			item := adItem{
				ID:          sub.ID,
				Title:       sub.Title,
				Description: sub.Description,
				MediaURL:    sub.MediaURL,
				LinkURL:     sub.LinkURL,
				ContactInfo: sub.ContactInfo,
			}
			if sub.StartDate != nil {
				item.StartDate = sub.StartDate.Format("2006-01-02")
			}
			if sub.EndDate != nil {
				item.EndDate = sub.EndDate.Format("2006-01-02")
			}
			items = append(items, item)
		}

		logger.Debug("Served published ads",
			slog.String("request_id", requestID),
			slog.Int("count", len(items)))

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		if err := json.NewEncoder(w).Encode(items); err != nil {
			logger.Error("Failed to encode response",
				slog.String("request_id", requestID),
				slog.Any("error", err))
		}
	}
}

// WithCORS пропускает кросс-доменные запросы только с доменов из списка.
// Origin сравнивается на точное совпадение.
func WithCORS(next http.Handler, allowedOrigins []string) http.Handler {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = struct{}{}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if _, ok := allowed[origin]; ok {
			w.Header().Set("Access-Control-Allow-Origin", origin)
		}

		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
