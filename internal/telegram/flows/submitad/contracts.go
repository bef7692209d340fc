package submitad

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"detransport-ads-bot/internal/stories/submissions"
	"detransport-ads-bot/internal/stories/tariffs"
	"detransport-ads-bot/internal/telegram/flows"
	"detransport-ads-bot/internal/telegram/states"
)

type botApi interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type stateManager interface {
	GetState(userID int64) states.State
	SetState(userID int64, state states.State, data any)
	Clear(userID int64)
	GetSubmitAdData(userID int64) (*flows.SubmitAdFlowData, error)
}

type tariffService interface {
	List() []tariffs.Tariff
	ByCallbackData(data string) *tariffs.Tariff
}

type submissionService interface {
	Create(ctx context.Context, sub submissions.Submission) (*submissions.Submission, error)
	AttachPaymentProof(ctx context.Context, id int64, proofURL string) error
}

// fileResolver превращает file_id вложения во внешнюю ссылку.
type fileResolver interface {
	FileDirectURL(fileID string) (string, error)
}
