package submitad

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"detransport-ads-bot/internal/stories/submissions"
)

// MockBotApi - мок Telegram Bot API
type MockBotApi struct {
	SentMessages []tgbotapi.Chattable
}

func (m *MockBotApi) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	m.SentMessages = append(m.SentMessages, c)
	return tgbotapi.Message{MessageID: len(m.SentMessages)}, nil
}

func (m *MockBotApi) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	return &tgbotapi.APIResponse{Ok: true}, nil
}

// LastText возвращает текст последнего отправленного сообщения.
func (m *MockBotApi) LastText() string {
	for i := len(m.SentMessages) - 1; i >= 0; i-- {
		if msg, ok := m.SentMessages[i].(tgbotapi.MessageConfig); ok {
			return msg.Text
		}
	}
	return ""
}

// MockSubmissionService - мок сервиса заявок
type MockSubmissionService struct {
	NextID    int64
	Created   []submissions.Submission
	Proofs    map[int64]string
	CreateErr error
	AttachErr error
}

func (m *MockSubmissionService) Create(ctx context.Context, sub submissions.Submission) (*submissions.Submission, error) {
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}

	m.NextID++
	sub.ID = m.NextID
	sub.ModerationStatus = submissions.ModerationPending
	sub.PaymentStatus = submissions.PaymentUnpaid
	m.Created = append(m.Created, sub)

	created := sub
	return &created, nil
}

func (m *MockSubmissionService) AttachPaymentProof(ctx context.Context, id int64, proofURL string) error {
	if m.AttachErr != nil {
		return m.AttachErr
	}
	if m.Proofs == nil {
		m.Proofs = make(map[int64]string)
	}
	m.Proofs[id] = proofURL
	return nil
}

// MockFileResolver - мок файлового хоста Telegram
type MockFileResolver struct {
	Err error
}

func (m *MockFileResolver) FileDirectURL(fileID string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return fmt.Sprintf("https://api.telegram.org/file/bot123/%s", fileID), nil
}
