package submissions

import (
	"context"
	"time"

	"github.com/samber/lo"
)

const (
	pendingPageSize   = 50
	publishedPageSize = 100
)

// Service provides business logic for the submission moderation lifecycle
type Service struct {
	storage Storage
	now     func() time.Time
}

// NewService creates a new submission service
func NewService(storage Storage, now func() time.Time) *Service {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &Service{
		storage: storage,
		now:     now,
	}
}

// Create сохраняет собранную в диалоге заявку. Статусы всегда стартовые,
// что бы ни пришло в sub.
func (s *Service) Create(ctx context.Context, sub Submission) (*Submission, error) {
	sub.ModerationStatus = ModerationPending
	sub.PaymentStatus = PaymentUnpaid
	sub.PaymentProofURL = nil
	sub.StartDate = nil
	sub.EndDate = nil

	return s.storage.CreateSubmission(ctx, sub)
}

// AttachPaymentProof привязывает к заявке ссылку на квитанцию и переводит
// оплату в waiting_review. Отсутствующая заявка не считается ошибкой.
func (s *Service) AttachPaymentProof(ctx context.Context, id int64, proofURL string) error {
	_, err := s.storage.UpdateSubmission(ctx, GetCriteria{ID: lo.ToPtr(id)}, UpdateParams{
		PaymentProofURL: lo.ToPtr(proofURL),
		PaymentStatus:   lo.ToPtr(PaymentWaitingReview),
	})
	return err
}

// ListPending возвращает заявки, ожидающие модерации, новые первыми.
func (s *Service) ListPending(ctx context.Context) ([]*Submission, error) {
	return s.storage.ListSubmissions(ctx, ListCriteria{
		ModerationStatus: lo.ToPtr(ModerationPending),
		Limit:            pendingPageSize,
	})
}

// Approve активирует заявку: оплата считается принятой, окно показа
// отсчитывается от сегодняшнего дня. Повторный Approve пересчитывает окно
// заново от текущей даты. Возвращает nil если заявки нет.
func (s *Service) Approve(ctx context.Context, id int64) (*Submission, error) {
	sub, err := s.storage.GetSubmission(ctx, GetCriteria{ID: lo.ToPtr(id)})
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, nil
	}

	start := day(s.now())
	end := start.AddDate(0, 0, sub.TariffDays)

	return s.storage.UpdateSubmission(ctx, GetCriteria{ID: lo.ToPtr(id)}, UpdateParams{
		ModerationStatus: lo.ToPtr(ModerationActive),
		PaymentStatus:    lo.ToPtr(PaymentPaid),
		StartDate:        lo.ToPtr(start),
		EndDate:          lo.ToPtr(end),
	})
}

// Disable снимает заявку с показа. Даты не трогаются. Возвращает nil если
// заявки нет.
func (s *Service) Disable(ctx context.Context, id int64) (*Submission, error) {
	sub, err := s.storage.GetSubmission(ctx, GetCriteria{ID: lo.ToPtr(id)})
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, nil
	}

	return s.storage.UpdateSubmission(ctx, GetCriteria{ID: lo.ToPtr(id)}, UpdateParams{
		ModerationStatus: lo.ToPtr(ModerationDisabled),
	})
}

// ListPublished возвращает активные заявки, чье окно показа накрывает
// сегодняшний день. Единственная выборка для публичного API.
func (s *Service) ListPublished(ctx context.Context) ([]*Submission, error) {
	return s.storage.ListSubmissions(ctx, ListCriteria{
		ModerationStatus: lo.ToPtr(ModerationActive),
		ActiveOn:         lo.ToPtr(day(s.now())),
		Limit:            publishedPageSize,
	})
}

// day обрезает время до полуночи UTC, окна показа считаются по дням.
func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
