package submissions

import (
	"context"
	"errors"
	"testing"
	"time"
)

// mockStorage держит заявки в памяти и записывает критерии последнего листинга
type mockStorage struct {
	subs   map[int64]*Submission
	nextID int64

	lastListCriteria ListCriteria

	createErr error
	getErr    error
	updateErr error
}

func newMockStorage() *mockStorage {
	return &mockStorage{subs: make(map[int64]*Submission)}
}

func (m *mockStorage) CreateSubmission(ctx context.Context, sub Submission) (*Submission, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.nextID++
	sub.ID = m.nextID
	m.subs[sub.ID] = &sub

	created := sub
	return &created, nil
}

func (m *mockStorage) GetSubmission(ctx context.Context, criteria GetCriteria) (*Submission, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if criteria.ID == nil {
		return nil, nil
	}
	sub, ok := m.subs[*criteria.ID]
	if !ok {
		return nil, nil
	}
	copied := *sub
	return &copied, nil
}

func (m *mockStorage) UpdateSubmission(ctx context.Context, criteria GetCriteria, params UpdateParams) (*Submission, error) {
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	sub, ok := m.subs[*criteria.ID]
	if !ok {
		// Строки нет, апдейт ничего не меняет
		return nil, nil
	}
	if params.ModerationStatus != nil {
		sub.ModerationStatus = *params.ModerationStatus
	}
	if params.PaymentStatus != nil {
		sub.PaymentStatus = *params.PaymentStatus
	}
	if params.PaymentProofURL != nil {
		sub.PaymentProofURL = params.PaymentProofURL
	}
	if params.StartDate != nil {
		sub.StartDate = params.StartDate
	}
	if params.EndDate != nil {
		sub.EndDate = params.EndDate
	}
	copied := *sub
	return &copied, nil
}

func (m *mockStorage) ListSubmissions(ctx context.Context, criteria ListCriteria) ([]*Submission, error) {
	m.lastListCriteria = criteria
	return nil, nil
}

func fixedNow(t *testing.T, value string) func() time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02 15:04:05", value)
	if err != nil {
		t.Fatalf("bad fixture time %q: %v", value, err)
	}
	return func() time.Time { return parsed.UTC() }
}

func TestServiceCreateForcesInitialStatuses(t *testing.T) {
	storage := newMockStorage()
	svc := NewService(storage, nil)

	proof := "https://files.example/fake"
	now := time.Now()
	created, err := svc.Create(context.Background(), Submission{
		TgUserID:         42,
		Title:            "Sale",
		TariffDays:       7,
		PriceUAH:         620,
		ModerationStatus: ModerationActive,
		PaymentStatus:    PaymentPaid,
		PaymentProofURL:  &proof,
		StartDate:        &now,
		EndDate:          &now,
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	if created.ID != 1 {
		t.Errorf("ID = %d, want 1", created.ID)
	}
	if created.ModerationStatus != ModerationPending {
		t.Errorf("ModerationStatus = %s, want pending", created.ModerationStatus)
	}
	if created.PaymentStatus != PaymentUnpaid {
		t.Errorf("PaymentStatus = %s, want unpaid", created.PaymentStatus)
	}
	if created.PaymentProofURL != nil || created.StartDate != nil || created.EndDate != nil {
		t.Errorf("proof/dates not reset: %+v", created)
	}
}

func TestServiceApprove(t *testing.T) {
	storage := newMockStorage()
	svc := NewService(storage, fixedNow(t, "2024-01-10 15:30:00"))

	created, err := svc.Create(context.Background(), Submission{TgUserID: 42, TariffDays: 7})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	approved, err := svc.Approve(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Approve() error: %v", err)
	}
	if approved == nil {
		t.Fatal("Approve() returned nil for existing submission")
	}

	if approved.ModerationStatus != ModerationActive {
		t.Errorf("ModerationStatus = %s, want active", approved.ModerationStatus)
	}
	if approved.PaymentStatus != PaymentPaid {
		t.Errorf("PaymentStatus = %s, want paid", approved.PaymentStatus)
	}

	wantStart := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC)
	if approved.StartDate == nil || !approved.StartDate.Equal(wantStart) {
		t.Errorf("StartDate = %v, want %v", approved.StartDate, wantStart)
	}
	if approved.EndDate == nil || !approved.EndDate.Equal(wantEnd) {
		t.Errorf("EndDate = %v, want %v", approved.EndDate, wantEnd)
	}
}

func TestServiceApproveRecomputesWindow(t *testing.T) {
	storage := newMockStorage()

	current := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	svc := NewService(storage, func() time.Time { return current })

	created, err := svc.Create(context.Background(), Submission{TgUserID: 42, TariffDays: 30})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if _, err := svc.Approve(context.Background(), created.ID); err != nil {
		t.Fatalf("first Approve() error: %v", err)
	}

	// Повторный Approve через пять дней сдвигает окно
	current = current.AddDate(0, 0, 5)
	approved, err := svc.Approve(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("second Approve() error: %v", err)
	}

	wantStart := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC)
	if !approved.StartDate.Equal(wantStart) {
		t.Errorf("StartDate = %v, want %v", approved.StartDate, wantStart)
	}
	if !approved.EndDate.Equal(wantEnd) {
		t.Errorf("EndDate = %v, want %v", approved.EndDate, wantEnd)
	}
}

func TestServiceApproveUnknownID(t *testing.T) {
	svc := NewService(newMockStorage(), nil)

	approved, err := svc.Approve(context.Background(), 999)
	if err != nil {
		t.Fatalf("Approve() error: %v", err)
	}
	if approved != nil {
		t.Errorf("Approve() = %+v, want nil", approved)
	}
}

func TestServiceDisable(t *testing.T) {
	storage := newMockStorage()
	svc := NewService(storage, fixedNow(t, "2024-01-10 15:30:00"))

	created, err := svc.Create(context.Background(), Submission{TgUserID: 42, TariffDays: 7})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if _, err := svc.Approve(context.Background(), created.ID); err != nil {
		t.Fatalf("Approve() error: %v", err)
	}

	disabled, err := svc.Disable(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Disable() error: %v", err)
	}
	if disabled.ModerationStatus != ModerationDisabled {
		t.Errorf("ModerationStatus = %s, want disabled", disabled.ModerationStatus)
	}
	// Даты и оплата остаются как были
	if disabled.StartDate == nil || disabled.EndDate == nil {
		t.Error("Disable() dropped the activation window")
	}
	if disabled.PaymentStatus != PaymentPaid {
		t.Errorf("PaymentStatus = %s, want paid", disabled.PaymentStatus)
	}
}

func TestServiceDisableUnknownID(t *testing.T) {
	svc := NewService(newMockStorage(), nil)

	disabled, err := svc.Disable(context.Background(), 999)
	if err != nil {
		t.Fatalf("Disable() error: %v", err)
	}
	if disabled != nil {
		t.Errorf("Disable() = %+v, want nil", disabled)
	}
}

func TestServiceAttachPaymentProof(t *testing.T) {
	storage := newMockStorage()
	svc := NewService(storage, nil)

	created, err := svc.Create(context.Background(), Submission{TgUserID: 42, TariffDays: 7})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	if err := svc.AttachPaymentProof(context.Background(), created.ID, "https://files.example/receipt"); err != nil {
		t.Fatalf("AttachPaymentProof() error: %v", err)
	}

	stored := storage.subs[created.ID]
	if stored.PaymentStatus != PaymentWaitingReview {
		t.Errorf("PaymentStatus = %s, want waiting_review", stored.PaymentStatus)
	}
	if stored.PaymentProofURL == nil || *stored.PaymentProofURL != "https://files.example/receipt" {
		t.Errorf("PaymentProofURL = %v, want receipt link", stored.PaymentProofURL)
	}
}

func TestServiceAttachPaymentProofMissingRow(t *testing.T) {
	svc := NewService(newMockStorage(), nil)

	// Заявки нет, но это не ошибка диалога
	if err := svc.AttachPaymentProof(context.Background(), 999, "https://files.example/receipt"); err != nil {
		t.Fatalf("AttachPaymentProof() error: %v", err)
	}
}

func TestServiceListPendingCriteria(t *testing.T) {
	storage := newMockStorage()
	svc := NewService(storage, nil)

	if _, err := svc.ListPending(context.Background()); err != nil {
		t.Fatalf("ListPending() error: %v", err)
	}

	criteria := storage.lastListCriteria
	if criteria.ModerationStatus == nil || *criteria.ModerationStatus != ModerationPending {
		t.Errorf("ModerationStatus criterion = %v, want pending", criteria.ModerationStatus)
	}
	if criteria.ActiveOn != nil {
		t.Error("ListPending() must not filter by activation window")
	}
	if criteria.Limit != 50 {
		t.Errorf("Limit = %d, want 50", criteria.Limit)
	}
}

func TestServiceListPublishedCriteria(t *testing.T) {
	storage := newMockStorage()
	svc := NewService(storage, fixedNow(t, "2024-01-10 23:59:59"))

	if _, err := svc.ListPublished(context.Background()); err != nil {
		t.Fatalf("ListPublished() error: %v", err)
	}

	criteria := storage.lastListCriteria
	if criteria.ModerationStatus == nil || *criteria.ModerationStatus != ModerationActive {
		t.Errorf("ModerationStatus criterion = %v, want active", criteria.ModerationStatus)
	}
	wantDay := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	if criteria.ActiveOn == nil || !criteria.ActiveOn.Equal(wantDay) {
		t.Errorf("ActiveOn = %v, want %v", criteria.ActiveOn, wantDay)
	}
	if criteria.Limit != 100 {
		t.Errorf("Limit = %d, want 100", criteria.Limit)
	}
}

func TestServiceStorageErrorsPropagate(t *testing.T) {
	storage := newMockStorage()
	storage.getErr = errors.New("db is down")
	svc := NewService(storage, nil)

	if _, err := svc.Approve(context.Background(), 1); err == nil {
		t.Error("Approve() swallowed storage error")
	}
	if _, err := svc.Disable(context.Background(), 1); err == nil {
		t.Error("Disable() swallowed storage error")
	}
}
