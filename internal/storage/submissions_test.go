package storage

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/samber/lo"

	"detransport-ads-bot/internal/stories/submissions"
)

func newTestStorage(t *testing.T) *storageImpl {
	t.Helper()

	db, err := sqlx.Connect("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("sqlx.Connect: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	s := New(db)
	if err := s.InitSchema(context.Background()); err != nil {
		t.Fatalf("InitSchema: %v", err)
	}
	return s
}

func testSubmission(title string) submissions.Submission {
	return submissions.Submission{
		TgUserID:         42,
		CustomerName:     "Jane Doe",
		Title:            title,
		Description:      "20% off",
		LinkURL:          "https://shop.example/x",
		ContactInfo:      "@shop",
		MediaURL:         "https://files.example/banner.jpg",
		TariffDays:       7,
		PriceUAH:         620,
		ModerationStatus: submissions.ModerationPending,
		PaymentStatus:    submissions.PaymentUnpaid,
	}
}

func TestCreateAndGetSubmission(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	created, err := s.CreateSubmission(ctx, testSubmission("Sale"))
	if err != nil {
		t.Fatalf("CreateSubmission: %v", err)
	}

	if created.ID != 1 {
		t.Errorf("ID = %d, want 1", created.ID)
	}
	if created.Title != "Sale" || created.TgUserID != 42 {
		t.Errorf("unexpected row: %+v", created)
	}
	if created.ModerationStatus != submissions.ModerationPending {
		t.Errorf("ModerationStatus = %s, want pending", created.ModerationStatus)
	}
	if created.PaymentStatus != submissions.PaymentUnpaid {
		t.Errorf("PaymentStatus = %s, want unpaid", created.PaymentStatus)
	}
	if created.PaymentProofURL != nil || created.StartDate != nil || created.EndDate != nil {
		t.Errorf("nullable columns not empty: %+v", created)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("timestamps not set")
	}

	got, err := s.GetSubmission(ctx, submissions.GetCriteria{ID: lo.ToPtr(created.ID)})
	if err != nil {
		t.Fatalf("GetSubmission: %v", err)
	}
	if got == nil || got.ID != created.ID || got.Title != "Sale" {
		t.Errorf("GetSubmission = %+v, want created row", got)
	}
}

func TestGetSubmissionMissing(t *testing.T) {
	s := newTestStorage(t)

	got, err := s.GetSubmission(context.Background(), submissions.GetCriteria{ID: lo.ToPtr(int64(999))})
	if err != nil {
		t.Fatalf("GetSubmission: %v", err)
	}
	if got != nil {
		t.Errorf("GetSubmission = %+v, want nil", got)
	}
}

func TestUpdateSubmission(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	created, err := s.CreateSubmission(ctx, testSubmission("Sale"))
	if err != nil {
		t.Fatalf("CreateSubmission: %v", err)
	}

	start := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 7)

	updated, err := s.UpdateSubmission(ctx,
		submissions.GetCriteria{ID: lo.ToPtr(created.ID)},
		submissions.UpdateParams{
			ModerationStatus: lo.ToPtr(submissions.ModerationActive),
			PaymentStatus:    lo.ToPtr(submissions.PaymentPaid),
			PaymentProofURL:  lo.ToPtr("https://files.example/receipt.jpg"),
			StartDate:        &start,
			EndDate:          &end,
		})
	if err != nil {
		t.Fatalf("UpdateSubmission: %v", err)
	}

	if updated.ModerationStatus != submissions.ModerationActive {
		t.Errorf("ModerationStatus = %s, want active", updated.ModerationStatus)
	}
	if updated.PaymentStatus != submissions.PaymentPaid {
		t.Errorf("PaymentStatus = %s, want paid", updated.PaymentStatus)
	}
	if updated.PaymentProofURL == nil || *updated.PaymentProofURL != "https://files.example/receipt.jpg" {
		t.Errorf("PaymentProofURL = %v, want receipt link", updated.PaymentProofURL)
	}
	if updated.StartDate == nil || !updated.StartDate.Equal(start) {
		t.Errorf("StartDate = %v, want %v", updated.StartDate, start)
	}
	if updated.EndDate == nil || !updated.EndDate.Equal(end) {
		t.Errorf("EndDate = %v, want %v", updated.EndDate, end)
	}

	// Незатронутые поля не меняются
	if updated.Title != "Sale" || updated.TariffDays != 7 {
		t.Errorf("untouched fields changed: %+v", updated)
	}
}

func TestUpdateSubmissionPartial(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	created, err := s.CreateSubmission(ctx, testSubmission("Sale"))
	if err != nil {
		t.Fatalf("CreateSubmission: %v", err)
	}

	updated, err := s.UpdateSubmission(ctx,
		submissions.GetCriteria{ID: lo.ToPtr(created.ID)},
		submissions.UpdateParams{
			PaymentStatus:   lo.ToPtr(submissions.PaymentWaitingReview),
			PaymentProofURL: lo.ToPtr("https://files.example/receipt.jpg"),
		})
	if err != nil {
		t.Fatalf("UpdateSubmission: %v", err)
	}

	if updated.PaymentStatus != submissions.PaymentWaitingReview {
		t.Errorf("PaymentStatus = %s, want waiting_review", updated.PaymentStatus)
	}
	if updated.ModerationStatus != submissions.ModerationPending {
		t.Errorf("ModerationStatus = %s, want untouched pending", updated.ModerationStatus)
	}
	if updated.StartDate != nil || updated.EndDate != nil {
		t.Errorf("dates set by partial update: %+v", updated)
	}
}

func TestListSubmissionsByStatus(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	first, err := s.CreateSubmission(ctx, testSubmission("first"))
	if err != nil {
		t.Fatalf("CreateSubmission: %v", err)
	}
	second, err := s.CreateSubmission(ctx, testSubmission("second"))
	if err != nil {
		t.Fatalf("CreateSubmission: %v", err)
	}

	if _, err := s.UpdateSubmission(ctx,
		submissions.GetCriteria{ID: lo.ToPtr(second.ID)},
		submissions.UpdateParams{ModerationStatus: lo.ToPtr(submissions.ModerationActive)},
	); err != nil {
		t.Fatalf("UpdateSubmission: %v", err)
	}

	pending, err := s.ListSubmissions(ctx, submissions.ListCriteria{
		ModerationStatus: lo.ToPtr(submissions.ModerationPending),
	})
	if err != nil {
		t.Fatalf("ListSubmissions: %v", err)
	}
	if len(pending) != 1 || pending[0].ID != first.ID {
		t.Errorf("pending = %+v, want only first", pending)
	}
}

func TestListSubmissionsActiveWindow(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	today := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	activate := func(t *testing.T, title string, start, end *time.Time) *submissions.Submission {
		t.Helper()
		created, err := s.CreateSubmission(ctx, testSubmission(title))
		if err != nil {
			t.Fatalf("CreateSubmission: %v", err)
		}
		updated, err := s.UpdateSubmission(ctx,
			submissions.GetCriteria{ID: lo.ToPtr(created.ID)},
			submissions.UpdateParams{
				ModerationStatus: lo.ToPtr(submissions.ModerationActive),
				StartDate:        start,
				EndDate:          end,
			})
		if err != nil {
			t.Fatalf("UpdateSubmission: %v", err)
		}
		return updated
	}

	yesterday := today.AddDate(0, 0, -1)
	tomorrow := today.AddDate(0, 0, 1)
	nextWeek := today.AddDate(0, 0, 7)

	inWindow := activate(t, "in window", &yesterday, &nextWeek)
	endsToday := activate(t, "ends today", &yesterday, &today)
	expired := activate(t, "expired", lo.ToPtr(today.AddDate(0, 0, -8)), &yesterday)
	notStarted := activate(t, "not started", &tomorrow, &nextWeek)
	noWindow := activate(t, "no window", nil, nil)

	got, err := s.ListSubmissions(ctx, submissions.ListCriteria{
		ModerationStatus: lo.ToPtr(submissions.ModerationActive),
		ActiveOn:         &today,
	})
	if err != nil {
		t.Fatalf("ListSubmissions: %v", err)
	}

	wantIDs := []int64{noWindow.ID, endsToday.ID, inWindow.ID}
	if len(got) != len(wantIDs) {
		t.Fatalf("published count = %d, want %d: %+v", len(got), len(wantIDs), got)
	}
	// Новые заявки первыми
	for i, want := range wantIDs {
		if got[i].ID != want {
			t.Errorf("published[%d].ID = %d, want %d", i, got[i].ID, want)
		}
	}

	for _, sub := range got {
		if sub.ID == expired.ID || sub.ID == notStarted.ID {
			t.Errorf("submission %d outside its window is published", sub.ID)
		}
	}
}

// Полный жизненный цикл через сервис поверх настоящего sqlite: заявка
// одобряется 2024-01-10 на 7 дней, показывается в последний день окна и
// пропадает на следующий.
func TestSubmissionLifecycle(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	current := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	svc := submissions.NewService(s, func() time.Time { return current })

	created, err := svc.Create(ctx, testSubmission("Sale"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.AttachPaymentProof(ctx, created.ID, "https://files.example/receipt.jpg"); err != nil {
		t.Fatalf("AttachPaymentProof: %v", err)
	}

	approved, err := svc.Approve(ctx, created.ID)
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}
	wantStart := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC)
	if !approved.StartDate.Equal(wantStart) || !approved.EndDate.Equal(wantEnd) {
		t.Fatalf("window = %v..%v, want %v..%v",
			approved.StartDate, approved.EndDate, wantStart, wantEnd)
	}
	if approved.PaymentStatus != submissions.PaymentPaid {
		t.Errorf("PaymentStatus = %s, want paid", approved.PaymentStatus)
	}

	// Последний день окна
	current = time.Date(2024, 1, 17, 9, 0, 0, 0, time.UTC)
	published, err := svc.ListPublished(ctx)
	if err != nil {
		t.Fatalf("ListPublished: %v", err)
	}
	if len(published) != 1 || published[0].ID != created.ID {
		t.Errorf("published on the last day = %+v, want the approved row", published)
	}

	// Днем позже окно закрыто
	current = time.Date(2024, 1, 18, 9, 0, 0, 0, time.UTC)
	published, err = svc.ListPublished(ctx)
	if err != nil {
		t.Fatalf("ListPublished: %v", err)
	}
	if len(published) != 0 {
		t.Errorf("published after the window = %+v, want none", published)
	}

	// Снятая заявка исчезает независимо от окна
	current = time.Date(2024, 1, 12, 9, 0, 0, 0, time.UTC)
	if _, err := svc.Disable(ctx, created.ID); err != nil {
		t.Fatalf("Disable: %v", err)
	}
	published, err = svc.ListPublished(ctx)
	if err != nil {
		t.Fatalf("ListPublished: %v", err)
	}
	if len(published) != 0 {
		t.Errorf("disabled submission still published: %+v", published)
	}
}

func TestListSubmissionsLimit(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := s.CreateSubmission(ctx, testSubmission("ad")); err != nil {
			t.Fatalf("CreateSubmission: %v", err)
		}
	}

	got, err := s.ListSubmissions(ctx, submissions.ListCriteria{Limit: 3})
	if err != nil {
		t.Fatalf("ListSubmissions: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].ID != 5 || got[2].ID != 3 {
		t.Errorf("ids = %d..%d, want 5..3", got[0].ID, got[2].ID)
	}
}
