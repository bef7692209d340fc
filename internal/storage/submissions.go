package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"detransport-ads-bot/internal/stories/submissions"
)

const submissionsTable = "ads_requests"

var submissionRowFields = fields(submissionRow{})

type submissionRow struct {
	ID               int64      `db:"id"`
	TgUserID         int64      `db:"tg_user_id"`
	CustomerName     string     `db:"customer_name"`
	Title            string     `db:"title"`
	Description      string     `db:"description_adv"`
	LinkURL          string     `db:"link_url"`
	ContactInfo      string     `db:"contact_info"`
	MediaURL         string     `db:"media_url"`
	TariffDays       int        `db:"tariff_days"`
	PriceUAH         int        `db:"price_uah"`
	ModerationStatus string     `db:"moderation_status"`
	PaymentStatus    string     `db:"payment_status"`
	PaymentProofURL  *string    `db:"payment_proof_url"`
	StartDate        *time.Time `db:"start_date"`
	EndDate          *time.Time `db:"end_date"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at"`
}

func (r submissionRow) ToModel() *submissions.Submission {
	return &submissions.Submission{
		ID:               r.ID,
		TgUserID:         r.TgUserID,
		CustomerName:     r.CustomerName,
		Title:            r.Title,
		Description:      r.Description,
		LinkURL:          r.LinkURL,
		ContactInfo:      r.ContactInfo,
		MediaURL:         r.MediaURL,
		TariffDays:       r.TariffDays,
		PriceUAH:         r.PriceUAH,
		ModerationStatus: submissions.ModerationStatus(r.ModerationStatus),
		PaymentStatus:    submissions.PaymentStatus(r.PaymentStatus),
		PaymentProofURL:  r.PaymentProofURL,
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

func (r *submissionRow) scan(row interface{ Scan(...any) error }) error {
	return row.Scan(
		&r.ID, &r.TgUserID, &r.CustomerName, &r.Title, &r.Description,
		&r.LinkURL, &r.ContactInfo, &r.MediaURL, &r.TariffDays, &r.PriceUAH,
		&r.ModerationStatus, &r.PaymentStatus, &r.PaymentProofURL,
		&r.StartDate, &r.EndDate, &r.CreatedAt, &r.UpdatedAt,
	)
}

func (s *storageImpl) CreateSubmission(ctx context.Context, sub submissions.Submission) (*submissions.Submission, error) {
	params := map[string]interface{}{
		"tg_user_id":        sub.TgUserID,
		"customer_name":     sub.CustomerName,
		"title":             sub.Title,
		"description_adv":   sub.Description,
		"link_url":          sub.LinkURL,
		"contact_info":      sub.ContactInfo,
		"media_url":         sub.MediaURL,
		"tariff_days":       sub.TariffDays,
		"price_uah":         sub.PriceUAH,
		"moderation_status": string(sub.ModerationStatus),
		"payment_status":    string(sub.PaymentStatus),
		"payment_proof_url": sub.PaymentProofURL,
		"start_date":        sub.StartDate,
		"end_date":          sub.EndDate,
		"created_at":        s.now(),
		"updated_at":        s.now(),
	}

	q, args, err := s.stmpBuilder().
		Insert(submissionsTable).
		SetMap(params).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sql query: %w", err)
	}

	result, err := s.db.ExecContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("db.ExecContext: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("result.LastInsertId: %w", err)
	}

	return s.GetSubmission(ctx, submissions.GetCriteria{ID: &id})
}

func (s *storageImpl) GetSubmission(ctx context.Context, criteria submissions.GetCriteria) (*submissions.Submission, error) {
	query := s.stmpBuilder().
		Select(submissionRowFields).
		From(submissionsTable).
		Limit(1)

	if criteria.ID != nil {
		query = query.Where(sq.Eq{"id": *criteria.ID})
	}

	q, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sql query: %w", err)
	}

	row := s.db.QueryRowContext(ctx, q, args...)

	var r submissionRow
	if err := r.scan(row); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("row.Scan: %w", err)
	}

	return r.ToModel(), nil
}

func (s *storageImpl) UpdateSubmission(ctx context.Context, criteria submissions.GetCriteria, params submissions.UpdateParams) (*submissions.Submission, error) {
	query := s.stmpBuilder().
		Update(submissionsTable).
		Set("updated_at", s.now())

	// Добавляем условия для обновления
	if criteria.ID != nil {
		query = query.Where(sq.Eq{"id": *criteria.ID})
	}

	// Добавляем параметры для обновления
	if params.ModerationStatus != nil {
		query = query.Set("moderation_status", string(*params.ModerationStatus))
	}
	if params.PaymentStatus != nil {
		query = query.Set("payment_status", string(*params.PaymentStatus))
	}
	if params.PaymentProofURL != nil {
		query = query.Set("payment_proof_url", *params.PaymentProofURL)
	}
	if params.StartDate != nil {
		query = query.Set("start_date", *params.StartDate)
	}
	if params.EndDate != nil {
		query = query.Set("end_date", *params.EndDate)
	}

	q, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sql query: %w", err)
	}

	_, err = s.db.ExecContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("db.ExecContext: %w", err)
	}

	return s.GetSubmission(ctx, criteria)
}

func (s *storageImpl) ListSubmissions(ctx context.Context, criteria submissions.ListCriteria) ([]*submissions.Submission, error) {
	query := s.stmpBuilder().
		Select(submissionRowFields).
		From(submissionsTable)

	if criteria.ModerationStatus != nil {
		query = query.Where(sq.Eq{"moderation_status": string(*criteria.ModerationStatus)})
	}

	if criteria.ActiveOn != nil {
		// Окно показа: дата не задана либо накрывает указанный день.
		query = query.
			Where(sq.Or{sq.Eq{"start_date": nil}, sq.LtOrEq{"start_date": *criteria.ActiveOn}}).
			Where(sq.Or{sq.Eq{"end_date": nil}, sq.GtOrEq{"end_date": *criteria.ActiveOn}})
	}

	if criteria.Limit > 0 {
		query = query.Limit(uint64(criteria.Limit))
	}
	if criteria.Offset > 0 {
		query = query.Offset(uint64(criteria.Offset))
	}

	query = query.OrderBy("id DESC")

	q, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sql query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("db.QueryContext: %w", err)
	}
	defer rows.Close()

	var result []*submissions.Submission
	for rows.Next() {
		var r submissionRow
		if err := r.scan(rows); err != nil {
			return nil, fmt.Errorf("rows.Scan: %w", err)
		}
		result = append(result, r.ToModel())
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err: %w", err)
	}

	return result, nil
}
