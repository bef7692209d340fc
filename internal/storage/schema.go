package storage

import (
	"context"
	"fmt"
)

const schema = `
CREATE TABLE IF NOT EXISTS ads_requests (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	tg_user_id INTEGER NOT NULL,
	customer_name TEXT NOT NULL,
	title TEXT NOT NULL,
	description_adv TEXT NOT NULL,
	link_url TEXT NOT NULL,
	contact_info TEXT NOT NULL,
	media_url TEXT NOT NULL,
	tariff_days INTEGER NOT NULL,
	price_uah INTEGER NOT NULL,
	moderation_status TEXT NOT NULL DEFAULT 'pending',
	payment_status TEXT NOT NULL DEFAULT 'unpaid',
	payment_proof_url TEXT,
	start_date TIMESTAMP,
	end_date TIMESTAMP,
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_ads_requests_moderation_status
	ON ads_requests (moderation_status);
`

// InitSchema создает таблицу заявок если её ещё нет.
func (s *storageImpl) InitSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("db.ExecContext: %w", err)
	}
	return nil
}
