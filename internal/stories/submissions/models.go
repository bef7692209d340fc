package submissions

import "time"

// ModerationStatus — жизненный цикл видимости заявки. Переходы делает только
// админ, автоматических переходов нет.
type ModerationStatus string

const (
	ModerationPending  ModerationStatus = "pending"
	ModerationActive   ModerationStatus = "active"
	ModerationDisabled ModerationStatus = "disabled"
)

// PaymentStatus — заявленная оплата. Деньги никогда не проверяются.
type PaymentStatus string

const (
	PaymentUnpaid        PaymentStatus = "unpaid"
	PaymentWaitingReview PaymentStatus = "waiting_review"
	PaymentPaid          PaymentStatus = "paid"
)

type Submission struct {
	ID               int64
	TgUserID         int64
	CustomerName     string
	Title            string
	Description      string
	LinkURL          string
	ContactInfo      string
	MediaURL         string
	TariffDays       int
	PriceUAH         int
	ModerationStatus ModerationStatus
	PaymentStatus    PaymentStatus
	PaymentProofURL  *string
	StartDate        *time.Time
	EndDate          *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Критерии для получения заявки
type GetCriteria struct {
	ID *int64
}

// Критерии для списка заявок
type ListCriteria struct {
	ModerationStatus *ModerationStatus
	// ActiveOn ограничивает выборку окном показа: start_date/end_date
	// отсутствуют или накрывают указанный день.
	ActiveOn *time.Time
	Limit    int
	Offset   int
}

// Параметры для обновления заявки
type UpdateParams struct {
	ModerationStatus *ModerationStatus
	PaymentStatus    *PaymentStatus
	PaymentProofURL  *string
	StartDate        *time.Time
	EndDate          *time.Time
}
