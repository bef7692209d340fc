package flows

// SubmitAdFlowData - data for submit ad flow
//
// Поля заполняются по одному на каждом шаге диалога. После сохранения заявки
// в данных остается только SubmissionID — до получения квитанции.
type SubmitAdFlowData struct {
	TariffDays   int
	PriceUAH     int
	Title        string
	Description  string
	LinkURL      string
	ContactInfo  string
	CustomerName string

	// SubmissionID выставляется после сохранения заявки, пока ждем квитанцию.
	SubmissionID int64
}
