package states

type State string

const (
	StateNone State = "none"
)

// sa -> submit ad

// submit ad states, строго в порядке прохождения диалога
const (
	SubmitAdWaitTariff       State = "sa_wt_tariff"
	SubmitAdWaitTitle        State = "sa_wt_title"
	SubmitAdWaitDescription  State = "sa_wt_description"
	SubmitAdWaitLink         State = "sa_wt_link"
	SubmitAdWaitContact      State = "sa_wt_contact"
	SubmitAdWaitName         State = "sa_wt_name"
	SubmitAdWaitMedia        State = "sa_wt_media"
	SubmitAdWaitPaymentProof State = "sa_wt_payment_proof"
)
