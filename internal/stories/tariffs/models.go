package tariffs

import "fmt"

// Tariff — фиксированная пара (длительность, цена). Набор тарифов задан в
// коде и не меняется в рантайме.
type Tariff struct {
	Days     int
	PriceUAH int
}

func (t Tariff) Label() string {
	return fmt.Sprintf("%d дн. — %d грн", t.Days, t.PriceUAH)
}

// CallbackData — payload инлайн-кнопки выбора тарифа.
func (t Tariff) CallbackData() string {
	return fmt.Sprintf("TARIFF_%d", t.Days)
}
