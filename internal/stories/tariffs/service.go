package tariffs

import "strings"

// Service provides lookups over the fixed tariff catalog
type Service struct {
	catalog []Tariff
}

// NewService creates a tariff service with the standard catalog
func NewService() *Service {
	return &Service{
		catalog: []Tariff{
			{Days: 1, PriceUAH: 120},
			{Days: 7, PriceUAH: 620},
			{Days: 14, PriceUAH: 1100},
			{Days: 30, PriceUAH: 2200},
		},
	}
}

func (s *Service) List() []Tariff {
	return s.catalog
}

// ByCallbackData находит тариф по payload кнопки. Неизвестный payload — не
// ошибка, просто nil.
func (s *Service) ByCallbackData(data string) *Tariff {
	if !strings.HasPrefix(data, "TARIFF_") {
		return nil
	}
	for i := range s.catalog {
		if s.catalog[i].CallbackData() == data {
			return &s.catalog[i]
		}
	}
	return nil
}

// ByDays находит тариф по длительности.
func (s *Service) ByDays(days int) *Tariff {
	for i := range s.catalog {
		if s.catalog[i].Days == days {
			return &s.catalog[i]
		}
	}
	return nil
}
