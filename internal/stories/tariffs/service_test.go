package tariffs

import "testing"

func TestCatalog(t *testing.T) {
	catalog := NewService().List()

	want := []Tariff{
		{Days: 1, PriceUAH: 120},
		{Days: 7, PriceUAH: 620},
		{Days: 14, PriceUAH: 1100},
		{Days: 30, PriceUAH: 2200},
	}

	if len(catalog) != len(want) {
		t.Fatalf("catalog size = %d, want %d", len(catalog), len(want))
	}
	for i, tariff := range catalog {
		if tariff != want[i] {
			t.Errorf("catalog[%d] = %+v, want %+v", i, tariff, want[i])
		}
	}
}

func TestByCallbackData(t *testing.T) {
	svc := NewService()

	tests := []struct {
		name     string
		data     string
		wantDays int
	}{
		{name: "week", data: "TARIFF_7", wantDays: 7},
		{name: "month", data: "TARIFF_30", wantDays: 30},
		{name: "unknown days", data: "TARIFF_99", wantDays: 0},
		{name: "foreign payload", data: "MENU_CREATE", wantDays: 0},
		{name: "empty", data: "", wantDays: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.ByCallbackData(tt.data)
			if tt.wantDays == 0 {
				if got != nil {
					t.Errorf("ByCallbackData(%q) = %+v, want nil", tt.data, got)
				}
				return
			}
			if got == nil || got.Days != tt.wantDays {
				t.Errorf("ByCallbackData(%q) = %+v, want %d days", tt.data, got, tt.wantDays)
			}
		})
	}
}

func TestByDays(t *testing.T) {
	svc := NewService()

	if got := svc.ByDays(14); got == nil || got.PriceUAH != 1100 {
		t.Errorf("ByDays(14) = %+v, want 1100 UAH", got)
	}
	if got := svc.ByDays(2); got != nil {
		t.Errorf("ByDays(2) = %+v, want nil", got)
	}
}

func TestTariffLabel(t *testing.T) {
	tariff := Tariff{Days: 7, PriceUAH: 620}

	if got := tariff.Label(); got != "7 дн. — 620 грн" {
		t.Errorf("Label() = %q", got)
	}
	if got := tariff.CallbackData(); got != "TARIFF_7" {
		t.Errorf("CallbackData() = %q", got)
	}
}
