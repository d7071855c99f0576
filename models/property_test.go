package models

import (
	"errors"
	"testing"
)

func TestFinalPriceCityMultipliers(t *testing.T) {
	tests := []struct {
		city string
		want int
	}{
		{"Budapest", 130000},
		{"Debrecen", 120000},
		{"Nyiregyhaza", 115000},
		{"nyiregyhaza", 115000},
		{"Kisvarda", 100000},
	}

	for _, tt := range tests {
		r := NewRealEstate(tt.city, 100000, 80, 3, GenreFlat)
		if got := r.FinalPrice(); got != tt.want {
			t.Errorf("FinalPrice in %s = %d; want %d", tt.city, got, tt.want)
		}
	}
}

func TestFinalPriceIsPure(t *testing.T) {
	r := NewRealEstate("Budapest", 100000, 80, 3, GenreFlat)

	first := r.FinalPrice()
	second := r.FinalPrice()
	if first != second {
		t.Errorf("repeated FinalPrice calls differ: %d vs %d", first, second)
	}
	if r.Price != 100000 {
		t.Errorf("FinalPrice mutated base price: got %.2f, want 100000", r.Price)
	}
}

func TestPanelFinalPriceComposition(t *testing.T) {
	tests := []struct {
		name      string
		city      string
		floor     int
		insulated bool
		want      int
	}{
		{"low floor insulated in Budapest", "Budapest", 1, true, 143325},
		{"ground floor", "Kisvarda", 0, false, 105000},
		{"floor ten", "Kisvarda", 10, false, 95000},
		{"mid floor insulated", "Kisvarda", 5, true, 105000},
		{"mid floor plain", "Kisvarda", 7, false, 100000},
	}

	for _, tt := range tests {
		p := NewPanel(tt.city, 100000, 70, 3, GenreFlat, tt.floor, tt.insulated)
		if got := p.FinalPrice(); got != tt.want {
			t.Errorf("%s: FinalPrice = %d; want %d", tt.name, got, tt.want)
		}
	}
}

func TestMakeDiscount(t *testing.T) {
	r := NewRealEstate("Budapest", 100000, 80, 3, GenreFlat)
	if err := r.MakeDiscount(10); err != nil {
		t.Fatalf("MakeDiscount(10) returned error: %v", err)
	}
	if r.Price != 90000 {
		t.Errorf("price after 10%% discount: got %.2f, want 90000", r.Price)
	}
}

func TestMakeDiscountRejectsOutOfRange(t *testing.T) {
	for _, pct := range []float64{-1, 100.5, 250} {
		r := NewRealEstate("Budapest", 100000, 80, 3, GenreFlat)
		err := r.MakeDiscount(pct)
		if !errors.Is(err, ErrInvalidDiscount) {
			t.Errorf("MakeDiscount(%.1f): got %v, want ErrInvalidDiscount", pct, err)
		}
		if r.Price != 100000 {
			t.Errorf("MakeDiscount(%.1f) changed price to %.2f", pct, r.Price)
		}
	}
}

func TestAvgSqmPerRoom(t *testing.T) {
	r := NewRealEstate("Debrecen", 220000, 120, 5, GenreFamilyHouse)
	if got := r.AvgSqmPerRoom(); got != 24 {
		t.Errorf("AvgSqmPerRoom = %.2f; want 24", got)
	}

	empty := NewRealEstate("Debrecen", 220000, 120, 0, GenreFamilyHouse)
	if got := empty.AvgSqmPerRoom(); got != 0 {
		t.Errorf("AvgSqmPerRoom with 0 rooms = %.2f; want 0", got)
	}
}

func TestPanelRoomPriceUsesBasePrice(t *testing.T) {
	p := NewPanel("Budapest", 120000, 70, 3, GenreFlat, 4, false)
	if got := p.RoomPrice(); got != 40000 {
		t.Errorf("RoomPrice = %.2f; want 40000 (base price, not final)", got)
	}

	noRooms := NewPanel("Budapest", 120000, 70, 0, GenreFlat, 4, false)
	if got := noRooms.RoomPrice(); got != 0 {
		t.Errorf("RoomPrice with 0 rooms = %.2f; want 0", got)
	}
}

func TestHasSameAmount(t *testing.T) {
	a := NewPanel("Kisvarda", 100000, 70, 3, GenreFlat, 5, false)
	b := NewPanel("Kisvarda", 100000, 50, 2, GenreFlat, 6, false)
	c := NewPanel("Budapest", 100000, 70, 3, GenreFlat, 5, false)

	if !a.HasSameAmount(b) {
		t.Error("expected equal final prices to compare true")
	}
	if a.HasSameAmount(c) {
		t.Error("expected differing final prices to compare false")
	}
	if a.HasSameAmount(nil) {
		t.Error("comparison against nil must be false")
	}

	var absent *Panel
	if absent.HasSameAmount(a) {
		t.Error("nil receiver must compare false")
	}
}

func TestDescribe(t *testing.T) {
	r := NewRealEstate("Budapest", 250000, 100, 4, GenreFlat)
	want := "RealEstate{city='Budapest', price=250000, sqm=100, rooms=4, genre=FLAT}"
	if got := r.Describe(); got != want {
		t.Errorf("Describe = %q; want %q", got, want)
	}

	p := NewPanel("Debrecen", 120000, 35, 2, GenreFlat, 0, true)
	wantPanel := "RealEstate{city='Debrecen', price=120000, sqm=35, rooms=2, genre=FLAT} is a Panel with floor=0, insulated=true"
	if got := p.Describe(); got != wantPanel {
		t.Errorf("Panel Describe = %q; want %q", got, wantPanel)
	}
}

func TestParseGenre(t *testing.T) {
	tests := []struct {
		raw     string
		want    Genre
		wantErr bool
	}{
		{"FLAT", GenreFlat, false},
		{"flat", GenreFlat, false},
		{"FamilyHouse", GenreFamilyHouse, false},
		{"FAMILY_HOUSE", GenreFamilyHouse, false},
		{"farm", GenreFarm, false},
		{"CASTLE", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseGenre(tt.raw)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseGenre(%q): expected error, got %v", tt.raw, got)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseGenre(%q) = %v, %v; want %v", tt.raw, got, err, tt.want)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{250000, "250000"},
		{133333.3333, "133333.33"},
		{0, "0"},
		{99.5, "99.50"},
	}

	for _, tt := range tests {
		if got := FormatAmount(tt.in); got != tt.want {
			t.Errorf("FormatAmount(%v) = %q; want %q", tt.in, got, tt.want)
		}
	}
}
