package models

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidDiscount is returned when a discount percentage falls
// outside the 0–100 range.
var ErrInvalidDiscount = errors.New("discount percentage must be between 0 and 100")

// Genre classifies a property by its type.
type Genre string

const (
	GenreFamilyHouse Genre = "FAMILYHOUSE"
	GenreFlat        Genre = "FLAT"
	GenreFarm        Genre = "FARM"
)

// ParseGenre converts a raw token into a Genre. Matching is
// case-insensitive and tolerates an underscore ("FAMILY_HOUSE").
func ParseGenre(raw string) (Genre, error) {
	token := strings.ToUpper(strings.TrimSpace(raw))
	token = strings.ReplaceAll(token, "_", "")
	switch token {
	case string(GenreFamilyHouse):
		return GenreFamilyHouse, nil
	case string(GenreFlat):
		return GenreFlat, nil
	case string(GenreFarm):
		return GenreFarm, nil
	}
	return "", fmt.Errorf("unknown genre %q", raw)
}

// Property is the valuation contract every listing variant satisfies.
type Property interface {
	// Base exposes the shared attributes regardless of variant.
	Base() *RealEstate
	// FinalPrice returns the adjusted price. It is pure: calling it any
	// number of times yields the same result and never touches Price.
	FinalPrice() int
	// AvgSqmPerRoom returns Sqm/Rooms, or 0 for a property with no rooms.
	AvgSqmPerRoom() float64
	// MakeDiscount lowers the base price by the given percentage.
	MakeDiscount(percentage float64) error
	// Describe renders the property as a single deterministic line.
	Describe() string
}

// RealEstate is a general property listing.
type RealEstate struct {
	City  string
	Price float64 // base price, before any adjustment
	Sqm   float64
	Rooms int
	Genre Genre
}

// NewRealEstate constructs a general listing.
func NewRealEstate(city string, price, sqm float64, rooms int, genre Genre) *RealEstate {
	return &RealEstate{City: city, Price: price, Sqm: sqm, Rooms: rooms, Genre: genre}
}

func (r *RealEstate) Base() *RealEstate { return r }

// cityAdjusted returns the base price after the location multiplier,
// unrounded so variant adjustments can compose before rounding.
func (r *RealEstate) cityAdjusted() float64 {
	switch {
	case strings.EqualFold(r.City, "Budapest"):
		return r.Price * 1.30
	case strings.EqualFold(r.City, "Debrecen"):
		return r.Price * 1.20
	case strings.EqualFold(r.City, "Nyiregyhaza"):
		return r.Price * 1.15
	}
	return r.Price
}

// FinalPrice returns the base price adjusted by the city multiplier,
// rounded half-up to the nearest integer.
func (r *RealEstate) FinalPrice() int {
	return int(math.Round(r.cityAdjusted()))
}

// AvgSqmPerRoom returns the floor area per room, or 0 when the
// property has no rooms.
func (r *RealEstate) AvgSqmPerRoom() float64 {
	if r.Rooms == 0 {
		return 0
	}
	return r.Sqm / float64(r.Rooms)
}

// MakeDiscount lowers the base price by the given percentage.
// Percentages outside [0,100] are rejected with ErrInvalidDiscount.
func (r *RealEstate) MakeDiscount(percentage float64) error {
	if percentage < 0 || percentage > 100 {
		return fmt.Errorf("%w: got %.2f", ErrInvalidDiscount, percentage)
	}
	r.Price -= r.Price * (percentage / 100)
	return nil
}

func (r *RealEstate) Describe() string {
	return fmt.Sprintf("RealEstate{city='%s', price=%s, sqm=%s, rooms=%d, genre=%s}",
		r.City, FormatAmount(r.Price), FormatAmount(r.Sqm), r.Rooms, r.Genre)
}

// Panel is a prefabricated-building listing. It shares the base
// attributes and layers floor and insulation adjustments on top of the
// city multiplier.
type Panel struct {
	RealEstate
	Floor     int
	Insulated bool
}

// NewPanel constructs a prefabricated-building listing.
func NewPanel(city string, price, sqm float64, rooms int, genre Genre, floor int, insulated bool) *Panel {
	return &Panel{
		RealEstate: RealEstate{City: city, Price: price, Sqm: sqm, Rooms: rooms, Genre: genre},
		Floor:      floor,
		Insulated:  insulated,
	}
}

// FinalPrice applies the city multiplier, then ×1.05 for floors 0–2 or
// ×0.95 for floor 10, then ×1.05 when insulated. The factors compose on
// the unrounded value and the result is rounded once at the end.
func (p *Panel) FinalPrice() int {
	price := p.cityAdjusted()
	if p.Floor >= 0 && p.Floor <= 2 {
		price *= 1.05
	} else if p.Floor == 10 {
		price *= 0.95
	}
	if p.Insulated {
		price *= 1.05
	}
	return int(math.Round(price))
}

// RoomPrice returns the base price per room, or 0 when the property has
// no rooms. It deliberately uses the base price, not the final price, so
// properties stay comparable across cities before location premiums.
func (p *Panel) RoomPrice() float64 {
	if p.Rooms == 0 {
		return 0
	}
	return p.Price / float64(p.Rooms)
}

// HasSameAmount reports whether this property and other reach the same
// final price. A nil receiver or argument yields false.
func (p *Panel) HasSameAmount(other Property) bool {
	if p == nil || other == nil {
		return false
	}
	return p.FinalPrice() == other.FinalPrice()
}

func (p *Panel) Describe() string {
	return fmt.Sprintf("%s is a Panel with floor=%d, insulated=%t",
		p.RealEstate.Describe(), p.Floor, p.Insulated)
}

// FormatAmount renders a currency value with two decimals when it is
// fractional and as a plain integer otherwise.
func FormatAmount(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
