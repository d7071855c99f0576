package services

import (
	"fmt"
	"strings"

	"realestate-analyzer/models"
	"realestate-analyzer/utils"
)

// Report holds the facts computed over one collection of properties.
type Report struct {
	Total        int
	TargetCity   string
	AvgBasePrice float64

	Cheapest            models.Property
	MostExpensiveInCity models.Property

	TotalPrice    int64
	AvgFinalPrice float64

	AffordableFlats []models.Property
}

// AnalyticsService computes descriptive statistics over a property
// collection and renders them as a plain-text report.
type AnalyticsService struct {
	logger     *utils.Logger
	targetCity string
}

// NewAnalyticsService creates the service. targetCity is the city whose
// most expensive property is highlighted in the report.
func NewAnalyticsService(logger *utils.Logger, targetCity string) *AnalyticsService {
	return &AnalyticsService{logger: logger, targetCity: targetCity}
}

// Generate computes the report facts for props. Ties for cheapest and
// most expensive keep the first property in iteration order. An empty
// collection yields an empty report.
func (s *AnalyticsService) Generate(props []models.Property) *Report {
	report := &Report{TargetCity: s.targetCity}

	if len(props) == 0 {
		return report
	}

	report.Total = len(props)

	finals := make([]int, len(props))
	for i, p := range props {
		finals[i] = p.FinalPrice()
	}

	var baseSum float64
	var finalSum int64
	cheapestIdx := 0
	cityIdx := -1

	for i, p := range props {
		baseSum += p.Base().Price
		finalSum += int64(finals[i])

		if finals[i] < finals[cheapestIdx] {
			cheapestIdx = i
		}
		if strings.EqualFold(p.Base().City, s.targetCity) {
			if cityIdx == -1 || finals[i] > finals[cityIdx] {
				cityIdx = i
			}
		}
	}

	report.AvgBasePrice = baseSum / float64(len(props))
	report.TotalPrice = finalSum
	report.Cheapest = props[cheapestIdx]
	if cityIdx >= 0 {
		report.MostExpensiveInCity = props[cityIdx]
	}

	// Affordable flats compare against the mean FINAL price, a second
	// average independent of the base-price one above.
	report.AvgFinalPrice = float64(finalSum) / float64(len(props))
	for i, p := range props {
		if p.Base().Genre == models.GenreFlat && float64(finals[i]) <= report.AvgFinalPrice {
			report.AffordableFlats = append(report.AffordableFlats, p)
		}
	}

	s.logger.Debug("[analytics] Generated report over %d properties", report.Total)
	return report
}

// Render produces the full report text. The same string is meant for
// both the console and the report file.
func (s *AnalyticsService) Render(r *Report) string {
	if r.Total == 0 {
		return "No properties loaded. Cannot display results.\n"
	}

	var b strings.Builder
	b.WriteString("===== REAL ESTATE ANALYSIS =====\n\n")

	fmt.Fprintf(&b, "1. Average base price: %s Ft\n", models.FormatAmount(r.AvgBasePrice))
	fmt.Fprintf(&b, "2. Cheapest property total price: %d Ft\n", r.Cheapest.FinalPrice())

	if r.MostExpensiveInCity != nil {
		fmt.Fprintf(&b, "3. Most expensive %s property - avg sqm per room: %.2f m²\n",
			r.TargetCity, r.MostExpensiveInCity.AvgSqmPerRoom())
	} else {
		fmt.Fprintf(&b, "3. No properties found in %s\n", r.TargetCity)
	}

	fmt.Fprintf(&b, "4. Total price of all properties: %d Ft\n", r.TotalPrice)

	fmt.Fprintf(&b, "\n5. Condominium properties with price <= average price (%s Ft):\n",
		models.FormatAmount(r.AvgFinalPrice))
	if len(r.AffordableFlats) == 0 {
		b.WriteString("   No condominiums found within average price.\n")
	} else {
		for _, p := range r.AffordableFlats {
			fmt.Fprintf(&b, "   - %s\n", p.Describe())
		}
	}

	return b.String()
}
