package usecase

import (
	"sort"

	"github.com/farescout/fare-aggregation-service/internal/domain"
)

// filterByWindow drops records whose departure date falls outside the
// horizon, widened by slackDays on each side. The upstream flexible
// window legitimately returns neighbouring dates, so filtering is
// defensive tightening, not validation: records with an unparseable date
// are dropped as well.
func filterByWindow(records []domain.FareRecord, h domain.SearchHorizon, slackDays int) []domain.FareRecord {
	kept := make([]domain.FareRecord, 0, len(records))
	for _, r := range records {
		date, err := r.DepartureDate()
		if err != nil {
			continue
		}
		if h.Contains(date, slackDays) {
			kept = append(kept, r)
		}
	}
	return kept
}

// reduceCheapest groups records by destination code and keeps the
// minimum-price record per group, first encountered winning ties. The
// surviving records are sorted ascending by price with a stable sort, so
// equal prices keep their discovery order. Min-by-price grouping is
// commutative and associative, which makes the final ranking independent
// of the completion order of concurrent lookups.
func reduceCheapest(records []domain.FareRecord) []domain.FareRecord {
	cheapest := make(map[string]int, len(records))
	var order []string

	for i, r := range records {
		best, seen := cheapest[r.DestinationCode]
		if !seen {
			cheapest[r.DestinationCode] = i
			order = append(order, r.DestinationCode)
			continue
		}
		if r.Price < records[best].Price {
			cheapest[r.DestinationCode] = i
		}
	}

	result := make([]domain.FareRecord, 0, len(order))
	for _, code := range order {
		result = append(result, records[cheapest[code]])
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Price < result[j].Price
	})
	return result
}

// labelRecords attaches catalog display names to records in place.
func labelRecords(records []domain.FareRecord, catalog domain.Catalog) {
	for i := range records {
		records[i].DestinationLabel = catalog.LabelFor(records[i].DestinationCode)
	}
}
