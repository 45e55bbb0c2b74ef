package services

import (
	"fmt"
	"io"
	"train-consist-service/internal/domain"
)

// TypeOccupancy aggregates the wagons of one class.
type TypeOccupancy struct {
	Type     domain.WagonType
	Wagons   int
	Occupied int
	Capacity int
}

// Percentage is Occupied/Capacity*100, or 0 without seats.
func (o TypeOccupancy) Percentage() float64 {
	if o.Capacity == 0 {
		return 0
	}
	return float64(o.Occupied) / float64(o.Capacity) * 100
}

// OccupancyReport summarises t per passenger class, followed by a row for
// restaurant wagons. Classes without wagons are reported with zeros.
func OccupancyReport(t *domain.Train) []TypeOccupancy {
	types := append(append([]domain.WagonType{}, domain.PassengerTypes...), domain.Restaurant)

	report := make([]TypeOccupancy, 0, len(types))
	for _, wt := range types {
		row := TypeOccupancy{Type: wt}
		row.Occupied, row.Capacity = t.PassengerCountByType(wt)
		for _, w := range t.Wagons() {
			if w.Type() == wt {
				row.Wagons++
			}
		}
		report = append(report, row)
	}
	return report
}

// WriteOccupancyReport renders the report as aligned text lines.
func WriteOccupancyReport(w io.Writer, report []TypeOccupancy) error {
	for _, row := range report {
		_, err := fmt.Fprintf(w, "%-10s wagons=%-3d occupied=%-5d capacity=%-5d %6.2f%%\n",
			row.Type, row.Wagons, row.Occupied, row.Capacity, row.Percentage())
		if err != nil {
			return fmt.Errorf("write occupancy report: %w", err)
		}
	}
	return nil
}
