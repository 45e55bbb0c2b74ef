package obs

import (
	"fmt"
	"time"
	"train-consist-service/internal/domain"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the process's collectors on a private registry. Nothing is
// served; WriteTextfile dumps the registry for the node exporter textfile
// collector. A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	wagons     *prometheus.GaugeVec
	passengers *prometheus.GaugeVec
	seats      *prometheus.GaugeVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "train_operations_total",
			Help: "Train operations by name and result.",
		}, []string{"op", "result"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "train_operation_duration_seconds",
			Help:    "Duration of train operations.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 4, 8),
		}, []string{"op"}),
		wagons: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "train_wagons",
			Help: "Wagons per class in the last train touched.",
		}, []string{"train", "type"}),
		passengers: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "train_passengers",
			Help: "Occupied seats per class in the last train touched.",
		}, []string{"train", "type"}),
		seats: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "train_seats",
			Help: "Seat capacity per class in the last train touched.",
		}, []string{"train", "type"}),
	}
	m.registry.MustRegister(m.operations, m.duration, m.wagons, m.passengers, m.seats)
	return m
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) ObserveOperation(op string, dur time.Duration, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.operations.WithLabelValues(op, result).Inc()
	m.duration.WithLabelValues(op).Observe(dur.Seconds())
}

// ObserveTrain sets the per-class gauges of the named train.
func (m *Metrics) ObserveTrain(name string, t *domain.Train) {
	if m == nil || t == nil {
		return
	}

	counts := map[domain.WagonType]int{}
	for _, w := range t.Wagons() {
		counts[w.Type()]++
	}
	for _, wt := range []domain.WagonType{domain.Sitting, domain.Economy, domain.Luxury, domain.Restaurant} {
		occupied, capacity := t.PassengerCountByType(wt)
		m.wagons.WithLabelValues(name, wt.String()).Set(float64(counts[wt]))
		m.passengers.WithLabelValues(name, wt.String()).Set(float64(occupied))
		m.seats.WithLabelValues(name, wt.String()).Set(float64(capacity))
	}
}

// WriteTextfile writes the registry in text exposition format to path.
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil || path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("write metrics textfile %q: %w", path, err)
	}
	return nil
}
