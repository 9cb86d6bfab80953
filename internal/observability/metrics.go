// Package observability holds the prometheus collectors of the tracker.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Error reasons used as label values.
const (
	ReasonUnknownType    = "unknown_type"
	ReasonInvalidPackage = "invalid_package"
	ReasonUnimplemented  = "unimplemented"
	ReasonOther          = "other"
)

var (
	trainingsProcessed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitness_tracker",
		Subsystem: "trainings",
		Name:      "processed_total",
		Help:      "Number of training packages summarised, by training type.",
	}, []string{"type"})

	trainingErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitness_tracker",
		Subsystem: "trainings",
		Name:      "errors_total",
		Help:      "Number of training packages rejected, by reason.",
	}, []string{"reason"})

	caloriesBurned = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "fitness_tracker",
		Subsystem: "trainings",
		Name:      "calories_burned",
		Help:      "Distribution of calories burned per training.",
		Buckets:   []float64{50, 100, 200, 400, 800, 1600},
	}, []string{"type"})
)

func init() {
	prometheus.MustRegister(trainingsProcessed, trainingErrors, caloriesBurned)
}

// RecordTraining counts one summarised training of the given label.
func RecordTraining(label string, calories float64) {
	trainingsProcessed.WithLabelValues(label).Inc()
	caloriesBurned.WithLabelValues(label).Observe(calories)
}

// RecordError counts one rejected package.
func RecordError(reason string) {
	trainingErrors.WithLabelValues(reason).Inc()
}
