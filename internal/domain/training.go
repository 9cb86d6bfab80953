package domain

import (
	"errors"
	"fmt"
	"math"
)

// --- Error Definitions ---
var (
	ErrUnimplementedFormula = errors.New("calorie formula is not implemented for this training")
	ErrUnknownWorkoutType   = errors.New("unrecognized workout type")
	ErrInvalidPackage       = errors.New("invalid training package")
)

// Shared unit conversions.
const (
	MInKm  = 1000 // metres in a kilometre
	MinInH = 60   // minutes in an hour

	// LenStep is the distance in metres covered by one step.
	LenStep = 0.65
)

// Kind identifies a training variant by its sensor type code.
type Kind string

const (
	KindRunning  Kind = "RUN"
	KindWalking  Kind = "WLK"
	KindSwimming Kind = "SWM"
)

// Workout is implemented by every training variant. Summary and Compute
// call the formulas through it, never through the embedded Training.
type Workout interface {
	Kind() Kind
	Label() string
	DurationH() float64
	Distance() float64
	MeanSpeed() float64
	SpentCalories() (float64, error)
}

// Training holds the fields shared by all variants and the default formulas.
// It satisfies Workout on its own but has no calorie formula.
type Training struct {
	Action   int     // steps or strokes reported by the sensor
	Duration float64 // hours
	Weight   float64 // kg

	lenStep float64
}

// NewTraining validates the common fields.
func NewTraining(action int, duration, weight float64) (Training, error) {
	if action < 0 {
		return Training{}, fmt.Errorf("%w: action must not be negative, got %d", ErrInvalidPackage, action)
	}
	if !(duration > 0) || math.IsInf(duration, 0) {
		return Training{}, fmt.Errorf("%w: duration must be a positive finite number, got %g", ErrInvalidPackage, duration)
	}
	return Training{Action: action, Duration: duration, Weight: weight, lenStep: LenStep}, nil
}

func (t Training) Kind() Kind         { return "" }
func (t Training) Label() string      { return "Training" }
func (t Training) DurationH() float64 { return t.Duration }

// Distance returns the covered distance in km.
func (t Training) Distance() float64 {
	step := t.lenStep
	if step == 0 {
		step = LenStep
	}
	return float64(t.Action) * step / MInKm
}

// MeanSpeed returns the average speed in km/h.
func (t Training) MeanSpeed() float64 {
	return t.Distance() / t.Duration
}

// SpentCalories must be provided by a variant.
func (t Training) SpentCalories() (float64, error) {
	return 0, ErrUnimplementedFormula
}

// Metrics is the derived result of one training. Computed on demand, never cached.
type Metrics struct {
	Distance  float64 `json:"distance"`
	MeanSpeed float64 `json:"speed"`
	Calories  float64 `json:"calories"`
}

// Compute evaluates all formulas of w.
func Compute(w Workout) (Metrics, error) {
	calories, err := w.SpentCalories()
	if err != nil {
		return Metrics{}, err
	}
	return Metrics{
		Distance:  w.Distance(),
		MeanSpeed: w.MeanSpeed(),
		Calories:  calories,
	}, nil
}

// Summary builds the informational message for w.
func Summary(w Workout) (InfoMessage, error) {
	m, err := Compute(w)
	if err != nil {
		return InfoMessage{}, fmt.Errorf("summary for %s: %w", w.Label(), err)
	}
	return InfoMessage{
		TrainingType: w.Label(),
		Duration:     w.DurationH(),
		Distance:     m.Distance,
		Speed:        m.MeanSpeed,
		Calories:     m.Calories,
	}, nil
}
