package domain

import (
	"fmt"
	"math"
)

// SportsWalking is a walking session; the walker's height enters the calorie formula.
type SportsWalking struct {
	Training
	Height float64 // cm
}

const (
	walkCaloriesWeightMultiplier = 0.035
	walkSpeedHeightMultiplier    = 0.029
)

// NewSportsWalking creates a SportsWalking training.
func NewSportsWalking(action int, duration, weight, height float64) (*SportsWalking, error) {
	t, err := NewTraining(action, duration, weight)
	if err != nil {
		return nil, err
	}
	if !(height > 0) || math.IsInf(height, 0) {
		return nil, fmt.Errorf("%w: height must be a positive finite number, got %g", ErrInvalidPackage, height)
	}
	return &SportsWalking{Training: t, Height: height}, nil
}

func (w *SportsWalking) Kind() Kind    { return KindWalking }
func (w *SportsWalking) Label() string { return "SportsWalking" }

// SpentCalories returns kcal burned during the walk.
// The speed/height term is a floor division, which zeroes it for any realistic walk.
func (w *SportsWalking) SpentCalories() (float64, error) {
	caloriesPerWeight := walkCaloriesWeightMultiplier * w.Weight
	speed := w.MeanSpeed()
	caloriesPerSpeed := FloorDiv(math.Pow(speed, 2), w.Height) * walkSpeedHeightMultiplier * w.Weight
	durationInMin := w.Duration * MinInH
	// Each product is rounded before the sum; no fused multiply-add.
	return (float64(caloriesPerWeight) + float64(caloriesPerSpeed)) * durationInMin, nil
}

// FloorDiv divides x by y rounding towards negative infinity and returns the
// quotient as a float. The quotient is derived from the fmod remainder so that
// it stays consistent with x == q*y + mod for values where x/y rounds up to an
// integer.
func FloorDiv(x, y float64) float64 {
	mod := math.Mod(x, y)
	div := (x - mod) / y
	if mod != 0 && (y < 0) != (mod < 0) {
		div -= 1
	}
	if div == 0 {
		return math.Copysign(0, x/y)
	}
	q := math.Floor(div)
	if div-q > 0.5 {
		q += 1
	}
	return q
}
