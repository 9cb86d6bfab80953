package domain

import (
	"fmt"
	"math"
)

// Swimming is a pool session. Strokes cover a longer distance than steps,
// and the mean speed comes from the pool laps instead of the stroke count.
type Swimming struct {
	Training
	LengthPool float64 // m
	CountPool  int     // laps
}

const (
	swimLenStep                  = 1.38
	swimCaloriesSpeedShift       = 1.1
	swimCaloriesWeightMultiplier = 2
)

// NewSwimming creates a Swimming training.
func NewSwimming(action int, duration, weight, lengthPool float64, countPool int) (*Swimming, error) {
	t, err := NewTraining(action, duration, weight)
	if err != nil {
		return nil, err
	}
	if !(lengthPool >= 0) || math.IsInf(lengthPool, 0) {
		return nil, fmt.Errorf("%w: pool length must be a non-negative finite number, got %g", ErrInvalidPackage, lengthPool)
	}
	if countPool < 0 {
		return nil, fmt.Errorf("%w: pool count must not be negative, got %d", ErrInvalidPackage, countPool)
	}
	t.lenStep = swimLenStep
	return &Swimming{Training: t, LengthPool: lengthPool, CountPool: countPool}, nil
}

func (s *Swimming) Kind() Kind    { return KindSwimming }
func (s *Swimming) Label() string { return "Swimming" }

// MeanSpeed returns km/h over the pool laps.
func (s *Swimming) MeanSpeed() float64 {
	return s.LengthPool * float64(s.CountPool) / MInKm / s.Duration
}

// SpentCalories returns kcal burned during the swim.
func (s *Swimming) SpentCalories() (float64, error) {
	return (s.MeanSpeed() + swimCaloriesSpeedShift) * swimCaloriesWeightMultiplier * s.Weight, nil
}
