package domain

import (
	"fmt"
	"math"
)

// Package is one sensor packet: a type code and positional values.
type Package struct {
	WorkoutType string    `mapstructure:"type" json:"type"`
	Data        []float64 `mapstructure:"data" json:"data"`
}

type builder func(data []float64) (Workout, error)

// builders maps each type code to a constructor taking the packet values
// in field declaration order.
var builders = map[Kind]builder{
	KindRunning: func(data []float64) (Workout, error) {
		if err := checkArity(KindRunning, data, 3); err != nil {
			return nil, err
		}
		action, err := intField("action", data[0])
		if err != nil {
			return nil, err
		}
		r, err := NewRunning(action, data[1], data[2])
		if err != nil {
			return nil, err
		}
		return r, nil
	},
	KindWalking: func(data []float64) (Workout, error) {
		if err := checkArity(KindWalking, data, 4); err != nil {
			return nil, err
		}
		action, err := intField("action", data[0])
		if err != nil {
			return nil, err
		}
		w, err := NewSportsWalking(action, data[1], data[2], data[3])
		if err != nil {
			return nil, err
		}
		return w, nil
	},
	KindSwimming: func(data []float64) (Workout, error) {
		if err := checkArity(KindSwimming, data, 5); err != nil {
			return nil, err
		}
		action, err := intField("action", data[0])
		if err != nil {
			return nil, err
		}
		countPool, err := intField("count_pool", data[4])
		if err != nil {
			return nil, err
		}
		s, err := NewSwimming(action, data[1], data[2], data[3], countPool)
		if err != nil {
			return nil, err
		}
		return s, nil
	},
}

// ReadPackage builds the training variant for workoutType from data.
// A wrong number of values is reported by the variant builder as ErrInvalidPackage.
func ReadPackage(workoutType string, data []float64) (Workout, error) {
	build, ok := builders[Kind(workoutType)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWorkoutType, workoutType)
	}
	return build(data)
}

// Build is ReadPackage for an already assembled Package.
func (p Package) Build() (Workout, error) {
	return ReadPackage(p.WorkoutType, p.Data)
}

func checkArity(k Kind, data []float64, want int) error {
	if len(data) != want {
		return fmt.Errorf("%w: %s expects %d values, got %d", ErrInvalidPackage, k, want, len(data))
	}
	return nil
}

func intField(name string, v float64) (int, error) {
	if v != math.Trunc(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s must be an integer, got %g", ErrInvalidPackage, name, v)
	}
	// -float64(math.MinInt) is 2^63 (2^31 on 32-bit), one past math.MaxInt.
	if v < math.MinInt || v >= -float64(math.MinInt) {
		return 0, fmt.Errorf("%w: %s is out of the integer range, got %g", ErrInvalidPackage, name, v)
	}
	return int(v), nil
}
