package domain

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistanceUsesStepLength(t *testing.T) {
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

	action := int(rnd.Int63n(20000-1000) + 1000)
	duration := float64(rnd.Int63n(3)) + rnd.Float64() + 0.1
	weight := float64(rnd.Int63n(140-50) + 50)

	run, err := NewRunning(action, duration, weight)
	require.NoError(t, err)
	assert.Equal(t, float64(action)*0.65/1000, run.Distance())
	assert.Equal(t, run.Distance()/duration, run.MeanSpeed())

	walk, err := NewSportsWalking(action, duration, weight, 180)
	require.NoError(t, err)
	assert.Equal(t, float64(action)*0.65/1000, walk.Distance())

	swim, err := NewSwimming(action, duration, weight, 25, 40)
	require.NoError(t, err)
	assert.Equal(t, float64(action)*1.38/1000, swim.Distance())
}

func TestSwimmingMeanSpeedIgnoresStrokes(t *testing.T) {
	a, err := NewSwimming(100, 2, 70, 50, 30)
	require.NoError(t, err)
	b, err := NewSwimming(5000, 2, 70, 50, 30)
	require.NoError(t, err)

	assert.Equal(t, 50.0*30/1000/2, a.MeanSpeed())
	assert.Equal(t, a.MeanSpeed(), b.MeanSpeed())
	assert.NotEqual(t, a.Distance(), b.Distance())
}

func TestRunningSpentCalories(t *testing.T) {
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

	action := int(rnd.Int63n(10000-1000) + 1000)
	duration := float64(rnd.Int63n(3)) + rnd.Float64() + 0.1
	weight := float64(rnd.Int63n(140-80) + 80)

	run, err := NewRunning(action, duration, weight)
	require.NoError(t, err)

	speed := float64(action) * 0.65 / 1000 / duration
	expected := (18*speed - 20) * weight / 1000 * (duration * 60)

	got, err := run.SpentCalories()
	require.NoError(t, err)
	assert.InDelta(t, expected, got, 1e-9)
}

func TestWalkingSpentCaloriesFloorDivision(t *testing.T) {
	// 19.5 km/h squared is 380.25; floor(380.25 / 180) == 2.
	walk, err := NewSportsWalking(30000, 1, 80, 180)
	require.NoError(t, err)

	got, err := walk.SpentCalories()
	require.NoError(t, err)
	assert.InDelta(t, (0.035*80+2*0.029*80)*60, got, 1e-9)

	// Below the height threshold the speed term vanishes.
	slow, err := NewSportsWalking(9000, 1, 75, 180)
	require.NoError(t, err)
	got, err = slow.SpentCalories()
	require.NoError(t, err)
	assert.InDelta(t, 0.035*75*60, got, 1e-9)
}

func TestSwimmingSpentCalories(t *testing.T) {
	swim, err := NewSwimming(720, 1, 80, 25, 40)
	require.NoError(t, err)

	got, err := swim.SpentCalories()
	require.NoError(t, err)
	assert.InDelta(t, 336.0, got, 1e-9)
}

func TestBaseTrainingHasNoCalorieFormula(t *testing.T) {
	base, err := NewTraining(1000, 1, 70)
	require.NoError(t, err)

	_, err = base.SpentCalories()
	require.ErrorIs(t, err, ErrUnimplementedFormula)

	_, err = Summary(base)
	require.ErrorIs(t, err, ErrUnimplementedFormula)
}

func TestConstructorsRejectInvalidInput(t *testing.T) {
	_, err := NewRunning(1000, 0, 70)
	assert.ErrorIs(t, err, ErrInvalidPackage)

	_, err = NewRunning(-1, 1, 70)
	assert.ErrorIs(t, err, ErrInvalidPackage)

	_, err = NewSportsWalking(1000, 1, 70, 0)
	assert.ErrorIs(t, err, ErrInvalidPackage)

	_, err = NewSwimming(1000, 1, 70, -25, 10)
	assert.ErrorIs(t, err, ErrInvalidPackage)

	_, err = NewSwimming(1000, 1, 70, 25, -1)
	assert.ErrorIs(t, err, ErrInvalidPackage)
}

func TestConstructorsRejectNonFiniteInput(t *testing.T) {
	nan, inf := math.NaN(), math.Inf(1)

	for _, d := range []float64{nan, inf, math.Inf(-1)} {
		_, err := NewRunning(15000, d, 75)
		assert.ErrorIs(t, err, ErrInvalidPackage, "duration %g", d)

		_, err = NewSportsWalking(15000, d, 75, 180)
		assert.ErrorIs(t, err, ErrInvalidPackage, "duration %g", d)

		_, err = NewSwimming(720, d, 80, 25, 40)
		assert.ErrorIs(t, err, ErrInvalidPackage, "duration %g", d)
	}

	_, err := NewSportsWalking(9000, 1, 75, nan)
	assert.ErrorIs(t, err, ErrInvalidPackage)
	_, err = NewSportsWalking(9000, 1, 75, inf)
	assert.ErrorIs(t, err, ErrInvalidPackage)

	_, err = NewSwimming(720, 1, 80, nan, 40)
	assert.ErrorIs(t, err, ErrInvalidPackage)
	_, err = NewSwimming(720, 1, 80, inf, 40)
	assert.ErrorIs(t, err, ErrInvalidPackage)
}

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		x, y, want float64
	}{
		{7, 2, 3},
		{-7, 2, -4},
		{7, -2, -4},
		{-7, -2, 3},
		{360, 180, 2},
		{34.2225, 180, 0},
		{-0.5, 5, -1},
		{5.5, 0.5, 11},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FloorDiv(tt.x, tt.y), "FloorDiv(%g, %g)", tt.x, tt.y)
	}

	assert.False(t, math.Signbit(FloorDiv(0, 5)))
	assert.True(t, math.Signbit(FloorDiv(0, -5)))
}
