package domain

// Running is a run session. It adds nothing to Training except the calorie formula.
type Running struct {
	Training
}

const (
	runCaloriesSpeedMultiplier = 18
	runCaloriesSpeedShift      = 20
)

// NewRunning creates a Running training.
func NewRunning(action int, duration, weight float64) (*Running, error) {
	t, err := NewTraining(action, duration, weight)
	if err != nil {
		return nil, err
	}
	return &Running{Training: t}, nil
}

func (r *Running) Kind() Kind    { return KindRunning }
func (r *Running) Label() string { return "Running" }

// SpentCalories returns kcal burned during the run.
func (r *Running) SpentCalories() (float64, error) {
	// The product is rounded before the shift; no fused multiply-add.
	caloriesPerSpeed := (float64(runCaloriesSpeedMultiplier*r.MeanSpeed()) - runCaloriesSpeedShift) *
		r.Weight / MInKm
	durationInMin := r.Duration * MinInH
	return caloriesPerSpeed * durationInMin, nil
}
