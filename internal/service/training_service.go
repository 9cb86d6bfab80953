package service

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/observability"
	"context"
	"errors"
	"io"
	"log"
)

// --- Service Interface ---

// Result is the outcome of one package of a batch. Exactly one of Info and Err is set.
type Result struct {
	Package domain.Package
	Info    *domain.InfoMessage
	Err     error
}

type TrainingService interface {
	// ShowTrainingInfo dispatches one package and summarises it.
	ShowTrainingInfo(ctx context.Context, pkg domain.Package) (*domain.InfoMessage, error)

	// ProcessPackages summarises packages in input order.
	ProcessPackages(ctx context.Context, pkgs []domain.Package) ([]Result, error)
}

// Options tune a TrainingService.
type Options struct {
	// SkipFailed keeps processing a batch after a failed package instead of aborting.
	SkipFailed bool
	Logger     *log.Logger
}

// --- Service Implementation ---

// trainingService implements the TrainingService interface.
type trainingService struct {
	skipFailed bool
	logger     *log.Logger
}

// NewTrainingService creates a new instance of trainingService.
func NewTrainingService(opts Options) TrainingService {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &trainingService{
		skipFailed: opts.SkipFailed,
		logger:     logger,
	}
}

func (s *trainingService) ShowTrainingInfo(ctx context.Context, pkg domain.Package) (*domain.InfoMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	workout, err := pkg.Build()
	if err != nil {
		s.fail(pkg, err)
		return nil, err
	}

	info, err := domain.Summary(workout)
	if err != nil {
		s.fail(pkg, err)
		return nil, err
	}

	observability.RecordTraining(info.TrainingType, info.Calories)
	return &info, nil
}

func (s *trainingService) ProcessPackages(ctx context.Context, pkgs []domain.Package) ([]Result, error) {
	results := make([]Result, 0, len(pkgs))
	for _, pkg := range pkgs {
		info, err := s.ShowTrainingInfo(ctx, pkg)
		if err != nil {
			// Cancellation always stops the batch.
			if !s.skipFailed || ctx.Err() != nil {
				return results, err
			}
			results = append(results, Result{Package: pkg, Err: err})
			continue
		}
		results = append(results, Result{Package: pkg, Info: info})
	}
	return results, nil
}

func (s *trainingService) fail(pkg domain.Package, err error) {
	reason := errorReason(err)
	observability.RecordError(reason)
	s.logger.Printf("ERROR: Failed to process %q package %v: %v", pkg.WorkoutType, pkg.Data, err)
}

func errorReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnknownWorkoutType):
		return observability.ReasonUnknownType
	case errors.Is(err, domain.ErrInvalidPackage):
		return observability.ReasonInvalidPackage
	case errors.Is(err, domain.ErrUnimplementedFormula):
		return observability.ReasonUnimplemented
	default:
		return observability.ReasonOther
	}
}
