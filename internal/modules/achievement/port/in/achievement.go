package in

import (
	"context"

	"pento/internal/modules/achievement/dto"
)

type Usecase interface {
	// Evaluate runs the full predicate battery and returns the ids that
	// transitioned from locked to unlocked in this call.
	Evaluate(ctx context.Context, input dto.EvaluateInput) ([]string, error)
	List(ctx context.Context) ([]dto.StatusOutput, error)
	Recent(ctx context.Context) ([]dto.NotificationOutput, error)
	Acknowledge(ctx context.Context) error
	Reset(ctx context.Context) error
}
