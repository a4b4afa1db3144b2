package in

import (
	"context"

	"pento/internal/modules/achievement/dto"
	achievementin "pento/internal/modules/achievement/port/in"
)

type CLIHandler struct {
	usecase achievementin.Usecase
}

func NewCLIHandler(usecase achievementin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context) ([]dto.StatusOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Recent(ctx context.Context, acknowledge bool) ([]dto.NotificationOutput, error) {
	pending, err := h.usecase.Recent(ctx)
	if err != nil {
		return nil, err
	}
	if acknowledge {
		if err := h.usecase.Acknowledge(ctx); err != nil {
			return nil, err
		}
	}
	return pending, nil
}
