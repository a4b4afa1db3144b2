package in

import (
	"context"

	"pento/internal/modules/journal/dto"
	journalin "pento/internal/modules/journal/port/in"
)

type CLIHandler struct {
	usecase journalin.Usecase
}

func NewCLIHandler(usecase journalin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Start(ctx context.Context, input dto.StartInput) (dto.StartOutput, error) {
	return h.usecase.Start(ctx, input)
}

func (h CLIHandler) Write(ctx context.Context, content string) (dto.DraftOutput, error) {
	return h.usecase.Write(ctx, content)
}

func (h CLIHandler) Complete(ctx context.Context, input dto.CompleteInput) (dto.CompleteOutput, error) {
	return h.usecase.Complete(ctx, input)
}

func (h CLIHandler) Discard(ctx context.Context) error {
	return h.usecase.Discard(ctx)
}

func (h CLIHandler) Current(ctx context.Context) (dto.DraftOutput, error) {
	return h.usecase.Current(ctx)
}

func (h CLIHandler) Stats(ctx context.Context) (dto.StatsOutput, error) {
	return h.usecase.Stats(ctx)
}

func (h CLIHandler) StatsDetail(ctx context.Context) (dto.StatsDetailOutput, error) {
	return h.usecase.StatsDetail(ctx)
}

func (h CLIHandler) History(ctx context.Context, limit int) ([]dto.SessionOutput, error) {
	return h.usecase.History(ctx, limit)
}

func (h CLIHandler) GetSession(ctx context.Context, id string) (dto.SessionOutput, error) {
	return h.usecase.GetSession(ctx, id)
}

func (h CLIHandler) DeleteSession(ctx context.Context, id string) error {
	return h.usecase.DeleteSession(ctx, id)
}

func (h CLIHandler) ClearHistory(ctx context.Context) error {
	return h.usecase.ClearHistory(ctx)
}

func (h CLIHandler) Reindex(ctx context.Context) error {
	return h.usecase.Reindex(ctx)
}

func (h CLIHandler) Reset(ctx context.Context) error {
	return h.usecase.Reset(ctx)
}
