package in

import (
	"context"

	"pento/internal/modules/journal/dto"
)

type Usecase interface {
	Start(ctx context.Context, input dto.StartInput) (dto.StartOutput, error)
	Write(ctx context.Context, content string) (dto.DraftOutput, error)
	Complete(ctx context.Context, input dto.CompleteInput) (dto.CompleteOutput, error)
	Discard(ctx context.Context) error
	Current(ctx context.Context) (dto.DraftOutput, error)
	Stats(ctx context.Context) (dto.StatsOutput, error)
	StatsDetail(ctx context.Context) (dto.StatsDetailOutput, error)
	History(ctx context.Context, limit int) ([]dto.SessionOutput, error)
	GetSession(ctx context.Context, id string) (dto.SessionOutput, error)
	DeleteSession(ctx context.Context, id string) error
	ClearHistory(ctx context.Context) error
	Reindex(ctx context.Context) error
	Reset(ctx context.Context) error
}
