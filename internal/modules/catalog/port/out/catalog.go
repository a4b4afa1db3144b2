package out

import (
	"context"

	"pento/internal/modules/catalog/domain"
)

type Store interface {
	Senseis(ctx context.Context) ([]domain.Sensei, error)
	Modes(ctx context.Context) ([]domain.WritingMode, error)
	Achievements(ctx context.Context) ([]domain.AchievementDef, error)
}
