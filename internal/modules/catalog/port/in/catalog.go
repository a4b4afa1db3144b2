package in

import (
	"context"

	"pento/internal/modules/catalog/dto"
)

type Usecase interface {
	ListSenseis(ctx context.Context) ([]dto.SenseiOutput, error)
	GetSensei(ctx context.Context, id string) (dto.SenseiDetailOutput, error)
	SenseiCount(ctx context.Context) (int, error)
	RandomPrompt(ctx context.Context, senseiID, modeID string) (dto.PromptOutput, error)
	ListModes(ctx context.Context, senseiID string) ([]dto.ModeOutput, error)
	GetMode(ctx context.Context, id string) (dto.ModeOutput, error)
	ListAchievementDefs(ctx context.Context) ([]dto.AchievementDefOutput, error)
	GetAchievementDef(ctx context.Context, id string) (dto.AchievementDefOutput, error)
}
