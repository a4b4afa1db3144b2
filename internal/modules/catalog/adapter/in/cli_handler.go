package in

import (
	"context"

	"pento/internal/modules/catalog/dto"
	catalogin "pento/internal/modules/catalog/port/in"
)

type CLIHandler struct {
	usecase catalogin.Usecase
}

func NewCLIHandler(usecase catalogin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) ListSenseis(ctx context.Context) ([]dto.SenseiOutput, error) {
	return h.usecase.ListSenseis(ctx)
}

func (h CLIHandler) GetSensei(ctx context.Context, id string) (dto.SenseiDetailOutput, error) {
	return h.usecase.GetSensei(ctx, id)
}

func (h CLIHandler) RandomPrompt(ctx context.Context, senseiID, modeID string) (dto.PromptOutput, error) {
	return h.usecase.RandomPrompt(ctx, senseiID, modeID)
}

func (h CLIHandler) ListModes(ctx context.Context, senseiID string) ([]dto.ModeOutput, error) {
	return h.usecase.ListModes(ctx, senseiID)
}

func (h CLIHandler) ListAchievementDefs(ctx context.Context) ([]dto.AchievementDefOutput, error) {
	return h.usecase.ListAchievementDefs(ctx)
}
