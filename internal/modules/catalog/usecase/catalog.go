package usecase

import (
	"context"
	"strings"

	"pento/internal/modules/catalog/domain"
	"pento/internal/modules/catalog/dto"
	catalogin "pento/internal/modules/catalog/port/in"
	"pento/internal/modules/catalog/service"
	apperrors "pento/internal/platform/errors"
)

type Interactor struct {
	svc *service.CatalogService
}

func NewInteractor(svc *service.CatalogService) catalogin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) ListSenseis(ctx context.Context) ([]dto.SenseiOutput, error) {
	senseis, err := i.svc.Senseis(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SenseiOutput, 0, len(senseis))
	for _, sensei := range senseis {
		out = append(out, toSenseiOutput(sensei))
	}
	return out, nil
}

func (i *Interactor) GetSensei(ctx context.Context, id string) (dto.SenseiDetailOutput, error) {
	if strings.TrimSpace(id) == "" {
		return dto.SenseiDetailOutput{}, apperrors.ErrInvalidInput
	}
	sensei, err := i.svc.Sensei(ctx, id)
	if err != nil {
		return dto.SenseiDetailOutput{}, err
	}
	detail := dto.SenseiDetailOutput{SenseiOutput: toSenseiOutput(sensei)}
	if len(sensei.Prompts) > 0 {
		detail.SamplePrompt = sensei.Prompts[0].Text
	}
	return detail, nil
}

func (i *Interactor) SenseiCount(ctx context.Context) (int, error) {
	senseis, err := i.svc.Senseis(ctx)
	if err != nil {
		return 0, err
	}
	return len(senseis), nil
}

// RandomPrompt resolves the prompt for a new session. Chaos modes generate
// a synthetic prompt instead of drawing from the sensei's list.
func (i *Interactor) RandomPrompt(ctx context.Context, senseiID, modeID string) (dto.PromptOutput, error) {
	if strings.TrimSpace(senseiID) == "" {
		return dto.PromptOutput{}, apperrors.ErrInvalidInput
	}
	mode := domain.WritingMode{}
	if modeID != "" {
		found, err := i.svc.Mode(ctx, modeID)
		if err != nil {
			return dto.PromptOutput{}, err
		}
		if !found.AllowsSensei(senseiID) {
			return dto.PromptOutput{}, apperrors.ErrSenseiRestricted
		}
		mode = found
	}
	if mode.ChaosPrompts {
		return dto.PromptOutput{Text: i.svc.ChaosPrompt(), Chaos: true}, nil
	}
	prompt, err := i.svc.RandomPrompt(ctx, senseiID)
	if err != nil {
		return dto.PromptOutput{}, err
	}
	return dto.PromptOutput{PromptID: prompt.ID, Text: prompt.Text}, nil
}

func (i *Interactor) ListModes(ctx context.Context, senseiID string) ([]dto.ModeOutput, error) {
	modes, err := i.svc.Modes(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ModeOutput, 0, len(modes))
	for _, mode := range modes {
		if senseiID != "" && !mode.AllowsSensei(senseiID) {
			continue
		}
		out = append(out, toModeOutput(mode))
	}
	return out, nil
}

func (i *Interactor) GetMode(ctx context.Context, id string) (dto.ModeOutput, error) {
	if strings.TrimSpace(id) == "" {
		return dto.ModeOutput{}, apperrors.ErrInvalidInput
	}
	mode, err := i.svc.Mode(ctx, id)
	if err != nil {
		return dto.ModeOutput{}, err
	}
	return toModeOutput(mode), nil
}

func (i *Interactor) ListAchievementDefs(ctx context.Context) ([]dto.AchievementDefOutput, error) {
	defs, err := i.svc.Achievements(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AchievementDefOutput, 0, len(defs))
	for _, def := range defs {
		out = append(out, toAchievementOutput(def))
	}
	return out, nil
}

func (i *Interactor) GetAchievementDef(ctx context.Context, id string) (dto.AchievementDefOutput, error) {
	def, err := i.svc.Achievement(ctx, id)
	if err != nil {
		return dto.AchievementDefOutput{}, err
	}
	return toAchievementOutput(def), nil
}

func toSenseiOutput(sensei domain.Sensei) dto.SenseiOutput {
	return dto.SenseiOutput{
		ID:          sensei.ID,
		Name:        sensei.Name,
		Kanji:       sensei.Kanji,
		Meaning:     sensei.Meaning,
		Philosophy:  sensei.Philosophy,
		PromptCount: len(sensei.Prompts),
	}
}

func toModeOutput(mode domain.WritingMode) dto.ModeOutput {
	return dto.ModeOutput{
		ID:                mode.ID,
		Name:              mode.Name,
		Description:       mode.Description,
		DurationSec:       mode.DurationSec,
		Timer:             mode.Timer,
		Countdown:         mode.Countdown,
		Backspace:         mode.Backspace,
		ChaosPrompts:      mode.ChaosPrompts,
		SenseiRestriction: mode.SenseiRestriction,
	}
}

func toAchievementOutput(def domain.AchievementDef) dto.AchievementDefOutput {
	return dto.AchievementDefOutput{
		ID:          def.ID,
		Name:        def.Name,
		Description: def.Description,
		Icon:        def.Icon,
		Category:    string(def.Category),
	}
}
