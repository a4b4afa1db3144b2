package usecase

import (
	"context"

	"pento/internal/modules/achievement/dto"
	achievementin "pento/internal/modules/achievement/port/in"
	"pento/internal/modules/achievement/service"
	catalogin "pento/internal/modules/catalog/port/in"
)

type Interactor struct {
	svc     *service.AchievementService
	catalog catalogin.Usecase
}

func NewInteractor(svc *service.AchievementService, catalog catalogin.Usecase) achievementin.Usecase {
	return &Interactor{svc: svc, catalog: catalog}
}

func (i *Interactor) Evaluate(ctx context.Context, input dto.EvaluateInput) ([]string, error) {
	senseiTotal := 0
	if i.catalog != nil {
		total, err := i.catalog.SenseiCount(ctx)
		if err != nil {
			return nil, err
		}
		senseiTotal = total
	}
	return i.svc.Evaluate(ctx, input, senseiTotal)
}

func (i *Interactor) List(ctx context.Context) ([]dto.StatusOutput, error) {
	defs, err := i.catalog.ListAchievementDefs(ctx)
	if err != nil {
		return nil, err
	}
	unlocked, err := i.svc.Unlocked(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StatusOutput, 0, len(defs))
	for _, def := range defs {
		status := dto.StatusOutput{
			ID:          def.ID,
			Name:        def.Name,
			Description: def.Description,
			Icon:        def.Icon,
			Category:    def.Category,
		}
		if at, ok := unlocked[def.ID]; ok {
			status.Unlocked = true
			status.UnlockedAt = at
		}
		out = append(out, status)
	}
	return out, nil
}

func (i *Interactor) Recent(ctx context.Context) ([]dto.NotificationOutput, error) {
	pending, err := i.svc.Pending(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NotificationOutput, 0, len(pending))
	for _, item := range pending {
		note := dto.NotificationOutput{AchievementID: item.AchievementID, UnlockedAt: item.UnlockedAt}
		if i.catalog != nil {
			if def, err := i.catalog.GetAchievementDef(ctx, item.AchievementID); err == nil {
				note.Name = def.Name
				note.Icon = def.Icon
			}
		}
		out = append(out, note)
	}
	return out, nil
}

func (i *Interactor) Acknowledge(ctx context.Context) error {
	return i.svc.Drain(ctx)
}

func (i *Interactor) Reset(ctx context.Context) error {
	return i.svc.Reset(ctx)
}
