package service

import (
	"context"
	"math/rand"

	"pento/internal/modules/catalog/domain"
	catalogout "pento/internal/modules/catalog/port/out"
	apperrors "pento/internal/platform/errors"
)

type CatalogService struct {
	store catalogout.Store
}

func NewCatalogService(store catalogout.Store) *CatalogService {
	return &CatalogService{store: store}
}

func (s *CatalogService) Senseis(ctx context.Context) ([]domain.Sensei, error) {
	return s.store.Senseis(ctx)
}

func (s *CatalogService) Sensei(ctx context.Context, id string) (domain.Sensei, error) {
	senseis, err := s.store.Senseis(ctx)
	if err != nil {
		return domain.Sensei{}, err
	}
	for _, sensei := range senseis {
		if sensei.ID == id {
			return sensei, nil
		}
	}
	return domain.Sensei{}, apperrors.ErrNotFound
}

func (s *CatalogService) Modes(ctx context.Context) ([]domain.WritingMode, error) {
	return s.store.Modes(ctx)
}

func (s *CatalogService) Mode(ctx context.Context, id string) (domain.WritingMode, error) {
	modes, err := s.store.Modes(ctx)
	if err != nil {
		return domain.WritingMode{}, err
	}
	for _, mode := range modes {
		if mode.ID == id {
			return mode, nil
		}
	}
	return domain.WritingMode{}, apperrors.ErrNotFound
}

func (s *CatalogService) Achievements(ctx context.Context) ([]domain.AchievementDef, error) {
	return s.store.Achievements(ctx)
}

func (s *CatalogService) Achievement(ctx context.Context, id string) (domain.AchievementDef, error) {
	defs, err := s.store.Achievements(ctx)
	if err != nil {
		return domain.AchievementDef{}, err
	}
	for _, def := range defs {
		if def.ID == id {
			return def, nil
		}
	}
	return domain.AchievementDef{}, apperrors.ErrNotFound
}

// RandomPrompt picks one of the sensei's prompts uniformly.
func (s *CatalogService) RandomPrompt(ctx context.Context, senseiID string) (domain.Prompt, error) {
	sensei, err := s.Sensei(ctx, senseiID)
	if err != nil {
		return domain.Prompt{}, err
	}
	return sensei.Prompts[rand.Intn(len(sensei.Prompts))], nil
}

// ChaosPrompt assembles a random setting/constraint/mood phrase.
func (s *CatalogService) ChaosPrompt() string {
	return domain.ChaosPrompt(
		rand.Intn(len(domain.ChaosSettings)),
		rand.Intn(len(domain.ChaosConstraints)),
		rand.Intn(len(domain.ChaosMoods)),
	)
}
