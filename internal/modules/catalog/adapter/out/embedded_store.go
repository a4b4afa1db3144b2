package out

import (
	"context"
	"embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"pento/internal/modules/catalog/domain"
	catalogout "pento/internal/modules/catalog/port/out"
)

//go:embed data/senseis.yaml data/modes.yaml data/achievements.yaml
var dataFS embed.FS

// EmbeddedStore serves the static catalogs from YAML compiled into the
// binary. Files are parsed once and validated on first access.
type EmbeddedStore struct {
	once         sync.Once
	err          error
	senseis      []domain.Sensei
	modes        []domain.WritingMode
	achievements []domain.AchievementDef
}

func NewEmbeddedStore() catalogout.Store {
	return &EmbeddedStore{}
}

func (s *EmbeddedStore) load() error {
	s.once.Do(func() {
		if s.err = decodeFile("data/senseis.yaml", &s.senseis); s.err != nil {
			return
		}
		if s.err = decodeFile("data/modes.yaml", &s.modes); s.err != nil {
			return
		}
		if s.err = decodeFile("data/achievements.yaml", &s.achievements); s.err != nil {
			return
		}
		for _, sensei := range s.senseis {
			if err := sensei.Validate(); err != nil {
				s.err = fmt.Errorf("senseis.yaml: %w", err)
				return
			}
		}
		for _, mode := range s.modes {
			if err := mode.Validate(); err != nil {
				s.err = fmt.Errorf("modes.yaml: %w", err)
				return
			}
		}
		for _, def := range s.achievements {
			if err := def.Validate(); err != nil {
				s.err = fmt.Errorf("achievements.yaml: %w", err)
				return
			}
		}
	})
	return s.err
}

func decodeFile[T any](name string, into *[]T) error {
	raw, err := dataFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(raw, into); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

func (s *EmbeddedStore) Senseis(_ context.Context) ([]domain.Sensei, error) {
	if err := s.load(); err != nil {
		return nil, err
	}
	return s.senseis, nil
}

func (s *EmbeddedStore) Modes(_ context.Context) ([]domain.WritingMode, error) {
	if err := s.load(); err != nil {
		return nil, err
	}
	return s.modes, nil
}

func (s *EmbeddedStore) Achievements(_ context.Context) ([]domain.AchievementDef, error) {
	if err := s.load(); err != nil {
		return nil, err
	}
	return s.achievements, nil
}
