package state

import (
	"encoding/json"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Slot is one durable key: a single JSON document in its own file. Loads
// fail soft — a missing or malformed file yields the caller's default —
// and write failures are logged and swallowed, so the caller's in-memory
// value stays authoritative. Slots are independent; nothing coordinates
// writes across them.
type Slot[T any] struct {
	path   string
	logger *zap.Logger
}

func NewSlot[T any](dir, name string, logger *zap.Logger) *Slot[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Slot[T]{path: filepath.Join(dir, name), logger: logger}
}

func (s *Slot[T]) Path() string {
	return s.path
}

func (s *Slot[T]) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

func (s *Slot[T]) Load(def T) T {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("state slot unreadable", zap.String("path", s.path), zap.Error(err))
		}
		return def
	}
	value := def
	if err := json.Unmarshal(raw, &value); err != nil {
		s.logger.Warn("state slot malformed", zap.String("path", s.path), zap.Error(err))
		return def
	}
	return value
}

func (s *Slot[T]) Save(value T) {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		s.logger.Warn("state dir unavailable", zap.String("path", s.path), zap.Error(err))
		return
	}
	raw, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		s.logger.Warn("state slot marshal failed", zap.String("path", s.path), zap.Error(err))
		return
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		s.logger.Warn("state slot write failed", zap.String("path", s.path), zap.Error(err))
	}
}

func (s *Slot[T]) Clear() {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		s.logger.Warn("state slot remove failed", zap.String("path", s.path), zap.Error(err))
	}
}
