package out

import (
	"fmt"
	"path/filepath"
	"sort"

	"go.uber.org/zap"

	"pento/internal/modules/billing/domain"
	apperrors "pento/internal/platform/errors"
	"pento/internal/platform/state"
)

// FileManifestStore keeps provider manifests in providers/providers.json.
type FileManifestStore struct {
	slot *state.Slot[[]domain.Manifest]
}

func NewFileManifestStore(dir string, logger *zap.Logger) *FileManifestStore {
	return &FileManifestStore{slot: state.NewSlot[[]domain.Manifest](filepath.Join(dir, "providers"), "providers.json", logger)}
}

func (s *FileManifestStore) List() ([]domain.Manifest, error) {
	manifests := s.slot.Load(nil)
	sort.Slice(manifests, func(i, j int) bool { return manifests[i].Name < manifests[j].Name })
	return manifests, nil
}

func (s *FileManifestStore) Get(name string) (domain.Manifest, error) {
	for _, manifest := range s.slot.Load(nil) {
		if manifest.Name == name {
			return manifest, nil
		}
	}
	return domain.Manifest{}, fmt.Errorf("%w: provider %q", apperrors.ErrNotFound, name)
}

func (s *FileManifestStore) Put(manifest domain.Manifest) error {
	manifests := s.slot.Load(nil)
	replaced := false
	for i, existing := range manifests {
		if existing.Name == manifest.Name {
			manifests[i] = manifest
			replaced = true
			break
		}
	}
	if !replaced {
		manifests = append(manifests, manifest)
	}
	s.slot.Save(manifests)
	return nil
}

func (s *FileManifestStore) Remove(name string) error {
	manifests := s.slot.Load(nil)
	kept := manifests[:0]
	found := false
	for _, manifest := range manifests {
		if manifest.Name == name {
			found = true
			continue
		}
		kept = append(kept, manifest)
	}
	if !found {
		return fmt.Errorf("%w: provider %q", apperrors.ErrNotFound, name)
	}
	s.slot.Save(kept)
	return nil
}
