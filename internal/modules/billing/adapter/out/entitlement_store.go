package out

import (
	"go.uber.org/zap"

	"pento/internal/modules/billing/domain"
	"pento/internal/platform/state"
)

// FileEntitlementStore keeps the billing state in subscription.json.
type FileEntitlementStore struct {
	slot *state.Slot[domain.Entitlement]
}

func NewFileEntitlementStore(dir string, logger *zap.Logger) *FileEntitlementStore {
	return &FileEntitlementStore{slot: state.NewSlot[domain.Entitlement](dir, "subscription.json", logger)}
}

func (s *FileEntitlementStore) Load() domain.Entitlement {
	return s.slot.Load(domain.NewEntitlement())
}

func (s *FileEntitlementStore) Save(entitlement domain.Entitlement) {
	s.slot.Save(entitlement)
}
