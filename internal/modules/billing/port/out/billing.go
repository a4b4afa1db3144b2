package out

import (
	"context"

	"pento/internal/modules/billing/domain"
)

// EntitlementStore persists the local billing state.
type EntitlementStore interface {
	Load() domain.Entitlement
	Save(entitlement domain.Entitlement)
}

// ManifestStore persists the registered provider manifests.
type ManifestStore interface {
	List() ([]domain.Manifest, error)
	Get(name string) (domain.Manifest, error)
	Put(manifest domain.Manifest) error
	Remove(name string) error
}

// ProviderHost launches a provider binary and proxies calls to it. The
// host verifies the binary against the manifest checksum before starting
// it and tears the process down when the call returns.
type ProviderHost interface {
	GetMetadata(ctx context.Context, manifest domain.Manifest) (domain.Metadata, error)
	CreateCheckout(ctx context.Context, manifest domain.Manifest) (domain.CheckoutSession, error)
	CancelSubscription(ctx context.Context, manifest domain.Manifest, subscriptionID string) error
}
