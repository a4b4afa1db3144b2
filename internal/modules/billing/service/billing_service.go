package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"pento/internal/modules/billing/domain"
	"pento/internal/modules/billing/port/out"
	apperrors "pento/internal/platform/errors"
)

type BillingService struct {
	entitlements out.EntitlementStore
	manifests    out.ManifestStore
	host         out.ProviderHost
}

func NewBillingService(entitlements out.EntitlementStore, manifests out.ManifestStore, host out.ProviderHost) *BillingService {
	return &BillingService{entitlements: entitlements, manifests: manifests, host: host}
}

func (s *BillingService) Entitlement() domain.Entitlement {
	return s.entitlements.Load()
}

func (s *BillingService) Authorize() error {
	entitlement := s.entitlements.Load()
	if entitlement.CanWrite() {
		return nil
	}
	return apperrors.ErrSessionLimit
}

// RecordUsage counts the session in every status; the counter only gates
// writes while the account is free or cancelled.
func (s *BillingService) RecordUsage() error {
	entitlement := s.entitlements.Load()
	entitlement.SessionsUsed++
	s.entitlements.Save(entitlement)
	return nil
}

// enabledManifest picks the single enabled provider.
func (s *BillingService) enabledManifest() (domain.Manifest, error) {
	manifests, err := s.manifests.List()
	if err != nil {
		return domain.Manifest{}, fmt.Errorf("list providers: %w", err)
	}
	for _, manifest := range manifests {
		if manifest.Enabled {
			return manifest, nil
		}
	}
	return domain.Manifest{}, domain.ErrProviderDisabled
}

func (s *BillingService) Upgrade(ctx context.Context) (domain.CheckoutSession, error) {
	manifest, err := s.enabledManifest()
	if err != nil {
		return domain.CheckoutSession{}, err
	}
	if !manifest.HasCapability(domain.CapabilityCheckout) {
		return domain.CheckoutSession{}, fmt.Errorf("%w: %s", domain.ErrCapabilityMissing, domain.CapabilityCheckout)
	}
	if err := checksumMatches(manifest.Binary, manifest.SHA256); err != nil {
		return domain.CheckoutSession{}, err
	}
	session, err := s.host.CreateCheckout(ctx, manifest)
	if err != nil {
		return domain.CheckoutSession{}, fmt.Errorf("provider %s: %w", manifest.Name, err)
	}

	entitlement := s.entitlements.Load()
	entitlement.Status = domain.StatusPro
	entitlement.SessionsUsed = 0
	entitlement.CustomerID = session.CustomerID
	entitlement.SubscriptionID = session.SubscriptionID
	entitlement.CurrentPeriodEnd = session.PeriodEnd
	s.entitlements.Save(entitlement)
	return session, nil
}

// Cancel moves the account to cancelled from any status. The provider is
// only consulted when a live subscription is on file; usage stays untouched.
func (s *BillingService) Cancel(ctx context.Context) error {
	entitlement := s.entitlements.Load()
	if entitlement.SubscriptionID != "" {
		manifest, err := s.enabledManifest()
		if err != nil {
			return err
		}
		if err := checksumMatches(manifest.Binary, manifest.SHA256); err != nil {
			return err
		}
		if err := s.host.CancelSubscription(ctx, manifest, entitlement.SubscriptionID); err != nil {
			return fmt.Errorf("provider %s: %w", manifest.Name, err)
		}
	}
	entitlement.Status = domain.StatusCancelled
	s.entitlements.Save(entitlement)
	return nil
}

func (s *BillingService) Reactivate() error {
	entitlement := s.entitlements.Load()
	if entitlement.Status != domain.StatusCancelled {
		return fmt.Errorf("%w: account is not cancelled", apperrors.ErrInvalidInput)
	}
	entitlement.Status = domain.StatusFree
	entitlement.SessionsUsed = 0
	entitlement.SubscriptionID = ""
	entitlement.CurrentPeriodEnd = 0
	s.entitlements.Save(entitlement)
	return nil
}

func (s *BillingService) ListManifests() ([]domain.Manifest, error) {
	return s.manifests.List()
}

func (s *BillingService) Register(manifest domain.Manifest) error {
	if err := manifest.Validate(); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	return s.manifests.Put(manifest)
}

func (s *BillingService) SetEnabled(name string, enabled bool) error {
	manifest, err := s.manifests.Get(name)
	if err != nil {
		return err
	}
	if enabled {
		// Only one provider may be enabled at a time.
		manifests, err := s.manifests.List()
		if err != nil {
			return err
		}
		for _, other := range manifests {
			if other.Enabled && other.Name != name {
				other.Enabled = false
				if err := s.manifests.Put(other); err != nil {
					return err
				}
			}
		}
	}
	manifest.Enabled = enabled
	return s.manifests.Put(manifest)
}

func (s *BillingService) Remove(name string) error {
	return s.manifests.Remove(name)
}

// Doctor probes every registered provider and reports mismatches between
// the manifest and what the binary says about itself.
func (s *BillingService) Doctor(ctx context.Context) ([]domain.Manifest, []domain.Metadata, [][]string, error) {
	manifests, err := s.manifests.List()
	if err != nil {
		return nil, nil, nil, err
	}
	metadata := make([]domain.Metadata, len(manifests))
	problems := make([][]string, len(manifests))
	for i, manifest := range manifests {
		if err := checksumMatches(manifest.Binary, manifest.SHA256); err != nil {
			problems[i] = append(problems[i], err.Error())
			continue
		}
		meta, err := s.host.GetMetadata(ctx, manifest)
		if err != nil {
			problems[i] = append(problems[i], err.Error())
			continue
		}
		metadata[i] = meta
		if meta.Name != manifest.Name {
			problems[i] = append(problems[i], fmt.Sprintf("binary reports name %q", meta.Name))
		}
		if meta.Version != manifest.Version {
			problems[i] = append(problems[i], fmt.Sprintf("binary reports version %q, manifest says %q", meta.Version, manifest.Version))
		}
		for _, capability := range manifest.Capabilities {
			found := false
			for _, reported := range meta.Capabilities {
				if reported == capability {
					found = true
					break
				}
			}
			if !found {
				problems[i] = append(problems[i], fmt.Sprintf("binary does not report capability %q", capability))
			}
		}
	}
	return manifests, metadata, problems, nil
}

func checksumMatches(path string, expected string) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read provider binary: %w", err)
	}
	hash := sha256.Sum256(payload)
	if hex.EncodeToString(hash[:]) != expected {
		return fmt.Errorf("%w: %s", domain.ErrChecksumMismatch, filepath.Base(path))
	}
	return nil
}
