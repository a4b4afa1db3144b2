package usecase

import (
	"context"

	"pento/internal/modules/billing/domain"
	"pento/internal/modules/billing/dto"
	"pento/internal/modules/billing/service"
)

type Interactor struct {
	billing *service.BillingService
}

func NewInteractor(billing *service.BillingService) *Interactor {
	return &Interactor{billing: billing}
}

func (i *Interactor) Plan() (dto.PlanOutput, error) {
	entitlement := i.billing.Entitlement()
	return dto.PlanOutput{
		Status:           string(entitlement.Status),
		SessionsUsed:     entitlement.SessionsUsed,
		Remaining:        entitlement.Remaining(),
		SubscriptionID:   entitlement.SubscriptionID,
		CurrentPeriodEnd: entitlement.CurrentPeriodEnd,
	}, nil
}

func (i *Interactor) Authorize() error {
	return i.billing.Authorize()
}

func (i *Interactor) RecordUsage() error {
	return i.billing.RecordUsage()
}

func (i *Interactor) Upgrade(ctx context.Context) (dto.CheckoutOutput, error) {
	session, err := i.billing.Upgrade(ctx)
	if err != nil {
		return dto.CheckoutOutput{}, err
	}
	return dto.CheckoutOutput{URL: session.URL}, nil
}

func (i *Interactor) Cancel(ctx context.Context) error {
	return i.billing.Cancel(ctx)
}

func (i *Interactor) Reactivate() error {
	return i.billing.Reactivate()
}

func (i *Interactor) ListProviders() ([]dto.ProviderOutput, error) {
	manifests, err := i.billing.ListManifests()
	if err != nil {
		return nil, err
	}
	outputs := make([]dto.ProviderOutput, len(manifests))
	for idx, manifest := range manifests {
		outputs[idx] = toProviderOutput(manifest)
	}
	return outputs, nil
}

func (i *Interactor) RegisterProvider(input dto.RegisterProviderInput) error {
	capabilities := make([]domain.Capability, len(input.Capabilities))
	for idx, capability := range input.Capabilities {
		capabilities[idx] = domain.Capability(capability)
	}
	return i.billing.Register(domain.Manifest{
		Name:         input.Name,
		Version:      input.Version,
		Binary:       input.Binary,
		SHA256:       input.SHA256,
		Capabilities: capabilities,
	})
}

func (i *Interactor) SetProviderEnabled(name string, enabled bool) error {
	return i.billing.SetEnabled(name, enabled)
}

func (i *Interactor) RemoveProvider(name string) error {
	return i.billing.Remove(name)
}

func (i *Interactor) Doctor(ctx context.Context) ([]dto.DoctorReport, error) {
	manifests, metadata, problems, err := i.billing.Doctor(ctx)
	if err != nil {
		return nil, err
	}
	reports := make([]dto.DoctorReport, len(manifests))
	for idx, manifest := range manifests {
		reports[idx] = dto.DoctorReport{
			Name:     manifest.Name,
			Healthy:  len(problems[idx]) == 0,
			Version:  metadata[idx].Version,
			Problems: problems[idx],
		}
	}
	return reports, nil
}

func toProviderOutput(manifest domain.Manifest) dto.ProviderOutput {
	capabilities := make([]string, len(manifest.Capabilities))
	for idx, capability := range manifest.Capabilities {
		capabilities[idx] = string(capability)
	}
	return dto.ProviderOutput{
		Name:         manifest.Name,
		Version:      manifest.Version,
		Binary:       manifest.Binary,
		Enabled:      manifest.Enabled,
		Capabilities: capabilities,
	}
}
