package in

import (
	"context"

	"pento/internal/modules/billing/dto"
)

// Usecase gates session starts and manages the subscription lifecycle.
type Usecase interface {
	// Plan reports the current entitlement.
	Plan() (dto.PlanOutput, error)

	// Authorize returns nil when a new session may start and
	// ErrSessionLimit when the quota is exhausted.
	Authorize() error

	// RecordUsage counts one completed session against the free quota.
	RecordUsage() error

	// Upgrade starts a checkout with the enabled provider and, on
	// success, flips the entitlement to pro.
	Upgrade(ctx context.Context) (dto.CheckoutOutput, error)

	// Cancel asks the provider to cancel and marks the entitlement
	// cancelled locally.
	Cancel(ctx context.Context) error

	// Reactivate returns a cancelled account to the free tier with a
	// fresh quota.
	Reactivate() error

	ListProviders() ([]dto.ProviderOutput, error)
	RegisterProvider(input dto.RegisterProviderInput) error
	SetProviderEnabled(name string, enabled bool) error
	RemoveProvider(name string) error
	Doctor(ctx context.Context) ([]dto.DoctorReport, error)
}
