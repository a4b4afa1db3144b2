package in

import (
	"context"

	"pento/internal/modules/billing/dto"
	billingin "pento/internal/modules/billing/port/in"
)

type CLIHandler struct {
	usecase billingin.Usecase
}

func NewCLIHandler(usecase billingin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Plan() (dto.PlanOutput, error) {
	return h.usecase.Plan()
}

func (h CLIHandler) Upgrade(ctx context.Context) (dto.CheckoutOutput, error) {
	return h.usecase.Upgrade(ctx)
}

func (h CLIHandler) Cancel(ctx context.Context) error {
	return h.usecase.Cancel(ctx)
}

func (h CLIHandler) Reactivate() error {
	return h.usecase.Reactivate()
}

func (h CLIHandler) ListProviders() ([]dto.ProviderOutput, error) {
	return h.usecase.ListProviders()
}

func (h CLIHandler) RegisterProvider(input dto.RegisterProviderInput) error {
	return h.usecase.RegisterProvider(input)
}

func (h CLIHandler) SetProviderEnabled(name string, enabled bool) error {
	return h.usecase.SetProviderEnabled(name, enabled)
}

func (h CLIHandler) RemoveProvider(name string) error {
	return h.usecase.RemoveProvider(name)
}

func (h CLIHandler) Doctor(ctx context.Context) ([]dto.DoctorReport, error) {
	return h.usecase.Doctor(ctx)
}
