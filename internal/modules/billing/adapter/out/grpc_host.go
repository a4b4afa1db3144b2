package out

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"time"

	hclog "github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"

	providerrpc "pento/internal/modules/billing/adapter/out/rpc"
	"pento/internal/modules/billing/domain"
	billingout "pento/internal/modules/billing/port/out"
)

const (
	defaultStartTimeout = 3 * time.Second
	defaultCallTimeout  = 10 * time.Second
)

// GRPCHost runs provider binaries as one-shot subprocesses. Each call
// starts the process, performs the rpc, and kills it on return.
type GRPCHost struct{}

func NewGRPCHost() billingout.ProviderHost {
	return &GRPCHost{}
}

func (h *GRPCHost) GetMetadata(ctx context.Context, manifest domain.Manifest) (domain.Metadata, error) {
	client, closeFn, err := h.connect(manifest)
	if err != nil {
		return domain.Metadata{}, err
	}
	defer closeFn()

	callCtx, cancel := h.callContext(ctx)
	defer cancel()

	meta, err := client.GetMetadata(callCtx)
	if err != nil {
		return domain.Metadata{}, fmt.Errorf("get metadata: %w", err)
	}
	capabilities := make([]domain.Capability, 0, len(meta.Capabilities))
	for _, capability := range meta.Capabilities {
		capabilities = append(capabilities, domain.Capability(capability))
	}
	return domain.Metadata{Name: meta.Name, Version: meta.Version, Capabilities: capabilities}, nil
}

func (h *GRPCHost) CreateCheckout(ctx context.Context, manifest domain.Manifest) (domain.CheckoutSession, error) {
	client, closeFn, err := h.connect(manifest)
	if err != nil {
		return domain.CheckoutSession{}, err
	}
	defer closeFn()

	callCtx, cancel := h.callContext(ctx)
	defer cancel()

	response, err := client.CreateCheckout(callCtx, &providerrpc.CheckoutRequest{})
	if err != nil {
		return domain.CheckoutSession{}, fmt.Errorf("create checkout: %w", err)
	}
	return domain.CheckoutSession{
		URL:            response.URL,
		CustomerID:     response.CustomerID,
		SubscriptionID: response.SubscriptionID,
		PeriodEnd:      response.PeriodEnd,
	}, nil
}

func (h *GRPCHost) CancelSubscription(ctx context.Context, manifest domain.Manifest, subscriptionID string) error {
	client, closeFn, err := h.connect(manifest)
	if err != nil {
		return err
	}
	defer closeFn()

	callCtx, cancel := h.callContext(ctx)
	defer cancel()

	response, err := client.CancelSubscription(callCtx, &providerrpc.CancelRequest{SubscriptionID: subscriptionID})
	if err != nil {
		return fmt.Errorf("cancel subscription: %w", err)
	}
	if !response.Cancelled {
		return fmt.Errorf("provider declined to cancel subscription %s", subscriptionID)
	}
	return nil
}

func (h *GRPCHost) connect(manifest domain.Manifest) (providerrpc.BillingProviderClient, func(), error) {
	client := plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig:  providerrpc.HandshakeConfig,
		AllowedProtocols: []plugin.Protocol{plugin.ProtocolGRPC},
		Plugins:          providerrpc.PluginMap(nil),
		Cmd:              exec.Command(manifest.Binary),
		Managed:          true,
		StartTimeout:     defaultStartTimeout,
		Logger:           hclog.New(&hclog.LoggerOptions{Output: io.Discard, Level: hclog.NoLevel}),
	})
	closeFn := func() { client.Kill() }

	rpcClient, err := client.Client()
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("start provider client: %w", err)
	}
	raw, err := rpcClient.Dispense(providerrpc.PluginMapKey)
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("dispense provider: %w", err)
	}
	typed, ok := raw.(providerrpc.BillingProviderClient)
	if !ok {
		closeFn()
		return nil, nil, fmt.Errorf("provider rpc client type mismatch")
	}
	return typed, closeFn, nil
}

func (h *GRPCHost) callContext(parent context.Context) (context.Context, context.CancelFunc) {
	if _, ok := parent.Deadline(); ok {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, defaultCallTimeout)
}
