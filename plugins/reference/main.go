// Reference billing provider. It implements the provider wire contract with
// deterministic fake data so the host path can be exercised without a real
// payment backend.
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/go-plugin"

	billingrpc "pento/internal/modules/billing/adapter/out/rpc"
)

type server struct{}

func (s *server) GetMetadata(_ context.Context, _ *billingrpc.Empty) (*billingrpc.Metadata, error) {
	return &billingrpc.Metadata{
		Name:         "reference",
		Version:      "1.0.0",
		Capabilities: []string{"checkout", "portal"},
	}, nil
}

func (s *server) CreateCheckout(_ context.Context, in *billingrpc.CheckoutRequest) (*billingrpc.CheckoutResponse, error) {
	customer := in.CustomerID
	if customer == "" {
		customer = "cus_reference_001"
	}
	return &billingrpc.CheckoutResponse{
		URL:            fmt.Sprintf("https://billing.example.com/checkout/%s", customer),
		CustomerID:     customer,
		SubscriptionID: "sub_reference_001",
		PeriodEnd:      time.Now().AddDate(0, 1, 0).Unix(),
	}, nil
}

func (s *server) CancelSubscription(_ context.Context, in *billingrpc.CancelRequest) (*billingrpc.CancelResponse, error) {
	if in.SubscriptionID == "" {
		return nil, fmt.Errorf("missing subscription id")
	}
	return &billingrpc.CancelResponse{Cancelled: true}, nil
}

func main() {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: billingrpc.HandshakeConfig,
		Plugins:         billingrpc.PluginMap(&server{}),
		GRPCServer:      plugin.DefaultGRPCServer,
	})
}
