package rpc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hashicorp/go-plugin"
	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

const (
	PluginMapKey             = "billing"
	serviceName              = "pento.provider.v1.BillingProvider"
	jsonCodecName            = "json"
	methodGetMetadata        = "/" + serviceName + "/GetMetadata"
	methodCreateCheckout     = "/" + serviceName + "/CreateCheckout"
	methodCancelSubscription = "/" + serviceName + "/CancelSubscription"
)

var HandshakeConfig = plugin.HandshakeConfig{
	ProtocolVersion:  1,
	MagicCookieKey:   "PENTO_PROVIDER",
	MagicCookieValue: "pento",
}

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return jsonCodecName
}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

type Empty struct{}

type Metadata struct {
	Name         string   `json:"name"`
	Version      string   `json:"version"`
	Capabilities []string `json:"capabilities"`
}

type CheckoutRequest struct {
	CustomerID string `json:"customer_id"`
}

type CheckoutResponse struct {
	URL            string `json:"url"`
	CustomerID     string `json:"customer_id"`
	SubscriptionID string `json:"subscription_id"`
	PeriodEnd      int64  `json:"period_end"`
}

type CancelRequest struct {
	SubscriptionID string `json:"subscription_id"`
}

type CancelResponse struct {
	Cancelled bool `json:"cancelled"`
}

type BillingProviderServer interface {
	GetMetadata(ctx context.Context, in *Empty) (*Metadata, error)
	CreateCheckout(ctx context.Context, in *CheckoutRequest) (*CheckoutResponse, error)
	CancelSubscription(ctx context.Context, in *CancelRequest) (*CancelResponse, error)
}

type BillingProviderClient interface {
	GetMetadata(ctx context.Context) (*Metadata, error)
	CreateCheckout(ctx context.Context, in *CheckoutRequest) (*CheckoutResponse, error)
	CancelSubscription(ctx context.Context, in *CancelRequest) (*CancelResponse, error)
}

type billingProviderClient struct {
	conn *grpc.ClientConn
}

func NewBillingProviderClient(conn *grpc.ClientConn) BillingProviderClient {
	return &billingProviderClient{conn: conn}
}

func (c *billingProviderClient) GetMetadata(ctx context.Context) (*Metadata, error) {
	out := &Metadata{}
	if err := c.conn.Invoke(ctx, methodGetMetadata, &Empty{}, out, grpc.CallContentSubtype(jsonCodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *billingProviderClient) CreateCheckout(ctx context.Context, in *CheckoutRequest) (*CheckoutResponse, error) {
	out := &CheckoutResponse{}
	if err := c.conn.Invoke(ctx, methodCreateCheckout, in, out, grpc.CallContentSubtype(jsonCodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *billingProviderClient) CancelSubscription(ctx context.Context, in *CancelRequest) (*CancelResponse, error) {
	out := &CancelResponse{}
	if err := c.conn.Invoke(ctx, methodCancelSubscription, in, out, grpc.CallContentSubtype(jsonCodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

func RegisterBillingProviderServer(server grpc.ServiceRegistrar, impl BillingProviderServer) {
	server.RegisterService(&grpc.ServiceDesc{
		ServiceName: serviceName,
		HandlerType: (*BillingProviderServer)(nil),
		Methods: []grpc.MethodDesc{
			{
				MethodName: "GetMetadata",
				Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
					in := &Empty{}
					if err := dec(in); err != nil {
						return nil, err
					}
					if interceptor == nil {
						return impl.GetMetadata(ctx, in)
					}
					info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodGetMetadata}
					handler := func(ctx context.Context, req any) (any, error) {
						empty, ok := req.(*Empty)
						if !ok {
							return nil, fmt.Errorf("invalid request type")
						}
						return impl.GetMetadata(ctx, empty)
					}
					return interceptor(ctx, in, info, handler)
				},
			},
			{
				MethodName: "CreateCheckout",
				Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
					in := &CheckoutRequest{}
					if err := dec(in); err != nil {
						return nil, err
					}
					if interceptor == nil {
						return impl.CreateCheckout(ctx, in)
					}
					info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodCreateCheckout}
					handler := func(ctx context.Context, req any) (any, error) {
						inReq, ok := req.(*CheckoutRequest)
						if !ok {
							return nil, fmt.Errorf("invalid request type")
						}
						return impl.CreateCheckout(ctx, inReq)
					}
					return interceptor(ctx, in, info, handler)
				},
			},
			{
				MethodName: "CancelSubscription",
				Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
					in := &CancelRequest{}
					if err := dec(in); err != nil {
						return nil, err
					}
					if interceptor == nil {
						return impl.CancelSubscription(ctx, in)
					}
					info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodCancelSubscription}
					handler := func(ctx context.Context, req any) (any, error) {
						inReq, ok := req.(*CancelRequest)
						if !ok {
							return nil, fmt.Errorf("invalid request type")
						}
						return impl.CancelSubscription(ctx, inReq)
					}
					return interceptor(ctx, in, info, handler)
				},
			},
		},
		Streams:  []grpc.StreamDesc{},
		Metadata: "schemas/provider-rpc-v1.proto",
	}, impl)
}

type GRPCPlugin struct {
	plugin.NetRPCUnsupportedPlugin
	Impl BillingProviderServer
}

func (p *GRPCPlugin) GRPCServer(_ *plugin.GRPCBroker, server *grpc.Server) error {
	RegisterBillingProviderServer(server, p.Impl)
	return nil
}

func (p *GRPCPlugin) GRPCClient(_ context.Context, _ *plugin.GRPCBroker, conn *grpc.ClientConn) (any, error) {
	return NewBillingProviderClient(conn), nil
}

func PluginMap(impl BillingProviderServer) map[string]plugin.Plugin {
	return map[string]plugin.Plugin{
		PluginMapKey: &GRPCPlugin{Impl: impl},
	}
}
