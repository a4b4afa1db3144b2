package domain_test

import (
	"testing"

	"pento/internal/modules/billing/domain"
)

func TestEntitlementGate(t *testing.T) {
	tests := []struct {
		name        string
		entitlement domain.Entitlement
		canWrite    bool
		remaining   int
	}{
		{name: "fresh free account", entitlement: domain.NewEntitlement(), canWrite: true, remaining: 3},
		{name: "free with two used", entitlement: domain.Entitlement{Status: domain.StatusFree, SessionsUsed: 2}, canWrite: true, remaining: 1},
		{name: "free at limit", entitlement: domain.Entitlement{Status: domain.StatusFree, SessionsUsed: 3}, canWrite: false, remaining: 0},
		{name: "free over limit", entitlement: domain.Entitlement{Status: domain.StatusFree, SessionsUsed: 5}, canWrite: false, remaining: 0},
		{name: "pro ignores usage", entitlement: domain.Entitlement{Status: domain.StatusPro, SessionsUsed: 50}, canWrite: true, remaining: -1},
		{name: "cancelled blocks", entitlement: domain.Entitlement{Status: domain.StatusCancelled, SessionsUsed: 0}, canWrite: false, remaining: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entitlement.CanWrite(); got != tt.canWrite {
				t.Fatalf("CanWrite() = %v, want %v", got, tt.canWrite)
			}
			if got := tt.entitlement.Remaining(); got != tt.remaining {
				t.Fatalf("Remaining() = %d, want %d", got, tt.remaining)
			}
		})
	}
}

func TestManifestValidation(t *testing.T) {
	valid := domain.Manifest{
		Name:         "stripe",
		Version:      "1.0.0",
		Binary:       "/usr/local/bin/pento-stripe",
		SHA256:       "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		Capabilities: []domain.Capability{domain.CapabilityCheckout},
	}

	tests := []struct {
		name      string
		mutate    func(*domain.Manifest)
		shouldErr bool
	}{
		{name: "valid", mutate: func(m *domain.Manifest) {}, shouldErr: false},
		{name: "missing name", mutate: func(m *domain.Manifest) { m.Name = "" }, shouldErr: true},
		{name: "missing version", mutate: func(m *domain.Manifest) { m.Version = " " }, shouldErr: true},
		{name: "missing binary", mutate: func(m *domain.Manifest) { m.Binary = "" }, shouldErr: true},
		{name: "short sha256", mutate: func(m *domain.Manifest) { m.SHA256 = "abc" }, shouldErr: true},
		{name: "uppercase sha256", mutate: func(m *domain.Manifest) { m.SHA256 = "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA" }, shouldErr: true},
		{name: "no capabilities", mutate: func(m *domain.Manifest) { m.Capabilities = nil }, shouldErr: true},
		{name: "unknown capability", mutate: func(m *domain.Manifest) { m.Capabilities = []domain.Capability{"webhooks"} }, shouldErr: true},
		{name: "duplicate capability", mutate: func(m *domain.Manifest) {
			m.Capabilities = []domain.Capability{domain.CapabilityCheckout, domain.CapabilityCheckout}
		}, shouldErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manifest := valid
			tt.mutate(&manifest)
			err := manifest.Validate()
			if tt.shouldErr && err == nil {
				t.Fatalf("expected error, got nil")
			}
			if !tt.shouldErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
