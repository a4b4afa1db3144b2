package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

type Status string

const (
	StatusFree      Status = "free"
	StatusPro       Status = "pro"
	StatusCancelled Status = "cancelled"
)

// FreeSessionLimit is the number of sessions a free account may complete.
const FreeSessionLimit = 3

var (
	ErrProviderDisabled  = errors.New("billing provider is disabled")
	ErrChecksumMismatch  = errors.New("billing provider checksum mismatch")
	ErrCapabilityMissing = errors.New("billing provider capability missing")
)

// Entitlement is the local billing state. SessionsUsed is meaningful for
// gating only while the account is free or cancelled.
type Entitlement struct {
	Status           Status `json:"status"`
	SessionsUsed     int    `json:"sessions_used"`
	CustomerID       string `json:"customer_id,omitempty"`
	SubscriptionID   string `json:"subscription_id,omitempty"`
	CurrentPeriodEnd int64  `json:"current_period_end,omitempty"`
}

func NewEntitlement() Entitlement {
	return Entitlement{Status: StatusFree}
}

// CanWrite is the gate predicate for starting a new session.
func (e Entitlement) CanWrite() bool {
	switch e.Status {
	case StatusPro:
		return true
	case StatusCancelled:
		return false
	default:
		return e.SessionsUsed < FreeSessionLimit
	}
}

// Remaining reports sessions left on the free tier; -1 means unlimited.
func (e Entitlement) Remaining() int {
	if e.Status == StatusPro {
		return -1
	}
	remaining := FreeSessionLimit - e.SessionsUsed
	if remaining < 0 {
		return 0
	}
	return remaining
}

type Capability string

const (
	CapabilityCheckout Capability = "checkout"
	CapabilityPortal   Capability = "portal"
)

var sha256Pattern = regexp.MustCompile(`^[a-f0-9]{64}$`)

// Manifest describes one external billing-provider binary.
type Manifest struct {
	Name         string       `json:"name"`
	Version      string       `json:"version"`
	Binary       string       `json:"binary"`
	SHA256       string       `json:"sha256"`
	Enabled      bool         `json:"enabled"`
	Capabilities []Capability `json:"capabilities"`
}

func (m Manifest) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("provider name is required")
	}
	if strings.TrimSpace(m.Version) == "" {
		return fmt.Errorf("provider version is required")
	}
	if strings.TrimSpace(m.Binary) == "" {
		return fmt.Errorf("provider binary path is required")
	}
	if !sha256Pattern.MatchString(m.SHA256) {
		return fmt.Errorf("provider sha256 must be lowercase 64-char hex")
	}
	if len(m.Capabilities) == 0 {
		return fmt.Errorf("provider capabilities are required")
	}
	seen := map[Capability]struct{}{}
	for _, capability := range m.Capabilities {
		if err := capability.Validate(); err != nil {
			return err
		}
		if _, ok := seen[capability]; ok {
			return fmt.Errorf("duplicate capability: %s", capability)
		}
		seen[capability] = struct{}{}
	}
	return nil
}

func (c Capability) Validate() error {
	switch c {
	case CapabilityCheckout, CapabilityPortal:
		return nil
	default:
		return fmt.Errorf("unknown capability: %s", c)
	}
}

func (m Manifest) HasCapability(capability Capability) bool {
	for _, c := range m.Capabilities {
		if c == capability {
			return true
		}
	}
	return false
}

// Metadata is what a provider reports about itself over rpc.
type Metadata struct {
	Name         string
	Version      string
	Capabilities []Capability
}

// CheckoutSession is the provider's answer to a checkout request: the URL
// the user opens to pay, plus the provider-side identifiers.
type CheckoutSession struct {
	URL            string
	CustomerID     string
	SubscriptionID string
	PeriodEnd      int64
}
