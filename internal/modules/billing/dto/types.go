package dto

type PlanOutput struct {
	Status           string
	SessionsUsed     int
	Remaining        int
	SubscriptionID   string
	CurrentPeriodEnd int64
}

type ProviderOutput struct {
	Name         string
	Version      string
	Binary       string
	Enabled      bool
	Capabilities []string
}

type RegisterProviderInput struct {
	Name         string
	Version      string
	Binary       string
	SHA256       string
	Capabilities []string
}

type CheckoutOutput struct {
	URL string
}

type DoctorReport struct {
	Name     string
	Healthy  bool
	Version  string
	Problems []string
}
