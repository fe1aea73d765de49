package contract

// Type distinguishes which party a contract is issued for
type Type string

const (
	TypeClient   Type = "client"
	TypeProvider Type = "provider"
)

// Valid reports whether the contract type is known.
func (t Type) Valid() bool {
	return t == TypeClient || t == TypeProvider
}

// Contract is a generated contract record. OrderID is a soft reference: the
// order may have been deleted since, and direct generation stamps the next
// hypothetical order id.
type Contract struct {
	ID           int     `json:"id"`
	OrderID      int     `json:"order_id"`
	ClientName   string  `json:"client_name"`
	ProviderName string  `json:"provider_name"`
	ProjectValue float64 `json:"project_value"`
	ClientFee    float64 `json:"client_fee"`
	ProviderFee  float64 `json:"provider_fee"`
	ContractType Type    `json:"contract_type"`
	ServiceType  string  `json:"service_type"`
	CreatedAt    string  `json:"created_at"`
	CreatedAtISO string  `json:"created_at_iso"`
}
