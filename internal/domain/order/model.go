package order

// Status represents the lifecycle status of an order
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// Valid reports whether the status is one of the known values.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Order represents a freelance project order. Field names mirror the snapshot
// document format; fee fields are computed once at creation time.
type Order struct {
	ID              int     `json:"id"`
	ClientName      string  `json:"client_name"`
	ClientEmail     string  `json:"client_email"`
	ProjectValue    float64 `json:"project_value"`
	ProjectType     string  `json:"project_type"`
	Status          Status  `json:"status"`
	Deadline        string  `json:"deadline"`
	ProviderName    string  `json:"provider_name"`
	Notes           string  `json:"notes"`
	ClientFee       float64 `json:"client_fee"`
	ProviderFee     float64 `json:"provider_fee"`
	ProviderDeposit float64 `json:"provider_deposit"`
	ProviderBalance float64 `json:"provider_balance"`
	ProviderNet     float64 `json:"provider_net"`
	ClientCost      float64 `json:"client_cost"`
	CreatedAt       string  `json:"created_at"`
	CreatedAtISO    string  `json:"created_at_iso"`
	UpdatedAt       string  `json:"updated_at"`
}
