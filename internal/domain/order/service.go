package order

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/goaoxor/workbench/internal/repository"
)

const localTimeFormat = "2006-01-02 15:04:05"

// Service handles order operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new order service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreateRequest defines order creation inputs.
type CreateRequest struct {
	ClientName   string
	ClientEmail  string
	ProjectValue float64
	ProjectType  string
	Status       Status
	Deadline     string
	ProviderName string
	Notes        string
}

// Create validates the project value, computes the fee breakdown and stores a
// new order with a freshly assigned id.
func (s *Service) Create(ctx context.Context, actor string, req CreateRequest) (*Order, error) {
	if err := ValidateProjectValue(req.ProjectValue); err != nil {
		return nil, err
	}

	projectType := req.ProjectType
	if projectType == "" {
		projectType = "other"
	}
	status := req.Status
	if status == "" {
		status = StatusPending
	}
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	now := time.Now()
	fees := CalculateFees(req.ProjectValue)
	ord := &Order{
		ClientName:      req.ClientName,
		ClientEmail:     req.ClientEmail,
		ProjectValue:    req.ProjectValue,
		ProjectType:     projectType,
		Status:          status,
		Deadline:        req.Deadline,
		ProviderName:    req.ProviderName,
		Notes:           req.Notes,
		ClientFee:       fees.ClientFee,
		ProviderFee:     fees.ProviderFee,
		ProviderDeposit: fees.ProviderDeposit,
		ProviderBalance: fees.ProviderBalance,
		ProviderNet:     fees.ProviderNet,
		ClientCost:      fees.ClientCost,
		CreatedAt:       now.Format(localTimeFormat),
		CreatedAtISO:    now.UTC().Format(time.RFC3339),
		UpdatedAt:       now.Format(localTimeFormat),
	}

	if err := s.repo.InsertOrder(ctx, ord); err != nil {
		return nil, fmt.Errorf("creating order: %w", err)
	}
	if err := s.repo.AppendLog(ctx, fmt.Sprintf("created order: %d", ord.ID), actor); err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	return ord, nil
}

// UpdateStatus moves an order to a new status.
func (s *Service) UpdateStatus(ctx context.Context, actor string, id int, status Status) (*Order, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	ord, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	ord.Status = status
	ord.UpdatedAt = time.Now().Format(localTimeFormat)
	if err := s.repo.UpdateOrder(ctx, ord); err != nil {
		return nil, fmt.Errorf("updating order: %w", err)
	}
	if err := s.repo.AppendLog(ctx, fmt.Sprintf("updated order status: %d -> %s", id, status), actor); err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	return ord, nil
}

// EditRequest is a partial update of an order's editable fields.
type EditRequest struct {
	ClientName   *string
	ProviderName *string
	Notes        *string
}

// Edit applies a partial update to an order.
func (s *Service) Edit(ctx context.Context, actor string, id int, patch EditRequest) (*Order, error) {
	ord, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.ClientName != nil {
		ord.ClientName = *patch.ClientName
	}
	if patch.ProviderName != nil {
		ord.ProviderName = *patch.ProviderName
	}
	if patch.Notes != nil {
		ord.Notes = *patch.Notes
	}
	ord.UpdatedAt = time.Now().Format(localTimeFormat)

	if err := s.repo.UpdateOrder(ctx, ord); err != nil {
		return nil, fmt.Errorf("updating order: %w", err)
	}
	if err := s.repo.AppendLog(ctx, fmt.Sprintf("edited order: %d", id), actor); err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	return ord, nil
}

// Delete removes an order. Deleting an absent id is a silent no-op.
func (s *Service) Delete(ctx context.Context, actor string, id int) error {
	if err := s.repo.DeleteOrder(ctx, id); err != nil {
		return fmt.Errorf("deleting order: %w", err)
	}
	if err := s.repo.AppendLog(ctx, fmt.Sprintf("deleted order: %d", id), actor); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	return nil
}

// Get fetches a single order.
func (s *Service) Get(ctx context.Context, id int) (*Order, error) {
	return s.get(ctx, id)
}

// Filter narrows order listings. Name filters match case-insensitive
// substrings; the status filter is exact.
type Filter struct {
	ClientName   string
	ProviderName string
	Status       Status
}

// List returns orders matching the filter.
func (s *Service) List(ctx context.Context, f Filter) ([]Order, error) {
	orders, err := s.repo.Orders(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}

	filtered := make([]Order, 0, len(orders))
	for _, ord := range orders {
		if f.ClientName != "" && !containsFold(ord.ClientName, f.ClientName) {
			continue
		}
		if f.ProviderName != "" && !containsFold(ord.ProviderName, f.ProviderName) {
			continue
		}
		if f.Status != "" && ord.Status != f.Status {
			continue
		}
		filtered = append(filtered, ord)
	}
	return filtered, nil
}

func (s *Service) get(ctx context.Context, id int) (*Order, error) {
	ord, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("loading order: %w", err)
	}
	return ord, nil
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
