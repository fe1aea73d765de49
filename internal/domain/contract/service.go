package contract

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/goaoxor/workbench/internal/domain/order"
	"github.com/goaoxor/workbench/internal/repository"
)

const localTimeFormat = "2006-01-02 15:04:05"

// Service handles contract operations.
type Service struct {
	repo   Repository
	orders OrderSource
	logger *slog.Logger
}

// NewService creates a new contract service.
func NewService(repo Repository, orders OrderSource, logger *slog.Logger) *Service {
	return &Service{repo: repo, orders: orders, logger: logger}
}

// GenerateRequest defines contract generation inputs. When OrderID is set the
// party and fee fields come from the referenced order; otherwise they must be
// supplied directly and fees are computed from ProjectValue.
type GenerateRequest struct {
	OrderID      int
	Type         Type
	ClientName   string
	ProviderName string
	ProjectValue float64
	ServiceType  string
}

// Generate appends a new contract record. Regeneration goes through here too:
// a contract is never mutated once written.
func (s *Service) Generate(ctx context.Context, actor string, req GenerateRequest) (*Contract, error) {
	if !req.Type.Valid() {
		return nil, ErrInvalidType
	}

	c := &Contract{ContractType: req.Type}
	if req.OrderID != 0 {
		ord, err := s.orders.GetOrder(ctx, req.OrderID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrOrderNotFound
			}
			return nil, fmt.Errorf("loading order: %w", err)
		}
		c.OrderID = ord.ID
		c.ClientName = ord.ClientName
		c.ProviderName = ord.ProviderName
		c.ProjectValue = ord.ProjectValue
		c.ClientFee = ord.ClientFee
		c.ProviderFee = ord.ProviderFee
		c.ServiceType = ord.ProjectType
	} else {
		if err := order.ValidateProjectValue(req.ProjectValue); err != nil {
			return nil, err
		}
		nextID, err := s.orders.NextOrderID(ctx)
		if err != nil {
			return nil, fmt.Errorf("reserving order id: %w", err)
		}
		fees := order.CalculateFees(req.ProjectValue)
		c.OrderID = nextID
		c.ClientName = req.ClientName
		c.ProviderName = req.ProviderName
		c.ProjectValue = req.ProjectValue
		c.ClientFee = fees.ClientFee
		c.ProviderFee = fees.ProviderFee
		c.ServiceType = req.ServiceType
	}

	now := time.Now()
	c.CreatedAt = now.Format(localTimeFormat)
	c.CreatedAtISO = now.UTC().Format(time.RFC3339)

	if err := s.repo.InsertContract(ctx, c); err != nil {
		return nil, fmt.Errorf("creating contract: %w", err)
	}
	if err := s.repo.AppendLog(ctx, fmt.Sprintf("generated contract: id %d", c.ID), actor); err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	return c, nil
}

// EditRequest is a partial update of a contract's party names.
type EditRequest struct {
	ClientName   *string
	ProviderName *string
}

// Edit updates the party names of an existing contract.
func (s *Service) Edit(ctx context.Context, actor string, id int, patch EditRequest) (*Contract, error) {
	c, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.ClientName != nil {
		c.ClientName = *patch.ClientName
	}
	if patch.ProviderName != nil {
		c.ProviderName = *patch.ProviderName
	}

	if err := s.repo.UpdateContract(ctx, c); err != nil {
		return nil, fmt.Errorf("updating contract: %w", err)
	}
	if err := s.repo.AppendLog(ctx, fmt.Sprintf("edited contract: %d", id), actor); err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	return c, nil
}

// Delete removes a contract. Deleting an absent id is a silent no-op.
func (s *Service) Delete(ctx context.Context, actor string, id int) error {
	if err := s.repo.DeleteContract(ctx, id); err != nil {
		return fmt.Errorf("deleting contract: %w", err)
	}
	if err := s.repo.AppendLog(ctx, fmt.Sprintf("deleted contract: %d", id), actor); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	return nil
}

// Get fetches a single contract.
func (s *Service) Get(ctx context.Context, id int) (*Contract, error) {
	return s.get(ctx, id)
}

// Filter narrows contract listings. Name filters match case-insensitive
// substrings, OrderID is exact, and Date is matched as a prefix of the ISO
// creation timestamp (so "2026-08" or "2026-08-30" both work).
type Filter struct {
	ClientName   string
	ProviderName string
	OrderID      int
	Date         string
}

// List returns contracts matching the filter.
func (s *Service) List(ctx context.Context, f Filter) ([]Contract, error) {
	contracts, err := s.repo.Contracts(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing contracts: %w", err)
	}

	filtered := make([]Contract, 0, len(contracts))
	for _, c := range contracts {
		if f.ClientName != "" && !containsFold(c.ClientName, f.ClientName) {
			continue
		}
		if f.ProviderName != "" && !containsFold(c.ProviderName, f.ProviderName) {
			continue
		}
		if f.OrderID != 0 && c.OrderID != f.OrderID {
			continue
		}
		if f.Date != "" && !strings.HasPrefix(c.CreatedAtISO, f.Date) {
			continue
		}
		filtered = append(filtered, c)
	}
	return filtered, nil
}

func (s *Service) get(ctx context.Context, id int) (*Contract, error) {
	c, err := s.repo.GetContract(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrContractNotFound
		}
		return nil, fmt.Errorf("loading contract: %w", err)
	}
	return c, nil
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
