package contract

import (
	"context"

	"github.com/goaoxor/workbench/internal/domain/order"
)

// Repository provides contract persistence. InsertContract assigns the id.
type Repository interface {
	Contracts(ctx context.Context) ([]Contract, error)
	GetContract(ctx context.Context, id int) (*Contract, error)
	InsertContract(ctx context.Context, c *Contract) error
	UpdateContract(ctx context.Context, c *Contract) error
	DeleteContract(ctx context.Context, id int) error
	AppendLog(ctx context.Context, action, username string) error
}

// OrderSource provides order access for contract generation.
type OrderSource interface {
	GetOrder(ctx context.Context, id int) (*order.Order, error)
	NextOrderID(ctx context.Context) (int, error)
}
