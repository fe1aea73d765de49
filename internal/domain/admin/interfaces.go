package admin

import "context"

// Repository provides administrator persistence.
type Repository interface {
	Admins(ctx context.Context) ([]Administrator, error)
	GetAdmin(ctx context.Context, username string) (*Administrator, error)
	InsertAdmin(ctx context.Context, adm *Administrator) error
	UpdateAdmin(ctx context.Context, adm *Administrator) error
	DeleteAdmin(ctx context.Context, username string) error
	AppendLog(ctx context.Context, action, username string) error
}
