package admin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/goaoxor/workbench/internal/repository"
)

const minPasswordLen = 6

// Service handles administrator operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new administrator service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreateRequest defines administrator creation inputs.
type CreateRequest struct {
	Username string
	Password string
	Confirm  string
}

// Create registers a new administrator. The actor is the username performing
// the operation, recorded in the action log.
func (s *Service) Create(ctx context.Context, actor string, req CreateRequest) (*Administrator, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, ErrInvalidInput
	}
	if req.Password != req.Confirm {
		return nil, ErrPasswordMismatch
	}
	if len(req.Password) < minPasswordLen {
		return nil, ErrPasswordTooShort
	}

	adm := &Administrator{
		Username:       username,
		PasswordDigest: Digest(req.Password),
		LastLogin:      LastLoginNone,
	}
	if err := s.repo.InsertAdmin(ctx, adm); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateUsername
		}
		return nil, fmt.Errorf("creating administrator: %w", err)
	}

	if err := s.repo.AppendLog(ctx, fmt.Sprintf("added administrator: %s", username), actor); err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	return adm, nil
}

// Remove deletes an administrator. The last remaining administrator and the
// acting administrator itself are protected; removing an absent username is a
// silent no-op.
func (s *Service) Remove(ctx context.Context, actor, username string) error {
	admins, err := s.repo.Admins(ctx)
	if err != nil {
		return fmt.Errorf("listing administrators: %w", err)
	}
	if len(admins) <= 1 {
		return ErrLastAdminProtected
	}
	if username == actor {
		return ErrSelfDeletionForbidden
	}

	if err := s.repo.DeleteAdmin(ctx, username); err != nil {
		return fmt.Errorf("removing administrator: %w", err)
	}
	if err := s.repo.AppendLog(ctx, fmt.Sprintf("removed administrator: %s", username), actor); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	return nil
}

// ChangePassword replaces the administrator's password after verifying the old one.
func (s *Service) ChangePassword(ctx context.Context, username, oldPassword, newPassword, confirm string) error {
	if newPassword != confirm {
		return ErrPasswordMismatch
	}
	if len(newPassword) < minPasswordLen {
		return ErrPasswordTooShort
	}

	adm, err := s.repo.GetAdmin(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrAdminNotFound
		}
		return fmt.Errorf("loading administrator: %w", err)
	}
	if adm.PasswordDigest != Digest(oldPassword) {
		return ErrInvalidOldPassword
	}

	adm.PasswordDigest = Digest(newPassword)
	if err := s.repo.UpdateAdmin(ctx, adm); err != nil {
		return fmt.Errorf("updating administrator: %w", err)
	}
	if err := s.repo.AppendLog(ctx, "changed password", username); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	return nil
}

// Authenticate checks a username/password pair and stamps the last login time.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*Administrator, error) {
	adm, err := s.repo.GetAdmin(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("loading administrator: %w", err)
	}
	if adm.PasswordDigest != Digest(password) {
		return nil, ErrInvalidCredentials
	}

	adm.LastLogin = time.Now().Format("2006-01-02 15:04:05")
	if err := s.repo.UpdateAdmin(ctx, adm); err != nil {
		return nil, fmt.Errorf("updating administrator: %w", err)
	}
	if err := s.repo.AppendLog(ctx, "logged in", username); err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	return adm, nil
}

// List returns all administrators.
func (s *Service) List(ctx context.Context) ([]Administrator, error) {
	return s.repo.Admins(ctx)
}

// EnsureDefault seeds a default administrator when none exist yet.
func (s *Service) EnsureDefault(ctx context.Context, username, password string) error {
	admins, err := s.repo.Admins(ctx)
	if err != nil {
		return fmt.Errorf("listing administrators: %w", err)
	}
	if len(admins) > 0 {
		return nil
	}

	adm := &Administrator{
		Username:       username,
		PasswordDigest: Digest(password),
		LastLogin:      LastLoginNone,
	}
	if err := s.repo.InsertAdmin(ctx, adm); err != nil {
		return fmt.Errorf("seeding default administrator: %w", err)
	}
	s.logger.Info("seeded default administrator", "username", username)
	return nil
}
