// Package store holds the single in-memory document backing the workbench:
// administrators, orders, contracts and the action log. It implements the
// repository interfaces of every domain package behind one RWMutex, which
// makes each operation atomic with respect to the others, including a
// wholesale snapshot replace.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/goaoxor/workbench/internal/domain/admin"
	"github.com/goaoxor/workbench/internal/domain/contract"
	"github.com/goaoxor/workbench/internal/domain/order"
	"github.com/goaoxor/workbench/internal/repository"
)

// DocumentVersion is stamped on freshly initialized documents.
const DocumentVersion = "1.0.0"

const localTimeFormat = "2006-01-02 15:04:05"

// LogEntry is one append-only action log record.
type LogEntry struct {
	Action    string `json:"action"`
	Username  string `json:"username"`
	Timestamp string `json:"timestamp"`
	ISO       string `json:"iso"`
}

// Document is the serialisable root of all state.
type Document struct {
	Version   string                `json:"version"`
	Admins    []admin.Administrator `json:"admins"`
	Orders    []order.Order         `json:"orders"`
	Contracts []contract.Contract   `json:"contracts"`
	Logs      []LogEntry            `json:"logs"`
	Settings  map[string]any        `json:"settings"`
}

// Store owns the document. All reads return copies; all mutations run under
// the write lock and fire change notifications afterwards.
type Store struct {
	mu   sync.RWMutex
	doc  Document
	subs []func()
}

// New creates a store with an empty document.
func New() *Store {
	return &Store{
		doc: Document{
			Version:   DocumentVersion,
			Admins:    []admin.Administrator{},
			Orders:    []order.Order{},
			Contracts: []contract.Contract{},
			Logs:      []LogEntry{},
			Settings:  map[string]any{},
		},
	}
}

// Subscribe registers a callback fired after every mutating call. Callbacks
// run outside the store lock, so they may read the store freely.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

func (s *Store) notify() {
	s.mu.RLock()
	subs := make([]func(), len(s.subs))
	copy(subs, s.subs)
	s.mu.RUnlock()
	for _, fn := range subs {
		fn()
	}
}

// Snapshot returns a deep copy of the current document.
func (s *Store) Snapshot() Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyDocument(s.doc)
}

// Replace swaps in a new document wholesale. Used by snapshot import only.
func (s *Store) Replace(_ context.Context, doc Document) error {
	s.mu.Lock()
	s.doc = copyDocument(doc)
	s.mu.Unlock()
	s.notify()
	return nil
}

// AppendLog records an action. An empty username is attributed to "system".
func (s *Store) AppendLog(_ context.Context, action, username string) error {
	if username == "" {
		username = "system"
	}
	now := time.Now()
	entry := LogEntry{
		Action:    action,
		Username:  username,
		Timestamp: now.Format(localTimeFormat),
		ISO:       now.UTC().Format(time.RFC3339),
	}
	s.mu.Lock()
	s.doc.Logs = append(s.doc.Logs, entry)
	s.mu.Unlock()
	s.notify()
	return nil
}

// Logs returns all action log entries.
func (s *Store) Logs(_ context.Context) ([]LogEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]LogEntry, len(s.doc.Logs))
	copy(out, s.doc.Logs)
	return out, nil
}

// Admins returns all administrators.
func (s *Store) Admins(_ context.Context) ([]admin.Administrator, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]admin.Administrator, len(s.doc.Admins))
	copy(out, s.doc.Admins)
	return out, nil
}

// GetAdmin fetches an administrator by username.
func (s *Store) GetAdmin(_ context.Context, username string) (*admin.Administrator, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.doc.Admins {
		if a.Username == username {
			cp := a
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

// InsertAdmin adds an administrator, rejecting duplicate usernames.
func (s *Store) InsertAdmin(_ context.Context, adm *admin.Administrator) error {
	s.mu.Lock()
	for _, a := range s.doc.Admins {
		if a.Username == adm.Username {
			s.mu.Unlock()
			return repository.ErrDuplicate
		}
	}
	s.doc.Admins = append(s.doc.Admins, *adm)
	s.mu.Unlock()
	s.notify()
	return nil
}

// UpdateAdmin replaces a stored administrator by username.
func (s *Store) UpdateAdmin(_ context.Context, adm *admin.Administrator) error {
	s.mu.Lock()
	for i, a := range s.doc.Admins {
		if a.Username == adm.Username {
			s.doc.Admins[i] = *adm
			s.mu.Unlock()
			s.notify()
			return nil
		}
	}
	s.mu.Unlock()
	return repository.ErrNotFound
}

// DeleteAdmin removes an administrator. Absent usernames are a silent no-op.
func (s *Store) DeleteAdmin(_ context.Context, username string) error {
	s.mu.Lock()
	kept := s.doc.Admins[:0]
	for _, a := range s.doc.Admins {
		if a.Username != username {
			kept = append(kept, a)
		}
	}
	s.doc.Admins = kept
	s.mu.Unlock()
	s.notify()
	return nil
}

// Orders returns all orders.
func (s *Store) Orders(_ context.Context) ([]order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]order.Order, len(s.doc.Orders))
	copy(out, s.doc.Orders)
	return out, nil
}

// GetOrder fetches an order by id.
func (s *Store) GetOrder(_ context.Context, id int) (*order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.doc.Orders {
		if o.ID == id {
			cp := o
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

// InsertOrder stores a new order, assigning the next id (max existing + 1).
func (s *Store) InsertOrder(_ context.Context, ord *order.Order) error {
	s.mu.Lock()
	ord.ID = nextOrderIDLocked(s.doc.Orders)
	s.doc.Orders = append(s.doc.Orders, *ord)
	s.mu.Unlock()
	s.notify()
	return nil
}

// UpdateOrder replaces a stored order by id.
func (s *Store) UpdateOrder(_ context.Context, ord *order.Order) error {
	s.mu.Lock()
	for i, o := range s.doc.Orders {
		if o.ID == ord.ID {
			s.doc.Orders[i] = *ord
			s.mu.Unlock()
			s.notify()
			return nil
		}
	}
	s.mu.Unlock()
	return repository.ErrNotFound
}

// DeleteOrder removes an order. Absent ids are a silent no-op.
func (s *Store) DeleteOrder(_ context.Context, id int) error {
	s.mu.Lock()
	kept := s.doc.Orders[:0]
	for _, o := range s.doc.Orders {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	s.doc.Orders = kept
	s.mu.Unlock()
	s.notify()
	return nil
}

// NextOrderID returns the id the next inserted order would receive.
func (s *Store) NextOrderID(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return nextOrderIDLocked(s.doc.Orders), nil
}

// Contracts returns all contracts.
func (s *Store) Contracts(_ context.Context) ([]contract.Contract, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]contract.Contract, len(s.doc.Contracts))
	copy(out, s.doc.Contracts)
	return out, nil
}

// GetContract fetches a contract by id.
func (s *Store) GetContract(_ context.Context, id int) (*contract.Contract, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.doc.Contracts {
		if c.ID == id {
			cp := c
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

// InsertContract stores a new contract, assigning the next id.
func (s *Store) InsertContract(_ context.Context, c *contract.Contract) error {
	s.mu.Lock()
	maxID := 0
	for _, existing := range s.doc.Contracts {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	c.ID = maxID + 1
	s.doc.Contracts = append(s.doc.Contracts, *c)
	s.mu.Unlock()
	s.notify()
	return nil
}

// UpdateContract replaces a stored contract by id.
func (s *Store) UpdateContract(_ context.Context, c *contract.Contract) error {
	s.mu.Lock()
	for i, existing := range s.doc.Contracts {
		if existing.ID == c.ID {
			s.doc.Contracts[i] = *c
			s.mu.Unlock()
			s.notify()
			return nil
		}
	}
	s.mu.Unlock()
	return repository.ErrNotFound
}

// DeleteContract removes a contract. Absent ids are a silent no-op.
func (s *Store) DeleteContract(_ context.Context, id int) error {
	s.mu.Lock()
	kept := s.doc.Contracts[:0]
	for _, c := range s.doc.Contracts {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.doc.Contracts = kept
	s.mu.Unlock()
	s.notify()
	return nil
}

func nextOrderIDLocked(orders []order.Order) int {
	maxID := 0
	for _, o := range orders {
		if o.ID > maxID {
			maxID = o.ID
		}
	}
	return maxID + 1
}

func copyDocument(doc Document) Document {
	cp := doc
	cp.Admins = append([]admin.Administrator{}, doc.Admins...)
	cp.Orders = append([]order.Order{}, doc.Orders...)
	cp.Contracts = append([]contract.Contract{}, doc.Contracts...)
	cp.Logs = append([]LogEntry{}, doc.Logs...)
	cp.Settings = make(map[string]any, len(doc.Settings))
	for k, v := range doc.Settings {
		cp.Settings[k] = v
	}
	return cp
}
