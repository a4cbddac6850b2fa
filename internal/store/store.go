// Package store owns every domain collection. It is the single writer of
// persisted state: module repositories read through View and mutate through
// Update, and each successful Update rewrites the snapshot file wholesale.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ErrNotFound is returned by lookups and mutations on unknown ids.
var ErrNotFound = errors.New("not found")

// Data is the full application state. Collections preserve insertion order;
// ids are unique within a collection.
type Data struct {
	Users        []*User                    `json:"users"`
	Products     []*Product                 `json:"products"`
	Carts        map[string][]*CartItem     `json:"carts"`
	Orders       []*Order                   `json:"orders"`
	Payments     []*Payment                 `json:"payments"`
	Tracking     []*Tracking                `json:"tracking"`
	Tickets      []*Ticket                  `json:"tickets"`
	ChatMessages map[string][]*ChatMessage  `json:"chat_messages"`
	Referrals    []*Referral                `json:"referrals"`
	EnergyData   map[string][]EnergyReading `json:"energy_data"`
}

// Store guards Data behind a single lock, so every operation runs to
// completion before the next one starts. Multi-collection mutations
// (order placement) are therefore atomic: one Update call, one snapshot
// write, or nothing.
type Store struct {
	mu   sync.Mutex
	path string
	data *Data
}

// Open loads the snapshot at path, seeding a fresh store if the file does
// not exist yet. An empty path keeps the store memory-only.
func Open(path string) (*Store, error) {
	s := &Store{path: path}
	if path == "" {
		s.data = Seed()
		return s, nil
	}
	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		s.data = Seed()
		if err := s.save(); err != nil {
			return nil, fmt.Errorf("write initial snapshot: %w", err)
		}
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	data, err := decodeSnapshot(raw)
	if err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", path, err)
	}
	s.data = data
	return s, nil
}

// View runs fn with read access to the state. fn must not retain or mutate
// anything it is handed; copy what needs to escape.
func (s *Store) View(fn func(d *Data)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.data)
}

// Update runs fn with write access to the state. If fn returns an error the
// mutation is considered not to have happened and the snapshot is not
// rewritten; fn must therefore validate before touching anything.
func (s *Store) Update(fn func(d *Data) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(s.data); err != nil {
		return err
	}
	return s.save()
}

func (s *Store) save() error {
	if s.path == "" {
		return nil
	}
	raw, err := encodeSnapshot(s.data)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// snapshot is the on-disk layout. User password hashes are kept in a side
// map because User deliberately never serializes its hash.
type snapshot struct {
	Data
	PasswordHashes map[string]string `json:"password_hashes"`
}

func encodeSnapshot(d *Data) ([]byte, error) {
	snap := snapshot{Data: *d, PasswordHashes: map[string]string{}}
	for _, u := range d.Users {
		if u.PasswordHash != "" {
			snap.PasswordHashes[u.ID] = u.PasswordHash
		}
	}
	return json.MarshalIndent(snap, "", "  ")
}

func decodeSnapshot(raw []byte) (*Data, error) {
	var snap snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, err
	}
	for _, u := range snap.Users {
		u.PasswordHash = snap.PasswordHashes[u.ID]
	}
	d := snap.Data
	if d.Carts == nil {
		d.Carts = map[string][]*CartItem{}
	}
	if d.ChatMessages == nil {
		d.ChatMessages = map[string][]*ChatMessage{}
	}
	if d.EnergyData == nil {
		d.EnergyData = map[string][]EnergyReading{}
	}
	return &d, nil
}

// ── lookups shared by module repositories ────────────────────────────────────

// FindUser returns the user with the given id, or nil.
func (d *Data) FindUser(id string) *User {
	for _, u := range d.Users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

// FindUserByEmail returns the user with the given email, or nil.
func (d *Data) FindUserByEmail(email string) *User {
	for _, u := range d.Users {
		if u.Email == email {
			return u
		}
	}
	return nil
}

// FindProduct returns the product with the given id, or nil.
func (d *Data) FindProduct(id string) *Product {
	for _, p := range d.Products {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// FindOrder returns the order with the given id, or nil.
func (d *Data) FindOrder(id string) *Order {
	for _, o := range d.Orders {
		if o.ID == id {
			return o
		}
	}
	return nil
}

// FindTracking returns the tracking record for the given order id, or nil.
func (d *Data) FindTracking(orderID string) *Tracking {
	for _, t := range d.Tracking {
		if t.OrderID == orderID {
			return t
		}
	}
	return nil
}

// FindTicket returns the ticket with the given id, or nil.
func (d *Data) FindTicket(id string) *Ticket {
	for _, t := range d.Tickets {
		if t.ID == id {
			return t
		}
	}
	return nil
}
