// Package store is the central in-memory state shared by every
// handler. There is no persistence behind it: restarting the process
// starts from the seed snapshot (or empty) again.
package store

import (
	"sync"
	"time"

	"github.com/lumiere-dining/api/internal/model"
)

// Collection is a mutex-guarded, insertion-ordered set of records
// keyed by id. Insertion order is what list endpoints paginate over.
type Collection[T any] struct {
	mu    sync.RWMutex
	items []T
	id    func(T) string
}

func NewCollection[T any](id func(T) string) *Collection[T] {
	return &Collection[T]{id: id}
}

// List returns a copy of the collection in insertion order.
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if c.id(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func (c *Collection[T]) Insert(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, item)
}

// Replace swaps the record with the same id in place. Returns false if
// no record matched; the collection is unchanged in that case.
func (c *Collection[T]) Replace(item T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.id(c.items[i]) == c.id(item) {
			c.items[i] = item
			return true
		}
	}
	return false
}

// Upsert is insert-if-absent-else-replace-by-id.
func (c *Collection[T]) Upsert(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.id(c.items[i]) == c.id(item) {
			c.items[i] = item
			return
		}
	}
	c.items = append(c.items, item)
}

func (c *Collection[T]) Delete(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.id(c.items[i]) == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// SetAll replaces the whole collection, used by restore and seeding.
func (c *Collection[T]) SetAll(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make([]T, len(items))
	copy(c.items, items)
}

// Store aggregates every collection plus the single settings record.
type Store struct {
	Reservations *Collection[model.Reservation]
	MenuItems    *Collection[model.MenuItem]
	Categories   *Collection[model.Category]
	Catalog      *Collection[model.CatalogItem]
	Invoices     *Collection[model.Invoice]
	Bills        *Collection[model.Bill]
	Purchases    *Collection[model.Purchase]
	Suppliers    *Collection[model.Supplier]
	Staff        *Collection[model.StaffMember]
	Users        *Collection[model.User]
	Payments     *Collection[model.Payment]
	Refunds      *Collection[model.Refund]
	Pages        *Collection[model.Page]
	Messages     *Collection[model.ContactMessage]
	Activity     *Collection[model.ActivityEntry]

	settingsMu sync.RWMutex
	settings   model.Settings
}

func New() *Store {
	return &Store{
		Reservations: NewCollection(func(r model.Reservation) string { return r.ID }),
		MenuItems:    NewCollection(func(m model.MenuItem) string { return m.ID }),
		Categories:   NewCollection(func(c model.Category) string { return c.ID }),
		Catalog:      NewCollection(func(c model.CatalogItem) string { return c.ID }),
		Invoices:     NewCollection(func(i model.Invoice) string { return i.ID }),
		Bills:        NewCollection(func(b model.Bill) string { return b.ID }),
		Purchases:    NewCollection(func(p model.Purchase) string { return p.ID }),
		Suppliers:    NewCollection(func(s model.Supplier) string { return s.ID }),
		Staff:        NewCollection(func(s model.StaffMember) string { return s.ID }),
		Users:        NewCollection(func(u model.User) string { return u.ID }),
		Payments:     NewCollection(func(p model.Payment) string { return p.ID }),
		Refunds:      NewCollection(func(r model.Refund) string { return r.ID }),
		Pages:        NewCollection(func(p model.Page) string { return p.ID }),
		Messages:     NewCollection(func(m model.ContactMessage) string { return m.ID }),
		Activity:     NewCollection(func(a model.ActivityEntry) string { return a.ID }),
	}
}

func (s *Store) Settings() model.Settings {
	s.settingsMu.RLock()
	defer s.settingsMu.RUnlock()
	return s.settings
}

func (s *Store) SetSettings(v model.Settings) {
	s.settingsMu.Lock()
	defer s.settingsMu.Unlock()
	s.settings = v
}

// SnapshotUser is a user record as stored in a snapshot. model.User
// never serializes the password hash, but a snapshot must carry it or
// restoring would wipe every credential; snapshots only ever travel
// over the admin-role backup endpoint and the seed file.
type SnapshotUser struct {
	model.User
	PasswordHash string `json:"password_hash"`
}

func snapshotUsers(users []model.User) []SnapshotUser {
	out := make([]SnapshotUser, len(users))
	for i, u := range users {
		out[i] = SnapshotUser{User: u, PasswordHash: u.PasswordHash}
	}
	return out
}

func restoreUsers(users []SnapshotUser) []model.User {
	out := make([]model.User, len(users))
	for i, u := range users {
		out[i] = u.User
		out[i].PasswordHash = u.PasswordHash
	}
	return out
}

// Snapshot is the full store state as one serializable value. It backs
// the settings screen's backup/restore and the seed file.
type Snapshot struct {
	CreatedAt    time.Time             `json:"created_at"`
	Reservations []model.Reservation   `json:"reservations"`
	MenuItems    []model.MenuItem      `json:"menu_items"`
	Categories   []model.Category      `json:"categories"`
	Catalog      []model.CatalogItem   `json:"catalog"`
	Invoices     []model.Invoice       `json:"invoices"`
	Bills        []model.Bill          `json:"bills"`
	Purchases    []model.Purchase      `json:"purchases"`
	Suppliers    []model.Supplier      `json:"suppliers"`
	Staff        []model.StaffMember   `json:"staff"`
	Users        []SnapshotUser        `json:"users"`
	Payments     []model.Payment       `json:"payments"`
	Refunds      []model.Refund        `json:"refunds"`
	Pages        []model.Page          `json:"pages"`
	Messages     []model.ContactMessage `json:"messages"`
	Activity     []model.ActivityEntry `json:"activity"`
	Settings     model.Settings        `json:"settings"`
}

func (s *Store) Snapshot() Snapshot {
	return Snapshot{
		CreatedAt:    time.Now().UTC(),
		Reservations: s.Reservations.List(),
		MenuItems:    s.MenuItems.List(),
		Categories:   s.Categories.List(),
		Catalog:      s.Catalog.List(),
		Invoices:     s.Invoices.List(),
		Bills:        s.Bills.List(),
		Purchases:    s.Purchases.List(),
		Suppliers:    s.Suppliers.List(),
		Staff:        s.Staff.List(),
		Users:        snapshotUsers(s.Users.List()),
		Payments:     s.Payments.List(),
		Refunds:      s.Refunds.List(),
		Pages:        s.Pages.List(),
		Messages:     s.Messages.List(),
		Activity:     s.Activity.List(),
		Settings:     s.Settings(),
	}
}

// Restore replaces every collection with the snapshot contents.
func (s *Store) Restore(snap Snapshot) {
	s.Reservations.SetAll(snap.Reservations)
	s.MenuItems.SetAll(snap.MenuItems)
	s.Categories.SetAll(snap.Categories)
	s.Catalog.SetAll(snap.Catalog)
	s.Invoices.SetAll(snap.Invoices)
	s.Bills.SetAll(snap.Bills)
	s.Purchases.SetAll(snap.Purchases)
	s.Suppliers.SetAll(snap.Suppliers)
	s.Staff.SetAll(snap.Staff)
	s.Users.SetAll(restoreUsers(snap.Users))
	s.Payments.SetAll(snap.Payments)
	s.Refunds.SetAll(snap.Refunds)
	s.Pages.SetAll(snap.Pages)
	s.Messages.SetAll(snap.Messages)
	s.Activity.SetAll(snap.Activity)
	s.SetSettings(snap.Settings)
}
