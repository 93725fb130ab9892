package store_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/lumiere-dining/api/internal/enum"
	"github.com/lumiere-dining/api/internal/model"
	"github.com/lumiere-dining/api/internal/store"
)

func TestCollection_InsertGrowsByOne(t *testing.T) {
	s := store.New()
	before := s.Reservations.Len()

	s.Reservations.Insert(model.Reservation{ID: "r1", Name: "Jane Doe", Status: enum.ReservationStatusPending})

	if got := s.Reservations.Len(); got != before+1 {
		t.Errorf("len: got %d, want %d", got, before+1)
	}
	r, ok := s.Reservations.Get("r1")
	if !ok || r.Name != "Jane Doe" {
		t.Errorf("get: got %+v ok=%v", r, ok)
	}
}

func TestCollection_ReplaceSwapsExactlyOne(t *testing.T) {
	s := store.New()
	s.Reservations.Insert(model.Reservation{ID: "r1", Name: "Jane"})
	s.Reservations.Insert(model.Reservation{ID: "r2", Name: "Bob"})

	ok := s.Reservations.Replace(model.Reservation{ID: "r2", Name: "Robert"})
	if !ok {
		t.Fatal("replace reported no match")
	}
	if got := s.Reservations.Len(); got != 2 {
		t.Errorf("len changed on replace: %d", got)
	}
	r, _ := s.Reservations.Get("r2")
	if r.Name != "Robert" {
		t.Errorf("replace did not apply: %+v", r)
	}
	other, _ := s.Reservations.Get("r1")
	if other.Name != "Jane" {
		t.Errorf("replace touched wrong record: %+v", other)
	}
}

func TestCollection_ReplaceMissingIsNoop(t *testing.T) {
	s := store.New()
	s.Reservations.Insert(model.Reservation{ID: "r1"})

	if s.Reservations.Replace(model.Reservation{ID: "nope"}) {
		t.Error("replace of missing id reported success")
	}
	if s.Reservations.Len() != 1 {
		t.Error("collection changed")
	}
}

func TestCollection_UpsertInsertsThenReplaces(t *testing.T) {
	s := store.New()
	s.MenuItems.Upsert(model.MenuItem{ID: "m1", Name: "Arancini"})
	s.MenuItems.Upsert(model.MenuItem{ID: "m1", Name: "Truffle Arancini"})

	if s.MenuItems.Len() != 1 {
		t.Fatalf("len: got %d, want 1", s.MenuItems.Len())
	}
	m, _ := s.MenuItems.Get("m1")
	if m.Name != "Truffle Arancini" {
		t.Errorf("got %q", m.Name)
	}
}

func TestCollection_Delete(t *testing.T) {
	s := store.New()
	s.Bills.Insert(model.Bill{ID: "b1"})
	s.Bills.Insert(model.Bill{ID: "b2"})

	if !s.Bills.Delete("b1") {
		t.Fatal("delete reported no match")
	}
	if s.Bills.Len() != 1 {
		t.Errorf("len: got %d", s.Bills.Len())
	}
	if _, ok := s.Bills.Get("b1"); ok {
		t.Error("deleted record still present")
	}
	if s.Bills.Delete("b1") {
		t.Error("second delete reported success")
	}
}

func TestCollection_ListPreservesInsertionOrder(t *testing.T) {
	s := store.New()
	for _, id := range []string{"a", "b", "c"} {
		s.Pages.Insert(model.Page{ID: id})
	}

	list := s.Pages.List()
	if len(list) != 3 || list[0].ID != "a" || list[2].ID != "c" {
		t.Errorf("got %+v", list)
	}

	// Returned slice is a copy; mutating it must not affect the store.
	list[0].ID = "mutated"
	if fresh := s.Pages.List(); fresh[0].ID != "a" {
		t.Error("List leaked internal slice")
	}
}

func TestSnapshotRestore_RoundTrip(t *testing.T) {
	s := store.New()
	s.Reservations.Insert(model.Reservation{ID: "r1", Name: "Jane", Status: enum.ReservationStatusPending, CreatedAt: time.Now().UTC()})
	s.Pages.Insert(model.Page{ID: "about", Name: "About Us"})
	s.Users.Insert(model.User{ID: "u1", Email: "marcus@lumiere.com", PasswordHash: "$2a$10$somehash"})
	s.SetSettings(model.Settings{Restaurant: model.RestaurantSettings{Name: "Lumière"}})

	raw, err := json.Marshal(s.Snapshot())
	if err != nil {
		t.Fatalf("marshal snapshot: %v", err)
	}

	var snap store.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		t.Fatalf("unmarshal snapshot: %v", err)
	}

	fresh := store.New()
	fresh.Restore(snap)

	if fresh.Reservations.Len() != 1 || fresh.Pages.Len() != 1 {
		t.Errorf("restore missed collections: reservations=%d pages=%d",
			fresh.Reservations.Len(), fresh.Pages.Len())
	}
	if fresh.Settings().Restaurant.Name != "Lumière" {
		t.Errorf("settings: got %+v", fresh.Settings())
	}
	r, ok := fresh.Reservations.Get("r1")
	if !ok || r.Status != enum.ReservationStatusPending {
		t.Errorf("reservation: got %+v ok=%v", r, ok)
	}
	// model.User hides the hash from API responses; the snapshot must
	// still carry it or a restore would wipe every credential.
	u, ok := fresh.Users.Get("u1")
	if !ok || u.PasswordHash != "$2a$10$somehash" {
		t.Errorf("user hash lost in round trip: got %+v ok=%v", u, ok)
	}
}
