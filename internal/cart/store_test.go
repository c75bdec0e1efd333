package cart

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/Lixing-Zhang/fashion-store/internal/models"
)

func TestStore_AddRemove(t *testing.T) {
	s := NewStore()

	if s.TotalItems() != 0 || s.TotalPrice() != "0.00" {
		t.Fatalf("new store not empty: items=%d price=%s", s.TotalItems(), s.TotalPrice())
	}

	s.Add(p1)
	s.Add(p1)
	s.Add(p3)

	want := []models.CartItem{line(p1, 2), line(p3, 1)}
	if diff := cmp.Diff(want, s.Items()); diff != "" {
		t.Errorf("Items() mismatch (-want +got):\n%s", diff)
	}
	if s.TotalItems() != 3 {
		t.Errorf("TotalItems() = %d, want 3", s.TotalItems())
	}
	if s.TotalPrice() != "259.97" {
		t.Errorf("TotalPrice() = %s, want 259.97", s.TotalPrice())
	}

	if !s.Remove(1) {
		t.Error("Remove(1) reported no change")
	}
	if s.Remove(1) {
		t.Error("second Remove(1) reported a change")
	}
	if s.TotalPrice() != "199.99" {
		t.Errorf("TotalPrice() = %s, want 199.99", s.TotalPrice())
	}
}

func TestStore_ItemsReturnsCopy(t *testing.T) {
	s := NewStore()
	s.Add(p1)

	items := s.Items()
	items[0].Quantity = 50

	if s.TotalItems() != 1 {
		t.Errorf("store mutated through Items(): TotalItems() = %d", s.TotalItems())
	}
}

func TestStore_Subscribe(t *testing.T) {
	s := NewStore()

	var got []Snapshot
	s.Subscribe(func(snap Snapshot) {
		got = append(got, snap)
	})

	s.Add(p1)
	s.Remove(999)
	s.Add(p3)
	s.Remove(1)

	want := []Snapshot{
		{Items: []models.CartItem{line(p1, 1)}, TotalItems: 1, TotalPrice: "29.99"},
		{Items: []models.CartItem{line(p1, 1), line(p3, 1)}, TotalItems: 2, TotalPrice: "229.98"},
		{Items: []models.CartItem{line(p3, 1)}, TotalItems: 1, TotalPrice: "199.99"},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("notifications mismatch (-want +got):\n%s", diff)
	}
}
