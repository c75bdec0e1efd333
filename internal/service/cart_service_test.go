package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/Lixing-Zhang/fashion-store/internal/catalog"
	"github.com/Lixing-Zhang/fashion-store/internal/config"
	"github.com/Lixing-Zhang/fashion-store/internal/repository"
	"github.com/Lixing-Zhang/fashion-store/internal/session"
)

func newTestCartService(t *testing.T) (*CartService, string) {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	sessions := session.NewManager(config.SessionConfig{}, log)
	svc := NewCartService(repository.NewInMemoryProductRepository(), sessions, log)

	sid, err := svc.NewSession(context.Background())
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	return svc, sid
}

func TestCartService_AddItem(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		productIDs []int64
		wantErr    error
		wantItems  int
		wantLines  int
		wantPrice  string
	}{
		{
			name:       "single item",
			productIDs: []int64{1},
			wantItems:  1,
			wantLines:  1,
			wantPrice:  "29.99",
		},
		{
			name:       "same product twice merges",
			productIDs: []int64{1, 1},
			wantItems:  2,
			wantLines:  1,
			wantPrice:  "59.98",
		},
		{
			name:       "two products",
			productIDs: []int64{1, 1, 3},
			wantItems:  3,
			wantLines:  2,
			wantPrice:  "259.97",
		},
		{
			name:       "unknown product",
			productIDs: []int64{99999},
			wantErr:    ErrInvalidProduct,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, sid := newTestCartService(t)

			var err error
			for _, id := range tt.productIDs {
				_, err = svc.AddItem(ctx, sid, id)
			}

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("AddItem() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("AddItem() unexpected error = %v", err)
			}

			view, err := svc.View(ctx, sid)
			if err != nil {
				t.Fatalf("View() error = %v", err)
			}
			if view.TotalItems != tt.wantItems {
				t.Errorf("TotalItems = %d, want %d", view.TotalItems, tt.wantItems)
			}
			if len(view.Items) != tt.wantLines {
				t.Errorf("lines = %d, want %d", len(view.Items), tt.wantLines)
			}
			if view.TotalPrice != tt.wantPrice {
				t.Errorf("TotalPrice = %s, want %s", view.TotalPrice, tt.wantPrice)
			}
		})
	}
}

func TestCartService_RemoveItem(t *testing.T) {
	ctx := context.Background()
	svc, sid := newTestCartService(t)

	for _, id := range []int64{1, 1, 3} {
		if _, err := svc.AddItem(ctx, sid, id); err != nil {
			t.Fatalf("AddItem(%d) error = %v", id, err)
		}
	}

	view, err := svc.RemoveItem(ctx, sid, 1)
	if err != nil {
		t.Fatalf("RemoveItem() error = %v", err)
	}
	if len(view.Items) != 1 || view.Items[0].Product.ID != 3 {
		t.Errorf("items after remove = %+v, want only product 3", view.Items)
	}
	if view.TotalPrice != "199.99" {
		t.Errorf("TotalPrice = %s, want 199.99", view.TotalPrice)
	}

	view, err = svc.RemoveItem(ctx, sid, 999)
	if err != nil {
		t.Fatalf("RemoveItem() unknown id error = %v", err)
	}
	if view.TotalItems != 1 {
		t.Errorf("TotalItems after no-op remove = %d, want 1", view.TotalItems)
	}
}

func TestCartService_UnknownSession(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestCartService(t)

	if _, err := svc.View(ctx, "missing"); !errors.Is(err, session.ErrSessionNotFound) {
		t.Errorf("View() error = %v, want %v", err, session.ErrSessionNotFound)
	}
	if _, err := svc.AddItem(ctx, "missing", 1); !errors.Is(err, session.ErrSessionNotFound) {
		t.Errorf("AddItem() error = %v, want %v", err, session.ErrSessionNotFound)
	}
	if err := svc.EndSession(ctx, "missing"); !errors.Is(err, session.ErrSessionNotFound) {
		t.Errorf("EndSession() error = %v, want %v", err, session.ErrSessionNotFound)
	}
}

func TestCartService_EndSessionDiscardsCart(t *testing.T) {
	ctx := context.Background()
	svc, sid := newTestCartService(t)

	if _, err := svc.AddItem(ctx, sid, 2); err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}
	if err := svc.EndSession(ctx, sid); err != nil {
		t.Fatalf("EndSession() error = %v", err)
	}
	if _, err := svc.View(ctx, sid); !errors.Is(err, session.ErrSessionNotFound) {
		t.Errorf("View() after end error = %v, want %v", err, session.ErrSessionNotFound)
	}
}

func TestCartService_CategorySelection(t *testing.T) {
	ctx := context.Background()
	svc, sid := newTestCartService(t)

	browse, err := svc.Browse(ctx, sid)
	if err != nil {
		t.Fatalf("Browse() error = %v", err)
	}
	if browse.Category != catalog.NoCategory || len(browse.Products) != 12 {
		t.Errorf("initial browse = %q with %d products, want none with 12", browse.Category, len(browse.Products))
	}

	view, err := svc.SelectCategory(ctx, sid, "Tops")
	if err != nil {
		t.Fatalf("SelectCategory() error = %v", err)
	}
	if view.Category != "Tops" {
		t.Errorf("Category = %q, want Tops", view.Category)
	}

	browse, err = svc.Browse(ctx, sid)
	if err != nil {
		t.Fatalf("Browse() error = %v", err)
	}
	var ids []int64
	for _, p := range browse.Products {
		ids = append(ids, p.ID)
	}
	if len(ids) != 3 || ids[0] != 1 || ids[1] != 6 || ids[2] != 11 {
		t.Errorf("Tops product ids = %v, want [1 6 11]", ids)
	}

	view, err = svc.SelectCategory(ctx, sid, "Tops")
	if err != nil {
		t.Fatalf("second SelectCategory() error = %v", err)
	}
	if view.Category != catalog.NoCategory {
		t.Errorf("Category after toggle = %q, want none", view.Category)
	}

	if _, err := svc.SelectCategory(ctx, sid, "Hats"); !errors.Is(err, ErrInvalidCategory) {
		t.Errorf("SelectCategory(Hats) error = %v, want %v", err, ErrInvalidCategory)
	}

	if _, err := svc.SelectCategory(ctx, sid, "Dresses"); err != nil {
		t.Fatalf("SelectCategory(Dresses) error = %v", err)
	}
	view, err = svc.ClearCategory(ctx, sid)
	if err != nil {
		t.Fatalf("ClearCategory() error = %v", err)
	}
	if view.Category != catalog.NoCategory {
		t.Errorf("Category after clear = %q, want none", view.Category)
	}
}

func TestCartService_LogsCartChanges(t *testing.T) {
	ctx := context.Background()

	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	sessions := session.NewManager(config.SessionConfig{}, log)
	svc := NewCartService(repository.NewInMemoryProductRepository(), sessions, log)

	sid, err := svc.NewSession(ctx)
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}

	for _, id := range []int64{1, 1, 3} {
		if _, err := svc.AddItem(ctx, sid, id); err != nil {
			t.Fatalf("AddItem(%d) error = %v", id, err)
		}
	}
	if _, err := svc.RemoveItem(ctx, sid, 999); err != nil {
		t.Fatalf("RemoveItem() error = %v", err)
	}

	var updates []map[string]any
	dec := json.NewDecoder(&buf)
	for dec.More() {
		var entry map[string]any
		if err := dec.Decode(&entry); err != nil {
			t.Fatalf("failed to decode log entry: %v", err)
		}
		if entry["msg"] == "cart updated" {
			updates = append(updates, entry)
		}
	}

	// the no-op remove does not produce an update
	if len(updates) != 3 {
		t.Fatalf("got %d cart updates, want 3", len(updates))
	}

	last := updates[2]
	if last["session_id"] != sid {
		t.Errorf("session_id = %v, want %s", last["session_id"], sid)
	}
	if last["total_items"] != float64(3) || last["lines"] != float64(2) {
		t.Errorf("last update = %v, want 3 items on 2 lines", last)
	}
	if last["total_price"] != "259.97" {
		t.Errorf("total_price = %v, want 259.97", last["total_price"])
	}
}
