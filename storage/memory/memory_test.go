package memory

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/kristjanb/petition/models"
	"github.com/kristjanb/petition/storage"
)

func TestInsertRejectsDuplicateNationalID(t *testing.T) {
	ctx := context.Background()
	store := New()

	sig := models.Signature{Name: "Anna", NationalID: "1234567890"}
	if err := store.Insert(ctx, sig); err != nil {
		t.Fatalf("first Insert: %v", err)
	}
	if err := store.Insert(ctx, sig); !errors.Is(err, storage.ErrDuplicate) {
		t.Fatalf("second Insert error = %v, want ErrDuplicate", err)
	}

	count, _ := store.Count(ctx)
	if count != 1 {
		t.Errorf("Count = %d, want 1", count)
	}
}

func TestListPagination(t *testing.T) {
	ctx := context.Background()
	store := New()

	base := time.Now()
	for i := 0; i < 120; i++ {
		err := store.Insert(ctx, models.Signature{
			Name:       fmt.Sprintf("Signer %d", i),
			NationalID: fmt.Sprintf("%010d", i),
			Signed:     base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("Insert %d: %v", i, err)
		}
	}

	page1, _ := store.List(ctx, 1)
	if len(page1) != 50 {
		t.Fatalf("page 1 len = %d, want 50", len(page1))
	}
	// Newest first: the last inserted row leads.
	if page1[0].Name != "Signer 119" {
		t.Errorf("first row = %q, want Signer 119", page1[0].Name)
	}

	page3, _ := store.List(ctx, 3)
	if len(page3) != 20 {
		t.Errorf("page 3 len = %d, want 20", len(page3))
	}

	page4, _ := store.List(ctx, 4)
	if len(page4) != 0 {
		t.Errorf("page 4 len = %d, want 0", len(page4))
	}
}

func TestDeleteAbsentIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	store := New()

	if err := store.Insert(ctx, models.Signature{Name: "Anna", NationalID: "1234567890"}); err != nil {
		t.Fatal(err)
	}

	if err := store.Delete(ctx, 9999); err != nil {
		t.Fatalf("Delete absent id: %v", err)
	}
	count, _ := store.Count(ctx)
	if count != 1 {
		t.Errorf("Count = %d, want 1 (table unchanged)", count)
	}

	rows, _ := store.List(ctx, 1)
	if err := store.Delete(ctx, rows[0].ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	count, _ = store.Count(ctx)
	if count != 0 {
		t.Errorf("Count = %d, want 0", count)
	}
}

func TestUserLookups(t *testing.T) {
	ctx := context.Background()
	store := New()

	id := store.AddUser("admin", "$2a$10$hash")

	user, err := store.FindByUsername(ctx, "admin")
	if err != nil {
		t.Fatalf("FindByUsername: %v", err)
	}
	if user.ID != id {
		t.Errorf("ID = %d, want %d", user.ID, id)
	}

	if _, err := store.FindByUsername(ctx, "ghost"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}

	if _, err := store.FindByID(ctx, id); err != nil {
		t.Errorf("FindByID: %v", err)
	}
	if _, err := store.FindByID(ctx, 404); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}
