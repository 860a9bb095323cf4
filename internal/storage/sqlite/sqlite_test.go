package sqlite

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"contas/internal/models"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func debtRecord(owner, month, debt string) *models.FinancialRecord {
	return &models.FinancialRecord{
		User: models.RecordUser{
			Title: owner,
			Date:  "2023-03-01",
			Month: models.RecordMonth{
				Title: month,
				ListMonth: models.ListMonth{
					"debt":           debt,
					"category":       "Moradia",
					"value":          "1200",
					"expirationDate": "2023-03-10",
				},
			},
		},
	}
}

func TestUsers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user := models.NewUser("Alice", "alice@example.com", 30, "alice.png", "$2a$12$hash")

	t.Run("CreateUser and read back", func(t *testing.T) {
		if err := store.CreateUser(ctx, user); err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}

		byID, err := store.GetUserByID(ctx, user.ID)
		if err != nil {
			t.Fatalf("GetUserByID failed: %v", err)
		}
		if byID == nil || byID.Email != "alice@example.com" || byID.PasswordHash != "$2a$12$hash" {
			t.Errorf("Unexpected user from GetUserByID: %+v", byID)
		}

		byEmail, err := store.GetUserByEmail(ctx, "alice@example.com")
		if err != nil {
			t.Fatalf("GetUserByEmail failed: %v", err)
		}
		if byEmail == nil || byEmail.ID != user.ID {
			t.Errorf("Unexpected user from GetUserByEmail: %+v", byEmail)
		}
	})

	t.Run("unknown user yields nil", func(t *testing.T) {
		got, err := store.GetUserByID(ctx, "no-such-id")
		if err != nil {
			t.Fatalf("GetUserByID failed: %v", err)
		}
		if got != nil {
			t.Errorf("Expected nil for unknown id, got %+v", got)
		}
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		dup := models.NewUser("Alice Again", "alice@example.com", 31, "alice2.png", "$2a$12$other")
		if err := store.CreateUser(ctx, dup); err == nil {
			t.Error("Expected CreateUser with a duplicate email to fail")
		}
	})
}

func TestRecords(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("InsertRecord and FindRecords", func(t *testing.T) {
		id, err := store.InsertRecord(ctx, models.KindDebt, debtRecord("Alice", "Março", "Aluguel"))
		if err != nil {
			t.Fatalf("InsertRecord failed: %v", err)
		}
		if id == "" {
			t.Fatal("Expected a generated record ID")
		}

		records, err := store.FindRecords(ctx, models.KindDebt)
		if err != nil {
			t.Fatalf("FindRecords failed: %v", err)
		}
		if len(records) != 1 {
			t.Fatalf("Expected 1 record, got %d", len(records))
		}
		rec := records[0]
		if rec.ID != id || rec.User.Title != "Alice" || rec.User.Month.Title != "Março" {
			t.Errorf("Unexpected record: %+v", rec)
		}
		if got := rec.User.Month.ListMonth.Field("debt"); got != "Aluguel" {
			t.Errorf("Expected debt field Aluguel, got %q", got)
		}
	})

	t.Run("collections are independent", func(t *testing.T) {
		records, err := store.FindRecords(ctx, models.KindRevenue)
		if err != nil {
			t.Fatalf("FindRecords failed: %v", err)
		}
		if len(records) != 0 {
			t.Errorf("Expected empty revenues collection, got %d records", len(records))
		}
	})
}

func TestUpdateRecord(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id, err := store.InsertRecord(ctx, models.KindDebt, debtRecord("Alice", "Março", "Aluguel"))
	if err != nil {
		t.Fatalf("InsertRecord failed: %v", err)
	}

	t.Run("replaces top-level fields", func(t *testing.T) {
		body, err := json.Marshal(debtRecord("Bob", "Abril", "Internet"))
		if err != nil {
			t.Fatalf("Marshal failed: %v", err)
		}
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(body, &fields); err != nil {
			t.Fatalf("Unmarshal failed: %v", err)
		}

		updated, err := store.UpdateRecord(ctx, models.KindDebt, id, fields)
		if err != nil {
			t.Fatalf("UpdateRecord failed: %v", err)
		}
		if updated == nil {
			t.Fatal("Expected the updated record, got nil")
		}
		if updated.User.Title != "Bob" || updated.User.Month.Title != "Abril" {
			t.Errorf("Update did not apply: %+v", updated)
		}
		if got := updated.User.Month.ListMonth.Field("debt"); got != "Internet" {
			t.Errorf("Expected debt field Internet, got %q", got)
		}
	})

	t.Run("unknown id yields nil", func(t *testing.T) {
		updated, err := store.UpdateRecord(ctx, models.KindDebt, "no-such-id", nil)
		if err != nil {
			t.Fatalf("UpdateRecord failed: %v", err)
		}
		if updated != nil {
			t.Errorf("Expected nil for unknown id, got %+v", updated)
		}
	})

	t.Run("id is scoped to the collection", func(t *testing.T) {
		updated, err := store.UpdateRecord(ctx, models.KindRevenue, id, nil)
		if err != nil {
			t.Fatalf("UpdateRecord failed: %v", err)
		}
		if updated != nil {
			t.Errorf("Expected nil when updating a debt id in revenues, got %+v", updated)
		}
	})
}

func TestDeleteRecord(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id, err := store.InsertRecord(ctx, models.KindDebt, debtRecord("Alice", "Março", "Aluguel"))
	if err != nil {
		t.Fatalf("InsertRecord failed: %v", err)
	}

	deleted, err := store.DeleteRecord(ctx, models.KindDebt, id)
	if err != nil {
		t.Fatalf("DeleteRecord failed: %v", err)
	}
	if !deleted {
		t.Error("Expected DeleteRecord to report a removed document")
	}

	deleted, err = store.DeleteRecord(ctx, models.KindDebt, id)
	if err != nil {
		t.Fatalf("DeleteRecord failed: %v", err)
	}
	if deleted {
		t.Error("Expected DeleteRecord of a removed id to report false")
	}

	records, err := store.FindRecords(ctx, models.KindDebt)
	if err != nil {
		t.Fatalf("FindRecords failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("Expected empty collection after delete, got %d records", len(records))
	}
}
