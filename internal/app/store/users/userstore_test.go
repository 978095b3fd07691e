package userstore_test

import (
	"errors"
	"testing"

	userstore "github.com/dalemusser/recyclehub/internal/app/store/users"
	"github.com/dalemusser/recyclehub/internal/app/system/indexes"
	"github.com/dalemusser/recyclehub/internal/domain/models"
	"github.com/dalemusser/recyclehub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newStore(t *testing.T) *userstore.Store {
	t.Helper()
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	if err := indexes.EnsureAll(ctx, db, zap.NewNop()); err != nil {
		t.Fatalf("failed to ensure indexes: %v", err)
	}
	return userstore.New(db)
}

func TestCreate_NormalizesIdentityFields(t *testing.T) {
	s := newStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := s.Create(ctx, models.User{
		FullName: "  Maya   Torres ",
		Email:    " Maya@Example.COM ",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.FullName != "Maya Torres" {
		t.Errorf("full name: got %q", created.FullName)
	}
	if created.Email != "maya@example.com" {
		t.Errorf("email: got %q", created.Email)
	}
	if created.FullNameCI == "" {
		t.Error("expected folded name to be set")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}
}

func TestCreate_DuplicateEmail(t *testing.T) {
	s := newStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := s.Create(ctx, models.User{FullName: "A", Email: "dup@example.com"}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := s.Create(ctx, models.User{FullName: "B", Email: "DUP@example.com"})
	if !errors.Is(err, userstore.ErrDuplicateEmail) {
		t.Errorf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestGetByEmail_CaseInsensitive(t *testing.T) {
	s := newStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := s.Create(ctx, models.User{FullName: "Leo Park", Email: "leo@example.com"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := s.GetByEmail(ctx, "LEO@Example.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("id: got %s, want %s", got.ID.Hex(), created.ID.Hex())
	}
}

func TestGetByEmail_NotFound(t *testing.T) {
	s := newStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := s.GetByEmail(ctx, "missing@example.com")
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("expected ErrNoDocuments, got %v", err)
	}
}

func TestSetActive(t *testing.T) {
	s := newStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := s.Create(ctx, models.User{FullName: "Ana", Email: "ana@example.com"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !created.Active() {
		t.Fatal("expected new user to default to active")
	}

	if err := s.SetActive(ctx, created.ID, false); err != nil {
		t.Fatalf("set active: %v", err)
	}
	got, err := s.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Active() {
		t.Error("expected user to be inactive")
	}
}

func TestSetActive_MissingUser(t *testing.T) {
	s := newStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := s.SetActive(ctx, primitive.NewObjectID(), true)
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("expected ErrNoDocuments, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	s := newStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := s.Create(ctx, models.User{FullName: "Sam", Email: "sam@example.com"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	n, err := s.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if n != 1 {
		t.Errorf("deleted count: got %d, want 1", n)
	}

	n, err = s.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if n != 0 {
		t.Errorf("second deleted count: got %d, want 0", n)
	}
}

func TestList_NewestFirst(t *testing.T) {
	s := newStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	first, err := s.Create(ctx, models.User{FullName: "First", Email: "first@example.com"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	second, err := s.Create(ctx, models.User{FullName: "Second", Email: "second@example.com"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	out, err := s.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("count: got %d, want 2", len(out))
	}
	// Creation timestamps can collide at millisecond resolution; only
	// assert the order when they differ.
	if out[0].CreatedAt.After(out[1].CreatedAt) {
		if out[0].ID != second.ID || out[1].ID != first.ID {
			t.Errorf("order: got [%s %s]", out[0].FullName, out[1].FullName)
		}
	}
}
