package recordstore_test

import (
	"testing"

	recordstore "github.com/dalemusser/recyclehub/internal/app/store/records"
	"github.com/dalemusser/recyclehub/internal/domain/models"
	"github.com/dalemusser/recyclehub/internal/testutil"
)

func TestLoadSnapshot_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := recordstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	snap, err := s.LoadSnapshot(ctx)
	if err != nil {
		t.Fatalf("load snapshot: %v", err)
	}
	if len(snap.Users) != 0 || len(snap.Collectors) != 0 || len(snap.Requests) != 0 || len(snap.Ratings) != 0 {
		t.Errorf("expected empty snapshot, got %+v", snap)
	}
}

func TestLoadSnapshot_AllCollections(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := recordstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u := fx.CreateUser(ctx, "Maya", "maya@example.com")
	c := fx.CreateCollector(ctx, "Green Crew")
	r := fx.CreateRequest(ctx, models.StatusCompleted, "10.00",
		models.UserInfo{Name: u.FullName, Email: u.Email},
		&models.CollectorRef{ID: c.ID.Hex()})
	fx.CreateRating(ctx, c.ID, r.ID, 5, "")

	snap, err := s.LoadSnapshot(ctx)
	if err != nil {
		t.Fatalf("load snapshot: %v", err)
	}
	if len(snap.Users) != 1 || snap.Users[0].ID != u.ID {
		t.Errorf("users: got %+v", snap.Users)
	}
	if len(snap.Collectors) != 1 || snap.Collectors[0].ID != c.ID {
		t.Errorf("collectors: got %+v", snap.Collectors)
	}
	if len(snap.Requests) != 1 || snap.Requests[0].ID != r.ID {
		t.Errorf("requests: got %+v", snap.Requests)
	}
	if len(snap.Ratings) != 1 || snap.Ratings[0].CollectorID != c.ID {
		t.Errorf("ratings: got %+v", snap.Ratings)
	}
}

func TestLoadSnapshot_SeesLatestState(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := recordstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	before, err := s.LoadSnapshot(ctx)
	if err != nil {
		t.Fatalf("load snapshot: %v", err)
	}
	if len(before.Users) != 0 {
		t.Fatalf("expected empty first snapshot")
	}

	fx.CreateUser(ctx, "Leo", "leo@example.com")

	after, err := s.LoadSnapshot(ctx)
	if err != nil {
		t.Fatalf("load snapshot: %v", err)
	}
	if len(after.Users) != 1 {
		t.Errorf("expected the new user in the next snapshot, got %d users", len(after.Users))
	}
}
