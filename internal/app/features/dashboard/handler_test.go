package dashboard_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/recyclehub/internal/app/features/dashboard"
	uierrors "github.com/dalemusser/recyclehub/internal/app/features/errors"
	recordstore "github.com/dalemusser/recyclehub/internal/app/store/records"
	"github.com/dalemusser/recyclehub/internal/domain/models"
	"github.com/dalemusser/recyclehub/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*dashboard.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	h := dashboard.NewHandler(recordstore.New(db), uierrors.NewErrorLogger(logger), logger)
	return h, testutil.NewFixtures(t, db)
}

func TestServeOverview(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u := fx.CreateUser(ctx, "Maya", "maya@example.com")
	fx.CreateCollector(ctx, "Green Crew")
	info := models.UserInfo{Name: u.FullName, Email: u.Email}
	fx.CreateRequest(ctx, models.StatusCompleted, "100.00", info, nil)
	fx.CreateRequest(ctx, models.StatusPending, "40.00", info, nil)

	req := httptest.NewRequest("GET", "/dashboard/overview", nil)
	rec := httptest.NewRecorder()
	h.ServeOverview(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	var body struct {
		TotalUsers        int    `json:"total_users"`
		TotalCollectors   int    `json:"total_collectors"`
		TotalRequests     int    `json:"total_requests"`
		CompletedRequests int    `json:"completed_requests"`
		PendingRequests   int    `json:"pending_requests"`
		CompletionRate    int    `json:"completion_rate"`
		TotalRevenue      string `json:"total_revenue"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if body.TotalUsers != 1 || body.TotalCollectors != 1 {
		t.Errorf("population: got %+v", body)
	}
	if body.TotalRequests != 2 || body.CompletedRequests != 1 || body.PendingRequests != 1 {
		t.Errorf("request counts: got %+v", body)
	}
	if body.CompletionRate != 50 {
		t.Errorf("completion rate: got %d, want 50", body.CompletionRate)
	}
	if body.TotalRevenue != "100" {
		t.Errorf("revenue: got %q, want %q", body.TotalRevenue, "100")
	}
}

func TestServeTrend(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// Fixture requests are dated now, so they land in one bucket.
	info := models.UserInfo{Name: "Kim", Email: "kim@example.com"}
	fx.CreateRequest(ctx, models.StatusCompleted, "10.00", info, nil)
	fx.CreateRequest(ctx, models.StatusPending, "5.00", info, nil)

	req := httptest.NewRequest("GET", "/dashboard/trend", nil)
	rec := httptest.NewRecorder()
	h.ServeTrend(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	var body struct {
		Months []struct {
			Month     string `json:"month"`
			Requests  int    `json:"requests"`
			Completed int    `json:"completed"`
		} `json:"months"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(body.Months) != 1 {
		t.Fatalf("buckets: got %d, want 1", len(body.Months))
	}
	if body.Months[0].Requests != 2 || body.Months[0].Completed != 1 {
		t.Errorf("bucket: got %+v", body.Months[0])
	}
}

func TestServeCategories(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	info := models.UserInfo{Name: "Kim", Email: "kim@example.com"}
	fx.CreateRequest(ctx, models.StatusCompleted, "30.00", info, nil)

	req := httptest.NewRequest("GET", "/dashboard/categories", nil)
	rec := httptest.NewRecorder()
	h.ServeCategories(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	var body struct {
		Categories []struct {
			Category string  `json:"category"`
			Count    int     `json:"count"`
			Width    float64 `json:"width"`
		} `json:"categories"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	// A request with no line items contributes nothing to the breakdown.
	if len(body.Categories) != 0 {
		t.Errorf("categories: got %+v", body.Categories)
	}
}

func TestServeLeaderboard(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	c := fx.CreateCollector(ctx, "Green Crew")
	fx.CreateRequest(ctx, models.StatusCompleted, "75.00",
		models.UserInfo{Name: "Kim", Email: "kim@example.com"},
		&models.CollectorRef{ID: c.ID.Hex()})

	req := httptest.NewRequest("GET", "/dashboard/leaderboard", nil)
	rec := httptest.NewRecorder()
	h.ServeLeaderboard(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	var body struct {
		Collectors []struct {
			FullName      string `json:"full_name"`
			TotalEarnings string `json:"total_earnings"`
		} `json:"collectors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(body.Collectors) != 1 {
		t.Fatalf("entries: got %d, want 1", len(body.Collectors))
	}
	if body.Collectors[0].FullName != "Green Crew" {
		t.Errorf("name: got %q", body.Collectors[0].FullName)
	}
	if body.Collectors[0].TotalEarnings != "75" {
		t.Errorf("earnings: got %q", body.Collectors[0].TotalEarnings)
	}
}
