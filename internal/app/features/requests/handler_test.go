package requests_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	uierrors "github.com/dalemusser/recyclehub/internal/app/features/errors"
	"github.com/dalemusser/recyclehub/internal/app/features/requests"
	recordstore "github.com/dalemusser/recyclehub/internal/app/store/records"
	requeststore "github.com/dalemusser/recyclehub/internal/app/store/requests"
	"github.com/dalemusser/recyclehub/internal/domain/models"
	"github.com/dalemusser/recyclehub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*requests.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	h := requests.NewHandler(requeststore.New(db), recordstore.New(db), uierrors.NewErrorLogger(logger), logger)
	return h, testutil.NewFixtures(t, db)
}

func TestServeList(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	info := models.UserInfo{Name: "Kim", Email: "kim@example.com"}
	fx.CreateRequest(ctx, models.StatusPending, "10.00", info, nil)
	fx.CreateRequest(ctx, models.StatusCompleted, "20.00", info, nil)

	req := httptest.NewRequest("GET", "/requests", nil)
	rec := httptest.NewRecorder()
	h.ServeList(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	var body struct {
		Requests []models.Request `json:"requests"`
		Total    int              `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if body.Total != 2 {
		t.Errorf("total: got %d, want 2", body.Total)
	}
}

func TestServeList_StatusFilter(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	info := models.UserInfo{Name: "Kim", Email: "kim@example.com"}
	fx.CreateRequest(ctx, models.StatusPending, "10.00", info, nil)
	fx.CreateRequest(ctx, models.StatusCompleted, "20.00", info, nil)

	req := httptest.NewRequest("GET", "/requests?status=Pending", nil)
	rec := httptest.NewRecorder()
	h.ServeList(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	var body struct {
		Requests []models.Request `json:"requests"`
		Total    int              `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if body.Total != 1 {
		t.Fatalf("total: got %d, want 1", body.Total)
	}
	if body.Requests[0].Status != models.StatusPending {
		t.Errorf("status: got %q, want %q", body.Requests[0].Status, models.StatusPending)
	}
}

func TestServeList_BadStatusFilter(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest("GET", "/requests?status=Bogus", nil)
	rec := httptest.NewRecorder()
	h.ServeList(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestServeView_ResolvesUserAndCollector(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u := fx.CreateUser(ctx, "Kim Lee", "kim@example.com")
	c := fx.CreateCollector(ctx, "Green Crew")
	// Reference by name only; resolution falls back to the name pass.
	r0 := fx.CreateRequest(ctx, models.StatusCompleted, "33.00",
		models.UserInfo{Name: u.FullName, Email: u.Email},
		&models.CollectorRef{Name: c.FullName})

	req := testutil.WithChiURLParam(httptest.NewRequest("GET", "/requests/"+r0.ID.Hex(), nil), "requestID", r0.ID.Hex())
	rec := httptest.NewRecorder()
	h.ServeView(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	var body struct {
		Status    string            `json:"status"`
		User      *models.User      `json:"user"`
		Collector *models.Collector `json:"collector"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if body.User == nil || body.User.Email != "kim@example.com" {
		t.Errorf("resolved user: got %+v", body.User)
	}
	if body.Collector == nil || body.Collector.ID != c.ID {
		t.Errorf("resolved collector: got %+v", body.Collector)
	}
}

func TestServeView_UnresolvedReferences(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	r0 := fx.CreateRequest(ctx, models.StatusPending, "5.00",
		models.UserInfo{Name: "Ghost", Email: "ghost@example.com"},
		&models.CollectorRef{Name: "Nobody"})

	req := testutil.WithChiURLParam(httptest.NewRequest("GET", "/requests/"+r0.ID.Hex(), nil), "requestID", r0.ID.Hex())
	rec := httptest.NewRecorder()
	h.ServeView(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	var body struct {
		User      *models.User      `json:"user"`
		Collector *models.Collector `json:"collector"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if body.User != nil {
		t.Errorf("expected no resolved user, got %+v", body.User)
	}
	if body.Collector != nil {
		t.Errorf("expected no resolved collector, got %+v", body.Collector)
	}
}

func TestServeSetStatus(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	r0 := fx.CreateRequest(ctx, models.StatusPending, "5.00",
		models.UserInfo{Name: "Kim", Email: "kim@example.com"}, nil)

	payload, _ := json.Marshal(map[string]string{"status": models.StatusAccepted})
	req := testutil.WithChiURLParam(
		httptest.NewRequest("POST", "/requests/"+r0.ID.Hex()+"/status", bytes.NewReader(payload)),
		"requestID", r0.ID.Hex())
	rec := httptest.NewRecorder()
	h.ServeSetStatus(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}

	got, err := h.Requests.GetByID(ctx, r0.ID)
	if err != nil {
		t.Fatalf("lookup after update: %v", err)
	}
	if got.Status != models.StatusAccepted {
		t.Errorf("status after update: got %q, want %q", got.Status, models.StatusAccepted)
	}
}

func TestServeSetStatus_Invalid(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	r0 := fx.CreateRequest(ctx, models.StatusPending, "5.00",
		models.UserInfo{Name: "Kim", Email: "kim@example.com"}, nil)

	payload, _ := json.Marshal(map[string]string{"status": "Teleported"})
	req := testutil.WithChiURLParam(
		httptest.NewRequest("POST", "/requests/"+r0.ID.Hex()+"/status", bytes.NewReader(payload)),
		"requestID", r0.ID.Hex())
	rec := httptest.NewRecorder()
	h.ServeSetStatus(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestServeDelete(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	r0 := fx.CreateRequest(ctx, models.StatusPending, "5.00",
		models.UserInfo{Name: "Kim", Email: "kim@example.com"}, nil)

	req := testutil.WithChiURLParam(httptest.NewRequest("DELETE", "/requests/"+r0.ID.Hex(), nil), "requestID", r0.ID.Hex())
	rec := httptest.NewRecorder()
	h.ServeDelete(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusNoContent)
	}

	if _, err := h.Requests.GetByID(ctx, r0.ID); err == nil {
		t.Error("expected lookup after delete to fail")
	}
}

func TestServeDelete_NotFound(t *testing.T) {
	h, _ := newTestHandler(t)

	id := primitive.NewObjectID().Hex()
	req := testutil.WithChiURLParam(httptest.NewRequest("DELETE", "/requests/"+id, nil), "requestID", id)
	rec := httptest.NewRecorder()
	h.ServeDelete(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusNotFound)
	}
}
