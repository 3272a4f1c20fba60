package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/travelnotes/backoffice/internal/api/middleware"
	"github.com/travelnotes/backoffice/internal/core/domain"
	"github.com/travelnotes/backoffice/internal/core/ports"
)

type stubListingService struct {
	listFn func(ctx context.Context, input ports.ListSubmissionsInput) (*ports.ListSubmissionsResult, error)
	getFn  func(ctx context.Context, id string) (*domain.Submission, error)
}

func (s *stubListingService) List(ctx context.Context, input ports.ListSubmissionsInput) (*ports.ListSubmissionsResult, error) {
	return s.listFn(ctx, input)
}

func (s *stubListingService) Get(ctx context.Context, id string) (*domain.Submission, error) {
	return s.getFn(ctx, id)
}

type stubModerationService struct {
	approveFn func(ctx context.Context, id string, actor domain.Identity) error
	rejectFn  func(ctx context.Context, id, reason string, actor domain.Identity) error
	deleteFn  func(ctx context.Context, id string, actor domain.Identity) error
}

func (s *stubModerationService) Approve(ctx context.Context, id string, actor domain.Identity) error {
	return s.approveFn(ctx, id, actor)
}

func (s *stubModerationService) Reject(ctx context.Context, id, reason string, actor domain.Identity) error {
	return s.rejectFn(ctx, id, reason, actor)
}

func (s *stubModerationService) Delete(ctx context.Context, id string, actor domain.Identity) error {
	return s.deleteFn(ctx, id, actor)
}

var testModerator = domain.Identity{ID: "mod_1", Username: "maria", Role: domain.RoleModerator}
var testAdmin = domain.Identity{ID: "adm_1", Username: "root", Role: domain.RoleAdmin}

func reviewContext(t *testing.T, e *echo.Echo, id, body string, actor domain.Identity) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/submissions/"+id+"/review", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/submissions/:id/review")
	c.SetParamNames("id")
	c.SetParamValues(id)
	c.Set(middleware.ContextKeyIdentity, actor)
	return c, rec
}

func TestSubmissionHandler_List(t *testing.T) {
	e := newTestEcho()
	listing := &stubListingService{
		listFn: func(ctx context.Context, input ports.ListSubmissionsInput) (*ports.ListSubmissionsResult, error) {
			if input.Status != "pending" || input.Page != 2 || input.PageSize != 10 {
				t.Fatalf("query params not forwarded: %+v", input)
			}
			return &ports.ListSubmissionsResult{
				Items: []ports.SubmissionSummary{
					{ID: "sub_1", Title: "Three days in Lisbon", Status: "pending", CreatedAt: time.Now(), UpdatedAt: time.Now()},
				},
				Pagination: ports.Pagination{CurrentPage: 2, PageSize: 10, TotalItems: 11, TotalPages: 2},
			}, nil
		},
	}
	handler := NewSubmissionHandler(listing, &stubModerationService{})

	req := httptest.NewRequest(http.MethodGet, "/v1/submissions?status=pending&page=2&page_size=10", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	pagination, ok := resp["pagination"].(map[string]any)
	if !ok {
		t.Fatal("expected pagination in response")
	}
	if pagination["total_items"] != float64(11) || pagination["current_page"] != float64(2) {
		t.Fatalf("unexpected pagination: %+v", pagination)
	}
}

func TestSubmissionHandler_Get_NotFound(t *testing.T) {
	e := newTestEcho()
	listing := &stubListingService{
		getFn: func(ctx context.Context, id string) (*domain.Submission, error) {
			return nil, domain.ErrSubmissionNotFound
		},
	}
	handler := NewSubmissionHandler(listing, &stubModerationService{})

	req := httptest.NewRequest(http.MethodGet, "/v1/submissions/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := handler.Get(c)
	if err == nil {
		t.Fatal("expected error for missing submission")
	}
}

func TestSubmissionHandler_Review_Approve(t *testing.T) {
	e := newTestEcho()
	approved := ""
	moderation := &stubModerationService{
		approveFn: func(ctx context.Context, id string, actor domain.Identity) error {
			approved = id
			if actor.ID != testModerator.ID {
				t.Fatalf("wrong actor: %+v", actor)
			}
			return nil
		},
	}
	handler := NewSubmissionHandler(&stubListingService{}, moderation)

	c, rec := reviewContext(t, e, "sub_1", `{"action":"approve"}`, testModerator)
	if err := handler.Review(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if approved != "sub_1" {
		t.Fatalf("expected sub_1 approved, got %q", approved)
	}
}

func TestSubmissionHandler_Review_RejectForwardsReason(t *testing.T) {
	e := newTestEcho()
	gotReason := ""
	moderation := &stubModerationService{
		rejectFn: func(ctx context.Context, id, reason string, actor domain.Identity) error {
			gotReason = reason
			return nil
		},
	}
	handler := NewSubmissionHandler(&stubListingService{}, moderation)

	c, rec := reviewContext(t, e, "sub_1", `{"action":"reject","reason":"spam"}`, testModerator)
	if err := handler.Review(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotReason != "spam" {
		t.Fatalf("expected reason forwarded, got %q", gotReason)
	}
}

func TestSubmissionHandler_Review_DeleteAsModeratorForbidden(t *testing.T) {
	e := newTestEcho()
	moderation := &stubModerationService{
		deleteFn: func(ctx context.Context, id string, actor domain.Identity) error {
			t.Fatal("engine must not be reached; the gate rejects first")
			return nil
		},
	}
	handler := NewSubmissionHandler(&stubListingService{}, moderation)

	c, rec := reviewContext(t, e, "sub_1", `{"action":"delete"}`, testModerator)
	if err := handler.Review(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestSubmissionHandler_Review_DeleteAsAdmin(t *testing.T) {
	e := newTestEcho()
	deleted := ""
	moderation := &stubModerationService{
		deleteFn: func(ctx context.Context, id string, actor domain.Identity) error {
			deleted = id
			return nil
		},
	}
	handler := NewSubmissionHandler(&stubListingService{}, moderation)

	c, rec := reviewContext(t, e, "sub_1", `{"action":"delete"}`, testAdmin)
	if err := handler.Review(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if deleted != "sub_1" {
		t.Fatalf("expected sub_1 deleted, got %q", deleted)
	}
}

func TestSubmissionHandler_Review_UnknownAction(t *testing.T) {
	e := newTestEcho()
	handler := NewSubmissionHandler(&stubListingService{}, &stubModerationService{})

	c, rec := reviewContext(t, e, "sub_1", `{"action":"archive"}`, testModerator)
	if err := handler.Review(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestSubmissionHandler_Review_NoIdentity(t *testing.T) {
	e := newTestEcho()
	handler := NewSubmissionHandler(&stubListingService{}, &stubModerationService{})

	req := httptest.NewRequest(http.MethodPost, "/v1/submissions/sub_1/review", strings.NewReader(`{"action":"approve"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("sub_1")

	if err := handler.Review(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
