package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/travelnotes/backoffice/internal/api/metrics"
	"github.com/travelnotes/backoffice/internal/api/middleware"
	"github.com/travelnotes/backoffice/internal/core/domain"
	"github.com/travelnotes/backoffice/internal/core/ports"
)

// SubmissionHandler exposes the listing and review endpoints.
type SubmissionHandler struct {
	listing    ports.ListingService
	moderation ports.ModerationService
}

func NewSubmissionHandler(listing ports.ListingService, moderation ports.ModerationService) *SubmissionHandler {
	return &SubmissionHandler{listing: listing, moderation: moderation}
}

// --- Request / Response types ---

type submissionSummaryResponse struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	AuthorName      string `json:"author_name,omitempty"`
	Status          string `json:"status"`
	RejectionReason string `json:"rejection_reason,omitempty"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

type listSubmissionsResponse struct {
	Items      []submissionSummaryResponse `json:"items"`
	Pagination ports.Pagination            `json:"pagination"`
}

type reviewRequest struct {
	Action string `json:"action" validate:"required,oneof=approve reject delete"`
	Reason string `json:"reason,omitempty"`
}

type reviewResponse struct {
	ID     string `json:"id"`
	Action string `json:"action"`
}

// List handles GET /v1/submissions.
//
// @Summary      List submissions
// @Tags         submissions
// @Produce      json
// @Security     BearerAuth
// @Param        status     query     string  false  "Filter by review status (pending, approved, rejected)"
// @Param        search     query     string  false  "Case-insensitive match on title or content"
// @Param        page       query     int     false  "1-based page number"
// @Param        page_size  query     int     false  "Rows per page (max 100)"
// @Success      200        {object}  listSubmissionsResponse
// @Failure      401        {object}  map[string]string
// @Failure      422        {object}  map[string]string
// @Router       /v1/submissions [get]
func (h *SubmissionHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("page_size"))

	result, err := h.listing.List(c.Request().Context(), ports.ListSubmissionsInput{
		Status:   c.QueryParam("status"),
		Search:   c.QueryParam("search"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return err
	}

	items := make([]submissionSummaryResponse, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, submissionSummaryResponse{
			ID:              item.ID,
			Title:           item.Title,
			AuthorName:      item.AuthorName,
			Status:          item.Status,
			RejectionReason: item.RejectionReason,
			CreatedAt:       item.CreatedAt.Format(time.RFC3339),
			UpdatedAt:       item.UpdatedAt.Format(time.RFC3339),
		})
	}

	return c.JSON(http.StatusOK, listSubmissionsResponse{
		Items:      items,
		Pagination: result.Pagination,
	})
}

// Get handles GET /v1/submissions/:id.
//
// @Summary      Get a submission
// @Tags         submissions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Submission id"
// @Success      200  {object}  domain.Submission
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/submissions/{id} [get]
func (h *SubmissionHandler) Get(c echo.Context) error {
	sub, err := h.listing.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sub)
}

// Review handles POST /v1/submissions/:id/review — the single mutating
// entry point. The route is moderator-gated; delete additionally requires
// admin authority, checked here against the authenticated identity before
// dispatching to the moderation engine.
//
// @Summary      Apply a review action
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Submission id"
// @Param        body  body      reviewRequest  true  "Action and optional rejection reason"
// @Success      200   {object}  reviewResponse
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/submissions/{id}/review [post]
func (h *SubmissionHandler) Review(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "no authenticated identity")
	}

	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id := c.Param("id")
	ctx := c.Request().Context()

	var err error
	switch domain.ReviewAction(req.Action) {
	case domain.ActionApprove:
		err = h.moderation.Approve(ctx, id, identity)
	case domain.ActionReject:
		err = h.moderation.Reject(ctx, id, req.Reason, identity)
	case domain.ActionDelete:
		if !identity.Role.Meets(domain.RoleAdmin) {
			metrics.ReviewActionsTotal.WithLabelValues(req.Action, "forbidden").Inc()
			return echo.NewHTTPError(http.StatusForbidden, "delete requires admin role")
		}
		err = h.moderation.Delete(ctx, id, identity)
	}

	metrics.ReviewActionsTotal.WithLabelValues(req.Action, outcomeLabel(err)).Inc()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, reviewResponse{ID: id, Action: req.Action})
}

func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return "applied"
	case errors.Is(err, domain.ErrInvalidTransition):
		return "invalid_transition"
	case errors.Is(err, domain.ErrForbidden):
		return "forbidden"
	case errors.Is(err, domain.ErrValidation):
		return "validation_error"
	case errors.Is(err, domain.ErrSubmissionNotFound):
		return "not_found"
	}
	return "error"
}
