package handlers

import (
	"strconv"
	"time"

	"campuscoffee/internal/core/domain"
	"campuscoffee/internal/core/services"
	"campuscoffee/internal/pkg/response"
	"campuscoffee/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

// ReviewHandler handles review endpoints
type ReviewHandler struct {
	reviewService *services.ReviewService
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// ReviewRequest represents a review create/update request body
type ReviewRequest struct {
	PosID    uint   `json:"pos_id" validate:"required"`
	AuthorID uint   `json:"author_id" validate:"required"`
	Review   string `json:"review" validate:"required,min=10,max=5000"`
}

// ReviewResponse represents a review in API responses
type ReviewResponse struct {
	ID            uint      `json:"id"`
	PosID         uint      `json:"pos_id"`
	AuthorID      uint      `json:"author_id"`
	Review        string    `json:"review"`
	ApprovalCount int       `json:"approval_count"`
	Approved      bool      `json:"approved"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func toReviewResponse(r domain.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:            r.ID,
		PosID:         r.PosID,
		AuthorID:      r.AuthorID,
		Review:        r.Review,
		ApprovalCount: r.ApprovalCount,
		Approved:      r.Approved,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func toReviewResponses(reviews []domain.Review) []*ReviewResponse {
	result := make([]*ReviewResponse, len(reviews))
	for i, r := range reviews {
		result[i] = toReviewResponse(r)
	}
	return result
}

// ListReviews handles listing all reviews
func (h *ReviewHandler) ListReviews(c *fiber.Ctx) error {
	reviews, err := h.reviewService.GetAll(c.Context())
	if err != nil {
		return response.DomainError(c, err)
	}
	return response.Success(c, "Reviews retrieved successfully", toReviewResponses(reviews))
}

// GetReview handles getting a review by ID
func (h *ReviewHandler) GetReview(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid review ID")
	}

	review, err := h.reviewService.GetByID(c.Context(), uint(id))
	if err != nil {
		return response.DomainError(c, err)
	}
	return response.Success(c, "Review retrieved successfully", toReviewResponse(review))
}

// FilterReviews handles listing reviews of a POS, filtered by approval status
func (h *ReviewHandler) FilterReviews(c *fiber.Ctx) error {
	posID, err := strconv.ParseUint(c.Query("pos_id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Query parameter 'pos_id' is required")
	}
	rawApproved := c.Query("approved")
	if rawApproved == "" {
		return response.BadRequest(c, "Query parameter 'approved' is required")
	}
	approved, err := strconv.ParseBool(rawApproved)
	if err != nil {
		return response.BadRequest(c, "Query parameter 'approved' must be a boolean")
	}

	reviews, err := h.reviewService.Filter(c.Context(), uint(posID), approved)
	if err != nil {
		return response.DomainError(c, err)
	}
	return response.Success(c, "Reviews retrieved successfully", toReviewResponses(reviews))
}

// CreateReview handles creating a new review. The approval counter and flag
// always start at zero regardless of what the client sends.
func (h *ReviewHandler) CreateReview(c *fiber.Ctx) error {
	var req ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	review := domain.NewReview(req.PosID, req.AuthorID, req.Review)

	created, err := h.reviewService.Upsert(c.Context(), review)
	if err != nil {
		return response.DomainError(c, err)
	}
	return response.Created(c, "Review created successfully", toReviewResponse(created))
}

// UpdateReview handles updating an existing review's text
func (h *ReviewHandler) UpdateReview(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid review ID")
	}

	var req ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	stored, err := h.reviewService.GetByID(c.Context(), uint(id))
	if err != nil {
		return response.DomainError(c, err)
	}

	stored.PosID = req.PosID
	stored.AuthorID = req.AuthorID
	stored.Review = req.Review

	updated, err := h.reviewService.Upsert(c.Context(), stored)
	if err != nil {
		return response.DomainError(c, err)
	}
	return response.Success(c, "Review updated successfully", toReviewResponse(updated))
}

// DeleteReview handles deleting a review
func (h *ReviewHandler) DeleteReview(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid review ID")
	}

	if err := h.reviewService.Delete(c.Context(), uint(id)); err != nil {
		return response.DomainError(c, err)
	}
	return response.Success(c, "Review deleted successfully", nil)
}

// ApproveReview handles approving a review on behalf of a user
func (h *ReviewHandler) ApproveReview(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid review ID")
	}
	userID, err := strconv.ParseUint(c.Query("user_id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Query parameter 'user_id' is required")
	}

	review, err := h.reviewService.GetByID(c.Context(), uint(id))
	if err != nil {
		return response.DomainError(c, err)
	}

	approved, err := h.reviewService.Approve(c.Context(), review, uint(userID))
	if err != nil {
		return response.DomainError(c, err)
	}
	return response.Success(c, "Review approved successfully", toReviewResponse(approved))
}
