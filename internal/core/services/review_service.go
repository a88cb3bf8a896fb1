package services

import (
	"context"
	"fmt"
	"log"

	"campuscoffee/internal/adapters/persistence/repositories"
	"campuscoffee/internal/core/domain"
)

// ReviewService handles business logic for reviews, including the approval
// workflow: a review is approved once it has received a configurable minimum
// number of approvals.
type ReviewService struct {
	*CrudService[domain.Review]
	reviewRepo       repositories.ReviewRepository
	userRepo         repositories.UserRepository
	posRepo          repositories.PosRepository
	minApprovalCount int
}

// NewReviewService creates a new review service. minApprovalCount is the
// quorum a review's approval counter must reach to flip its approval flag.
func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	userRepo repositories.UserRepository,
	posRepo repositories.PosRepository,
	minApprovalCount int,
) *ReviewService {
	return &ReviewService{
		CrudService:      NewCrudService[domain.Review](reviewRepo),
		reviewRepo:       reviewRepo,
		userRepo:         userRepo,
		posRepo:          posRepo,
		minApprovalCount: minApprovalCount,
	}
}

// Upsert creates or updates a review. The referenced POS must exist, and an
// author may review a given POS at most once.
func (s *ReviewService) Upsert(ctx context.Context, review domain.Review) (domain.Review, error) {
	pos, err := s.posRepo.GetByID(ctx, review.PosID)
	if err != nil {
		return domain.Review{}, err
	}

	existing, err := s.reviewRepo.FilterByAuthor(ctx, pos.ID, review.AuthorID)
	if err != nil {
		return domain.Review{}, err
	}
	for _, other := range existing {
		if other.ID != review.ID {
			return domain.Review{}, domain.NewValidation(fmt.Sprintf(
				"author with ID %d has already reviewed POS with ID %d", review.AuthorID, pos.ID))
		}
	}

	return s.CrudService.Upsert(ctx, review)
}

// Filter returns all reviews for the given POS matching the approval flag.
// The POS must exist.
func (s *ReviewService) Filter(ctx context.Context, posID uint, approved bool) ([]domain.Review, error) {
	pos, err := s.posRepo.GetByID(ctx, posID)
	if err != nil {
		return nil, err
	}
	return s.reviewRepo.FilterByApproval(ctx, pos.ID, approved)
}

// Approve registers one approval for a review on behalf of the given user.
// The caller-supplied review serves only to identify which review to approve;
// the stored record is authoritative for the current counter and author. Users
// cannot approve their own reviews.
func (s *ReviewService) Approve(ctx context.Context, review domain.Review, userID uint) (domain.Review, error) {
	log.Printf("Processing approval request for review %d by user %d...", review.ID, userID)

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return domain.Review{}, err
	}

	stored, err := s.reviewRepo.GetByID(ctx, review.ID)
	if err != nil {
		return domain.Review{}, err
	}

	if stored.AuthorID == user.ID {
		log.Printf("⚠️ User %d attempted to approve their own review %d", user.ID, review.ID)
		return domain.Review{}, domain.NewValidation(fmt.Sprintf(
			"user with ID %d cannot approve their own review with ID %d", user.ID, review.ID))
	}

	approved := stored.WithApproval(stored.ApprovalCount+1, s.minApprovalCount)
	if approved.Approved {
		log.Printf("Review %d has reached the approval quorum (%d/%d)",
			approved.ID, approved.ApprovalCount, s.minApprovalCount)
	} else {
		log.Printf("Review %d has not reached the approval quorum (%d/%d)",
			approved.ID, approved.ApprovalCount, s.minApprovalCount)
	}

	return s.CrudService.Upsert(ctx, approved)
}
