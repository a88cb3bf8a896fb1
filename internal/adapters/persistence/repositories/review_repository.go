package repositories

import (
	"context"

	"campuscoffee/internal/adapters/persistence/models"
	"campuscoffee/internal/core/domain"

	"gorm.io/gorm"
)

// reviewRepository implements ReviewRepository
type reviewRepository struct {
	*crudRepository[domain.Review, models.Review]
	db *gorm.DB
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *gorm.DB, registry *ConstraintRegistry) ReviewRepository {
	return &reviewRepository{
		crudRepository: newCrudRepository(db, registry, descriptor[domain.Review, models.Review]{
			kind:      domain.KindReview,
			table:     models.ReviewTableName,
			id:        func(r domain.Review) uint { return r.ID },
			fromModel: func(m *models.Review) domain.Review { return m.ToDomain() },
			newModel:  models.ReviewFromDomain,
			apply:     func(r domain.Review, m *models.Review) { m.ApplyDomain(r) },
			// reviews have no unique fields; author uniqueness per POS is a
			// business rule enforced in the service layer
		}),
		db: db,
	}
}

// FilterByApproval returns all reviews for a POS matching the approval flag
func (r *reviewRepository) FilterByApproval(ctx context.Context, posID uint, approved bool) ([]domain.Review, error) {
	return r.filter(ctx, "pos_id = ? AND approved = ?", posID, approved)
}

// FilterByAuthor returns all reviews a given author wrote for a POS
func (r *reviewRepository) FilterByAuthor(ctx context.Context, posID, authorID uint) ([]domain.Review, error) {
	return r.filter(ctx, "pos_id = ? AND author_id = ?", posID, authorID)
}

func (r *reviewRepository) filter(ctx context.Context, query string, args ...interface{}) ([]domain.Review, error) {
	var ms []models.Review
	if err := r.db.WithContext(ctx).Where(query, args...).Find(&ms).Error; err != nil {
		return nil, err
	}
	reviews := make([]domain.Review, len(ms))
	for i := range ms {
		reviews[i] = ms[i].ToDomain()
	}
	return reviews, nil
}
