package repository

import (
	"context"

	"course_review_backend/internal/model"
	"course_review_backend/internal/util"
	"course_review_backend/pkg/database"

	"gorm.io/gorm"
)

// EvaluationResultRepository is the ledger of answers selected inside reviews.
// Rows are unique per (review, question, user).
type EvaluationResultRepository struct {
	DB *gorm.DB
}

func NewEvaluationResultRepository(db *gorm.DB) *EvaluationResultRepository {
	return &EvaluationResultRepository{DB: db}
}

func (r *EvaluationResultRepository) Exists(ctx context.Context, reviewID, questionID string, userID uint) (bool, error) {
	var count int64
	err := database.Conn(ctx, r.DB).Model(&model.EvaluationResult{}).
		Where("review_id = ? AND question_id = ? AND user_id = ?", reviewID, questionID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *EvaluationResultRepository) Find(ctx context.Context, userID uint, reviewID, questionID string) (*model.EvaluationResult, error) {
	var result model.EvaluationResult
	err := database.Conn(ctx, r.DB).
		Where("user_id = ? AND review_id = ? AND question_id = ?", userID, reviewID, questionID).
		First(&result).Error
	return notFoundAs(&result, err, util.ErrEvaluationResultNotFound)
}

func (r *EvaluationResultRepository) FindAll(ctx context.Context, userID uint, reviewID string) ([]model.EvaluationResult, error) {
	results := []model.EvaluationResult{}
	err := database.Conn(ctx, r.DB).
		Where("user_id = ? AND review_id = ?", userID, reviewID).
		Order("created_at ASC, id ASC").
		Find(&results).Error
	return results, err
}

func (r *EvaluationResultRepository) Create(ctx context.Context, result *model.EvaluationResult) error {
	err := database.Conn(ctx, r.DB).Create(result).Error
	if isDuplicateKey(err) {
		return util.ErrEvaluationResultAnswerConflict.Wrap(err)
	}
	return err
}

func (r *EvaluationResultRepository) Save(ctx context.Context, result *model.EvaluationResult) error {
	return database.Conn(ctx, r.DB).Save(result).Error
}

// DeleteAllForReview soft-deletes every result of the review. It fails with
// ErrEvaluationResultNotFound when the review had no live results.
func (r *EvaluationResultRepository) DeleteAllForReview(ctx context.Context, reviewID string) error {
	res := database.Conn(ctx, r.DB).Where("review_id = ?", reviewID).Delete(&model.EvaluationResult{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return util.ErrEvaluationResultNotFound
	}
	return nil
}
