package repository

import (
	"context"
	"time"

	"course_review_backend/internal/model"
	"course_review_backend/internal/util"
	"course_review_backend/pkg/database"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

func (r *ReviewRepository) Create(ctx context.Context, review *model.Review) error {
	return database.Conn(ctx, r.DB).Create(review).Error
}

func (r *ReviewRepository) FindByID(ctx context.Context, id string) (*model.Review, error) {
	var review model.Review
	err := database.Conn(ctx, r.DB).Where("id = ?", id).First(&review).Error
	return notFoundAs(&review, err, util.ErrReviewNotFound)
}

func (r *ReviewRepository) Save(ctx context.Context, review *model.Review) error {
	return database.Conn(ctx, r.DB).Save(review).Error
}

// SoftDelete marks the review deleted. A missing or already deleted review
// yields ErrReviewNotFound.
func (r *ReviewRepository) SoftDelete(ctx context.Context, id string) error {
	res := database.Conn(ctx, r.DB).Where("id = ?", id).Delete(&model.Review{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return util.ErrReviewNotFound
	}
	return nil
}

// ReviewPageQuery selects one page of a target's displayed reviews.
type ReviewPageQuery struct {
	TargetID   string
	TargetType model.TargetType
	Page       int
	PageSize   int
	Sort       []model.ReviewSort
}

type reviewRow struct {
	ID             string
	TargetID       string
	TargetType     model.TargetType
	UserID         uint
	EvaluationID   string
	FileID         *string
	Score          float64
	Content        string
	CreatedAt      time.Time
	Nickname       *string
	ProfileImageID *string
}

type answerRow struct {
	ReviewID   string
	QuestionID string
	Question   string
	AnswerID   string
	Answer     string
}

const reviewViewColumns = "reviews.id, reviews.target_id, reviews.target_type, reviews.user_id, " +
	"reviews.evaluation_id, reviews.file_id, reviews.score, reviews.content, reviews.created_at, " +
	"users.nickname, users.profile_image_id"

// liveAuthorJoin attaches the author only while the account is not soft-deleted.
const liveAuthorJoin = "LEFT JOIN users ON users.id = reviews.user_id AND users.deleted_at IS NULL"

func (r *ReviewRepository) displayed(ctx context.Context, targetID string, targetType model.TargetType) *gorm.DB {
	return database.Conn(ctx, r.DB).Model(&model.Review{}).
		Where("reviews.target_id = ? AND reviews.target_type = ? AND reviews.is_displayed = ?", targetID, targetType, true)
}

// FindPageByTarget pages over distinct reviews and then loads the answers of
// the page in a single query, so every review takes exactly one slot.
func (r *ReviewRepository) FindPageByTarget(ctx context.Context, q ReviewPageQuery) (*model.ReviewPage, error) {
	orders, err := ResolveReviewOrder(q.Sort)
	if err != nil {
		return nil, err
	}

	page := &model.ReviewPage{Items: []model.ReviewView{}, Page: q.Page, PageSize: q.PageSize}

	if err := r.displayed(ctx, q.TargetID, q.TargetType).Count(&page.Total).Error; err != nil {
		return nil, err
	}
	if page.Total == 0 {
		return page, nil
	}

	query := r.displayed(ctx, q.TargetID, q.TargetType).
		Select(reviewViewColumns).
		Joins(liveAuthorJoin)
	for _, o := range orders {
		query = query.Order(o)
	}

	var rows []reviewRow
	err = query.
		Offset((q.Page - 1) * q.PageSize).
		Limit(q.PageSize).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}
	answers, err := r.answersByReview(ctx, ids)
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		page.Items = append(page.Items, row.view(answers[row.ID]))
	}
	return page, nil
}

// FindViewByID returns the display shape of a single live review.
func (r *ReviewRepository) FindViewByID(ctx context.Context, id string) (*model.ReviewView, error) {
	var rows []reviewRow
	err := database.Conn(ctx, r.DB).Model(&model.Review{}).
		Select(reviewViewColumns).
		Joins(liveAuthorJoin).
		Where("reviews.id = ?", id).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, util.ErrReviewNotFound
	}

	answers, err := r.answersByReview(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	view := rows[0].view(answers[id])
	return &view, nil
}

// answersByReview loads the live (question, answer) pairs of the given
// reviews, grouped by review id.
func (r *ReviewRepository) answersByReview(ctx context.Context, reviewIDs []string) (map[string][]model.ReviewAnswerView, error) {
	grouped := make(map[string][]model.ReviewAnswerView, len(reviewIDs))
	if len(reviewIDs) == 0 {
		return grouped, nil
	}

	var rows []answerRow
	err := database.Conn(ctx, r.DB).Table("evaluation_results").
		Select("evaluation_results.review_id, evaluation_questions.id AS question_id, evaluation_questions.question, " +
			"evaluation_answers.id AS answer_id, evaluation_answers.answer").
		Joins("JOIN evaluation_answers ON evaluation_answers.id = evaluation_results.answer_id AND evaluation_answers.deleted_at IS NULL").
		Joins("JOIN evaluation_questions ON evaluation_questions.id = evaluation_answers.question_id AND evaluation_questions.deleted_at IS NULL").
		Where("evaluation_results.review_id IN ? AND evaluation_results.deleted_at IS NULL", reviewIDs).
		Order("evaluation_results.review_id ASC, evaluation_questions.created_at ASC, evaluation_questions.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		grouped[row.ReviewID] = append(grouped[row.ReviewID], model.ReviewAnswerView{
			QuestionID: row.QuestionID,
			Question:   row.Question,
			AnswerID:   row.AnswerID,
			Answer:     row.Answer,
		})
	}
	return grouped, nil
}

func (row reviewRow) view(answers []model.ReviewAnswerView) model.ReviewView {
	if answers == nil {
		answers = []model.ReviewAnswerView{}
	}
	var nickname string
	if row.Nickname != nil {
		nickname = *row.Nickname
	}
	return model.ReviewView{
		ID:             row.ID,
		TargetID:       row.TargetID,
		TargetType:     row.TargetType,
		UserID:         row.UserID,
		Nickname:       nickname,
		ProfileImageID: row.ProfileImageID,
		EvaluationID:   row.EvaluationID,
		FileID:         row.FileID,
		Score:          row.Score,
		Content:        row.Content,
		CreatedAt:      row.CreatedAt,
		Answers:        answers,
	}
}
