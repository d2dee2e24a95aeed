package repository

import (
	"context"
	"errors"

	"course_review_backend/internal/model"
	"course_review_backend/internal/util"
	"course_review_backend/pkg/database"

	"gorm.io/gorm"
)

// EvaluationRepository stores the Evaluation -> Question -> Answer catalog.
type EvaluationRepository struct {
	DB *gorm.DB
}

func NewEvaluationRepository(db *gorm.DB) *EvaluationRepository {
	return &EvaluationRepository{DB: db}
}

func (r *EvaluationRepository) CreateEvaluation(ctx context.Context, evaluation *model.Evaluation) error {
	err := database.Conn(ctx, r.DB).Create(evaluation).Error
	if isDuplicateKey(err) {
		return util.ErrEvaluationTypeConflict.Wrap(err)
	}
	return err
}

func (r *EvaluationRepository) ExistsEvaluationByType(ctx context.Context, evaluationType string) (bool, error) {
	var count int64
	err := database.Conn(ctx, r.DB).Model(&model.Evaluation{}).
		Where("evaluation_type = ?", evaluationType).
		Count(&count).Error
	return count > 0, err
}

func (r *EvaluationRepository) FindEvaluationByID(ctx context.Context, id string) (*model.Evaluation, error) {
	var evaluation model.Evaluation
	err := database.Conn(ctx, r.DB).Where("id = ?", id).First(&evaluation).Error
	return notFoundAs(&evaluation, err, util.ErrEvaluationNotFound)
}

func (r *EvaluationRepository) FindEvaluationByType(ctx context.Context, evaluationType string) (*model.Evaluation, error) {
	var evaluation model.Evaluation
	err := database.Conn(ctx, r.DB).Where("evaluation_type = ?", evaluationType).First(&evaluation).Error
	return notFoundAs(&evaluation, err, util.ErrEvaluationNotFound)
}

func (r *EvaluationRepository) CreateQuestion(ctx context.Context, question *model.EvaluationQuestion) error {
	err := database.Conn(ctx, r.DB).Create(question).Error
	if isDuplicateKey(err) {
		return util.ErrEvaluationQuestionConflict.Wrap(err)
	}
	return err
}

func (r *EvaluationRepository) ExistsQuestion(ctx context.Context, evaluationID, text string) (bool, error) {
	var count int64
	err := database.Conn(ctx, r.DB).Model(&model.EvaluationQuestion{}).
		Where("evaluation_id = ? AND question = ?", evaluationID, text).
		Count(&count).Error
	return count > 0, err
}

func (r *EvaluationRepository) FindQuestionByID(ctx context.Context, id string) (*model.EvaluationQuestion, error) {
	var question model.EvaluationQuestion
	err := database.Conn(ctx, r.DB).Where("id = ?", id).First(&question).Error
	return notFoundAs(&question, err, util.ErrEvaluationQuestionNotFound)
}

// ListQuestions returns the live questions of an evaluation in creation order.
func (r *EvaluationRepository) ListQuestions(ctx context.Context, evaluationID string) ([]model.EvaluationQuestion, error) {
	questions := []model.EvaluationQuestion{}
	err := database.Conn(ctx, r.DB).
		Where("evaluation_id = ?", evaluationID).
		Order("created_at ASC, id ASC").
		Find(&questions).Error
	return questions, err
}

func (r *EvaluationRepository) CreateAnswer(ctx context.Context, answer *model.EvaluationAnswer) error {
	err := database.Conn(ctx, r.DB).Create(answer).Error
	if isDuplicateKey(err) {
		return util.ErrEvaluationAnswerConflict.Wrap(err)
	}
	return err
}

func (r *EvaluationRepository) ExistsAnswer(ctx context.Context, questionID, text string) (bool, error) {
	var count int64
	err := database.Conn(ctx, r.DB).Model(&model.EvaluationAnswer{}).
		Where("question_id = ? AND answer = ?", questionID, text).
		Count(&count).Error
	return count > 0, err
}

func (r *EvaluationRepository) FindAnswerByID(ctx context.Context, id string) (*model.EvaluationAnswer, error) {
	var answer model.EvaluationAnswer
	err := database.Conn(ctx, r.DB).Where("id = ?", id).First(&answer).Error
	return notFoundAs(&answer, err, util.ErrEvaluationAnswerNotFound)
}

// ListAnswersByQuestionIDs groups the live answers of the given questions by question id.
func (r *EvaluationRepository) ListAnswersByQuestionIDs(ctx context.Context, questionIDs []string) (map[string][]model.EvaluationAnswer, error) {
	grouped := make(map[string][]model.EvaluationAnswer, len(questionIDs))
	if len(questionIDs) == 0 {
		return grouped, nil
	}
	var answers []model.EvaluationAnswer
	err := database.Conn(ctx, r.DB).
		Where("question_id IN ?", questionIDs).
		Order("created_at ASC, id ASC").
		Find(&answers).Error
	if err != nil {
		return nil, err
	}
	for _, a := range answers {
		grouped[a.QuestionID] = append(grouped[a.QuestionID], a)
	}
	return grouped, nil
}

// notFoundAs converts gorm's missing-row error into the entity's own NotFound.
func notFoundAs[T any](v *T, err error, notFound *util.AppError) (*T, error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}
