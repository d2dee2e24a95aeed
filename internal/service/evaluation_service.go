package service

import (
	"context"
	"errors"
	"strings"

	"course_review_backend/internal/model"
	"course_review_backend/internal/repository"
	"course_review_backend/internal/util"
	"course_review_backend/pkg/database"

	"gorm.io/gorm"
)

// EvaluationService owns the questionnaire catalog and the ledger of
// answers selected inside reviews.
type EvaluationService struct {
	DB         *gorm.DB
	Catalog    *repository.EvaluationRepository
	ResultRepo *repository.EvaluationResultRepository
}

func NewEvaluationService(db *gorm.DB, catalog *repository.EvaluationRepository, resultRepo *repository.EvaluationResultRepository) *EvaluationService {
	return &EvaluationService{DB: db, Catalog: catalog, ResultRepo: resultRepo}
}

type CreateEvaluationRequest struct {
	Type string `json:"type" binding:"required,max=50"`
}

type CreateQuestionRequest struct {
	Question string `json:"question" binding:"required,max=255"`
}

type CreateAnswerRequest struct {
	Answer string `json:"answer" binding:"required,max=255"`
}

// QuestionWithAnswers is a question and its selectable answers.
type QuestionWithAnswers struct {
	model.EvaluationQuestion
	Answers []model.EvaluationAnswer `json:"answers"`
}

func requireText(field, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", util.ErrValidationFailed.WithField(field)
	}
	return value, nil
}

func (s *EvaluationService) CreateEvaluation(ctx context.Context, evaluationType string) (*model.Evaluation, error) {
	evaluationType, err := requireText("type", evaluationType)
	if err != nil {
		return nil, err
	}

	evaluation := &model.Evaluation{Type: evaluationType}
	err = database.Transaction(ctx, s.DB, func(ctx context.Context) error {
		exists, err := s.Catalog.ExistsEvaluationByType(ctx, evaluationType)
		if err != nil {
			return err
		}
		if exists {
			return util.ErrEvaluationTypeConflict
		}
		return s.Catalog.CreateEvaluation(ctx, evaluation)
	})
	if err != nil {
		return nil, err
	}
	return evaluation, nil
}

func (s *EvaluationService) CreateQuestion(ctx context.Context, evaluationID, text string) (*model.EvaluationQuestion, error) {
	text, err := requireText("question", text)
	if err != nil {
		return nil, err
	}

	var question *model.EvaluationQuestion
	err = database.Transaction(ctx, s.DB, func(ctx context.Context) error {
		evaluation, err := s.Catalog.FindEvaluationByID(ctx, evaluationID)
		if err != nil {
			return err
		}
		exists, err := s.Catalog.ExistsQuestion(ctx, evaluation.ID, text)
		if err != nil {
			return err
		}
		if exists {
			return util.ErrEvaluationQuestionConflict
		}
		question = &model.EvaluationQuestion{EvaluationID: evaluation.ID, Question: text}
		return s.Catalog.CreateQuestion(ctx, question)
	})
	if err != nil {
		return nil, err
	}
	return question, nil
}

func (s *EvaluationService) CreateAnswer(ctx context.Context, questionID, text string) (*model.EvaluationAnswer, error) {
	text, err := requireText("answer", text)
	if err != nil {
		return nil, err
	}

	var answer *model.EvaluationAnswer
	err = database.Transaction(ctx, s.DB, func(ctx context.Context) error {
		question, err := s.Catalog.FindQuestionByID(ctx, questionID)
		if err != nil {
			return err
		}
		exists, err := s.Catalog.ExistsAnswer(ctx, question.ID, text)
		if err != nil {
			return err
		}
		if exists {
			return util.ErrEvaluationAnswerConflict
		}
		answer = &model.EvaluationAnswer{QuestionID: question.ID, Answer: text}
		return s.Catalog.CreateAnswer(ctx, answer)
	})
	if err != nil {
		return nil, err
	}
	return answer, nil
}

func (s *EvaluationService) GetEvaluation(ctx context.Context, id string) (*model.Evaluation, error) {
	return s.Catalog.FindEvaluationByID(ctx, id)
}

func (s *EvaluationService) GetEvaluationByType(ctx context.Context, evaluationType string) (*model.Evaluation, error) {
	return s.Catalog.FindEvaluationByType(ctx, evaluationType)
}

func (s *EvaluationService) GetQuestion(ctx context.Context, id string) (*model.EvaluationQuestion, error) {
	return s.Catalog.FindQuestionByID(ctx, id)
}

func (s *EvaluationService) GetAnswer(ctx context.Context, id string) (*model.EvaluationAnswer, error) {
	return s.Catalog.FindAnswerByID(ctx, id)
}

// ListQuestions returns an empty list for an unknown evaluation.
func (s *EvaluationService) ListQuestions(ctx context.Context, evaluationID string) ([]model.EvaluationQuestion, error) {
	return s.Catalog.ListQuestions(ctx, evaluationID)
}

// ListQuestionsWithAnswers returns the questionnaire of an existing evaluation.
func (s *EvaluationService) ListQuestionsWithAnswers(ctx context.Context, evaluationID string) ([]QuestionWithAnswers, error) {
	if _, err := s.Catalog.FindEvaluationByID(ctx, evaluationID); err != nil {
		return nil, err
	}
	questions, err := s.Catalog.ListQuestions(ctx, evaluationID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(questions))
	for i, q := range questions {
		ids[i] = q.ID
	}
	answers, err := s.Catalog.ListAnswersByQuestionIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]QuestionWithAnswers, len(questions))
	for i, q := range questions {
		out[i] = QuestionWithAnswers{EvaluationQuestion: q, Answers: answers[q.ID]}
		if out[i].Answers == nil {
			out[i].Answers = []model.EvaluationAnswer{}
		}
	}
	return out, nil
}

func (s *EvaluationService) ResultExists(ctx context.Context, reviewID, questionID string, userID uint) (bool, error) {
	return s.ResultRepo.Exists(ctx, reviewID, questionID, userID)
}

func (s *EvaluationService) FindResult(ctx context.Context, userID uint, reviewID, questionID string) (*model.EvaluationResult, error) {
	return s.ResultRepo.Find(ctx, userID, reviewID, questionID)
}

func (s *EvaluationService) FindAllResults(ctx context.Context, userID uint, reviewID string) ([]model.EvaluationResult, error) {
	return s.ResultRepo.FindAll(ctx, userID, reviewID)
}

// CreateResult records the user's answer inside a review. The duplicate
// check is keyed by the answer's question, so two different answers to one
// question conflict.
func (s *EvaluationService) CreateResult(ctx context.Context, userID uint, reviewID, answerID string) (*model.EvaluationResult, error) {
	var result *model.EvaluationResult
	err := database.Transaction(ctx, s.DB, func(ctx context.Context) error {
		answer, err := s.Catalog.FindAnswerByID(ctx, answerID)
		if err != nil {
			return err
		}
		exists, err := s.ResultRepo.Exists(ctx, reviewID, answer.QuestionID, userID)
		if err != nil {
			return err
		}
		if exists {
			return util.ErrEvaluationResultAnswerConflict
		}
		result = &model.EvaluationResult{
			ReviewID:   reviewID,
			QuestionID: answer.QuestionID,
			UserID:     userID,
			AnswerID:   answer.ID,
		}
		return s.ResultRepo.Create(ctx, result)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateResult repoints the user's existing result for the answer's question.
// It never creates: a question with no prior result fails with
// ErrEvaluationResultNotFound.
func (s *EvaluationService) UpdateResult(ctx context.Context, userID uint, reviewID string, answer *model.EvaluationAnswer) error {
	return database.Transaction(ctx, s.DB, func(ctx context.Context) error {
		result, err := s.ResultRepo.Find(ctx, userID, reviewID, answer.QuestionID)
		if err != nil {
			return err
		}
		result.AnswerID = answer.ID
		return s.ResultRepo.Save(ctx, result)
	})
}

// DeleteAllResults fails with ErrEvaluationResultNotFound when the review had none.
func (s *EvaluationService) DeleteAllResults(ctx context.Context, reviewID string) error {
	return s.ResultRepo.DeleteAllForReview(ctx, reviewID)
}

// isResultNotFound reports the zero-row outcome of DeleteAllResults.
func isResultNotFound(err error) bool {
	return errors.Is(err, util.ErrEvaluationResultNotFound)
}
