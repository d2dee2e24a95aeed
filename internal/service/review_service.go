package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"course_review_backend/internal/config"
	"course_review_backend/internal/model"
	"course_review_backend/internal/repository"
	"course_review_backend/internal/util"
	"course_review_backend/pkg/database"
	"course_review_backend/pkg/logger"
	"course_review_backend/pkg/monitoring"
	"course_review_backend/pkg/tracing"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ReviewService struct {
	DB            *gorm.DB
	ReviewRepo    *repository.ReviewRepository
	UserRepo      *repository.UserRepository
	FileRepo      *repository.FileRepository
	EvaluationSvc *EvaluationService
	Targets       *TargetGateway
	Authorizer    ReviewAuthorizer
	Cache         *repository.ReviewPageCache
	Paging        config.ReviewConfig
}

func NewReviewService(
	db *gorm.DB,
	reviewRepo *repository.ReviewRepository,
	userRepo *repository.UserRepository,
	fileRepo *repository.FileRepository,
	evaluationSvc *EvaluationService,
	targets *TargetGateway,
	cache *repository.ReviewPageCache,
	paging config.ReviewConfig,
) *ReviewService {
	return &ReviewService{
		DB:            db,
		ReviewRepo:    reviewRepo,
		UserRepo:      userRepo,
		FileRepo:      fileRepo,
		EvaluationSvc: evaluationSvc,
		Targets:       targets,
		Authorizer:    OwnerOrAdmin{},
		Cache:         cache,
		Paging:        paging,
	}
}

type CreateReviewRequest struct {
	TargetID     string   `json:"targetId" binding:"required"`
	TargetType   string   `json:"targetType" binding:"required"`
	EvaluationID string   `json:"evaluationId" binding:"required"`
	AnswerIDs    []string `json:"answerIds"`
	FileID       *string  `json:"fileId"`
	Score        float64  `json:"score"`
	Content      string   `json:"content"`
}

type ModifyReviewRequest struct {
	AnswerIDs []string `json:"answerIds"`
	Score     *float64 `json:"score"`
	Content   *string  `json:"content"`
}

type ListReviewsQuery struct {
	TargetID   string
	TargetType string
	Page       int
	PageSize   int
	Sort       []model.ReviewSort
}

// CheckValidScore accepts multiples of 0.5 from 0.5 to 5.0 inclusive. Grid
// membership is decided on the score scaled to tenths, and the scaled value
// must already be integral so near-misses such as 4.999999999 are rejected.
func CheckValidScore(score float64) error {
	if math.IsNaN(score) || score < model.MinReviewScore || score > model.MaxReviewScore {
		return util.ErrReviewScoreInvalid
	}
	scaled := math.Round(score * 10)
	if math.Abs(score*10-scaled) > 1e-9 {
		return util.ErrReviewScoreInvalid
	}
	if int(scaled)%5 != 0 {
		return util.ErrReviewScoreInvalid
	}
	return nil
}

func checkContent(content string) error {
	n := utf8.RuneCountInString(content)
	if strings.TrimSpace(content) == "" || n > model.MaxReviewContentLength {
		return util.ErrValidationFailed.WithField("content")
	}
	return nil
}

func parseTargetType(s string) (model.TargetType, error) {
	t, err := model.ParseTargetType(s)
	if err != nil {
		return "", util.ErrValidationFailed.WithField("targetType").Wrap(err)
	}
	return t, nil
}

// Create stores a review and one ledger row per answer in a single
// transaction. The first failing check aborts everything.
func (s *ReviewService) Create(ctx context.Context, userID uint, req CreateReviewRequest) (review *model.Review, err error) {
	ctx, span := tracing.Start(ctx, "ReviewService.Create")
	defer func() {
		s.finish("create", err, zap.Uint("userId", userID), zap.String("targetId", req.TargetID))
		tracing.End(span, err)
	}()

	targetType, err := parseTargetType(req.TargetType)
	if err != nil {
		return nil, err
	}

	err = database.Transaction(ctx, s.DB, func(ctx context.Context) error {
		if _, err := s.UserRepo.FindByID(ctx, userID); err != nil {
			return err
		}
		evaluation, err := s.EvaluationSvc.GetEvaluation(ctx, req.EvaluationID)
		if err != nil {
			return err
		}
		var fileID *string
		if req.FileID != nil && *req.FileID != "" {
			file, err := s.FileRepo.FindByID(ctx, *req.FileID)
			if err != nil {
				return err
			}
			fileID = &file.ID
		}
		if err := CheckValidScore(req.Score); err != nil {
			return err
		}
		if err := checkContent(req.Content); err != nil {
			return err
		}
		if err := s.Targets.Require(ctx, targetType, req.TargetID); err != nil {
			return err
		}
		for _, answerID := range req.AnswerIDs {
			if err := s.checkAnswerBelongs(ctx, answerID, evaluation.ID); err != nil {
				return err
			}
		}

		review = &model.Review{
			TargetID:     req.TargetID,
			TargetType:   targetType,
			UserID:       userID,
			EvaluationID: evaluation.ID,
			FileID:       fileID,
			Score:        req.Score,
			Content:      req.Content,
			IsDisplayed:  true,
		}
		if err := s.ReviewRepo.Create(ctx, review); err != nil {
			return err
		}
		for _, answerID := range req.AnswerIDs {
			if _, err := s.EvaluationSvc.CreateResult(ctx, userID, review.ID, answerID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Cache.Invalidate(ctx, review.TargetType, review.TargetID)
	logger.Log.Info("review created",
		zap.String("reviewId", review.ID),
		zap.Uint("userId", userID),
		zap.Int("answers", len(req.AnswerIDs)))
	return review, nil
}

func (s *ReviewService) checkAnswerBelongs(ctx context.Context, answerID, evaluationID string) error {
	answer, err := s.EvaluationSvc.GetAnswer(ctx, answerID)
	if err != nil {
		return err
	}
	question, err := s.EvaluationSvc.GetQuestion(ctx, answer.QuestionID)
	if err != nil {
		return err
	}
	if question.EvaluationID != evaluationID {
		return util.ErrInvalidEvaluationAnswer.WithField("answerIds")
	}
	return nil
}

// Modify updates score, content and previously answered questions of a
// review. Answers are resolved before anything is written.
func (s *ReviewService) Modify(ctx context.Context, reviewID string, req ModifyReviewRequest, caller Caller) (review *model.Review, err error) {
	ctx, span := tracing.Start(ctx, "ReviewService.Modify")
	defer func() {
		s.finish("modify", err, zap.String("reviewId", reviewID), zap.Uint("callerId", caller.UserID))
		tracing.End(span, err)
	}()

	err = database.Transaction(ctx, s.DB, func(ctx context.Context) error {
		var err error
		review, err = s.ReviewRepo.FindByID(ctx, reviewID)
		if err != nil {
			return err
		}
		if !s.Authorizer.IsOwnerOrElevated(review, caller) {
			return util.ErrUnauthorizedAccess
		}
		if req.Score != nil {
			if err := CheckValidScore(*req.Score); err != nil {
				return err
			}
		}
		if req.Content != nil {
			if err := checkContent(*req.Content); err != nil {
				return err
			}
		}

		answers := make([]*model.EvaluationAnswer, 0, len(req.AnswerIDs))
		questions := make(map[string]bool, len(req.AnswerIDs))
		for _, answerID := range req.AnswerIDs {
			answer, err := s.EvaluationSvc.GetAnswer(ctx, answerID)
			if err != nil {
				return err
			}
			if questions[answer.QuestionID] {
				return util.ErrEvaluationResultAnswerConflict.WithField("answerIds")
			}
			questions[answer.QuestionID] = true
			answers = append(answers, answer)
		}

		review.Update(req.Score, req.Content)
		for _, answer := range answers {
			if err := s.EvaluationSvc.UpdateResult(ctx, review.UserID, review.ID, answer); err != nil {
				return err
			}
		}
		return s.ReviewRepo.Save(ctx, review)
	})
	if err != nil {
		return nil, err
	}

	s.Cache.Invalidate(ctx, review.TargetType, review.TargetID)
	return review, nil
}

// Delete removes the review's ledger rows and then soft-deletes the review.
// A review that has no answers is still deleted.
func (s *ReviewService) Delete(ctx context.Context, reviewID string, caller Caller) (err error) {
	ctx, span := tracing.Start(ctx, "ReviewService.Delete")
	defer func() {
		s.finish("delete", err, zap.String("reviewId", reviewID), zap.Uint("callerId", caller.UserID))
		tracing.End(span, err)
	}()

	var review *model.Review
	err = database.Transaction(ctx, s.DB, func(ctx context.Context) error {
		var err error
		review, err = s.ReviewRepo.FindByID(ctx, reviewID)
		if err != nil {
			return err
		}
		if !s.Authorizer.IsOwnerOrElevated(review, caller) {
			return util.ErrUnauthorizedAccess
		}
		if err := s.EvaluationSvc.DeleteAllResults(ctx, review.ID); err != nil && !isResultNotFound(err) {
			return err
		}
		return s.ReviewRepo.SoftDelete(ctx, review.ID)
	})
	if err != nil {
		return err
	}

	s.Cache.Invalidate(ctx, review.TargetType, review.TargetID)
	logger.Log.Info("review deleted", zap.String("reviewId", reviewID), zap.Uint("callerId", caller.UserID))
	return nil
}

func (s *ReviewService) GetByID(ctx context.Context, id string) (*model.Review, error) {
	return s.ReviewRepo.FindByID(ctx, id)
}

// GetView returns a single review with author fields and answers.
func (s *ReviewService) GetView(ctx context.Context, id string) (*model.ReviewView, error) {
	return s.ReviewRepo.FindViewByID(ctx, id)
}

func (s *ReviewService) clampPage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = s.Paging.DefaultPageSize
	}
	if pageSize > s.Paging.MaxPageSize {
		pageSize = s.Paging.MaxPageSize
	}
	// keep the row offset inside a 32-bit signed range on every driver
	if maxPage := math.MaxInt32/pageSize + 1; page > maxPage {
		page = maxPage
	}
	return page, pageSize
}

// List returns one page of a target's displayed reviews.
func (s *ReviewService) List(ctx context.Context, q ListReviewsQuery) (page *model.ReviewPage, err error) {
	ctx, span := tracing.Start(ctx, "ReviewService.List")
	defer func() {
		s.finish("list", err, zap.String("targetId", q.TargetID))
		tracing.End(span, err)
	}()

	targetType, err := parseTargetType(q.TargetType)
	if err != nil {
		return nil, err
	}
	if _, err := repository.ResolveReviewOrder(q.Sort); err != nil {
		return nil, err
	}
	if err := s.Targets.Require(ctx, targetType, q.TargetID); err != nil {
		return nil, err
	}

	pageNum, pageSize := s.clampPage(q.Page, q.PageSize)
	query := repository.ReviewPageQuery{
		TargetID:   q.TargetID,
		TargetType: targetType,
		Page:       pageNum,
		PageSize:   pageSize,
		Sort:       q.Sort,
	}

	switch targetType {
	case model.TargetCourse:
		cached, version, ok := s.Cache.Get(ctx, query)
		if ok {
			return cached, nil
		}
		page, err = s.ReviewRepo.FindPageByTarget(ctx, query)
		if err != nil {
			return nil, err
		}
		s.Cache.Set(ctx, query, version, page)
		return page, nil
	default:
		panic(fmt.Sprintf("review listing not implemented for target type %q", targetType))
	}
}

func (s *ReviewService) finish(operation string, err error, fields ...zap.Field) {
	monitoring.ReviewOperations.WithLabelValues(operation, resultLabel(err)).Inc()
	if err == nil {
		return
	}
	fields = append(fields, zap.String("operation", operation), zap.Error(err))
	if appErr, ok := util.AsAppError(err); ok && appErr.Kind != util.KindInternal {
		logger.Log.Warn("review operation rejected", fields...)
		return
	}
	logger.Log.Error("review operation failed", fields...)
}

func resultLabel(err error) string {
	if err == nil {
		return "ok"
	}
	if appErr, ok := util.AsAppError(err); ok {
		return strings.ToLower(string(appErr.Kind))
	}
	return "error"
}
