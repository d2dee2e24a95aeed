package service

import (
	"context"
	"testing"

	"course_review_backend/internal/config"
	"course_review_backend/internal/model"
	"course_review_backend/internal/repository"
	"course_review_backend/internal/testutil"
	"course_review_backend/internal/util"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type env struct {
	db          *gorm.DB
	ctx         context.Context
	reviews     *ReviewService
	evaluations *EvaluationService

	owner, other, admin *model.User
	course              *model.Course
	eval                *model.Evaluation
	q1, q2              *model.EvaluationQuestion
	a1, a2, b1, b2      *model.EvaluationAnswer
}

// newEnv seeds the "COURSE" evaluation with Q1{A1,A2} and Q2{B1,B2}.
func newEnv(t *testing.T) *env {
	t.Helper()
	db := testutil.NewDB(t)
	ctx := context.Background()

	courseRepo := repository.NewCourseRepository(db)
	userRepo := repository.NewUserRepository(db)
	evaluations := NewEvaluationService(db,
		repository.NewEvaluationRepository(db),
		repository.NewEvaluationResultRepository(db))
	targets := NewTargetGateway().Register(model.TargetCourse, courseRepo, util.ErrCourseNotFound)

	e := &env{
		db:          db,
		ctx:         ctx,
		evaluations: evaluations,
		reviews: NewReviewService(db,
			repository.NewReviewRepository(db),
			userRepo,
			repository.NewFileRepository(db),
			evaluations,
			targets,
			repository.NewReviewPageCache(nil, 0),
			config.ReviewConfig{DefaultPageSize: 10, MaxPageSize: 100},
		),
	}

	e.owner = &model.User{Nickname: "owner", Role: model.RoleUser}
	e.other = &model.User{Nickname: "other", Role: model.RoleUser}
	e.admin = &model.User{Nickname: "admin", Role: model.RoleAdmin}
	for _, u := range []*model.User{e.owner, e.other, e.admin} {
		require.NoError(t, userRepo.Create(ctx, u))
	}

	e.course = &model.Course{UserID: e.admin.ID, Name: "Go 101"}
	require.NoError(t, courseRepo.Create(ctx, e.course))

	var err error
	e.eval, err = evaluations.CreateEvaluation(ctx, "COURSE")
	require.NoError(t, err)
	e.q1, err = evaluations.CreateQuestion(ctx, e.eval.ID, "Q1")
	require.NoError(t, err)
	e.q2, err = evaluations.CreateQuestion(ctx, e.eval.ID, "Q2")
	require.NoError(t, err)
	e.a1 = e.mustAnswer(t, e.q1, "A1")
	e.a2 = e.mustAnswer(t, e.q1, "A2")
	e.b1 = e.mustAnswer(t, e.q2, "B1")
	e.b2 = e.mustAnswer(t, e.q2, "B2")
	return e
}

func (e *env) mustAnswer(t *testing.T, q *model.EvaluationQuestion, text string) *model.EvaluationAnswer {
	t.Helper()
	a, err := e.evaluations.CreateAnswer(e.ctx, q.ID, text)
	require.NoError(t, err)
	return a
}

func (e *env) request(score float64, content string, answers ...*model.EvaluationAnswer) CreateReviewRequest {
	ids := make([]string, len(answers))
	for i, a := range answers {
		ids[i] = a.ID
	}
	return CreateReviewRequest{
		TargetID:     e.course.ID,
		TargetType:   string(model.TargetCourse),
		EvaluationID: e.eval.ID,
		AnswerIDs:    ids,
		Score:        score,
		Content:      content,
	}
}

func (e *env) mustCreate(t *testing.T, req CreateReviewRequest) *model.Review {
	t.Helper()
	review, err := e.reviews.Create(e.ctx, e.owner.ID, req)
	require.NoError(t, err)
	return review
}

func (e *env) count(t *testing.T, m interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, e.db.Model(m).Count(&n).Error)
	return n
}

func (e *env) resultsByQuestion(t *testing.T, reviewID string) map[string]string {
	t.Helper()
	results, err := e.evaluations.FindAllResults(e.ctx, e.owner.ID, reviewID)
	require.NoError(t, err)
	out := make(map[string]string, len(results))
	for _, r := range results {
		out[r.QuestionID] = r.AnswerID
	}
	return out
}

func callerOf(u *model.User) Caller {
	return Caller{UserID: u.ID, Role: u.Role}
}

func ptr[T any](v T) *T {
	return &v
}
