package repository

import (
	"context"
	"testing"
	"time"

	"course_review_backend/internal/model"
	"course_review_backend/internal/testutil"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db      *gorm.DB
	ctx     context.Context
	user    *model.User
	course  *model.Course
	eval    *model.Evaluation
	q1, q2  *model.EvaluationQuestion
	a1, a2  *model.EvaluationAnswer
	b1, b2  *model.EvaluationAnswer
	reviews *ReviewRepository
	results *EvaluationResultRepository
	catalog *EvaluationRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewDB(t)
	f := &fixture{
		db:      db,
		ctx:     context.Background(),
		reviews: NewReviewRepository(db),
		results: NewEvaluationResultRepository(db),
		catalog: NewEvaluationRepository(db),
	}

	f.user = &model.User{Nickname: "reviewer"}
	require.NoError(t, NewUserRepository(db).Create(f.ctx, f.user))
	f.course = &model.Course{UserID: f.user.ID, Name: "Go 101"}
	require.NoError(t, NewCourseRepository(db).Create(f.ctx, f.course))

	f.eval = &model.Evaluation{Type: "COURSE"}
	require.NoError(t, f.catalog.CreateEvaluation(f.ctx, f.eval))
	f.q1 = f.question(t, "Q1")
	f.q2 = f.question(t, "Q2")
	f.a1 = f.answer(t, f.q1, "A1")
	f.a2 = f.answer(t, f.q1, "A2")
	f.b1 = f.answer(t, f.q2, "B1")
	f.b2 = f.answer(t, f.q2, "B2")
	return f
}

func (f *fixture) question(t *testing.T, text string) *model.EvaluationQuestion {
	t.Helper()
	q := &model.EvaluationQuestion{EvaluationID: f.eval.ID, Question: text}
	require.NoError(t, f.catalog.CreateQuestion(f.ctx, q))
	return q
}

func (f *fixture) answer(t *testing.T, q *model.EvaluationQuestion, text string) *model.EvaluationAnswer {
	t.Helper()
	a := &model.EvaluationAnswer{QuestionID: q.ID, Answer: text}
	require.NoError(t, f.catalog.CreateAnswer(f.ctx, a))
	return a
}

func (f *fixture) review(t *testing.T, score float64, createdAt time.Time, answers ...*model.EvaluationAnswer) *model.Review {
	t.Helper()
	r := &model.Review{
		UUIDBase:     model.UUIDBase{CreatedAt: createdAt},
		TargetID:     f.course.ID,
		TargetType:   model.TargetCourse,
		UserID:       f.user.ID,
		EvaluationID: f.eval.ID,
		Score:        score,
		Content:      "content",
		IsDisplayed:  true,
	}
	require.NoError(t, f.reviews.Create(f.ctx, r))
	for _, a := range answers {
		require.NoError(t, f.results.Create(f.ctx, &model.EvaluationResult{
			ReviewID:   r.ID,
			QuestionID: a.QuestionID,
			UserID:     f.user.ID,
			AnswerID:   a.ID,
		}))
	}
	return r
}
