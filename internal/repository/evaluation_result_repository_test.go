package repository

import (
	"testing"
	"time"

	"course_review_backend/internal/model"
	"course_review_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluationResultRepository_OneRowPerQuestion(t *testing.T) {
	f := newFixture(t)
	r := f.review(t, 3, time.Now(), f.a1)

	exists, err := f.results.Exists(f.ctx, r.ID, f.q1.ID, f.user.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	// A different answer to the same question collides on the question key.
	err = f.results.Create(f.ctx, &model.EvaluationResult{
		ReviewID:   r.ID,
		QuestionID: f.q1.ID,
		UserID:     f.user.ID,
		AnswerID:   f.a2.ID,
	})
	assert.ErrorIs(t, err, util.ErrEvaluationResultAnswerConflict)
}

func TestEvaluationResultRepository_FindAndSave(t *testing.T) {
	f := newFixture(t)
	r := f.review(t, 3, time.Now(), f.a2, f.b1)

	found, err := f.results.Find(f.ctx, f.user.ID, r.ID, f.q1.ID)
	require.NoError(t, err)
	assert.Equal(t, f.a2.ID, found.AnswerID)

	found.AnswerID = f.a1.ID
	require.NoError(t, f.results.Save(f.ctx, found))

	all, err := f.results.FindAll(f.ctx, f.user.ID, r.ID)
	require.NoError(t, err)
	require.Len(t, all, 2)
	byQuestion := map[string]string{}
	for _, res := range all {
		byQuestion[res.QuestionID] = res.AnswerID
	}
	assert.Equal(t, f.a1.ID, byQuestion[f.q1.ID])
	assert.Equal(t, f.b1.ID, byQuestion[f.q2.ID])

	_, err = f.results.Find(f.ctx, f.user.ID, r.ID, "other-question")
	assert.ErrorIs(t, err, util.ErrEvaluationResultNotFound)
}

func TestEvaluationResultRepository_DeleteAllForReview(t *testing.T) {
	f := newFixture(t)
	r := f.review(t, 3, time.Now(), f.a1, f.b2)

	require.NoError(t, f.results.DeleteAllForReview(f.ctx, r.ID))

	all, err := f.results.FindAll(f.ctx, f.user.ID, r.ID)
	require.NoError(t, err)
	assert.Empty(t, all)

	err = f.results.DeleteAllForReview(f.ctx, r.ID)
	assert.ErrorIs(t, err, util.ErrEvaluationResultNotFound)
}
