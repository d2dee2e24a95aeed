package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"course_review_backend/internal/config"
	"course_review_backend/internal/middleware"
	"course_review_backend/internal/model"
	"course_review_backend/internal/repository"
	"course_review_backend/internal/service"
	"course_review_backend/internal/testutil"
	"course_review_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "controller-test-secret-controller-test"

type apiFixture struct {
	router       *gin.Engine
	owner, other *model.User
	course       *model.Course
	evaluation   *model.Evaluation
	answer       *model.EvaluationAnswer
	ownerToken   string
	otherToken   string
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := testutil.NewDB(t)
	ctx := context.Background()

	courseRepo := repository.NewCourseRepository(db)
	userRepo := repository.NewUserRepository(db)
	evaluations := service.NewEvaluationService(db,
		repository.NewEvaluationRepository(db),
		repository.NewEvaluationResultRepository(db))
	reviews := service.NewReviewService(db,
		repository.NewReviewRepository(db),
		userRepo,
		repository.NewFileRepository(db),
		evaluations,
		service.NewTargetGateway().Register(model.TargetCourse, courseRepo, util.ErrCourseNotFound),
		repository.NewReviewPageCache(nil, 0),
		config.ReviewConfig{DefaultPageSize: 10, MaxPageSize: 50},
	)

	f := &apiFixture{
		owner: &model.User{Nickname: "owner", Role: model.RoleUser},
		other: &model.User{Nickname: "other", Role: model.RoleUser},
	}
	require.NoError(t, userRepo.Create(ctx, f.owner))
	require.NoError(t, userRepo.Create(ctx, f.other))
	f.course = &model.Course{UserID: f.owner.ID, Name: "Go 101"}
	require.NoError(t, courseRepo.Create(ctx, f.course))

	var err error
	f.evaluation, err = evaluations.CreateEvaluation(ctx, "COURSE")
	require.NoError(t, err)
	question, err := evaluations.CreateQuestion(ctx, f.evaluation.ID, "Was it useful?")
	require.NoError(t, err)
	f.answer, err = evaluations.CreateAnswer(ctx, question.ID, "Yes")
	require.NoError(t, err)

	f.ownerToken, err = util.GenerateJWT(f.owner, testSecret, time.Hour)
	require.NoError(t, err)
	f.otherToken, err = util.GenerateJWT(f.other, testSecret, time.Hour)
	require.NoError(t, err)

	cfg := &config.Config{JWT: config.JWTConfig{Secret: testSecret}}
	reviewController := NewReviewController(reviews)
	evaluationController := NewEvaluationController(evaluations)

	r := gin.New()
	api := r.Group("/api")
	api.GET("/reviews", reviewController.ListReviews)
	api.GET("/reviews/:id", reviewController.GetReview)
	api.GET("/evaluations", evaluationController.GetEvaluationByType)
	authed := api.Group("", middleware.AuthMiddleware(cfg))
	authed.POST("/reviews", reviewController.CreateReview)
	authed.PUT("/reviews/:id", reviewController.ModifyReview)
	authed.DELETE("/reviews/:id", reviewController.DeleteReview)
	f.router = r
	return f
}

func (f *apiFixture) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func (f *apiFixture) createBody(score float64) gin.H {
	return gin.H{
		"targetId":     f.course.ID,
		"targetType":   "COURSE",
		"evaluationId": f.evaluation.ID,
		"answerIds":    []string{f.answer.ID},
		"score":        score,
		"content":      "clear and well paced",
	}
}

func (f *apiFixture) listPath() string {
	return "/api/reviews?targetType=COURSE&targetId=" + f.course.ID
}

type envelope struct {
	Code  int             `json:"code"`
	Data  json.RawMessage `json:"data"`
	Error *util.AppError  `json:"error"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

func TestCreateReviewRequiresToken(t *testing.T) {
	f := newAPIFixture(t)
	w := f.do(t, http.MethodPost, "/api/reviews", "", f.createBody(4.5))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestReviewLifecycle(t *testing.T) {
	f := newAPIFixture(t)

	w := f.do(t, http.MethodPost, "/api/reviews", f.ownerToken, f.createBody(4.5))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created model.Review
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &created))
	require.NotEmpty(t, created.ID)

	w = f.do(t, http.MethodGet, f.listPath(), "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var page struct {
		List  []model.ReviewView `json:"list"`
		Total int64              `json:"total"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &page))
	assert.EqualValues(t, 1, page.Total)
	require.Len(t, page.List, 1)
	assert.Equal(t, "owner", page.List[0].Nickname)
	require.Len(t, page.List[0].Answers, 1)
	assert.Equal(t, "Yes", page.List[0].Answers[0].Answer)

	w = f.do(t, http.MethodPut, "/api/reviews/"+created.ID, f.otherToken, gin.H{"score": 1.0})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, util.ErrUnauthorizedAccess.Code, decode(t, w).Error.Code)

	w = f.do(t, http.MethodPut, "/api/reviews/"+created.ID, f.ownerToken, gin.H{"score": 3.0})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = f.do(t, http.MethodDelete, "/api/reviews/"+created.ID, f.ownerToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = f.do(t, http.MethodGet, "/api/reviews/"+created.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, util.ErrReviewNotFound.Code, decode(t, w).Error.Code)
}

func TestCreateReviewRejectsOffGridScore(t *testing.T) {
	f := newAPIFixture(t)
	w := f.do(t, http.MethodPost, "/api/reviews", f.ownerToken, f.createBody(4.3))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, util.ErrReviewScoreInvalid.Code, decode(t, w).Error.Code)
}

func TestCreateReviewRejectsMissingFields(t *testing.T) {
	f := newAPIFixture(t)
	w := f.do(t, http.MethodPost, "/api/reviews", f.ownerToken, gin.H{"score": 4.5})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, util.ErrValidationFailed.Code, decode(t, w).Error.Code)
}

func TestListReviewsRejectsBadOrdering(t *testing.T) {
	f := newAPIFixture(t)
	for _, orderBy := range []string{"nickname", "score%20sideways"} {
		w := f.do(t, http.MethodGet, f.listPath()+"&orderBy="+orderBy, "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, orderBy)
		env := decode(t, w)
		require.NotNil(t, env.Error, orderBy)
		assert.Equal(t, "orderBy", env.Error.Field, orderBy)
	}
}

func TestListReviewsUnknownTarget(t *testing.T) {
	f := newAPIFixture(t)
	w := f.do(t, http.MethodGet, "/api/reviews?targetType=COURSE&targetId="+model.GenerateUUID(), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, util.ErrCourseNotFound.Code, decode(t, w).Error.Code)
}

func TestGetEvaluationByTypeRequiresType(t *testing.T) {
	f := newAPIFixture(t)
	w := f.do(t, http.MethodGet, "/api/evaluations", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(t, http.MethodGet, "/api/evaluations?type=COURSE", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got model.Evaluation
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &got))
	assert.Equal(t, f.evaluation.ID, got.ID)
}

func TestParseOrderBy(t *testing.T) {
	sorts, err := parseOrderBy("score desc, createdAt")
	require.NoError(t, err)
	assert.Equal(t, []model.ReviewSort{{Key: "score", Desc: true}, {Key: "createdAt"}}, sorts)

	sorts, err = parseOrderBy("")
	require.NoError(t, err)
	assert.Nil(t, sorts)
}
