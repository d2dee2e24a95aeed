package controller

import (
	"course_review_backend/internal/service"
	"course_review_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type EvaluationController struct {
	EvaluationService *service.EvaluationService
}

func NewEvaluationController(evaluationService *service.EvaluationService) *EvaluationController {
	return &EvaluationController{EvaluationService: evaluationService}
}

// @Summary Find an evaluation by type
// @Tags evaluations
// @Produce json
// @Param type query string true "evaluation type"
// @Success 200 {object} util.Response{data=model.Evaluation}
// @Failure 404 {object} util.ErrorResponse
// @Router /api/evaluations [get]
func (c *EvaluationController) GetEvaluationByType(ctx *gin.Context) {
	evaluationType := ctx.Query("type")
	if evaluationType == "" {
		util.HandleError(ctx, util.ErrValidationFailed.WithField("type"))
		return
	}
	evaluation, err := c.EvaluationService.GetEvaluationByType(ctx.Request.Context(), evaluationType)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, evaluation)
}

// @Summary Get an evaluation
// @Tags evaluations
// @Produce json
// @Param id path string true "evaluation id"
// @Success 200 {object} util.Response{data=model.Evaluation}
// @Failure 404 {object} util.ErrorResponse
// @Router /api/evaluations/{id} [get]
func (c *EvaluationController) GetEvaluation(ctx *gin.Context) {
	evaluation, err := c.EvaluationService.GetEvaluation(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, evaluation)
}

// @Summary List the questionnaire of an evaluation
// @Tags evaluations
// @Produce json
// @Param id path string true "evaluation id"
// @Success 200 {object} util.Response{data=[]service.QuestionWithAnswers}
// @Failure 404 {object} util.ErrorResponse
// @Router /api/evaluations/{id}/questions [get]
func (c *EvaluationController) ListQuestions(ctx *gin.Context) {
	questions, err := c.EvaluationService.ListQuestionsWithAnswers(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, questions)
}

// @Summary Create an evaluation
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param evaluation body service.CreateEvaluationRequest true "evaluation"
// @Success 201 {object} util.Response{data=model.Evaluation}
// @Failure 409 {object} util.ErrorResponse
// @Router /api/admin/evaluations [post]
func (c *EvaluationController) CreateEvaluation(ctx *gin.Context) {
	var req service.CreateEvaluationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BindError(ctx, err)
		return
	}
	evaluation, err := c.EvaluationService.CreateEvaluation(ctx.Request.Context(), req.Type)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, evaluation)
}

// @Summary Add a question to an evaluation
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "evaluation id"
// @Param question body service.CreateQuestionRequest true "question"
// @Success 201 {object} util.Response{data=model.EvaluationQuestion}
// @Failure 404 {object} util.ErrorResponse
// @Failure 409 {object} util.ErrorResponse
// @Router /api/admin/evaluations/{id}/questions [post]
func (c *EvaluationController) CreateQuestion(ctx *gin.Context) {
	var req service.CreateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BindError(ctx, err)
		return
	}
	question, err := c.EvaluationService.CreateQuestion(ctx.Request.Context(), ctx.Param("id"), req.Question)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, question)
}

// @Summary Add an answer to a question
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "question id"
// @Param answer body service.CreateAnswerRequest true "answer"
// @Success 201 {object} util.Response{data=model.EvaluationAnswer}
// @Failure 404 {object} util.ErrorResponse
// @Failure 409 {object} util.ErrorResponse
// @Router /api/admin/questions/{id}/answers [post]
func (c *EvaluationController) CreateAnswer(ctx *gin.Context) {
	var req service.CreateAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BindError(ctx, err)
		return
	}
	answer, err := c.EvaluationService.CreateAnswer(ctx.Request.Context(), ctx.Param("id"), req.Answer)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, answer)
}
