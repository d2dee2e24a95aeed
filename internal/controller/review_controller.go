package controller

import (
	"course_review_backend/internal/model"
	"course_review_backend/internal/service"
	"course_review_backend/internal/util"

	"github.com/gin-gonic/gin"
	"go.einride.tech/aip/ordering"
)

type ReviewController struct {
	ReviewService *service.ReviewService
}

func NewReviewController(reviewService *service.ReviewService) *ReviewController {
	return &ReviewController{ReviewService: reviewService}
}

func callerFromContext(ctx *gin.Context) (service.Caller, bool) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		return service.Caller{}, false
	}
	return service.Caller{UserID: claims.UserID, Role: claims.Role}, true
}

// parseOrderBy reads an AIP-style ordering such as "score desc, createdAt".
func parseOrderBy(raw string) ([]model.ReviewSort, error) {
	if raw == "" {
		return nil, nil
	}
	var orderBy ordering.OrderBy
	if err := orderBy.UnmarshalString(raw); err != nil {
		return nil, util.ErrValidationFailed.WithField("orderBy").Wrap(err)
	}
	sorts := make([]model.ReviewSort, len(orderBy.Fields))
	for i, f := range orderBy.Fields {
		sorts[i] = model.ReviewSort{Key: f.Path, Desc: f.Desc}
	}
	return sorts, nil
}

// @Summary List reviews of a target
// @Tags reviews
// @Produce json
// @Param targetId query string true "target id"
// @Param targetType query string true "target type" Enums(COURSE)
// @Param page query int false "page number" default(1)
// @Param pageSize query int false "page size" default(10)
// @Param orderBy query string false "e.g. 'score desc, createdAt'"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Failure 400 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/reviews [get]
func (c *ReviewController) ListReviews(ctx *gin.Context) {
	sorts, err := parseOrderBy(ctx.Query("orderBy"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	page, err := c.ReviewService.List(ctx.Request.Context(), service.ListReviewsQuery{
		TargetID:   ctx.Query("targetId"),
		TargetType: ctx.Query("targetType"),
		Page:       util.ParseIntDefault(ctx.Query("page"), 1),
		PageSize:   util.ParseIntDefault(ctx.Query("pageSize"), 0),
		Sort:       sorts,
	})
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  page.Items,
		Total: page.Total,
		Page:  page.Page,
		Limit: page.PageSize,
	})
}

// @Summary Get a review
// @Tags reviews
// @Produce json
// @Param id path string true "review id"
// @Success 200 {object} util.Response{data=model.ReviewView}
// @Failure 404 {object} util.ErrorResponse
// @Router /api/reviews/{id} [get]
func (c *ReviewController) GetReview(ctx *gin.Context) {
	view, err := c.ReviewService.GetView(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// @Summary Create a review
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param review body service.CreateReviewRequest true "review"
// @Success 201 {object} util.Response{data=model.Review}
// @Failure 400 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Failure 409 {object} util.ErrorResponse
// @Router /api/reviews [post]
func (c *ReviewController) CreateReview(ctx *gin.Context) {
	caller, ok := callerFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	var req service.CreateReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BindError(ctx, err)
		return
	}

	review, err := c.ReviewService.Create(ctx.Request.Context(), caller.UserID, req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, review)
}

// @Summary Modify a review
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "review id"
// @Param review body service.ModifyReviewRequest true "changes"
// @Success 200 {object} util.Response{data=model.Review}
// @Failure 403 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/reviews/{id} [put]
func (c *ReviewController) ModifyReview(ctx *gin.Context) {
	caller, ok := callerFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	var req service.ModifyReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BindError(ctx, err)
		return
	}

	review, err := c.ReviewService.Modify(ctx.Request.Context(), ctx.Param("id"), req, caller)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, review)
}

// @Summary Delete a review
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param id path string true "review id"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/reviews/{id} [delete]
func (c *ReviewController) DeleteReview(ctx *gin.Context) {
	caller, ok := callerFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	if err := c.ReviewService.Delete(ctx.Request.Context(), ctx.Param("id"), caller); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"id": ctx.Param("id")})
}
