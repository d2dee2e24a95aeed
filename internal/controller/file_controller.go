package controller

import (
	"course_review_backend/internal/service"
	"course_review_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type FileController struct {
	FileService *service.FileService
}

func NewFileController(fileService *service.FileService) *FileController {
	return &FileController{FileService: fileService}
}

// @Summary Upload a review attachment
// @Description Accepts images and PDF files up to 10MB. The returned id is used as fileId when creating a review.
// @Tags files
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "attachment"
// @Success 201 {object} util.Response{data=model.FileMaster}
// @Failure 400 {object} util.ErrorResponse
// @Router /api/files [post]
func (c *FileController) Upload(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	header, err := ctx.FormFile("file")
	if err != nil {
		util.HandleError(ctx, util.ErrValidationFailed.WithField("file").Wrap(err))
		return
	}
	if header.Size > util.MaxAttachmentSize {
		util.HandleError(ctx, util.ErrFileSizeTooLarge)
		return
	}

	src, err := header.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer src.Close()

	file, err := c.FileService.Upload(ctx.Request.Context(), user.UserID, header.Filename, src, header.Size)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, file)
}
