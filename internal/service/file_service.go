package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"course_review_backend/internal/model"
	"course_review_backend/internal/repository"
	"course_review_backend/internal/util"
	"course_review_backend/pkg/logger"

	"go.uber.org/zap"
)

// FileService stores review attachments and records them as FileMaster rows.
type FileService struct {
	FileRepo *repository.FileRepository
	Storage  *StorageService
}

func NewFileService(fileRepo *repository.FileRepository, storage *StorageService) *FileService {
	return &FileService{FileRepo: fileRepo, Storage: storage}
}

// Upload validates the attachment, stores it and returns the new record.
// The stored object is removed again when the record cannot be written.
func (s *FileService) Upload(ctx context.Context, uploaderID uint, originalName string, reader io.ReadSeeker, size int64) (*model.FileMaster, error) {
	if size > util.MaxAttachmentSize {
		return nil, util.ErrFileSizeTooLarge
	}

	contentType, err := util.SniffContentType(reader, util.AllowedAttachmentTypes)
	if err != nil {
		return nil, util.ErrInvalidFileType.Wrap(err)
	}
	if _, err := reader.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	id := model.GenerateUUID()
	ext := strings.ToLower(path.Ext(originalName))
	objectName := fmt.Sprintf("reviews/%s/%s%s", time.Now().Format("200601"), id, ext)

	url, err := s.Storage.Upload(ctx, objectName, reader, size, contentType)
	if err != nil {
		return nil, err
	}

	file := &model.FileMaster{
		UUIDBase:     model.UUIDBase{ID: id},
		UploaderID:   uploaderID,
		OriginalName: originalName,
		StoredName:   objectName,
		URL:          url,
		ContentType:  contentType,
		Size:         size,
	}
	if err := s.FileRepo.Create(ctx, file); err != nil {
		if delErr := s.Storage.Delete(ctx, objectName); delErr != nil {
			logger.Log.Warn("failed to remove orphaned attachment", zap.String("object", objectName), zap.Error(delErr))
		}
		return nil, err
	}
	return file, nil
}

func (s *FileService) Get(ctx context.Context, id string) (*model.FileMaster, error) {
	return s.FileRepo.FindByID(ctx, id)
}
