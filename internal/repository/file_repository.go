package repository

import (
	"context"
	"errors"

	"course_review_backend/internal/model"
	"course_review_backend/internal/util"
	"course_review_backend/pkg/database"

	"gorm.io/gorm"
)

type FileRepository struct {
	DB *gorm.DB
}

func NewFileRepository(db *gorm.DB) *FileRepository {
	return &FileRepository{DB: db}
}

func (r *FileRepository) Create(ctx context.Context, file *model.FileMaster) error {
	return database.Conn(ctx, r.DB).Create(file).Error
}

func (r *FileRepository) FindByID(ctx context.Context, id string) (*model.FileMaster, error) {
	var file model.FileMaster
	err := database.Conn(ctx, r.DB).Where("id = ?", id).First(&file).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrFileMasterNotFound
	}
	if err != nil {
		return nil, err
	}
	return &file, nil
}
