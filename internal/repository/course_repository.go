package repository

import (
	"context"

	"course_review_backend/internal/model"
	"course_review_backend/pkg/database"

	"gorm.io/gorm"
)

// CourseRepository reads the course catalog owned by another service.
// Reviews only need to know whether a course is still live.
type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) Create(ctx context.Context, course *model.Course) error {
	return database.Conn(ctx, r.DB).Create(course).Error
}

func (r *CourseRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	var count int64
	err := database.Conn(ctx, r.DB).Model(&model.Course{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
