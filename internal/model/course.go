package model

// Course is a reviewable target. Reviews reference it by id only.
// swagger:model
type Course struct {
	UUIDBase
	UserID uint   `gorm:"index;not null" json:"userId"`
	Name   string `gorm:"column:course_name;size:200;not null" json:"name"`
}

func (Course) TableName() string {
	return "courses"
}
