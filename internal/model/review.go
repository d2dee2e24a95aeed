package model

const (
	MinReviewScore         = 0.5
	MaxReviewScore         = 5.0
	MaxReviewContentLength = 4000
)

// Review is a user's score and comment for a target. It owns its
// EvaluationResult rows; deleting a review removes them first.
// swagger:model
type Review struct {
	UUIDBase
	TargetID     string     `gorm:"type:varchar(36);not null;index:idx_review_target,priority:1" json:"targetId"`
	TargetType   TargetType `gorm:"size:20;not null;index:idx_review_target,priority:2" json:"targetType"`
	UserID       uint       `gorm:"not null;index" json:"userId"`
	EvaluationID string     `gorm:"type:varchar(36);not null" json:"evaluationId"`
	FileID       *string    `gorm:"type:varchar(36)" json:"fileId,omitempty"`
	Score        float64    `gorm:"type:decimal(2,1);not null" json:"score"`
	Content      string     `gorm:"type:text;not null" json:"content"`
	IsDisplayed  bool       `gorm:"not null;default:false" json:"isDisplayed"`
}

func (Review) TableName() string {
	return "reviews"
}

// Update applies the mutable fields in place. Nil arguments leave the field unchanged.
func (r *Review) Update(score *float64, content *string) {
	if score != nil {
		r.Score = *score
	}
	if content != nil {
		r.Content = *content
	}
}
