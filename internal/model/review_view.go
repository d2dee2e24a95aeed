package model

import "time"

// ReviewSort is one requested ordering key for a review listing.
type ReviewSort struct {
	Key  string `json:"key"`
	Desc bool   `json:"desc"`
}

// ReviewAnswerView is one (question, selected answer) pair of a review.
type ReviewAnswerView struct {
	QuestionID string `json:"questionId"`
	Question   string `json:"question"`
	AnswerID   string `json:"answerId"`
	Answer     string `json:"answer"`
}

// ReviewView is the display shape of a review: author fields joined in,
// answers flattened into one list.
// swagger:model
type ReviewView struct {
	ID             string             `json:"id"`
	TargetID       string             `json:"targetId"`
	TargetType     TargetType         `json:"targetType"`
	UserID         uint               `json:"userId"`
	Nickname       string             `json:"nickname"`
	ProfileImageID *string            `json:"profileImageId,omitempty"`
	EvaluationID   string             `json:"evaluationId"`
	FileID         *string            `json:"fileId,omitempty"`
	Score          float64            `json:"score"`
	Content        string             `json:"content"`
	CreatedAt      time.Time          `json:"createdAt"`
	Answers        []ReviewAnswerView `json:"answers"`
}

// ReviewPage is one page of a target's displayed reviews.
type ReviewPage struct {
	Items    []ReviewView `json:"items"`
	Total    int64        `json:"total"`
	Page     int          `json:"page"`
	PageSize int          `json:"pageSize"`
}
