package model

// Evaluation is a questionnaire template for one target category.
// swagger:model
type Evaluation struct {
	UUIDBase
	Type string `gorm:"column:evaluation_type;size:50;not null;uniqueIndex" json:"type"`
}

func (Evaluation) TableName() string {
	return "evaluations"
}

// swagger:model
type EvaluationQuestion struct {
	UUIDBase
	EvaluationID string `gorm:"type:varchar(36);not null;uniqueIndex:uk_evaluation_question,priority:1" json:"evaluationId"`
	Question     string `gorm:"size:255;not null;uniqueIndex:uk_evaluation_question,priority:2" json:"question"`
}

func (EvaluationQuestion) TableName() string {
	return "evaluation_questions"
}

// swagger:model
type EvaluationAnswer struct {
	UUIDBase
	QuestionID string `gorm:"type:varchar(36);not null;uniqueIndex:uk_question_answer,priority:1" json:"questionId"`
	Answer     string `gorm:"size:255;not null;uniqueIndex:uk_question_answer,priority:2" json:"answer"`
}

func (EvaluationAnswer) TableName() string {
	return "evaluation_answers"
}

// EvaluationResult is one user's selected answer to one question within a
// review. QuestionID is copied from the answer so the store can enforce a
// single row per (review, question, user).
// swagger:model
type EvaluationResult struct {
	UUIDBase
	ReviewID   string `gorm:"type:varchar(36);not null;uniqueIndex:uk_result_review_question_user,priority:1" json:"reviewId"`
	QuestionID string `gorm:"type:varchar(36);not null;uniqueIndex:uk_result_review_question_user,priority:2" json:"questionId"`
	UserID     uint   `gorm:"not null;uniqueIndex:uk_result_review_question_user,priority:3" json:"userId"`
	AnswerID   string `gorm:"type:varchar(36);not null;index" json:"answerId"`
}

func (EvaluationResult) TableName() string {
	return "evaluation_results"
}
