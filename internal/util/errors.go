package util

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind groups error codes by how a caller can react to them.
type ErrorKind string

const (
	KindNotFound     ErrorKind = "NOT_FOUND"
	KindConflict     ErrorKind = "CONFLICT"
	KindInvalid      ErrorKind = "INVALID"
	KindUnauthorized ErrorKind = "UNAUTHORIZED"
	KindInternal     ErrorKind = "INTERNAL"
)

// AppError is a classified, user-correctable failure. Two AppErrors match
// under errors.Is when their codes are equal, so a copy carrying a field
// or a wrapped cause still matches its sentinel.
type AppError struct {
	Code    string    `json:"code"`
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
	Field   string    `json:"field,omitempty"`
	Status  int       `json:"-"`
	Err     error     `json:"-"`
}

func NewAppError(code string, kind ErrorKind, status int, message string) *AppError {
	return &AppError{Code: code, Kind: kind, Status: status, Message: message}
}

func (e *AppError) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.Field != "" {
		msg += " (field: " + e.Field + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// WithField returns a copy of e naming the offending request field.
func (e *AppError) WithField(field string) *AppError {
	cp := *e
	cp.Field = field
	return &cp
}

// Wrap returns a copy of e carrying err as its cause.
func (e *AppError) Wrap(err error) *AppError {
	cp := *e
	cp.Err = err
	return &cp
}

// AsAppError extracts the first AppError in err's chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

var (
	ErrUserNotFound       = NewAppError("USER_001", KindNotFound, http.StatusNotFound, "user not found")
	ErrCourseNotFound     = NewAppError("COURSE_001", KindNotFound, http.StatusNotFound, "course not found")
	ErrFileMasterNotFound = NewAppError("FILE_008", KindNotFound, http.StatusNotFound, "file not found")
	ErrInvalidFileType    = NewAppError("FILE_002", KindInvalid, http.StatusBadRequest, "file type is not allowed")
	ErrFileSizeTooLarge   = NewAppError("FILE_001", KindInvalid, http.StatusBadRequest, "file is too large")

	ErrEvaluationNotFound             = NewAppError("EVALUATION_001", KindNotFound, http.StatusNotFound, "evaluation not found")
	ErrEvaluationAnswerNotFound       = NewAppError("EVALUATION_002", KindNotFound, http.StatusNotFound, "evaluation answer not found")
	ErrEvaluationTypeConflict         = NewAppError("EVALUATION_003", KindConflict, http.StatusConflict, "evaluation type already exists")
	ErrEvaluationQuestionConflict     = NewAppError("EVALUATION_004", KindConflict, http.StatusConflict, "evaluation question already exists")
	ErrEvaluationQuestionNotFound     = NewAppError("EVALUATION_005", KindNotFound, http.StatusNotFound, "evaluation question not found")
	ErrEvaluationAnswerConflict       = NewAppError("EVALUATION_006", KindConflict, http.StatusConflict, "evaluation answer already exists")
	ErrEvaluationResultAnswerConflict = NewAppError("EVALUATION_007", KindConflict, http.StatusConflict, "question already answered for this review")
	ErrInvalidEvaluationAnswer        = NewAppError("EVALUATION_008", KindInvalid, http.StatusBadRequest, "answer does not belong to the evaluation")
	ErrEvaluationResultNotFound       = NewAppError("EVALUATION_009", KindNotFound, http.StatusNotFound, "evaluation result not found")

	ErrReviewNotFound     = NewAppError("REVIEW_001", KindNotFound, http.StatusNotFound, "review not found")
	ErrReviewScoreInvalid = NewAppError("REVIEW_002", KindInvalid, http.StatusBadRequest, "score must be a multiple of 0.5 between 0.5 and 5.0")

	ErrUnauthorizedAccess = NewAppError("AUTH_001", KindUnauthorized, http.StatusForbidden, "not allowed to access this resource")
	ErrValidationFailed   = NewAppError("VALID_001", KindInvalid, http.StatusBadRequest, "validation failed")
)
