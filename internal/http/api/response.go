package api

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	ErrInternalErr         = "INTERNAL_ERROR"
	ErrValidationErr       = "VALIDATION_ERROR"
	ErrBadRequest          = "BAD_REQUEST"
	ErrCodeNotFound        = "NOT_FOUND"
	ErrCodeInvalidRepoURL  = "INVALID_REPO_URL"
	ErrCodeUpstream        = "UPSTREAM_ERROR"
	ErrCodeUpstreamInvalid = "UPSTREAM_INVALID_RESPONSE"
)

type FetchResponse struct {
	Message    string       `json:"message"`
	TotalPRs   int          `json:"totalPRs"`
	Created    int          `json:"created"`
	SampleData []PullSample `json:"sampleData"`
}

type ListResponse struct {
	Pulls []PullRequestSchema `json:"pulls"`
}

type AnalysisResponse struct {
	TotalPRs   int           `json:"totalPRs"`
	OpenPRs    int           `json:"openPRs"`
	ClosedPRs  int           `json:"closedPRs"`
	MergedPRs  int           `json:"mergedPRs"`
	TopAuthors []AuthorCount `json:"topAuthors"`
}

type HistoryResponse struct {
	History []HistorySchema `json:"history"`
}

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func Error(code string, msg string) ErrorResponse {
	return ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: msg,
		},
	}
}

func InternalError() ErrorResponse {
	return ErrorResponse{
		Error: ErrorDetail{
			Code:    ErrInternalErr,
			Message: "internal server error",
		},
	}
}

func ValidationError(errs validator.ValidationErrors) ErrorResponse {
	var errMsgs []string
	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errMsgs = append(errMsgs, fmt.Sprintf("field '%s' is required", err.Field()))
		case "max":
			errMsgs = append(
				errMsgs,
				fmt.Sprintf("field '%s' must be no more than %s characters", err.Field(), err.Param()),
			)
		default:
			errMsgs = append(errMsgs, fmt.Sprintf("field '%s' is not valid", err.Field()))
		}
	}

	return ErrorResponse{
		Error: ErrorDetail{
			Code:    ErrValidationErr,
			Message: strings.Join(errMsgs, ", "),
		},
	}
}
