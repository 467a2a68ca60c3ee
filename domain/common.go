package domain

import (
	"strconv"
	"strings"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	// DefaultPageSize is used when the `limit` query param is absent or invalid.
	DefaultPageSize = 6
	// DefaultRecipesLimit bounds nested recipe lists in author summaries.
	DefaultRecipesLimit = 3
)

var (
	MessageFailedBodyRequest  = "failed to parse request body"
	MessageFailedGetToken     = "failed to get token"
	MessageFailedTokenInvalid = "failed to token invalid"

	ErrParseID       = NewValidationError("id", "failed to parse id")
	ErrTokenNotFound = newError(KindUnauthorized, "", "failed to token not found")
	ErrTokenExpired  = newError(KindUnauthorized, "", "token expired")
	ErrTokenInvalid  = newError(KindUnauthorized, "", "token invalid")
)

type (
	PaginationRequest struct {
		Page  int
		Limit int
	}

	PaginationResponse struct {
		Page       int   `json:"page"`
		Limit      int   `json:"limit"`
		Total      int64 `json:"total"`
		TotalPages int64 `json:"total_pages"`
	}

	PaginatedResponse[T any] struct {
		Results    []T                `json:"results"`
		Pagination PaginationResponse `json:"pagination"`
	}
)

func (p PaginationRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

func NewPaginationRequest(page, limit string) PaginationRequest {
	req := PaginationRequest{Page: 1, Limit: DefaultPageSize}
	if v, err := strconv.Atoi(page); err == nil && v > 0 {
		req.Page = v
	}
	if v, err := strconv.Atoi(limit); err == nil && v > 0 {
		req.Limit = v
	}
	return req
}

func NewPaginatedResponse[T any](results []T, req PaginationRequest, total int64) PaginatedResponse[T] {
	if results == nil {
		results = []T{}
	}
	return PaginatedResponse[T]{
		Results: results,
		Pagination: PaginationResponse{
			Page:       req.Page,
			Limit:      req.Limit,
			Total:      total,
			TotalPages: (total + int64(req.Limit) - 1) / int64(req.Limit),
		},
	}
}

// ParseFlag reads the boolean query flags accepted by the recipe filters.
// Anything outside {0,1,false,true} is treated as unset.
func ParseFlag(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true":
		return true
	default:
		return false
	}
}

// ParseRecipesLimit falls back to DefaultRecipesLimit on non-numeric or non-positive input.
func ParseRecipesLimit(value string) int {
	limit, err := strconv.Atoi(value)
	if err != nil || limit < 1 {
		return DefaultRecipesLimit
	}
	return limit
}
