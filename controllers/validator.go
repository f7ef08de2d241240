package controllers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Validation constants
const (
	MaxPageSize   = 100
	MaxPageNumber = 1000000
)

// ToggleFacetRequest is the body of a facet toggle.
type ToggleFacetRequest struct {
	Value string `json:"value" validate:"required"`
}

// QueryUpdateRequest carries a keystroke-level query update. An empty query
// is valid and clears the search.
type QueryUpdateRequest struct {
	Query string `json:"query"`
}

// RequestValidator handles all input validation
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{
		validate: validator.New(),
	}
}

// ParsePagination validates and parses pagination parameters
func (rv *RequestValidator) ParsePagination(c *gin.Context) (int, int, error) {
	pageStr := c.DefaultQuery("page", "1")
	perPageStr := c.DefaultQuery("perPage", "12")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		return 0, 0, errors.New("invalid page number")
	}
	if page > MaxPageNumber {
		page = MaxPageNumber
	}

	perPage, err := strconv.Atoi(perPageStr)
	if err != nil || perPage < 1 {
		return 0, 0, errors.New("invalid page size")
	}
	if perPage > MaxPageSize {
		perPage = MaxPageSize
	}

	return page, perPage, nil
}

// ParseToggle validates and parses a facet toggle body.
func (rv *RequestValidator) ParseToggle(c *gin.Context) (ToggleFacetRequest, error) {
	var req ToggleFacetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return ToggleFacetRequest{}, fmt.Errorf("invalid request body: %w", err)
	}
	if err := rv.validate.Struct(&req); err != nil {
		return ToggleFacetRequest{}, fmt.Errorf("validation failed: %w", err)
	}
	return req, nil
}

// ParseQueryUpdate parses a query update body.
func (rv *RequestValidator) ParseQueryUpdate(c *gin.Context) (QueryUpdateRequest, error) {
	var req QueryUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return QueryUpdateRequest{}, fmt.Errorf("invalid request body: %w", err)
	}
	return req, nil
}
