package service

import (
	"fmt"
	"strconv"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
)

// PageRequest is a validated pagination window.
type PageRequest struct {
	Page     int
	PageSize int
}

// ParsePageRequest applies the defaults (page 1, size 10) when a parameter
// is absent and rejects non-numeric or non-positive values instead of
// silently producing a negative offset.
func ParsePageRequest(pageRaw, pageSizeRaw string) (PageRequest, error) {
	page, err := parsePageParam(pageRaw, defaultPage)
	if err != nil {
		return PageRequest{}, fmt.Errorf("%w: page=%q", ErrInvalidPageParams, pageRaw)
	}
	pageSize, err := parsePageParam(pageSizeRaw, defaultPageSize)
	if err != nil {
		return PageRequest{}, fmt.Errorf("%w: pageSize=%q", ErrInvalidPageParams, pageSizeRaw)
	}
	return PageRequest{Page: page, PageSize: pageSize}, nil
}

func parsePageParam(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, fmt.Errorf("must be positive, got %d", n)
	}
	return n, nil
}

func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// TotalPages is ceil(totalCount / pageSize).
func (p PageRequest) TotalPages(totalCount int64) int {
	if totalCount <= 0 {
		return 0
	}
	return int((totalCount + int64(p.PageSize) - 1) / int64(p.PageSize))
}
