package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParsePageRequest_Defaults verifies absent parameters fall back to
// page 1, size 10.
func TestParsePageRequest_Defaults(t *testing.T) {
	page, err := ParsePageRequest("", "")

	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 10, page.PageSize)
	assert.Equal(t, 0, page.Offset())
}

// TestParsePageRequest_Explicit verifies offset math for explicit values.
func TestParsePageRequest_Explicit(t *testing.T) {
	page, err := ParsePageRequest("2", "10")

	require.NoError(t, err)
	assert.Equal(t, 10, page.Offset())
}

// TestParsePageRequest_NonNumeric verifies non-numeric values are rejected
// rather than silently defaulted.
func TestParsePageRequest_NonNumeric(t *testing.T) {
	_, err := ParsePageRequest("abc", "")
	assert.ErrorIs(t, err, ErrInvalidPageParams)

	_, err = ParsePageRequest("", "ten")
	assert.ErrorIs(t, err, ErrInvalidPageParams)
}

// TestParsePageRequest_NonPositive verifies zero and negative values are
// rejected instead of producing a negative offset.
func TestParsePageRequest_NonPositive(t *testing.T) {
	for _, raw := range []string{"0", "-1"} {
		_, err := ParsePageRequest(raw, "")
		assert.ErrorIs(t, err, ErrInvalidPageParams, "page=%s", raw)

		_, err = ParsePageRequest("", raw)
		assert.ErrorIs(t, err, ErrInvalidPageParams, "pageSize=%s", raw)
	}
}

// TestPageRequest_TotalPages verifies the ceiling division.
func TestPageRequest_TotalPages(t *testing.T) {
	page := PageRequest{Page: 1, PageSize: 10}

	assert.Equal(t, 3, page.TotalPages(25))
	assert.Equal(t, 2, page.TotalPages(20))
	assert.Equal(t, 1, page.TotalPages(1))
	assert.Equal(t, 0, page.TotalPages(0))
}
