package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromRequest_Defaults(t *testing.T) {
	p := FromRequest(httptest.NewRequest("GET", "/api/v1/products", nil))

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultPerPage, p.PerPage)
	assert.Equal(t, 0, p.Offset)
}

func TestFromRequest_Explicit(t *testing.T) {
	p := FromRequest(httptest.NewRequest("GET", "/api/v1/products?page=3&per_page=12", nil))

	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 12, p.PerPage)
	assert.Equal(t, 24, p.Offset)
}

func TestFromRequest_IgnoresInvalid(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"non-numeric page", "?page=abc"},
		{"zero page", "?page=0"},
		{"negative per_page", "?per_page=-5"},
		{"per_page over cap", "?per_page=1000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := FromRequest(httptest.NewRequest("GET", "/api/v1/products"+tt.query, nil))
			assert.Equal(t, 1, p.Page)
			assert.Equal(t, DefaultPerPage, p.PerPage)
		})
	}
}

func TestSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	window, total := Slice(items, Params{Page: 1, PerPage: 3, Offset: 0})
	assert.Equal(t, []int{1, 2, 3}, window)
	assert.Equal(t, 7, total)

	window, _ = Slice(items, Params{Page: 3, PerPage: 3, Offset: 6})
	assert.Equal(t, []int{7}, window)
}

func TestSlice_PastEnd(t *testing.T) {
	window, total := Slice([]int{1, 2}, Params{Page: 5, PerPage: 9, Offset: 36})

	assert.NotNil(t, window)
	assert.Empty(t, window)
	assert.Equal(t, 2, total)
}

func TestNewResult(t *testing.T) {
	r := NewResult([]string{"a", "b", "c"}, 10, Params{Page: 2, PerPage: 3})

	assert.Equal(t, 10, r.TotalCount)
	assert.Equal(t, 4, r.TotalPages)
	assert.True(t, r.HasNext)
	assert.True(t, r.HasPrev)
}

func TestNewResult_LastPage(t *testing.T) {
	r := NewResult([]string{"j"}, 10, Params{Page: 4, PerPage: 3})

	assert.False(t, r.HasNext)
	assert.True(t, r.HasPrev)
}
