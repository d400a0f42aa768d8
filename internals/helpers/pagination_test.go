package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePaging(t *testing.T) {
	tests := []struct {
		query string
		want  Paging
	}{
		{"", Paging{Page: 1, PerPage: 20, Offset: 0}},
		{"?page=3&per_page=10", Paging{Page: 3, PerPage: 10, Offset: 20}},
		{"?page=2&limit=5", Paging{Page: 2, PerPage: 5, Offset: 5}},
		{"?page=-4&per_page=0", Paging{Page: 1, PerPage: 20, Offset: 0}},
		{"?per_page=1000", Paging{Page: 1, PerPage: 200, Offset: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			var got Paging
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				got = ResolvePaging(c, 20, 200)
				return nil
			})
			_, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/"+tt.query, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildPagination(t *testing.T) {
	p := BuildPagination(45, 2, 20, 20)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	empty := BuildPagination(0, 1, 20, 0)
	assert.Equal(t, 1, empty.TotalPages)
	assert.False(t, empty.HasNext)
	assert.False(t, empty.HasPrev)
}
