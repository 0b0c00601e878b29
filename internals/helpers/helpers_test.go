package helper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "reporte-penon-blanco-gt-001", Slugify("  Reporte: Peñón Blanco / GT-001 ", 0))
	assert.Equal(t, "abc", Slugify("abc---", 3))
	assert.Equal(t, "item", Slugify("¿?", 10))
}

func TestFoldText(t *testing.T) {
	assert.Equal(t, FoldText("José  Pérez"), FoldText("jose perez"))
	assert.Equal(t, "torre", FoldText("\tTORRE "))
}

func TestMapPGError(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{nil, http.StatusOK},
		{fmt.Errorf("get: %w", gorm.ErrRecordNotFound), http.StatusNotFound},
		{context.DeadlineExceeded, http.StatusGatewayTimeout},
		{&pgconn.PgError{Code: "57014"}, http.StatusGatewayTimeout},
		{fmt.Errorf("list: %w", &pgconn.PgError{Code: "22P02"}), http.StatusBadRequest},
		{&pq.Error{Code: "08006"}, http.StatusServiceUnavailable},
		{&pq.Error{Code: "42P01"}, http.StatusInternalServerError},
		{fmt.Errorf("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		got, msg := MapPGError(tc.err)
		assert.Equal(t, tc.want, got, "%v", tc.err)
		if tc.err != nil {
			assert.NotEmpty(t, msg)
		}
	}
}

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(45, 2, 20, 20)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	empty := BuildPaginationFromPage(0, 0, 0, 0)
	assert.Equal(t, 1, empty.Page)
	assert.Equal(t, 20, empty.PerPage)
	assert.Equal(t, 1, empty.TotalPages)
	assert.False(t, empty.HasNext)
}

func TestResolvePaging(t *testing.T) {
	app := fiber.New()
	var got Paging
	app.Get("/", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, 20, 100)
		return nil
	})

	cases := map[string]Paging{
		"/":                      {Page: 1, PerPage: 20, Offset: 0, Limit: 20},
		"/?page=3&per_page=10":   {Page: 3, PerPage: 10, Offset: 20, Limit: 10},
		"/?limit=500":            {Page: 1, PerPage: 100, Offset: 0, Limit: 100},
		"/?page=-2&per_page=abc": {Page: 1, PerPage: 20, Offset: 0, Limit: 20},
	}
	for url, want := range cases {
		resp, err := app.Test(httptest.NewRequest("GET", url, nil), -1)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, want, got, url)
	}
}

func decodeError(t *testing.T, resp *http.Response) ErrorResponse {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out ErrorResponse
	require.NoError(t, sonic.Unmarshal(b, &out), string(b))
	return out
}

func TestErrorEnvelopes(t *testing.T) {
	type body struct {
		Name string `validate:"required"`
	}
	app := fiber.New()
	app.Get("/fiber", func(c *fiber.Ctx) error {
		return FromFiberError(c, fiber.NewError(fiber.StatusNotFound, "no existe"))
	})
	app.Get("/db", func(c *fiber.Ctx) error {
		return FromFiberError(c, &pgconn.PgError{Code: "57014"})
	})
	app.Get("/validation", func(c *fiber.Ctx) error {
		return JsonValidationError(c, validator.New().Struct(body{}))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/fiber", nil), -1)
	require.NoError(t, err)
	e := decodeError(t, resp)
	assert.Equal(t, 404, resp.StatusCode)
	assert.Equal(t, "no existe", e.Message)
	assert.Equal(t, "NOT_FOUND", e.ErrorCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/db", nil), -1)
	require.NoError(t, err)
	e = decodeError(t, resp)
	assert.Equal(t, 504, resp.StatusCode)
	assert.Equal(t, "TIMEOUT", e.ErrorCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/validation", nil), -1)
	require.NoError(t, err)
	e = decodeError(t, resp)
	assert.Equal(t, 422, resp.StatusCode)
	assert.Equal(t, []string{"required"}, e.Errors["name"])
}
