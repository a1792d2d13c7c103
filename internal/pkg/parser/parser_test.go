package parser

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

type searchQuery struct {
	Title     *string `query:"title"`
	MinSalary *int    `query:"minSalary"`
	HasEquity *bool   `query:"hasEquity"`
}

func TestValues(t *testing.T) {
	t.Run("decodes present keys only", func(t *testing.T) {
		var q searchQuery
		require.NoError(t, Values(map[string][]string{"title": {"eng"}, "hasEquity": {"true"}}, &q))
		require.Equal(t, "eng", *q.Title)
		require.True(t, *q.HasEquity)
		require.Nil(t, q.MinSalary)
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		var q searchQuery
		err := Values(map[string][]string{"color": {"red"}}, &q)
		require.True(t, errors.Is(err, ErrInvalidQuery))
		require.Contains(t, err.Error(), `unknown filter "color"`)
	})

	t.Run("rejects malformed numbers", func(t *testing.T) {
		var q searchQuery
		err := Values(map[string][]string{"minSalary": {"lots"}}, &q)
		require.True(t, errors.Is(err, ErrInvalidQuery))
		require.Contains(t, err.Error(), `invalid value for "minSalary"`)
	})
}

func TestQuery(t *testing.T) {
	app := fiber.New()
	app.Get("/jobs", func(c *fiber.Ctx) error {
		var q searchQuery
		if err := Query(c, &q); err != nil {
			return c.Status(http.StatusBadRequest).SendString(err.Error())
		}
		return c.SendString(*q.Title)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/jobs?title=dev", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "dev", string(body))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/jobs?nope=1", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

type companyBody struct {
	Name string `json:"name"`
}

func TestBody(t *testing.T) {
	app := fiber.New()
	app.Post("/companies", func(c *fiber.Ctx) error {
		var b companyBody
		if err := Body(c, &b); err != nil {
			if !errors.Is(err, ErrInvalidBody) {
				return c.Status(http.StatusInternalServerError).SendString(err.Error())
			}
			return c.Status(http.StatusBadRequest).SendString(err.Error())
		}
		return c.SendString(b.Name)
	})

	send := func(body string) (int, string) {
		req := httptest.NewRequest(http.MethodPost, "/companies", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		raw, _ := io.ReadAll(resp.Body)
		return resp.StatusCode, string(raw)
	}

	status, body := send(`{"name":"Acme"}`)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "Acme", body)

	status, body = send(`{"name":"Acme","handle":"acme"}`)
	require.Equal(t, http.StatusBadRequest, status)
	require.Contains(t, body, `unknown field "handle"`)

	status, body = send(``)
	require.Equal(t, http.StatusBadRequest, status)
	require.Contains(t, body, "empty body")

	status, _ = send(`{"name":"a"} {"name":"b"}`)
	require.Equal(t, http.StatusBadRequest, status)
}
