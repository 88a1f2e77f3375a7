package handlers

import (
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/anonto42/rreediitt/backend/internal/services"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(target string) echo.Context {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestPagination(t *testing.T) {
	cases := []struct {
		query       string
		page, limit int
	}{
		{"/", 0, 5},
		{"/?page=2&limit=10", 2, 10},
		{"/?page=-1&limit=0", 0, 5},
		{"/?limit=500", 0, 50},
	}
	for _, tc := range cases {
		page, limit, err := pagination(newContext(tc.query))
		require.NoError(t, err, tc.query)
		assert.Equal(t, tc.page, page, tc.query)
		assert.Equal(t, tc.limit, limit, tc.query)
	}

	for _, query := range []string{"/?page=abc", "/?page=4611686018427387904&limit=4", "/?page=" + strconv.Itoa(math.MaxInt)} {
		_, _, err := pagination(newContext(query))
		var he *echo.HTTPError
		require.ErrorAs(t, err, &he, query)
		assert.Equal(t, http.StatusBadRequest, he.Code, query)
	}

	page, limit, err := pagination(newContext("/?page=" + strconv.Itoa(math.MaxInt/maxPageLimit) + "&limit=500"))
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt/maxPageLimit, page)
	assert.Equal(t, maxPageLimit, limit)
}

func TestHTTPError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{&services.Error{Kind: services.KindNotFound, Message: "post not found"}, http.StatusNotFound},
		{&services.Error{Kind: services.KindConflict, Message: "username is already taken"}, http.StatusBadRequest},
		{&services.Error{Kind: services.KindValidation, Message: "no data to update"}, http.StatusBadRequest},
		{&services.Error{Kind: services.KindUpstream, Message: "error fetching posts", Err: errors.New("boom")}, http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		var he *echo.HTTPError
		require.ErrorAs(t, httpError(tc.err), &he)
		assert.Equal(t, tc.code, he.Code, tc.err.Error())
	}

	var he *echo.HTTPError
	require.ErrorAs(t, httpError(&services.Error{Kind: services.KindNotFound, Message: "post not found"}), &he)
	assert.Equal(t, "post not found", he.Message)
}

func TestUUIDParam(t *testing.T) {
	c := newContext("/")
	c.SetParamNames("post_id")
	c.SetParamValues("0B6F0A1E-8B4F-4A55-9D3B-0A3C1A3C7E10")
	id, err := uuidParam(c, "post_id")
	require.NoError(t, err)
	assert.Equal(t, "0b6f0a1e-8b4f-4a55-9d3b-0a3c1a3c7e10", id)

	c.SetParamValues("nope")
	_, err = uuidParam(c, "post_id")
	assert.Error(t, err)
}
