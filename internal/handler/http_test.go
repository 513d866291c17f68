package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"mediarepo/internal/domain"
)

func TestWriteErrorStatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{domain.ErrNotFound, http.StatusNotFound},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrRevoked, http.StatusForbidden},
		{domain.ErrExpired, http.StatusForbidden},
		{domain.ErrValidation, http.StatusBadRequest},
		{fmt.Errorf("%w: bad input", domain.ErrValidation), http.StatusBadRequest},
		{errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		writeError(rec, tc.err)
		assert.Equal(t, tc.status, rec.Code, "error %v", tc.err)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	}
}

// Внутренние ошибки не должны протекать наружу текстом
func TestWriteErrorHidesInternalDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, errors.New("pq: connection refused"))

	assert.NotContains(t, rec.Body.String(), "pq:")
	assert.Contains(t, rec.Body.String(), "internal server error")
}

func TestClientIP(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "192.0.2.10:51234"
	assert.Equal(t, "192.0.2.10", clientIP(r))

	r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	assert.Equal(t, "203.0.113.7", clientIP(r))
}

func TestParseRangeHeader(t *testing.T) {
	start, end := parseRangeHeader("bytes=100-200")
	assert.Equal(t, int64(100), start)
	assert.Equal(t, int64(200), end)

	start, end = parseRangeHeader("bytes=50-")
	assert.Equal(t, int64(50), start)
	assert.Equal(t, int64(-1), end)

	start, end = parseRangeHeader("")
	assert.Equal(t, int64(0), start)
	assert.Equal(t, int64(-1), end)

	start, end = parseRangeHeader("garbage")
	assert.Equal(t, int64(0), start)
	assert.Equal(t, int64(-1), end)
}
