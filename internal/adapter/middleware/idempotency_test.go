package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

const (
	testOfficerID = "0123456789abcdef0123456789abcdef"
	testRequestID = "fedcba9876543210fedcba9876543210"
)

func newIdempServer(t *testing.T, hits *int32) *echo.Echo {
	t.Helper()
	e := echo.New()
	e.Use(Idempotency(newTestRedis(t), time.Minute))
	handler := func(c echo.Context) error {
		if hits != nil {
			atomic.AddInt32(hits, 1)
		}
		return c.JSON(http.StatusCreated, map[string]string{"contract_number": "LN-1"})
	}
	e.POST("/loans", handler)
	e.GET("/loans", func(c echo.Context) error {
		return c.JSON(http.StatusOK, []string{})
	})
	return e
}

func idempHeaders(req *http.Request) {
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("Bo-Request-Id", testRequestID)
	req.Header.Set("Bo-Request-At", strconv.FormatInt(time.Now().Unix(), 10))
	req.Header.Set("Bo-Officer-Id", testOfficerID)
}

func TestIdempotency_GetBypassed(t *testing.T) {
	e := newIdempServer(t, nil)

	// no Bo-* headers at all
	req := httptest.NewRequest(http.MethodGet, "/loans", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestIdempotency_MissingHeaders(t *testing.T) {
	e := newIdempServer(t, nil)

	cases := []struct {
		name  string
		strip string
		set   map[string]string
	}{
		{name: "missing request id", strip: "Bo-Request-Id"},
		{name: "bad request id", set: map[string]string{"Bo-Request-Id": "nope"}},
		{name: "missing request at", strip: "Bo-Request-At"},
		{name: "naive request at", set: map[string]string{"Bo-Request-At": "2026-08-31T10:00:00"}},
		{name: "skewed request at", set: map[string]string{
			"Bo-Request-At": strconv.FormatInt(time.Now().Add(-time.Hour).Unix(), 10),
		}},
		{name: "missing officer id", strip: "Bo-Officer-Id"},
		{name: "bad officer id", set: map[string]string{"Bo-Officer-Id": "officer-7"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/loans", strings.NewReader(`{}`))
			idempHeaders(req)
			if tc.strip != "" {
				req.Header.Del(tc.strip)
			}
			for k, v := range tc.set {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400 (body=%s)", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestIdempotency_ReplaySameBody(t *testing.T) {
	var hits int32
	e := newIdempServer(t, &hits)
	body := `{"nic":"851234567V","amount":100000}`

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/loans", strings.NewReader(body))
		idempHeaders(req)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	first := send()
	if first.Code != http.StatusCreated {
		t.Fatalf("first status = %d", first.Code)
	}
	second := send()
	if second.Code != http.StatusCreated {
		t.Fatalf("replay status = %d, want recorded 201", second.Code)
	}
	if atomic.LoadInt32(&hits) != 1 {
		t.Fatalf("handler ran %d times, want 1", hits)
	}

	var got map[string]string
	if err := json.Unmarshal(second.Body.Bytes(), &got); err != nil {
		t.Fatalf("replayed body not json: %v", err)
	}
	if got["contract_number"] != "LN-1" {
		t.Fatalf("replayed body = %s", second.Body.String())
	}
}

func TestIdempotency_ReplaysNoContentResponse(t *testing.T) {
	var hits int32
	e := echo.New()
	e.Use(Idempotency(newTestRedis(t), time.Minute))
	e.DELETE("/drafts/:draft_id", func(c echo.Context) error {
		atomic.AddInt32(&hits, 1)
		return c.NoContent(http.StatusNoContent)
	})

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodDelete, "/drafts/d1", nil)
		idempHeaders(req)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	first := send()
	if first.Code != http.StatusNoContent {
		t.Fatalf("first status = %d", first.Code)
	}
	second := send()
	if second.Code != http.StatusNoContent {
		t.Fatalf("replay status = %d, want recorded 204 (body=%s)", second.Code, second.Body.String())
	}
	if second.Body.Len() != 0 {
		t.Fatalf("replayed 204 carried a body: %s", second.Body.String())
	}
	if atomic.LoadInt32(&hits) != 1 {
		t.Fatalf("handler ran %d times, want 1", hits)
	}
}

func TestIdempotency_DifferentBodyConflicts(t *testing.T) {
	var hits int32
	e := newIdempServer(t, &hits)

	req := httptest.NewRequest(http.MethodPost, "/loans", strings.NewReader(`{"amount":1}`))
	idempHeaders(req)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("first status = %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/loans", strings.NewReader(`{"amount":2}`))
	idempHeaders(req)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409 for reused id with new body", rec.Code)
	}
	if atomic.LoadInt32(&hits) != 1 {
		t.Fatalf("handler ran %d times, want 1", hits)
	}
}

func TestIdempotency_DistinctOfficersIndependent(t *testing.T) {
	var hits int32
	e := newIdempServer(t, &hits)
	body := []byte(`{"amount":1}`)

	for _, officer := range []string{
		"0123456789abcdef0123456789abcdef",
		"abcdefabcdefabcdefabcdefabcdefab",
	} {
		req := httptest.NewRequest(http.MethodPost, "/loans", bytes.NewReader(body))
		idempHeaders(req)
		req.Header.Set("Bo-Officer-Id", officer)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		if rec.Code != http.StatusCreated {
			t.Fatalf("officer %s: status = %d", officer, rec.Code)
		}
	}
	if atomic.LoadInt32(&hits) != 2 {
		t.Fatalf("handler ran %d times, want 2", hits)
	}
}
