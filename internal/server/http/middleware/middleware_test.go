package middleware

import (
	"bytes"
	"compress/gzip"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/polkiloo/storeadmin/internal/domain/model"
	"github.com/polkiloo/storeadmin/internal/metrics"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestAdminRequired(t *testing.T) {
	var (
		storedID   int64
		storedCaps model.CapabilitySet
	)
	router := gin.New()
	router.Use(AdminRequired())
	router.GET("/", func(c *gin.Context) {
		if v, ok := c.Get(AdminIDContextKey); ok {
			storedID = v.(int64)
		}
		if v, ok := c.Get(CapabilitiesContextKey); ok {
			storedCaps = v.(model.CapabilitySet)
		}
		c.Status(http.StatusOK)
	})

	for _, header := range []string{"", "abc", "0", "-5"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set(AdminIDHeader, header)
		}
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 for admin id %q, got %d", header, resp.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(AdminIDHeader, " 42 ")
	req.Header.Set(CapabilitiesHeader, "manage_orders, MANAGE_PRODUCTS")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if storedID != 42 {
		t.Fatalf("expected admin id 42, got %d", storedID)
	}
	if !storedCaps.Has(model.CapabilityManageOrders) || !storedCaps.Has(model.CapabilityManageProducts) {
		t.Fatalf("unexpected capabilities: %v", storedCaps)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(AdminIDHeader, "7")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK || len(storedCaps) != 0 {
		t.Fatalf("expected empty capability set, got %v (status %d)", storedCaps, resp.Code)
	}
}

func TestDecompressRequest(t *testing.T) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, _ = gz.Write([]byte("payload"))
	_ = gz.Close()

	router := gin.New()
	router.Use(DecompressRequest())
	var body string
	router.POST("/", func(c *gin.Context) {
		data, _ := io.ReadAll(c.Request.Body)
		body = string(data)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/", io.NopCloser(bytes.NewReader(buf.Bytes())))
	req.Header.Set("Content-Encoding", "gzip")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if body != "payload" {
		t.Fatalf("expected decompressed payload, got %q", body)
	}

	req = httptest.NewRequest(http.MethodPost, "/", io.NopCloser(bytes.NewReader([]byte("plain"))))
	resp = httptest.NewRecorder()
	body = ""
	router.ServeHTTP(resp, req)
	if body != "plain" {
		t.Fatalf("expected plain body, got %q", body)
	}
}

func TestRequestLogger(t *testing.T) {
	var logged bool
	handler := slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.LevelKey && a.Value.Any() == slog.LevelInfo {
			logged = true
		}
		return a
	}})
	logger := slog.New(handler)

	router := gin.New()
	router.Use(RequestLogger(logger))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))
	if !logged {
		t.Fatalf("expected request to be logged")
	}
}

func TestRequestMetrics(t *testing.T) {
	m := metrics.New()
	router := gin.New()
	router.Use(RequestMetrics(m))
	router.GET("/orders/:id", func(c *gin.Context) { c.Status(http.StatusConflict) })

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/orders/7", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/orders/8", nil))

	if got := testutil.ToFloat64(m.Requests.WithLabelValues("/orders/:id", "409")); got != 2 {
		t.Fatalf("expected requests counted per route template, got %v", got)
	}
	if got := testutil.CollectAndCount(m.LatencyMS); got != 1 {
		t.Fatalf("expected one latency series, got %d", got)
	}
}
