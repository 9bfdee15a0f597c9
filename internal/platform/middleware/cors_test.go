// Copyright (c) 2026 Sanding. All rights reserved.
// Author: hafiz.rahmat.my@gmail.com

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sandingapp/sanding/internal/platform/middleware"
)

// fakeAppConfig stands in for platform/config in CORS tests.
type fakeAppConfig struct {
	development bool
	extra       []string
}

func (cfg *fakeAppConfig) IsDevelopment() bool      { return cfg.development }
func (cfg *fakeAppConfig) AllowedOrigins() []string { return cfg.extra }

func runCORS(t *testing.T, cfg middleware.AppConfig, method, origin string) *httptest.ResponseRecorder {
	t.Helper()

	handler := middleware.CORS(cfg)(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)
	}))

	request := httptest.NewRequest(method, "/", nil)
	if origin != "" {
		request.Header.Set("Origin", origin)
	}
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

/*
TestCORS_AllowedOrigins verifies the three origin policies: development
accepts anything, production accepts only the app domain plus configured
extras, and unknown origins receive no CORS headers at all.
*/
func TestCORS_AllowedOrigins(t *testing.T) {
	development := &fakeAppConfig{development: true}
	production := &fakeAppConfig{extra: []string{"https://staging.example.com"}}

	testCases := []struct {
		name    string
		cfg     middleware.AppConfig
		origin  string
		allowed bool
	}{
		{"development_any_origin", development, "http://localhost:3000", true},
		{"production_app_domain", production, "https://www.sanding.app", true},
		{"production_extra_origin", production, "https://staging.example.com", true},
		{"production_unknown_origin", production, "https://evil.example.com", false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			recorder := runCORS(t, testCase.cfg, http.MethodGet, testCase.origin)

			// 1. The request itself always reaches the handler
			assert.Equal(t, http.StatusOK, recorder.Code)

			// 2. Only allowed origins are echoed back
			allowHeader := recorder.Header().Get("Access-Control-Allow-Origin")
			if testCase.allowed {
				assert.Equal(t, testCase.origin, allowHeader)
			} else {
				assert.Empty(t, allowHeader)
			}
		})
	}
}

/*
TestCORS_Preflight verifies that OPTIONS requests short-circuit with 204
and that requests without an Origin header pass through untouched.
*/
func TestCORS_Preflight(t *testing.T) {
	production := &fakeAppConfig{}

	// 1. Pre-flight from an allowed origin stops at the middleware
	recorder := runCORS(t, production, http.MethodOptions, "https://www.sanding.app")
	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, "https://www.sanding.app", recorder.Header().Get("Access-Control-Allow-Origin"))

	// 2. Same-origin traffic carries no Origin header and no CORS headers
	recorder = runCORS(t, production, http.MethodGet, "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
}
