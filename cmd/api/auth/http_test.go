package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"comment-pilot/apperrors"
)

func TestExtractBearerTokenAcceptsAnyCaseScheme(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for _, header := range []string{"Bearer token-123", "bearer token-123", "BEARER token-123"} {
		ginCtx, _ := newTestGinContext(header)

		token, err := ExtractBearerToken(ginCtx)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", header, err)
		}
		if token != "token-123" {
			t.Fatalf("expected token-123 for %q, got %q", header, token)
		}
	}
}

func TestExtractBearerTokenFailuresAreAuthErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name        string
		headerValue string
		wantMsgPart string
	}{
		{name: "missing header", wantMsgPart: "missing authorization header"},
		{name: "wrong scheme", headerValue: "Basic abc", wantMsgPart: "not a bearer token"},
		{name: "scheme only", headerValue: "Bearer", wantMsgPart: "not a bearer token"},
		{name: "blank token", headerValue: "Bearer    ", wantMsgPart: "empty bearer token"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ginCtx, _ := newTestGinContext(tc.headerValue)

			token, err := ExtractBearerToken(ginCtx)
			if !apperrors.IsAuth(err) {
				t.Fatalf("expected an auth error, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.wantMsgPart) {
				t.Fatalf("expected message containing %q, got %q", tc.wantMsgPart, err.Error())
			}
			if token != "" {
				t.Fatalf("expected no token on failure, got %q", token)
			}
		})
	}
}

func TestAbortWithUnauthorized(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ginCtx, recorder := newTestGinContext("")
	AbortWithUnauthorized(ginCtx, apperrors.NewAuth("session token expired"))

	if !ginCtx.IsAborted() {
		t.Fatalf("expected request to be aborted")
	}
	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, recorder.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	if body["error"] != "session token expired" {
		t.Fatalf("unexpected error message %q", body["error"])
	}
}

func newTestGinContext(authorizationHeader string) (*gin.Context, *httptest.ResponseRecorder) {
	recorder := httptest.NewRecorder()
	ginCtx, _ := gin.CreateTestContext(recorder)

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorizationHeader != "" {
		request.Header.Set("Authorization", authorizationHeader)
	}
	ginCtx.Request = request

	return ginCtx, recorder
}
