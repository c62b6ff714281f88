package youtube

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"google.golang.org/api/googleapi"

	"comment-pilot/apperrors"
)

func TestMapErrorQuotaExceeded(t *testing.T) {
	client := &Client{quotaSubstr: "quota"}
	cause := &googleapi.Error{Code: http.StatusForbidden, Message: "Quota exceeded for quota metric 'Queries'"}

	err := client.mapError("search videos", cause)
	if !apperrors.IsQuotaExceeded(err) {
		t.Fatalf("expected quota exceeded error, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected the platform error to stay in the chain")
	}
}

func TestMapErrorForbiddenWithoutQuotaMessage(t *testing.T) {
	client := &Client{quotaSubstr: "quota"}
	cause := &googleapi.Error{Code: http.StatusForbidden, Message: "comments are disabled for this video"}

	err := client.mapError("post comment", cause)
	if apperrors.IsQuotaExceeded(err) {
		t.Fatalf("a forbidden error without the quota marker must not map to quota exceeded")
	}
	var upstream *apperrors.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected an upstream error, got %v", err)
	}
}

func TestMapErrorUnauthorized(t *testing.T) {
	client := &Client{quotaSubstr: "quota"}
	cause := &googleapi.Error{Code: http.StatusUnauthorized, Message: "Invalid Credentials"}

	err := client.mapError("video details", cause)
	if !apperrors.IsAuth(err) {
		t.Fatalf("expected an auth error, got %v", err)
	}
}

func TestMapErrorNotFound(t *testing.T) {
	client := &Client{quotaSubstr: "quota"}
	cause := &googleapi.Error{Code: http.StatusNotFound, Message: "videoNotFound"}

	err := client.mapError("video details", cause)
	if !apperrors.IsNotFound(err) {
		t.Fatalf("expected a not found error, got %v", err)
	}
}

func TestMapErrorPlainFailure(t *testing.T) {
	client := &Client{quotaSubstr: "quota"}
	cause := fmt.Errorf("connection reset by peer")

	err := client.mapError("channel uploads", cause)
	var upstream *apperrors.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected an upstream error, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected the transport error to stay in the chain")
	}
}
