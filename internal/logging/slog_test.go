package logging

import (
	"errors"
	"log/slog"
	"testing"
	"time"
)

func TestWithOperation(t *testing.T) {
	logger := slog.Default()
	result := WithOperation(logger, "resolve_all")
	if result == nil {
		t.Error("WithOperation returned nil")
	}
}

func TestWithServer(t *testing.T) {
	logger := slog.Default()
	result := WithServer(logger, "docs")
	if result == nil {
		t.Error("WithServer returned nil")
	}
}

func TestWithResolveID(t *testing.T) {
	logger := slog.Default()
	result := WithResolveID(logger, "abc-123")
	if result == nil {
		t.Error("WithResolveID returned nil")
	}
}

func TestOperationAttr(t *testing.T) {
	attr := Operation("resolve")
	if attr.Key != KeyOperation {
		t.Errorf("Operation key = %q, want %q", attr.Key, KeyOperation)
	}
	if attr.Value.String() != "resolve" {
		t.Errorf("Operation value = %q, want %q", attr.Value.String(), "resolve")
	}
}

func TestServerAttr(t *testing.T) {
	attr := Server("docs")
	if attr.Key != KeyServer {
		t.Errorf("Server key = %q, want %q", attr.Key, KeyServer)
	}
	if attr.Value.String() != "docs" {
		t.Errorf("Server value = %q, want %q", attr.Value.String(), "docs")
	}
}

func TestPathAttr(t *testing.T) {
	attr := Path("/readme.md")
	if attr.Key != KeyPath {
		t.Errorf("Path key = %q, want %q", attr.Key, KeyPath)
	}
	if attr.Value.String() != "/readme.md" {
		t.Errorf("Path value = %q, want %q", attr.Value.String(), "/readme.md")
	}
}

func TestCacheKeyAttr(t *testing.T) {
	attr := CacheKey("docs|/readme.md")
	if attr.Key != KeyCacheKey {
		t.Errorf("CacheKey key = %q, want %q", attr.Key, KeyCacheKey)
	}
	if attr.Value.String() != "docs|/readme.md" {
		t.Errorf("CacheKey value = %q, want %q", attr.Value.String(), "docs|/readme.md")
	}
}

func TestMentionCountAttr(t *testing.T) {
	attr := MentionCount(3)
	if attr.Key != KeyMentionCount {
		t.Errorf("MentionCount key = %q, want %q", attr.Key, KeyMentionCount)
	}
	if attr.Value.Int64() != 3 {
		t.Errorf("MentionCount value = %d, want 3", attr.Value.Int64())
	}
}

func TestDurationAttr(t *testing.T) {
	attr := Duration(time.Second)
	if attr.Key != KeyDuration {
		t.Errorf("Duration key = %q, want %q", attr.Key, KeyDuration)
	}
	if attr.Value.Duration() != time.Second {
		t.Errorf("Duration value = %v, want %v", attr.Value.Duration(), time.Second)
	}
}

func TestStatusAttr(t *testing.T) {
	attr := Status(StatusSuccess)
	if attr.Key != KeyStatus {
		t.Errorf("Status key = %q, want %q", attr.Key, KeyStatus)
	}
	if attr.Value.String() != StatusSuccess {
		t.Errorf("Status value = %q, want %q", attr.Value.String(), StatusSuccess)
	}
}

func TestErr(t *testing.T) {
	// Test with error
	err := errors.New("test error")
	attr := Err(err)
	if attr.Key != KeyError {
		t.Errorf("Err key = %q, want %q", attr.Key, KeyError)
	}
	if attr.Value.String() != "test error" {
		t.Errorf("Err value = %q, want %q", attr.Value.String(), "test error")
	}

	// Test with nil - should return an empty group that slog will omit
	attr = Err(nil)
	// Empty Group has empty key
	if attr.Key != "" {
		t.Errorf("Err(nil) key = %q, want empty string (empty group)", attr.Key)
	}
}

func TestStatusConstants(t *testing.T) {
	if StatusSuccess != "success" {
		t.Errorf("StatusSuccess = %q, want %q", StatusSuccess, "success")
	}
	if StatusError != "error" {
		t.Errorf("StatusError = %q, want %q", StatusError, "error")
	}
}
