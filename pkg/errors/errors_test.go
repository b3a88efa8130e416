package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAsUnwrapsThroughWrappers(t *testing.T) {
	base := New(CodeNotFound, "member missing")
	wrapped := fmt.Errorf("loading edit context: %w", base)

	typed := As(wrapped)
	if typed == nil {
		t.Fatal("expected typed error")
	}
	if typed.Code() != CodeNotFound {
		t.Fatalf("expected NOT_FOUND, got %s", typed.Code())
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(CodeDependency, cause, "gateway call")

	if !errors.Is(err, cause) {
		t.Fatal("expected cause to survive unwrapping")
	}
	if err.Message() != "gateway call" {
		t.Fatalf("unexpected message %q", err.Message())
	}
}

func TestMetadataForUnknownCodeFallsBackToInternal(t *testing.T) {
	meta := MetadataFor(Code("NOPE"))
	if meta.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", meta.HTTPStatus)
	}
}

func TestMetadataStatuses(t *testing.T) {
	cases := map[Code]int{
		CodeValidation:   http.StatusBadRequest,
		CodeUnauthorized: http.StatusUnauthorized,
		CodeForbidden:    http.StatusForbidden,
		CodeNotFound:     http.StatusNotFound,
		CodePayloadSize:  http.StatusRequestEntityTooLarge,
		CodeDependency:   http.StatusServiceUnavailable,
	}
	for code, want := range cases {
		if got := MetadataFor(code).HTTPStatus; got != want {
			t.Fatalf("%s: expected %d got %d", code, want, got)
		}
	}
}

func TestDumpCollectsChain(t *testing.T) {
	err := Wrap(CodeDependency, errors.New("boom"), "fetch seats")
	d := Dump(fmt.Errorf("outer: %w", err))

	if d.Code != CodeDependency {
		t.Fatalf("expected DEPENDENCY_ERROR, got %s", d.Code)
	}
	if len(d.Chain) != 3 {
		t.Fatalf("expected 3 chain entries, got %d", len(d.Chain))
	}
}
