package apierrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestFromResponse_Classification(t *testing.T) {
	t.Parallel()
	if err := FromResponse("list customers", http.StatusUnauthorized, "nope"); !IsAuth(err) {
		t.Fatalf("401 not classified as auth error: %v", err)
	}
	err := FromResponse("list customers", http.StatusInternalServerError, "boom")
	if IsAuth(err) {
		t.Fatalf("500 classified as auth error")
	}
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if apiErr.StatusCode != 500 || apiErr.Body != "boom" || apiErr.Op != "list customers" {
		t.Fatalf("unexpected fields %+v", apiErr)
	}
}

func TestErrorMessages(t *testing.T) {
	t.Parallel()
	e := &Error{Op: "create invoice", StatusCode: 422, Body: `{"error":"bad total"}`}
	want := `create invoice: status 422: {"error":"bad total"}`
	if e.Error() != want {
		t.Fatalf("got %q want %q", e.Error(), want)
	}
	empty := &Error{Op: "get customer", StatusCode: 404}
	if empty.Error() != "get customer: status 404" {
		t.Fatalf("got %q", empty.Error())
	}
	ae := &AuthError{Op: "login"}
	if ae.Error() != "login: authentication failed, please login again" {
		t.Fatalf("got %q", ae.Error())
	}
}

func TestIsAuth_Wrapped(t *testing.T) {
	t.Parallel()
	wrapped := fmt.Errorf("demo flow: %w", &AuthError{Op: "list invoices"})
	if !IsAuth(wrapped) {
		t.Fatal("wrapped auth error not detected")
	}
	if IsAuth(errors.New("other")) {
		t.Fatal("unrelated error detected as auth")
	}
	if IsAuth(nil) {
		t.Fatal("nil detected as auth")
	}
}
