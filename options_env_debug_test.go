package ledgerline

import (
	"net/http"
	"testing"
)

func TestNew_AutoEnableDebugViaEnv(t *testing.T) {
	t.Setenv("LEDGERLINE_DEBUG", "true")
	c := New("http://example.com")
	// The bearer wrapper sits on top; the debug transport must be below it.
	bt, ok := c.http.Transport.(*bearerTransport)
	if !ok {
		t.Fatalf("expected bearerTransport on top, got %T", c.http.Transport)
	}
	rid, ok := bt.base.(*requestIDTransport)
	if !ok {
		t.Fatalf("expected requestIDTransport, got %T", bt.base)
	}
	if _, ok := rid.base.(*debugTransport); !ok {
		t.Fatalf("expected debugTransport when LEDGERLINE_DEBUG=true, got %T", rid.base)
	}
}

func TestNew_NoDebugByDefault(t *testing.T) {
	t.Setenv("LEDGERLINE_DEBUG", "")
	t.Setenv("DEBUG", "")
	c := New("http://example.com")
	bt, ok := c.http.Transport.(*bearerTransport)
	if !ok {
		t.Fatalf("expected bearerTransport on top, got %T", c.http.Transport)
	}
	rid, ok := bt.base.(*requestIDTransport)
	if !ok {
		t.Fatalf("expected requestIDTransport, got %T", bt.base)
	}
	if rid.base != http.DefaultTransport {
		t.Fatalf("expected default transport, got %T", rid.base)
	}
}
