package backpack

import "testing"

func TestPublicAndPrivateRESTURL(t *testing.T) {
	const path = "/api/v1/order"
	want := "https://api.backpack.exchange" + path

	if got := PublicRESTURL(path, "exchange"); got != want {
		t.Fatalf("PublicRESTURL = %q, want %q", got, want)
	}
	if got := PrivateRESTURL(path, "exchange"); got != want {
		t.Fatalf("PrivateRESTURL = %q, want %q", got, want)
	}
}

func TestRESTURLDefaultsDomain(t *testing.T) {
	want := "https://api.backpack.exchange/api/v1/time"
	if got := PublicRESTURL("/api/v1/time", ""); got != want {
		t.Fatalf("expected default domain, got %q", got)
	}
}

func TestWSSURL(t *testing.T) {
	if got := WSSURL("exchange"); got != "wss://ws.backpack.exchange" {
		t.Fatalf("WSSURL = %q", got)
	}
}
