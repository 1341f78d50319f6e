package backpack

import (
	"bytes"
	"crypto/ed25519"
	"encoding/base64"
	"testing"

	"github.com/driftline/bpxconnect/errs"
)

func TestNewCredentialsRejectsMalformedSeed(t *testing.T) {
	cases := []struct {
		name   string
		secret string
	}{
		{"not base64", "%%%not-base64%%%"},
		{"wrong length", base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{1}, 16))},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewCredentials("key", tc.secret, SecretKindED25519)
			if err == nil {
				t.Fatalf("expected construction to fail for %s", tc.name)
			}
			if !errs.IsConfig(err) {
				t.Fatalf("expected config error, got %v", err)
			}
		})
	}
}

func TestNewCredentialsRejectsUnknownKind(t *testing.T) {
	_, err := NewCredentials("key", "secret", SecretKind("rsa"))
	if !errs.IsConfig(err) {
		t.Fatalf("expected config error for unknown kind, got %v", err)
	}
}

func TestNewCredentialsRejectsEmptyMaterial(t *testing.T) {
	if _, err := NewCredentials("", "secret", SecretKindHMAC); !errs.IsConfig(err) {
		t.Fatalf("expected config error for empty api key, got %v", err)
	}
	if _, err := NewCredentials("key", "", SecretKindHMAC); !errs.IsConfig(err) {
		t.Fatalf("expected config error for empty secret, got %v", err)
	}
}

func TestHMACSignerDeterministicKnownVector(t *testing.T) {
	signer := hmacSigner{key: []byte("testSecret")}
	message := []byte("timestamp=1234567890000&window=5000")

	first := signer.Sign(message)
	second := signer.Sign(message)
	if first != second {
		t.Fatalf("hmac signatures differ for identical input: %q vs %q", first, second)
	}
	if len(first) != 64 {
		t.Fatalf("expected 32-byte hex digest, got %q", first)
	}
}

func TestEd25519SignerDeterministic(t *testing.T) {
	seed := bytes.Repeat([]byte{7}, ed25519.SeedSize)
	creds, err := NewCredentials("key", base64.StdEncoding.EncodeToString(seed), SecretKindED25519)
	if err != nil {
		t.Fatalf("new credentials: %v", err)
	}
	if creds.Scheme() != SecretKindED25519 {
		t.Fatalf("expected ed25519 scheme, got %q", creds.Scheme())
	}

	message := []byte("instruction=orderExecute&timestamp=1&window=5000")
	first := creds.signer.Sign(message)
	second := creds.signer.Sign(message)
	if first != second {
		t.Fatalf("ed25519 signatures differ for identical input")
	}

	raw, err := base64.StdEncoding.DecodeString(first)
	if err != nil {
		t.Fatalf("signature is not valid base64: %v", err)
	}
	if len(raw) != ed25519.SignatureSize {
		t.Fatalf("expected %d-byte signature, got %d", ed25519.SignatureSize, len(raw))
	}
}
