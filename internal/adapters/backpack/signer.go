package backpack

import (
	"crypto/ed25519"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/driftline/bpxconnect/errs"
)

// SecretKind selects the signing scheme the provisioned secret belongs to.
type SecretKind string

const (
	// SecretKindHMAC signs with a shared UTF-8 secret (HMAC-SHA256, hex).
	SecretKindHMAC SecretKind = "hmac"
	// SecretKindED25519 signs with a base64-encoded 32-byte Ed25519
	// seed (signature emitted as standard base64).
	SecretKindED25519 SecretKind = "ed25519"
)

// Signer produces a deterministic signature over a composed message.
// Implementations never mutate or log the provisioned secret.
type Signer interface {
	Sign(message []byte) string
	Scheme() SecretKind
}

type hmacSigner struct {
	key []byte
}

func (s hmacSigner) Sign(message []byte) string {
	mac := hmac.New(sha256.New, s.key)
	_, _ = mac.Write(message)
	return hex.EncodeToString(mac.Sum(nil))
}

func (s hmacSigner) Scheme() SecretKind { return SecretKindHMAC }

type ed25519Signer struct {
	key ed25519.PrivateKey
}

func (s ed25519Signer) Sign(message []byte) string {
	return base64.StdEncoding.EncodeToString(ed25519.Sign(s.key, message))
}

func (s ed25519Signer) Scheme() SecretKind { return SecretKindED25519 }

// Credentials holds the provisioned key material for one venue account.
// Immutable after construction; the signing scheme is fixed by the
// secret kind and never branches on request content.
type Credentials struct {
	apiKey string
	signer Signer
}

// NewCredentials validates the secret material and binds it to the
// signing scheme named by kind. Malformed asymmetric seeds fail here,
// before any signing is attempted.
func NewCredentials(apiKey, secret string, kind SecretKind) (*Credentials, error) {
	if apiKey == "" {
		return nil, errs.Config(defaultVenueName, "api key must not be empty", nil)
	}
	if secret == "" {
		return nil, errs.Config(defaultVenueName, "secret material must not be empty", nil)
	}

	var signer Signer
	switch kind {
	case SecretKindHMAC:
		signer = hmacSigner{key: []byte(secret)}
	case SecretKindED25519:
		seed, err := base64.StdEncoding.DecodeString(secret)
		if err != nil {
			return nil, errs.Config(defaultVenueName, "secret key is not valid base64", err)
		}
		if len(seed) != ed25519.SeedSize {
			return nil, errs.Config(defaultVenueName,
				fmt.Sprintf("ed25519 seed must be %d bytes, got %d", ed25519.SeedSize, len(seed)), nil)
		}
		signer = ed25519Signer{key: ed25519.NewKeyFromSeed(seed)}
	default:
		return nil, errs.Config(defaultVenueName, fmt.Sprintf("unknown secret kind %q", kind), nil)
	}

	return &Credentials{apiKey: apiKey, signer: signer}, nil
}

// APIKey returns the public account identifier sent with each request.
func (c *Credentials) APIKey() string { return c.apiKey }

// Scheme returns the signing scheme the credentials were provisioned for.
func (c *Credentials) Scheme() SecretKind { return c.signer.Scheme() }
