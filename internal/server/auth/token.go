// Package auth issues and verifies self-contained signed session tokens.
//
// A token is base64url("<user_id>|<expiry_epoch_seconds>|<nonce>" + "." +
// hmac_sha256_tag). Validity requires both a correct signature and presence
// in the live registry, so revocation takes effect immediately even though
// the signature alone would still verify.
package auth

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/adergachev/recipevault/internal/common"
	"github.com/adergachev/recipevault/internal/shared"
)

const nonceSize = 16

// Authority mints and validates session tokens with a process-wide symmetric
// key. It owns the session registry backing revocation and lazy expiry.
type Authority struct {
	secret   []byte
	validity time.Duration
	registry *Registry
	now      func() time.Time
}

func NewAuthority(secret []byte, validity time.Duration) *Authority {
	return &Authority{
		secret:   secret,
		validity: validity,
		registry: NewRegistry(),
		now:      time.Now,
	}
}

func (a *Authority) sign(body []byte) []byte {
	mac := hmac.New(sha256.New, a.secret)
	mac.Write(body)
	return mac.Sum(nil)
}

// Issue mints a token for the given user id and records it in the registry.
// The caller must have authenticated the user already. The returned expiry
// is in epoch seconds. Issue fails only if the entropy source does.
func (a *Authority) Issue(userID string) (string, int64, error) {
	expiresAt := a.now().Add(a.validity).Unix()

	nonce, err := shared.MakeRandHexString(nonceSize)
	if err != nil {
		return "", 0, fmt.Errorf("generating nonce: %w", err)
	}

	body := []byte(fmt.Sprintf("%s|%d|%s", userID, expiresAt, nonce))
	tag := a.sign(body)

	raw := make([]byte, 0, len(body)+1+len(tag))
	raw = append(raw, body...)
	raw = append(raw, '.')
	raw = append(raw, tag...)
	token := base64.URLEncoding.EncodeToString(raw)

	a.registry.Put(token, Session{UserID: userID, ExpiresAt: expiresAt})

	return token, expiresAt, nil
}

// Verify checks a presented token and returns its session metadata.
//
// The checks run cheapest-rejection first: structure, then signature
// (constant-time), then field syntax, then registry presence and expiry.
// The registry lookup and the lazy delete of an expired entry happen under
// one lock.
func (a *Authority) Verify(token string) (Session, error) {
	raw, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return Session{}, common.ErrTokenFormat
	}

	// The body alphabet (uuid, digits, hex) excludes '.', so the first dot
	// is the separator even when the raw tag bytes contain one.
	sep := bytes.IndexByte(raw, '.')
	if sep < 0 {
		return Session{}, common.ErrTokenFormat
	}
	body, tag := raw[:sep], raw[sep+1:]

	if !hmac.Equal(tag, a.sign(body)) {
		return Session{}, common.ErrTokenSignature
	}

	parts := strings.Split(string(body), "|")
	if len(parts) != 3 {
		return Session{}, common.ErrTokenFormat
	}
	userID, nonce := parts[0], parts[2]
	expiresAt, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || userID == "" || nonce == "" {
		return Session{}, common.ErrTokenFormat
	}

	parsed := Session{UserID: userID, ExpiresAt: expiresAt}
	if err := a.registry.Validate(token, parsed, a.now().Unix()); err != nil {
		return Session{}, err
	}

	return parsed, nil
}

// Revoke removes the token from the registry; subsequent verifications fail
// with ErrTokenUnknown regardless of signature validity.
func (a *Authority) Revoke(token string) {
	a.registry.Revoke(token)
}
