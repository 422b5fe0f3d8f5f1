// Package counter provides the shared TTL counters behind frequency caps,
// pacing tokens, OTP issue throttling and request rate limits.
package counter

//go:generate mockgen -destination=mocks/mock_store.go -package=mocks github.com/piresc/guestportal/internal/pkg/counter Store

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/blake2b"
)

// Store is a shared key/value counter with per-key expiry. Implementations
// must be safe for concurrent use across processes.
type Store interface {
	// Get returns the current count, 0 when the key is absent or expired.
	Get(ctx context.Context, key string) (int64, error)
	// Increment adds one and (re)arms the key's TTL, returning the new count.
	Increment(ctx context.Context, key string, ttl time.Duration) (int64, error)
	// TryAcquire sets the key only if it is absent. It reports whether the
	// caller now holds the token.
	TryAcquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	// Release drops a token taken with TryAcquire before it expires.
	Release(ctx context.Context, key string) error
}

// Key joins parts, hashes them and prefixes the digest so that raw MACs,
// emails and IPs never appear in key names.
func Key(prefix string, parts ...interface{}) string {
	raw := make([]string, len(parts))
	for i, p := range parts {
		raw[i] = fmt.Sprint(p)
	}
	sum := blake2b.Sum256([]byte(strings.Join(raw, ":")))
	return prefix + ":" + hex.EncodeToString(sum[:])[:32]
}
