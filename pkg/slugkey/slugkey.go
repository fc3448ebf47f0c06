// Package slugkey generates the short lowercase tokens used as personalized
// invite links.
package slugkey

import (
	"context"
	"crypto/rand"
	"fmt"
	"strconv"
	"time"
)

// Length of every generated slug.
const Length = 5

const (
	alphabet    = "abcdefghijklmnopqrstuvwxyz"
	maxAttempts = 8
)

// TakenFunc probes whether a candidate slug is already in use.
type TakenFunc func(ctx context.Context, slug string) (bool, error)

// New returns a random slug of Length lowercase letters.
func New() (string, error) {
	buf := make([]byte, Length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("slugkey: %w", err)
	}
	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}
	return string(buf), nil
}

// Unique generates a slug not currently taken, probing up to maxAttempts
// candidates. If every candidate collides (vanishingly unlikely at 26^5) it
// falls back to a time-derived suffix so the call always terminates with a
// usable value. Probe errors abort immediately.
func Unique(ctx context.Context, taken TakenFunc) (string, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		slug, err := New()
		if err != nil {
			return "", err
		}
		inUse, err := taken(ctx, slug)
		if err != nil {
			return "", err
		}
		if !inUse {
			return slug, nil
		}
	}
	return Fallback(time.Now()), nil
}

// Fallback derives a slug from the clock: "z" plus the last four base-36
// digits of the unix-millisecond timestamp, trimmed to Length.
func Fallback(now time.Time) string {
	ts := strconv.FormatInt(now.UnixMilli(), 36)
	if len(ts) > Length-1 {
		ts = ts[len(ts)-(Length-1):]
	}
	slug := "z" + ts
	if len(slug) > Length {
		slug = slug[:Length]
	}
	return slug
}
