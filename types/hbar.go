package types

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"go.hashgraph.tech/core/wire"
)

// Hbar is an amount of the network's native currency, in tinybars.
type Hbar int64

// Currency units.
const (
	Tinybar  Hbar = 1
	HbarUnit Hbar = 100_000_000
)

// NewHbar returns n whole hbars.
func NewHbar(n int64) Hbar { return Hbar(n) * HbarUnit }

// Tinybars returns h as an integer number of tinybars.
func (h Hbar) Tinybars() int64 { return int64(h) }

// String implements fmt.Stringer.
func (h Hbar) String() string {
	r := new(big.Rat).SetFrac64(int64(h), int64(HbarUnit))
	s := strings.TrimRight(strings.TrimRight(r.FloatString(8), "0"), ".")
	return s + " ℏ"
}

// MarshalText implements encoding.TextMarshaler.
func (h Hbar) MarshalText() ([]byte, error) {
	return []byte(strings.TrimSuffix(h.String(), " ℏ")), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *Hbar) UnmarshalText(b []byte) (err error) {
	*h, err = ParseHbar(string(b))
	return
}

// ParseHbar parses a decimal hbar amount, optionally suffixed with "ℏ" or
// "hbar", or an integer amount suffixed with "tℏ" or "tinybar".
func ParseHbar(s string) (Hbar, error) {
	s = strings.TrimSpace(s)
	for _, suffix := range []string{"tℏ", "tinybar"} {
		if t, ok := strings.CutSuffix(s, suffix); ok {
			r, ok := new(big.Rat).SetString(strings.TrimSpace(t))
			if !ok || !r.IsInt() {
				return 0, fmt.Errorf("invalid tinybar amount %q", s)
			}
			return ratToHbar(r)
		}
	}
	for _, suffix := range []string{"ℏ", "hbar"} {
		if t, ok := strings.CutSuffix(s, suffix); ok {
			s = strings.TrimSpace(t)
			break
		}
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return 0, fmt.Errorf("invalid hbar amount %q", s)
	}
	r.Mul(r, new(big.Rat).SetInt64(int64(HbarUnit)))
	if !r.IsInt() {
		return 0, errors.New("hbar amounts must be a whole number of tinybars")
	}
	return ratToHbar(r)
}

func ratToHbar(r *big.Rat) (Hbar, error) {
	n := r.Num()
	if !n.IsInt64() {
		return 0, errors.New("hbar amount overflows int64")
	}
	return Hbar(n.Int64()), nil
}

// TimestampToWire encodes t with nanosecond precision.
func TimestampToWire(t time.Time) *wire.Timestamp {
	return &wire.Timestamp{Seconds: t.Unix(), Nanos: int32(t.Nanosecond())}
}

// OptionalTimestamp is like TimestampToWire, but encodes the zero time as
// nil.
func OptionalTimestamp(t time.Time) *wire.Timestamp {
	if t.IsZero() {
		return nil
	}
	return TimestampToWire(t)
}

// TimestampFromWire decodes a timestamp. A nil timestamp decodes to the zero
// time.
func TimestampFromWire(ts *wire.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return time.Unix(ts.Seconds, int64(ts.Nanos)).UTC()
}

// DurationToWire encodes d with second precision. A zero duration encodes
// as nil.
func DurationToWire(d time.Duration) *wire.Duration {
	if d == 0 {
		return nil
	}
	return &wire.Duration{Seconds: int64(d / time.Second)}
}

// DurationFromWire decodes a duration.
func DurationFromWire(d *wire.Duration) time.Duration {
	if d == nil {
		return 0
	}
	return time.Duration(d.Seconds) * time.Second
}
