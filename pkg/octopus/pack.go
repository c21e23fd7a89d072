// Package octopus packs timestamps into octopus tuple fields.
//
// Octopus stores wall-clock fields in two shapes: the legacy uint32 unix
// seconds column and a wider int64 microseconds column for sub-second data.
// Both are little-endian fixed-width fields inside a tuple.
package octopus

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/mailru/datetime/pkg/datetime"
	"github.com/mailru/datetime/pkg/interval"
)

var ErrTimeRange = errors.New("timestamp does not fit the field")

// PackUnixSeconds appends the instant as a legacy uint32 seconds field.
// Instants before the epoch or past the uint32 range, and instants with a
// sub-second residue, do not fit.
func PackUnixSeconds(w []byte, d datetime.DateTime) ([]byte, error) {
	seconds := d.Unix()
	if seconds < 0 || seconds > math.MaxUint32 {
		return nil, fmt.Errorf("%w: seconds %d", ErrTimeRange, seconds)
	}

	if d.Nanosecond() != 0 {
		return nil, fmt.Errorf("%w: non-zero nanoseconds %d", ErrTimeRange, d.Nanosecond())
	}

	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(seconds))

	return append(w, buf[:]...), nil
}

// UnpackUnixSeconds reads a legacy uint32 seconds field.
func UnpackUnixSeconds(r *bytes.Reader) (datetime.DateTime, error) {
	var buf [4]byte

	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return datetime.DateTime{}, fmt.Errorf("can't unpack seconds field: %w", err)
	}

	return datetime.FromUnix(int64(binary.LittleEndian.Uint32(buf[:])), 0), nil
}

// PackMicroseconds appends the instant as an int64 microseconds field.
// Nanosecond-precision residues do not fit and are rejected rather than
// silently truncated.
func PackMicroseconds(w []byte, d datetime.DateTime) ([]byte, error) {
	if d.Nanosecond()%1_000 != 0 {
		return nil, fmt.Errorf("%w: nanosecond residue %d", ErrTimeRange, d.Nanosecond())
	}

	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(d.UnixMicro()))

	return append(w, buf[:]...), nil
}

// UnpackMicroseconds reads an int64 microseconds field.
func UnpackMicroseconds(r *bytes.Reader) (datetime.DateTime, error) {
	var buf [8]byte

	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return datetime.DateTime{}, fmt.Errorf("can't unpack microseconds field: %w", err)
	}

	micros := int64(binary.LittleEndian.Uint64(buf[:]))
	iv := interval.FromMicroseconds(micros)

	return datetime.FromUnix(0, 0).Add(iv), nil
}

// PackDuration appends an interval as an int64 nanoseconds field.
func PackDuration(w []byte, iv interval.Interval) []byte {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(iv.AsNanoseconds()))

	return append(w, buf[:]...)
}

// UnpackDuration reads an int64 nanoseconds field.
func UnpackDuration(r *bytes.Reader) (interval.Interval, error) {
	var buf [8]byte

	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return interval.Interval{}, fmt.Errorf("can't unpack duration field: %w", err)
	}

	return interval.FromNanoseconds(int64(binary.LittleEndian.Uint64(buf[:]))), nil
}
