// Package tz resolves timezone offsets for the datetime core.
//
// A timestamp carries a Tag: no zone at all, a fixed offset, or a zone name.
// Named zones are looked up through a Provider; the package ships a
// registry-backed provider preloaded with UTC. Parsing the full IANA
// database is deliberately out of scope - callers with richer needs plug in
// their own Provider.
package tz

import (
	"errors"
	"fmt"
	"sync"
)

var ErrZoneUnknown = errors.New("time zone not found")

// Provider resolves a zone identifier to a UTC offset in seconds at a given
// instant. A lookup failure is always surfaced, never defaulted to UTC.
type Provider interface {
	OffsetSeconds(id string, instant int64) (int32, error)
}

// Kind discriminates the closed set of tag variants.
type Kind uint8

const (
	KindUnspecified Kind = iota
	KindFixedOffset
	KindNamed
)

// Tag identifies how a timestamp's wall clock is anchored. It never changes
// the meaning of the underlying instant, only which calendar fields
// accessors report.
type Tag struct {
	kind   Kind
	offset int32
	id     string
}

// Unspecified returns the zero tag: wall-clock fields are read as UTC and
// no offset suffix is rendered.
func Unspecified() Tag {
	return Tag{}
}

// FixedOffset returns a tag with a constant offset east of UTC, in seconds.
func FixedOffset(seconds int32) Tag {
	return Tag{kind: KindFixedOffset, offset: seconds}
}

// Named returns a tag referring to a zone by identifier. The offset is
// resolved through a Provider each time it is needed.
func Named(id string) Tag {
	return Tag{kind: KindNamed, id: id}
}

func (t Tag) Kind() Kind {
	return t.kind
}

// ID returns the zone identifier of a named tag, "" otherwise.
func (t Tag) ID() string {
	return t.id
}

// Aware reports whether the tag carries zone information.
func (t Tag) Aware() bool {
	return t.kind != KindUnspecified
}

// OffsetSeconds resolves the tag's offset at the given instant. A nil
// provider falls back to DefaultProvider for named tags.
func (t Tag) OffsetSeconds(p Provider, instant int64) (int32, error) {
	switch t.kind {
	case KindUnspecified:
		return 0, nil
	case KindFixedOffset:
		return t.offset, nil
	case KindNamed:
		if p == nil {
			p = DefaultProvider
		}

		return p.OffsetSeconds(t.id, instant)
	default:
		return 0, fmt.Errorf("%w: unknown tag kind %d", ErrZoneUnknown, t.kind)
	}
}

// Registry is a fixed-offset zone table, safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	zones map[string]int32
}

func NewRegistry() *Registry {
	return &Registry{zones: map[string]int32{}}
}

// Register adds or replaces a zone with a constant offset east of UTC.
func (r *Registry) Register(id string, offsetSeconds int32) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.zones[id] = offsetSeconds
}

func (r *Registry) OffsetSeconds(id string, _ int64) (int32, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	offset, ok := r.zones[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrZoneUnknown, id)
	}

	return offset, nil
}

// DefaultProvider backs named tags that are resolved without an explicit
// provider. Replace it at startup to plug in a real zone database.
var DefaultProvider Provider = defaultRegistry()

func defaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("UTC", 0)
	r.Register("GMT", 0)

	return r
}
