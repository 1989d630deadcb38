// Package ids issues record identifiers of the form <prefix><unix millis>
// that are unique within the collection they are added to. Callers pick the
// id inside the store's updater so the check and the insert share one lock.
package ids

import (
	"strconv"
	"time"
)

// Next returns prefix followed by now in milliseconds, stepping forward one
// millisecond at a time while taken reports the id in use.
func Next(prefix string, now time.Time, taken func(string) bool) string {
	for stamp := now.UnixMilli(); ; stamp++ {
		id := prefix + strconv.FormatInt(stamp, 10)
		if !taken(id) {
			return id
		}
	}
}

// Free returns id unchanged when it is unused, otherwise id-2, id-3 and so on.
func Free(id string, taken func(string) bool) string {
	if !taken(id) {
		return id
	}
	for n := 2; ; n++ {
		candidate := id + "-" + strconv.Itoa(n)
		if !taken(candidate) {
			return candidate
		}
	}
}

// Set collects the ids of all so Taken can answer in constant time.
type Set map[string]struct{}

func Of[T any](all []T, id func(T) string) Set {
	set := make(Set, len(all))
	for _, item := range all {
		set[id(item)] = struct{}{}
	}
	return set
}

func (s Set) Taken(id string) bool {
	_, ok := s[id]
	return ok
}

// Add records id so later picks in the same batch avoid it.
func (s Set) Add(id string) { s[id] = struct{}{} }
