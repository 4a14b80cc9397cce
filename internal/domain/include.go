package domain

import "strings"

// Include is the set of relations a caller asked to attach to a result.
// The zero value loads nothing (lazy by default).
type Include struct {
	User          bool
	Attendees     bool
	AttendeeUsers bool
}

// relationSetters enumerates the recognized relation names. A name missing
// from this map is not an error path: ParseInclude skips it silently.
var relationSetters = map[string]func(*Include){
	"user":      func(i *Include) { i.User = true },
	"attendees": func(i *Include) { i.Attendees = true },
	"attendees.user": func(i *Include) {
		i.Attendees = true
		i.AttendeeUsers = true
	},
}

// ParseInclude parses a comma-separated include parameter into an Include.
// Entries are trimmed; unrecognized names are ignored.
func ParseInclude(raw string) Include {
	var inc Include
	if raw == "" {
		return inc
	}
	for _, name := range strings.Split(raw, ",") {
		if set, ok := relationSetters[strings.TrimSpace(name)]; ok {
			set(&inc)
		}
	}
	return inc
}

// Any reports whether at least one relation was requested.
func (i Include) Any() bool {
	return i.User || i.Attendees || i.AttendeeUsers
}
