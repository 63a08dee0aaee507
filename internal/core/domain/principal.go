package domain

import (
	"strconv"
	"strings"
)

// PrincipalKind discriminates the two principal tables sharing one token
// namespace.
type PrincipalKind string

const (
	KindOrganizer PrincipalKind = "organizer"
	KindGuest     PrincipalKind = "guest"
)

// guestRefPrefix is the legacy wire encoding for guest principals: the bare
// numeric id denotes an organizer, "guest_<id>" a guest. New tokens carry an
// explicit kind claim instead; the prefix form is still accepted on verify.
const guestRefPrefix = "guest_"

// PrincipalRef identifies a principal of either kind. Kind and numeric id are
// kept as separate fields so authorization code branches on a tagged value,
// never on string sniffing.
type PrincipalRef struct {
	Kind PrincipalKind
	ID   int64
}

// OrganizerRef returns a PrincipalRef for an organizer id.
func OrganizerRef(id int64) PrincipalRef {
	return PrincipalRef{Kind: KindOrganizer, ID: id}
}

// GuestRef returns a PrincipalRef for a guest id.
func GuestRef(id int64) PrincipalRef {
	return PrincipalRef{Kind: KindGuest, ID: id}
}

// String renders the legacy wire encoding: "7" for organizers,
// "guest_7" for guests.
func (r PrincipalRef) String() string {
	s := strconv.FormatInt(r.ID, 10)
	if r.Kind == KindGuest {
		return guestRefPrefix + s
	}
	return s
}

// ParsePrincipalRef decodes the legacy wire encoding. A guest id 7 and an
// organizer id 7 parse to distinct refs.
func ParsePrincipalRef(s string) (PrincipalRef, error) {
	kind := KindOrganizer
	if rest, ok := strings.CutPrefix(s, guestRefPrefix); ok {
		kind = KindGuest
		s = rest
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return PrincipalRef{}, ErrInvalidToken
	}
	return PrincipalRef{Kind: kind, ID: id}, nil
}
