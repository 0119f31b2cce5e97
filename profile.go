package csslogo

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownProfile is returned when parsing a profile name that doesn't
// name a known profile.
var ErrUnknownProfile = errors.New("unknown profile")

// Profile selects the canvas a document is drawn on. The two profiles are
// separate output formats; geometry defaults are chosen per profile.
type Profile int

const (
	// Centered240 is a 240×240 canvas with the origin at its center.
	Centered240 Profile = iota
	// TopLeft1000 is a 1000×1000 canvas with the origin at its top-left
	// corner.
	TopLeft1000
)

var profileNames = [...]string{
	Centered240: "centered240",
	TopLeft1000: "topleft1000",
}

func (p Profile) String() string {
	if p >= 0 && int(p) < len(profileNames) {
		return profileNames[p]
	}
	return fmt.Sprintf("Profile(%d)", int(p))
}

// ParseProfile returns the profile with the given name. Names are matched
// case-insensitively.
func ParseProfile(name string) (Profile, error) {
	for i, n := range profileNames {
		if strings.EqualFold(n, name) {
			return Profile(i), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownProfile, name)
}

func (p Profile) MarshalText() ([]byte, error) {
	if p < 0 || int(p) >= len(profileNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownProfile, int(p))
	}
	return []byte(p.String()), nil
}

func (p *Profile) UnmarshalText(b []byte) error {
	v, err := ParseProfile(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Size returns the width and height of the canvas in user units.
func (p Profile) Size() int {
	switch p {
	case TopLeft1000:
		return 1000
	default:
		return 240
	}
}

// Canvas returns the canvas rectangle in user space. It doubles as the
// document's viewBox.
func (p Profile) Canvas() Rect {
	size := float64(p.Size())
	switch p {
	case TopLeft1000:
		return NewRectFromOrigin(Pt(0, 0), size, size)
	default:
		return NewRectFromOrigin(Pt(-size/2, -size/2), size, size)
	}
}
