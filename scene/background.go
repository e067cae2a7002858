package scene

import (
	"errors"
	"fmt"
	"strings"
)

// Background identifies one of the images the demo can show behind the
// particles or through the portal.
type Background int

const (
	Room Background = iota
	Forest
	Scary
)

// ErrUnknownBackground is returned by ParseBackground for names outside the enumeration.
var ErrUnknownBackground = errors.New("unknown background")

var backgroundNames = [...]string{"room", "forest", "scary"}

// backgroundFiles maps each identifier to its image under the assets image directory.
var backgroundFiles = [...]string{"room-default.jpg", "forest.jpg", "scary.jpg"}

// AllBackgrounds lists every identifier in display order.
func AllBackgrounds() []Background {
	return []Background{Room, Forest, Scary}
}

// PortalBackgrounds lists the identifiers offered for the portal view.
func PortalBackgrounds() []Background {
	return []Background{Forest, Scary}
}

func (b Background) Valid() bool {
	return b >= Room && b <= Scary
}

func (b Background) String() string {
	if b.Valid() {
		return backgroundNames[b]
	}
	return fmt.Sprintf("Background(%d)", int(b))
}

// Label is the button caption.
func (b Background) Label() string {
	s := b.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// File returns the image file name of b.
func (b Background) File() string {
	if b.Valid() {
		return backgroundFiles[b]
	}
	return ""
}

// ParseBackground resolves a configuration name. Empty and unrecognized names
// are errors; callers choose their own default explicitly.
func ParseBackground(s string) (Background, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range backgroundNames {
		if n == name {
			return Background(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBackground, s)
}

// MarshalText implements encoding.TextMarshaler so identifiers round-trip through config files.
func (b Background) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownBackground, int(b))
	}
	return []byte(b.String()), nil
}

func (b *Background) UnmarshalText(text []byte) error {
	v, err := ParseBackground(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}
