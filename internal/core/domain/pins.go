package domain

import (
	"bufio"
	"io"
	"strings"

	"go.trai.ch/zerr"
)

// Pin is a single exact-version requirement from a pinned file.
type Pin struct {
	// Name is the normalized package name.
	Name InternedString

	// Version is the exact resolved version.
	Version string
}

// PinSet is the parsed contents of a pinned requirements file,
// in file order.
type PinSet struct {
	pins  []Pin
	index map[InternedString]int
}

// PinDelta describes the difference between two PinSets.
type PinDelta struct {
	Added   []Pin
	Removed []Pin
	// Changed holds the new pins whose version differs from the old set.
	Changed []PinChange
}

// PinChange records a version change for a single package.
type PinChange struct {
	Name InternedString
	Old  string
	New  string
}

// NormalizePackageName canonicalizes a package name per PEP 503:
// lowercase, with runs of "-", "_" and "." collapsed to a single "-".
func NormalizePackageName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	prevSep := false
	for _, r := range strings.ToLower(name) {
		if r == '-' || r == '_' || r == '.' {
			if !prevSep {
				b.WriteByte('-')
			}
			prevSep = true
			continue
		}
		prevSep = false
		b.WriteRune(r)
	}
	return b.String()
}

// ParsePinSet reads a pinned requirements file.
//
// Only exact "name==version" lines contribute pins. Comments, blank lines,
// option lines (-r, -c, --hash and friends) and line continuations are
// skipped; environment markers and trailing comments are stripped.
// A non-pinned requirement line (no "==") is an error, since the whole
// point of the file is exactness.
func ParsePinSet(r io.Reader) (*PinSet, error) {
	set := &PinSet{index: make(map[InternedString]int)}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		line = strings.TrimSuffix(line, "\\")
		line = strings.TrimSpace(line)

		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "-") {
			continue
		}

		// Strip trailing comment and environment marker.
		if i := strings.Index(line, " #"); i >= 0 {
			line = strings.TrimSpace(line[:i])
		}
		if i := strings.Index(line, ";"); i >= 0 {
			line = strings.TrimSpace(line[:i])
		}
		if line == "" {
			continue
		}

		name, version, ok := strings.Cut(line, "==")
		if !ok {
			err := zerr.New("requirement is not pinned to an exact version")
			err = zerr.With(err, "line", lineNo)
			return nil, zerr.With(err, "requirement", line)
		}

		// Drop extras: "package[extra]==1.0" pins "package".
		if i := strings.Index(name, "["); i >= 0 {
			name = name[:i]
		}

		pin := Pin{
			Name:    NewInternedString(NormalizePackageName(strings.TrimSpace(name))),
			Version: strings.TrimSpace(version),
		}
		set.index[pin.Name] = len(set.pins)
		set.pins = append(set.pins, pin)
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.Wrap(err, "failed to read pinned requirements")
	}

	return set, nil
}

// Len returns the number of pins in the set.
func (s *PinSet) Len() int {
	return len(s.pins)
}

// Pins returns the pins in file order.
func (s *PinSet) Pins() []Pin {
	return s.pins
}

// Lookup returns the pinned version for a package name (normalized first).
func (s *PinSet) Lookup(name string) (string, bool) {
	i, ok := s.index[NewInternedString(NormalizePackageName(name))]
	if !ok {
		return "", false
	}
	return s.pins[i].Version, true
}

// Diff compares the receiver (old pins) with the other set (new pins).
func (s *PinSet) Diff(other *PinSet) PinDelta {
	var delta PinDelta

	for _, pin := range other.pins {
		i, ok := s.index[pin.Name]
		if !ok {
			delta.Added = append(delta.Added, pin)
			continue
		}
		if old := s.pins[i].Version; old != pin.Version {
			delta.Changed = append(delta.Changed, PinChange{
				Name: pin.Name,
				Old:  old,
				New:  pin.Version,
			})
		}
	}

	for _, pin := range s.pins {
		if _, ok := other.index[pin.Name]; !ok {
			delta.Removed = append(delta.Removed, pin)
		}
	}

	return delta
}

// Empty reports whether the delta contains no changes.
func (d PinDelta) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 && len(d.Changed) == 0
}
