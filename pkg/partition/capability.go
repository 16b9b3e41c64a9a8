package partition

import (
	"fmt"
	"strconv"
	"strings"
)

// Minimum partitioner versions for optional features.
var (
	HeadersSince          = Version{0, 5, 7}
	GenericPartitionSince = Version{0, 5, 12}
)

// Version is a parsed dotted version number.
type Version []int

// ParseVersion parses "major.minor.patch[-suffix]". Everything after the
// first hyphen is ignored; every dotted component must be an integer.
func ParseVersion(s string) (Version, error) {
	core, _, _ := strings.Cut(s, "-")
	parts := strings.Split(core, ".")
	v := make(Version, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid version %q: component %q is not an integer", s, p)
		}
		v[i] = n
	}
	return v, nil
}

// Compare returns -1, 0 or 1. Components are compared in order and a
// version that is a prefix of the other is the smaller one.
func (v Version) Compare(other Version) int {
	for i := 0; i < len(v) && i < len(other); i++ {
		switch {
		case v[i] < other[i]:
			return -1
		case v[i] > other[i]:
			return 1
		}
	}
	switch {
	case len(v) < len(other):
		return -1
	case len(v) > len(other):
		return 1
	}
	return 0
}

// AtLeast reports whether v >= min.
func (v Version) AtLeast(min Version) bool {
	return v.Compare(min) >= 0
}

func (v Version) String() string {
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ".")
}

// Capabilities are the optional features a partitioner version supports.
type Capabilities struct {
	Version                  Version
	SupportsHeaders          bool
	SupportsGenericPartition bool
}

// CapabilitiesFor parses version and derives the feature flags from it.
func CapabilitiesFor(version string) (Capabilities, error) {
	v, err := ParseVersion(version)
	if err != nil {
		return Capabilities{}, err
	}
	return Capabilities{
		Version:                  v,
		SupportsHeaders:          v.AtLeast(HeadersSince),
		SupportsGenericPartition: v.AtLeast(GenericPartitionSince),
	}, nil
}
