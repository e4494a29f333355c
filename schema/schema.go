// Package schema carries the serialization meta information attached to every
// struqture payload: the exact type name, the library version that produced
// the payload, and the minimum library version required to read it back.
//
// Both the JSON and the binary codec embed a Meta value in their envelope;
// Check is run on every decode before any payload data is interpreted.
//
// Errors:
//
//	ErrTypeMismatch    - payload was produced by a different struqture type.
//	ErrVersionMismatch - payload requires a newer library than this one.
//	ErrBadVersion      - version string is not a semver triple.
package schema

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// CurrentVersion is the library version stamped into every produced payload.
const CurrentVersion = "2.0.0"

// MinSupportedVersion is the minimum library version able to read payloads
// produced by this library.
var MinSupportedVersion = [3]int{2, 0, 0}

// Sentinel errors for payload compatibility checks.
var (
	// ErrTypeMismatch indicates the payload's type name does not match the target type.
	ErrTypeMismatch = errors.New("schema: payload type does not match target type")

	// ErrVersionMismatch indicates the payload requires a newer library version.
	ErrVersionMismatch = errors.New("schema: payload requires a newer struqture version")

	// ErrBadVersion indicates a malformed semver version string.
	ErrBadVersion = errors.New("schema: malformed version string")
)

// Meta is the serialization meta information block of a payload.
type Meta struct {
	// TypeName is the exact struqture type that produced the payload.
	TypeName string `json:"type_name" msgpack:"type_name"`

	// MinVersion is the minimum library version required to read the payload.
	MinVersion [3]int `json:"min_version" msgpack:"min_version"`

	// Version is the library version that produced the payload.
	Version string `json:"version" msgpack:"version"`
}

// NewMeta returns the Meta block stamped into payloads of the given type.
func NewMeta(typeName string) Meta {
	return Meta{
		TypeName:   typeName,
		MinVersion: MinSupportedVersion,
		Version:    CurrentVersion,
	}
}

// ParseVersion splits a semver string into its numeric triple.
func ParseVersion(version string) ([3]int, error) {
	parts := strings.SplitN(version, ".", 3)
	if len(parts) != 3 {
		return [3]int{}, fmt.Errorf("%w: %q", ErrBadVersion, version)
	}
	var out [3]int
	for i, p := range parts {
		// Tolerate pre-release/build suffixes on the patch component.
		if i == 2 {
			if idx := strings.IndexAny(p, "-+"); idx >= 0 {
				p = p[:idx]
			}
		}
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return [3]int{}, fmt.Errorf("%w: %q", ErrBadVersion, version)
		}
		out[i] = n
	}
	return out, nil
}

// Check verifies that a payload carrying meta can be decoded into the target
// type by this library version.
//
// The payload is readable when its type name matches exactly, its required
// major version equals the library's, and its required minor version does not
// exceed the library's.
func Check(targetType string, meta Meta) error {
	if meta.TypeName != targetType {
		return fmt.Errorf("%w: got %q, want %q", ErrTypeMismatch, meta.TypeName, targetType)
	}
	lib, err := ParseVersion(CurrentVersion)
	if err != nil {
		return err
	}
	if meta.MinVersion[0] != lib[0] || meta.MinVersion[1] > lib[1] {
		return fmt.Errorf("%w: data requires %d.%d, library is %d.%d",
			ErrVersionMismatch, meta.MinVersion[0], meta.MinVersion[1], lib[0], lib[1])
	}
	return nil
}
