package schema

import (
	"errors"
	"fmt"
)

// ErrNotV1 is returned by the FromJSON1 converters when the payload does not
// carry a struqture 1.x version block.
var ErrNotV1 = errors.New("schema: payload is not a struqture 1.x envelope")

// V1Version is the version block of the struqture 1.x JSON envelope.
type V1Version struct {
	Major int `json:"major_version"`
	Minor int `json:"minor_version"`
}

// CheckV1 verifies a decoded 1.x version block. A nil block means the
// payload is not a 1.x envelope at all.
func CheckV1(v *V1Version) error {
	if v == nil {
		return ErrNotV1
	}
	if v.Major != 1 {
		return fmt.Errorf("%w: data declares major version %d, converter reads 1.x",
			ErrVersionMismatch, v.Major)
	}
	return nil
}
