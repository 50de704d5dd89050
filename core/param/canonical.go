package param

import (
	"github.com/davidahmann/paramdump/core/jcs"
	schemaparam "github.com/davidahmann/paramdump/core/schema/v1/param"
)

// MarshalCanonical returns the RFC 8785 form of Encode(descriptor). Two
// descriptors are equal exactly when their canonical forms are.
func MarshalCanonical(descriptor schemaparam.Descriptor) ([]byte, error) {
	return jcs.Marshal(Encode(descriptor))
}

// Digest returns the sha256 hex digest of the canonical form.
func Digest(descriptor schemaparam.Descriptor) (string, error) {
	canonical, err := MarshalCanonical(descriptor)
	if err != nil {
		return "", err
	}
	return jcs.Digest(canonical)
}
