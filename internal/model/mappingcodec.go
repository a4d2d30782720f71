package model

//
// Mapping codec capability.
//

import "github.com/placefetch/placefetch/internal/mapx"

// MappingEncoder is the capability marker implemented by record shapes
// that encode themselves to an untyped [mapx.Mapping].
//
// Shapes implementing MappingEncoder also provide a matching
// NewXXXFromMapping constructor such that decoding the encoded mapping
// reproduces the original record. Shapes that are only ever built from
// typed arguments, such as [Post], do not implement this interface.
type MappingEncoder interface {
	ToMapping() mapx.Mapping
}
