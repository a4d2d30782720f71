// Package model contains the typed record shapes exchanged with
// JSONPlaceholder-like services along with the small interfaces that
// the rest of this module depends on.
//
// Record values are immutable by convention: construct them through
// the provided constructors and never mutate their fields afterwards.
//
// Not every record shape can be built from an untyped mapping. The
// shapes that can implement [MappingEncoder] and provide a
// NewXXXFromMapping constructor; [Post] deliberately implements
// neither and is only built from typed arguments.
package model
