package keypad

import "errors"

// Sentinel errors for keypad operations.
var (
	// ErrMalformedLayout indicates a layout table that does not produce a
	// connected graph holding every key of its variant. Layouts are
	// constants, so this is a programming error.
	ErrMalformedLayout = errors.New("keypad: malformed layout")

	// ErrUnknownVariant indicates a Variant value outside the defined set.
	ErrUnknownVariant = errors.New("keypad: unknown variant")

	// ErrNoRoute indicates that no route connects two keys of a graph.
	ErrNoRoute = errors.New("keypad: no route between keys")

	// ErrInvalidKey indicates a key that does not belong to the keypad or
	// code alphabet in use.
	ErrInvalidKey = errors.New("keypad: invalid key")

	// ErrInvalidCode indicates a code that is empty or not terminated by a
	// single Submit key.
	ErrInvalidCode = errors.New("keypad: invalid code")

	// ErrInvalidDirection indicates an edge label or symbol that is not a direction.
	ErrInvalidDirection = errors.New("keypad: invalid direction")

	// ErrIllegalMove indicates a move that leaves the keypad or enters its gap.
	ErrIllegalMove = errors.New("keypad: move leaves the keypad")
)
