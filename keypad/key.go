package keypad

import "fmt"

// Key identifies one physical button. The value is the rune printed on it.
type Key rune

// Numeric keypad buttons.
const (
	Key0 Key = '0'
	Key1 Key = '1'
	Key2 Key = '2'
	Key3 Key = '3'
	Key4 Key = '4'
	Key5 Key = '5'
	Key6 Key = '6'
	Key7 Key = '7'
	Key8 Key = '8'
	Key9 Key = '9'
)

// Directional keypad buttons. KeySubmit exists on both keypads.
const (
	KeyUp     Key = '^'
	KeyDown   Key = 'v'
	KeyLeft   Key = '<'
	KeyRight  Key = '>'
	KeySubmit Key = 'A'
)

// String returns the symbol printed on the button.
func (k Key) String() string {
	return string(rune(k))
}

// Keys renders a key sequence as the string of its symbols.
func Keys(ks []Key) string {
	buf := make([]rune, len(ks))
	for i, k := range ks {
		buf[i] = rune(k)
	}

	return string(buf)
}

// ParseKeys converts each rune of s into a Key without validation.
func ParseKeys(s string) []Key {
	out := make([]Key, 0, len(s))
	for _, r := range s {
		out = append(out, Key(r))
	}

	return out
}

// Variant selects one of the fixed keypad layouts.
type Variant uint8

const (
	// VariantNumeric is the door keypad:
	//
	//	+---+---+---+
	//	| 7 | 8 | 9 |
	//	+---+---+---+
	//	| 4 | 5 | 6 |
	//	+---+---+---+
	//	| 1 | 2 | 3 |
	//	+---+---+---+
	//	    | 0 | A |
	//	    +---+---+
	VariantNumeric Variant = iota

	// VariantDirectional is the robot controller:
	//
	//	    +---+---+
	//	    | ^ | A |
	//	+---+---+---+
	//	| < | v | > |
	//	+---+---+---+
	VariantDirectional
)

// layouts holds the row tables; a space is a corner without a button.
var layouts = [...][]string{
	VariantNumeric:     {"789", "456", "123", " 0A"},
	VariantDirectional: {" ^A", "<v>"},
}

// String returns the variant name.
func (v Variant) String() string {
	switch v {
	case VariantNumeric:
		return "numeric"
	case VariantDirectional:
		return "directional"
	}

	return fmt.Sprintf("Variant(%d)", uint8(v))
}

// Valid reports whether v is a defined variant.
func (v Variant) Valid() bool {
	return int(v) < len(layouts)
}

// Layout returns a copy of the row table of v.
func (v Variant) Layout() []string {
	if !v.Valid() {
		return nil
	}
	out := make([]string, len(layouts[v]))
	copy(out, layouts[v])

	return out
}

// Keys returns the buttons of v in row-major layout order.
func (v Variant) Keys() []Key {
	var out []Key
	for _, row := range v.Layout() {
		for _, r := range row {
			if r != ' ' {
				out = append(out, Key(r))
			}
		}
	}

	return out
}

// Home returns the key every controller rests on between presses.
func (v Variant) Home() Key {
	return KeySubmit
}

// Contains reports whether k is a button of v.
func (v Variant) Contains(k Key) bool {
	for _, c := range v.Keys() {
		if c == k {
			return true
		}
	}

	return false
}
