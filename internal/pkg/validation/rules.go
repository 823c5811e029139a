package validation

import "unicode/utf8"

// Validation rule constants
var (
	// IDLength is the length of a canonical UUID string; business ids in path
	// segments are accepted only when they have exactly this many characters.
	IDLength = 36
)

// StringValidation validates a single string value
type StringValidation struct {
	Value  string
	Length int
}

// NewStringValidation creates a new string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{Value: value}
}

// WithExactLength requires the value to have exactly n characters
func (v *StringValidation) WithExactLength(n int) *StringValidation {
	v.Length = n
	return v
}

// Validate performs validation. Values are always required.
func (v *StringValidation) Validate() bool {
	if v.Value == "" {
		return false
	}
	if v.Length > 0 && utf8.RuneCountInString(v.Value) != v.Length {
		return false
	}
	return true
}

// IsValidID reports whether id has the shape of a business id. The check is
// purely syntactic: only the character count is inspected.
func IsValidID(id string) bool {
	return NewStringValidation(id).WithExactLength(IDLength).Validate()
}
