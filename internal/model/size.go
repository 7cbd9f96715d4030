package model

import (
	"encoding/json"
	"fmt"
)

// Size is the image size accepted by the upstream images API.
type Size int

const (
	Size256x256 Size = iota + 1
	Size512x512
	Size1024x1024
)

// user facing token -> size
var sizeTokens = map[string]Size{
	"256":  Size256x256,
	"512":  Size512x512,
	"1024": Size1024x1024,
}

// ValidationError is returned when form input cannot be turned into a FormInput.
type ValidationError struct {
	Field string

	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %q", e.Field, e.Value)
}

// ParseSize decodes a form token ("256", "512", "1024"). Matching is exact.
func ParseSize(token string) (Size, error) {
	if size, ok := sizeTokens[token]; ok {
		return size, nil
	}
	return 0, &ValidationError{Field: "size", Value: token}
}

// String returns the wire value expected by the upstream, eg: 512x512
func (s Size) String() string {
	switch s {
	case Size256x256:
		return "256x256"
	case Size512x512:
		return "512x512"
	case Size1024x1024:
		return "1024x1024"
	}
	return fmt.Sprintf("Size(%d)", int(s))
}

// Token returns the form token for the size, used to redisplay the selection.
func (s Size) Token() string {
	for token, size := range sizeTokens {
		if size == s {
			return token
		}
	}
	return ""
}

func (s Size) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}
