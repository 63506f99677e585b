package dto

import "strings"

// Request DTOs carry raw form/JSON values as *string: nil means the field was
// not submitted, a non-nil empty string means it was submitted blank.
// Datos structs are the fully resolved raw input handed to the validators.

func valor(p *string) string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(*p)
}

func sobre(p *string, actual string) string {
	if p == nil {
		return actual
	}
	return strings.TrimSpace(*p)
}
