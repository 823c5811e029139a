package helpers

import "github.com/google/uuid"

// GenerateID returns a new random business identifier in canonical UUID form.
func GenerateID() string {
	return uuid.NewString()
}
