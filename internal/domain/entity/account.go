// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the sole entity in the system, representing one registered identity.
// ID, Username, Email and CreatedAt are assigned at creation and never change
// for the lifetime of the account.
type Account struct {
	ID           uuid.UUID // Store-assigned identifier, never reused after deletion.
	Username     string    // Login name, globally unique.
	Email        string    // Contact address, globally unique.
	PasswordHash string    // Salted bcrypt digest. Never leaves the service layer.
	CreatedAt    time.Time // Timestamp fixed when the account was accepted into the store.
}
