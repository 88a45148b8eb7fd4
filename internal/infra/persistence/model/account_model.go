// Package model contains the GORM persistence models mirroring the database schema.
package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table. PostgreSQL generates UUIDs via gen_random_uuid().
// Username and email carry unique indexes so a racing insert loses at commit time
// even when the pre-persist uniqueness check passed for both writers.
type AccountModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Username     string    `gorm:"type:varchar(100);uniqueIndex:idx_accounts_username;not null"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex:idx_accounts_email;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
