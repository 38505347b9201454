package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an identity in the credential store.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile holds the public identity attributes of a user. Profile.ID equals User.ID.
type Profile struct {
	ID               uuid.UUID
	Email            string
	DisplayName      string
	Department       *string
	BusinessVertical *string
	Status           UserStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ProfilePatch is a partial profile update. Nil fields are left unchanged.
type ProfilePatch struct {
	DisplayName      *string
	Department       *string
	BusinessVertical *string
}

// IsEmpty reports whether the patch changes nothing.
func (p ProfilePatch) IsEmpty() bool {
	return p.DisplayName == nil && p.Department == nil && p.BusinessVertical == nil
}

// UserWithRole is a profile merged with its resolved role.
type UserWithRole struct {
	Profile
	Role UserRole
}

// IsAdmin reports whether the user holds the admin role.
func (u UserWithRole) IsAdmin() bool { return u.Role.IsAdmin() }

// RefreshToken represents a hashed refresh token stored in the database.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// IsRevoked returns true if the token has been revoked.
func (t *RefreshToken) IsRevoked() bool {
	return t.RevokedAt != nil
}

// IsExpired returns true if the token has expired relative to now.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}
