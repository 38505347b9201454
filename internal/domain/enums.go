package domain

// UserRole represents the authorization level of a user.
// A user without a role record is treated as UserRoleUser.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

// UserStatus is the lifecycle flag on a profile. Profiles are never hard-deleted.
type UserStatus string

const (
	UserStatusActive  UserStatus = "active"
	UserStatusBlocked UserStatus = "blocked"
	UserStatusDeleted UserStatus = "deleted"
)

func (s UserStatus) String() string { return string(s) }

func (s UserStatus) IsValid() bool {
	switch s {
	case UserStatusActive, UserStatusBlocked, UserStatusDeleted:
		return true
	}
	return false
}

// CanSignIn reports whether a profile in this status may hold a session.
func (s UserStatus) CanSignIn() bool {
	return s == UserStatusActive
}

// AuditAction labels an audit log entry.
type AuditAction string

const (
	AuditActionPasswordReset     AuditAction = "PASSWORD_RESET"
	AuditActionRoleGranted       AuditAction = "ROLE_GRANTED"
	AuditActionUserStatusChanged AuditAction = "USER_STATUS_CHANGED"
	AuditActionStoryDeleted      AuditAction = "STORY_DELETED"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionPasswordReset, AuditActionRoleGranted,
		AuditActionUserStatusChanged, AuditActionStoryDeleted:
		return true
	}
	return false
}

// StorySort is the ordering applied to a story listing.
type StorySort string

const (
	StorySortNewest StorySort = "newest"
	StorySortOldest StorySort = "oldest"
	StorySortTitle  StorySort = "title"
)

func (s StorySort) String() string { return string(s) }

func (s StorySort) IsValid() bool {
	switch s {
	case StorySortNewest, StorySortOldest, StorySortTitle:
		return true
	}
	return false
}
