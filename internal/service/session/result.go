package session

import (
	"time"

	"github.com/heartmarshall/pentest-stories/internal/domain"
)

// Session is returned by SignIn, SignUp and Refresh.
type Session struct {
	AccessToken  string
	RefreshToken string // raw token, NOT hash
	ExpiresIn    time.Duration
	User         domain.UserWithRole
}
