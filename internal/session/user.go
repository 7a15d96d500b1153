package session

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrNotFound means no record is stored for the session.
	ErrNotFound = errors.New("session not found")
	// ErrInvalidRecord means a stored record could not be decoded.
	ErrInvalidRecord = errors.New("invalid session record")
	// ErrNoProvider is returned when session state is read outside the
	// session middleware.
	ErrNoProvider = errors.New("session: must be used within the session provider")
)

// User is the identity held by an authenticated session.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar,omitempty"`
}

// DemoUser is the fixed record every sign-in produces. There is no
// credential check behind it.
func DemoUser() User {
	return User{
		ID:        "1",
		Name:      "Demo User",
		Email:     "demo@academy.example",
		AvatarURL: "/public/images/placeholder-user.jpg",
	}
}

// Initials returns up to two initials for avatar fallbacks.
func (u User) Initials() string {
	var out []rune
	start := true
	for _, r := range u.Name {
		if r == ' ' {
			start = true
			continue
		}
		if start {
			out = append(out, r)
			start = false
			if len(out) == 2 {
				break
			}
		}
	}
	return string(out)
}

func encodeUser(u *User) ([]byte, error) {
	if u == nil || u.ID == "" {
		return nil, fmt.Errorf("%w: missing id", ErrInvalidRecord)
	}
	return json.Marshal(u)
}

func decodeUser(raw []byte) (*User, error) {
	var u User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	if u.ID == "" {
		return nil, fmt.Errorf("%w: missing id", ErrInvalidRecord)
	}
	return &u, nil
}
