package session

import (
	"errors"
	"sync"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwt"
)

var ErrExpired = errors.New("session token is expired")

// Employee is the signed-in employee's profile, captured at login.
type Employee struct {
	ID   string
	Name string
}

// Session carries the bearer token and employee profile for the life of
// a sign-in. It is passed explicitly to every component that calls the
// backend; there is no ambient global store. Login constructs it,
// logout calls Clear.
type Session struct {
	mu        sync.RWMutex
	token     string
	employee  Employee
	expiresAt time.Time
}

// New builds a session from an issued bearer token. The token is parsed
// (not verified; the agent holds no keys) to learn its expiry. Tokens
// that fail to parse or carry no exp claim are kept with no expiry.
func New(token string, employee Employee) *Session {
	s := &Session{token: token, employee: employee}

	parsed, err := jwt.ParseString(token, jwt.WithVerify(false), jwt.WithValidate(false))
	if err == nil {
		s.expiresAt = parsed.Expiration()
	}
	return s
}

// Token returns the bearer token, or ErrExpired when the token's exp
// claim has passed. Short-circuiting here keeps doomed requests off the
// network.
func (s *Session) Token() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return "", ErrExpired
	}
	if !s.expiresAt.IsZero() && time.Now().After(s.expiresAt) {
		return "", ErrExpired
	}
	return s.token, nil
}

// Employee returns the signed-in employee profile.
func (s *Session) Employee() Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.employee
}

// ExpiresAt returns the token expiry, zero when unknown.
func (s *Session) ExpiresAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expiresAt
}

// Clear tears the session down on logout.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.employee = Employee{}
	s.expiresAt = time.Time{}
}
