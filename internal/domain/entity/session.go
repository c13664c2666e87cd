// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "slices"

// PersistedSessionVersion is bumped whenever PersistedSession changes shape.
const PersistedSessionVersion = 1

// EmailVerificationModal is the UI sub-state opened by an EMAIL_NOT_VERIFIED login rejection.
type EmailVerificationModal struct {
	IsOpen               bool   `json:"isOpen"`
	UserEmail            string `json:"userEmail,omitempty"`
	UserID               string `json:"userId,omitempty"`
	CanResendEmail       bool   `json:"canResendEmail"`
	VerificationAttempts int    `json:"verificationAttempts"`
}

// Session is the complete client-side session state.
// Every transition replaces whole fields; nothing is patched in place.
type Session struct {
	User              *User                  `json:"user"`
	AccessToken       string                 `json:"-"`
	RefreshToken      string                 `json:"-"`
	IsAuthenticated   bool                   `json:"isAuthenticated"`
	IsInitialized     bool                   `json:"isInitialized"`
	IsLoading         bool                   `json:"isLoading"`
	Error             string                 `json:"error,omitempty"`
	Permissions       []string               `json:"permissions,omitempty"`
	EntityStatus      EntityStatus           `json:"entityStatus"`
	VerificationModal EmailVerificationModal `json:"verificationModal"`
}

// Clone returns a deep copy safe to hand to observers.
func (s Session) Clone() Session {
	s.User = s.User.Clone()
	s.Permissions = slices.Clone(s.Permissions)
	s.EntityStatus = s.EntityStatus.Clone()

	return s
}

// HasCredentials reports whether both a user and an access token are present.
func (s Session) HasCredentials() bool {
	return s.User != nil && s.AccessToken != ""
}

// Roles returns the role set of the current user.
func (s Session) Roles() Roles {
	if s.User == nil {
		return nil
	}

	return s.User.Roles
}

// Cleared returns the signed-out state. IsInitialized survives a logout.
func (s Session) Cleared() Session {
	return Session{IsInitialized: s.IsInitialized}
}

// PersistedSession is the durable subset of Session.
type PersistedSession struct {
	Version         int          `json:"version"`
	User            *User        `json:"user"`
	AccessToken     string       `json:"accessToken,omitempty"`
	RefreshToken    string       `json:"refreshToken,omitempty"`
	IsAuthenticated bool         `json:"isAuthenticated"`
	Permissions     []string     `json:"permissions,omitempty"`
	EntityStatus    EntityStatus `json:"entityStatus"`
}

// Persisted strips transient flags and modal state.
func (s Session) Persisted() PersistedSession {
	status := s.EntityStatus.Clone()
	status.IsStatusLoading = false

	return PersistedSession{
		Version:         PersistedSessionVersion,
		User:            s.User.Clone(),
		AccessToken:     s.AccessToken,
		RefreshToken:    s.RefreshToken,
		IsAuthenticated: s.IsAuthenticated,
		Permissions:     slices.Clone(s.Permissions),
		EntityStatus:    status,
	}
}

// Restore rebuilds a fresh, uninitialized Session from a persisted snapshot.
func (p PersistedSession) Restore() Session {
	return Session{
		User:            p.User.Clone(),
		AccessToken:     p.AccessToken,
		RefreshToken:    p.RefreshToken,
		IsAuthenticated: p.IsAuthenticated && p.User != nil && p.AccessToken != "",
		Permissions:     slices.Clone(p.Permissions),
		EntityStatus:    p.EntityStatus.Clone(),
	}
}
