// Package handler contains the HTTP handlers for the session engine.
package handler

import (
	"strings"

	"portal/internal/domain/entity"
)

// SessionView is the session as exposed over HTTP. Tokens never leave the process.
type SessionView struct {
	entity.Session
	DefaultDashboard string `json:"defaultDashboard"`
}

func newSessionView(session entity.Session, dashboard string) SessionView {
	return SessionView{Session: session, DefaultDashboard: dashboard}
}

// LoginResponse is returned after a login attempt that did not fail.
type LoginResponse struct {
	User                 *entity.User                   `json:"user,omitempty"`
	RedirectTo           string                         `json:"redirectTo,omitempty"`
	VerificationRequired bool                           `json:"verificationRequired"`
	VerificationModal    *entity.EmailVerificationModal `json:"verificationModal,omitempty"`
}

// ResendResponse carries the resend cooldown in whole seconds.
type ResendResponse struct {
	CooldownSeconds int `json:"cooldownSeconds"`
}

// EntityStatusView is the resolved status plus the lookup error, if the status failed closed.
type EntityStatusView struct {
	entity.EntityStatus
	Error string `json:"error,omitempty"`
}

// safeNext accepts only same-origin absolute paths as post-login targets.
func safeNext(next string) (string, bool) {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "", false
	}

	return next, true
}
