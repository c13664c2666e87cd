package impl

import (
	"context"
	"log/slog"
	"strings"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/service"
	"portal/internal/errors"
	"portal/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
)

// Login outcomes recorded by the metrics recorder.
const (
	outcomeSuccess          = "success"
	outcomeValidationFailed = "validation_failed"
	outcomeRejected         = "rejected"
	outcomeUnverified       = "unverified"
	outcomeNetworkError     = "network_error"
)

// Login exchanges credentials for a session. Failures are reported in the
// result and never returned as errors.
func (s *sessionStore) Login(ctx context.Context, credentials entity.Credentials) *usecase.AuthResult {
	credentials.EmailOrUsername = strings.TrimSpace(credentials.EmailOrUsername)

	// 1. Validate locally; nothing goes over the wire for an empty form.
	if err := s.validate.Struct(credentials); err != nil {
		s.log(ctx).Debug("Login rejected by validation", slog.Any("error", err))
		s.metrics.ObserveLogin(outcomeValidationFailed)

		return s.rejectAuth(ctx, domainerrors.ErrValidationFailed.Message(), domainerrors.CodeValidationFailed, nil)
	}

	gen := s.beginAuth(ctx)

	// 2. Call the server.
	payload, err := s.gateway.Login(ctx, credentials)
	if gen != s.loginGen.Load() {
		s.log(ctx).Debug("Discarding superseded login response")

		return authResultFromError(err, payload)
	}

	if err == nil {
		err = validatePayload(payload)
	}
	if err != nil {
		return s.handleAuthFailure(ctx, err, credentials.EmailOrUsername)
	}

	// 3. Adopt the new identity; the previous entity status and modal are dropped.
	s.adoptAuthPayload(ctx, payload)
	s.metrics.ObserveLogin(outcomeSuccess)
	s.log(ctx).Info("User logged in", slog.String("userID", payload.User.ID))

	return &usecase.AuthResult{Success: true, Data: payload.User.Clone()}
}

// Register creates an account. When the server signs the user in directly the
// session is adopted the same way as after a login.
func (s *sessionStore) Register(ctx context.Context, registration entity.Registration) *usecase.AuthResult {
	registration.Name = strings.TrimSpace(registration.Name)
	registration.Username = strings.TrimSpace(registration.Username)
	registration.Email = strings.TrimSpace(registration.Email)

	if err := s.validate.Struct(registration); err != nil {
		return s.rejectAuth(ctx, validationMessage(err), domainerrors.CodeValidationFailed, nil)
	}

	gen := s.beginAuth(ctx)

	payload, err := s.gateway.Register(ctx, registration)
	if gen != s.loginGen.Load() {
		return authResultFromError(err, payload)
	}
	if err != nil {
		return s.handleAuthFailure(ctx, err, registration.Email)
	}

	if payload != nil && payload.User != nil && payload.AccessToken != "" {
		s.adoptAuthPayload(ctx, payload)
		s.log(ctx).Info("User registered and signed in", slog.String("userID", payload.User.ID))

		return &usecase.AuthResult{Success: true, Data: payload.User.Clone()}
	}

	s.transition(ctx, func(cur entity.Session) entity.Session {
		cur.IsLoading = false
		cur.Error = ""

		return cur
	})

	message := ""
	if payload != nil {
		message = payload.Message
	}
	s.log(ctx).Info("User registered", slog.String("email", registration.Email))

	return &usecase.AuthResult{Success: true, Data: message}
}

// Logout notifies the server best-effort and always clears the local session.
// Concurrent callers share one run.
func (s *sessionStore) Logout(ctx context.Context) {
	_, _, _ = s.flights.Do(flightLogout, func() (any, error) {
		s.logout(context.WithoutCancel(ctx))

		return nil, nil
	})
}

func (s *sessionStore) logout(ctx context.Context) {
	state := s.read()

	// 1. Tell the server, bounded by the logout timeout.
	if state.AccessToken != "" {
		notifyCtx, cancel := context.WithTimeout(ctx, s.logoutTimeout)
		if err := s.gateway.Logout(notifyCtx, state.AccessToken); err != nil {
			s.log(ctx).Debug("Logout notification failed", slog.Any("error", err))
		}
		cancel()
	}

	// 2. Invalidate in-flight lookups and logins so their responses are dropped.
	s.statusGen.Add(1)
	s.loginGen.Add(1)

	// 3. Clear unconditionally; the initialized flag survives.
	s.transition(ctx, func(cur entity.Session) entity.Session {
		return cur.Cleared()
	})

	if state.User != nil {
		s.log(ctx).Info("User logged out", slog.String("userID", state.User.ID))
	}
}

func (s *sessionStore) beginAuth(ctx context.Context) uint64 {
	gen := s.loginGen.Add(1)
	s.transition(ctx, func(cur entity.Session) entity.Session {
		cur.IsLoading = true
		cur.Error = ""

		return cur
	})

	return gen
}

func (s *sessionStore) adoptAuthPayload(ctx context.Context, payload *service.AuthPayload) {
	s.statusGen.Add(1)
	s.transition(ctx, func(cur entity.Session) entity.Session {
		return entity.Session{
			User:            payload.User.Clone(),
			AccessToken:     payload.AccessToken,
			RefreshToken:    payload.RefreshToken,
			IsAuthenticated: true,
			IsInitialized:   cur.IsInitialized,
			Permissions:     permissionsOf(payload.User),
		}
	})
}

// rejectAuth records message on the session and returns the failed result.
// The previous session stays untouched.
func (s *sessionStore) rejectAuth(ctx context.Context, message, code string, data any) *usecase.AuthResult {
	s.transition(ctx, func(cur entity.Session) entity.Session {
		cur.IsLoading = false
		cur.Error = message

		return cur
	})

	return &usecase.AuthResult{Success: false, Error: message, Code: code, Data: data}
}

func (s *sessionStore) handleAuthFailure(ctx context.Context, err error, identifier string) *usecase.AuthResult {
	upstream, isUpstream := errors.AsType[*domainerrors.UpstreamError](err)

	switch {
	case isUpstream && upstream.Code == domainerrors.CodeEmailNotVerified:
		// The modal takes over; no error banner and no authenticated session.
		modal := verificationModalFrom(upstream.Payload, identifier)
		message := upstream.Msg
		if message == "" {
			message = domainerrors.ErrEmailNotVerified.Message()
		}

		s.transition(ctx, func(cur entity.Session) entity.Session {
			cur.IsLoading = false
			cur.Error = ""
			cur.IsAuthenticated = false
			cur.VerificationModal = modal

			return cur
		})
		s.resetResendLimiter()
		s.metrics.ObserveLogin(outcomeUnverified)
		s.log(ctx).Info("Login requires email verification", slog.String("userID", modal.UserID))

		return &usecase.AuthResult{Success: false, Error: message, Code: domainerrors.CodeEmailNotVerified, Data: modal}

	case domainerrors.IsNetwork(err):
		s.metrics.ObserveLogin(outcomeNetworkError)
		s.log(ctx).Warn("Authentication request failed", slog.Any("error", err))

		return s.rejectAuth(ctx, domainerrors.ErrNetworkFailure.Message(), domainerrors.CodeNetworkError, nil)

	case isUpstream:
		message := upstream.Msg
		if message == "" {
			message = domainerrors.ErrInvalidCredentials.Message()
		}
		code := upstream.Code
		if code == "" {
			code = domainerrors.CodeInvalidCredentials
		}
		s.metrics.ObserveLogin(outcomeRejected)
		s.log(ctx).Info("Authentication rejected", slog.Int("status", upstream.Status), slog.String("code", code))

		return s.rejectAuth(ctx, message, code, nil)

	default:
		s.metrics.ObserveLogin(outcomeRejected)
		s.log(ctx).Error("Authentication failed", slog.Any("error", err))

		return s.rejectAuth(ctx, domainerrors.ErrInvalidCredentials.Message(), domainerrors.CodeInternalError, nil)
	}
}

// verificationModalFrom decodes the EMAIL_NOT_VERIFIED payload into the modal state.
func verificationModalFrom(payload map[string]any, identifier string) entity.EmailVerificationModal {
	var decoded struct {
		UserID               string `mapstructure:"userId"`
		Email                string `mapstructure:"email"`
		CanResendEmail       *bool  `mapstructure:"canResendEmail"`
		VerificationAttempts int    `mapstructure:"verificationAttempts"`
	}
	if err := mapstructure.WeakDecode(payload, &decoded); err != nil {
		decoded.UserID, decoded.Email, decoded.CanResendEmail = "", "", nil
		decoded.VerificationAttempts = 0
	}

	email := decoded.Email
	if email == "" && strings.Contains(identifier, "@") {
		email = identifier
	}
	canResend := decoded.UserID != ""
	if decoded.CanResendEmail != nil {
		canResend = canResend && *decoded.CanResendEmail
	}

	return entity.EmailVerificationModal{
		IsOpen:               true,
		UserEmail:            email,
		UserID:               decoded.UserID,
		CanResendEmail:       canResend,
		VerificationAttempts: max(decoded.VerificationAttempts, 0),
	}
}

func validatePayload(payload *service.AuthPayload) error {
	if payload == nil || payload.User == nil || payload.AccessToken == "" {
		return errors.Wrap(domainerrors.ErrInternalError, "authentication response is missing user or token")
	}

	return nil
}

// authResultFromError builds the caller's result for a superseded response without touching the session.
func authResultFromError(err error, payload *service.AuthPayload) *usecase.AuthResult {
	if err != nil {
		if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
			return &usecase.AuthResult{Success: false, Error: appErr.Message(), Code: appErr.ErrorCode()}
		}

		return &usecase.AuthResult{Success: false, Error: err.Error(), Code: domainerrors.CodeInternalError}
	}
	if payload != nil && payload.User != nil {
		return &usecase.AuthResult{Success: true, Data: payload.User.Clone()}
	}

	return &usecase.AuthResult{Success: true}
}

// validationMessage names the first failing field.
func validationMessage(err error) string {
	validationErrs, ok := errors.AsType[validator.ValidationErrors](err)
	if !ok || len(validationErrs) == 0 {
		return err.Error()
	}

	first := validationErrs[0]
	switch first.Tag() {
	case "required":
		return first.Field() + " is required"
	case "email":
		return first.Field() + " must be a valid email address"
	case "min":
		return first.Field() + " must be at least " + first.Param() + " characters"
	case "max":
		return first.Field() + " must be at most " + first.Param() + " characters"
	default:
		return first.Field() + " is invalid"
	}
}
