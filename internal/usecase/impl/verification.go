package impl

import (
	"context"
	"log/slog"
	"math"
	"time"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/errors"
	"portal/internal/usecase"

	"golang.org/x/time/rate"
)

// ResendVerification asks the server to send the verification email again.
// A successful resend starts the cooldown; a failed one does not.
func (s *sessionStore) ResendVerification(ctx context.Context) *usecase.ResendResult {
	result, _, _ := s.flights.Do(flightResend, func() (any, error) {
		return s.resendVerification(context.WithoutCancel(ctx)), nil
	})

	return result.(*usecase.ResendResult)
}

func (s *sessionStore) resendVerification(ctx context.Context) *usecase.ResendResult {
	modal := s.read().VerificationModal

	// 1. Only an open modal with a known user may resend.
	if !modal.IsOpen || modal.UserID == "" || !modal.CanResendEmail {
		return &usecase.ResendResult{
			Error: domainerrors.ErrResendNotAllowed.Message(),
			Code:  domainerrors.CodeResendNotAllowed,
		}
	}

	// 2. Respect the cooldown.
	if remaining := s.cooldownRemaining(); remaining > 0 {
		return &usecase.ResendResult{
			Error:             domainerrors.ErrResendCooldown.Message(),
			Code:              domainerrors.CodeResendCooldown,
			CooldownRemaining: remaining,
		}
	}

	// 3. Call the server.
	message, err := s.gateway.ResendVerification(ctx, modal.UserID)
	if err != nil {
		s.log(ctx).Warn("Verification email resend failed", slog.String("userID", modal.UserID), slog.Any("error", err))

		result := &usecase.ResendResult{Error: domainerrors.ErrInternalError.Message(), Code: domainerrors.CodeInternalError}
		if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
			result.Error, result.Code = appErr.Message(), appErr.ErrorCode()
		}

		return result
	}

	// 4. Start the cooldown and count the attempt.
	s.mu.Lock()
	s.limiter.AllowN(s.now(), 1)
	s.mu.Unlock()

	s.transitionIf(ctx, func(cur entity.Session) (entity.Session, bool) {
		if !cur.VerificationModal.IsOpen || cur.VerificationModal.UserID != modal.UserID {
			return cur, false
		}
		cur.VerificationModal.VerificationAttempts++

		return cur, true
	})
	s.log(ctx).Info("Verification email resent", slog.String("userID", modal.UserID))

	return &usecase.ResendResult{Success: true, Message: message, CooldownRemaining: s.resendCooldown}
}

// CloseVerificationModal dismisses the verification modal.
func (s *sessionStore) CloseVerificationModal(ctx context.Context) {
	s.transition(ctx, func(cur entity.Session) entity.Session {
		cur.VerificationModal = entity.EmailVerificationModal{}

		return cur
	})
}

// cooldownRemaining is the wait until the next resend is allowed, rounded up to whole seconds.
func (s *sessionStore) cooldownRemaining() time.Duration {
	s.mu.RLock()
	tokens := s.limiter.TokensAt(s.now())
	s.mu.RUnlock()

	if tokens >= 1 {
		return 0
	}

	remaining := time.Duration((1 - tokens) * float64(s.resendCooldown))

	return time.Duration(math.Ceil(remaining.Seconds())) * time.Second
}

// resetResendLimiter gives a freshly opened modal a full resend allowance.
func (s *sessionStore) resetResendLimiter() {
	s.mu.Lock()
	s.limiter = rate.NewLimiter(rate.Every(s.resendCooldown), 1)
	s.mu.Unlock()
}
