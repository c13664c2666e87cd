package impl

import (
	"context"
	"net/http"
	"testing"
	"time"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func openModal(f *storeFixture, canResend bool) {
	f.seed(entity.Session{
		IsInitialized: true,
		VerificationModal: entity.EmailVerificationModal{
			IsOpen:         true,
			UserEmail:      "new@acme.test",
			UserID:         "user-9",
			CanResendEmail: canResend,
		},
	})
}

func TestResendVerification_StartsCooldown(t *testing.T) {
	f := newStoreFixture(t)
	openModal(f, true)

	f.gateway.EXPECT().ResendVerification(mock.Anything, "user-9").Return("Verification email sent", nil).Once()

	result := f.store.ResendVerification(context.Background())

	assert.True(t, result.Success)
	assert.Equal(t, "Verification email sent", result.Message)
	assert.Equal(t, time.Minute, result.CooldownRemaining)
	assert.Equal(t, 1, f.store.Snapshot().VerificationModal.VerificationAttempts)

	f.clock.Advance(20 * time.Second)
	blocked := f.store.ResendVerification(context.Background())

	assert.False(t, blocked.Success)
	assert.Equal(t, domainerrors.CodeResendCooldown, blocked.Code)
	assert.Equal(t, 40*time.Second, blocked.CooldownRemaining)

	f.clock.Advance(40 * time.Second)
	f.gateway.EXPECT().ResendVerification(mock.Anything, "user-9").Return("Verification email sent", nil).Once()

	again := f.store.ResendVerification(context.Background())
	assert.True(t, again.Success)
	assert.Equal(t, 2, f.store.Snapshot().VerificationModal.VerificationAttempts)
}

func TestResendVerification_FailureDoesNotStartCooldown(t *testing.T) {
	f := newStoreFixture(t)
	openModal(f, true)

	f.gateway.EXPECT().ResendVerification(mock.Anything, "user-9").
		Return("", &domainerrors.UpstreamError{Status: http.StatusTooManyRequests, Code: "RATE_LIMITED", Msg: "Slow down"}).Once()
	f.gateway.EXPECT().ResendVerification(mock.Anything, "user-9").Return("sent", nil).Once()

	failed := f.store.ResendVerification(context.Background())
	assert.False(t, failed.Success)
	assert.Equal(t, "Slow down", failed.Error)
	assert.Equal(t, "RATE_LIMITED", failed.Code)
	assert.True(t, f.store.Snapshot().VerificationModal.IsOpen)
	assert.Zero(t, f.store.Snapshot().VerificationModal.VerificationAttempts)

	assert.True(t, f.store.ResendVerification(context.Background()).Success)
}

func TestResendVerification_NotAllowed(t *testing.T) {
	t.Run("resend disabled", func(t *testing.T) {
		f := newStoreFixture(t)
		openModal(f, false)

		result := f.store.ResendVerification(context.Background())

		assert.False(t, result.Success)
		assert.Equal(t, domainerrors.CodeResendNotAllowed, result.Code)
	})

	t.Run("modal closed", func(t *testing.T) {
		f := newStoreFixture(t)
		f.seed(entity.Session{IsInitialized: true})

		result := f.store.ResendVerification(context.Background())

		assert.False(t, result.Success)
		assert.Equal(t, domainerrors.CodeResendNotAllowed, result.Code)
	})
}

func TestCloseVerificationModal(t *testing.T) {
	f := newStoreFixture(t)
	openModal(f, true)

	f.store.CloseVerificationModal(context.Background())

	assert.Equal(t, entity.EmailVerificationModal{}, f.store.Snapshot().VerificationModal)
}
