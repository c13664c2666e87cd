// Package sealed encrypts session tokens before the snapshot reaches its backend.
package sealed

import (
	"context"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"strings"

	"portal/internal/domain/entity"
	"portal/internal/domain/repository"
	"portal/internal/errors"

	"golang.org/x/crypto/chacha20poly1305"
)

// sealedPrefix marks a token written by this package. Unprefixed tokens are
// read back as they are, so enabling sealing does not sign anyone out.
const sealedPrefix = "sealed:v1:"

const (
	fieldAccessToken  = "accessToken"
	fieldRefreshToken = "refreshToken"
)

type sessionRepository struct {
	inner repository.SessionRepository
	aead  cipher.AEAD
}

// ParseKey decodes a base64 XChaCha20-Poly1305 key.
func ParseKey(encoded string) ([]byte, error) {
	key, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return nil, errors.Wrap(err, "decode encryption key")
	}
	if len(key) != chacha20poly1305.KeySize {
		return nil, errors.Errorf("encryption key must be %d bytes, got %d", chacha20poly1305.KeySize, len(key))
	}

	return key, nil
}

// NewSessionRepository seals the tokens of every snapshot saved through inner.
func NewSessionRepository(inner repository.SessionRepository, key []byte) (repository.SessionRepository, error) {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, errors.Wrap(err, "init token cipher")
	}

	return &sessionRepository{inner: inner, aead: aead}, nil
}

func (repo *sessionRepository) Load(ctx context.Context) (*entity.PersistedSession, error) {
	snapshot, err := repo.inner.Load(ctx)
	if err != nil {
		return nil, err
	}

	opened := *snapshot
	if opened.AccessToken, err = repo.open(fieldAccessToken, snapshot.AccessToken); err != nil {
		return nil, err
	}
	if opened.RefreshToken, err = repo.open(fieldRefreshToken, snapshot.RefreshToken); err != nil {
		return nil, err
	}

	return &opened, nil
}

func (repo *sessionRepository) Save(ctx context.Context, snapshot *entity.PersistedSession) error {
	sealed := *snapshot

	var err error
	if sealed.AccessToken, err = repo.seal(fieldAccessToken, snapshot.AccessToken); err != nil {
		return err
	}
	if sealed.RefreshToken, err = repo.seal(fieldRefreshToken, snapshot.RefreshToken); err != nil {
		return err
	}

	return repo.inner.Save(ctx, &sealed)
}

func (repo *sessionRepository) Clear(ctx context.Context) error {
	return repo.inner.Clear(ctx)
}

// seal binds the ciphertext to its field name so tokens cannot be swapped.
func (repo *sessionRepository) seal(field, token string) (string, error) {
	if token == "" {
		return "", nil
	}

	nonce := make([]byte, repo.aead.NonceSize(), repo.aead.NonceSize()+len(token)+repo.aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return "", errors.Wrap(err, "generate nonce")
	}

	out := repo.aead.Seal(nonce, nonce, []byte(token), []byte(field))

	return sealedPrefix + base64.RawURLEncoding.EncodeToString(out), nil
}

func (repo *sessionRepository) open(field, value string) (string, error) {
	encoded, ok := strings.CutPrefix(value, sealedPrefix)
	if !ok {
		return value, nil
	}

	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return "", errors.Wrapf(err, "decode sealed %s", field)
	}
	if len(raw) < repo.aead.NonceSize() {
		return "", errors.Errorf("sealed %s is truncated", field)
	}

	nonce, ciphertext := raw[:repo.aead.NonceSize()], raw[repo.aead.NonceSize():]
	plain, err := repo.aead.Open(nil, nonce, ciphertext, []byte(field))
	if err != nil {
		return "", errors.Wrapf(err, "open sealed %s", field)
	}

	return string(plain), nil
}
