package persistence

import (
	"bytes"
	"context"
	"encoding/base64"
	"io"
	"log/slog"
	"testing"

	"portal/config"
	"portal/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newParams(t *testing.T, mutate func(cfg *config.Config)) (Params, *fxtest.Lifecycle) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Storage = &config.StorageConfig{Driver: config.StorageDriverBlob}
	cfg.Storage.Blob.URL = "mem://"
	mutate(cfg)
	cfg.ApplyDefaults()

	lc := fxtest.NewLifecycle(t)

	return Params{
		Lc:     lc,
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, lc
}

func TestNewSessionRepository_BlobWithSealing(t *testing.T) {
	params, lc := newParams(t, func(cfg *config.Config) {
		cfg.Storage.EncryptionKey = base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{4}, 32))
	})

	repo, err := NewSessionRepository(params)
	require.NoError(t, err)
	lc.RequireStart()
	defer lc.RequireStop()

	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, &entity.PersistedSession{Version: entity.PersistedSessionVersion, AccessToken: "a", RefreshToken: "r"}))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a", loaded.AccessToken)
	assert.Equal(t, "r", loaded.RefreshToken)
}

func TestNewSessionRepository_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *config.Config)
		wantErr string
	}{
		{
			name:    "unknown driver",
			mutate:  func(cfg *config.Config) { cfg.Storage.Driver = "etcd" },
			wantErr: "unknown storage driver: etcd",
		},
		{
			name:    "short key",
			mutate:  func(cfg *config.Config) { cfg.Storage.EncryptionKey = base64.StdEncoding.EncodeToString([]byte("tiny")) },
			wantErr: "encryption key must be 32 bytes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, _ := newParams(t, tt.mutate)

			_, err := NewSessionRepository(params)

			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}
