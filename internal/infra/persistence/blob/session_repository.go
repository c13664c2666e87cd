// Package blob stores the session snapshot as a JSON object in a gocloud bucket.
package blob

import (
	"context"
	"encoding/json"

	"portal/internal/domain/entity"
	"portal/internal/domain/repository"
	"portal/internal/errors"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

const contentTypeJSON = "application/json"

type sessionRepository struct {
	bucket *blob.Bucket
	key    string
}

// OpenBucket opens the bucket behind url. The caller owns the returned bucket.
func OpenBucket(ctx context.Context, url string) (*blob.Bucket, error) {
	bucket, err := blob.OpenBucket(ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", url)
	}

	return bucket, nil
}

// NewSessionRepository stores the snapshot under key in bucket.
func NewSessionRepository(bucket *blob.Bucket, key string) repository.SessionRepository {
	return &sessionRepository{
		bucket: bucket,
		key:    key + ".json",
	}
}

func (repo *sessionRepository) Load(ctx context.Context) (*entity.PersistedSession, error) {
	data, err := repo.bucket.ReadAll(ctx, repo.key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrapf(err, "read %s", repo.key)
	}

	var snapshot entity.PersistedSession
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, errors.Wrapf(err, "decode %s", repo.key)
	}

	return &snapshot, nil
}

func (repo *sessionRepository) Save(ctx context.Context, snapshot *entity.PersistedSession) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := repo.bucket.WriteAll(ctx, repo.key, data, &blob.WriterOptions{ContentType: contentTypeJSON}); err != nil {
		return errors.Wrapf(err, "write %s", repo.key)
	}

	return nil
}

func (repo *sessionRepository) Clear(ctx context.Context) error {
	err := repo.bucket.Delete(ctx, repo.key)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "delete %s", repo.key)
	}

	return nil
}
