package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/facile-ph/enlistment-api/internal/dto"
	"github.com/facile-ph/enlistment-api/internal/repository"
	appErrors "github.com/facile-ph/enlistment-api/pkg/errors"
)

// SessionService saves and restores selection blobs under anonymous
// UUID session IDs so a user can resume an enlistment draft later.
type SessionService struct {
	sessions   *repository.SessionRepository
	selections *SelectionService
	ttl        time.Duration
	logger     *zap.Logger
	now        func() time.Time
}

func NewSessionService(sessions *repository.SessionRepository, selections *SelectionService, ttl time.Duration, logger *zap.Logger) *SessionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionService{
		sessions:   sessions,
		selections: selections,
		ttl:        ttl,
		logger:     logger,
		now:        time.Now,
	}
}

// Save stores a blob under a fresh session ID. The blob is validated
// first so a session can never hold an undecodable selection.
func (s *SessionService) Save(ctx context.Context, blob dto.SelectionBlob) (*dto.SessionRecord, error) {
	if _, err := s.selections.DecodeBlob(blob); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	record := &dto.SessionRecord{
		ID:        uuid.NewString(),
		Blob:      blob,
		SavedAt:   now,
		UpdatedAt: now,
	}
	if err := s.sessions.Set(ctx, record.ID, record, s.ttl); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "save session")
	}
	s.logger.Info("session saved", zap.String("session_id", record.ID))
	return record, nil
}

// Get restores a saved session.
func (s *SessionService) Get(ctx context.Context, id string) (*dto.SessionRecord, error) {
	var record dto.SessionRecord
	if err := s.sessions.Get(ctx, id, &record); err != nil {
		if err == appErrors.ErrCacheMiss {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "session not found: "+id)
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "load session")
	}
	return &record, nil
}

// Update replaces the blob of an existing session, keeping its ID and
// original save time. The TTL restarts.
func (s *SessionService) Update(ctx context.Context, id string, blob dto.SelectionBlob) (*dto.SessionRecord, error) {
	if _, err := s.selections.DecodeBlob(blob); err != nil {
		return nil, err
	}

	record, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	record.Blob = blob
	record.UpdatedAt = s.now().UTC()
	if err := s.sessions.Set(ctx, id, record, s.ttl); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "update session")
	}
	return record, nil
}

// Delete removes a saved session. Deleting a missing session is not an
// error.
func (s *SessionService) Delete(ctx context.Context, id string) error {
	if err := s.sessions.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "delete session")
	}
	return nil
}
