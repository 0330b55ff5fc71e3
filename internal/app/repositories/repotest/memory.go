// Package repotest provides in-memory implementations of the repository
// interfaces for tests in other packages.
package repotest

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/yigit/coursepass/internal/app/models"
	"github.com/yigit/coursepass/internal/app/repositories"
	"github.com/yigit/coursepass/internal/pkg/apperrors"
)

var (
	_ repositories.IAccessCodeRepository = (*AccessCodeRepo)(nil)
	_ repositories.ISessionRepository    = (*SessionRepo)(nil)
)

// Store keeps access codes and sessions in memory. It satisfies both
// repositories.IAccessCodeRepository (via AccessCodes) and
// repositories.ISessionRepository (via Sessions).
type Store struct {
	mu       sync.Mutex
	codes    map[uuid.UUID]*models.AccessCode
	sessions map[uuid.UUID]*models.Session

	// Err, when set, is returned by every operation.
	Err error
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		codes:    map[uuid.UUID]*models.AccessCode{},
		sessions: map[uuid.UUID]*models.Session{},
	}
}

// AccessCodes returns the access code repository view
func (s *Store) AccessCodes() *AccessCodeRepo { return &AccessCodeRepo{s} }

// Repositories returns a container backed by the store
func (s *Store) Repositories() *repositories.Repositories {
	return &repositories.Repositories{
		AccessCodeRepository: s.AccessCodes(),
		SessionRepository:    s.Sessions(),
	}
}

// Sessions returns the session repository view
func (s *Store) Sessions() *SessionRepo { return &SessionRepo{s} }

// AddCode inserts a code directly and returns it
func (s *Store) AddCode(code models.AccessCode) *models.AccessCode {
	s.mu.Lock()
	defer s.mu.Unlock()
	if code.ID == uuid.Nil {
		code.ID = uuid.New()
	}
	c := code
	s.codes[c.ID] = &c
	cp := c
	return &cp
}

// Code returns a copy of the stored code
func (s *Store) Code(id uuid.UUID) *models.AccessCode {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.codes[id]
	if !ok {
		return nil
	}
	cp := *c
	return &cp
}

// AddSession inserts a session directly
func (s *Store) AddSession(session models.Session) *models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	sess := session
	s.sessions[sess.ID] = &sess
	cp := sess
	return &cp
}

// SessionCount returns the number of stored sessions
func (s *Store) SessionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Session returns a copy of the session with the token
func (s *Store) Session(token string) *models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sess := range s.sessions {
		if sess.Token == token {
			cp := *sess
			return &cp
		}
	}
	return nil
}

// AccessCodeRepo is the access code view of a Store
type AccessCodeRepo struct{ s *Store }

func (r *AccessCodeRepo) GetByCode(ctx context.Context, code string) (*models.AccessCode, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	for _, c := range r.s.codes {
		if c.Code == code {
			cp := *c
			return &cp, nil
		}
	}
	return nil, apperrors.ErrAccessCodeNotFound
}

func (r *AccessCodeRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.AccessCode, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	c, ok := r.s.codes[id]
	if !ok {
		return nil, apperrors.NewResourceNotFoundError("access code not found")
	}
	cp := *c
	return &cp, nil
}

func (r *AccessCodeRepo) Create(ctx context.Context, code *models.AccessCode) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	for _, c := range r.s.codes {
		if c.Code == code.Code {
			return apperrors.ErrAccessCodeAlreadyExists
		}
	}
	now := time.Now()
	code.ID = uuid.New()
	code.UsageCount = 0
	code.CreatedAt, code.UpdatedAt = now, now
	cp := *code
	r.s.codes[cp.ID] = &cp
	return nil
}

func (r *AccessCodeRepo) Upsert(ctx context.Context, code *models.AccessCode) (*models.AccessCode, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	now := time.Now()
	for _, c := range r.s.codes {
		if c.Code == code.Code {
			c.CourseName = code.CourseName
			c.ContentSource = code.ContentSource
			c.UpdatedAt = now
			cp := *c
			return &cp, nil
		}
	}
	c := *code
	c.ID = uuid.New()
	c.CreatedAt, c.UpdatedAt = now, now
	r.s.codes[c.ID] = &c
	cp := c
	return &cp, nil
}

func (r *AccessCodeRepo) List(ctx context.Context) ([]*models.AccessCode, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	out := make([]*models.AccessCode, 0, len(r.s.codes))
	for _, c := range r.s.codes {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (r *AccessCodeRepo) SetActive(ctx context.Context, id uuid.UUID, active bool) (*models.AccessCode, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	c, ok := r.s.codes[id]
	if !ok {
		return nil, apperrors.NewResourceNotFoundError("access code not found")
	}
	c.IsActive = active
	c.UpdatedAt = time.Now()
	cp := *c
	return &cp, nil
}

// SessionRepo is the session view of a Store
type SessionRepo struct{ s *Store }

// CreateWithUsage mirrors the conditional usage increment of the SQL repository.
func (r *SessionRepo) CreateWithUsage(ctx context.Context, session *models.Session) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	c, ok := r.s.codes[session.AccessCodeID]
	if !ok {
		return apperrors.ErrAccessCodeNotFound
	}
	if c.UsageLimit != nil && c.UsageCount >= *c.UsageLimit {
		return apperrors.ErrAccessCodeUsageExceeded
	}
	c.UsageCount++

	session.ID = uuid.New()
	session.CreatedAt = time.Now()
	cp := *session
	r.s.sessions[cp.ID] = &cp
	return nil
}

func (r *SessionRepo) GetByToken(ctx context.Context, token string) (*models.SessionWithCode, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	for _, sess := range r.s.sessions {
		if sess.Token != token {
			continue
		}
		c, ok := r.s.codes[sess.AccessCodeID]
		if !ok {
			break
		}
		return &models.SessionWithCode{
			Session:       *sess,
			CourseID:      c.CourseID,
			CourseName:    c.CourseName,
			ContentSource: c.ContentSource,
		}, nil
	}
	return nil, apperrors.ErrSessionNotFound
}

func (r *SessionRepo) TouchLastActive(ctx context.Context, id uuid.UUID, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	if sess, ok := r.s.sessions[id]; ok {
		sess.LastActiveAt = at
	}
	return nil
}

func (r *SessionRepo) DeleteByID(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	delete(r.s.sessions, id)
	return nil
}

func (r *SessionRepo) DeleteByToken(ctx context.Context, token string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return 0, r.s.Err
	}
	var n int64
	for id, sess := range r.s.sessions {
		if sess.Token == token {
			delete(r.s.sessions, id)
			n++
		}
	}
	return n, nil
}

func (r *SessionRepo) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return 0, r.s.Err
	}
	var n int64
	for id, sess := range r.s.sessions {
		if sess.ExpiresAt.Before(before) {
			delete(r.s.sessions, id)
			n++
		}
	}
	return n, nil
}
