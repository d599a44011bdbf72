// Package store is the volatile, in-memory record of generated designs.
// Constructed once at process start and injected into handlers; there is no
// package-level instance.
package store

import (
	"sort"
	"sync"
	"time"

	apperrors "appdesigner/internal/common/errors"
	"appdesigner/internal/models"
)

// User is a minimal account record kept alongside designs for stats.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// DesignSummary is the list/stats projection of a stored document.
type DesignSummary struct {
	ID                  string    `json:"id"`
	AppType             string    `json:"appType"`
	ScreenCount         int       `json:"screenCount"`
	CreatedAt           time.Time `json:"createdAt"`
	EstimatedComplexity string    `json:"estimatedComplexity"`
}

type Stats struct {
	TotalDesigns  int             `json:"totalDesigns"`
	TotalUsers    int             `json:"totalUsers"`
	RecentDesigns []DesignSummary `json:"recentDesigns"`
}

// Store holds documents keyed by id. All access goes through the mutex, so
// a document is never partially visible and per-key updates serialize.
type Store struct {
	mu      sync.RWMutex
	designs map[string]*models.DesignDocument
	users   map[string]*User
}

func New() *Store {
	return &Store{
		designs: make(map[string]*models.DesignDocument),
		users:   make(map[string]*User),
	}
}

// SaveDesign inserts a fully synthesized document. Timestamps are assigned
// here; the stored copy is detached from the caller's value.
func (s *Store) SaveDesign(doc *models.DesignDocument) *models.DesignDocument {
	now := time.Now().UTC()

	kept := doc.Clone()
	kept.CreatedAt = now
	kept.UpdatedAt = now

	s.mu.Lock()
	s.designs[kept.ID] = kept
	s.mu.Unlock()

	return kept.Clone()
}

func (s *Store) GetDesign(id string) (*models.DesignDocument, error) {
	s.mu.RLock()
	doc, ok := s.designs[id]
	s.mu.RUnlock()

	if !ok {
		return nil, apperrors.NewNotFoundError(id)
	}
	return doc.Clone(), nil
}

// ListDesigns returns summaries of every stored document, newest first.
func (s *Store) ListDesigns() []DesignSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.summariesLocked(0)
}

// UpdateDesign applies mutate to the stored document under the lock. The id
// and creation timestamp survive whatever mutate does; updatedAt refreshes.
func (s *Store) UpdateDesign(id string, mutate func(*models.DesignDocument)) (*models.DesignDocument, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.designs[id]
	if !ok {
		return nil, apperrors.NewNotFoundError(id)
	}

	mutate(doc)
	doc.ID = id
	doc.UpdatedAt = time.Now().UTC()

	return doc.Clone(), nil
}

func (s *Store) DeleteDesign(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.designs[id]; !ok {
		return apperrors.NewNotFoundError(id)
	}
	delete(s.designs, id)
	return nil
}

func (s *Store) SaveUser(u *User) {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	s.mu.Lock()
	s.users[u.ID] = u
	s.mu.Unlock()
}

func (s *Store) GetUser(id string) (*User, bool) {
	s.mu.RLock()
	u, ok := s.users[id]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	copied := *u
	return &copied, true
}

// GetStats reports store totals plus the ten most recent designs.
func (s *Store) GetStats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Stats{
		TotalDesigns:  len(s.designs),
		TotalUsers:    len(s.users),
		RecentDesigns: s.summariesLocked(10),
	}
}

// summariesLocked builds newest-first summaries; limit 0 means all.
// Caller must hold at least the read lock.
func (s *Store) summariesLocked(limit int) []DesignSummary {
	out := make([]DesignSummary, 0, len(s.designs))
	for _, doc := range s.designs {
		out = append(out, DesignSummary{
			ID:                  doc.ID,
			AppType:             doc.Requirements.AppType,
			ScreenCount:         len(doc.Screens),
			CreatedAt:           doc.CreatedAt,
			EstimatedComplexity: doc.Requirements.EstimatedComplexity,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
