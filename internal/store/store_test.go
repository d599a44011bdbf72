package store

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "appdesigner/internal/common/errors"
	"appdesigner/internal/models"
)

func sampleDoc(id, appType string, screens int) *models.DesignDocument {
	doc := &models.DesignDocument{
		ID: id,
		Requirements: models.Requirements{
			AppType:             appType,
			EstimatedComplexity: models.ComplexityMedium,
		},
	}
	for i := 0; i < screens; i++ {
		doc.Screens = append(doc.Screens, models.Screen{
			ID:   fmt.Sprintf("%s-screen-%d", id, i),
			Name: fmt.Sprintf("screen-%d", i),
		})
	}
	return doc
}

func TestSaveAndGetRoundTrip(t *testing.T) {
	s := New()
	saved := s.SaveDesign(sampleDoc("d1", "e-commerce", 3))

	got, err := s.GetDesign("d1")
	require.NoError(t, err)
	assert.Equal(t, saved, got)
	assert.False(t, got.CreatedAt.IsZero())
	assert.True(t, got.UpdatedAt.Equal(got.CreatedAt) || got.UpdatedAt.After(got.CreatedAt))
}

func TestGetReturnsDetachedCopy(t *testing.T) {
	s := New()
	s.SaveDesign(sampleDoc("d1", "e-commerce", 2))

	first, err := s.GetDesign("d1")
	require.NoError(t, err)
	first.Screens[0].Name = "mutated"
	first.Requirements.AppType = "mutated"

	second, err := s.GetDesign("d1")
	require.NoError(t, err)
	assert.Equal(t, "screen-0", second.Screens[0].Name)
	assert.Equal(t, "e-commerce", second.Requirements.AppType)
}

func TestGetUnknownDesign(t *testing.T) {
	s := New()
	_, err := s.GetDesign("missing")
	require.Error(t, err)

	var stdErr *apperrors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, apperrors.ErrCodeDesignNotFound, stdErr.Code)
}

func TestUpdateDesignPreservesIdentity(t *testing.T) {
	s := New()
	saved := s.SaveDesign(sampleDoc("d1", "social", 1))

	time.Sleep(5 * time.Millisecond)

	updated, err := s.UpdateDesign("d1", func(doc *models.DesignDocument) {
		doc.ID = "hijacked"
		doc.Requirements.AppType = "fitness"
	})
	require.NoError(t, err)

	assert.Equal(t, "d1", updated.ID)
	assert.Equal(t, "fitness", updated.Requirements.AppType)
	assert.True(t, updated.CreatedAt.Equal(saved.CreatedAt))
	assert.True(t, updated.UpdatedAt.After(saved.UpdatedAt))

	_, err = s.UpdateDesign("missing", func(*models.DesignDocument) {})
	assert.Error(t, err)
}

func TestDeleteDesign(t *testing.T) {
	s := New()
	s.SaveDesign(sampleDoc("d1", "food", 1))

	require.NoError(t, s.DeleteDesign("d1"))
	_, err := s.GetDesign("d1")
	assert.Error(t, err)
	assert.Error(t, s.DeleteDesign("d1"))
}

func TestListDesignsNewestFirst(t *testing.T) {
	s := New()
	for i := 0; i < 3; i++ {
		s.SaveDesign(sampleDoc(fmt.Sprintf("d%d", i), "travel", i+1))
		time.Sleep(2 * time.Millisecond)
	}

	list := s.ListDesigns()
	require.Len(t, list, 3)
	assert.Equal(t, "d2", list[0].ID)
	assert.Equal(t, "d0", list[2].ID)
	assert.Equal(t, 3, list[0].ScreenCount)
}

func TestStatsCapsRecentDesigns(t *testing.T) {
	s := New()
	for i := 0; i < 12; i++ {
		s.SaveDesign(sampleDoc(fmt.Sprintf("d%02d", i), "education", 2))
		time.Sleep(time.Millisecond)
	}
	s.SaveUser(&User{ID: "u1", Email: "a@example.com"})

	stats := s.GetStats()
	assert.Equal(t, 12, stats.TotalDesigns)
	assert.Equal(t, 1, stats.TotalUsers)
	require.Len(t, stats.RecentDesigns, 10)
	assert.Equal(t, "d11", stats.RecentDesigns[0].ID)
}

func TestUsers(t *testing.T) {
	s := New()
	s.SaveUser(&User{ID: "u1", Email: "a@example.com"})

	u, ok := s.GetUser("u1")
	require.True(t, ok)
	assert.Equal(t, "a@example.com", u.Email)
	assert.False(t, u.CreatedAt.IsZero())

	_, ok = s.GetUser("u2")
	assert.False(t, ok)
}

func TestConcurrentAccess(t *testing.T) {
	s := New()
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("d%d", i)
			s.SaveDesign(sampleDoc(id, "finance", 1))
			if _, err := s.GetDesign(id); err != nil {
				t.Error(err)
			}
			s.ListDesigns()
			s.GetStats()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 20, s.GetStats().TotalDesigns)
}
