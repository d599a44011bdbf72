package figma

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"appdesigner/internal/common/logger"
	"appdesigner/internal/models"
	"appdesigner/internal/store"
)

func storedDesign(t *testing.T, st *store.Store) *models.DesignDocument {
	t.Helper()
	doc := &models.DesignDocument{
		ID: "design-1",
		Requirements: models.Requirements{
			AppType:             "e-commerce",
			EstimatedComplexity: "medium",
		},
		Screens: []models.Screen{
			{ID: "s1", Name: "home", Type: "home", Components: []string{"Header", "Hero", "ProductGrid"}},
			{ID: "s2", Name: "cart", Type: "cart", Components: []string{"Header", "CartItems"}},
			{ID: "s3", Name: "profile", Type: "profile", Components: []string{"Header"}},
		},
	}
	return st.SaveDesign(doc)
}

func newTestClient(baseURL string, st *store.Store) *Client {
	return NewClient(baseURL, 2*time.Second, st, logger.NewNoOpLogger())
}

func TestCreateDesignFilePagesAndFrames(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/me", r.URL.Path)
		assert.Equal(t, "user-token", r.Header.Get("X-Figma-Token"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	st := store.New()
	storedDesign(t, st)
	c := newTestClient(srv.URL, st)

	result, err := c.CreateDesignFile(context.Background(), "design-1", "user-token")
	require.NoError(t, err)

	assert.Contains(t, result.FileKey, "figma-")
	assert.Equal(t, "https://www.figma.com/file/"+result.FileKey, result.URL)
	assert.Equal(t, "e-commerce - Generated Design", result.Name)

	require.Len(t, result.Pages, 3)
	for _, page := range result.Pages {
		assert.Equal(t, "CANVAS", page.Type)
		require.Len(t, page.Children, 2)

		mobile, desktop := page.Children[0], page.Children[1]
		assert.Equal(t, 375, mobile.Width)
		assert.Equal(t, 812, mobile.Height)
		assert.Equal(t, 1440, desktop.Width)
		assert.Equal(t, 1024, desktop.Height)
	}
}

func TestCreateDesignFileGeometry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	st := store.New()
	storedDesign(t, st)
	c := newTestClient(srv.URL, st)

	result, err := c.CreateDesignFile(context.Background(), "design-1", "user-token")
	require.NoError(t, err)

	home := result.Pages[0]
	mobile, desktop := home.Children[0], home.Children[1]

	nodes := func(f Frame) map[string]Node {
		out := map[string]Node{}
		for _, n := range f.Children {
			out[n.Name] = n
		}
		return out
	}

	m := nodes(mobile)
	assert.Equal(t, Node{
		ID: "s1-Header-mobile", Name: "Header", Type: "RECTANGLE",
		Width: 375, Height: 60, X: 0, Y: 0,
		Fills: []Fill{{Type: "SOLID", Color: RGB{R: 0.9, G: 0.9, B: 0.9}}},
	}, m["Header"])
	assert.Equal(t, 375, m["Hero"].Width)
	assert.Equal(t, 400, m["Hero"].Height)
	assert.Equal(t, 60, m["Hero"].Y)
	assert.Equal(t, 600, m["ProductGrid"].Height)
	assert.Equal(t, 460, m["ProductGrid"].Y)
	assert.Equal(t, 0, m["ProductGrid"].X)

	d := nodes(desktop)
	assert.Equal(t, 1440, d["Header"].Width)
	assert.Equal(t, 1200, d["ProductGrid"].Width)
	assert.Equal(t, 120, d["ProductGrid"].X)

	// Unknown component names land on the 200x100-at-origin default.
	cart := result.Pages[1]
	cm := nodes(cart.Children[0])
	assert.Equal(t, 200, cm["CartItems"].Width)
	assert.Equal(t, 100, cm["CartItems"].Height)
	assert.Equal(t, 0, cm["CartItems"].X)
	assert.Equal(t, 0, cm["CartItems"].Y)
}

func TestCreateDesignFileUnknownDesign(t *testing.T) {
	st := store.New()
	c := newTestClient("http://127.0.0.1:0", st)

	_, err := c.CreateDesignFile(context.Background(), "missing", "token")
	assert.Error(t, err)
}

func TestCreateDesignFileRejectedToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	st := store.New()
	storedDesign(t, st)
	c := newTestClient(srv.URL, st)

	_, err := c.CreateDesignFile(context.Background(), "design-1", "bad-token")
	assert.Error(t, err)
}

func TestCreateDesignFileTokenCheckBestEffort(t *testing.T) {
	// Unreachable verification endpoint must not block the export.
	st := store.New()
	storedDesign(t, st)
	c := newTestClient("http://127.0.0.1:0", st)

	result, err := c.CreateDesignFile(context.Background(), "design-1", "token")
	require.NoError(t, err)
	assert.Len(t, result.Pages, 3)
}

func TestUpdateFileAcknowledges(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, store.New())

	result, err := c.UpdateFile(context.Background(), "figma-123", map[string]interface{}{"name": "renamed"}, "token")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "File update queued", result.Message)
}
