package ddragon

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newFeedServer(t *testing.T, body string, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
}

// A reachable feed upgrades the holder exactly once.
func TestVersionHolderResolves(t *testing.T) {
	server := newFeedServer(t, `["15.1.1","14.24.1","14.23.1"]`, http.StatusOK)
	defer server.Close()

	holder := NewVersionHolder(&VersionHolderDeps{FeedURL: server.URL})

	// The fallback is usable before anything resolves.
	assert.Equal(t, FallbackVersion, holder.Current())
	assert.False(t, holder.Resolved())

	holder.ResolveBlocking()
	assert.Equal(t, "15.1.1", holder.Current())
	assert.True(t, holder.Resolved())
}

// Any feed failure is terminal for the session: the fallback stays and no
// second attempt happens.
func TestVersionHolderFailuresKeepFallback(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"malformed body", `{"not":"a list"}`, http.StatusOK},
		{"empty list", `[]`, http.StatusOK},
		{"garbage body", `boom`, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newFeedServer(t, tt.body, tt.status)
			defer server.Close()

			holder := NewVersionHolder(&VersionHolderDeps{FeedURL: server.URL})
			holder.ResolveBlocking()

			assert.Equal(t, FallbackVersion, holder.Current())
			assert.False(t, holder.Resolved())
		})
	}
}

func TestVersionHolderUnreachableFeed(t *testing.T) {
	server := newFeedServer(t, `[]`, http.StatusOK)
	server.Close()

	holder := NewVersionHolder(&VersionHolderDeps{FeedURL: server.URL})
	holder.ResolveBlocking()

	assert.Equal(t, FallbackVersion, holder.Current())
	assert.False(t, holder.Resolved())
}

// The resolution is one-shot: a later healthy feed can't revive a session
// that already failed.
func TestVersionHolderResolvesOnce(t *testing.T) {
	server := newFeedServer(t, `[]`, http.StatusOK)
	defer server.Close()

	holder := NewVersionHolder(&VersionHolderDeps{FeedURL: server.URL})
	holder.ResolveBlocking()
	assert.False(t, holder.Resolved())

	// Second attempt is a no-op even though the URL is still reachable.
	holder.ResolveBlocking()
	holder.Resolve()
	assert.Equal(t, FallbackVersion, holder.Current())
	assert.False(t, holder.Resolved())
}

func TestFetchVersionsCapsAtThree(t *testing.T) {
	server := newFeedServer(t, `["1","2","3","4","5"]`, http.StatusOK)
	defer server.Close()

	versions, err := FetchVersions(server.URL)
	assert.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, versions)
}
