package ddragon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"riftrewind/pkg/logger"
	"riftrewind/pkg/redis"
	"riftrewind/pkg/requests"
)

// VersionHolder owns the session-wide data version. It is pre-seeded with the
// fallback and upgraded at most once by a fire-and-forget feed resolution.
// Callers never wait: Current always returns a usable version immediately.
type VersionHolder struct {
	mu       sync.RWMutex
	version  string
	resolved bool
	once     sync.Once

	feedURL string
	redis   *redis.RedisClient
	log     *logger.NewLogger
}

// VersionHolderDeps is the dependency list for the version holder.
// Redis and Logger are optional, FeedURL defaults to the ddragon feed.
type VersionHolderDeps struct {
	FeedURL string
	Redis   *redis.RedisClient
	Logger  *logger.NewLogger
}

// NewVersionHolder creates a holder seeded with the fallback version.
func NewVersionHolder(deps *VersionHolderDeps) *VersionHolder {
	h := &VersionHolder{
		version: FallbackVersion,
		feedURL: versionURL,
	}
	if deps != nil {
		if deps.FeedURL != "" {
			h.feedURL = deps.FeedURL
		}
		h.redis = deps.Redis
		h.log = deps.Logger
	}
	return h
}

// Current returns the version in effect right now.
func (h *VersionHolder) Current() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.version
}

// Resolved reports whether a real feed version replaced the fallback.
func (h *VersionHolder) Resolved() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.resolved
}

// Resolve triggers the one-shot background resolution. Safe to call from any
// goroutine and any number of times, only the first call does work. A failed
// fetch is terminal for the session: the fallback stays, nothing retries.
func (h *VersionHolder) Resolve() {
	h.once.Do(func() {
		go h.resolve()
	})
}

// ResolveBlocking runs the same one-shot resolution synchronously.
// Used by the scheduler, which has no render loop to hide latency behind.
func (h *VersionHolder) ResolveBlocking() {
	h.once.Do(h.resolve)
}

func (h *VersionHolder) resolve() {
	// The warm cache is shared by the whole fleet, so prefer it.
	if h.redis != nil {
		if v, err := h.redis.ListFront(context.Background(), versionKey); err == nil && v != "" {
			h.upgrade(v)
			return
		}
	}

	versions, err := FetchVersions(h.feedURL)
	if err != nil {
		// The fallback stays in effect, but the failure must be
		// visible for diagnostics.
		if h.log != nil {
			h.log.Errorf("version feed resolution failed, keeping fallback %s: %v", FallbackVersion, err)
		}
		return
	}

	h.upgrade(versions[0])

	if h.redis != nil {
		if err := h.redis.ReplaceList(context.Background(), versionKey, versions); err != nil && h.log != nil {
			h.log.Errorf("couldn't warm the version cache: %v", err)
		}
	}
}

func (h *VersionHolder) upgrade(version string) {
	h.mu.Lock()
	h.version = version
	h.resolved = true
	h.mu.Unlock()
}

// FetchVersions fetches the versions feed and returns the newest entries,
// capped at three like the warm cache keeps them.
func FetchVersions(feedURL string) ([]string, error) {
	if feedURL == "" {
		feedURL = versionURL
	}

	resp, err := requests.Request(feedURL, "GET")
	if err != nil {
		return nil, fmt.Errorf("couldn't get the current version: %w", err)
	}
	defer resp.Body.Close()

	var versions []string
	if err := json.NewDecoder(resp.Body).Decode(&versions); err != nil {
		return nil, fmt.Errorf("couldn't convert the body to json: %w", err)
	}

	if len(versions) == 0 {
		return nil, errors.New("no versions available")
	}

	if len(versions) > 3 {
		versions = versions[:3]
	}
	return versions, nil
}

// RevalidateVersionCache refreshes the Redis warm cache from the feed.
// Used by the scheduler so gateway instances share one feed fetch per day.
func RevalidateVersionCache(client *redis.RedisClient) error {
	versions, err := FetchVersions("")
	if err != nil {
		return err
	}
	return client.ReplaceList(context.Background(), versionKey, versions)
}
