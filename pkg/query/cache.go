// Package query caches server resources between renders.
//
// Reads are keyed by resource kind, identifier, and filter. Mutations never
// write through: on success they mark matching keys stale so the next read
// refetches the server's truth. Server-computed fields (admin sets, member
// counts) are therefore never guessed client-side. The single sanctioned
// exception is the optimistic team-status patch, see Strategy.
package query

import (
	"context"
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Kind identifies a cached resource collection.
type Kind string

const (
	// KindOrganizations is the current user's organization list.
	KindOrganizations Kind = "organizations"
	// KindOrgUsers is an organization's user list.
	KindOrgUsers Kind = "organization_users"
	// KindProjects is the project list.
	KindProjects Kind = "projects"
	// KindProject is a single project with members.
	KindProject Kind = "project"
	// KindTasks is a project's task list.
	KindTasks Kind = "tasks"
	// KindTeamStatus is the team presence list.
	KindTeamStatus Kind = "team_status"
)

// Key addresses one cached read.
type Key struct {
	Kind Kind

	// ID scopes the key to a single resource; zero for collections.
	ID int64

	// Filter is the canonical filter parameter string, e.g. "status=active".
	Filter string
}

// String returns the canonical cache key.
func (k Key) String() string {
	s := fmt.Sprintf("%s/%d", k.Kind, k.ID)
	if k.Filter != "" {
		s += "?" + k.Filter
	}
	return s
}

type entry struct {
	key   Key
	val   any
	stale bool
}

// Cache is the process-wide query cache.
type Cache struct {
	mu      sync.Mutex
	entries *lru.Cache[string, *entry]
}

// DefaultSize is the default number of cached reads.
const DefaultSize = 128

// New returns a cache holding up to size reads.
func New(size int) *Cache {
	if size <= 0 {
		size = DefaultSize
	}
	c := &Cache{}
	c.entries, _ = lru.New[string, *entry](size)
	return c
}

// lookup returns the fresh cached value for key, if any.
func (c *Cache) lookup(key Key) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries.Get(key.String())
	if !ok || e.stale {
		return nil, false
	}
	return e.val, true
}

func (c *Cache) store(key Key, val any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries.Add(key.String(), &entry{key: key, val: val})
}

// Invalidate marks every entry of the given kinds stale. The next read of a
// matching key refetches.
func (c *Cache) Invalidate(kinds ...Kind) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, ks := range c.entries.Keys() {
		e, ok := c.entries.Peek(ks)
		if !ok {
			continue
		}
		for _, kind := range kinds {
			if e.key.Kind == kind {
				e.stale = true
				break
			}
		}
	}
}

// InvalidateID marks entries of one kind scoped to one identifier stale.
func (c *Cache) InvalidateID(kind Kind, id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, ks := range c.entries.Keys() {
		e, ok := c.entries.Peek(ks)
		if !ok {
			continue
		}
		if e.key.Kind == kind && e.key.ID == id {
			e.stale = true
		}
	}
}

// Patch applies fn to the cached value for key, in place, when present.
// Stale entries are patched too: the pending refetch wins either way.
func (c *Cache) Patch(key Key, fn func(val any) any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries.Peek(key.String()); ok {
		e.val = fn(e.val)
	}
}

// Clear drops every entry. Used on logout.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries.Purge()
}

// Len returns the number of cached reads.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries.Len()
}

// Fetch returns the cached value for key, or runs fetch and caches its
// result when the key is missing or stale.
func Fetch[T any](ctx context.Context, c *Cache, key Key, fetch func(ctx context.Context) (T, error)) (T, error) {
	if v, ok := c.lookup(key); ok {
		if tv, ok := v.(T); ok {
			return tv, nil
		}
	}

	v, err := fetch(ctx)
	if err != nil {
		return v, err
	}
	c.store(key, v)
	return v, nil
}
