package assets

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"siteforge_server/internal/types"
)

var (
	// ErrStaleHandle reports a handle whose set has since been replaced or
	// revoked. Handlers translate it to 410 Gone.
	ErrStaleHandle = errors.New("asset handle has been revoked")
	// ErrUnknownAsset reports a name absent from the live set.
	ErrUnknownAsset = errors.New("no asset with that name")
)

// Asset is the runtime projection of one code file: addressable bytes with
// an inferred content type and a revocable handle URI.
type Asset struct {
	Name     string
	MimeType string
	Content  []byte
	Handle   string
}

// Arena owns the materialized assets of one preview session. At most one
// handle set is live at a time: Materialize revokes the previous set before
// minting the next, and Revoke drops everything. The whole set always
// transitions together; assets are never patched individually.
type Arena struct {
	mu      sync.RWMutex
	session string
	token   string
	assets  map[string]Asset
}

// NewArena creates an empty arena for the given session. Nothing is live
// until the first Materialize call.
func NewArena(sessionID string) *Arena {
	return &Arena{session: sessionID}
}

// Materialize replaces the arena contents with one asset per file. Rotating
// the token invalidates every handle minted for the previous file set in
// one step. Duplicate names collide last-write-wins, matching the archive
// semantics.
func (a *Arena) Materialize(files []types.CodeFile) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.token = uuid.NewString()
	a.assets = make(map[string]Asset, len(files))
	for _, f := range files {
		a.assets[f.Name] = Asset{
			Name:     f.Name,
			MimeType: MimeType(f.Name),
			Content:  []byte(f.Content),
			Handle:   fmt.Sprintf("/project/%s/assets/%s?v=%s", a.session, f.Name, a.token),
		}
	}
}

// Lookup resolves a name and handle token to a live asset. A token from a
// replaced or revoked set fails with ErrStaleHandle even if the name still
// exists in the current set.
func (a *Arena) Lookup(name, token string) (Asset, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.token == "" || token != a.token {
		return Asset{}, ErrStaleHandle
	}
	asset, ok := a.assets[name]
	if !ok {
		return Asset{}, ErrUnknownAsset
	}
	return asset, nil
}

// Handles returns the live name-to-handle table, the lookup side of the
// reference rewriter.
func (a *Arena) Handles() map[string]string {
	a.mu.RLock()
	defer a.mu.RUnlock()

	handles := make(map[string]string, len(a.assets))
	for name, asset := range a.assets {
		handles[name] = asset.Handle
	}
	return handles
}

// Revoke invalidates every live handle and drops the asset bytes. Safe to
// call on an already empty arena.
func (a *Arena) Revoke() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.token = ""
	a.assets = nil
}
