// Package lifecycle applies state transitions to properties, rentals, contact
// requests, favorites, messages and user accounts. Every mutating operation
// asks the policy evaluator first and then runs its writes, including
// cascades, inside one store transaction.
package lifecycle

import (
	"context"
	"io"

	"renthub/logger"
	"renthub/policy"
	"renthub/store"
)

// ImageStore keeps the binary of property images. Upload returns the object
// key (used for deletion) and the public URL.
type ImageStore interface {
	Upload(ctx context.Context, propertyID int64, filename, contentType string, body io.Reader) (key, url string, err error)
	Delete(ctx context.Context, key string) error
}

type Manager struct {
	db     store.Database
	images ImageStore
}

// NewManager wires the manager. images may be nil; image uploads then fail
// with apperr.ErrUnavailable.
func NewManager(db store.Database, images ImageStore) *Manager {
	return &Manager{db: db, images: images}
}

func (m *Manager) authorize(p policy.Principal, action policy.Action, r policy.Resource) error {
	if err := policy.Authorize(p, action, r); err != nil {
		logger.Debug("access denied", "principal", p.ID, "role", p.Role, "action", string(action), "err", err.Error())
		return err
	}
	return nil
}

// removeObjects deletes stored images after the rows are gone. Failures
// only leave orphaned objects behind, so they are logged and dropped.
func (m *Manager) removeObjects(ctx context.Context, keys []string) {
	if m.images == nil {
		return
	}
	for _, key := range keys {
		if err := m.images.Delete(ctx, key); err != nil {
			logger.Warn("image cleanup failed", "key", key, "err", err.Error())
		}
	}
}
