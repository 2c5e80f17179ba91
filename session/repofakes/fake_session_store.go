package fakesessionstore

import (
	"sync"

	"github.com/marketdesk/sellerctl/session"
)

var _ session.Store = (*FakeSessionStore)(nil)

// FakeSessionStore is an in-memory session.Store for tests. LoadErr, SaveErr
// and ClearErr can be set to simulate storage failures.
type FakeSessionStore struct {
	lock     sync.RWMutex
	stored   *session.Session
	LoadErr  error
	SaveErr  error
	ClearErr error

	SaveCalls  int
	ClearCalls int
}

func NewFakeSessionStore() *FakeSessionStore {
	return &FakeSessionStore{}
}

func (fs *FakeSessionStore) Load() (*session.Session, error) {
	fs.lock.RLock()
	defer fs.lock.RUnlock()

	if fs.LoadErr != nil {
		return nil, fs.LoadErr
	}
	if fs.stored == nil {
		return nil, nil
	}
	copied := *fs.stored
	return &copied, nil
}

func (fs *FakeSessionStore) Save(s *session.Session) error {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	fs.SaveCalls++
	if fs.SaveErr != nil {
		return fs.SaveErr
	}
	copied := *s
	fs.stored = &copied
	return nil
}

func (fs *FakeSessionStore) Clear() error {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	fs.ClearCalls++
	if fs.ClearErr != nil {
		return fs.ClearErr
	}
	fs.stored = nil
	return nil
}

// Seed installs a session directly, bypassing Save bookkeeping.
func (fs *FakeSessionStore) Seed(s *session.Session) {
	fs.lock.Lock()
	defer fs.lock.Unlock()
	fs.stored = s
}

// Stored returns the currently persisted session.
func (fs *FakeSessionStore) Stored() *session.Session {
	fs.lock.RLock()
	defer fs.lock.RUnlock()
	return fs.stored
}
