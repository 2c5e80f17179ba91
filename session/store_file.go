package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

const (
	tokenFileName   = "sellerToken"
	profileFileName = "sellerData.json"
)

// FileStore persists the session as two entries in a data folder: the raw
// token and the serialized seller profile. The pair is always written and
// cleared together. No expiry is stored; the backend rejecting the token is
// what ends a session.
type FileStore struct {
	tokenPath   string
	profilePath string
}

var _ Store = (*FileStore)(nil)

// NewFileStore creates the data folder if needed and returns a store rooted
// in it.
func NewFileStore(folder string) (*FileStore, error) {
	if folder == "" {
		return nil, errors.New("[NewFileStore] folder is required")
	}
	if err := os.MkdirAll(folder, 0o700); err != nil {
		return nil, errors.Wrap(err, "[NewFileStore] os.MkdirAll")
	}
	return &FileStore{
		tokenPath:   filepath.Join(folder, tokenFileName),
		profilePath: filepath.Join(folder, profileFileName),
	}, nil
}

// Load reads the persisted pair. A missing token is an empty session. A token
// without a parseable profile is a broken pair: the leftovers are discarded
// and an empty session is returned.
func (fs *FileStore) Load() (*Session, error) {
	rawToken, err := os.ReadFile(fs.tokenPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, errors.Wrap(err, "[FileStore.Load] read token")
	}

	token := strings.TrimSpace(string(rawToken))
	if token == "" {
		_ = fs.Clear()
		return nil, nil
	}

	rawProfile, err := os.ReadFile(fs.profilePath)
	if err != nil {
		_ = fs.Clear()
		return nil, nil
	}

	var profile SellerProfile
	if err := json.Unmarshal(rawProfile, &profile); err != nil {
		_ = fs.Clear()
		return nil, nil
	}

	return &Session{Token: token, Profile: &profile}, nil
}

// Save writes both halves of the session.
func (fs *FileStore) Save(session *Session) error {
	if !session.Valid() {
		return errors.New("[FileStore.Save] refusing to persist a partial session")
	}

	rawProfile, err := json.Marshal(session.Profile)
	if err != nil {
		return errors.Wrap(err, "[FileStore.Save] marshal profile")
	}
	if err := os.WriteFile(fs.tokenPath, []byte(session.Token), 0o600); err != nil {
		return errors.Wrap(err, "[FileStore.Save] write token")
	}
	if err := os.WriteFile(fs.profilePath, rawProfile, 0o600); err != nil {
		return errors.Wrap(err, "[FileStore.Save] write profile")
	}
	return nil
}

// Clear removes both halves of the session.
func (fs *FileStore) Clear() error {
	var firstErr error
	for _, path := range []string{fs.tokenPath, fs.profilePath} {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) && firstErr == nil {
			firstErr = errors.Wrap(err, "[FileStore.Clear] os.Remove")
		}
	}
	return firstErr
}
