package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"time"

	bolt "go.etcd.io/bbolt"
)

const sessionBucket = "session"

// BoltStore is a file-backed Store. The session survives process restarts
// and is removed only by an explicit Clear.
type BoltStore struct {
	db *bolt.DB
}

// NewBoltStore opens (creating if needed) the session database at dbFile.
func NewBoltStore(dbFile string) (*BoltStore, error) {
	if err := os.MkdirAll(path.Dir(dbFile), 0o700); err != nil {
		return nil, fmt.Errorf("creating session store directory: %w", err)
	}

	db, err := bolt.Open(dbFile, 0o600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening session store %s: %w", dbFile, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(sessionBucket))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("initializing session store: %w", err)
	}

	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Token() string {
	var token string
	_ = s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket([]byte(sessionBucket)).Get([]byte(KeyToken)); v != nil {
			token = string(v)
		}
		return nil
	})
	return token
}

func (s *BoltStore) Current() (Session, error) {
	var sess Session
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(sessionBucket))

		token := b.Get([]byte(KeyToken))
		if token == nil {
			return ErrAuthenticationRequired
		}
		sess.Token = string(token)
		sess.UserName = string(b.Get([]byte(KeyUserName)))
		sess.UserEmail = string(b.Get([]byte(KeyUserEmail)))

		// roles are stored as a JSON array so the list round-trips intact
		if v := b.Get([]byte(KeyUserRoles)); v != nil {
			if err := json.Unmarshal(v, &sess.Roles); err != nil {
				return fmt.Errorf("decoding cached roles: %w", err)
			}
		}
		return nil
	})
	return sess, err
}

func (s *BoltStore) Save(sess Session) error {
	roles, err := json.Marshal(sess.Roles)
	if err != nil {
		return fmt.Errorf("encoding roles: %w", err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(sessionBucket))
		if err := b.Put([]byte(KeyToken), []byte(sess.Token)); err != nil {
			return err
		}
		if err := b.Put([]byte(KeyUserName), []byte(sess.UserName)); err != nil {
			return err
		}
		if err := b.Put([]byte(KeyUserEmail), []byte(sess.UserEmail)); err != nil {
			return err
		}
		return b.Put([]byte(KeyUserRoles), roles)
	})
}

func (s *BoltStore) Clear() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket([]byte(sessionBucket)); err != nil {
			return err
		}
		_, err := tx.CreateBucket([]byte(sessionBucket))
		return err
	})
}

// Close releases the underlying database file.
func (s *BoltStore) Close() error {
	return s.db.Close()
}
