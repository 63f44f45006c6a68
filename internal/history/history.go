// Package history records recently viewed topics in a bbolt database.
package history

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	json "github.com/goccy/go-json"
	"go.etcd.io/bbolt"

	"github.com/tessro/stepwise/internal/errors"
)

var viewedBucket = []byte("viewed")

// MaxEntries bounds the bucket; older views are pruned on write.
const MaxEntries = 200

// Entry is one viewed topic.
type Entry struct {
	TopicID  string    `json:"topic_id"`
	Title    string    `json:"title"`
	ViewedAt time.Time `json:"viewed_at"`
}

// Store is a bbolt-backed history of viewed topics, most recent first.
type Store struct {
	db  *bbolt.DB
	now func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithNow overrides the clock used to stamp entries.
func WithNow(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// Open opens or creates the history database at path.
func Open(path string, opts ...Option) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrHistoryUnavailable, err)
	}

	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("%w: could not open bbolt database: %v", errors.ErrHistoryUnavailable, err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(viewedBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: could not create bucket: %v", errors.ErrHistoryUnavailable, err)
	}

	s := &Store{db: db, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// keyLayout is RFC3339 with fixed-width nanoseconds so byte order matches
// time order.
const keyLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Keys sort chronologically: keyLayout in UTC, then the topic id.
func entryKey(t time.Time, topicID string) []byte {
	return []byte(fmt.Sprintf("%s:%s", t.UTC().Format(keyLayout), topicID))
}

// keyTopic extracts the topic id. Timestamps contain colons, so split on
// the last one; topic ids never do.
func keyTopic(k []byte) []byte {
	i := bytes.LastIndexByte(k, ':')
	if i < 0 {
		return nil
	}
	return k[i+1:]
}

// Record marks a topic as viewed now, moving it to the front.
func (s *Store) Record(topicID, title string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(viewedBucket)

		if err := deleteTopic(b, topicID); err != nil {
			return err
		}

		entry := Entry{TopicID: topicID, Title: title, ViewedAt: s.now()}
		value, err := json.Marshal(entry)
		if err != nil {
			return fmt.Errorf("error serializing history entry: %w", err)
		}
		if err := b.Put(entryKey(entry.ViewedAt, topicID), value); err != nil {
			return err
		}
		return prune(b, MaxEntries)
	})
}

func deleteTopic(b *bbolt.Bucket, topicID string) error {
	id := []byte(topicID)
	c := b.Cursor()
	for k, _ := c.First(); k != nil; k, _ = c.Next() {
		if bytes.Equal(keyTopic(k), id) {
			return c.Delete()
		}
	}
	return nil
}

func prune(b *bbolt.Bucket, keep int) error {
	excess := -keep
	c := b.Cursor()
	for k, _ := c.First(); k != nil; k, _ = c.Next() {
		excess++
	}
	for k, _ := c.First(); k != nil && excess > 0; k, _ = c.First() {
		if err := c.Delete(); err != nil {
			return err
		}
		excess--
	}
	return nil
}

// Recent returns up to limit entries, most recent first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	var entries []Entry

	err := s.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket(viewedBucket).Cursor()
		for k, v := c.Last(); k != nil && len(entries) < limit; k, v = c.Prev() {
			var entry Entry
			if err := json.Unmarshal(v, &entry); err != nil {
				return fmt.Errorf("error deserializing history entry: %w", err)
			}
			entries = append(entries, entry)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Clear removes every entry.
func (s *Store) Clear() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(viewedBucket); err != nil {
			return err
		}
		_, err := tx.CreateBucket(viewedBucket)
		return err
	})
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
