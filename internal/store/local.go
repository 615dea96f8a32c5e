// Package store keeps a local copy of the question-bank document (the
// offline backup of the shared store) and implements the publish flow
// that pushes edited banks back with a version bump.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"github.com/harrison/podassess/internal/models"
)

// backupFile is the cache file name inside the tool home directory.
const backupFile = "bank-backup.json"

// backup is the on-disk envelope: the document plus when and from which
// bin it was saved.
type backup struct {
	Data      *models.Document `json:"data"`
	Timestamp time.Time        `json:"timestamp"`
	BinID     string           `json:"binId,omitempty"`
}

// Cache is a flock-guarded local document cache. Writes are atomic
// (temp file then rename) so concurrent readers never see a partial
// document.
type Cache struct {
	dir string
}

// NewCache creates a cache rooted at dir, creating it if needed.
func NewCache(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}
	return &Cache{dir: dir}, nil
}

// Path returns the backup file location.
func (c *Cache) Path() string {
	return filepath.Join(c.dir, backupFile)
}

func (c *Cache) lockPath() string {
	return c.Path() + ".lock"
}

// Save stores the document locally, stamped with the current time.
func (c *Cache) Save(doc *models.Document, binID string) error {
	data, err := json.MarshalIndent(backup{Data: doc, Timestamp: time.Now().UTC(), BinID: binID}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal backup: %w", err)
	}

	lock := flock.New(c.lockPath())
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("acquire backup lock: %w", err)
	}
	defer lock.Unlock()

	return atomicWrite(c.Path(), data)
}

// Load reads the cached document and its save time. A missing cache is
// reported via os.IsNotExist on the returned error.
func (c *Cache) Load() (*models.Document, time.Time, error) {
	lock := flock.New(c.lockPath())
	if err := lock.RLock(); err != nil {
		return nil, time.Time{}, fmt.Errorf("acquire backup lock: %w", err)
	}
	defer lock.Unlock()

	data, err := os.ReadFile(c.Path())
	if err != nil {
		return nil, time.Time{}, err
	}

	var b backup
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, time.Time{}, fmt.Errorf("parse backup: %w", err)
	}
	if b.Data == nil {
		return nil, time.Time{}, fmt.Errorf("backup contains no document")
	}
	return b.Data, b.Timestamp, nil
}

// atomicWrite writes data via a temp file in the target directory and a
// rename, so a crash mid-write leaves the previous file intact.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
