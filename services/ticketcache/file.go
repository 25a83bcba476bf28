package ticketcache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"flywise/models"
	"flywise/utils"

	"go.uber.org/zap"
)

// FileCache keeps one JSON file per phone number under a spool directory.
// It is the fallback backend for deployments without Redis.
type FileCache struct {
	mu  sync.Mutex
	dir string
	ttl time.Duration
}

func NewFileCache(dir string, ttl time.Duration) (*FileCache, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create ticket cache dir: %w", err)
	}
	return &FileCache{dir: dir, ttl: ttl}, nil
}

func (c *FileCache) path(phone string) string {
	return filepath.Join(c.dir, utils.NormalizePhone(phone)+".json")
}

// Store writes the record to a temp file and renames it into place, so a
// concurrent read never observes a half-written record.
func (c *FileCache) Store(_ context.Context, phone string, ticket *models.TicketDetails, comparison *models.PriceComparison) error {
	record := newRecord(utils.NormalizePhone(phone), ticket, comparison, c.ttl)
	b, err := json.Marshal(record)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	tmp, err := os.CreateTemp(c.dir, "ticket-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp ticket file: %w", err)
	}
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write ticket file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close ticket file: %w", err)
	}
	if err := os.Rename(tmp.Name(), c.path(phone)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("publish ticket file: %w", err)
	}
	return nil
}

// Get treats a missing file, unreadable JSON and an expired record all as
// a cache miss; the latter two also delete the file.
func (c *FileCache) Get(_ context.Context, phone string) (*models.TicketRecord, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	path := c.path(phone)
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	var record models.TicketRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		utils.GetLogger().Warn("Dropping corrupt ticket cache file", zap.String("path", path))
		os.Remove(path)
		return nil, false
	}
	if record.Expired() {
		os.Remove(path)
		return nil, false
	}
	return &record, true
}

func (c *FileCache) Clear(_ context.Context, phone string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	err := os.Remove(c.path(phone))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// CleanupExpired removes expired and stranded files, returning how many
// were deleted.
func (c *FileCache) CleanupExpired(_ context.Context) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return 0, err
	}
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(c.dir, entry.Name())
		raw, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var record models.TicketRecord
		if err := json.Unmarshal(raw, &record); err != nil || record.Expired() {
			if os.Remove(path) == nil {
				removed++
			}
		}
	}
	return removed, nil
}
