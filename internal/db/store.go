package db

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/warungku/warung-service/internal/config"
	"github.com/warungku/warung-service/internal/models"
)

// Collection names. Each collection is one pretty-printed JSON file in
// the data directory, with a shared counters side-file for id allocation.
const (
	CollectionUsers         = "users"
	CollectionFoods         = "foods"
	CollectionDrinks        = "drinks"
	CollectionAnnouncements = "announcements"

	countersFile = "counters"
)

// ErrNotFound is returned when a record id has no matching record
var ErrNotFound = errors.New("record not found")

// Store owns the JSON files backing every collection plus the counters
// side-file. Every mutation is a read-modify-write over a whole
// collection, so all mutating operations are serialized behind a single
// mutex; the file set is small enough that finer locking buys nothing.
type Store struct {
	dataDir   string
	backupDir string

	mu sync.Mutex
}

// New creates a store over the configured data directory. The backup
// directory defaults to <data_dir>/backups.
func New(cfg config.Storage) *Store {
	backupDir := cfg.BackupDir
	if backupDir == "" {
		backupDir = filepath.Join(cfg.DataDir, "backups")
	}
	return &Store{
		dataDir:   cfg.DataDir,
		backupDir: backupDir,
	}
}

// Init creates the data directory and seeds the default dataset on
// first run. Calling it on an already-populated directory is a no-op.
func (s *Store) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	if _, err := os.Stat(s.path(CollectionUsers)); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat data directory: %w", err)
	}

	return s.seed()
}

// View runs fn while holding the store lock, for consistent reads
func (s *Store) View(fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn()
}

// Update runs fn while holding the store lock. Callers load, mutate and
// save inside fn so the whole read-modify-write happens without another
// writer interleaving.
func (s *Store) Update(fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn()
}

// Load reads a collection file into out. Must be called inside View or
// Update.
func (s *Store) Load(collection string, out any) error {
	data, err := os.ReadFile(s.path(collection))
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", collection, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", collection, err)
	}
	return nil
}

// Save writes a collection file. The format is pretty-printed JSON so
// the files stay inspectable by hand. Must be called inside Update.
func (s *Store) Save(collection string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", collection, err)
	}
	if err := os.WriteFile(s.path(collection), append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", collection, err)
	}
	return nil
}

// NextID returns the next id for a collection without advancing the
// counter. Callers persist their record first, then CommitID, so a
// failed write never leaves the counter ahead of the data.
func (s *Store) NextID(collection string) (int, error) {
	var counters models.Counters
	if err := s.Load(countersFile, &counters); err != nil {
		return 0, err
	}
	id := counterFor(&counters, collection)
	if id == nil {
		return 0, fmt.Errorf("no counter for collection %q", collection)
	}
	return *id, nil
}

// CommitID advances a collection's counter and persists it
func (s *Store) CommitID(collection string) error {
	var counters models.Counters
	if err := s.Load(countersFile, &counters); err != nil {
		return err
	}
	id := counterFor(&counters, collection)
	if id == nil {
		return fmt.Errorf("no counter for collection %q", collection)
	}
	*id++
	return s.Save(countersFile, counters)
}

// Backup copies every collection file plus the counters file, verbatim,
// into a timestamped directory under the backup namespace. Live state
// is never touched.
func (s *Store) Backup() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.backupDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	// Suffix with a sequence number when two backups land in the same
	// second
	stamp := time.Now().Format("20060102-150405")
	dir := filepath.Join(s.backupDir, "backup-"+stamp)
	for i := 2; ; i++ {
		err := os.Mkdir(dir, 0o755)
		if err == nil {
			break
		}
		if !os.IsExist(err) {
			return "", fmt.Errorf("failed to create backup directory: %w", err)
		}
		dir = filepath.Join(s.backupDir, fmt.Sprintf("backup-%s-%d", stamp, i))
	}

	for _, collection := range allFiles() {
		data, err := os.ReadFile(s.path(collection))
		if err != nil {
			return "", fmt.Errorf("failed to read %s for backup: %w", collection, err)
		}
		dest := filepath.Join(dir, collection+".json")
		if err := os.WriteFile(dest, data, 0o444); err != nil {
			return "", fmt.Errorf("failed to write backup of %s: %w", collection, err)
		}
	}

	return dir, nil
}

// Reset destroys all current state and re-seeds the default dataset,
// leaving the store exactly as a fresh install.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seed()
}

func (s *Store) path(collection string) string {
	return filepath.Join(s.dataDir, collection+".json")
}

func allFiles() []string {
	return []string{
		CollectionUsers,
		CollectionFoods,
		CollectionDrinks,
		CollectionAnnouncements,
		countersFile,
	}
}

func counterFor(c *models.Counters, collection string) *int {
	switch collection {
	case CollectionUsers:
		return &c.Users
	case CollectionFoods:
		return &c.Foods
	case CollectionDrinks:
		return &c.Drinks
	case CollectionAnnouncements:
		return &c.Announcements
	default:
		return nil
	}
}
