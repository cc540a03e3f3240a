package db

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/warungku/warung-service/internal/config"
	"github.com/warungku/warung-service/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store := New(config.Storage{DataDir: t.TempDir()})
	require.NoError(t, store.Init())
	return store
}

func loadUsers(t *testing.T, store *Store) []models.User {
	t.Helper()
	var users []models.User
	require.NoError(t, store.View(func() error {
		return store.Load(CollectionUsers, &users)
	}))
	return users
}

func TestInitSeedsDefaultDataset(t *testing.T) {
	store := newTestStore(t)

	users := loadUsers(t, store)
	require.Len(t, users, 1)
	assert.Equal(t, 1, users[0].ID)
	assert.Equal(t, models.SuperuserName, users[0].Username)
	assert.Equal(t, models.RoleAdmin, users[0].Role)
	assert.Equal(t, "superuser@admin.com", users[0].Email)
	// The stored hash really is a hash of "superuser"
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(users[0].Password), []byte("superuser")))

	var foods, drinks []models.MenuItem
	require.NoError(t, store.View(func() error {
		if err := store.Load(CollectionFoods, &foods); err != nil {
			return err
		}
		return store.Load(CollectionDrinks, &drinks)
	}))
	require.Len(t, foods, 2)
	assert.Equal(t, "Nasi Goreng", foods[0].Name)
	assert.Equal(t, float64(25000), foods[0].Price)
	require.Len(t, drinks, 2)
	assert.Equal(t, "Es Teh", drinks[0].Name)

	var announcements []models.Announcement
	require.NoError(t, store.View(func() error {
		return store.Load(CollectionAnnouncements, &announcements)
	}))
	require.Len(t, announcements, 2)
	assert.Equal(t, "Selamat Datang di CRUD App!", announcements[0].Title)

	var counters models.Counters
	require.NoError(t, store.View(func() error {
		return store.Load(countersFile, &counters)
	}))
	assert.Equal(t, models.Counters{Users: 2, Foods: 3, Drinks: 3, Announcements: 3}, counters)
}

func TestInitIsIdempotent(t *testing.T) {
	store := New(config.Storage{DataDir: t.TempDir()})
	require.NoError(t, store.Init())

	// Mutate, then Init again: existing data must survive
	require.NoError(t, store.Update(func() error {
		var foods []models.MenuItem
		if err := store.Load(CollectionFoods, &foods); err != nil {
			return err
		}
		foods = foods[:1]
		return store.Save(CollectionFoods, foods)
	}))

	require.NoError(t, store.Init())

	var foods []models.MenuItem
	require.NoError(t, store.View(func() error {
		return store.Load(CollectionFoods, &foods)
	}))
	assert.Len(t, foods, 1)
}

func TestFilesAreHumanInspectable(t *testing.T) {
	dir := t.TempDir()
	store := New(config.Storage{DataDir: dir})
	require.NoError(t, store.Init())

	data, err := os.ReadFile(filepath.Join(dir, "foods.json"))
	require.NoError(t, err)
	// Pretty-printed: indented and multi-line
	assert.Contains(t, string(data), "\n  {")
	assert.Contains(t, string(data), `"name": "Nasi Goreng"`)
}

func TestNextIDAndCommitID(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Update(func() error {
		id, err := store.NextID(CollectionFoods)
		require.NoError(t, err)
		assert.Equal(t, 3, id)

		// NextID alone does not advance the counter
		again, err := store.NextID(CollectionFoods)
		require.NoError(t, err)
		assert.Equal(t, 3, again)

		require.NoError(t, store.CommitID(CollectionFoods))

		after, err := store.NextID(CollectionFoods)
		require.NoError(t, err)
		assert.Equal(t, 4, after)
		return nil
	}))
}

func TestNextIDUnknownCollection(t *testing.T) {
	store := newTestStore(t)

	err := store.View(func() error {
		_, err := store.NextID("bogus")
		return err
	})
	assert.Error(t, err)
}

func TestResetRestoresDefaults(t *testing.T) {
	store := newTestStore(t)

	// Wreck the state
	require.NoError(t, store.Update(func() error {
		if err := store.Save(CollectionFoods, []models.MenuItem{}); err != nil {
			return err
		}
		return store.Save(countersFile, models.Counters{Users: 99, Foods: 99, Drinks: 99, Announcements: 99})
	}))

	require.NoError(t, store.Reset())

	var foods []models.MenuItem
	var counters models.Counters
	require.NoError(t, store.View(func() error {
		if err := store.Load(CollectionFoods, &foods); err != nil {
			return err
		}
		return store.Load(countersFile, &counters)
	}))
	require.Len(t, foods, 2)
	assert.Equal(t, "Nasi Goreng", foods[0].Name)
	assert.Equal(t, models.Counters{Users: 2, Foods: 3, Drinks: 3, Announcements: 3}, counters)

	// Reset twice leaves the same state
	require.NoError(t, store.Reset())
	users := loadUsers(t, store)
	require.Len(t, users, 1)
	assert.Equal(t, models.SuperuserName, users[0].Username)
}

func TestBackupIsNonMutatingAndVerbatim(t *testing.T) {
	dir := t.TempDir()
	store := New(config.Storage{DataDir: dir})
	require.NoError(t, store.Init())

	before, err := os.ReadFile(filepath.Join(dir, "foods.json"))
	require.NoError(t, err)

	backupPath, err := store.Backup()
	require.NoError(t, err)
	assert.Contains(t, filepath.Base(backupPath), "backup-")

	// Live state untouched
	after, err := os.ReadFile(filepath.Join(dir, "foods.json"))
	require.NoError(t, err)
	assert.Equal(t, before, after)

	// The snapshot is a verbatim copy of every file
	for _, name := range []string{"users.json", "foods.json", "drinks.json", "announcements.json", "counters.json"} {
		live, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		copied, err := os.ReadFile(filepath.Join(backupPath, name))
		require.NoError(t, err, "missing %s in backup", name)
		assert.Equal(t, live, copied, "%s differs in backup", name)
	}
}

func TestBackupTwiceGetsDistinctDirectories(t *testing.T) {
	store := newTestStore(t)

	first, err := store.Backup()
	require.NoError(t, err)
	second, err := store.Backup()
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)

	in := []models.MenuItem{{ID: 7, Name: "Sate Ayam", Price: 30000}}
	require.NoError(t, store.Update(func() error {
		return store.Save(CollectionFoods, in)
	}))

	var out []models.MenuItem
	require.NoError(t, store.View(func() error {
		return store.Load(CollectionFoods, &out)
	}))
	assert.Equal(t, in, out)

	// And the on-disk form is valid JSON
	data, err := os.ReadFile(filepath.Join(store.dataDir, "foods.json"))
	require.NoError(t, err)
	assert.True(t, json.Valid(data))
}
