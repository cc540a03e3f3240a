package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warungku/warung-service/internal/models"
)

func TestAnnouncementCreateStampsDate(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	created, err := repos.Announcement.Create(ctx, models.AnnouncementRequest{
		Title:   "Libur Lebaran",
		Content: "Warung tutup tanggal 1-3.",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, created.ID) // seeded counter starts at 3
	assert.False(t, created.Date.IsZero())

	announcements, err := repos.Announcement.List(ctx)
	require.NoError(t, err)
	require.Len(t, announcements, 3)
	assert.Equal(t, "Libur Lebaran", announcements[2].Title)
}
