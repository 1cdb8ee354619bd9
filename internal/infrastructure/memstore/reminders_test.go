package memstore

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/hanamurayama/timelytogether-web-portal/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(id string, createdAt time.Time) *domain.Reminder {
	return &domain.Reminder{
		ReminderID: id,
		Title:      "Lunch",
		Message:    "Soup is in the fridge",
		Date:       "2025-06-01",
		Time:       "12:00",
		Recurrence: domain.RecurrenceNone,
		CreatedAt:  createdAt,
	}
}

func TestPutAndGet(t *testing.T) {
	repo := NewReminderRepo()
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, seed("a", time.Now())))

	got, err := repo.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "a", got.ReminderID)
	assert.Equal(t, "Lunch", got.Title)
}

func TestGet_Missing(t *testing.T) {
	repo := NewReminderRepo()

	_, err := repo.Get(context.Background(), "nope")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestScan_NewestFirst(t *testing.T) {
	repo := NewReminderRepo()
	ctx := context.Background()
	base := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Put(ctx, seed("oldest", base)))
	require.NoError(t, repo.Put(ctx, seed("newest", base.Add(2*time.Hour))))
	require.NoError(t, repo.Put(ctx, seed("middle", base.Add(time.Hour))))

	out, err := repo.Scan(ctx)
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "newest", out[0].ReminderID)
	assert.Equal(t, "middle", out[1].ReminderID)
	assert.Equal(t, "oldest", out[2].ReminderID)
}

func TestScan_ReturnsCopy(t *testing.T) {
	repo := NewReminderRepo()
	ctx := context.Background()
	require.NoError(t, repo.Put(ctx, seed("a", time.Now())))

	out, err := repo.Scan(ctx)
	require.NoError(t, err)
	out[0].Title = "changed"

	got, err := repo.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "Lunch", got.Title)
}

func TestHardDelete(t *testing.T) {
	repo := NewReminderRepo()
	ctx := context.Background()
	require.NoError(t, repo.Put(ctx, seed("a", time.Now())))

	existed, err := repo.HardDelete(ctx, "a")
	require.NoError(t, err)
	assert.True(t, existed)

	// At-most-once: the second delete of the same id reports absence.
	existed, err = repo.HardDelete(ctx, "a")
	require.NoError(t, err)
	assert.False(t, existed)
}

func TestConcurrentReadersAndWriter(t *testing.T) {
	repo := NewReminderRepo()
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			_ = repo.Put(ctx, seed("a", time.Now()))
			_, _ = repo.HardDelete(ctx, "a")
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			_, _ = repo.Scan(ctx)
		}
	}()
	wg.Wait()
}
