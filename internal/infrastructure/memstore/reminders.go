package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/hanamurayama/timelytogether-web-portal/internal/domain"
)

// ReminderRepo is the in-memory reminder repository, the default backend.
// A single RWMutex gives the single-writer/any-reader discipline the read
// side needs: List always observes a consistent point-in-time snapshot.
// Contents do not survive a restart; durability is out of scope.
type ReminderRepo struct {
	mu        sync.RWMutex
	reminders map[string]domain.Reminder
}

func NewReminderRepo() *ReminderRepo {
	return &ReminderRepo{reminders: make(map[string]domain.Reminder)}
}

func (r *ReminderRepo) Put(_ context.Context, rm *domain.Reminder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reminders[rm.ReminderID] = *rm
	return nil
}

func (r *ReminderRepo) Get(_ context.Context, reminderID string) (*domain.Reminder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rm, ok := r.reminders[reminderID]
	if !ok {
		return nil, fmt.Errorf("reminder not found: %w", domain.ErrNotFound)
	}
	return &rm, nil
}

// Scan returns a copy of all reminders ordered by creation time descending,
// newest first, matching the listing contract of the dynamo backend.
func (r *ReminderRepo) Scan(_ context.Context) ([]domain.Reminder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Reminder, 0, len(r.reminders))
	for _, rm := range r.reminders {
		out = append(out, rm)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ReminderID > out[j].ReminderID
	})
	return out, nil
}

// HardDelete removes a reminder and reports whether it existed, so callers
// can tell "already gone" apart from a successful delete.
func (r *ReminderRepo) HardDelete(_ context.Context, reminderID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.reminders[reminderID]; !ok {
		return false, nil
	}
	delete(r.reminders, reminderID)
	return true, nil
}
