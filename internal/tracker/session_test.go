package tracker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func TestSessionStore_StartGetRemove(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 3, 20, 12, 0, 0, 0, time.UTC)}
	store := NewSessionStore(time.Hour, clock)

	sess := store.Start(1001, 777, "alice")
	require.NotNil(t, sess)
	assert.Equal(t, StepHandle, sess.Step)

	got, ok := store.Get(1001)
	require.True(t, ok)
	assert.Equal(t, sess, got)

	store.Remove(1001)
	_, ok = store.Get(1001)
	assert.False(t, ok)
}

func TestSessionStore_StartReplacesExisting(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 3, 20, 12, 0, 0, 0, time.UTC)}
	store := NewSessionStore(time.Hour, clock)

	first := store.Start(1001, 777, "alice")
	first.Step = StepStartDate

	second := store.Start(1001, 888, "alice")
	got, _ := store.Get(1001)
	assert.Equal(t, second, got)
	assert.Equal(t, StepHandle, got.Step)
	assert.Equal(t, int64(888), got.ResourceID)
}

func TestSessionStore_SweepDropsExpired(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 3, 20, 12, 0, 0, 0, time.UTC)}
	store := NewSessionStore(time.Hour, clock)

	store.Start(1001, 777, "alice")
	clock.advance(30 * time.Minute)
	store.Start(1002, 888, "bob")

	clock.advance(45 * time.Minute)
	removed := store.Sweep()

	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, store.Len())

	_, ok := store.Get(1001)
	assert.False(t, ok)
	_, ok = store.Get(1002)
	assert.True(t, ok)
}

func TestStep_String(t *testing.T) {
	assert.Equal(t, "awaiting_handle", StepHandle.String())
	assert.Equal(t, "awaiting_target", StepTarget.String())
	assert.Equal(t, "awaiting_start_date", StepStartDate.String())
}
