package services_test

import (
	"testing"

	"github.com/highcard-dev/console/internal/core/domain"
	"github.com/highcard-dev/console/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogStream_BannerIsStamped(t *testing.T) {
	ls := services.NewLogStream(services.OpeningBanner("srv-1", "Alpha"))

	snapshot := ls.Snapshot()
	require.Len(t, snapshot, 5)
	assert.Equal(t, "Connecting to Alpha (srv-1)...", snapshot[0].Text)
	for _, e := range snapshot {
		assert.False(t, e.Time.IsZero())
	}
}

func TestLogStream_AppendIsVisibleInSnapshot(t *testing.T) {
	ls := services.NewLogStream(nil)

	ls.Append("one", domain.EntryKindOutput)
	ls.Append("two", domain.EntryKindError)

	assert.Equal(t, []string{"one", "two"}, texts(ls.Snapshot()))
	assert.Equal(t, []domain.EntryKind{domain.EntryKindOutput, domain.EntryKindError}, kinds(ls.Snapshot()))
	assert.Equal(t, 2, ls.Len())
}

func TestLogStream_SnapshotIsACopy(t *testing.T) {
	ls := services.NewLogStream(nil)
	ls.Append("one", domain.EntryKindOutput)

	snapshot := ls.Snapshot()
	snapshot[0].Text = "changed"

	assert.Equal(t, "one", ls.Snapshot()[0].Text)
}

func TestLogStream_Reset(t *testing.T) {
	ls := services.NewLogStream(services.OpeningBanner("srv-1", "Alpha"))
	ls.Append("one", domain.EntryKindOutput)

	ls.Reset(services.ClearBanner("Alpha"))

	assert.Equal(t, []string{"Welcome to Alpha Console", `Type "help" for available commands`}, texts(ls.Snapshot()))
}

func TestLogStream_SubscribeStartsWithReset(t *testing.T) {
	ls := services.NewLogStream(nil)
	ls.Append("before", domain.EntryKindOutput)

	subscription := ls.Subscribe()
	ls.Append("after", domain.EntryKindSuccess)

	first := <-subscription
	assert.Equal(t, domain.LogEventReset, first.Type)
	assert.Equal(t, []string{"before"}, texts(first.Entries))

	second := <-subscription
	assert.Equal(t, domain.LogEventAppend, second.Type)
	assert.Equal(t, []string{"after"}, texts(second.Entries))
}

func TestLogStream_SlowSubscriberIsDropped(t *testing.T) {
	ls := services.NewLogStream(nil)
	subscription := ls.Subscribe()

	// the reset event already occupies one slot
	for i := 0; i < 300; i++ {
		ls.Append("line", domain.EntryKindOutput)
	}

	assert.Equal(t, 0, ls.SubscriberCount())
	received := 0
	for range subscription {
		received++
	}
	assert.Equal(t, 256, received)
	assert.Equal(t, 300, ls.Len())
}

func TestLogStream_CloseStopsWrites(t *testing.T) {
	ls := services.NewLogStream(nil)
	subscription := ls.Subscribe()
	<-subscription

	ls.Close()
	ls.Append("late", domain.EntryKindOutput)
	ls.Reset(nil)

	_, open := <-subscription
	assert.False(t, open)
	assert.Equal(t, 0, ls.Len())

	closedSubscription := ls.Subscribe()
	_, open = <-closedSubscription
	assert.False(t, open)
}

func TestLogStream_Unsubscribe(t *testing.T) {
	ls := services.NewLogStream(nil)
	subscription := ls.Subscribe()
	require.Equal(t, 1, ls.SubscriberCount())

	ls.Unsubscribe(subscription)
	ls.Unsubscribe(subscription)

	assert.Equal(t, 0, ls.SubscriberCount())
}
