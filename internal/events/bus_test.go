package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_DeliversInOrder(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	var got []int
	bus.Subscribe(func(e Event) { got = append(got, e.TaskID) })

	for i := 1; i <= 3; i++ {
		require.NoError(t, bus.Publish(Event{Type: EventTasksChanged, TaskID: i}))
	}

	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestBus_StampsOriginAndTimestamp(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	var got Event
	bus.Subscribe(func(e Event) { got = e })

	require.NoError(t, bus.Publish(Event{Type: EventTasksChanged}))

	assert.Equal(t, bus.Origin(), got.Origin)
	assert.False(t, got.Timestamp.IsZero())

	require.NoError(t, bus.Publish(Event{Type: EventTasksChanged, Origin: "elsewhere"}))
	assert.Equal(t, "elsewhere", got.Origin, "foreign origin is preserved")
}

func TestBus_OriginsAreUnique(t *testing.T) {
	t.Parallel()
	assert.NotEqual(t, NewBus().Origin(), NewBus().Origin())
}

func TestBus_Unsubscribe(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	calls := 0
	unsub := bus.Subscribe(func(Event) { calls++ })

	require.NoError(t, bus.Publish(Event{Type: EventTasksChanged}))
	unsub()
	unsub()
	require.NoError(t, bus.Publish(Event{Type: EventTasksChanged}))

	assert.Equal(t, 1, calls)
}

func TestBus_Closed(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	require.NoError(t, bus.Close())

	err := bus.SendEvent(Event{Type: EventTasksChanged})
	assert.ErrorIs(t, err, ErrBusClosed)
}

func TestBus_Listen(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	ctx, cancel := context.WithCancel(context.Background())

	ch, err := bus.Listen(ctx)
	require.NoError(t, err)

	require.NoError(t, bus.Publish(Event{Type: EventTasksChanged, Op: OpInsert, TaskID: 9}))

	select {
	case e := <-ch:
		assert.Equal(t, OpInsert, e.Op)
		assert.Equal(t, 9, e.TaskID)
	case <-time.After(time.Second):
		t.Fatal("expected event")
	}

	cancel()
	select {
	case _, ok := <-ch:
		assert.False(t, ok, "channel closes after cancel")
	case <-time.After(time.Second):
		t.Fatal("expected channel to close")
	}
}

// fakeRemote is an EventPublisher whose Listen channel is fed by the test
type fakeRemote struct {
	ch chan Event
}

func (f *fakeRemote) Connect(ctx context.Context) error { return nil }
func (f *fakeRemote) SendEvent(event Event) error       { return nil }
func (f *fakeRemote) Listen(ctx context.Context) (<-chan Event, error) {
	return f.ch, nil
}
func (f *fakeRemote) Close() error { return nil }

func TestBridge_SkipsOwnEchoes(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	remote := &fakeRemote{ch: make(chan Event, 4)}

	received := make(chan Event, 4)
	bus.Subscribe(func(e Event) { received <- e })

	require.NoError(t, Bridge(context.Background(), remote, bus))

	remote.ch <- Event{Type: EventTasksChanged, Origin: bus.Origin(), TaskID: 1}
	remote.ch <- Event{Type: EventPing}
	remote.ch <- Event{Type: EventTasksChanged, Origin: "other-process", TaskID: 2}
	close(remote.ch)

	select {
	case e := <-received:
		assert.Equal(t, 2, e.TaskID)
		assert.Equal(t, "other-process", e.Origin)
	case <-time.After(time.Second):
		t.Fatal("expected bridged event")
	}

	select {
	case e := <-received:
		t.Fatalf("unexpected extra event: %+v", e)
	case <-time.After(50 * time.Millisecond):
	}
}
