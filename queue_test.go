package peyetribe

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameQueueFIFO(t *testing.T) {
	q := newFrameQueue()
	a := &Frame{Time: 1}
	b := &Frame{Time: 2}
	c := &Frame{Time: 3}
	q.push(a)
	q.push(b)
	q.push(c)
	assert.Equal(t, 3, q.len())

	for _, want := range []*Frame{a, b, c} {
		f, err := q.pop(false)
		require.NoError(t, err)
		assert.Same(t, want, f)
	}
	assert.Equal(t, 0, q.len())
}

func TestFrameQueuePopEmptyNonBlocking(t *testing.T) {
	q := newFrameQueue()
	f, err := q.pop(false)
	assert.NoError(t, err)
	assert.Nil(t, f)
}

func TestFrameQueuePopBlocksUntilPush(t *testing.T) {
	q := newFrameQueue()
	got := make(chan *Frame, 1)
	go func() {
		f, err := q.pop(true)
		assert.NoError(t, err)
		got <- f
	}()

	select {
	case <-got:
		t.Fatal("pop returned before a frame was pushed")
	case <-time.After(50 * time.Millisecond):
	}

	want := &Frame{Time: 42}
	q.push(want)
	select {
	case f := <-got:
		assert.Same(t, want, f)
	case <-time.After(2 * time.Second):
		t.Fatal("pop did not wake after push")
	}
}

func TestFrameQueueFailUnblocks(t *testing.T) {
	q := newFrameQueue()
	errs := make(chan error, 1)
	go func() {
		_, err := q.pop(true)
		errs <- err
	}()
	time.Sleep(20 * time.Millisecond)
	q.fail(ErrConnectionLost)

	select {
	case err := <-errs:
		assert.ErrorIs(t, err, ErrConnectionLost)
	case <-time.After(2 * time.Second):
		t.Fatal("pop did not wake after fail")
	}

	// Later pops keep returning the failure, and pushes are dropped.
	_, err := q.pop(false)
	assert.ErrorIs(t, err, ErrConnectionLost)
	q.push(&Frame{})
	assert.Equal(t, 0, q.len())
}

func TestFrameQueueFirstFailureSticks(t *testing.T) {
	q := newFrameQueue()
	q.fail(ErrConnectionLost)
	q.fail(ErrNotConnected)
	_, err := q.pop(true)
	assert.ErrorIs(t, err, ErrConnectionLost)
}

func TestReplyGateDeliverWithoutWaiter(t *testing.T) {
	g := &replyGate{}
	assert.False(t, g.deliver(&reply{StatusCode: statusOK}))
}

func TestReplyGateExchange(t *testing.T) {
	g := &replyGate{}
	var hooked *reply
	require.NoError(t, g.acquire(func(r *reply) { hooked = r }))

	m := &reply{Category: "tracker", StatusCode: statusOK}
	go func() {
		assert.True(t, g.deliver(m))
	}()
	got, err := g.wait()
	require.NoError(t, err)
	assert.Same(t, m, got)
	assert.Same(t, m, hooked)
	g.release()

	// Slot is free again after release.
	require.NoError(t, g.acquire(nil))
	g.release()
}

func TestReplyGateReentrant(t *testing.T) {
	g := &replyGate{}
	g.ch = make(chan gateReply, 1)
	assert.ErrorIs(t, g.acquire(nil), ErrReentrantExchange)
}

func TestReplyGateFail(t *testing.T) {
	g := &replyGate{}
	require.NoError(t, g.acquire(nil))
	go g.fail(ErrNotConnected)
	_, err := g.wait()
	assert.ErrorIs(t, err, ErrNotConnected)
	g.release()

	// No waiter: fail must not panic or block.
	g.fail(ErrNotConnected)
}
