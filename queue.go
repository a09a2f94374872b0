package peyetribe

// --------------------------------------------------------------------------
//
//	peyetribe
//
// ---------------------------------------------------------------------------
//
//	DESCRIPTION
//
// Go interface to the Eye Tribe eye tracker (https://theeyetribe.com).
//
// Created by Per Baekgaard, Technical University of Denmark,
// DTU Informatics, Cognitive Systems Section.
//
// # Copyright (c) Per Baekgaard
//
// This code is licensed under the MIT License.
// ---------------------------------------------------------------------------

import "sync"

// frameQueue is an unbounded FIFO of frames. The listener is the only
// producer, callers of Next are the consumers. Frames preserve tracker send
// order. Once failed, every blocked and future pop returns the failure so
// consumers never hang on a dead session.
type frameQueue struct {
	mu     sync.Mutex
	cond   *sync.Cond
	frames []*Frame
	err    error
}

func newFrameQueue() *frameQueue {
	q := &frameQueue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// push appends a frame and wakes one blocked consumer. Frames pushed after
// fail are dropped.
func (q *frameQueue) push(f *Frame) {
	q.mu.Lock()
	if q.err == nil {
		q.frames = append(q.frames, f)
		q.cond.Signal()
	}
	q.mu.Unlock()
}

// pop removes the oldest frame. When block is false and the queue is empty
// it returns (nil, nil) immediately. When block is true it waits until a
// frame arrives or the queue fails.
func (q *frameQueue) pop(block bool) (*Frame, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for {
		if q.err != nil {
			return nil, q.err
		}
		if len(q.frames) > 0 {
			f := q.frames[0]
			q.frames[0] = nil
			q.frames = q.frames[1:]
			return f, nil
		}
		if !block {
			return nil, nil
		}
		q.cond.Wait()
	}
}

// fail marks the queue broken with err and wakes all blocked consumers.
// Only the first failure sticks.
func (q *frameQueue) fail(err error) {
	q.mu.Lock()
	if q.err == nil {
		q.err = err
	}
	q.cond.Broadcast()
	q.mu.Unlock()
}

// len reports the number of queued frames.
func (q *frameQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.frames)
}
