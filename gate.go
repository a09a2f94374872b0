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

// replyGate serializes synchronous command/reply exchanges against the
// listener. The slot mutex admits at most one exchange at a time; the
// one-shot channel is the rendezvous on which the listener hands the reply
// (or a failure) to the waiting caller.
//
// The optional onReply hook runs on the listener goroutine before the
// caller is woken. Mode transitions ride on it so that messages later in
// the same read segment are already classified under the new mode.
type replyGate struct {
	slot sync.Mutex

	mu      sync.Mutex
	ch      chan gateReply
	onReply func(*reply)
}

type gateReply struct {
	msg *reply
	err error
}

// acquire takes the exchange slot, blocking behind any exchange already in
// flight. Finding a reply channel still armed after winning the slot means
// the request/reply discipline was broken somewhere; that is reported as
// ErrReentrantExchange and the slot is released again.
func (g *replyGate) acquire(onReply func(*reply)) error {
	g.slot.Lock()
	g.mu.Lock()
	if g.ch != nil {
		g.mu.Unlock()
		g.slot.Unlock()
		return ErrReentrantExchange
	}
	g.ch = make(chan gateReply, 1)
	g.onReply = onReply
	g.mu.Unlock()
	return nil
}

// wait blocks until the listener delivers exactly one reply or failure.
// Only the caller that acquired the slot may call wait.
func (g *replyGate) wait() (*reply, error) {
	g.mu.Lock()
	ch := g.ch
	g.mu.Unlock()
	r := <-ch
	return r.msg, r.err
}

// release disarms the reply channel and frees the slot for the next caller.
func (g *replyGate) release() {
	g.mu.Lock()
	g.ch = nil
	g.onReply = nil
	g.mu.Unlock()
	g.slot.Unlock()
}

// deliver hands a reply to the waiting caller. It reports false when no
// caller holds the gate, which the listener treats as a protocol violation.
func (g *replyGate) deliver(m *reply) bool {
	g.mu.Lock()
	ch := g.ch
	hook := g.onReply
	g.mu.Unlock()
	if ch == nil {
		return false
	}
	if hook != nil {
		hook(m)
	}
	ch <- gateReply{msg: m}
	return true
}

// fail wakes a waiting caller with err, if any caller is waiting. Used when
// the session breaks while an exchange is in flight.
func (g *replyGate) fail(err error) {
	g.mu.Lock()
	ch := g.ch
	g.mu.Unlock()
	if ch != nil {
		select {
		case ch <- gateReply{err: err}:
		default:
		}
	}
}
