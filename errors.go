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

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConnected is returned when an operation requires a live tracker
	// connection and there is none.
	ErrNotConnected = errors.New("tracker is not connected")

	// ErrAlreadyConnected is returned by Connect when a connection exists.
	ErrAlreadyConnected = errors.New("cannot connect an already connected tracker; close it first")

	// ErrMalformedFrame is returned when a message from the tracker is
	// missing a required field or a field has the wrong shape. Decoding is
	// all or nothing; a partial frame is never produced.
	ErrMalformedFrame = errors.New("malformed data from tracker")

	// ErrUnsolicitedReply means the tracker sent a command reply while no
	// caller was waiting for one. This breaks the one-in-flight discipline
	// and is fatal to the session.
	ErrUnsolicitedReply = errors.New("unsolicited reply from tracker")

	// ErrReentrantExchange means a stale unread reply was still queued when
	// a new exchange was started. Indicates a bug in gate usage.
	ErrReentrantExchange = errors.New("stale reply pending from a previous exchange")

	// ErrConnectionLost is reported when the socket times out or resets
	// while the session still believes itself connected.
	ErrConnectionLost = errors.New("lost tracker connection")

	// ErrShutdownTimeout is returned by Close when the listener or the
	// heartbeater did not exit within the grace period.
	ErrShutdownTimeout = errors.New("background tasks did not stop within the grace period")
)

// TrackerError reports a non-200 status code returned by the tracker to a
// synchronous command.
type TrackerError struct {
	Status int
}

func (e *TrackerError) Error() string {
	return fmt.Sprintf("tracker protocol error (%d)", e.Status)
}

// StreamError reports a bad status code on a streamed frame while in push
// mode. It is fatal to the session.
type StreamError struct {
	Status int
}

func (e *StreamError) Error() string {
	return fmt.Sprintf("frame stream protocol error (%d)", e.Status)
}
