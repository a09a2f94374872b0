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
	"fmt"
	"strings"
	"time"
)

// State bits of Frame.State, as defined by the tracker protocol.
const (
	// StateGaze is set when gaze tracking is working (gaze present).
	StateGaze = 0x01
	// StateEyes is set when both eyes are located.
	StateEyes = 0x02
	// StatePresence is set when a pupil is present.
	StatePresence = 0x04
	// StateFix is set when the fixation state changed.
	StateFix = 0x08
	// StateLost is set when the tracker lost the user or found a new one.
	StateLost = 0x10
)

// timestampLayout is the wall-clock format the tracker uses, with
// microsecond precision. Tracker and client are assumed to share a time
// zone, so the literal string components are taken as local time.
const timestampLayout = "2006-01-02 15:04:05.000000"

// FrameHeader names the columns of the record produced by Frame.String,
// suitable as the first line of a csv dump.
const FrameHeader = "eT;dT;aT;Fix;State;Rwx;Rwy;Avx;Avy;LRwx;LRwy;LAvx;LAvy;RSz;LCx;LCy;RRwx;RRwy;RAvx;RAvy;RS;RCx;RCy"

// Coord is a single (x,y) position in screen coordinates.
type Coord struct {
	X int
	Y int
}

// String satisfies fmt.Stringer.
func (c Coord) String() string {
	return fmt.Sprintf("%d;%d", c.X, c.Y)
}

// PointF is a single (x,y) position with sub-pixel precision, relative to
// the screen or to an eye bounding box.
type PointF struct {
	X float64
	Y float64
}

// String satisfies fmt.Stringer.
func (p PointF) String() string {
	return fmt.Sprintf("%.3f;%.3f", p.X, p.Y)
}

// Eye holds single-eye data, including gaze coordinates and pupil size.
type Eye struct {
	// Raw is the raw (unfiltered) gaze coordinate vs screen coordinates.
	Raw Coord
	// Avg is the averaged (filtered) gaze coordinate vs screen coordinates.
	Avg Coord
	// PSize is a relative estimate of the pupil size.
	PSize float64
	// PCenter is the pupil center within the eye bounding box.
	PCenter PointF
}

// String satisfies fmt.Stringer.
func (e Eye) String() string {
	return fmt.Sprintf("%s;%s;%.1f;%s", e.Raw, e.Avg, e.PSize, e.PCenter)
}

// Frame holds one complete decoded gaze sample from the tracker. Frames are
// immutable snapshots; the listener never hands out partial frames.
type Frame struct {
	// ETime is the wall-clock time at which the client decoded the frame.
	ETime time.Time
	// Time is the monotonic clock of the tracker, in seconds.
	Time float64
	// Timestamp is the wall-clock epoch of the tracker, in seconds, parsed
	// with microsecond precision from the tracker timestamp string.
	Timestamp float64
	// Fix is the fixation flag from the tracker.
	Fix bool
	// State is the tracking state bitmask; see the State constants.
	State int
	// Raw is the raw (unfiltered) gaze coordinate based on both eyes.
	Raw Coord
	// Avg is the averaged (smoothed) gaze coordinate based on both eyes.
	Avg Coord
	// LeftEye holds left eye coordinates, pupil position and size.
	LeftEye Eye
	// RightEye holds right eye coordinates, pupil position and size.
	RightEye Eye
}

// Eye returns the left or right eye detail of the frame.
func (f *Frame) Eye(left bool) Eye {
	if left {
		return f.LeftEye
	}
	return f.RightEye
}

// String renders the frame as one semicolon-separated record in the column
// order given by FrameHeader. The state mask is rendered as five letter
// flags (LFPEG), the fixation flag as F or N.
func (f *Frame) String() string {
	var st strings.Builder
	for _, b := range []struct {
		mask int
		mark byte
	}{
		{StateLost, 'L'},
		{StateFix, 'F'},
		{StatePresence, 'P'},
		{StateEyes, 'E'},
		{StateGaze, 'G'},
	} {
		if f.State&b.mask != 0 {
			st.WriteByte(b.mark)
		} else {
			st.WriteByte('.')
		}
	}
	fix := "N"
	if f.Fix {
		fix = "F"
	}
	etime := float64(f.ETime.UnixNano()) / 1e9
	s := fmt.Sprintf("%014.3f;%07.3f;%07.3f;", etime, f.Time, f.Timestamp)
	s += fmt.Sprintf("%s;%s;%s;%s", fix, st.String(), f.Raw, f.Avg)
	s += ";" + f.LeftEye.String()
	s += ";" + f.RightEye.String()
	return s
}

// Wire shapes of a tracking frame. All fields are pointers so the codec can
// tell an absent key from a zero value and refuse the whole frame.

type frameData struct {
	Time      *int64     `json:"time"`
	Timestamp *string    `json:"timestamp"`
	Fix       *bool      `json:"fix"`
	State     *int       `json:"state"`
	Raw       *coordData `json:"raw"`
	Avg       *coordData `json:"avg"`
	LeftEye   *eyeData   `json:"lefteye"`
	RightEye  *eyeData   `json:"righteye"`
}

type coordData struct {
	X *int `json:"x"`
	Y *int `json:"y"`
}

type pointData struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
}

type eyeData struct {
	Raw     *coordData `json:"raw"`
	Avg     *coordData `json:"avg"`
	PSize   *float64   `json:"psize"`
	PCenter *pointData `json:"pcenter"`
}

// decodeFrame builds a Frame from its wire shape. It fails with a wrapped
// ErrMalformedFrame naming the first missing field; no partial result is
// ever returned.
func decodeFrame(d *frameData) (*Frame, error) {
	if d == nil {
		return nil, fmt.Errorf("%w: missing frame", ErrMalformedFrame)
	}
	f := &Frame{ETime: time.Now()}
	if d.Time == nil {
		return nil, fmt.Errorf("%w: missing %q", ErrMalformedFrame, "time")
	}
	f.Time = float64(*d.Time) / 1000.0
	if d.Timestamp == nil {
		return nil, fmt.Errorf("%w: missing %q", ErrMalformedFrame, "timestamp")
	}
	ts, err := time.ParseInLocation(timestampLayout, *d.Timestamp, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: bad timestamp %q", ErrMalformedFrame, *d.Timestamp)
	}
	f.Timestamp = float64(ts.UnixNano()) / 1e9
	if d.Fix == nil {
		return nil, fmt.Errorf("%w: missing %q", ErrMalformedFrame, "fix")
	}
	f.Fix = *d.Fix
	if d.State == nil {
		return nil, fmt.Errorf("%w: missing %q", ErrMalformedFrame, "state")
	}
	f.State = *d.State
	if f.Raw, err = decodeCoord(d.Raw, "raw"); err != nil {
		return nil, err
	}
	if f.Avg, err = decodeCoord(d.Avg, "avg"); err != nil {
		return nil, err
	}
	if f.LeftEye, err = decodeEye(d.LeftEye, "lefteye"); err != nil {
		return nil, err
	}
	if f.RightEye, err = decodeEye(d.RightEye, "righteye"); err != nil {
		return nil, err
	}
	return f, nil
}

func decodeCoord(d *coordData, key string) (Coord, error) {
	if d == nil || d.X == nil || d.Y == nil {
		return Coord{}, fmt.Errorf("%w: missing %q", ErrMalformedFrame, key)
	}
	return Coord{X: *d.X, Y: *d.Y}, nil
}

func decodePoint(d *pointData, key string) (PointF, error) {
	if d == nil || d.X == nil || d.Y == nil {
		return PointF{}, fmt.Errorf("%w: missing %q", ErrMalformedFrame, key)
	}
	return PointF{X: *d.X, Y: *d.Y}, nil
}

func decodeEye(d *eyeData, key string) (Eye, error) {
	var e Eye
	var err error
	if d == nil {
		return e, fmt.Errorf("%w: missing %q", ErrMalformedFrame, key)
	}
	if e.Raw, err = decodeCoord(d.Raw, key+".raw"); err != nil {
		return e, err
	}
	if e.Avg, err = decodeCoord(d.Avg, key+".avg"); err != nil {
		return e, err
	}
	if d.PSize == nil {
		return e, fmt.Errorf("%w: missing %q", ErrMalformedFrame, key+".psize")
	}
	e.PSize = *d.PSize
	if e.PCenter, err = decodePoint(d.PCenter, key+".pcenter"); err != nil {
		return e, err
	}
	return e, nil
}
