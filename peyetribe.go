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
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Gurux/gxcommon-go"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Defaults for a tracker server running on the local machine.
const (
	DefaultHost = "localhost"
	DefaultPort = 6555
)

// defaultReadTimeout applies until the heartbeat interval is learned from
// the tracker at connect time; with a non-zero interval the timeout is
// tightened to twice the interval.
const defaultReadTimeout = 30 * time.Second

// closeGrace caps how long Close waits for the listener and the heartbeater
// to exit. With a non-zero heartbeat interval the wait is bounded by three
// intervals instead, whichever is shorter.
const closeGrace = 10 * time.Second

// FrameFunc is invoked synchronously on the listener goroutine for every
// frame received in push mode. Returning true suppresses queueing of the
// frame; otherwise the frame is also available through Next.
type FrameFunc func(f *Frame) bool

// TraceEventHandler is called when the tracker connection emits a trace
// message at or below the configured trace level.
type TraceEventHandler func(t *EyeTribe, e gxcommon.TraceEventArgs)

// ErrorEventHandler is called when the connection fails asynchronously,
// for example when the listener detects a lost connection.
type ErrorEventHandler func(t *EyeTribe, err error)

// StateEventHandler is called when the connection state changes.
type StateEventHandler func(t *EyeTribe, e gxcommon.MediaStateEventArgs)

// EyeTribe is one client session against an Eye Tribe tracker server. It
// owns a single TCP connection, the listener goroutine that reads and
// classifies every inbound message, and an optional heartbeater goroutine.
// All methods are safe for concurrent use; at most one synchronous command
// is in flight at any time.
type EyeTribe struct {
	HostName string
	Port     int

	// Connect/write timeout.
	timeout time.Duration

	// The trace level specifies which types of trace messages are emitted.
	traceLevel gxcommon.TraceLevel

	mu   sync.RWMutex
	conn net.Conn
	wg   sync.WaitGroup

	stop    chan struct{}
	stopped bool
	// broken is set by the listener when the session fails; current and
	// future callers get it instead of hanging.
	broken error

	mode       Mode
	readTO     time.Duration
	hbint      time.Duration
	calibrated bool
	callback   FrameFunc
	queue      *frameQueue
	gate       replyGate
	calib      *CalibrationResult

	bytesSent     uint64
	bytesReceived uint64

	//Called when the connection state is changed.
	onState StateEventHandler

	//Called when the session fails asynchronously.
	onErr ErrorEventHandler

	//Called when the session is sending or receiving data.
	onTrace TraceEventHandler

	// Printer for localized messages.
	p *message.Printer
}

// New creates an EyeTribe session configured for the given tracker server.
// Empty host or zero port select the defaults (localhost:6555). The session
// starts disconnected; call Connect before issuing commands.
func New(hostName string, port int) *EyeTribe {
	if hostName == "" {
		hostName = DefaultHost
	}
	if port == 0 {
		port = DefaultPort
	}
	t := &EyeTribe{HostName: hostName, Port: port, timeout: time.Duration(10000) * time.Millisecond}
	t.Localize(language.AmericanEnglish)
	return t
}

// String satisfies fmt.Stringer.
func (t *EyeTribe) String() string {
	return fmt.Sprintf("%s:%d", t.HostName, t.Port)
}

// IsConnected reports whether the session currently holds a live tracker
// connection.
func (t *EyeTribe) IsConnected() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.conn != nil
}

// Bind re-points a disconnected session to another tracker server.
func (t *EyeTribe) Bind(hostName string, port int) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.conn != nil {
		return ErrAlreadyConnected
	}
	t.HostName = hostName
	t.Port = port
	return nil
}

// Mode returns the current frame delivery mode.
func (t *EyeTribe) Mode() Mode {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.mode
}

// HeartbeatInterval returns the keep-alive interval learned from the
// tracker at connect time. Zero means the tracker requires no heartbeat.
func (t *EyeTribe) HeartbeatInterval() time.Duration {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.hbint
}

// IsCalibrated reports the calibration state the tracker announced at
// connect time.
func (t *EyeTribe) IsCalibrated() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.calibrated
}

// LatestCalibrationResult returns the result of the latest completed
// calibration, or nil before any calibration has completed.
func (t *EyeTribe) LatestCalibrationResult() *CalibrationResult {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.calib
}

// GetTimeout returns the connect/write timeout in milliseconds.
func (t *EyeTribe) GetTimeout() uint32 {
	return uint32(t.timeout / time.Millisecond)
}

// SetTimeout sets the connect/write timeout in milliseconds.
func (t *EyeTribe) SetTimeout(value uint32) error {
	t.timeout = time.Duration(value) * time.Millisecond
	return nil
}

// GetTrace returns the current trace level.
func (t *EyeTribe) GetTrace() gxcommon.TraceLevel {
	return t.traceLevel
}

// SetTrace sets the trace level determining which trace events are emitted.
func (t *EyeTribe) SetTrace(traceLevel gxcommon.TraceLevel) error {
	t.traceLevel = traceLevel
	return nil
}

// GetBytesSent returns the number of bytes written to the tracker.
func (t *EyeTribe) GetBytesSent() uint64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.bytesSent
}

// GetBytesReceived returns the number of bytes read from the tracker.
func (t *EyeTribe) GetBytesReceived() uint64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.bytesReceived
}

// ResetByteCounters resets the sent/received byte counters.
func (t *EyeTribe) ResetByteCounters() {
	t.mu.Lock()
	t.bytesSent = 0
	t.bytesReceived = 0
	t.mu.Unlock()
}

// SetOnTrace registers the trace event handler.
func (t *EyeTribe) SetOnTrace(value TraceEventHandler) {
	t.mu.Lock()
	t.onTrace = value
	t.mu.Unlock()
}

// SetOnError registers the asynchronous error handler.
func (t *EyeTribe) SetOnError(value ErrorEventHandler) {
	t.mu.Lock()
	t.onErr = value
	t.mu.Unlock()
}

// SetOnStateChange registers the connection state change handler.
func (t *EyeTribe) SetOnStateChange(value StateEventHandler) {
	t.mu.Lock()
	t.onState = value
	t.mu.Unlock()
}

// Connect opens the TCP connection to the tracker, starts the listener and
// performs the initial exchange that learns the heartbeat interval and the
// calibration state. With a non-zero interval the read timeout is tightened
// to twice the interval and the heartbeater is started.
func (t *EyeTribe) Connect() error {
	t.mu.Lock()
	if t.conn != nil {
		t.mu.Unlock()
		return ErrAlreadyConnected
	}
	t.statef(false, gxcommon.MediaStateOpening)
	t.trace(false, gxcommon.TraceTypesInfo, t.p.Sprintf("msg.connecting_to", t.HostName, t.Port, t.timeout.Milliseconds()))
	conn, err := net.DialTimeout("tcp", net.JoinHostPort(t.HostName, strconv.Itoa(t.Port)), t.timeout)
	if err != nil {
		t.trace(false, gxcommon.TraceTypesError, t.p.Sprintf("msg.connect_failed", t.HostName, t.Port, err))
		t.errorf(false, err)
		t.mu.Unlock()
		return err
	}
	t.conn = conn
	t.stop = make(chan struct{})
	t.stopped = false
	t.broken = nil
	t.mode = ModePull
	t.readTO = defaultReadTimeout
	t.hbint = 0
	t.queue = newFrameQueue()
	t.wg.Add(1)
	go t.listener()
	t.mu.Unlock()

	r, err := t.tellTracker(etmGetInit)
	if err != nil {
		_ = t.close(true)
		return err
	}
	if r.Values == nil || r.Values.HeartbeatInterval == nil {
		_ = t.close(true)
		return fmt.Errorf("%w: connect reply missing %q", ErrMalformedFrame, "heartbeatinterval")
	}
	hb := time.Duration(*r.Values.HeartbeatInterval) * time.Millisecond

	t.mu.Lock()
	t.hbint = hb
	if hb > 0 {
		t.readTO = 2 * hb
	}
	if r.Values.IsCalibrated != nil {
		t.calibrated = *r.Values.IsCalibrated
	}
	if hb > 0 && t.conn != nil {
		t.wg.Add(1)
		go t.heartbeater(hb, t.stop)
	}
	t.mu.Unlock()

	t.trace(true, gxcommon.TraceTypesInfo, t.p.Sprintf("msg.connected_to", t.HostName, t.Port))
	t.statef(true, gxcommon.MediaStateOpen)
	return nil
}

// Close tears down the connection and waits for the listener and the
// heartbeater to exit, bounded by three heartbeat intervals (capped). It
// returns ErrShutdownTimeout if they do not stop in time. Close is safe to
// call while other callers are blocked; they unblock with an error. The
// session is reusable through a fresh Connect afterwards.
func (t *EyeTribe) Close() error {
	return t.close(false)
}

// CloseNow tears down the connection without waiting for the background
// goroutines to exit.
func (t *EyeTribe) CloseNow() error {
	return t.close(true)
}

func (t *EyeTribe) close(quick bool) error {
	t.mu.Lock()
	conn := t.conn
	if conn != nil {
		t.trace(false, gxcommon.TraceTypesInfo, t.p.Sprintf("msg.closing_connection", t.HostName, t.Port))
		t.statef(false, gxcommon.MediaStateClosing)
	}
	t.conn = nil
	if t.stop != nil && !t.stopped {
		close(t.stop)
		t.stopped = true
	}
	t.mode = ModePull
	t.callback = nil
	grace := closeGrace
	if t.hbint > 0 && 3*t.hbint < grace {
		grace = 3 * t.hbint
	}
	queue := t.queue
	t.mu.Unlock()

	var err error
	if conn != nil {
		// Make sure the listener goroutine is not blocked on read.
		_ = conn.SetReadDeadline(time.Now())
		err = conn.Close()
	}
	t.gate.fail(ErrNotConnected)
	if queue != nil {
		queue.fail(ErrNotConnected)
	}
	if !quick {
		done := make(chan struct{})
		go func() {
			t.wg.Wait()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(grace):
			return ErrShutdownTimeout
		}
	}
	if conn != nil {
		t.trace(true, gxcommon.TraceTypesInfo, t.p.Sprintf("msg.connection_closed", t.HostName, t.Port))
		t.statef(true, gxcommon.MediaStateClosed)
	}
	return err
}

// PushMode switches the tracker to push (streaming) mode. The optional
// callback is invoked on the listener goroutine for every frame; a nil
// callback leaves frames to be collected through Next. A no-op when
// already in push mode. The mode transitions only on a 200 reply.
func (t *EyeTribe) PushMode(callback FrameFunc) error {
	if t.Mode() == ModePush {
		return nil
	}
	if callback != nil {
		t.setCallback(callback)
	}
	_, err := t.exchange(etmSetPush, func(r *reply) {
		if r.StatusCode == statusOK {
			t.setMode(ModePush)
		}
	})
	return err
}

// PullMode switches the tracker back to pull mode, where every frame is
// requested explicitly through Next. A no-op when already in pull mode.
// Any registered push callback is cleared.
func (t *EyeTribe) PullMode() error {
	if t.Mode() == ModePull {
		return nil
	}
	_, err := t.exchange(etmSetPull, func(r *reply) {
		if r.StatusCode == statusOK {
			t.setMode(ModePull)
		}
	})
	if err != nil {
		return err
	}
	t.setCallback(nil)
	return nil
}

// Next returns the next tracking frame. In push mode it dequeues from the
// frame queue, blocking until a frame arrives when block is true and
// returning (nil, nil) immediately on an empty queue otherwise. In pull
// mode it requests a single frame from the tracker synchronously.
func (t *EyeTribe) Next(block bool) (*Frame, error) {
	if t.Mode() == ModePush {
		t.mu.RLock()
		queue := t.queue
		t.mu.RUnlock()
		if queue == nil {
			return nil, ErrNotConnected
		}
		return queue.pop(block)
	}
	r, err := t.tellTracker(etmGetFrame)
	if err != nil {
		return nil, err
	}
	if r.Values == nil || r.Values.Frame == nil {
		return nil, fmt.Errorf("%w: reply carries no frame", ErrMalformedFrame)
	}
	return decodeFrame(r.Values.Frame)
}

// GetScreenRes returns the screen resolution the tracker is calibrated
// against.
func (t *EyeTribe) GetScreenRes() (int, int, error) {
	r, err := t.tellTracker(etmGetScreenRes)
	if err != nil {
		return 0, 0, err
	}
	if r.Values == nil || r.Values.ScreenResW == nil || r.Values.ScreenResH == nil {
		return 0, 0, fmt.Errorf("%w: reply missing screen resolution", ErrMalformedFrame)
	}
	return *r.Values.ScreenResW, *r.Values.ScreenResH, nil
}

// CalibrationStart announces a calibration sequence of pointCount targets.
func (t *EyeTribe) CalibrationStart(pointCount int) error {
	_, err := t.tellTracker(etmCalibStart(pointCount))
	return err
}

// CalibrationPointStart marks the onset of one calibration target at the
// given screen coordinates.
func (t *EyeTribe) CalibrationPointStart(x, y int) error {
	_, err := t.tellTracker(etmCalibPointStart(x, y))
	return err
}

// CalibrationPointEnd marks the end of the current calibration target.
// When the reply carries the calibration result (after the final point) it
// is decoded and stored, overwriting any previous result.
func (t *EyeTribe) CalibrationPointEnd() error {
	r, err := t.tellTracker(etmCalibEnd)
	if err != nil {
		return err
	}
	if r.Values != nil && r.Values.CalibResult != nil {
		res, err := decodeCalibResult(r.Values.CalibResult)
		if err != nil {
			return err
		}
		t.mu.Lock()
		t.calib = res
		t.calibrated = res.Result
		t.mu.Unlock()
	}
	return nil
}

// CalibrationAbort aborts an ongoing calibration sequence.
func (t *EyeTribe) CalibrationAbort() error {
	_, err := t.tellTracker(etmCalibAbort)
	return err
}

// CalibrationClear clears the current calibration from the tracker.
func (t *EyeTribe) CalibrationClear() error {
	_, err := t.tellTracker(etmCalibClear)
	return err
}

// tellTracker performs one synchronous command/reply exchange through the
// reply gate. At most one exchange is in flight per session at any time;
// pushed frames are never routed through here.
func (t *EyeTribe) tellTracker(req string) (*reply, error) {
	return t.exchange(req, nil)
}

func (t *EyeTribe) exchange(req string, onReply func(*reply)) (*reply, error) {
	t.mu.RLock()
	conn := t.conn
	broken := t.broken
	t.mu.RUnlock()
	if conn == nil {
		if broken != nil {
			return nil, broken
		}
		return nil, ErrNotConnected
	}
	if err := t.gate.acquire(onReply); err != nil {
		return nil, err
	}
	defer t.gate.release()
	if err := t.send(req); err != nil {
		return nil, err
	}
	r, err := t.gate.wait()
	if err != nil {
		return nil, err
	}
	if r.StatusCode != statusOK {
		return nil, &TrackerError{Status: r.StatusCode}
	}
	return r, nil
}

// send writes one complete request to the socket. Requests are
// self-contained JSON objects, so writes from callers and the heartbeater
// need no further serialization at the transport layer.
func (t *EyeTribe) send(data string) error {
	t.mu.RLock()
	conn := t.conn
	to := t.timeout
	t.mu.RUnlock()
	if conn == nil {
		return ErrNotConnected
	}
	t.tracef(true, gxcommon.TraceTypesSent, "TX: %s", data)
	if to > 0 {
		_ = conn.SetWriteDeadline(time.Now().Add(to))
	}
	n, err := conn.Write([]byte(data))
	t.mu.Lock()
	t.bytesSent += uint64(n)
	t.mu.Unlock()
	return err
}

// listener is the only goroutine that reads the socket. It splits each read
// on newlines (the tracker batches several objects per segment and
// terminates each with an undocumented newline), classifies every message
// and routes it to the gate, the frame queue or the push callback.
func (t *EyeTribe) listener() {
	defer t.wg.Done()
	buf := make([]byte, etmBufferSize)

	for {
		t.mu.RLock()
		conn := t.conn
		to := t.readTO
		t.mu.RUnlock()
		if conn == nil {
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(to))
		n, err := conn.Read(buf)
		if err != nil {
			if t.closing() {
				// Deliberate close; exit silently.
				return
			}
			if ne, ok := err.(net.Error); ok && ne.Timeout() {
				t.fatal(fmt.Errorf("%w: read timeout", ErrConnectionLost))
				return
			}
			if errors.Is(err, net.ErrClosed) || errors.Is(err, io.EOF) {
				t.fatal(fmt.Errorf("%w: connection reset", ErrConnectionLost))
				return
			}
			t.fatal(fmt.Errorf("%w: %v", ErrConnectionLost, err))
			return
		}
		t.mu.Lock()
		t.bytesReceived += uint64(n)
		t.mu.Unlock()

		// A JSON object split across two reads is not reassembled; the
		// tracker is not known to fragment objects.
		for _, line := range strings.Split(string(buf[:n]), "\n") {
			js := strings.TrimSpace(line)
			if js == "" {
				continue
			}
			t.tracef(true, gxcommon.TraceTypesReceived, "RX: %s", js)
			var r reply
			if err := json.Unmarshal([]byte(js), &r); err != nil {
				t.fatal(fmt.Errorf("%w: undecodable message", ErrMalformedFrame))
				return
			}
			if err := t.dispatch(&r); err != nil {
				t.fatal(err)
				return
			}
		}
	}
}

// dispatch classifies one inbound message: heartbeat acknowledgements and
// mid-calibration progress are discarded, frames in push mode go to the
// callback and/or the queue, everything else is a command reply for the
// gate. The returned error, if any, is fatal to the session.
func (t *EyeTribe) dispatch(r *reply) error {
	switch {
	case r.Category == "heartbeat":
		return nil
	case r.Category == "calibration" && r.StatusCode == statusCalibrating:
		// Non-terminal progress acknowledgement.
		return nil
	case t.Mode() == ModePush && r.Values != nil && r.Values.Frame != nil:
		if r.StatusCode != statusOK {
			return &StreamError{Status: r.StatusCode}
		}
		f, err := decodeFrame(r.Values.Frame)
		if err != nil {
			return err
		}
		t.mu.RLock()
		cb := t.callback
		queue := t.queue
		t.mu.RUnlock()
		if cb != nil && cb(f) {
			return nil
		}
		queue.push(f)
		return nil
	default:
		if !t.gate.deliver(r) {
			return ErrUnsolicitedReply
		}
		return nil
	}
}

// fatal marks the session broken, tears the socket down and fails every
// blocked caller so nobody hangs on a dead connection.
func (t *EyeTribe) fatal(err error) {
	t.mu.Lock()
	if t.conn == nil || t.stopped {
		t.mu.Unlock()
		return
	}
	t.broken = err
	conn := t.conn
	t.conn = nil
	close(t.stop)
	t.stopped = true
	queue := t.queue
	t.mu.Unlock()

	_ = conn.Close()
	t.gate.fail(err)
	if queue != nil {
		queue.fail(err)
	}
	t.trace(true, gxcommon.TraceTypesError, t.p.Sprintf("msg.connection_failed", err))
	t.errorf(true, err)
	t.statef(true, gxcommon.MediaStateClosed)
}

// heartbeater periodically writes the keep-alive message. It never reads
// and never fails the session: a write failure means the socket is being
// torn down and close is already handling it.
func (t *EyeTribe) heartbeater(interval time.Duration, stop <-chan struct{}) {
	defer t.wg.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	if err := t.send(etmHeartbeat); err != nil {
		return
	}
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if err := t.send(etmHeartbeat); err != nil {
				return
			}
		}
	}
}

func (t *EyeTribe) closing() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.stopped && t.broken == nil
}

func (t *EyeTribe) setMode(m Mode) {
	t.mu.Lock()
	t.mode = m
	t.mu.Unlock()
}

func (t *EyeTribe) setCallback(cb FrameFunc) {
	t.mu.Lock()
	t.callback = cb
	t.mu.Unlock()
}

func (t *EyeTribe) errorf(lock bool, err error) {
	var cb ErrorEventHandler
	if lock {
		t.mu.RLock()
		cb = t.onErr
		t.mu.RUnlock()
	} else {
		cb = t.onErr
	}
	if cb != nil {
		cb(t, err)
	}
}

func (t *EyeTribe) tracef(lock bool, traceType gxcommon.TraceTypes, fmtStr string, a ...any) {
	var cb TraceEventHandler
	trace := false
	if lock {
		t.mu.RLock()
		trace = !(int(t.traceLevel) < int(traceType))
		cb = t.onTrace
		t.mu.RUnlock()
	} else {
		trace = !(int(t.traceLevel) < int(traceType))
		cb = t.onTrace
	}
	if cb != nil && trace {
		e := gxcommon.NewTraceEventArgs(traceType, fmt.Sprintf(fmtStr, a...), "")
		cb(t, *e)
	}
}

func (t *EyeTribe) trace(lock bool, traceType gxcommon.TraceTypes, message string) {
	var cb TraceEventHandler
	trace := false
	if lock {
		t.mu.RLock()
		trace = !(int(t.traceLevel) < int(traceType))
		cb = t.onTrace
		t.mu.RUnlock()
	} else {
		trace = !(int(t.traceLevel) < int(traceType))
		cb = t.onTrace
	}
	if cb != nil && trace {
		e := gxcommon.NewTraceEventArgs(traceType, message, "")
		cb(t, *e)
	}
}

func (t *EyeTribe) statef(lock bool, state gxcommon.MediaState) {
	var cb StateEventHandler
	if lock {
		t.mu.RLock()
		cb = t.onState
		t.mu.RUnlock()
	} else {
		cb = t.onState
	}
	if cb != nil {
		cb(t, *gxcommon.NewMediaStateEventArgs(state))
	}
}

//nolint:errcheck
func init() {
	// --- English (default) ---
	message.SetString(language.AmericanEnglish, "msg.closing_connection", "Closing connection to %s:%d")
	message.SetString(language.AmericanEnglish, "msg.connection_closed", "Connection closed to %s:%d")
	message.SetString(language.AmericanEnglish, "msg.connection_failed", "Connection failed: %v")
	message.SetString(language.AmericanEnglish, "msg.connected_to", "Connected to %s:%d")
	message.SetString(language.AmericanEnglish, "msg.connect_failed", "connect to %s:%d failed: %v")
	message.SetString(language.AmericanEnglish, "msg.connecting_to", "Connecting to %s:%d timeout %d ms")

	// --- Danish (da) ---
	message.SetString(language.Danish, "msg.closing_connection", "Lukker forbindelsen til %s:%d")
	message.SetString(language.Danish, "msg.connection_closed", "Forbindelsen til %s:%d er lukket")
	message.SetString(language.Danish, "msg.connection_failed", "Forbindelsen fejlede: %v")
	message.SetString(language.Danish, "msg.connected_to", "Forbundet til %s:%d")
	message.SetString(language.Danish, "msg.connect_failed", "forbindelse til %s:%d fejlede: %v")
	message.SetString(language.Danish, "msg.connecting_to", "Forbinder til %s:%d timeout %d ms")

	// --- German (de) ---
	message.SetString(language.German, "msg.closing_connection", "Verbindung zu %s:%d wird geschlossen")
	message.SetString(language.German, "msg.connection_closed", "Verbindung zu %s:%d wurde geschlossen")
	message.SetString(language.German, "msg.connection_failed", "Verbindung fehlgeschlagen: %v")
	message.SetString(language.German, "msg.connected_to", "Verbunden mit %s:%d")
	message.SetString(language.German, "msg.connect_failed", "Verbindung zu %s:%d fehlgeschlagen: %v")
	message.SetString(language.German, "msg.connecting_to", "Verbindet sich mit %s:%d timeout %d ms")
}

// Localize messages for the specified language.
// No errors is returned if language is not supported.
func (t *EyeTribe) Localize(language language.Tag) {
	t.p = message.NewPrinter(language)
}
