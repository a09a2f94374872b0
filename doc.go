// Package peyetribe provides a Go client for the Eye Tribe eye tracker.
// It implements the tracker's line-delimited JSON protocol over a single
// TCP connection: synchronous commands (connect, screen resolution,
// calibration) and a continuous stream of tracking frames once the tracker
// is switched into push mode, multiplexed over one socket.
//
// Features
//
//   - Modes: pull (request each frame) and push (streamed frames), see Mode.
//   - Demultiplexing: one listener goroutine classifies every inbound
//     message as a heartbeat acknowledgement, a calibration progress
//     acknowledgement, a command reply or a streamed frame.
//   - Commands: at most one synchronous exchange in flight at a time,
//     serialized by an internal reply gate; safe from many goroutines.
//   - Keep-alive: heartbeats at the interval the tracker announces.
//   - Calibration: start/pointstart/pointend/abort/clear, with per-point
//     quality metrics in CalibrationResult.
//   - Tracing: configurable trace level/mask for sent/received/error/info.
//   - Events: Trace, Error and state change callbacks.
//   - Concurrency: Close unblocks pending callers rather than deadlocking.
//
// # Construction
//
// Use New to create a session with host and port (empty host and zero port
// select localhost:6555). Additional options (timeout, tracing) can be
// configured through setters before Connect.
//
// Example
//
//	tracker := peyetribe.New("", 0)
//	if err := tracker.Connect(); err != nil {
//	    // handle connect error
//	}
//	defer tracker.Close()
//
//	if err := tracker.PushMode(nil); err != nil {
//	    // handle error
//	}
//	for i := 0; i < 100; i++ {
//	    f, err := tracker.Next(true)
//	    if err != nil {
//	        break
//	    }
//	    fmt.Println(f)
//	}
//	_ = tracker.PullMode()
//
// # Push callbacks
//
// PushMode accepts an optional callback invoked synchronously on the
// listener goroutine for every frame. Returning true from the callback
// suppresses queueing of that frame; otherwise it remains available via
// Next. Long-running work in the callback should be offloaded to a
// separate goroutine to avoid blocking the read path.
//
// # Errors and timeouts
//
// Command errors are returned synchronously from calls; asynchronous
// failures (a lost connection, an unsolicited reply) break the session,
// unblock every waiting caller and are routed to the Error handler. There
// is no automatic reconnect; reconnection is a fresh Connect. Error
// messages are lowercased per Go style guidelines.
//
// # Notes
//
// The zero value of EyeTribe is not ready for use; always construct via
// New. The tracker terminates each JSON object with an undocumented
// newline and may batch several objects into one segment; the listener
// splits on newlines and discards empty fragments. An object split across
// two reads is not reassembled.
package peyetribe
