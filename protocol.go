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

import "fmt"

// Request messages, verbatim protocol vocabulary of the tracker server.
const (
	etmGetInit      = `{ "category": "tracker", "request" : "get", "values": [ "iscalibrated", "heartbeatinterval" ] }`
	etmSetPush      = `{ "category": "tracker", "request" : "set", "values": { "push": true } }`
	etmSetPull      = `{ "category": "tracker", "request" : "set", "values": { "push": false } }`
	etmGetFrame     = `{ "category": "tracker", "request" : "get", "values": [ "frame" ] }`
	etmGetScreenRes = `{ "category": "tracker", "request" : "get", "values": [ "screenresw", "screenresh" ] }`
	etmCalibAbort   = `{ "category": "calibration", "request" : "abort" }`
	etmCalibClear   = `{ "category": "calibration", "request" : "clear" }`
	etmCalibEnd     = `{ "category": "calibration", "request" : "pointend" }`
	etmHeartbeat    = `{ "category": "heartbeat" }`
)

// etmBufferSize is the receive buffer size; the tracker batches several
// newline-terminated JSON objects into one segment but stays well below this.
const etmBufferSize = 4096

// Reply status codes defined by the tracker protocol.
const (
	statusOK          = 200
	statusCalibrating = 800
)

func etmCalibStart(pointCount int) string {
	return fmt.Sprintf(`{ "category": "calibration", "request" : "start", "values": { "pointcount": %d } }`, pointCount)
}

func etmCalibPointStart(x, y int) string {
	return fmt.Sprintf(`{ "category": "calibration", "request" : "pointstart", "values": { "x": %d, "y": %d } }`, x, y)
}

// reply is the envelope every inbound tracker message decodes into, both
// command replies and streamed frames. The listener dispatches on Category,
// StatusCode and the optional Values fields rather than inspecting raw JSON.
type reply struct {
	Category   string       `json:"category"`
	Request    string       `json:"request"`
	StatusCode int          `json:"statuscode"`
	Values     *replyValues `json:"values"`
}

// replyValues holds every value key the tracker may attach to a reply or a
// streamed frame. Pointer fields make absent keys detectable.
type replyValues struct {
	Frame             *frameData `json:"frame"`
	HeartbeatInterval *int       `json:"heartbeatinterval"`
	IsCalibrated      *bool      `json:"iscalibrated"`
	ScreenResW        *int       `json:"screenresw"`
	ScreenResH        *int       `json:"screenresh"`
	CalibResult       *calibData `json:"calibresult"`
	Push              *bool      `json:"push"`
}
