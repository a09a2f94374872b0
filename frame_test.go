package peyetribe

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testFrameJSON = `{ "time": 62171034, "timestamp": "2014-03-28 12:34:56.123456", "fix": true, "state": 7, "raw": { "x": 512, "y": 384 }, "avg": { "x": 510, "y": 380 }, "lefteye": { "raw": { "x": 500, "y": 380 }, "avg": { "x": 501, "y": 381 }, "psize": 22.5, "pcenter": { "x": 0.512, "y": 0.478 } }, "righteye": { "raw": { "x": 520, "y": 382 }, "avg": { "x": 521, "y": 383 }, "psize": 23.0, "pcenter": { "x": 0.533, "y": 0.489 } } }`

func decodeTestFrame(t *testing.T, js string) (*Frame, error) {
	t.Helper()
	var d frameData
	require.NoError(t, json.Unmarshal([]byte(js), &d))
	return decodeFrame(&d)
}

func TestDecodeFrame(t *testing.T) {
	before := time.Now()
	f, err := decodeTestFrame(t, testFrameJSON)
	require.NoError(t, err)

	assert.InDelta(t, 62171.034, f.Time, 1e-9)
	want, err2 := time.ParseInLocation(timestampLayout, "2014-03-28 12:34:56.123456", time.Local)
	require.NoError(t, err2)
	assert.Equal(t, float64(want.UnixNano())/1e9, f.Timestamp)
	assert.True(t, f.Fix)
	assert.Equal(t, 7, f.State)
	assert.NotZero(t, f.State&StateGaze)
	assert.NotZero(t, f.State&StateEyes)
	assert.NotZero(t, f.State&StatePresence)
	assert.Zero(t, f.State&StateFix)
	assert.Zero(t, f.State&StateLost)
	assert.Equal(t, Coord{X: 512, Y: 384}, f.Raw)
	assert.Equal(t, Coord{X: 510, Y: 380}, f.Avg)
	assert.Equal(t, Coord{X: 500, Y: 380}, f.LeftEye.Raw)
	assert.Equal(t, Coord{X: 501, Y: 381}, f.LeftEye.Avg)
	assert.Equal(t, 22.5, f.LeftEye.PSize)
	assert.Equal(t, PointF{X: 0.512, Y: 0.478}, f.LeftEye.PCenter)
	assert.Equal(t, Coord{X: 520, Y: 382}, f.RightEye.Raw)
	assert.Equal(t, 23.0, f.RightEye.PSize)
	assert.Equal(t, f.LeftEye, f.Eye(true))
	assert.Equal(t, f.RightEye, f.Eye(false))
	assert.False(t, f.ETime.Before(before))
}

func TestDecodeFrameTimestampPrecision(t *testing.T) {
	f, err := decodeTestFrame(t, testFrameJSON)
	require.NoError(t, err)
	// Microseconds must survive the conversion to epoch seconds.
	frac := f.Timestamp - math.Floor(f.Timestamp)
	assert.InDelta(t, 0.123456, frac, 1e-6)
}

// deleteKey removes a nested key from a decoded JSON object.
func deleteKey(m map[string]any, path ...string) {
	for _, p := range path[:len(path)-1] {
		m = m[p].(map[string]any)
	}
	delete(m, path[len(path)-1])
}

func TestDecodeFrameMissingKeys(t *testing.T) {
	paths := [][]string{
		{"time"},
		{"timestamp"},
		{"fix"},
		{"state"},
		{"raw"},
		{"raw", "x"},
		{"avg", "y"},
		{"lefteye"},
		{"lefteye", "raw"},
		{"lefteye", "avg", "x"},
		{"lefteye", "psize"},
		{"lefteye", "pcenter"},
		{"lefteye", "pcenter", "y"},
		{"righteye", "raw", "y"},
		{"righteye", "psize"},
		{"righteye", "pcenter", "x"},
	}
	for _, path := range paths {
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(testFrameJSON), &m))
		deleteKey(m, path...)
		js, err := json.Marshal(m)
		require.NoError(t, err)
		_, err = decodeTestFrame(t, string(js))
		assert.ErrorIs(t, err, ErrMalformedFrame, "deleted %v", path)
	}
}

func TestDecodeFrameBadTimestamp(t *testing.T) {
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(testFrameJSON), &m))
	m["timestamp"] = "yesterday around noon"
	js, err := json.Marshal(m)
	require.NoError(t, err)
	_, err = decodeTestFrame(t, string(js))
	assert.ErrorIs(t, err, ErrMalformedFrame)
}

func TestFrameString(t *testing.T) {
	f := &Frame{
		ETime:     time.Unix(1396010096, 123000000),
		Time:      62171.034,
		Timestamp: 1396010096.500,
		Fix:       true,
		State:     StateGaze | StateEyes | StatePresence,
		Raw:       Coord{X: 512, Y: 384},
		Avg:       Coord{X: 510, Y: 380},
		LeftEye: Eye{
			Raw: Coord{X: 500, Y: 380}, Avg: Coord{X: 501, Y: 381},
			PSize: 22.5, PCenter: PointF{X: 0.512, Y: 0.478},
		},
		RightEye: Eye{
			Raw: Coord{X: 520, Y: 382}, Avg: Coord{X: 521, Y: 383},
			PSize: 23.0, PCenter: PointF{X: 0.533, Y: 0.489},
		},
	}
	want := "1396010096.123;62171.034;1396010096.500;F;..PEG;512;384;510;380" +
		";500;380;501;381;22.5;0.512;0.478" +
		";520;382;521;383;23.0;0.533;0.489"
	assert.Equal(t, want, f.String())
}

func TestFrameStringStateLetters(t *testing.T) {
	f := &Frame{State: StateLost | StateFix}
	assert.Contains(t, f.String(), ";LF...;")
}
