package peyetribe

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildCalibResultJSON produces a calibresult value with n points, laid out
// the way the tracker reports a completed calibration. Point i sits at
// (100*(i+1), 100*(i+1)) with deterministic per-point metrics.
func buildCalibResultJSON(n int) string {
	var b strings.Builder
	b.WriteString(`{ "result": true, "deg": 0.52, "degl": 0.48, "degr": 0.57, "calibpoints": [`)
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		c := float64((i + 1) * 100)
		fmt.Fprintf(&b,
			`{ "state": 2, "cp": { "x": %.1f, "y": %.1f }, "mecp": { "x": %.1f, "y": %.1f },`+
				` "acd": { "ad": 0.5%d, "adl": 0.4%d, "adr": 0.6%d },`+
				` "mepix": { "mep": 1%d.5, "mepl": 1%d.2, "mepr": 1%d.9 },`+
				` "asdp": { "asd": 2.%d, "asdl": 2.%d, "asdr": 2.%d } }`,
			c, c, c+1.5, c-0.5, i, i, i, i, i, i, i, i, i)
	}
	b.WriteString(`] }`)
	return b.String()
}

func TestDecodeCalibResult(t *testing.T) {
	var d calibData
	require.NoError(t, json.Unmarshal([]byte(buildCalibResultJSON(9)), &d))
	res, err := decodeCalibResult(&d)
	require.NoError(t, err)

	assert.True(t, res.Result)
	assert.Equal(t, 0.52, res.Deg)
	assert.Equal(t, 0.48, res.DegL)
	assert.Equal(t, 0.57, res.DegR)
	require.Len(t, res.Points, 9)

	// Points must come out in the order the tracker sent them.
	for i, p := range res.Points {
		c := float64((i + 1) * 100)
		assert.Equal(t, 2, p.State, "point %d", i)
		assert.Equal(t, PointF{X: c, Y: c}, p.CP, "point %d", i)
		assert.Equal(t, PointF{X: c + 1.5, Y: c - 0.5}, p.MECP, "point %d", i)
	}
	assert.Equal(t, 0.53, res.Points[3].AD)
	assert.Equal(t, 0.43, res.Points[3].ADL)
	assert.Equal(t, 0.63, res.Points[3].ADR)
	assert.Equal(t, 13.5, res.Points[3].MEP)
	assert.Equal(t, 13.2, res.Points[3].MEPL)
	assert.Equal(t, 13.9, res.Points[3].MEPR)
	assert.Equal(t, 2.3, res.Points[3].ASD)
}

func TestDecodeCalibResultMissingKeys(t *testing.T) {
	paths := [][]string{
		{"result"},
		{"deg"},
		{"degl"},
		{"degr"},
	}
	for _, path := range paths {
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(buildCalibResultJSON(2)), &m))
		deleteKey(m, path...)
		js, err := json.Marshal(m)
		require.NoError(t, err)
		var d calibData
		require.NoError(t, json.Unmarshal(js, &d))
		_, err = decodeCalibResult(&d)
		assert.ErrorIs(t, err, ErrMalformedFrame, "deleted %v", path)
	}
}

func TestDecodeCalibResultMissingPointKey(t *testing.T) {
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(buildCalibResultJSON(3)), &m))
	pt := m["calibpoints"].([]any)[1].(map[string]any)
	delete(pt, "acd")
	js, err := json.Marshal(m)
	require.NoError(t, err)
	var d calibData
	require.NoError(t, json.Unmarshal(js, &d))
	_, err = decodeCalibResult(&d)
	require.ErrorIs(t, err, ErrMalformedFrame)
	assert.Contains(t, err.Error(), "calibpoint 1")
}

func TestDecodeCalibResultNil(t *testing.T) {
	_, err := decodeCalibResult(nil)
	assert.ErrorIs(t, err, ErrMalformedFrame)
}
