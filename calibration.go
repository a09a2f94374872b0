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

// CalibrationResult holds the outcome of the latest completed calibration,
// as reported by the tracker in the final pointend reply.
type CalibrationResult struct {
	// Result is true when the calibration succeeded.
	Result bool
	// Deg is the average error in degrees of visual angle, both eyes.
	Deg float64
	// DegL and DegR are the per-eye average errors in degrees.
	DegL float64
	DegR float64
	// Points holds per-point quality metrics, in tracker-reported order,
	// one entry per calibration point requested.
	Points []CalibrationPoint
}

// CalibrationPoint holds the quality metrics of one calibration target.
type CalibrationPoint struct {
	// State is the tracker status code for this point.
	State int
	// CP is the calibration target position in screen coordinates.
	CP PointF
	// MECP is the mean estimated (corrected) target position.
	MECP PointF
	// AD, ADL and ADR are the angular deviations in degrees
	// (combined, left eye, right eye).
	AD  float64
	ADL float64
	ADR float64
	// MEP, MEPL and MEPR are the mean errors in pixels.
	MEP  float64
	MEPL float64
	MEPR float64
	// ASD, ASDL and ASDR are the standard deviations in pixels.
	ASD  float64
	ASDL float64
	ASDR float64
}

// Wire shapes of a calibresult value. Pointer fields make absent keys
// detectable, as with frames.

type calibData struct {
	Result *bool            `json:"result"`
	Deg    *float64         `json:"deg"`
	DegL   *float64         `json:"degl"`
	DegR   *float64         `json:"degr"`
	Points []calibPointData `json:"calibpoints"`
}

type calibPointData struct {
	State *int       `json:"state"`
	CP    *pointData `json:"cp"`
	MECP  *pointData `json:"mecp"`
	ACD   *struct {
		AD  *float64 `json:"ad"`
		ADL *float64 `json:"adl"`
		ADR *float64 `json:"adr"`
	} `json:"acd"`
	MEPix *struct {
		MEP  *float64 `json:"mep"`
		MEPL *float64 `json:"mepl"`
		MEPR *float64 `json:"mepr"`
	} `json:"mepix"`
	ASDP *struct {
		ASD  *float64 `json:"asd"`
		ASDL *float64 `json:"asdl"`
		ASDR *float64 `json:"asdr"`
	} `json:"asdp"`
}

// decodeCalibResult builds a CalibrationResult from its wire shape, failing
// with a wrapped ErrMalformedFrame if a required key is absent.
func decodeCalibResult(d *calibData) (*CalibrationResult, error) {
	if d == nil {
		return nil, fmt.Errorf("%w: missing calibresult", ErrMalformedFrame)
	}
	if d.Result == nil || d.Deg == nil || d.DegL == nil || d.DegR == nil {
		return nil, fmt.Errorf("%w: incomplete calibresult", ErrMalformedFrame)
	}
	res := &CalibrationResult{
		Result: *d.Result,
		Deg:    *d.Deg,
		DegL:   *d.DegL,
		DegR:   *d.DegR,
		Points: make([]CalibrationPoint, 0, len(d.Points)),
	}
	for i, p := range d.Points {
		cp, err := decodeCalibPoint(&p)
		if err != nil {
			return nil, fmt.Errorf("%w (calibpoint %d)", err, i)
		}
		res.Points = append(res.Points, cp)
	}
	return res, nil
}

func decodeCalibPoint(d *calibPointData) (CalibrationPoint, error) {
	var p CalibrationPoint
	var err error
	if d.State == nil {
		return p, fmt.Errorf("%w: missing %q", ErrMalformedFrame, "state")
	}
	p.State = *d.State
	if p.CP, err = decodePoint(d.CP, "cp"); err != nil {
		return p, err
	}
	if p.MECP, err = decodePoint(d.MECP, "mecp"); err != nil {
		return p, err
	}
	if d.ACD == nil || d.ACD.AD == nil || d.ACD.ADL == nil || d.ACD.ADR == nil {
		return p, fmt.Errorf("%w: missing %q", ErrMalformedFrame, "acd")
	}
	p.AD, p.ADL, p.ADR = *d.ACD.AD, *d.ACD.ADL, *d.ACD.ADR
	if d.MEPix == nil || d.MEPix.MEP == nil || d.MEPix.MEPL == nil || d.MEPix.MEPR == nil {
		return p, fmt.Errorf("%w: missing %q", ErrMalformedFrame, "mepix")
	}
	p.MEP, p.MEPL, p.MEPR = *d.MEPix.MEP, *d.MEPix.MEPL, *d.MEPix.MEPR
	if d.ASDP == nil || d.ASDP.ASD == nil || d.ASDP.ASDL == nil || d.ASDP.ASDR == nil {
		return p, fmt.Errorf("%w: missing %q", ErrMalformedFrame, "asdp")
	}
	p.ASD, p.ASDL, p.ASDR = *d.ASDP.ASD, *d.ASDP.ASDL, *d.ASDP.ASDR
	return p, nil
}
