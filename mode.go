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

	"github.com/Gurux/gxcommon-go"
)

// Mode determines how tracking frames are obtained from the tracker.
type Mode int

const (
	// ModePull defines that every frame is requested explicitly with Next.
	// This is the tracker default after connect.
	ModePull Mode = iota
	// ModePush defines that the tracker streams frames continuously.
	ModePush
)

// ModeParse converts the given string into a Mode value.
//
// It returns the corresponding Mode constant if the string matches a known
// mode name, or an error if the input is invalid.
func ModeParse(value string) (Mode, error) {
	var ret Mode
	var err error
	switch strings.ToUpper(value) {
	case "PULL":
		ret = ModePull
	case "PUSH":
		ret = ModePush
	default:
		err = fmt.Errorf("%w: %q", gxcommon.ErrUnknownEnum, value)
	}
	return ret, err
}

// String returns the canonical name of the mode.
// It satisfies fmt.Stringer.
func (m Mode) String() string {
	var ret string
	switch m {
	case ModePull:
		ret = "PULL"
	case ModePush:
		ret = "PUSH"
	}
	return ret
}
