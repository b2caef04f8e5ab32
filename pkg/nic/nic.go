// Package nic classifies national identity card numbers.
//
// Two formats are accepted: the legacy 9-digit form with a trailing
// letter (v/V/x/X), and the modern 12-digit form. Both embed a 3-digit
// day-of-year segment; values above 500 mark the holder as female.
package nic

import (
	"regexp"
	"strconv"
	"strings"
)

type Gender string

const (
	Male   Gender = "Male"
	Female Gender = "Female"
)

// Info is the result of classifying a raw identity string. Gender is
// empty when Valid is false.
type Info struct {
	Valid  bool
	Gender Gender
}

var (
	reLegacy = regexp.MustCompile(`^[0-9]{9}[vVxX]$`)
	reModern = regexp.MustCompile(`^[0-9]{12}$`)
)

// Parse trims the input and classifies it. It is a pure function: same
// input, same result, no side effects.
func Parse(raw string) Info {
	s := strings.TrimSpace(raw)

	var day string
	switch {
	case reLegacy.MatchString(s):
		day = s[2:5]
	case reModern.MatchString(s):
		day = s[4:7]
	default:
		return Info{}
	}

	// The legacy scheme adds 500 to the day-of-year for women; the same
	// threshold is applied to the modern form on purpose.
	n, _ := strconv.Atoi(day)
	g := Male
	if n > 500 {
		g = Female
	}
	return Info{Valid: true, Gender: g}
}

// Valid reports whether raw is a well-formed NIC in either format.
func Valid(raw string) bool { return Parse(raw).Valid }
