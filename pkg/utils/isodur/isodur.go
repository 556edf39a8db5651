// Package isodur converts ISO-8601 duration strings to minutes.
package isodur

import (
	"regexp"
	"strconv"
	"strings"
)

var durationPattern = regexp.MustCompile(
	`^P(?:(\d+(?:\.\d+)?)W)?(?:(\d+(?:\.\d+)?)D)?(?:T(?:(\d+(?:\.\d+)?)H)?(?:(\d+(?:\.\d+)?)M)?(?:(\d+(?:\.\d+)?)S)?)?$`)

// Minutes converts an ISO-8601 duration (e.g. "PT5M30S") to total minutes.
//
// Malformed durations are treated as "duration unknown" and yield 0; this
// function never fails outward. Surrounding whitespace and lowercase
// designators are accepted deliberately, looser than strict ISO-8601, since
// a recoverable duration beats a 0 fallback.
func Minutes(iso string) float64 {
	iso = strings.TrimSpace(strings.ToUpper(iso))
	if iso == "" || iso == "P" || iso == "PT" {
		return 0
	}

	m := durationPattern.FindStringSubmatch(iso)
	if m == nil {
		return 0
	}

	weeks := number(m[1])
	days := number(m[2])
	hours := number(m[3])
	minutes := number(m[4])
	seconds := number(m[5])

	total := weeks*7*24*60 + days*24*60 + hours*60 + minutes + seconds/60
	if total < 0 {
		return 0
	}
	return total
}

func number(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
