package slicer

import (
	"regexp"
	"strconv"
	"strings"
)

// PrusaSlicer emits usage figures as G-code comments. Both comment styles
// observed across slicer versions are recognized.
var filamentPatterns = []*regexp.Regexp{
	regexp.MustCompile(`filament used \[g\] *= *([0-9.]+)`),
	regexp.MustCompile(`Filament used: *([0-9.]+) *g`),
}

var (
	timePattern    = regexp.MustCompile(`(?i)estimated printing time.*=\s*([0-9hms\s]+)`)
	hoursPattern   = regexp.MustCompile(`(\d+)\s*h`)
	minutesPattern = regexp.MustCompile(`(\d+)\s*m`)
	secondsPattern = regexp.MustCompile(`(\d+)\s*s`)
)

// ParseFilamentGrams extracts the filament mass from G-code comments.
// Returns false when no usage comment is present.
func ParseFilamentGrams(gcode string) (float64, bool) {
	for _, line := range strings.Split(gcode, "\n") {
		for _, p := range filamentPatterns {
			if m := p.FindStringSubmatch(line); m != nil {
				g, err := strconv.ParseFloat(m[1], 64)
				if err != nil {
					continue
				}
				return g, true
			}
		}
	}
	return 0, false
}

// ParsePrintTimeSeconds extracts the estimated print time from G-code
// comments, e.g. "estimated printing time (normal mode) = 1h 35m 10s".
// Returns false when no estimate is present.
func ParsePrintTimeSeconds(gcode string) (int64, bool) {
	m := timePattern.FindStringSubmatch(gcode)
	if m == nil {
		return 0, false
	}

	span := m[1]
	var seconds int64

	if h := hoursPattern.FindStringSubmatch(span); h != nil {
		n, _ := strconv.ParseInt(h[1], 10, 64)
		seconds += n * 3600
	}
	if min := minutesPattern.FindStringSubmatch(span); min != nil {
		n, _ := strconv.ParseInt(min[1], 10, 64)
		seconds += n * 60
	}
	if s := secondsPattern.FindStringSubmatch(span); s != nil {
		n, _ := strconv.ParseInt(s[1], 10, 64)
		seconds += n
	}

	return seconds, true
}
