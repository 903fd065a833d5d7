package timecode

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var strictRE = regexp.MustCompile(`^(\d{2}):(\d{2}):(\d{2})\.(\d{3})$`)

// Parse converts a strict HH:MM:SS.mmm timestamp to seconds. Malformed input
// yields 0 rather than an error: timestamps come from user-supplied files and
// a bad one should not abort an import.
func Parse(s string) float64 {
	m := strictRE.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	h, _ := strconv.Atoi(m[1])
	mi, _ := strconv.Atoi(m[2])
	se, _ := strconv.Atoi(m[3])
	ms, _ := strconv.Atoi(m[4])
	return float64(h*3600000+mi*60000+se*1000+ms) / 1000.0
}

// Format converts seconds to HH:MM:SS.mmm. Negative input is clamped to 0.
// Hours are not wrapped at 24. Sub-millisecond precision is truncated.
func Format(sec float64) string {
	if sec < 0 {
		sec = 0
	}
	// The small bias keeps millisecond-grain values exact under float error
	// without rounding genuine sub-millisecond fractions up.
	ms := int64(math.Floor(sec*1000 + 1e-6))
	h := ms / 3600000
	ms -= h * 3600000
	mi := ms / 60000
	ms -= mi * 60000
	se := ms / 1000
	ms -= se * 1000
	return fmt.Sprintf("%02d:%02d:%02d.%03d", h, mi, se, ms)
}

// ParseLenient accepts the variable-width H:M:S or H:M:S.f form used by the
// transcription service. Malformed input yields 0, like Parse.
func ParseLenient(s string) float64 {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 3 {
		return 0
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 {
		return 0
	}
	mi, err := strconv.Atoi(parts[1])
	if err != nil || mi < 0 {
		return 0
	}
	secPart, fracPart, hasFrac := strings.Cut(parts[2], ".")
	se, err := strconv.Atoi(secPart)
	if err != nil || se < 0 {
		return 0
	}
	frac := 0.0
	if hasFrac && fracPart != "" {
		frac, err = strconv.ParseFloat("0."+fracPart, 64)
		if err != nil {
			return 0
		}
	}
	return float64(h*3600+mi*60+se) + frac
}
