package resume

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/intern-match/internal/types"
)

// Experience-level thresholds on total years. Policy constants; matching
// behavior depends on these exact values.
const (
	juniorYears = 1
	midYears    = 3
	seniorYears = 6
)

// explicitYearsPattern matches statements like "3 years experience",
// "5+ years of professional experience".
var explicitYearsPattern = regexp.MustCompile(`(\d{1,2})\s*\+?\s*years?(?:\s+of)?(?:\s+\w+){0,2}\s+experience`)

// dateRangePattern matches YYYY-YYYY spans, with "present"/"current" as an
// open end. Runs against lowercased raw text so dash variants survive.
var dateRangePattern = regexp.MustCompile(`((?:19|20)\d{2})\s*(?:[-–—]|to|till|until)\s*((?:19|20)\d{2}|present|current)`)

// EstimateYears derives total years of experience from resume text. An
// explicit "N years of experience" statement wins; otherwise the spans of all
// recognizable date ranges are summed, with open ranges resolved to now's
// calendar year. Never negative.
func EstimateYears(text string, now time.Time) int {
	lowered := strings.ToLower(text)

	if m := explicitYearsPattern.FindStringSubmatch(lowered); m != nil {
		years, err := strconv.Atoi(m[1])
		if err == nil && years >= 0 {
			return years
		}
	}

	total := 0
	for _, m := range dateRangePattern.FindAllStringSubmatch(lowered, -1) {
		start, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		end := now.Year()
		if m[2] != "present" && m[2] != "current" {
			end, err = strconv.Atoi(m[2])
			if err != nil {
				continue
			}
		}
		if span := end - start; span > 0 {
			total += span
		}
	}

	if total < 0 {
		return 0
	}
	return total
}

// LevelForYears applies the fixed threshold table:
// <1 entry, <3 junior, <6 mid, else senior.
func LevelForYears(years int) types.ExperienceLevel {
	switch {
	case years < juniorYears:
		return types.LevelEntry
	case years < midYears:
		return types.LevelJunior
	case years < seniorYears:
		return types.LevelMid
	default:
		return types.LevelSenior
	}
}
