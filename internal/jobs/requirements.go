package jobs

import (
	"strings"

	"github.com/jonathan/intern-match/internal/lexicon"
	"github.com/jonathan/intern-match/internal/types"
)

// markerWindow is how many characters on each side of a skill mention are
// inspected for required/preferred markers.
const markerWindow = 100

// ClassifyRequirements splits extracted skills into required and preferred
// lists by inspecting the text surrounding each mention. A mention with no
// marker, or with both, classifies as required.
func ClassifyRequirements(normalized string, skills []types.Skill) (required, preferred []types.JobRequirement) {
	required = []types.JobRequirement{}
	preferred = []types.JobRequirement{}

	for _, skill := range skills {
		reqType := classifyMention(normalized, skill.Name)
		requirement := types.JobRequirement{
			Type:     reqType,
			Skill:    skill.Name,
			Category: skill.Category,
		}
		if reqType == types.RequirementPreferred {
			preferred = append(preferred, requirement)
		} else {
			required = append(required, requirement)
		}
	}
	return required, preferred
}

// classifyMention checks a window around every occurrence of the skill.
// Required markers win ties; absence of any marker defaults to required.
func classifyMention(normalized, skill string) types.RequirementType {
	preferredSeen := false
	offset := 0
	for {
		idx := strings.Index(normalized[offset:], skill)
		if idx < 0 {
			break
		}
		pos := offset + idx
		window := mentionWindow(normalized, pos, len(skill))

		if containsAny(window, lexicon.RequiredMarkers()) {
			return types.RequirementRequired
		}
		if containsAny(window, lexicon.PreferredMarkers()) {
			preferredSeen = true
		}
		offset = pos + len(skill)
	}

	if preferredSeen {
		return types.RequirementPreferred
	}
	return types.RequirementRequired
}

func mentionWindow(text string, pos, termLen int) string {
	start := pos - markerWindow
	if start < 0 {
		start = 0
	}
	end := pos + termLen + markerWindow
	if end > len(text) {
		end = len(text)
	}
	return text[start:end]
}

func containsAny(text string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(text, m) {
			return true
		}
	}
	return false
}
