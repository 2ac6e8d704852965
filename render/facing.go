package render

import (
	"strings"
	"unicode/utf8"

	"github.com/lixenwraith/asciiquarium/asset"
)

// Facing reports whether art naturally faces right
type Facing func(text string) bool

// Eye and mouth cues weigh more than bare arrows
var (
	rightCues = []string{"o>", "º>", "'>", "0>", "*>"}
	leftCues  = []string{"<o", "<º", "<'", "<0", "<*"}
)

const cueWeight = 2

// FacesRight scores arrow counts, head cues and line edges; ties face right
// Heuristic only: art with no directional cue is assumed right-facing
func FacesRight(text string) bool {
	score := strings.Count(text, ">") - strings.Count(text, "<")

	for _, cue := range rightCues {
		score += cueWeight * strings.Count(text, cue)
	}
	for _, cue := range leftCues {
		score -= cueWeight * strings.Count(text, cue)
	}

	for _, line := range asset.Lines(text) {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "><"):
			// tail on the left
			score++
		case strings.HasSuffix(line, "><"):
			score--
		case strings.HasSuffix(line, ">"):
			score++
		case strings.HasPrefix(line, "<"):
			score--
		}
	}
	return score >= 0
}

var mirrorPairs = map[rune]rune{
	'<': '>', '>': '<',
	'(': ')', ')': '(',
	'[': ']', ']': '[',
	'{': '}', '}': '{',
	'/': '\\', '\\': '/',
}

// Mirror flips art horizontally
// Lines are padded to the art width first so the block stays aligned
func Mirror(text string) string {
	lines := asset.Lines(text)
	width := 0
	for _, l := range lines {
		width = max(width, utf8.RuneCountInString(l))
	}

	out := make([]string, len(lines))
	buf := make([]rune, width)
	for i, l := range lines {
		for j := range buf {
			buf[j] = ' '
		}
		j := width - 1
		for _, r := range l {
			if m, ok := mirrorPairs[r]; ok {
				r = m
			}
			buf[j] = r
			j--
		}
		out[i] = string(buf)
	}
	return strings.Join(out, "\n")
}
