package assessment

import (
	"strconv"
	"strings"
)

// ResolveCorrectOption resolves q.CorrectAnswer to the index of the option it
// designates. Generated content is inconsistent about how it references the
// right option, so resolution tries, in order:
//
//  1. a single letter ("A".."Z", case-insensitive) as a position;
//  2. a decimal integer, read as a 1-based ordinal first and as a 0-based
//     index if the ordinal is out of range;
//  3. verbatim option content (trimmed, case-insensitive).
//
// The boolean is false when nothing matches, including for questions without
// options.
func ResolveCorrectOption(q Question) (int, bool) {
	if len(q.Options) == 0 {
		return 0, false
	}
	raw := strings.TrimSpace(q.CorrectAnswer)
	if raw == "" {
		return 0, false
	}

	// Letter position. Tolerate trailing punctuation like "B." or "b)".
	letter := strings.TrimRight(raw, ".):")
	if len(letter) == 1 {
		c := letter[0]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if c >= 'A' && c <= 'Z' {
			if i := int(c - 'A'); i < len(q.Options) {
				return i, true
			}
		}
	}

	if n, err := strconv.Atoi(raw); err == nil {
		if n >= 1 && n <= len(q.Options) {
			return n - 1, true
		}
		if n == 0 {
			return 0, true
		}
		return 0, false
	}

	for i, opt := range q.Options {
		if strings.EqualFold(strings.TrimSpace(opt), raw) {
			return i, true
		}
	}
	return 0, false
}

// CorrectOptionText returns the content of the option CorrectAnswer
// designates, or false when it cannot be resolved.
func CorrectOptionText(q Question) (string, bool) {
	i, ok := ResolveCorrectOption(q)
	if !ok {
		return "", false
	}
	return q.Options[i], true
}

// IsTrue interprets a true_false question's CorrectAnswer. Accepts the usual
// spellings the generator produces ("true", "True", "T").
func IsTrue(q Question) bool {
	switch strings.ToLower(strings.TrimSpace(q.CorrectAnswer)) {
	case "true", "t", "a":
		return true
	}
	return false
}
