package lib

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// MatchesOneOfPatterns reports whether value matches any of the glob patterns.
// Empty patterns are skipped; no patterns at all means everything matches.
func MatchesOneOfPatterns(value string, patterns []string) (bool, error) {
	if len(patterns) == 0 {
		return true, nil
	}

	for _, pattern := range patterns {
		if pattern == "" {
			continue
		}

		ok, err := doublestar.Match(pattern, value)
		if err != nil {
			return false, fmt.Errorf("match pattern %q: %w", pattern, err)
		}
		if ok {
			return true, nil
		}
	}

	return false, nil
}
