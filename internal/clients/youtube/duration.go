package youtube

import (
	"regexp"
	"strconv"
)

var isoDurationPattern = regexp.MustCompile(`^P(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?)?$`)

// ParseDuration converts an ISO-8601 video duration such as "PT1H2M3S" to seconds.
// Unparseable values yield 0.
func ParseDuration(value string) int {
	m := isoDurationPattern.FindStringSubmatch(value)
	if m == nil {
		return 0
	}

	multipliers := []int{86400, 3600, 60, 1}
	total := 0
	for i, mult := range multipliers {
		if m[i+1] == "" {
			continue
		}
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return 0
		}
		total += n * mult
	}
	return total
}
