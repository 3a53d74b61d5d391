package contract

import (
	"regexp"
	"strconv"
	"strings"
)

var durationPattern = regexp.MustCompile(`(\d+)\s*-?\s*(?:day|night)`)

// ExtractDayCount interprets a free-form dates descriptor as a trip
// duration. Returns 0 when no duration can be read out of the text.
func ExtractDayCount(dates string) int {
	lower := strings.ToLower(dates)

	if m := durationPattern.FindStringSubmatch(lower); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 && n <= 30 {
			return n
		}
	}

	writtenNumbers := map[string]int{
		"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
		"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	}
	for word, num := range writtenNumbers {
		if strings.Contains(lower, word+" day") || strings.Contains(lower, word+" night") {
			return num
		}
	}

	if strings.Contains(lower, "long weekend") {
		return 3
	}
	if strings.Contains(lower, "weekend") {
		return 2
	}
	if strings.Contains(lower, "fortnight") || strings.Contains(lower, "two weeks") {
		return 14
	}
	if strings.Contains(lower, "week") {
		return 7
	}

	return 0
}
