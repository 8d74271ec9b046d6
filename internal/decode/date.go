package decode

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	serialMin = 40000
	serialMax = 50000
)

var serialEpoch = time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)

type datePattern struct {
	re *regexp.Regexp
	// minute is the submatch index of the minutes, 0 when the pattern has none.
	minute int
	ampm   int
}

// Tried in order; the first that matches and names a known month wins.
var datePatterns = []datePattern{
	// "Feb 10 / 8:48pm", "July 11 / 10:04am"
	{re: regexp.MustCompile(`^(\w{3,9})\s+(\d{1,2})\s*/\s*(\d{1,2}):(\d{2})\s*(am|pm|AM|PM)`), minute: 4, ampm: 5},
	// "Feb 10 / 8:48 pm"
	{re: regexp.MustCompile(`^(\w{3,9})\s+(\d{1,2})\s*/\s*(\d{1,2}):(\d{2})\s+(am|pm|AM|PM)`), minute: 4, ampm: 5},
	// "Feb 10 / 8pm"
	{re: regexp.MustCompile(`^(\w{3,9})\s+(\d{1,2})\s*/\s*(\d{1,2})\s*(am|pm|AM|PM)`), ampm: 4},
}

var months = map[string]int{
	"jan": 1, "january": 1,
	"feb": 2, "february": 2,
	"mar": 3, "march": 3,
	"apr": 4, "april": 4,
	"may": 5,
	"jun": 6, "june": 6,
	"jul": 7, "july": 7,
	"aug": 8, "august": 8,
	"sep": 9, "sept": 9, "september": 9,
	"oct": 10, "october": 10,
	"nov": 11, "november": 11,
	"dec": 12, "december": 12,
}

// NormalizeDate converts queue timestamps such as "Feb 10 / 8:48pm" to
// "02-10T20:48". The text never carries a year, so none is emitted. Bare
// spreadsheet date serials become "MM-DDT00:00". Anything else is returned
// unchanged.
func NormalizeDate(raw string) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return raw
	}

	for _, p := range datePatterns {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		minute := "00"
		if p.minute > 0 {
			minute = m[p.minute]
		}
		if out, ok := buildDate(m[1], m[2], m[3], minute, m[p.ampm]); ok {
			return out
		}
	}

	if out, ok := fromSerial(text); ok {
		return out
	}
	return raw
}

func buildDate(monthName, dayStr, hourStr, minuteStr, ampm string) (string, bool) {
	month, ok := months[strings.ToLower(monthName)]
	if !ok {
		return "", false
	}
	day, err := strconv.Atoi(dayStr)
	if err != nil {
		return "", false
	}
	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return "", false
	}
	minute, err := strconv.Atoi(minuteStr)
	if err != nil {
		return "", false
	}

	switch strings.ToLower(ampm) {
	case "pm":
		if hour != 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}
	return fmt.Sprintf("%02d-%02dT%02d:%02d", month, day, hour, minute), true
}

func fromSerial(text string) (string, bool) {
	for _, r := range text {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	days, err := strconv.Atoi(text)
	if err != nil || days <= serialMin || days >= serialMax {
		return "", false
	}
	d := serialEpoch.AddDate(0, 0, days)
	return fmt.Sprintf("%02d-%02dT00:00", int(d.Month()), d.Day()), true
}
