package reminder

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

var knownLeads = map[string]int{
	"5 دقائق":    5,
	"10 دقائق":   10,
	"15 دقيقة":   15,
	"30 دقيقة":   30,
	"ساعة":       60,
	"ساعة واحدة": 60,
	"ساعتين":     120,
	"ساعتان":     120,
	"يوم":        1440,
	"يوم واحد":   1440,
}

var (
	numberRX   = regexp.MustCompile(`\d+`)
	bareRX     = regexp.MustCompile(`^\d+$`)
	fractionRX = regexp.MustCompile(`\d\s*[.,٫]\s*\d`)
)

var (
	minuteWords = []string{"min", "دقيقة", "دقيقه", "دقائق"}
	hourWords   = []string{"hour", "ساعة", "ساعه", "ساعات"}
	dayWords    = []string{"day", "يوم", "أيام", "ايام"}
	weekWords   = []string{"week", "أسبوع", "اسبوع", "أسابيع", "اسابيع"}
)

// ParseLeadTime reads a reminder lead time such as "15 دقيقة", "1 hour" or
// "30 minutes before" into minutes. A bare number is minutes. Text without a
// known unit, with a fractional or second number, or longer than
// MaxLeadMinutes is rejected.
func ParseLeadTime(s string) (int, bool) {
	s = strings.ToLower(strings.TrimSpace(asciiDigits(s)))
	if s == "" {
		return 0, false
	}

	if m, ok := knownLeads[s]; ok {
		return m, true
	}

	if fractionRX.MatchString(s) || containsAny(s, weekWords) {
		return 0, false
	}
	if strings.Contains(s, "ساعتين") || strings.Contains(s, "ساعتان") {
		return 120, true
	}

	var unit int
	switch {
	case containsAny(s, hourWords):
		unit = 60
	case containsAny(s, dayWords):
		unit = 1440
	case containsAny(s, minuteWords) || bareRX.MatchString(s):
		unit = 1
	default:
		return 0, false
	}

	n := 1
	switch nums := numberRX.FindAllString(s, -1); len(nums) {
	case 0:
		if unit == 1 {
			return 0, false
		}
	case 1:
		var err error
		if n, err = strconv.Atoi(nums[0]); err != nil {
			return 0, false
		}
	default:
		return 0, false
	}

	lead := n * unit
	if lead > MaxLeadMinutes {
		return 0, false
	}

	return lead, true
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

func asciiDigits(s string) string {
	t := runes.Map(func(r rune) rune {
		if r >= '٠' && r <= '٩' {
			return '0' + (r - '٠')
		}
		return r
	})

	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
