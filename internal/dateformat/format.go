// Package dateformat renders and parses dates with date-fns style patterns
// ("PPP", "LLL dd, y", "MMMM yyyy", "hh:mm a"...) on top of Go reference
// layouts.
//
// Formatting is a pure function of the value and the pattern. Zero or
// out-of-range dates render the caller's placeholder instead of a string.
package dateformat

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	moonerrors "github.com/alexisbeaulieu97/moonui/pkg/errors"
)

// Patterns used by the picker family.
const (
	PatternLongDate  = "PPP"
	PatternRangeDate = "LLL dd, y"
	PatternMonthYear = "MMMM yyyy"
	PatternTime24    = "HH:mm"
	PatternTime12    = "hh:mm a"
)

type segmentKind int

const (
	segmentLayout segmentKind = iota
	segmentLiteral
	segmentOrdinalDay
	segmentHour // unpadded 0-23
	segmentYear // unpadded year
)

type segment struct {
	kind segmentKind
	text string
}

type compiled struct {
	segments []segment
	layout   string
	ordinal  bool
	hasYear  bool
}

// anchorYear is the leap year given to values parsed without a year.
const anchorYear = 2000

var (
	cache sync.Map // pattern -> *compiled

	ordinalSuffix = regexp.MustCompile(`(\d)(st|nd|rd|th)`)

	// Localized long formats expand to plain token patterns.
	longFormats = map[string]string{
		"P":    "MM/dd/yyyy",
		"PP":   "MMM d, y",
		"PPP":  "MMMM do, y",
		"PPPP": "EEEE, MMMM do, y",
		"p":    "h:mm a",
		"pp":   "h:mm:ss a",
	}
)

// IsValid reports whether t is a usable calendar date.
func IsValid(t time.Time) bool {
	if t.IsZero() {
		return false
	}
	year := t.Year()
	return year >= 1 && year <= 9999
}

// Format renders t with pattern, or returns placeholder when t is not valid.
// An unusable pattern falls back to PatternLongDate.
func Format(t time.Time, pattern, placeholder string) string {
	if !IsValid(t) {
		return placeholder
	}

	c, err := compile(pattern)
	if err != nil {
		c, _ = compile(PatternLongDate)
	}

	var b strings.Builder
	for _, seg := range c.segments {
		switch seg.kind {
		case segmentLiteral:
			b.WriteString(seg.text)
		case segmentOrdinalDay:
			b.WriteString(Ordinal(t.Day()))
		case segmentHour:
			b.WriteString(strconv.Itoa(t.Hour()))
		case segmentYear:
			b.WriteString(strconv.Itoa(t.Year()))
		default:
			b.WriteString(t.Format(seg.text))
		}
	}
	return b.String()
}

// FormatRange renders "from - to". A range with only a start renders the
// start alone; a range without a start renders placeholder.
func FormatRange(from, to time.Time, pattern, placeholder string) string {
	if !IsValid(from) {
		return placeholder
	}
	if !IsValid(to) {
		return Format(from, pattern, placeholder)
	}
	return Format(from, pattern, placeholder) + " - " + Format(to, pattern, placeholder)
}

// Parse reads value written with pattern, in the local time zone. A pattern
// without a year reads into 2000, so clock-only values stay valid.
func Parse(value, pattern string) (time.Time, error) {
	c, err := compile(pattern)
	if err != nil {
		return time.Time{}, err
	}

	input := strings.TrimSpace(value)
	if c.ordinal {
		input = ordinalSuffix.ReplaceAllString(input, "$1")
	}

	parsed, err := time.ParseInLocation(c.layout, input, time.Local)
	if err != nil {
		return time.Time{}, moonerrors.NewInputParseError(pattern, value, err)
	}
	if !c.hasYear {
		parsed = time.Date(anchorYear, parsed.Month(), parsed.Day(),
			parsed.Hour(), parsed.Minute(), parsed.Second(), parsed.Nanosecond(), time.Local)
	}
	return parsed, nil
}

// Layout returns the Go reference layout equivalent to pattern.
func Layout(pattern string) (string, error) {
	c, err := compile(pattern)
	if err != nil {
		return "", err
	}
	return c.layout, nil
}

// Ordinal renders a day of month as 1st, 2nd, 3rd, 4th...
func Ordinal(day int) string {
	suffix := "th"
	switch day % 100 {
	case 11, 12, 13:
	default:
		switch day % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", day, suffix)
}

func compile(pattern string) (*compiled, error) {
	if cached, ok := cache.Load(pattern); ok {
		return cached.(*compiled), nil
	}

	segments, err := tokenize(pattern)
	if err != nil {
		return nil, err
	}

	c := &compiled{segments: segments}
	var layout strings.Builder
	for _, seg := range segments {
		switch seg.kind {
		case segmentOrdinalDay:
			c.ordinal = true
			layout.WriteString("2")
		case segmentLiteral:
			layout.WriteString(seg.text)
		default:
			if seg.text == "2006" || seg.text == "06" {
				c.hasYear = true
			}
			layout.WriteString(seg.text)
		}
	}
	c.layout = layout.String()

	cache.Store(pattern, c)
	return c, nil
}

func tokenize(pattern string) ([]segment, error) {
	if pattern == "" {
		return nil, moonerrors.NewValidationError("pattern", "pattern is empty", nil)
	}

	runes := []rune(pattern)
	var segments []segment

	for i := 0; i < len(runes); {
		r := runes[i]

		switch {
		case r == '\'':
			literal, next, err := readQuoted(runes, i)
			if err != nil {
				return nil, moonerrors.NewValidationError("pattern", err.Error(), nil)
			}
			segments = append(segments, segment{kind: segmentLiteral, text: literal})
			i = next

		case isLetter(r):
			j := i
			for j < len(runes) && runes[j] == r {
				j++
			}
			token := string(runes[i:j])

			if expanded, ok := longFormats[token]; ok {
				nested, err := tokenize(expanded)
				if err != nil {
					return nil, err
				}
				segments = append(segments, nested...)
				i = j
				continue
			}

			if token == "d" && j < len(runes) && runes[j] == 'o' {
				segments = append(segments, segment{kind: segmentOrdinalDay})
				i = j + 1
				continue
			}

			layout, ok := layoutFor(r, len(token))
			if !ok {
				return nil, moonerrors.NewValidationError("pattern", fmt.Sprintf("unsupported token %q in %q", token, pattern), nil)
			}
			kind := segmentLayout
			switch token {
			case "H":
				kind = segmentHour
			case "y":
				kind = segmentYear
			}
			segments = append(segments, segment{kind: kind, text: layout})
			i = j

		default:
			segments = append(segments, segment{kind: segmentLiteral, text: string(r)})
			i++
		}
	}

	return segments, nil
}

func readQuoted(runes []rune, start int) (string, int, error) {
	// '' is an escaped single quote both inside and outside quoted text.
	if start+1 < len(runes) && runes[start+1] == '\'' {
		return "'", start + 2, nil
	}

	var b strings.Builder
	for i := start + 1; i < len(runes); i++ {
		if runes[i] != '\'' {
			b.WriteRune(runes[i])
			continue
		}
		if i+1 < len(runes) && runes[i+1] == '\'' {
			b.WriteRune('\'')
			i++
			continue
		}
		return b.String(), i + 1, nil
	}
	return "", 0, fmt.Errorf("unterminated quoted text")
}

func layoutFor(letter rune, count int) (string, bool) {
	switch letter {
	case 'y':
		if count == 2 {
			return "06", true
		}
		return "2006", true
	case 'M', 'L':
		switch count {
		case 1:
			return "1", true
		case 2:
			return "01", true
		case 3:
			return "Jan", true
		default:
			return "January", true
		}
	case 'd':
		if count == 1 {
			return "2", true
		}
		if count == 2 {
			return "02", true
		}
	case 'E':
		if count >= 4 {
			return "Monday", true
		}
		return "Mon", true
	case 'H':
		// Single H renders unpadded; Go reads "15" with one or two digits.
		if count <= 2 {
			return "15", true
		}
	case 'h':
		if count == 1 {
			return "3", true
		}
		if count == 2 {
			return "03", true
		}
	case 'm':
		if count == 1 {
			return "4", true
		}
		if count == 2 {
			return "04", true
		}
	case 's':
		if count == 1 {
			return "5", true
		}
		if count == 2 {
			return "05", true
		}
	case 'a':
		return "PM", true
	}
	return "", false
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
