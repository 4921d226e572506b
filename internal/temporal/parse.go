package temporal

import (
	"strconv"
	"strings"
	"time"
)

// DateParser turns trimmed text into a Date, reporting false when it does not match.
type DateParser func(text string) (Date, bool)

// TimeParser turns trimmed text into a Time, reporting false when it does not match.
type TimeParser func(text string) (Time, bool)

// DateLayouts are tried in order by ParseDate; the first match wins.
//
//	2023-05-15, 15/05/2023, 05/15/2023, May 15, 2023, 15 May 2023, 20230515
var DateLayouts = []string{
	"2006-1-2",
	"2/1/2006",
	"1/2/2006",
	"January 2, 2006",
	"2 January 2006",
	"20060102",
}

// TimeLayouts are tried in order by ParseTime; the first match wins.
//
//	01:30 PM, 11:45PM, 1:30 PM, 6:10AM, 13:30, 0:45
var TimeLayouts = []string{
	"03:04 PM",
	"03:04PM",
	"3:04 PM",
	"3:04PM",
	"15:04",
}

// DefaultDateParsers is the parser chain used by ParseDate.
var DefaultDateParsers = DateLayoutParsers(DateLayouts...)

// DefaultTimeParsers is the parser chain used by ParseTime.
var DefaultTimeParsers = TimeLayoutParsers(TimeLayouts...)

// DateLayoutParsers builds one DateParser per time.Parse layout.
func DateLayoutParsers(layouts ...string) []DateParser {
	parsers := make([]DateParser, 0, len(layouts))
	for _, layout := range layouts {
		parsers = append(parsers, func(text string) (Date, bool) {
			parsed, err := time.Parse(layout, text)
			if err != nil {
				return Date{}, false
			}
			d := DateOf(parsed)
			return d, d.Valid()
		})
	}
	return parsers
}

// TimeLayoutParsers builds one TimeParser per time.Parse layout.
// AM/PM markers are matched case-insensitively. On a 12-hour clock the hour
// must be within 1 and 12.
func TimeLayoutParsers(layouts ...string) []TimeParser {
	parsers := make([]TimeParser, 0, len(layouts))
	for _, layout := range layouts {
		twelveHour := strings.Contains(layout, "PM")
		parsers = append(parsers, func(text string) (Time, bool) {
			if twelveHour && leadingNumber(text) == 0 {
				return Time{}, false
			}
			parsed, err := time.Parse(layout, strings.ToUpper(text))
			if err != nil {
				return Time{}, false
			}
			return TimeOf(parsed), true
		})
	}
	return parsers
}

// ParseDate parses text with DefaultDateParsers.
func ParseDate(text string) (Date, error) {
	return ParseDateWith(DefaultDateParsers, text)
}

// ParseDateWith trims text and returns the result of the first parser that accepts it.
func ParseDateWith(parsers []DateParser, text string) (Date, error) {
	trimmed := strings.TrimSpace(text)
	for _, parse := range parsers {
		if d, ok := parse(trimmed); ok {
			return d, nil
		}
	}
	return Date{}, &InvalidDateError{Value: text}
}

// ParseTime parses text with DefaultTimeParsers.
func ParseTime(text string) (Time, error) {
	return ParseTimeWith(DefaultTimeParsers, text)
}

// ParseTimeWith trims text and returns the result of the first parser that accepts it.
func ParseTimeWith(parsers []TimeParser, text string) (Time, error) {
	trimmed := strings.TrimSpace(text)
	for _, parse := range parsers {
		if t, ok := parse(trimmed); ok {
			return t, nil
		}
	}
	return Time{}, &InvalidTimeError{Value: text}
}

// DateFromParts builds a Date from exactly three integers: year, month, day.
func DateFromParts(parts []int) (Date, error) {
	if len(parts) != 3 {
		return Date{}, &InvalidDateError{Value: parts}
	}
	d := Date{Year: parts[0], Month: time.Month(parts[1]), Day: parts[2]}
	if !d.Valid() {
		return Date{}, &InvalidDateError{Value: parts}
	}
	return d, nil
}

// TimeFromParts builds a Time from exactly two integers: hour, minute.
func TimeFromParts(parts []int) (Time, error) {
	if len(parts) != 2 {
		return Time{}, &InvalidTimeError{Value: parts}
	}
	t := Time{Hour: parts[0], Minute: parts[1]}
	if !t.Valid() {
		return Time{}, &InvalidTimeError{Value: parts}
	}
	return t, nil
}

// CoerceDate accepts a Date, time.Time, string, []int or []string and returns the Date it names.
func CoerceDate(value any) (Date, error) {
	switch v := value.(type) {
	case Date:
		if !v.Valid() {
			return Date{}, &InvalidDateError{Value: v}
		}
		return v, nil
	case time.Time:
		d := DateOf(v)
		if !d.Valid() {
			return Date{}, &InvalidDateError{Value: v}
		}
		return d, nil
	case string:
		return ParseDate(v)
	case []int:
		return DateFromParts(v)
	case []string:
		ints, ok := atoiAll(v)
		if !ok {
			return Date{}, &InvalidDateError{Value: v}
		}
		return DateFromParts(ints)
	default:
		return Date{}, &InvalidDateError{Value: value}
	}
}

// CoerceTime accepts a Time, time.Time, string, []int or []string and returns the Time it names.
func CoerceTime(value any) (Time, error) {
	switch v := value.(type) {
	case Time:
		if !v.Valid() {
			return Time{}, &InvalidTimeError{Value: v}
		}
		return v, nil
	case time.Time:
		return TimeOf(v), nil
	case string:
		return ParseTime(v)
	case []int:
		return TimeFromParts(v)
	case []string:
		ints, ok := atoiAll(v)
		if !ok {
			return Time{}, &InvalidTimeError{Value: v}
		}
		return TimeFromParts(ints)
	default:
		return Time{}, &InvalidTimeError{Value: value}
	}
}

func atoiAll(parts []string) ([]int, bool) {
	ints := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, false
		}
		ints = append(ints, n)
	}
	return ints, true
}

// leadingNumber returns the value of the digits text starts with, or -1 when
// it does not start with a digit.
func leadingNumber(text string) int {
	end := 0
	for end < len(text) && text[end] >= '0' && text[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(text[:end])
	if err != nil {
		return -1
	}
	return n
}
