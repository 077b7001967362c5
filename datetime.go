// Copyright (c) 2024 The toml Authors
// See LICENSE for licensing information

package toml

import "strings"

// scanDateTime looks for one of TOML's three date-time shapes starting at
// src[start] and returns the exclusive end offset, the detected variant,
// and whether a match was found. It never reports an error itself: a
// partial, malformed match (e.g. "1979-13-99") is still consumed as a
// DATETIME token and rejected later by validateDateTime. The datetime vs
// integer ambiguity is resolved purely by shape at the tokenizer layer.
func scanDateTime(src []byte, start int) (end int, kind DateTimeKind, ok bool) {
	n := len(src)
	hasDate := matchDate(src, start)
	if hasDate {
		afterDate := start + 10
		if afterDate < n && (src[afterDate] == 'T' || src[afterDate] == 't' || src[afterDate] == ' ') {
			if timeEnd, timeOK := matchTimeAt(src, afterDate+1); timeOK {
				end = scanOffset(src, timeEnd)
				return end, OffsetDateTimeOrLocal(src, timeEnd, end), true
			}
		}
		return afterDate, LocalDate, true
	}
	if timeEnd, timeOK := matchTimeAt(src, start); timeOK {
		return timeEnd, LocalTime, true
	}
	return start, 0, false
}

// OffsetDateTimeOrLocal decides, once a full date+time has matched, whether
// an offset follows (OffsetDateTime) or not (LocalDateTime).
func OffsetDateTimeOrLocal(src []byte, timeEnd, offsetEnd int) DateTimeKind {
	if offsetEnd > timeEnd {
		return OffsetDateTime
	}
	return LocalDateTime
}

func matchDate(src []byte, i int) bool {
	if i+10 > len(src) {
		return false
	}
	return isDecDigit(src[i]) && isDecDigit(src[i+1]) && isDecDigit(src[i+2]) && isDecDigit(src[i+3]) &&
		src[i+4] == '-' &&
		isDecDigit(src[i+5]) && isDecDigit(src[i+6]) &&
		src[i+7] == '-' &&
		isDecDigit(src[i+8]) && isDecDigit(src[i+9])
}

// matchTimeAt matches HH:MM:SS(.fraction)? starting at i, returning the end
// offset immediately after the matched portion.
func matchTimeAt(src []byte, i int) (end int, ok bool) {
	if i+8 > len(src) {
		return i, false
	}
	if !(isDecDigit(src[i]) && isDecDigit(src[i+1]) && src[i+2] == ':' &&
		isDecDigit(src[i+3]) && isDecDigit(src[i+4]) && src[i+5] == ':' &&
		isDecDigit(src[i+6]) && isDecDigit(src[i+7])) {
		return i, false
	}
	end = i + 8
	if end < len(src) && src[end] == '.' {
		j := end + 1
		for j < len(src) && isDecDigit(src[j]) {
			j++
		}
		if j > end+1 {
			end = j
		}
	}
	return end, true
}

// scanOffset matches a UTC offset (Z/z or ±HH:MM) immediately following a
// full date-time, returning the new end offset (unchanged if none found).
func scanOffset(src []byte, i int) int {
	if i >= len(src) {
		return i
	}
	if src[i] == 'Z' || src[i] == 'z' {
		return i + 1
	}
	if (src[i] == '+' || src[i] == '-') && i+6 <= len(src) &&
		isDecDigit(src[i+1]) && isDecDigit(src[i+2]) && src[i+3] == ':' &&
		isDecDigit(src[i+4]) && isDecDigit(src[i+5]) {
		return i + 6
	}
	return i
}

// normalizeDateTime canonicalizes the date-time separator and UTC marker
// so that equality on DateTime values is plain string equality.
func normalizeDateTime(raw string) string {
	if len(raw) > 10 {
		sep := raw[10]
		if sep == 't' || sep == ' ' {
			raw = raw[:10] + "T" + raw[11:]
		}
	}
	if strings.HasSuffix(raw, "z") {
		raw = raw[:len(raw)-1] + "Z"
	}
	return raw
}

func monthDays(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if (year%4 == 0 && year%100 != 0) || year%400 == 0 {
			return 29
		}
		return 28
	}
	return 0
}

func digits2(s string, i int) int { return int(s[i]-'0')*10 + int(s[i+1]-'0') }
func digits4(s string) int {
	return int(s[0]-'0')*1000 + int(s[1]-'0')*100 + int(s[2]-'0')*10 + int(s[3]-'0')
}

// validateDateTime checks field ranges for the already-shape-matched raw
// literal, returning an error text on an out-of-range field.
func validateDateTime(raw string, kind DateTimeKind) (reason string, ok bool) {
	hasDate := kind == OffsetDateTime || kind == LocalDateTime || kind == LocalDate
	hasTime := kind == OffsetDateTime || kind == LocalDateTime || kind == LocalTime

	timeStart := 0
	if hasDate {
		year := digits4(raw)
		month := digits2(raw, 5)
		day := digits2(raw, 8)
		if month < 1 || month > 12 {
			return "month out of range", false
		}
		if day < 1 || day > monthDays(year, month) {
			return "day out of range", false
		}
		timeStart = 11
		if !hasTime {
			return "", true
		}
	}
	hour := digits2(raw, timeStart)
	minute := digits2(raw, timeStart+3)
	second := digits2(raw, timeStart+6)
	if hour > 23 {
		return "hour out of range", false
	}
	if minute > 59 {
		return "minute out of range", false
	}
	if second > 60 { // allow a leap second
		return "second out of range", false
	}
	return "", true
}
