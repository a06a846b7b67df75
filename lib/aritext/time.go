// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package aritext

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dtn-ari/ari/lib/arierr"
)

// Timespec is a signed seconds count plus a nanosecond remainder in
// [0, 1e9), matching the POSIX timespec shape the ARI value model
// uses for TP (absolute time) and TD (relative duration) literals.
type Timespec struct {
	Seconds int64
	Nanos   uint32
}

// DTNEpochUnix is the POSIX time of the DTN epoch, 2000-01-01T00:00:00Z.
const DTNEpochUnix int64 = 946684800

// DecFracEncode renders ts as "<seconds>[.<nanos>]", stripping
// trailing zeros from the subsecond part and omitting it entirely
// when there are no subseconds.
func DecFracEncode(ts Timespec) string {
	var out strings.Builder
	out.WriteString(strconv.FormatInt(ts.Seconds, 10))
	writeSubsec(&out, ts.Nanos)
	return out.String()
}

// writeSubsec appends ".<digits>" with trailing zeros trimmed, or
// nothing at all when nanos is zero.
func writeSubsec(out *strings.Builder, nanos uint32) {
	if nanos == 0 {
		return
	}
	digits := 9
	for nanos%10 == 0 {
		nanos /= 10
		digits--
	}
	out.WriteByte('.')
	fmt.Fprintf(out, "%0*d", digits, nanos)
}

// DecFracDecode parses the form produced by [DecFracEncode]: a signed
// integer second count followed by an optional "." and up to nine
// subsecond digits, right-padded with zeros to nanosecond precision.
// A subsecond part longer than nine bytes is an [arierr.Overflow]
// error; a shorter one containing a non-digit byte is
// [arierr.Malformed].
func DecFracDecode(s string) (Timespec, error) {
	secStr, fracStr, hasFrac := strings.Cut(s, ".")
	seconds, err := strconv.ParseInt(secStr, 10, 64)
	if err != nil {
		return Timespec{}, fmt.Errorf("decfrac decode %q: %w", s, arierr.Malformed)
	}
	if !hasFrac {
		return Timespec{Seconds: seconds}, nil
	}
	nanos, err := parseSubsec(fracStr)
	if err != nil {
		return Timespec{}, fmt.Errorf("decfrac decode %q: %w", s, err)
	}
	return Timespec{Seconds: seconds, Nanos: nanos}, nil
}

// parseSubsec parses up to nine decimal digits, right-padding with
// zeros to nanosecond precision.
func parseSubsec(digits string) (uint32, error) {
	if digits == "" {
		return 0, fmt.Errorf("missing subsecond digits: %w", arierr.Malformed)
	}
	if len(digits) > 9 {
		return 0, fmt.Errorf("%d subsecond digits exceeds nanosecond precision: %w", len(digits), arierr.Overflow)
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("invalid subsecond digit %q: %w", c, arierr.Malformed)
		}
	}
	v, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid subsecond digits %q: %w", digits, arierr.Malformed)
	}
	for i := len(digits); i < 9; i++ {
		v *= 10
	}
	return uint32(v), nil
}

// UTCTimeEncode renders ts, interpreted as DTN-relative seconds since
// the DTN epoch, as an ISO 8601 UTC timestamp. usesep controls
// whether the date/time separators ('-', ':') are emitted; the
// encoder never emits a local offset, always terminating with 'Z'.
func UTCTimeEncode(ts Timespec, usesep bool) (string, error) {
	fullSec := DTNEpochUnix + ts.Seconds
	t := time.Unix(fullSec, 0).UTC()

	var out strings.Builder
	if usesep {
		fmt.Fprintf(&out, "%04d-%02d-%02dT%02d:%02d:%02d", t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second())
	} else {
		fmt.Fprintf(&out, "%04d%02d%02dT%02d%02d%02d", t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second())
	}
	writeSubsec(&out, ts.Nanos)
	out.WriteByte('Z')
	return out.String(), nil
}

// UTCTimeDecode is the inverse of [UTCTimeEncode]. Any '-' or ':'
// byte anywhere in the date/time portion is stripped before parsing,
// so separators are optional on decode regardless of whether the
// encoder emitted them. A missing 'Z' suffix, an unparseable
// calendar date, or trailing bytes after 'Z' are [arierr.Malformed].
func UTCTimeDecode(s string) (Timespec, error) {
	if !strings.HasSuffix(s, "Z") {
		return Timespec{}, fmt.Errorf("utctime decode %q: missing trailing Z: %w", s, arierr.Malformed)
	}
	body := strings.Map(func(r rune) rune {
		if r == '-' || r == ':' {
			return -1
		}
		return r
	}, s[:len(s)-1])

	if len(body) < 15 || body[8] != 'T' {
		return Timespec{}, fmt.Errorf("utctime decode %q: malformed date/time: %w", s, arierr.Malformed)
	}

	year, err1 := strconv.Atoi(body[0:4])
	month, err2 := strconv.Atoi(body[4:6])
	day, err3 := strconv.Atoi(body[6:8])
	hour, err4 := strconv.Atoi(body[9:11])
	minute, err5 := strconv.Atoi(body[11:13])
	second, err6 := strconv.Atoi(body[13:15])
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil || err5 != nil || err6 != nil {
		return Timespec{}, fmt.Errorf("utctime decode %q: malformed date/time: %w", s, arierr.Malformed)
	}

	var nanos uint32
	if rest := body[15:]; rest != "" {
		if rest[0] != '.' {
			return Timespec{}, fmt.Errorf("utctime decode %q: malformed date/time: %w", s, arierr.Malformed)
		}
		var err error
		nanos, err = parseSubsec(rest[1:])
		if err != nil {
			return Timespec{}, fmt.Errorf("utctime decode %q: %w", s, err)
		}
	}

	t := time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC)
	return Timespec{Seconds: t.Unix() - DTNEpochUnix, Nanos: nanos}, nil
}

const (
	timePeriodDay    = 24 * 3600
	timePeriodHour   = 3600
	timePeriodMinute = 60
)

// TimePeriodEncode renders ts as an ISO 8601 duration: an optional
// leading '-', mandatory 'P', an optional "<d>D" day count, mandatory
// 'T', then any of "<h>H", "<m>M", "<s>[.frac]S" that are nonzero.
// The zero duration encodes as the canonical "PT0S".
func TimePeriodEncode(ts Timespec) (string, error) {
	if ts.Seconds == 0 && ts.Nanos == 0 {
		return "PT0S", nil
	}

	var out strings.Builder
	fullSec := ts.Seconds
	if fullSec < 0 {
		out.WriteByte('-')
		fullSec = -fullSec
	}
	out.WriteByte('P')

	if fullSec >= timePeriodDay {
		fmt.Fprintf(&out, "%dD", fullSec/timePeriodDay)
		fullSec %= timePeriodDay
	}

	out.WriteByte('T')

	if fullSec >= timePeriodHour {
		fmt.Fprintf(&out, "%dH", fullSec/timePeriodHour)
		fullSec %= timePeriodHour
	}
	if fullSec >= timePeriodMinute {
		fmt.Fprintf(&out, "%dM", fullSec/timePeriodMinute)
		fullSec %= timePeriodMinute
	}
	if fullSec != 0 || ts.Nanos != 0 {
		out.WriteString(strconv.FormatInt(fullSec, 10))
		writeSubsec(&out, ts.Nanos)
		out.WriteByte('S')
	}
	return out.String(), nil
}

// TimePeriodDecode is the inverse of [TimePeriodEncode]. Unit letters
// must appear in D, H, M, S order; any segment that is present must
// contain an integer; trailing bytes after the final unit are
// [arierr.Surplus].
func TimePeriodDecode(s string) (Timespec, error) {
	orig := s
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	} else if strings.HasPrefix(s, "+") {
		s = s[1:]
	}

	if !strings.HasPrefix(s, "P") {
		return Timespec{}, fmt.Errorf("timeperiod decode %q: missing leading P: %w", orig, arierr.Malformed)
	}
	s = s[1:]

	var fullSec int64
	var nanos uint32

	if idx := strings.IndexByte(s, 'D'); idx >= 0 {
		d, err := strconv.ParseInt(s[:idx], 10, 64)
		if err != nil {
			return Timespec{}, fmt.Errorf("timeperiod decode %q: invalid day count: %w", orig, arierr.Malformed)
		}
		fullSec += d * timePeriodDay
		s = s[idx+1:]
	}

	if !strings.HasPrefix(s, "T") {
		return Timespec{}, fmt.Errorf("timeperiod decode %q: missing T: %w", orig, arierr.Malformed)
	}
	s = s[1:]

	if idx := strings.IndexByte(s, 'H'); idx >= 0 {
		h, err := strconv.ParseInt(s[:idx], 10, 64)
		if err != nil {
			return Timespec{}, fmt.Errorf("timeperiod decode %q: invalid hour count: %w", orig, arierr.Malformed)
		}
		fullSec += h * timePeriodHour
		s = s[idx+1:]
	}

	if idx := strings.IndexByte(s, 'M'); idx >= 0 {
		m, err := strconv.ParseInt(s[:idx], 10, 64)
		if err != nil {
			return Timespec{}, fmt.Errorf("timeperiod decode %q: invalid minute count: %w", orig, arierr.Malformed)
		}
		fullSec += m * timePeriodMinute
		s = s[idx+1:]
	}

	if idx := strings.IndexByte(s, 'S'); idx >= 0 {
		secStr := s[:idx]
		intPart, fracPart, hasFrac := strings.Cut(secStr, ".")
		sv, err := strconv.ParseInt(intPart, 10, 64)
		if err != nil {
			return Timespec{}, fmt.Errorf("timeperiod decode %q: invalid second count: %w", orig, arierr.Malformed)
		}
		fullSec += sv
		if hasFrac {
			nanos, err = parseSubsec(fracPart)
			if err != nil {
				return Timespec{}, fmt.Errorf("timeperiod decode %q: %w", orig, err)
			}
		}
		s = s[idx+1:]
	}

	if s != "" {
		return Timespec{}, fmt.Errorf("timeperiod decode %q: trailing data %q: %w", orig, s, arierr.Surplus)
	}

	if neg {
		fullSec = -fullSec
	}
	return Timespec{Seconds: fullSec, Nanos: nanos}, nil
}
