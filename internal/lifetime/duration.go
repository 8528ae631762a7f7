package lifetime

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Day and Week extend time's built-in units to the granularity this tool
// reasons in.
const (
	Day  = 24 * time.Hour
	Week = 7 * Day
)

var durationUnits = map[string]time.Duration{
	"s": time.Second, "sec": time.Second, "secs": time.Second,
	"second": time.Second, "seconds": time.Second,
	"m": time.Minute, "min": time.Minute, "mins": time.Minute,
	"minute": time.Minute, "minutes": time.Minute,
	"h": time.Hour, "hr": time.Hour, "hrs": time.Hour,
	"hour": time.Hour, "hours": time.Hour,
	"d": Day, "day": Day, "days": Day,
	"w": Week, "week": Week, "weeks": Week,
}

// ParseDuration parses human-readable duration syntax such as "30days",
// "45d", "12h30m" or "1week 2days". Units: seconds through weeks; spaces
// between segments are optional.
func ParseDuration(s string) (time.Duration, error) {
	in := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "")
	if in == "" {
		return 0, errors.New("empty duration")
	}

	var total time.Duration
	for i := 0; i < len(in); {
		j := i
		for j < len(in) && in[j] >= '0' && in[j] <= '9' {
			j++
		}
		if j == i {
			return 0, fmt.Errorf("invalid duration %q: expected a number at %q", s, in[i:])
		}
		n, err := strconv.ParseInt(in[i:j], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q: %w", s, err)
		}

		k := j
		for k < len(in) && (in[k] < '0' || in[k] > '9') {
			k++
		}
		unit, ok := durationUnits[in[j:k]]
		if !ok {
			return 0, fmt.Errorf("invalid duration %q: unknown unit %q", s, in[j:k])
		}

		total += time.Duration(n) * unit
		i = k
	}
	return total, nil
}

// FormatDuration renders a duration as "Ndays Nh Nm", omitting zero
// components. Sub-minute remainders are dropped; a zero or negative
// duration renders as "0m".
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return "0m"
	}

	days := d / Day
	d -= days * Day
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute

	var parts []string
	switch {
	case days == 1:
		parts = append(parts, "1day")
	case days > 1:
		parts = append(parts, fmt.Sprintf("%ddays", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	return strings.Join(parts, " ")
}

// ParseTime accepts a strict RFC 3339 timestamp or a bare date, which is
// taken as midnight UTC.
func ParseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q (want RFC 3339 or YYYY-MM-DD)", s)
}
