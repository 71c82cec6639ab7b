package utils

import (
	"strconv"
	"strings"
	"time"
)

// ParseClockSeconds converts an "HH:mm" or "HH:mm:ss" wall-clock string into
// seconds since midnight. Malformed input returns ok=false rather than an
// error: upstream schedule payloads routinely carry empty or garbage clock
// strings and callers degrade to "no declared schedule" in that case.
func ParseClockSeconds(s string) (int, bool) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, false
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	sec := 0
	if len(parts) == 3 {
		sec, err = strconv.Atoi(parts[2])
		if err != nil || sec < 0 || sec > 59 {
			return 0, false
		}
	}

	return h*3600 + m*60 + sec, true
}

// ISOToDaySeconds converts an ISO-8601 timestamp into seconds since midnight
// in the given location. Offset-less timestamps are read as wall-clock time in
// that location, which is how the practice system emits them. Unparseable
// timestamps return ok=false.
func ISOToDaySeconds(iso string, loc *time.Location) (int, bool) {
	trimmed := strings.TrimSpace(iso)
	t, err := time.Parse(time.RFC3339, trimmed)
	if err != nil {
		t, err = time.ParseInLocation("2006-01-02T15:04:05", trimmed, loc)
		if err != nil {
			return 0, false
		}
	}
	local := t.In(loc)
	return local.Hour()*3600 + local.Minute()*60 + local.Second(), true
}

// LoadLocation resolves an IANA timezone name, falling back to UTC when the
// name is empty or unknown.
func LoadLocation(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}
