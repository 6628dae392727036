// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
)

const (
	secondsInAMinute = 60
	minutesInAnHour  = 60
)

var errInvalidClock = errors.New("clock value must be in MM:SS form")

// Now is replaced in tests.
var Now = time.Now

// Round rounds a time value in seconds, minutes, or hours to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// SecsToMinsAndSecs expresses a seconds value in minutes and seconds.
func SecsToMinsAndSecs(val float64) (mins, secs int) {
	total := Round(val)
	if total < 0 {
		total = 0
	}

	return total / secondsInAMinute, total % secondsInAMinute
}

// MinsToHoursAndMins expresses a minutes value in hours and mins.
func MinsToHoursAndMins(val int) (hrs, mins int) {
	hrs = int(math.Floor(float64(val) / float64(minutesInAnHour)))
	mins = val % minutesInAnHour

	return
}

// Clock formats whole seconds as MM:SS. Minutes keep growing past 59.
func Clock(seconds int) string {
	m, s := SecsToMinsAndSecs(float64(seconds))

	return fmt.Sprintf("%02d:%02d", m, s)
}

// ParseClock is the inverse of Clock.
func ParseClock(s string) (int, error) {
	mins, secs, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, errInvalidClock
	}

	m, err := strconv.Atoi(mins)
	if err != nil || m < 0 {
		return 0, errInvalidClock
	}

	sec, err := strconv.Atoi(secs)
	if err != nil || sec < 0 || sec >= secondsInAMinute {
		return 0, errInvalidClock
	}

	return m*secondsInAMinute + sec, nil
}

// Humanize renders a duration as "45 min" or "1h 5m".
func Humanize(d time.Duration) string {
	hrs, mins := MinsToHoursAndMins(int(d.Minutes()))
	if hrs == 0 {
		return fmt.Sprintf("%d min", mins)
	}

	if mins == 0 {
		return fmt.Sprintf("%dh", hrs)
	}

	return fmt.Sprintf("%dh %dm", hrs, mins)
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// RoundToEnd resets the given time to the end of the day.
func RoundToEnd(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		23,
		59,
		59,
		0,
		t.Location(),
	)
}

// FromStr parses absolute or relative dates such as "2024-01-10" or
// "2 weeks ago".
func FromStr(s string) (time.Time, error) {
	cfg := &dateparser.Configuration{
		CurrentTime: Now(),
	}

	dt, err := dateparser.Parse(cfg, s)
	if err != nil {
		return time.Time{}, err
	}

	return dt.Time, nil
}
