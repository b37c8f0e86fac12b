// Package clock tracks the in-game time of day. Minutes are kept as a float
// so fractional per-frame advances accumulate without rounding loss.
package clock

import (
	"fmt"
	"math"
)

const (
	// MinutesPerDay is the length of one in-game day.
	MinutesPerDay = 24 * 60

	// Morning is 08:00, used for new games and sleeping.
	Morning = 8 * 60

	// DefaultMinutesPerSecond is the default in-game minutes per real second.
	DefaultMinutesPerSecond = 5.0
)

// Clock is the in-game time-of-day accumulator.
type Clock struct {
	minutes          float64
	minutesPerSecond float64
}

// New creates a clock starting in the morning.
func New(minutesPerSecond float64) *Clock {
	if minutesPerSecond <= 0 {
		minutesPerSecond = DefaultMinutesPerSecond
	}
	return &Clock{
		minutes:          Morning,
		minutesPerSecond: minutesPerSecond,
	}
}

// Wrap normalizes any minute value into [0, MinutesPerDay).
func Wrap(m float64) float64 {
	m = math.Mod(m, MinutesPerDay)
	if m < 0 {
		m += MinutesPerDay
	}
	return m
}

// Minutes returns the current time of day in minutes since midnight.
func (c *Clock) Minutes() float64 {
	return c.minutes
}

// MinutesPerSecond returns the clock scale.
func (c *Clock) MinutesPerSecond() float64 {
	return c.minutesPerSecond
}

// Advance moves the clock forward by a real-time delta in milliseconds.
func (c *Clock) Advance(dtMillis float64) {
	c.minutes = Wrap(c.minutes + c.minutesPerSecond*(dtMillis/1000.0))
}

// AddMinutes moves the clock by n in-game minutes (debug skip, sleeping).
func (c *Clock) AddMinutes(n float64) {
	c.minutes = Wrap(c.minutes + n)
}

// SetMinutes sets the time of day directly, e.g. when restoring a save.
func (c *Clock) SetMinutes(m float64) {
	c.minutes = Wrap(m)
}

// SetMorning jumps to 08:00.
func (c *Clock) SetMorning() {
	c.minutes = Morning
}

// Hour returns the current hour in 24h form.
func (c *Clock) Hour() int {
	return int(c.minutes) / 60
}

// IsEvening reports 18:00-20:00, end exclusive.
func (c *Clock) IsEvening() bool {
	return IsEvening(c.minutes)
}

// IsNight reports 20:00-06:00, wrapping midnight.
func (c *Clock) IsNight() bool {
	return IsNight(c.minutes)
}

// IsShopOpen reports 08:00-20:00, end exclusive.
func (c *Clock) IsShopOpen() bool {
	return IsShopOpen(c.minutes)
}

// Text returns a 12-hour label such as "8:05 AM".
func (c *Clock) Text() string {
	return Text(c.minutes)
}

// IsEvening is the pure form of Clock.IsEvening.
func IsEvening(m float64) bool {
	return m >= 18*60 && m < 20*60
}

// IsNight is the pure form of Clock.IsNight.
func IsNight(m float64) bool {
	return m >= 20*60 || m < 6*60
}

// IsShopOpen is the pure form of Clock.IsShopOpen.
func IsShopOpen(m float64) bool {
	return m >= 8*60 && m < 20*60
}

// Text is the pure form of Clock.Text.
func Text(m float64) string {
	total := int(Wrap(m))
	h24 := total / 60
	mins := total % 60
	suffix := "AM"
	if h24 >= 12 {
		suffix = "PM"
	}
	h12 := h24 % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", h12, mins, suffix)
}
