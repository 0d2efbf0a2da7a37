// Package marketclock reports whether the Indian equity market is open.
package marketclock

import (
	"fmt"
	"time"

	"StockTracker/internal/common"
)

// IST is the trading venue's fixed offset zone. NSE and BSE do not observe
// daylight saving, so a fixed zone is safe even without tzdata.
var IST = time.FixedZone("IST", 5*3600+30*60)

// Trading hours: 09:15:00 to 15:30:00 IST inclusive, Monday-Friday.
const (
	openSecond  = 9*3600 + 15*60
	closeSecond = 15*3600 + 30*60
)

const openTimeLayout = "Monday, January 02 at 03:04 PM"

// HolidaySource reports full-day market closures. Implementations may hit
// the network; a lookup failure must not make the clock fail.
type HolidaySource interface {
	IsHoliday(date time.Time) (bool, error)
}

// Clock wraps the pure weekday/hours rule with an optional holiday source.
type Clock struct {
	holidays HolidaySource
	logger   *common.Logger
}

// New creates a Clock. holidays may be nil, in which case only the
// weekday/hours rule applies.
func New(holidays HolidaySource, logger *common.Logger) *Clock {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Clock{holidays: holidays, logger: logger}
}

// Status reports whether the market is open at the given instant, with a
// human-readable reason when closed.
func (c *Clock) Status(now time.Time) (bool, string) {
	local := now.In(IST)

	if c.holidays != nil {
		holiday, err := c.holidays.IsHoliday(local)
		if err != nil {
			c.logger.Warn().Err(err).Msg("holiday lookup failed, falling back to weekday rule")
		} else if holiday && local.Weekday() != time.Saturday && local.Weekday() != time.Sunday {
			next := nextBusinessDay(local)
			return false, fmt.Sprintf("Market is closed (Holiday) - Opens on %s IST", openAt(next).Format(openTimeLayout))
		}
	}

	return Status(now)
}

// Status is the pure weekday/hours rule: open iff Monday-Friday and the IST
// time of day is within [09:15:00, 15:30:00] inclusive.
func Status(now time.Time) (bool, string) {
	local := now.In(IST)
	weekday := local.Weekday()

	if weekday == time.Saturday || weekday == time.Sunday {
		next := nextBusinessDay(local)
		return false, fmt.Sprintf("Market is closed (Weekend) - Opens on %s IST", openAt(next).Format(openTimeLayout))
	}

	sec := local.Hour()*3600 + local.Minute()*60 + local.Second()
	switch {
	case sec < openSecond:
		return false, fmt.Sprintf("Market is closed - Opens today at %s IST", openAt(local).Format("03:04 PM"))
	case sec > closeSecond:
		next := nextBusinessDay(local)
		return false, fmt.Sprintf("Market is closed - Opens on %s IST", openAt(next).Format(openTimeLayout))
	default:
		return true, "Market is open"
	}
}

// nextBusinessDay returns the first Monday-Friday date after d.
func nextBusinessDay(d time.Time) time.Time {
	next := d.AddDate(0, 0, 1)
	for next.Weekday() == time.Saturday || next.Weekday() == time.Sunday {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// openAt returns the market opening instant on the given date.
func openAt(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 9, 15, 0, 0, IST)
}
