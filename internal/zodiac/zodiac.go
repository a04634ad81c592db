// Package zodiac maps calendar dates to tropical sun signs.
package zodiac

import (
	"time"

	"github.com/siderealhq/insight-service/internal/model"
)

// span is one inclusive (startMonth, startDay)..(endMonth, endDay) range.
// Capricorn is the only range that wraps the year boundary.
type span struct {
	sign       model.ZodiacSign
	startMonth int
	startDay   int
	endMonth   int
	endDay     int
}

var ranges = []span{
	{model.Capricorn, 12, 22, 1, 19},
	{model.Aquarius, 1, 20, 2, 18},
	{model.Pisces, 2, 19, 3, 20},
	{model.Aries, 3, 21, 4, 19},
	{model.Taurus, 4, 20, 5, 20},
	{model.Gemini, 5, 21, 6, 20},
	{model.Cancer, 6, 21, 7, 22},
	{model.Leo, 7, 23, 8, 22},
	{model.Virgo, 8, 23, 9, 22},
	{model.Libra, 9, 23, 10, 22},
	{model.Scorpio, 10, 23, 11, 21},
	{model.Sagittarius, 11, 22, 12, 21},
}

// Resolve returns the sun sign for a calendar date. Range boundaries are
// inclusive on both ends and the ranges cover every valid date, so the
// final return is unreachable in practice.
func Resolve(date time.Time) model.ZodiacSign {
	m, d := int(date.Month()), date.Day()

	for _, r := range ranges {
		if r.startMonth < r.endMonth {
			if (m == r.startMonth && d >= r.startDay) ||
				(m == r.endMonth && d <= r.endDay) ||
				(m > r.startMonth && m < r.endMonth) {
				return r.sign
			}
		} else {
			// year-wrapping range
			if (m == r.startMonth && d >= r.startDay) ||
				(m == r.endMonth && d <= r.endDay) ||
				m > r.startMonth || m < r.endMonth {
				return r.sign
			}
		}
	}

	return model.Capricorn
}
