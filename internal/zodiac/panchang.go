package zodiac

import (
	"github.com/rs/zerolog/log"

	"github.com/siderealhq/insight-service/internal/model"
)

// Panchang holds Vedic almanac attributes for a birth moment. All fields
// are pointers so callers can distinguish "not computed" from real values.
type Panchang struct {
	Tithi     *string           `json:"tithi"`
	Nakshatra *string           `json:"nakshatra"`
	Yoga      *string           `json:"yoga"`
	Karana    *string           `json:"karana"`
	Ascendant *model.ZodiacSign `json:"ascendant"`
	MoonSign  *model.ZodiacSign `json:"moonSign"`
}

// Ascendant computes the rising sign (Lagna) for a birth moment. Real
// ephemeris math (Swiss Ephemeris or equivalent) is not wired in; the
// second return is false until it is.
func Ascendant(details model.BirthDetails) (model.ZodiacSign, bool) {
	log.Debug().Msg("ascendant calculation requires ephemeris integration; returning no data")
	return "", false
}

// MoonSign computes the moon sign (Rashi) for a birth moment. Same
// ephemeris caveat as Ascendant.
func MoonSign(details model.BirthDetails) (model.ZodiacSign, bool) {
	log.Debug().Msg("moon sign calculation requires ephemeris integration; returning no data")
	return "", false
}

// PanchangData assembles the almanac attributes for a birth moment.
// Until ephemeris integration lands every field is nil.
func PanchangData(details model.BirthDetails) Panchang {
	var p Panchang
	if asc, ok := Ascendant(details); ok {
		p.Ascendant = &asc
	}
	if moon, ok := MoonSign(details); ok {
		p.MoonSign = &moon
	}
	return p
}
