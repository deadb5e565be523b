package photo

import "errors"

// ErrMalformedGPS reports a GPS tag that can't be converted to a coordinate,
// such as a rational with a zero denominator. Callers treat it as
// "coordinate unavailable" rather than a failure.
var ErrMalformedGPS = errors.New("malformed GPS metadata")

// Rational is one degree/minute/second component as stored in EXIF.
type Rational struct {
	Num int64
	Den int64
}

func (r Rational) float() (float64, error) {
	if r.Den == 0 {
		return 0, ErrMalformedGPS
	}
	return float64(r.Num) / float64(r.Den), nil
}

// ToDecimal converts a degree/minute/second triple plus a hemisphere
// reference ("N", "S", "E" or "W") into a signed decimal coordinate.
func ToDecimal(deg, min, sec Rational, ref string) (float64, error) {
	d, err := deg.float()
	if err != nil {
		return 0, err
	}
	m, err := min.float()
	if err != nil {
		return 0, err
	}
	s, err := sec.float()
	if err != nil {
		return 0, err
	}

	dec := d + m/60 + s/3600

	switch ref {
	case "N", "E":
	case "S", "W":
		dec = -dec
	default:
		return 0, ErrMalformedGPS
	}
	return dec, nil
}
