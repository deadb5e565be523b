package photo

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"
	"k8s.io/klog/v2"

	"github.com/electronjoe/GeoFrame/internal/geocode"
)

const dateLayout = "2006-01-02"

// annotationSep joins the date and place halves of a display string.
const annotationSep = " · "

// Record is the metadata extracted for one image. Both fields are
// independently optional: a zero TakenTime means no capture date, an empty
// Place means no location.
type Record struct {
	TakenTime time.Time
	Place     string
}

// DisplayString joins the non-absent fields into the annotation shown under
// the image. Empty when neither field is present.
func (r Record) DisplayString() string {
	var parts []string
	if !r.TakenTime.IsZero() {
		parts = append(parts, r.TakenTime.Format(dateLayout))
	}
	if r.Place != "" {
		parts = append(parts, r.Place)
	}
	return strings.Join(parts, annotationSep)
}

// Geocoder resolves a coordinate to an address. Failures of any kind mean
// "no place"; the extractor never propagates them.
type Geocoder interface {
	ReverseGeocode(ctx context.Context, lat, lon float64) (geocode.Address, error)
}

// Extractor reads embedded EXIF metadata from image files. A nil Geocoder
// disables place resolution.
type Extractor struct {
	Geocoder Geocoder
}

// Extract returns the metadata record for path. It is total: every failure
// mode (unreadable file, no EXIF block, malformed tags, geocoder outage)
// degrades to an absent field, never an error.
func (e *Extractor) Extract(ctx context.Context, path string) Record {
	f, err := os.Open(path)
	if err != nil {
		klog.V(1).Infof("open %s: %v", path, err)
		return Record{}
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil || x == nil {
		klog.V(1).Infof("no EXIF data in %s: %v", path, err)
		return Record{}
	}

	var rec Record
	if t, err := x.DateTime(); err == nil {
		rec.TakenTime = t
	}

	lat, lon, err := gpsCoordinate(x)
	if err != nil {
		klog.V(2).Infof("no GPS coordinate for %s: %v", path, err)
		return rec
	}
	if e.Geocoder == nil {
		return rec
	}

	addr, err := e.Geocoder.ReverseGeocode(ctx, lat, lon)
	if err != nil {
		klog.Warningf("reverse geocode (%f, %f) for %s: %v", lat, lon, path, err)
		return rec
	}
	rec.Place = formatPlace(addr)
	return rec
}

// formatPlace builds "<locality>, <country>", dropping whichever half is
// absent.
func formatPlace(addr geocode.Address) string {
	var parts []string
	if loc := addr.Locality(); loc != "" {
		parts = append(parts, loc)
	}
	if addr.Country != "" {
		parts = append(parts, addr.Country)
	}
	return strings.Join(parts, ", ")
}

// gpsCoordinate pulls the latitude/longitude rationals and hemisphere refs
// out of the GPS IFD and converts them to signed decimals.
func gpsCoordinate(x *exif.Exif) (lat, lon float64, err error) {
	lat, err = gpsAxis(x, exif.GPSLatitude, exif.GPSLatitudeRef, 90)
	if err != nil {
		return 0, 0, err
	}
	lon, err = gpsAxis(x, exif.GPSLongitude, exif.GPSLongitudeRef, 180)
	if err != nil {
		return 0, 0, err
	}
	return lat, lon, nil
}

func gpsAxis(x *exif.Exif, field, refField exif.FieldName, limit float64) (float64, error) {
	tag, err := x.Get(field)
	if err != nil {
		return 0, err
	}
	refTag, err := x.Get(refField)
	if err != nil {
		return 0, err
	}
	ref, err := refTag.StringVal()
	if err != nil {
		return 0, ErrMalformedGPS
	}

	dms, err := rationals(tag)
	if err != nil {
		return 0, err
	}

	dec, err := ToDecimal(dms[0], dms[1], dms[2], ref)
	if err != nil {
		return 0, err
	}
	if dec < -limit || dec > limit {
		return 0, ErrMalformedGPS
	}
	return dec, nil
}

func rationals(tag *tiff.Tag) ([3]Rational, error) {
	var out [3]Rational
	if tag.Count < 3 {
		return out, ErrMalformedGPS
	}
	for i := 0; i < 3; i++ {
		num, den, err := tag.Rat2(i)
		if err != nil {
			return out, ErrMalformedGPS
		}
		out[i] = Rational{Num: num, Den: den}
	}
	return out, nil
}
