// Package astro implements sidereal time and equatorial to horizontal
// coordinate transforms.
package astro

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	scierr "github.com/msto63/sciops/foundation/core/error"
	"github.com/msto63/sciops/internal/calc"
)

const j2000 = 2451545.0

var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseDateTime parses an ISO 8601 timestamp. A trailing Z means UTC and a
// timestamp without zone is taken as UTC. An empty string yields now.
func ParseDateTime(s string, now func() time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return now().UTC(), nil
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, scierr.Newf("invalid datetime %q, use ISO format like '2024-06-01T10:00:00Z'", s).
		WithCode(scierr.CodeInvalidFormat)
}

// ParseRA parses a right ascension into degrees. Sexagesimal input such as
// "10h12m45s" or "10:12:45" and bare numbers up to 24 are hours; larger
// bare numbers are degrees. Input marked with d, deg or ° is parsed as
// degrees.
func ParseRA(s string) (float64, error) {
	raw := strings.TrimSpace(s)
	negative := strings.HasPrefix(raw, "-")
	text := strings.ReplaceAll(strings.ToLower(raw), " ", "")

	if strings.ContainsAny(text, "d°") {
		return ParseDec(raw)
	}

	text = strings.TrimLeft(text, "+-")
	sign := 1.0
	if negative {
		sign = -1
	}

	if !strings.ContainsAny(text, "hms:") {
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return 0, invalidRA(s)
		}
		hours := v
		if v > 24 {
			hours = v / 15
		}
		return sign * hours * 15, nil
	}

	parts, err := sexagesimal(text, "hms:")
	if err != nil {
		return 0, invalidRA(s)
	}
	return sign * parts * 15, nil
}

func invalidRA(s string) error {
	return scierr.Newf("invalid RA %q, try '10h12m45s' or '10:12:45'", s).WithCode(scierr.CodeInvalidFormat)
}

// ParseDec parses a declination such as "-12d30m00s", "-12:30:00",
// "+45°" or "12.5" into degrees.
func ParseDec(s string) (float64, error) {
	raw := strings.TrimSpace(s)
	negative := strings.HasPrefix(raw, "-")
	text := strings.ToLower(strings.TrimSpace(strings.TrimLeft(raw, "+-")))
	text = strings.NewReplacer("deg", "d", "°", "d", " ", "").Replace(text)

	v, err := sexagesimal(text, "dms:")
	if err != nil {
		return 0, scierr.Newf("invalid Dec %q, try '-12d30m00s' or '-12:30:00'", s).WithCode(scierr.CodeInvalidFormat)
	}
	if negative {
		return -v, nil
	}
	return v, nil
}

// sexagesimal splits text on any of the separator characters and combines
// up to three fields as a + b/60 + c/3600.
func sexagesimal(text, separators string) (float64, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return strings.ContainsRune(separators, r)
	})
	if len(fields) == 0 || len(fields) > 3 {
		return 0, fmt.Errorf("expected 1 to 3 fields, got %d", len(fields))
	}

	total := 0.0
	div := 1.0
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return 0, err
		}
		total += v / div
		div *= 60
	}
	return total, nil
}

// JulianDate returns the Julian date of t.
func JulianDate(t time.Time) float64 {
	t = t.UTC()
	year := t.Year()
	month := int(t.Month())
	hours := float64(t.Hour()) + float64(t.Minute())/60 + float64(t.Second())/3600 + float64(t.Nanosecond())/3.6e12
	day := float64(t.Day()) + hours/24

	if month <= 2 {
		year--
		month += 12
	}

	a := math.Floor(float64(year) / 100)
	b := 2 - a + math.Floor(a/4)
	return math.Floor(365.25*float64(year+4716)) + math.Floor(30.6001*float64(month+1)) + day + b - 1524.5
}

// GMST returns the Greenwich mean sidereal time in degrees [0, 360).
func GMST(t time.Time) float64 {
	jd := JulianDate(t)
	T := (jd - j2000) / 36525
	g := 280.46061837 + 360.98564736629*(jd-j2000) + 0.000387933*T*T - T*T*T/38710000
	return wrap360(g)
}

// LocalSiderealTime returns the LST in degrees for an east-positive
// longitude.
func LocalSiderealTime(t time.Time, lonDeg float64) float64 {
	return wrap360(GMST(t) + lonDeg)
}

func wrap360(deg float64) float64 {
	r := math.Mod(deg, 360)
	if r < 0 {
		r += 360
	}
	return r
}

// RaDecToAltAz converts equatorial coordinates to altitude and azimuth,
// all in degrees. Azimuth is measured from north through east.
func RaDecToAltAz(raDeg, decDeg, latDeg, lstDeg float64) (alt, az float64) {
	rad := math.Pi / 180
	dec := decDeg * rad
	lat := latDeg * rad
	ha := lstDeg*rad - raDeg*rad

	sinAlt := math.Sin(dec)*math.Sin(lat) + math.Cos(dec)*math.Cos(lat)*math.Cos(ha)
	altRad := math.Asin(math.Max(-1, math.Min(1, sinAlt)))

	cosAlt := math.Cos(altRad)
	if math.Abs(cosAlt) < 1e-10 {
		return altRad / rad, 0
	}

	sinAz := -math.Sin(ha) * math.Cos(dec) / cosAlt
	cosAz := (math.Sin(dec) - math.Sin(altRad)*math.Sin(lat)) / (cosAlt * math.Cos(lat))
	return altRad / rad, wrap360(math.Atan2(sinAz, cosAz) / rad)
}

// FormatHours renders an angle in degrees as "HHh MMm SS.Ss".
func FormatHours(deg float64) string {
	hours := wrap360(deg) / 15
	h := int(hours)
	m := int((hours - float64(h)) * 60)
	s := (hours - float64(h) - float64(m)/60) * 3600
	return fmt.Sprintf("%02dh %02dm %04.1fs", h, m, s)
}

// FormatDegrees renders an angle as "±DD° MM' SS.S\"".
func FormatDegrees(deg float64) string {
	sign := "+"
	if deg < 0 {
		sign = "-"
	}
	v := math.Abs(deg)
	d := int(v)
	m := int((v - float64(d)) * 60)
	s := (v - float64(d) - float64(m)/60) * 3600
	return fmt.Sprintf("%s%02d° %02d' %04.1f\"", sign, d, m, s)
}

// LSTInput is an observer longitude at an instant.
type LSTInput struct {
	Time   time.Time
	LonDeg float64
}

// LSTResult holds the local sidereal time.
type LSTResult struct {
	Time   time.Time
	LonDeg float64
	LSTDeg float64
}

// LST computes the local sidereal time.
func LST(in LSTInput) (LSTResult, error) {
	if err := calc.InRange("longitude", in.LonDeg, -360, 360); err != nil {
		return LSTResult{}, err
	}
	return LSTResult{Time: in.Time.UTC(), LonDeg: in.LonDeg, LSTDeg: LocalSiderealTime(in.Time, in.LonDeg)}, nil
}

// Report implements calc.Reporter.
func (r LSTResult) Report() calc.Report {
	return calc.Report{
		Title: fmt.Sprintf("LST @ %s for lon %+.3f°", r.Time.Format(time.RFC3339), r.LonDeg),
		Rows: []calc.Row{
			calc.Num("Degrees", r.LSTDeg, "°"),
			calc.Txt("Hours", FormatHours(r.LSTDeg)),
		},
	}
}

// AltAzInput is a target and an observer at an instant. RA and Dec are
// raw strings parsed with ParseRA and ParseDec.
type AltAzInput struct {
	RA     string
	Dec    string
	LatDeg float64
	LonDeg float64
	Time   time.Time
}

// AltAzResult holds the horizontal coordinates of the target.
type AltAzResult struct {
	Time   time.Time
	RADeg  float64
	DecDeg float64
	LSTDeg float64
	AltDeg float64
	AzDeg  float64
}

// AltAz converts the target's RA/Dec to altitude and azimuth.
func AltAz(in AltAzInput) (AltAzResult, error) {
	if err := calc.InRange("latitude", in.LatDeg, -90, 90); err != nil {
		return AltAzResult{}, err
	}
	ra, err := ParseRA(in.RA)
	if err != nil {
		return AltAzResult{}, err
	}
	dec, err := ParseDec(in.Dec)
	if err != nil {
		return AltAzResult{}, err
	}
	if err := calc.InRange("declination", dec, -90, 90); err != nil {
		return AltAzResult{}, err
	}

	lst := LocalSiderealTime(in.Time, in.LonDeg)
	alt, az := RaDecToAltAz(ra, dec, in.LatDeg, lst)
	return AltAzResult{Time: in.Time.UTC(), RADeg: ra, DecDeg: dec, LSTDeg: lst, AltDeg: alt, AzDeg: az}, nil
}

// Report implements calc.Reporter.
func (r AltAzResult) Report() calc.Report {
	return calc.Report{
		Title: "Observation " + r.Time.Format(time.RFC3339),
		Rows: []calc.Row{
			calc.Txt("Local sidereal time", FormatHours(r.LSTDeg)),
			calc.Num("RA", r.RADeg, "°"),
			calc.Num("Dec", r.DecDeg, "°"),
			calc.Num("Altitude", r.AltDeg, "°"),
			calc.Num("Azimuth", r.AzDeg, "°"),
		},
		Notes: []string{"azimuth 0°=North, 90°=East"},
	}
}
