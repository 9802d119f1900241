package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/msto63/sciops/internal/calc/astro"
)

var (
	astroLon      float64
	astroLat      float64
	astroRA       string
	astroDec      string
	astroDateTime string
)

var astroCmd = &cobra.Command{
	Use:   "astro",
	Short: "Sidereal time and horizontal coordinates",
}

var astroLSTCmd = &cobra.Command{
	Use:   "lst",
	Short: "Local sidereal time for a longitude",
	Long: `Computes the local sidereal time. Longitudes are degrees east positive.
Datetimes are ISO 8601; a timestamp without zone is UTC and an empty one
means now.

Example:
  sciops astro lst --lon -71.06 -d 2024-06-01T03:00:00Z`,
	Args: cobra.NoArgs,
	RunE: runAstroLST,
}

var astroAltAzCmd = &cobra.Command{
	Use:   "altaz",
	Short: "Altitude and azimuth of a target from RA/Dec",
	Long: `Converts equatorial coordinates to altitude and azimuth for an observer.

RA is given in hours ("10h12m45s", "10:12:45", "10.2") or degrees ("153d",
or a bare number above 24). Dec is degrees ("+19d30m", "-05:20:10").

Example:
  sciops astro altaz --ra 10h12m45s --dec +19d30m --lat 42.36 --lon -71.06 -d 2024-06-01T03:00:00Z`,
	Args: cobra.NoArgs,
	RunE: runAstroAltAz,
}

func init() {
	rootCmd.AddCommand(astroCmd)
	astroCmd.AddCommand(astroLSTCmd, astroAltAzCmd)

	for _, c := range []*cobra.Command{astroLSTCmd, astroAltAzCmd} {
		c.Flags().Float64Var(&astroLon, "lon", 0, "observer longitude in degrees, east positive")
		c.Flags().StringVarP(&astroDateTime, "datetime", "d", "", "ISO datetime, UTC if no zone (default now)")
		_ = c.MarkFlagRequired("lon")
	}
	astroAltAzCmd.Flags().Float64Var(&astroLat, "lat", 0, "observer latitude in degrees")
	astroAltAzCmd.Flags().StringVar(&astroRA, "ra", "", "right ascension")
	astroAltAzCmd.Flags().StringVar(&astroDec, "dec", "", "declination")
	_ = astroAltAzCmd.MarkFlagRequired("lat")
	_ = astroAltAzCmd.MarkFlagRequired("ra")
	_ = astroAltAzCmd.MarkFlagRequired("dec")
}

func runAstroLST(cmd *cobra.Command, args []string) error {
	t, err := astro.ParseDateTime(astroDateTime, time.Now)
	if err != nil {
		return err
	}
	return emitResult(astro.LST(astro.LSTInput{Time: t, LonDeg: astroLon}))
}

func runAstroAltAz(cmd *cobra.Command, args []string) error {
	t, err := astro.ParseDateTime(astroDateTime, time.Now)
	if err != nil {
		return err
	}
	return emitResult(astro.AltAz(astro.AltAzInput{
		RA:     astroRA,
		Dec:    astroDec,
		LatDeg: astroLat,
		LonDeg: astroLon,
		Time:   t,
	}))
}
