package cmd

import (
	"github.com/spf13/cobra"

	scierr "github.com/msto63/sciops/foundation/core/error"
	"github.com/msto63/sciops/internal/calc/relativity"
)

var (
	relMetersPerSecond bool
	relMass            string
	relRadius          string
	relBody            string
	relAltitude        string
)

var relativityCmd = &cobra.Command{
	Use:   "relativity",
	Short: "Special and general relativity",
	Long: `Relativistic calculators.

Velocities are fractions of c unless --m-per-s is set or the value carries
a unit suffix (e.g. 1.5e8m/s or 1e6km/h).`,
}

var relGammaCmd = &cobra.Command{
	Use:   "gamma <v>",
	Short: "Lorentz factor",
	Args:  cobra.ExactArgs(1),
	RunE:  runRelGamma,
}

var relTimeDilationCmd = &cobra.Command{
	Use:   "time-dilation <proper-time> <v>",
	Short: "Dilated time for a moving clock",
	Args:  cobra.ExactArgs(2),
	RunE:  runRelTimeDilation,
}

var relLengthCmd = &cobra.Command{
	Use:   "length-contraction <proper-length> <v>",
	Short: "Contracted length of a moving rod",
	Args:  cobra.ExactArgs(2),
	RunE:  runRelLength,
}

var relEnergyCmd = &cobra.Command{
	Use:   "energy <mass> <v>",
	Short: "Rest, total and kinetic energy",
	Args:  cobra.ExactArgs(2),
	RunE:  runRelEnergy,
}

var relGravCmd = &cobra.Command{
	Use:   "grav-dilation",
	Short: "Gravitational time dilation at a distance from a mass",
	Long: `Computes the clock rate sqrt(1 - 2GM/(r c^2)) for an observer.

Uses --body (or the configured default body) plus --altitude, or an
explicit --mass and --radius. --body none requires --mass and --radius.

Examples:
  sciops relativity grav-dilation --body earth --altitude 20200km
  sciops relativity grav-dilation --mass 1.989e30 --radius 7e8`,
	Args: cobra.NoArgs,
	RunE: runRelGrav,
}

func init() {
	rootCmd.AddCommand(relativityCmd)
	relativityCmd.AddCommand(relGammaCmd, relTimeDilationCmd, relLengthCmd, relEnergyCmd, relGravCmd)

	for _, c := range []*cobra.Command{relGammaCmd, relTimeDilationCmd, relLengthCmd, relEnergyCmd} {
		c.Flags().BoolVar(&relMetersPerSecond, "m-per-s", false, "interpret v in m/s instead of a fraction of c")
	}

	relGravCmd.Flags().StringVar(&relMass, "mass", "", "mass of the central body (kg)")
	relGravCmd.Flags().StringVar(&relRadius, "radius", "", "distance from the centre (m)")
	relGravCmd.Flags().StringVar(&relBody, "body", "", "body preset, or none")
	relGravCmd.Flags().StringVar(&relAltitude, "altitude", "0", "altitude above the body surface (m)")
}

// velocity parses v as a fraction of c, or as a speed when --m-per-s is
// set or v has a unit suffix.
func velocity(s string) (relativity.Velocity, error) {
	v, unit, err := splitQuantity(s)
	if err != nil {
		return relativity.Velocity{}, err
	}
	if unit == "" {
		return relativity.Velocity{Value: v, MetersPerSecond: relMetersPerSecond}, nil
	}
	ms, err := app.conv.Convert(v, unit, "m/s")
	if err != nil {
		return relativity.Velocity{}, err
	}
	return relativity.Velocity{Value: ms, MetersPerSecond: true}, nil
}

func runRelGamma(cmd *cobra.Command, args []string) error {
	v, err := velocity(args[0])
	if err != nil {
		return err
	}
	return emitResult(relativity.LorentzGamma(v))
}

func runRelTimeDilation(cmd *cobra.Command, args []string) error {
	t, err := quantity("proper time", args[0], "s")
	if err != nil {
		return err
	}
	v, err := velocity(args[1])
	if err != nil {
		return err
	}
	return emitResult(relativity.TimeDilation(relativity.TimeDilationInput{ProperTime: t, V: v}))
}

func runRelLength(cmd *cobra.Command, args []string) error {
	l, err := quantity("proper length", args[0], "m")
	if err != nil {
		return err
	}
	v, err := velocity(args[1])
	if err != nil {
		return err
	}
	return emitResult(relativity.LengthContraction(relativity.LengthContractionInput{ProperLength: l, V: v}))
}

func runRelEnergy(cmd *cobra.Command, args []string) error {
	m, err := quantity("mass", args[0], "kg")
	if err != nil {
		return err
	}
	v, err := velocity(args[1])
	if err != nil {
		return err
	}
	return emitResult(relativity.Energy(relativity.EnergyInput{Mass: m, V: v}))
}

func runRelGrav(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	explicit := flags.Changed("mass") && flags.Changed("radius")

	body := bodyName(relBody, flags.Changed("body"))
	if explicit && !flags.Changed("body") {
		body = "none"
	}

	var in relativity.GravInput
	if relativity.IsNoBody(body) {
		if !explicit {
			return scierr.InvalidInput("provide --body or both --mass and --radius")
		}
		mass, err := quantity("mass", relMass, "kg")
		if err != nil {
			return err
		}
		radius, err := quantity("radius", relRadius, "m")
		if err != nil {
			return err
		}
		in = relativity.GravInput{Mass: mass, Radius: radius}
	} else {
		alt, err := quantity("altitude", relAltitude, "m")
		if err != nil {
			return err
		}
		if in, err = relativity.GravInputForBody(body, alt); err != nil {
			return err
		}
	}
	return emitResult(relativity.GravDilation(in))
}
