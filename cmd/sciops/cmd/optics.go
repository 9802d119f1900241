package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/sciops/internal/calc/optics"
)

var opticsCmd = &cobra.Command{
	Use:   "optics",
	Short: "Geometric optics: refraction and thin lenses",
}

var opticsSnellCmd = &cobra.Command{
	Use:   "snell <n1> <n2> <theta1>",
	Short: "Refraction angle from Snell's law",
	Long: `Computes the refraction angle for light passing from index n1 into n2.
theta1 is measured from the normal, in degrees unless suffixed (0.3rad).
Total internal reflection is reported with the critical angle.

Example:
  sciops optics snell 1.0 1.5 30`,
	Args: cobra.ExactArgs(3),
	RunE: runOpticsSnell,
}

var opticsThinLensCmd = &cobra.Command{
	Use:   "thin-lens <f> <do>",
	Short: "Image distance and magnification of a thin lens",
	Long: `Solves 1/f = 1/do + 1/di. f and do share any length unit; the image
distance is reported in the same unit.

Example:
  sciops optics thin-lens 10 30`,
	Args: cobra.ExactArgs(2),
	RunE: runOpticsThinLens,
}

func init() {
	rootCmd.AddCommand(opticsCmd)
	opticsCmd.AddCommand(opticsSnellCmd, opticsThinLensCmd)
}

func runOpticsSnell(cmd *cobra.Command, args []string) error {
	n, err := numbers("refractive index", args[:2])
	if err != nil {
		return err
	}
	theta, err := quantity("theta1", args[2], "deg")
	if err != nil {
		return err
	}
	return emitResult(optics.Snell(optics.SnellInput{N1: n[0], N2: n[1], Theta1: theta}))
}

func runOpticsThinLens(cmd *cobra.Command, args []string) error {
	v, err := numbers("distance", args)
	if err != nil {
		return err
	}
	return emitResult(optics.ThinLens(optics.ThinLensInput{F: v[0], Do: v[1]}))
}
