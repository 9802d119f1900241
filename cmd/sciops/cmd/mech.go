package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/msto63/sciops/internal/calc/mech"
)

var (
	mechY0    string
	mechG     string
	mechMu    string
	mechBody  string
	mechAngle string
)

var mechCmd = &cobra.Command{
	Use:   "mech",
	Short: "Mechanics: projectiles, work, power, pendulums, orbits",
	Long: `Classical mechanics calculators.

Quantities accept a unit suffix and are converted to SI first:
  sciops mech projectile 72km/h 30
  sciops mech work 10 3ft --angle 0.2rad
  sciops mech pendulum 1 --body moon`,
}

var mechProjectileCmd = &cobra.Command{
	Use:   "projectile <v0> <angle>",
	Short: "Time of flight, range and apex of a drag-free launch",
	Args:  cobra.ExactArgs(2),
	RunE:  runMechProjectile,
}

var mechWorkCmd = &cobra.Command{
	Use:   "work <force> <distance>",
	Short: "Work done by a constant force, W = F d cos(angle)",
	Args:  cobra.ExactArgs(2),
	RunE:  runMechWork,
}

var mechPowerCmd = &cobra.Command{
	Use:   "power <work> <time>",
	Short: "Average power, P = W / t",
	Args:  cobra.ExactArgs(2),
	RunE:  runMechPower,
}

var mechPendulumCmd = &cobra.Command{
	Use:   "pendulum <length>",
	Short: "Small-angle period of a simple pendulum",
	Args:  cobra.ExactArgs(1),
	RunE:  runMechPendulum,
}

var mechOrbitCmd = &cobra.Command{
	Use:   "orbit-period <semi-major-axis>",
	Short: "Kepler period of an orbit around a body",
	Args:  cobra.ExactArgs(1),
	RunE:  runMechOrbit,
}

func init() {
	rootCmd.AddCommand(mechCmd)
	mechCmd.AddCommand(mechProjectileCmd, mechWorkCmd, mechPowerCmd, mechPendulumCmd, mechOrbitCmd)

	mechProjectileCmd.Flags().StringVar(&mechY0, "y0", "0", "launch height (m)")
	for _, c := range []*cobra.Command{mechProjectileCmd, mechPendulumCmd} {
		c.Flags().StringVar(&mechG, "g", "", "gravitational acceleration (m/s^2), overrides the default body")
		c.Flags().StringVar(&mechBody, "body", "", "celestial body preset (earth, moon, mars, ...)")
	}
	mechOrbitCmd.Flags().StringVar(&mechMu, "mu", "", "gravitational parameter G*M (m^3/s^2)")
	mechOrbitCmd.Flags().StringVar(&mechBody, "body", "", "central body preset")
	mechWorkCmd.Flags().StringVar(&mechAngle, "angle", "0", "angle between force and displacement (deg)")
}

// gravity resolves g from --body, then --g, then the configured default
// body.
func gravity(cmd *cobra.Command) (float64, error) {
	if cmd.Flags().Changed("body") {
		return mech.SurfaceGravity(mechBody)
	}
	if cmd.Flags().Changed("g") {
		return quantity("g", mechG, "m/s^2")
	}
	body := bodyName(mechBody, false)
	app.logger.Debug("using default body", zap.String("body", body))
	return mech.SurfaceGravity(body)
}

func runMechProjectile(cmd *cobra.Command, args []string) error {
	v0, err := quantity("v0", args[0], "m/s")
	if err != nil {
		return err
	}
	angle, err := quantity("angle", args[1], "deg")
	if err != nil {
		return err
	}
	y0, err := quantity("y0", mechY0, "m")
	if err != nil {
		return err
	}
	g, err := gravity(cmd)
	if err != nil {
		return err
	}
	return emitResult(mech.Projectile(mech.ProjectileInput{V0: v0, AngleDeg: angle, Y0: y0, G: g}))
}

func runMechWork(cmd *cobra.Command, args []string) error {
	force, err := quantity("force", args[0], "N")
	if err != nil {
		return err
	}
	distance, err := quantity("distance", args[1], "m")
	if err != nil {
		return err
	}
	angle, err := quantity("angle", mechAngle, "deg")
	if err != nil {
		return err
	}
	return emitResult(mech.Work(mech.WorkInput{Force: force, Distance: distance, AngleDeg: angle}))
}

func runMechPower(cmd *cobra.Command, args []string) error {
	work, err := quantity("work", args[0], "J")
	if err != nil {
		return err
	}
	t, err := quantity("time", args[1], "s")
	if err != nil {
		return err
	}
	return emitResult(mech.Power(mech.PowerInput{Work: work, Time: t}))
}

func runMechPendulum(cmd *cobra.Command, args []string) error {
	length, err := quantity("length", args[0], "m")
	if err != nil {
		return err
	}
	g, err := gravity(cmd)
	if err != nil {
		return err
	}
	return emitResult(mech.Pendulum(mech.PendulumInput{Length: length, G: g}))
}

func runMechOrbit(cmd *cobra.Command, args []string) error {
	a, err := quantity("semi-major axis", args[0], "m")
	if err != nil {
		return err
	}

	var mu float64
	switch {
	case cmd.Flags().Changed("body"):
		mu, err = mech.GravitationalParameter(mechBody)
	case cmd.Flags().Changed("mu"):
		mu, err = quantity("mu", mechMu, "m^3/s^2")
	default:
		mu, err = mech.GravitationalParameter(bodyName(mechBody, false))
	}
	if err != nil {
		return err
	}
	return emitResult(mech.OrbitPeriod(mech.OrbitInput{SemiMajorAxis: a, Mu: mu}))
}
