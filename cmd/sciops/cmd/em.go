package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/sciops/internal/calc/em"
)

var (
	emInductance  string
	emCapacitance string
)

var emCmd = &cobra.Command{
	Use:   "em",
	Short: "Electromagnetism: Coulomb force and reactance",
}

var emCoulombCmd = &cobra.Command{
	Use:   "coulomb <q1> <q2> <r>",
	Short: "Electrostatic force between two point charges",
	Long: `Computes F = k q1 q2 / r^2. Charges are in coulomb and r in meters
unless suffixed (e.g. 5cm).

Example:
  sciops em coulomb 1e-6 -2e-6 0.05`,
	Args: cobra.ExactArgs(3),
	RunE: runEMCoulomb,
}

var emReactanceCmd = &cobra.Command{
	Use:   "reactance <freq>",
	Short: "Inductive and capacitive reactance at a frequency",
	Long: `Computes X_L = 2 pi f L and X_C = 1 / (2 pi f C) and their series sum.
At least one of --L and --C is required.

Example:
  sciops em reactance 50Hz --L 0.1 --C 10uF`,
	Args: cobra.ExactArgs(1),
	RunE: runEMReactance,
}

func init() {
	rootCmd.AddCommand(emCmd)
	emCmd.AddCommand(emCoulombCmd, emReactanceCmd)

	emReactanceCmd.Flags().StringVar(&emInductance, "L", "", "inductance (H)")
	emReactanceCmd.Flags().StringVar(&emCapacitance, "C", "", "capacitance (farad)")
}

func runEMCoulomb(cmd *cobra.Command, args []string) error {
	q1, err := quantity("q1", args[0], "coulomb")
	if err != nil {
		return err
	}
	q2, err := quantity("q2", args[1], "coulomb")
	if err != nil {
		return err
	}
	r, err := quantity("r", args[2], "m")
	if err != nil {
		return err
	}
	return emitResult(em.Coulomb(em.CoulombInput{Q1: q1, Q2: q2, R: r}))
}

func runEMReactance(cmd *cobra.Command, args []string) error {
	freq, err := quantity("frequency", args[0], "Hz")
	if err != nil {
		return err
	}

	in := em.ReactanceInput{Freq: freq}
	if emInductance != "" {
		if in.Inductance, err = quantity("inductance", emInductance, "H"); err != nil {
			return err
		}
	}
	if emCapacitance != "" {
		if in.Capacitance, err = quantity("capacitance", emCapacitance, "farad"); err != nil {
			return err
		}
	}
	return emitResult(em.Reactance(in))
}
