package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/sciops/internal/calc/chem"
)

var (
	chemMoles  float64
	chemVolume string
	chemC1     float64
	chemV1     string
	chemC2     float64
)

var chemCmd = &cobra.Command{
	Use:   "chem",
	Short: "Solution chemistry: molarity and dilution",
}

var chemMolarityCmd = &cobra.Command{
	Use:   "molarity",
	Short: "Molarity from moles and volume, M = n / V",
	Long: `Computes the molarity of a solution.

Example:
  sciops chem molarity --moles 0.25 --volume-l 0.5
  sciops chem molarity --moles 0.25 --volume-l 250mL`,
	Args: cobra.NoArgs,
	RunE: runChemMolarity,
}

var chemDiluteCmd = &cobra.Command{
	Use:   "dilute",
	Short: "Final volume and solvent to add, C1 V1 = C2 V2",
	Long: `Solves C1 V1 = C2 V2 for V2. Volumes are in mL unless suffixed.

Example:
  sciops chem dilute --c1 1.0 --v1 10 --c2 0.1`,
	Args: cobra.NoArgs,
	RunE: runChemDilute,
}

func init() {
	rootCmd.AddCommand(chemCmd)
	chemCmd.AddCommand(chemMolarityCmd, chemDiluteCmd)

	chemMolarityCmd.Flags().Float64VarP(&chemMoles, "moles", "n", 0, "amount of solute (mol)")
	chemMolarityCmd.Flags().StringVar(&chemVolume, "volume-l", "", "solution volume (L)")
	_ = chemMolarityCmd.MarkFlagRequired("moles")
	_ = chemMolarityCmd.MarkFlagRequired("volume-l")

	chemDiluteCmd.Flags().Float64Var(&chemC1, "c1", 0, "initial concentration (M)")
	chemDiluteCmd.Flags().StringVar(&chemV1, "v1", "", "initial volume (mL)")
	chemDiluteCmd.Flags().Float64Var(&chemC2, "c2", 0, "target concentration (M)")
	for _, f := range []string{"c1", "v1", "c2"} {
		_ = chemDiluteCmd.MarkFlagRequired(f)
	}
}

func runChemMolarity(cmd *cobra.Command, args []string) error {
	v, err := quantity("volume", chemVolume, "L")
	if err != nil {
		return err
	}
	return emitResult(chem.Molarity(chem.MolarityInput{Moles: chemMoles, VolumeL: v}))
}

func runChemDilute(cmd *cobra.Command, args []string) error {
	v1, err := quantity("v1", chemV1, "mL")
	if err != nil {
		return err
	}
	return emitResult(chem.Dilution(chem.DilutionInput{C1: chemC1, V1: v1, C2: chemC2}))
}
