package cmd

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	scierr "github.com/msto63/sciops/foundation/core/error"
	"github.com/msto63/sciops/internal/calc/bio"
)

var (
	hwP            float64
	hwAA           int
	hwAB           int
	hwBB           int
	bioFrame       int
	bioReadThrough bool
	bioORFOnly     bool
	bioMinAA       int
	bioFrames      string
)

var bioCmd = &cobra.Command{
	Use:   "bio",
	Short: "Population genetics and DNA sequences",
}

var bioHWCmd = &cobra.Command{
	Use:   "hardy-weinberg",
	Short: "Equilibrium genotype frequencies from p or genotype counts",
	Long: `Computes p^2, 2pq and q^2. Give the allele frequency with --p, or the
genotype counts --aa, --ab and --bb to estimate p and compare observed
with expected frequencies.

Examples:
  sciops bio hardy-weinberg --p 0.7
  sciops bio hardy-weinberg --aa 360 --ab 480 --bb 160`,
	Args: cobra.NoArgs,
	RunE: runBioHW,
}

var bioPunnettCmd = &cobra.Command{
	Use:   "punnett <parent1> <parent2>",
	Short: "Offspring genotype probabilities of a single-locus cross",
	Args:  cobra.ExactArgs(2),
	RunE:  runBioPunnett,
}

var bioGCCmd = &cobra.Command{
	Use:   "gc-content <sequence>",
	Short: "GC fraction of a DNA sequence",
	Args:  cobra.ExactArgs(1),
	RunE:  runBioGC,
}

var bioTranslateCmd = &cobra.Command{
	Use:   "translate <sequence>",
	Short: "Translate DNA to protein",
	Long: `Translates DNA codons into one-letter amino acids from --frame (0, 1 or 2).
Translation stops at the first stop codon unless --read-through is set.
--orf-only starts at the first in-frame ATG.`,
	Args: cobra.ExactArgs(1),
	RunE: runBioTranslate,
}

var bioFindORFsCmd = &cobra.Command{
	Use:   "find-orfs <sequence>",
	Short: "Open reading frames of at least --min-aa residues",
	Args:  cobra.ExactArgs(1),
	RunE:  runBioFindORFs,
}

var bioGCFileCmd = &cobra.Command{
	Use:   "gc-file <fasta>",
	Short: "GC fraction of a FASTA or plain sequence file",
	Args:  cobra.ExactArgs(1),
	RunE:  runBioGCFile,
}

var bioTranslateFileCmd = &cobra.Command{
	Use:   "translate-file <fasta>",
	Short: "Translate a FASTA or plain sequence file",
	Args:  cobra.ExactArgs(1),
	RunE:  runBioTranslateFile,
}

func init() {
	rootCmd.AddCommand(bioCmd)
	bioCmd.AddCommand(bioHWCmd, bioPunnettCmd, bioGCCmd, bioTranslateCmd, bioFindORFsCmd, bioGCFileCmd, bioTranslateFileCmd)

	bioHWCmd.Flags().Float64Var(&hwP, "p", 0, "frequency of allele A (0..1)")
	bioHWCmd.Flags().IntVar(&hwAA, "aa", 0, "count of AA genotypes")
	bioHWCmd.Flags().IntVar(&hwAB, "ab", 0, "count of AB genotypes")
	bioHWCmd.Flags().IntVar(&hwBB, "bb", 0, "count of BB genotypes")

	for _, c := range []*cobra.Command{bioTranslateCmd, bioTranslateFileCmd} {
		c.Flags().IntVar(&bioFrame, "frame", 0, "reading frame offset (0, 1 or 2)")
		c.Flags().BoolVar(&bioReadThrough, "read-through", false, "continue past stop codons, shown as '*'")
	}
	bioTranslateCmd.Flags().BoolVar(&bioORFOnly, "orf-only", false, "start at the first in-frame ATG")

	bioFindORFsCmd.Flags().IntVar(&bioMinAA, "min-aa", bio.DefaultMinAA, "minimum ORF length in amino acids")
	bioFindORFsCmd.Flags().StringVar(&bioFrames, "frames", "1,2,3", "comma-separated frames to scan (1-3)")
	bioFindORFsCmd.Flags().BoolVar(&bioReadThrough, "read-through", false, "do not end ORFs at stop codons")
}

func runBioHW(cmd *cobra.Command, args []string) error {
	return emitResult(bio.HardyWeinberg(bio.HardyWeinbergInput{
		P:    hwP,
		HasP: cmd.Flags().Changed("p"),
		AA:   hwAA,
		AB:   hwAB,
		BB:   hwBB,
	}))
}

func runBioPunnett(cmd *cobra.Command, args []string) error {
	return emitResult(bio.Punnett(args[0], args[1]))
}

func runBioGC(cmd *cobra.Command, args []string) error {
	return emitResult(bio.GCContent(args[0]))
}

func runBioTranslate(cmd *cobra.Command, args []string) error {
	return emitResult(bio.Translate(bio.TranslateInput{
		Sequence:    args[0],
		Frame:       bioFrame,
		ReadThrough: bioReadThrough,
		ORFOnly:     bioORFOnly,
	}))
}

func runBioFindORFs(cmd *cobra.Command, args []string) error {
	frames, err := parseFrames(bioFrames)
	if err != nil {
		return err
	}
	res, err := bio.FindORFs(bio.ORFInput{
		Sequence:    args[0],
		MinAA:       bioMinAA,
		Frames:      frames,
		ReadThrough: bioReadThrough,
	})
	if err != nil {
		return err
	}
	if app.printer.Machine() {
		return app.printer.Encode(res.ORFs)
	}
	return emit(res.Report())
}

func runBioGCFile(cmd *cobra.Command, args []string) error {
	seq, err := bio.ReadSequenceFile(args[0])
	if err != nil {
		return err
	}
	return emitResult(bio.GCContent(seq))
}

func runBioTranslateFile(cmd *cobra.Command, args []string) error {
	seq, err := bio.ReadSequenceFile(args[0])
	if err != nil {
		return err
	}
	return emitResult(bio.Translate(bio.TranslateInput{
		Sequence:    seq,
		Frame:       bioFrame,
		ReadThrough: bioReadThrough,
	}))
}

// parseFrames parses a list such as "1,3" or "1 2".
func parseFrames(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	frames := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, scierr.InvalidInput("invalid frame %q, use a list like 1,2,3", f)
		}
		frames = append(frames, n)
	}
	return frames, nil
}
