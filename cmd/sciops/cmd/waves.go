package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/sciops/internal/plot"
	"github.com/msto63/sciops/internal/waves"
)

var (
	waveFreq    float64
	waveSamples int
	waveDuty    float64
	waveHeight  int
)

var wavesCmd = &cobra.Command{
	Use:   "waves",
	Short: "Waveform generation with ASCII plots",
}

var wavesSineCmd = &cobra.Command{
	Use:   "sine",
	Short: "Plot a sine wave over t in [0, 1]",
	Args:  cobra.NoArgs,
	RunE:  runWavesSine,
}

var wavesSquareCmd = &cobra.Command{
	Use:   "square",
	Short: "Plot a square wave over t in [0, 1]",
	Args:  cobra.NoArgs,
	RunE:  runWavesSquare,
}

func init() {
	rootCmd.AddCommand(wavesCmd)
	wavesCmd.AddCommand(wavesSineCmd)
	wavesCmd.AddCommand(wavesSquareCmd)

	for _, c := range []*cobra.Command{wavesSineCmd, wavesSquareCmd} {
		c.Flags().Float64Var(&waveFreq, "freq", 1, "frequency in cycles per unit time")
		c.Flags().IntVar(&waveSamples, "samples", waves.DefaultSamples, "number of samples")
		c.Flags().IntVar(&waveHeight, "height", plot.DefaultHeight, "plot height in rows")
	}
	wavesSquareCmd.Flags().Float64Var(&waveDuty, "duty", 0.5, "fraction of each period spent high (0..1)")
}

// waveform is the machine-readable form of a sampled signal.
type waveform struct {
	Kind    string    `json:"kind" yaml:"kind"`
	Freq    float64   `json:"freq" yaml:"freq"`
	Duty    float64   `json:"duty,omitempty" yaml:"duty,omitempty"`
	Samples []float64 `json:"samples" yaml:"samples"`
}

func runWavesSine(cmd *cobra.Command, args []string) error {
	y, err := waves.Sine(waveFreq, waveSamples)
	if err != nil {
		return err
	}
	return drawWave(waveform{Kind: "sine", Freq: waveFreq, Samples: y},
		fmt.Sprintf("Sine wave: f=%s, %d samples", app.printer.Number(waveFreq), len(y)))
}

func runWavesSquare(cmd *cobra.Command, args []string) error {
	y, err := waves.Square(waveFreq, waveSamples, waveDuty)
	if err != nil {
		return err
	}
	return drawWave(waveform{Kind: "square", Freq: waveFreq, Duty: waveDuty, Samples: y},
		fmt.Sprintf("Square wave: f=%s, duty=%s, %d samples", app.printer.Number(waveFreq), app.printer.Number(waveDuty), len(y)))
}

func drawWave(w waveform, summary string) error {
	p := app.printer
	if p.Machine() {
		if err := p.Encode(w); err != nil {
			return err
		}
	} else {
		p.Title(summary)
		p.Lines(plot.Render(w.Samples, waveHeight))
	}
	return logLine(summary)
}
