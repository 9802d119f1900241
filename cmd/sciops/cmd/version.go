package cmd

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/msto63/sciops/pkg/core/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		p := app.printer
		p.Title("sciops v" + version.Platform)
		p.Text("Git commit", version.Commit)
		p.Text("Build date", version.Date)
		p.Text("Go version", runtime.Version())
		p.Text("OS/Arch", runtime.GOOS+"/"+runtime.GOARCH)
		p.Text("Unit engine", version.Units)
		p.Text("Constants", version.Constants+" ("+version.ConstantsSource+")")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
