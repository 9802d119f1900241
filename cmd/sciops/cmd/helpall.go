package cmd

import (
	"github.com/spf13/cobra"
)

var helpAllCmd = &cobra.Command{
	Use:   "help-all",
	Short: "List every command group and its subcommands",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		p := app.printer
		p.Title("Science Ops command index")

		var rows [][]string
		for _, group := range rootCmd.Commands() {
			if group.Hidden || group.Name() == "help" || group.Name() == "completion" {
				continue
			}
			rows = append(rows, []string{group.Name(), "", group.Short})
			for _, sub := range group.Commands() {
				if sub.Hidden {
					continue
				}
				rows = append(rows, []string{"", sub.Name(), sub.Short})
			}
		}
		p.Table("", []string{"Group", "Command", "Description"}, rows)
	},
}

func init() {
	rootCmd.AddCommand(helpAllCmd)
}
