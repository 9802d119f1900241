package cmd

import (
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	scierr "github.com/msto63/sciops/foundation/core/error"
	"github.com/msto63/sciops/internal/notebook"
)

var notebookFollow bool

var notebookCmd = &cobra.Command{
	Use:   "notebook",
	Short: "Timestamped lab notebook",
}

var notebookLogCmd = &cobra.Command{
	Use:   "log <text...>",
	Short: "Append a timestamped entry",
	Long: `Appends "- [YYYY-MM-DDTHH:MM:SS] text" to the notebook file.

Example:
  sciops notebook log "titration run 3, endpoint at 12.4 mL"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runNotebookLog,
}

var notebookShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Render the notebook",
	Long: `Renders the notebook as Markdown. With --follow the command keeps
running and prints entries appended by other sciops processes until
interrupted.`,
	Args: cobra.NoArgs,
	RunE: runNotebookShow,
}

var notebookSetPathCmd = &cobra.Command{
	Use:   "set-path <path>",
	Short: "Store a new notebook path in the config file",
	Args:  cobra.ExactArgs(1),
	RunE:  runNotebookSetPath,
}

func init() {
	rootCmd.AddCommand(notebookCmd)
	notebookCmd.AddCommand(notebookLogCmd)
	notebookCmd.AddCommand(notebookShowCmd)
	notebookCmd.AddCommand(notebookSetPathCmd)

	notebookShowCmd.Flags().BoolVarP(&notebookFollow, "follow", "f", false, "keep watching for new entries")
}

func runNotebookLog(cmd *cobra.Command, args []string) error {
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return scierr.InvalidInput("notebook entry is empty")
	}
	entry, err := app.notebook.Append(text)
	if err != nil {
		return err
	}
	if app.printer.Machine() {
		return app.printer.Encode(entry)
	}
	app.printer.Success("Logged to %s", app.notebook.Path())
	return nil
}

func runNotebookShow(cmd *cobra.Command, args []string) error {
	p := app.printer
	content, err := app.notebook.Read()
	switch {
	case scierr.HasCode(err, scierr.CodeNotFound):
		p.Warn("Notebook is empty (file not found).")
		if !notebookFollow {
			return nil
		}
	case err != nil:
		return err
	case p.Machine():
		entries, err := app.notebook.Entries()
		if err != nil {
			return err
		}
		return p.Encode(entries)
	default:
		p.Title("Notebook: " + app.notebook.Path())
		if err := p.Markdown(content, 0); err != nil {
			return err
		}
	}

	if !notebookFollow {
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app.logger.Debug("following notebook", zap.String("path", app.notebook.Path()))
	return app.notebook.Follow(ctx, func(e notebook.Entry) {
		p.Println(e.Line())
	})
}

func runNotebookSetPath(cmd *cobra.Command, args []string) error {
	if err := app.cfg.Set("notebook_path", args[0]); err != nil {
		return err
	}
	if err := app.cfg.Save(app.cfg.File()); err != nil {
		return err
	}
	app.printer.Success("Notebook path set to %s", app.cfg.Notebook.Path)
	return nil
}
