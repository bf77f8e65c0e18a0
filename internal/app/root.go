package app

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// Version is the current version of ysv, set at build time.
var Version = "dev"

var LongDescription = `
ysv checks that a JSON document conforms to a schema written in a compact,
YAML-based definition language. The definition is compiled once into a
validator tree; the document is then matched against it, and the first
violation is reported together with the breadcrumb path of the failing
value (e.g. ROOT -> vehicles -> year).
`

// NewRootCmd creates the root command and wires up dependencies.
func NewRootCmd(ll *slog.LevelVar, stderr io.Writer) *cobra.Command {
	var debug bool
	var noColour bool

	rootCmd := &cobra.Command{
		Use:           "ysv",
		Short:         "Validate JSON documents against YAML schema definitions",
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Long:          LongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				ll.Set(slog.LevelDebug)
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging")

	rootCmd.PersistentFlags().BoolVarP(&noColour, "nocolour", "c", false, "Disable colour in output")
	// Support alternate spellings
	rootCmd.PersistentFlags().BoolVar(&noColour, "nocolor", false, "")
	rootCmd.PersistentFlags().BoolVar(&noColour, "noColor", false, "")
	rootCmd.PersistentFlags().BoolVar(&noColour, "noColour", false, "")
	_ = rootCmd.PersistentFlags().MarkHidden("nocolor")
	_ = rootCmd.PersistentFlags().MarkHidden("noColor")
	_ = rootCmd.PersistentFlags().MarkHidden("noColour")

	// Subcommands
	rootCmd.AddCommand(NewValidateCmd(ll, stderr))
	rootCmd.AddCommand(NewRenderCmd(ll, stderr))

	return rootCmd
}
