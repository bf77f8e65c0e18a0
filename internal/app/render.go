package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/bitshepherds/yamlschema/internal/config"
)

// NewRenderCmd prints a schema definition in its canonical form: every
// abbreviated scalar expanded to a full +type mapping. Useful to see what
// a definition actually compiles to.
func NewRenderCmd(ll *slog.LevelVar, stderr io.Writer) *cobra.Command {
	var definitionPath string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a schema definition in canonical form",
		Args:  cobra.NoArgs,
		Example: `
  ysv render --definition person.yml`,
	}

	cmd.Flags().StringVarP(&definitionPath, "definition", "D", "", "File with the schema definition")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load(".")
		if err != nil {
			return err
		}

		if definitionPath == "" {
			definitionPath = cfg.Definition
		}
		if definitionPath == "" {
			return &MissingFlagError{Flag: "definition"}
		}
		if err := checkFilePath(definitionPath); err != nil {
			return err
		}

		logger, logCloser, err := setupLogger(stderr, ll, cfg.LogFile)
		if err != nil {
			logger.Warn("logging to file disabled", "error", err)
		}
		if logCloser != nil {
			defer logCloser.Close()
		}

		mgr := NewManager(logger)
		rendered, err := mgr.RenderDefinition(definitionPath)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), string(rendered))
		return nil
	}

	return cmd
}
