package app

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/bitshepherds/yamlschema/internal/config"
	"github.com/bitshepherds/yamlschema/internal/report"
)

func NewValidateCmd(ll *slog.LevelVar, stderr io.Writer) *cobra.Command {
	var definitionPath string
	var inputPath string
	var watchMode bool
	var outputVal formatValue

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a JSON document against a schema definition",
		Args:  cobra.NoArgs,
		Example: `
  ysv validate --definition person.yml --input person.json
  ysv validate -D person.yml -i person.json -o json
  ysv validate -D person.yml -i person.json --watch`,
	}

	cmd.Flags().StringVarP(&definitionPath, "definition", "D", "", "File with the schema definition")
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "File with the data to verify")
	cmd.Flags().VarP(&outputVal, "output", "o", "Output format (text, json)")
	cmd.Flags().BoolVarP(&watchMode, "watch", "w", false, "Watch both files and rerun on change")

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
		if inputPath == "" {
			return &MissingFlagError{Flag: "input"}
		}
		if err := checkFilePath(definitionPath); err != nil {
			return err
		}
		if err := checkFilePath(inputPath); err != nil {
			return err
		}

		format := string(outputVal)
		if format == "" {
			format = cfg.Output
		}
		noColour, _ := cmd.Flags().GetBool("nocolour")
		useColour := !noColour && !cfg.NoColour

		logger, logCloser, err := setupLogger(stderr, ll, cfg.LogFile)
		if err != nil {
			logger.Warn("logging to file disabled", "error", err)
		}
		if logCloser != nil {
			defer logCloser.Close()
		}

		mgr := NewManager(logger)
		rep := report.New(format, useColour)

		if watchMode {
			return mgr.WatchValidation(cmd.Context(), definitionPath, inputPath, rep, cmd.OutOrStdout(), nil)
		}
		return mgr.ValidateFile(cmd.Context(), definitionPath, inputPath, rep, cmd.OutOrStdout())
	}

	return cmd
}
