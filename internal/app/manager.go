package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/bitshepherds/yamlschema/internal/document"
	"github.com/bitshepherds/yamlschema/internal/report"
	"github.com/bitshepherds/yamlschema/internal/schema"
	"github.com/bitshepherds/yamlschema/internal/validate"
	"github.com/bitshepherds/yamlschema/internal/watch"
)

// Manager drives validation runs for the CLI commands.
type Manager struct {
	logger *slog.Logger
	cache  *schema.Cache
}

func NewManager(logger *slog.Logger) *Manager {
	return &Manager{
		logger: logger,
		cache:  schema.NewCache(),
	}
}

// ValidateFile compiles the definition, decodes the input document,
// validates it and writes the outcome through the reporter. A conforming
// document returns nil; a nonconforming one returns ValidationFailedError
// after the outcome has been written.
func (m *Manager) ValidateFile(_ context.Context, definitionPath, inputPath string,
	rep report.Reporter, w io.Writer,
) error {
	start := time.Now()

	definition, err := os.ReadFile(definitionPath)
	if err != nil {
		return fmt.Errorf("reading definition: %w", err)
	}
	node, err := m.cache.Compile(definition)
	if err != nil {
		return fmt.Errorf("compiling %s: %w", definitionPath, err)
	}

	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	value, err := document.FromJSON(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", inputPath, err)
	}

	vErr := validate.Validate(node, value)
	outcome := report.NewOutcome(definitionPath, inputPath, start, time.Now(), vErr)
	if err := rep.Write(w, outcome); err != nil {
		return err
	}

	if vErr != nil {
		m.logger.Debug("validation failed", "input", inputPath, "error", vErr)
		return &ValidationFailedError{}
	}
	m.logger.Debug("validation succeeded", "input", inputPath)
	return nil
}

// WatchValidation runs an initial validation and then re-runs on every
// change to the definition or the input file, until the context is
// cancelled. The optional readyChan is closed once the watcher is armed.
func (m *Manager) WatchValidation(ctx context.Context, definitionPath, inputPath string,
	rep report.Reporter, w io.Writer, readyChan chan<- struct{},
) error {
	run := func() {
		err := m.ValidateFile(ctx, definitionPath, inputPath, rep, w)
		var failed *ValidationFailedError
		if err != nil && !errors.As(err, &failed) {
			m.logger.Error("validation run failed", "error", err)
		}
	}
	run()

	watcher := watch.New(m.logger, definitionPath, inputPath)
	if readyChan != nil {
		go func() {
			<-watcher.Ready
			close(readyChan)
		}()
	}
	return watcher.Watch(ctx, func(_ watch.Event) {
		run()
	})
}

// RenderDefinition compiles a definition and renders it back in the
// canonical, non-abbreviated form.
func (m *Manager) RenderDefinition(definitionPath string) ([]byte, error) {
	definition, err := os.ReadFile(definitionPath)
	if err != nil {
		return nil, fmt.Errorf("reading definition: %w", err)
	}
	node, err := m.cache.Compile(definition)
	if err != nil {
		return nil, fmt.Errorf("compiling %s: %w", definitionPath, err)
	}
	return schema.Canonical(node)
}
