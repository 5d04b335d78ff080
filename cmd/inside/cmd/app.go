package cmd

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	mdwerror "github.com/dipakw/inside/foundation/core/error"
	mdwlog "github.com/dipakw/inside/foundation/core/log"
	"github.com/dipakw/inside/foundation/lang"
	"github.com/dipakw/inside/internal/journal"
	"github.com/dipakw/inside/internal/render"
	"github.com/dipakw/inside/pkg/core/config"
	"github.com/dipakw/inside/pkg/core/logging"
)

// stdinName names source read from standard input
const stdinName = "<stdin>"

// app holds state shared by all commands of one invocation
type app struct {
	cfgFile string
	verbose bool
	noColor bool

	settings   lang.Settings
	configPath string
	requestID  string
	logger     *mdwlog.Logger
	engine     *lang.Engine
	renderer   *render.Renderer
}

func (a *app) init(cmd *cobra.Command) error {
	settings, cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	a.settings = settings
	if cfg != nil {
		a.configPath = cfg.FilePath()
	}

	a.requestID = uuid.NewString()
	a.logger = logging.FromSettings("inside", settings, a.verbose, cmd.ErrOrStderr()).
		WithRequestID(a.requestID)
	mdwlog.SetDefault(a.logger)
	a.engine = lang.NewEngine(settings.EngineOptions(a.logger))
	a.renderer = render.New(!a.noColor && os.Getenv("NO_COLOR") == "")

	a.logger.Debug("command started", mdwlog.Fields{
		"command": cmd.CommandPath(),
		"config":  a.configPath,
	})
	return nil
}

func (a *app) context(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return lang.WithRequestID(ctx, a.requestID)
}

// openJournal opens the journal at path, falling back to the configured
// path and then the default location
func (a *app) openJournal(path string) (*journal.SQLiteStore, error) {
	if path == "" {
		path = a.settings.JournalPath
	}
	return journal.Open(journal.Config{Path: path, Logger: a.logger})
}

// readSource reads a file, or standard input when arg is "-"
func readSource(cmd *cobra.Command, arg string) (name, code string, err error) {
	if arg == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return stdinName, "", mdwerror.Wrap(err, "failed to read standard input").
				WithCode(mdwerror.CodeInvalidInput).
				WithOperation("cmd.readSource")
		}
		return stdinName, string(data), nil
	}

	data, err := os.ReadFile(arg)
	if err != nil {
		code := mdwerror.CodeInvalidInput
		if errors.Is(err, os.ErrNotExist) {
			code = mdwerror.CodeNotFound
		}
		return arg, "", mdwerror.Wrap(err, "failed to read source").
			WithCode(code).
			WithOperation("cmd.readSource").
			WithDetail("path", arg)
	}
	return arg, string(data), nil
}
