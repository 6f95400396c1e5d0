// Package cli provides the fileops command-line interface.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/fileops"
	"github.com/jmgilman/go/fs/billy"
)

// Exit codes
const (
	ExitSuccess  = 0
	ExitFailure  = 1
	ExitUsage    = 2
	ExitNotFound = 3
	ExitBusy     = 4
)

// app carries the state shared by all subcommands.
type app struct {
	settings Settings
	ops      *fileops.FileOps
}

// NewRootCmd creates the root command for fileops.
func NewRootCmd(version string) *cobra.Command {
	root, _ := newRootCmd(version)
	return root
}

func newRootCmd(version string) (*cobra.Command, *app) {
	a := &app{}
	root := &cobra.Command{
		Use:   "fileops",
		Short: "Validated file operations over a directory",
		Long: `fileops runs file operations against a root directory and reports
failures with stable error codes.

Settings come from flags, FILEOPS_* environment variables and an optional
.fileops.yaml file, in that order of precedence.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "Configuration file path (default: ./.fileops.yaml)")
	flags.String("root", ".", "Directory all paths are resolved against")
	flags.String("log-level", "error", "Log level: debug, info, warn or error")
	flags.Bool("json", false, "Print results and errors as JSON")
	flags.Bool("block-on-open-handle", true, "Refuse to delete, move or retime files with open handles")

	root.AddCommand(
		a.newExistsCmd(),
		a.newCreateCmd(),
		a.newCopyCmd(),
		a.newMoveCmd(),
		a.newRemoveCmd(),
		a.newStatCmd(),
		a.newTouchCmd(),
		a.newCatCmd(),
		a.newWriteCmd(),
	)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.Wrap(err, errors.CodeInvalidArgument, "invalid flag")
	})
	return root, a
}

func (a *app) setup(cmd *cobra.Command) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	a.settings = settings

	level, err := fileops.ParseLogLevel(settings.LogLevel)
	if err != nil {
		return errors.Wrap(err, errors.CodeInvalidArgument, "invalid log level")
	}
	logger := fileops.NewLogger(fileops.LogConfig{
		Level:  level,
		JSON:   settings.JSON,
		Output: cmd.ErrOrStderr(),
	})

	host, err := billy.NewLocal(settings.Root, billy.WithBlockOnOpenHandle(settings.BlockOnOpenHandle))
	if err != nil {
		return errors.WithContext(
			errors.Wrap(err, errors.CodeDirectoryNotFound, "root is not an existing directory"),
			"root", settings.Root,
		)
	}
	a.ops, err = fileops.New(host, fileops.WithLogger(logger))
	if err != nil {
		return err
	}
	logger.Info(cmd.Context(), "file operations ready",
		"root", host.Root(),
		"block_on_open_handle", settings.BlockOnOpenHandle,
	)
	return nil
}

// print writes v as JSON when --json is set, and text otherwise.
func (a *app) print(w io.Writer, v any, text string) error {
	var err error
	if a.settings.JSON {
		err = json.NewEncoder(w).Encode(v)
	} else {
		_, err = fmt.Fprintln(w, text)
	}
	if err != nil {
		return errors.Wrap(err, errors.CodeIO, "failed to write output")
	}
	return nil
}

// Run executes the CLI with args and returns the process exit code.
func Run(version string, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root, a := newRootCmd(version)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	cmd, err := root.ExecuteC()
	if err == nil {
		return ExitSuccess
	}
	err = usageError(err)

	var asJSON bool
	if cmd != nil {
		asJSON, _ = cmd.Flags().GetBool("json")
	}
	if asJSON || a.settings.JSON {
		_ = json.NewEncoder(stderr).Encode(errors.ToJSON(err))
	} else {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return exitCode(err)
}

// usageError classifies errors cobra raises while resolving the command
// line, such as an unknown command, as invalid arguments. Every error the
// subcommands return is already coded.
func usageError(err error) error {
	var pe errors.PlatformError
	if errors.As(err, &pe) {
		return err
	}
	return errors.Wrap(err, errors.CodeInvalidArgument, "invalid command line")
}

func exitCode(err error) int {
	switch {
	case errors.GetCode(err) == errors.CodeUnknown:
		return ExitFailure
	case errors.IsKind(err, errors.CodeInvalidArgument):
		return ExitUsage
	case errors.IsKind(err, errors.CodeFileNotFound), errors.IsKind(err, errors.CodeDirectoryNotFound):
		return ExitNotFound
	case errors.IsKind(err, errors.CodeBusy):
		return ExitBusy
	default:
		return ExitFailure
	}
}
