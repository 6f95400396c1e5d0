package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/fileops"
)

// exactArgs is cobra.ExactArgs reporting a CodeInvalidArgument error.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return errors.Newf(errors.CodeInvalidArgument,
				"%s accepts %d arg(s), received %d", cmd.CommandPath(), n, len(args))
		}
		return nil
	}
}

func (a *app) newExistsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exists <path>",
		Short: "Report whether a regular file exists",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exists := a.ops.Exists(args[0])
			return a.print(cmd.OutOrStdout(), map[string]any{"path": args[0], "exists": exists}, fmt.Sprint(exists))
		},
	}
}

func (a *app) newCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <path>",
		Short: "Create or truncate a file",
		Args:  exactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			h, err := a.ops.Create(args[0])
			if err != nil {
				return err
			}
			return h.Close()
		},
	}
}

func (a *app) newCopyCmd() *cobra.Command {
	var overwrite bool
	cmd := &cobra.Command{
		Use:   "copy <source> <dest>",
		Short: "Copy a file",
		Args:  exactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.ops.Copy(args[0], args[1], overwrite)
		},
	}
	cmd.Flags().BoolVarP(&overwrite, "overwrite", "f", false, "Replace the destination if it exists")
	return cmd
}

func (a *app) newMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "move <source> <dest>",
		Aliases: []string{"mv"},
		Short:   "Move or rename a file",
		Args:    exactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.ops.Move(args[0], args[1])
		},
	}
}

func (a *app) newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <path>",
		Short: "Delete a file",
		Args:  exactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.ops.Delete(args[0])
		},
	}
}

// statResult is the stat output.
type statResult struct {
	Path       string    `json:"path"`
	Creation   time.Time `json:"creation"`
	LastAccess time.Time `json:"last_access"`
	LastWrite  time.Time `json:"last_write"`
}

func (a *app) newStatCmd() *cobra.Command {
	var local bool
	cmd := &cobra.Command{
		Use:   "stat <path>",
		Short: "Print the timestamps of a file",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := statResult{Path: args[0]}
			for _, f := range []struct {
				kind fileops.TimestampKind
				dst  *time.Time
			}{
				{fileops.Creation, &res.Creation},
				{fileops.LastAccess, &res.LastAccess},
				{fileops.LastWrite, &res.LastWrite},
			} {
				t, err := a.ops.GetTime(args[0], f.kind, !local)
				if err != nil && errors.GetCode(err) != errors.CodeNotSupported {
					return err
				}
				*f.dst = t
			}

			var b strings.Builder
			fmt.Fprintf(&b, "path:        %s\n", res.Path)
			fmt.Fprintf(&b, "creation:    %s\n", formatTime(res.Creation))
			fmt.Fprintf(&b, "last access: %s\n", formatTime(res.LastAccess))
			fmt.Fprintf(&b, "last write:  %s", formatTime(res.LastWrite))
			return a.print(cmd.OutOrStdout(), res, b.String())
		},
	}
	cmd.Flags().BoolVar(&local, "local", false, "Print times in the local time zone instead of UTC")
	return cmd
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	return t.Format(time.RFC3339Nano)
}

func (a *app) newTouchCmd() *cobra.Command {
	var (
		at    string
		kinds []string
	)
	cmd := &cobra.Command{
		Use:   "touch <path>",
		Short: "Create a file if needed and set its timestamps",
		Args:  exactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			t := time.Now()
			if at != "" {
				parsed, err := time.Parse(time.RFC3339Nano, at)
				if err != nil {
					return errors.Wrapf(err, errors.CodeInvalidArgument, "invalid time %q", at)
				}
				t = parsed
			}
			selected, err := parseKinds(kinds)
			if err != nil {
				return err
			}

			if !a.ops.Exists(args[0]) {
				h, err := a.ops.OpenWrite(args[0])
				if err != nil {
					return err
				}
				if err := h.Close(); err != nil {
					return err
				}
			}
			for _, kind := range selected {
				if err := a.ops.SetTime(args[0], kind, true, t); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&at, "time", "t", "", "Time to set, RFC 3339 (default: now)")
	cmd.Flags().StringSliceVarP(&kinds, "kind", "k", []string{"access", "write"}, "Timestamps to set: creation, access, write")
	return cmd
}

func parseKinds(names []string) ([]fileops.TimestampKind, error) {
	kinds := make([]fileops.TimestampKind, 0, len(names))
	for _, n := range names {
		switch strings.ToLower(strings.TrimSpace(n)) {
		case "creation", "created":
			kinds = append(kinds, fileops.Creation)
		case "access", "accessed":
			kinds = append(kinds, fileops.LastAccess)
		case "write", "modified":
			kinds = append(kinds, fileops.LastWrite)
		default:
			return nil, errors.WithContext(
				errors.Newf(errors.CodeInvalidArgument, "unknown timestamp kind %q", n),
				"kind", n,
			)
		}
	}
	return kinds, nil
}

func (a *app) newCatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cat <path>",
		Short: "Print the content of a file",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := a.ops.ReadAllBytes(args[0])
			if err != nil {
				return err
			}
			if _, err := cmd.OutOrStdout().Write(data); err != nil {
				return errors.Wrap(err, errors.CodeIO, "failed to write output")
			}
			return nil
		},
	}
}

func (a *app) newWriteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "write <path>",
		Short: "Replace the content of a file with standard input",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return errors.Wrap(err, errors.CodeIO, "failed to read standard input")
			}
			return a.ops.WriteAllBytes(args[0], data)
		},
	}
}
