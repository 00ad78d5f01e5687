// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// ctrscript runs container scripts, as understood by package containerscript,
// and prints the output of every operation.
//
//	$ printf 'vector push-back a b\nvector at 5\n' | ctrscript
//	> vector push-back a b
//	[a b] len=2 cap=2
//	> vector at 5
//	error: vector: index 5 out of range [0,2)
//
// Failed operations are part of the output and do not change the exit
// status, which is non-zero only for I/O and configuration errors.
package main

import (
	"context"
	"io"
	"os"

	"github.com/cockroachdb/containers/pkg/util/container/containerscript"
	"github.com/cockroachdb/containers/pkg/util/log"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/logtags"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

const (
	configFlag          = "config"
	echoFlag            = "echo"
	verbosityFlag       = "verbosity"
	initialCapacityFlag = "initial-capacity"
	redactableLogsFlag  = "redactable-logs"
)

// stdinIsTerminal reports whether the standard input is interactive. Lines
// are echoed by default only when it is not, since a terminal already shows
// them.
var stdinIsTerminal = func() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

func newRootCmd() *cobra.Command {
	var fromFlags config
	var configPath string
	cmd := &cobra.Command{
		Use:   "ctrscript [flags] [file]",
		Short: "run a container script",
		Long: `Run a container script read from file, or from the standard input if no
file is given. Every line names a container kind (vector, list, queue or
stack), an operation and its arguments. Blank lines and lines starting with
'#' are ignored.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := resolveConfig(cmd.Flags(), fromFlags, configPath)
			if err != nil {
				return err
			}
			return runScript(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), args, c)
		},
	}
	f := cmd.Flags()
	f.StringVar(&configPath, configFlag, "", "YAML file with default settings; flags override it")
	f.BoolVar(&fromFlags.Echo, echoFlag, !stdinIsTerminal(), "print every script line before its output")
	f.Int32VarP(&fromFlags.Verbosity, verbosityFlag, "v", 0, "log verbosity; 1 logs failed operations, 2 every operation")
	f.IntVar(&fromFlags.InitialCapacity, initialCapacityFlag, 0, "capacity of the vector and queue when a script does not give one")
	f.BoolVar(&fromFlags.RedactableLogs, redactableLogsFlag, false, "keep redaction markers around script values in the logs")
	return cmd
}

func runScript(ctx context.Context, stdin io.Reader, out io.Writer, args []string, c config) error {
	defer log.SetVerbosity(c.Verbosity)()
	defer log.SetRedactableLogs(c.RedactableLogs)()

	in, source := stdin, "-"
	if len(args) == 1 {
		source = args[0]
		f, err := os.Open(source)
		if err != nil {
			return errors.Wrap(err, "opening script")
		}
		defer f.Close()
		in = f
	}
	ctx = logtags.AddTag(ctx, "script", source)

	s, err := containerscript.NewSession(containerscript.WithInitialCapacity(c.InitialCapacity))
	if err != nil {
		return err
	}
	log.VEventf(ctx, 1, "running with initial capacity %d", c.InitialCapacity)
	return s.Run(ctx, in, out, c.Echo)
}

func main() {
	ctx := context.Background()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		log.Fatalf(ctx, "%v", err)
	}
}
