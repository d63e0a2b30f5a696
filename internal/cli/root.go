package cli

import (
	"io"
	"log/slog"

	"github.com/0xalexb/econfig"
	"github.com/0xalexb/econfig/logging"

	"github.com/spf13/cobra"
)

// ExitUsage is the status for command line errors, kept apart from configuration failures.
const ExitUsage = 2

// exitSignal carries the status of a failed mandatory check out of the command tree.
type exitSignal int

// state is shared by the subcommands of one invocation.
type state struct {
	stdout   io.Writer
	stderr   io.Writer
	exit     func(code int)
	logger   *slog.Logger
	asserter *econfig.Asserter

	envFiles  []string
	logLevel  string
	logFormat string
	exitCode  int
	noColor   bool
}

// NewRootCommand builds the econfig command tree.
// A failed mandatory check writes its diagnostic to stderr and calls exit.
func NewRootCommand(stdout, stderr io.Writer, exit func(code int)) *cobra.Command {
	st := &state{
		stdout: stdout,
		stderr: stderr,
		exit:   exit,
	}

	root := &cobra.Command{
		Use:   "econfig",
		Short: "Query YAML configuration files with mandatory lookups",
		Long: `econfig reads a YAML configuration file and prints settings from it.
A setting that cannot be found ends the command with a one-line diagnostic
naming the file and the path or line, and a non-zero exit status.`,
		Version:           econfig.BuildInfo(),
		SilenceUsage:      true,
		PersistentPreRunE: st.setup,
	}

	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringSliceVar(&st.envFiles, "env-file", nil, "load environment defaults from these .env files")
	flags.StringVar(&st.logLevel, "log-level", "", "log level: debug, info, warn, error (env ECONFIG_LOG_LEVEL)")
	flags.StringVar(&st.logFormat, "log-format", "", "log format: json or text (env ECONFIG_LOG_FORMAT)")
	flags.IntVar(&st.exitCode, "exit-code", 0, "exit status of a failed lookup (env ECONFIG_EXIT_CODE)")
	flags.BoolVar(&st.noColor, "no-color", false, "disable colored output")

	root.AddCommand(
		newCheckCommand(st),
		newGetCommand(st),
		newTryCommand(st),
		newLenCommand(st),
		newElemCommand(st),
		newTreeCommand(st),
	)

	return root
}

// setup merges the environment with the flags and builds the logger and asserter.
func (st *state) setup(cmd *cobra.Command, _ []string) error {
	environment, err := LoadEnvironment(st.envFiles...)
	if err != nil {
		return err
	}

	loggerConfig := environment.Logging
	if cmd.Flags().Changed("log-level") {
		loggerConfig.Level = st.logLevel
	}

	if cmd.Flags().Changed("log-format") {
		loggerConfig.Format = st.logFormat
	}

	if !cmd.Flags().Changed("exit-code") {
		st.exitCode = environment.ExitCode
	}

	st.logger = logging.NewLogger(loggerConfig, st.stderr)

	opts := []econfig.Option{
		econfig.WithOutput(st.stderr),
		econfig.WithExitFunc(st.exit),
		econfig.WithExitCode(st.exitCode),
	}

	// structured failure records only in debug mode, the diagnostic line is the interface otherwise
	if logging.ParseLevel(loggerConfig.Level) <= slog.LevelDebug {
		opts = append(opts, econfig.WithLogger(st.logger))
	}

	st.asserter = econfig.NewAsserter(opts...)

	return nil
}

// Execute runs the command with args and returns the process exit status.
func Execute(args []string, stdout, stderr io.Writer) (code int) {
	defer func() {
		recovered := recover()
		if recovered == nil {
			return
		}

		signal, ok := recovered.(exitSignal)
		if !ok {
			panic(recovered)
		}

		code = int(signal)
	}()

	root := NewRootCommand(stdout, stderr, func(code int) { panic(exitSignal(code)) })
	root.SetArgs(args)

	// cobra has already printed the error
	err := root.Execute()
	if err != nil {
		return ExitUsage
	}

	return 0
}
