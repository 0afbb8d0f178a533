package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"go.creack.net/yai/config"
)

// Version is set at build time.
var Version = "0.1.0"

// errReported is returned once diagnostics have already been printed.
var errReported = errors.New("errors reported")

type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	logger *log.Logger

	cfgFile string
	verbose bool
	cfg     *config.Config
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		logger: log.New(stderr, "yai: ", 0),
	}

	cmd := &cobra.Command{
		Use:           "yai",
		Short:         "Parser front end for the yai language",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return a.loadConfig()
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: $"+config.EnvVar+")")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log timings and config source")

	cmd.AddCommand(a.newParseCmd(), a.newTokensCmd(), a.newVersionCmd())
	return cmd
}

func (a *app) loadConfig() error {
	var (
		cfg    *config.Config
		source string
		err    error
	)
	if a.cfgFile != "" {
		cfg, err = config.Load(a.cfgFile)
		source = a.cfgFile
	} else {
		cfg, source, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}
	if source == "" {
		source = "defaults"
	}
	a.logf("config: %s", source)
	a.cfg = cfg
	return nil
}

// logf logs only in verbose mode.
func (a *app) logf(format string, args ...any) {
	if a.verbose {
		a.logger.Printf(format, args...)
	}
}

// readSource reads a file, or stdin for "-".
func (a *app) readSource(path string) ([]byte, error) {
	if path == "-" {
		buf, err := io.ReadAll(a.stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return buf, nil
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}
	return buf, nil
}

func (a *app) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(*cobra.Command, []string) {
			fmt.Fprintf(a.stdout, "yai v%s\n", Version)
			fmt.Fprintf(a.stdout, "  Go Version: %s\n", runtime.Version())
			fmt.Fprintf(a.stdout, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
