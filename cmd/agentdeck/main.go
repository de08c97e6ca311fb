// Package main provides the agentdeck binary: a terminal presentation of
// "From Bricklayer to Architect".
package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

const (
	Version = "0.3.0"
	appName = "agentdeck"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// options collects the root command's flags.
type options struct {
	configPath    string
	logFile       string
	inline        bool
	noMouse       bool
	noTransitions bool
	rehearse      bool
}

func rootCmd(stdout, stderr io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Present the agentic coding talk in the terminal",
		Long: `agentdeck presents "From Bricklayer to Architect" as a slide deck.

Navigate with → or space to go forward and ← to go back. Some slides
reveal their content in steps before the deck moves on. Press ? for
all key bindings.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, stdout, stderr)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "Config file path (YAML)")
	f.StringVar(&opts.logFile, "log-file", "", "Write logs to this file")
	f.BoolVar(&opts.inline, "inline", false, "Start in the normal screen instead of fullscreen")
	f.BoolVar(&opts.noMouse, "no-mouse", false, "Disable clicking the on-screen controls")
	f.BoolVar(&opts.noTransitions, "no-transitions", false, "Switch slides without animation")
	f.BoolVar(&opts.rehearse, "rehearse", false, "Print time spent per slide on exit")

	cmd.AddCommand(outlineCmd(stdout), configCmd(stdout, stderr), versionCmd(stdout))
	return cmd
}

func versionCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(stdout, "%s version %s\n", appName, Version)
		},
	}
}
