package main

import (
	"fmt"
	"io"
	"log/slog"

	"agentdeck/internal/config"
	"agentdeck/internal/slides"
	"agentdeck/internal/ui/textutil"

	"github.com/spf13/cobra"
)

func outlineCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "outline",
		Short: "List the slides in order",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			writeOutline(stdout, slides.Talk())
		},
	}
}

// outlineTitleWidth is the title column of the outline, in terminal columns.
const outlineTitleWidth = 30

func writeOutline(w io.Writer, talk []slides.Slide) {
	for i, s := range talk {
		line := fmt.Sprintf("%2d. %s %s", i+1, textutil.PadRight(s.Title, outlineTitleWidth), s.Subtitle)
		if s.Stepped() {
			line += fmt.Sprintf(" (%d steps)", s.Steps)
		}
		fmt.Fprintln(w, line)
	}
}

func configCmd(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create configuration",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write the default user config if none exists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := config.NewLoader(slog.New(slog.NewTextHandler(stderr, nil)))
			if err := loader.EnsureUserConfig(); err != nil {
				return fmt.Errorf("create user config: %w", err)
			}
			fmt.Fprintln(stdout, "user config ready")
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewLoader(warnLogger(stderr)).Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			out, err := cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = stdout.Write(out)
			return err
		},
	})
	return cmd
}

// warnLogger reports config problems on the terminal before the deck takes it over.
func warnLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelWarn}))
}
