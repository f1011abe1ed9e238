package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/proplay/internal/cli"
	"codeberg.org/snonux/proplay/internal/processor"
)

func main() {
	flags := cli.NewFlags()
	rootCmd := cli.CreateRootCommand(flags)

	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd.Context(), flags)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func runCommand(ctx context.Context, flags *cli.Flags) error {
	proc := processor.NewProcessor(flags)

	// Handle --list-models flag
	if flags.ListModels {
		return proc.ListModels(ctx, os.Stdout)
	}

	if err := proc.Setup(ctx); err != nil {
		return err
	}
	defer proc.Close()

	if flags.Console {
		err := proc.RunConsoleMode(ctx, os.Stdin, os.Stdout)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}

	// No mode selected - launch GUI by default
	return proc.RunGUIMode()
}
