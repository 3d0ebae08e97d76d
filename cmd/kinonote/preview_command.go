package main

import (
	"fmt"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"
)

func newPreviewCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "preview <id>",
		Short: "Render the note for a catalog record without writing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid movie id %q", args[0])
			}

			creator, err := ctx.newCreator()
			if err != nil {
				return err
			}

			runCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			result, err := creator.Preview(runCtx, id)
			if err != nil {
				return err
			}

			// The note goes to stdout so it can be piped; the
			// prospective path stays on stderr.
			fmt.Fprintln(cmd.ErrOrStderr(), result.Path)
			fmt.Fprintln(cmd.OutOrStdout(), result.Note)
			return nil
		},
	}
}
