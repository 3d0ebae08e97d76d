package main

import (
	"fmt"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"kinonote/internal/workflow"
)

func newCreateCommand(ctx *commandContext) *cobra.Command {
	var skipImages bool

	cmd := &cobra.Command{
		Use:   "create <id>",
		Short: "Create a note for the catalog record with the given ID",
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
			bundle, err := ctx.messages()
			if err != nil {
				return err
			}

			runCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			result, err := creator.Create(runCtx, id, workflow.CreateOptions{SkipImages: skipImages})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, bundle.LookupParams("note.created", map[string]string{"path": result.Path}))
			if len(result.Attachments) > 0 {
				fmt.Fprintln(out, bundle.LookupParams("note.attachments", map[string]string{
					"count": strconv.Itoa(len(result.Attachments)),
				}))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&skipImages, "skip-images", false, "Keep remote image links instead of downloading artwork")
	return cmd
}
