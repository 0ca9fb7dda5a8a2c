package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTokensCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "Manage a user's device tokens",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list <user>",
		Short: "List the device tokens registered for a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := c.runtime(cmd)
			if err != nil {
				return err
			}
			tokens, err := rt.tokens.ListTokens(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, t := range tokens {
				fmt.Fprintln(out, t)
			}
			fmt.Fprintf(out, "%d token(s)\n", len(tokens))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <user> <token>",
		Short: "Register a device token for a user",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := c.runtime(cmd)
			if err != nil {
				return err
			}
			if err := rt.tokens.SaveToken(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added token for %s\n", args[0])
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <user> <token>",
		Short: "Remove a device token from a user",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := c.runtime(cmd)
			if err != nil {
				return err
			}
			if err := rt.tokens.DeleteToken(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted token for %s\n", args[0])
			return nil
		},
	})

	return cmd
}
