package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kimneyapti/notifier/internal/app"
	"github.com/kimneyapti/notifier/internal/domain/notice"
	"github.com/kimneyapti/notifier/internal/ports"
)

func newSendCmd(c *cli) *cobra.Command {
	var (
		title string
		body  string
		data  []string
	)

	cmd := &cobra.Command{
		Use:   "send <user>",
		Short: "Send a notification to every device of a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := parseData(data)
			if err != nil {
				return err
			}
			rt, err := c.runtime(cmd)
			if err != nil {
				return err
			}

			d := app.NewDispatcher(rt.tokens, rt.sender, nil, rt.logger)
			res := d.NotifyUser(cmd.Context(), args[0], notice.Notice{Title: title, Body: body}, payload)
			printResult(cmd.OutOrStdout(), res)
			return res.Err
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "notification title")
	cmd.Flags().StringVar(&body, "body", "", "notification body")
	cmd.Flags().StringArrayVar(&data, "data", nil, "data entry as key=value (repeatable)")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

// parseData turns key=value pairs into a data payload.
func parseData(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid --data %q: want key=value", p)
		}
		out[k] = v
	}
	return out, nil
}

func printResult(w io.Writer, res ports.DispatchResult) {
	fmt.Fprintf(w, "tokens: %d\nsent: %d\nfailed: %d\npruned: %d\n",
		res.Tokens, res.SuccessCount, len(res.FailedTokens), len(res.PrunedTokens))
	if res.Err != nil {
		fmt.Fprintf(w, "error: %v\n", res.Err)
	}
}
