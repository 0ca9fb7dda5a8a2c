package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/kimneyapti/notifier/internal/adapters/http/dto"
	"github.com/kimneyapti/notifier/internal/app"
	"github.com/kimneyapti/notifier/internal/ports"
)

const (
	replayCreated = "created"
	replayUpdated = "updated"
)

func newReplayCmd(c *cli) *cobra.Command {
	var document string

	cmd := &cobra.Command{
		Use:       "replay <created|updated> <event.json>",
		Short:     "Run a stored change event through the assignment pipeline",
		Long:      `Decodes a document change event body and processes it exactly as the service would, including sending.`,
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{replayCreated, replayUpdated},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, path := args[0], args[1]
			if kind != replayCreated && kind != replayUpdated {
				return fmt.Errorf("unknown event kind %q: want %s or %s", kind, replayCreated, replayUpdated)
			}

			raw, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading event: %w", err)
			}
			var data dto.DocumentEventData
			if err := json.Unmarshal(raw, &data); err != nil {
				return fmt.Errorf("decoding event %s: %w", path, err)
			}

			rt, err := c.runtime(cmd)
			if err != nil {
				return err
			}

			logger := rt.logger.With("ce_id", "replay-"+uuid.NewString())
			dispatcher := app.NewDispatcher(rt.tokens, rt.sender, nil, logger)
			svc := app.NewAssignmentService(app.NewDirectory(rt.names, rt.locale, logger), dispatcher, rt.locale, nil, logger)

			var outcome *ports.Outcome
			switch kind {
			case replayCreated:
				ev, err := data.ToCreatedEvent(document)
				if err != nil {
					return err
				}
				outcome, err = svc.HandleItemCreated(cmd.Context(), ev)
				if err != nil {
					return err
				}
			case replayUpdated:
				ev, err := data.ToUpdatedEvent(document)
				if err != nil {
					return err
				}
				outcome, err = svc.HandleItemUpdated(cmd.Context(), ev)
				if err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			if !outcome.Notified {
				fmt.Fprintf(out, "skipped: %s\n", outcome.Reason)
				return nil
			}
			fmt.Fprintf(out, "notified %s\n", outcome.Assignment.NewAssignee)
			printResult(out, outcome.Result)
			return nil
		},
	}

	cmd.Flags().StringVar(&document, "document", "", "document path (workspaces/{w}/items/{i}) when the event body has no name")
	return cmd
}
