package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/logitrust/internal/application/handlers"
	"github.com/ersonp/logitrust/internal/domain/entities"
)

func newRequestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "request",
		Aliases: []string{"requests"},
		Short:   "Submit and review field edit requests",
	}

	cmd.AddCommand(
		newRequestSubmitCmd(),
		newRequestListCmd(),
		newRequestQueueCmd(),
		newRequestDecideCmd(),
	)

	return cmd
}

func newRequestSubmitCmd() *cobra.Command {
	var in handlers.SubmitRequest

	cmd := &cobra.Command{
		Use:   "submit <place-id> <field-key> <value>",
		Short: "Propose a new value for a place field",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			in.PlaceID, in.FieldKey, in.RequestedValue = args[0], args[1], args[2]
			ctx := cmd.Context()
			return withSession(ctx, func(d *Deps, user *entities.User) error {
				req, err := d.Requests.Submit(ctx, user, in)
				if err != nil {
					return err
				}
				if globalJSON {
					return writeJSON(cmd.OutOrStdout(), req)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Submitted %s: %s -> %s (PENDING)\n", req.ID, req.FieldLabel, req.RequestedValue)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&in.FieldLabel, "label", "l", "", "Field label (default: from the field)")
	cmd.Flags().StringVarP(&in.Note, "note", "m", "", "Note for the reviewer")
	cmd.Flags().StringSliceVarP(&in.EvidenceFiles, "evidence", "e", nil, "Evidence file references")

	return cmd
}

func newRequestListCmd() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List edit requests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd.Context(), func(d *Deps) error {
				requests, err := d.Requests.List(status)
				if err != nil {
					return err
				}
				if globalJSON {
					return writeJSON(cmd.OutOrStdout(), requests)
				}
				if len(requests) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No requests found.")
					return nil
				}
				return formatRequests(cmd.OutOrStdout(), requests)
			})
		},
	}

	cmd.Flags().StringVarP(&status, "status", "s", "", "Filter by status (PENDING, APPROVED, REJECTED, HOLD)")

	return cmd
}

func newRequestQueueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "queue",
		Short: "Show pending requests with their field status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd.Context(), func(d *Deps) error {
				queue := d.Requests.Queue()
				if globalJSON {
					return writeJSON(cmd.OutOrStdout(), queue)
				}
				if len(queue) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "Review queue is empty.")
					return nil
				}
				return formatQueue(cmd.OutOrStdout(), queue)
			})
		},
	}
}

func newRequestDecideCmd() *cobra.Command {
	var note string

	cmd := &cobra.Command{
		Use:       "decide <request-id> <approved|rejected|hold>",
		Short:     "Approve, reject or hold a pending request (ops only)",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"approved", "rejected", "hold"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withSession(ctx, func(d *Deps, user *entities.User) error {
				req, err := d.Requests.Decide(ctx, user, args[0], handlers.DecisionRequest{
					Outcome: args[1],
					Note:    note,
				})
				if err != nil {
					return err
				}
				if globalJSON {
					return writeJSON(cmd.OutOrStdout(), req)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s. %s was notified.\n", req.ID, req.Status, req.RequestedByName)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&note, "note", "m", "", "Reviewer note (required)")

	return cmd
}
