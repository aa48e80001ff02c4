package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <place-id> [field-key]",
		Short: "Show the verification status of a place's fields",
		Long:  "Without a field key, lists every field of the place. Statuses are CONFIRMED, PENDING or DISPUTED.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd.Context(), func(d *Deps) error {
				out := cmd.OutOrStdout()
				if len(args) == 2 {
					status, err := d.Places.Status(args[0], args[1])
					if err != nil {
						return err
					}
					if globalJSON {
						return writeJSON(out, status)
					}
					fmt.Fprintln(out, status.Status)
					return nil
				}

				fields, err := d.Places.Fields(args[0])
				if err != nil {
					return err
				}
				if globalJSON {
					return writeJSON(out, fields)
				}
				return formatFields(out, fields)
			})
		},
	}
}

func newScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score <place-id>",
		Short: "Show the risk grade and trust score of a place",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd.Context(), func(d *Deps) error {
				result, err := d.Places.Score(args[0])
				if err != nil {
					return err
				}
				if globalJSON {
					return writeJSON(cmd.OutOrStdout(), result)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", result.Place.Name, result.Place.ID)
				formatScore(cmd.OutOrStdout(), result.Score)
				return nil
			})
		},
	}
}

func newWatchlistCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watchlist",
		Short: "List places graded D or with low trust",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd.Context(), func(d *Deps) error {
				places := d.Places.WatchList()
				if globalJSON {
					return writeJSON(cmd.OutOrStdout(), places)
				}
				if len(places) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No places need attention.")
					return nil
				}
				return formatPlaceScores(cmd.OutOrStdout(), places)
			})
		},
	}
}
