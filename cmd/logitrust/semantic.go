package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/logitrust/internal/domain/services"
)

func newIndexCmd() *cobra.Command {
	var reset bool

	cmd := &cobra.Command{
		Use:   "index",
		Short: "Embed all places into the Qdrant search index",
		Long:  "Requires an embedder API key (OPENAI_API_KEY) and a running Qdrant instance.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withInternalDeps(ctx, nil, func(d *internalDeps) error {
				if reset {
					if d.index == nil {
						return services.ErrSearchUnavailable
					}
					if err := d.index.DeleteCollection(ctx); err != nil {
						return err
					}
				}
				n, err := d.Search.Index(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Indexed %d places into %s.\n", n, d.Config.Qdrant.Collection)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&reset, "reset", false, "Drop the collection before indexing")

	return cmd
}

func newSearchCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search <question>",
		Short: "Find places by meaning",
		Long:  "Performs semantic search over indexed places. Run 'logitrust index' first.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withDeps(ctx, func(d *Deps) error {
				result, err := d.Search.Handle(ctx, args[0], limit)
				if err != nil {
					return err
				}
				if globalJSON {
					return writeJSON(cmd.OutOrStdout(), result)
				}
				if len(result.Hits) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No places found.")
					return nil
				}
				for i, hit := range result.Hits {
					fmt.Fprintf(cmd.OutOrStdout(), "%d. %s (%s) %.3f\n   %s\n", i+1, hit.Place.Name, hit.Place.ID, hit.Similarity, hit.Place.Address)
				}
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", services.DefaultSearchLimit, "Maximum number of results")

	return cmd
}

func newBriefCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "brief <place-id>",
		Short: "Generate a driver risk briefing for a place",
		Long:  "Asks the LLM for entry cautions, loading position and wait-time risks. Requires an LLM API key.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withDeps(ctx, func(d *Deps) error {
				if d.Brief == nil {
					return errors.New("briefing requires llm.api_key or OPENAI_API_KEY")
				}
				briefing, err := d.Brief.Handle(ctx, args[0])
				if err != nil {
					return err
				}
				if globalJSON {
					return writeJSON(cmd.OutOrStdout(), briefing)
				}
				formatBriefing(cmd.OutOrStdout(), briefing)
				return nil
			})
		},
	}
}
