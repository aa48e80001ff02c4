package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/logitrust/internal/application/handlers"
)

func newPlacesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "places",
		Short: "Browse and register logistics sites",
	}

	cmd.AddCommand(
		newPlacesListCmd(),
		newPlacesSearchCmd(),
		newPlacesShowCmd(),
		newPlacesAddCmd(),
		newPlacesImportCmd(),
	)

	return cmd
}

func newPlacesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all places with their scores",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlacesList(cmd, "")
		},
	}
}

func newPlacesSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <text>",
		Short: "Find places by name or address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlacesList(cmd, args[0])
		},
	}
}

func runPlacesList(cmd *cobra.Command, query string) error {
	return withDeps(cmd.Context(), func(d *Deps) error {
		places := d.Places.List(query)
		if globalJSON {
			return writeJSON(cmd.OutOrStdout(), places)
		}
		if len(places) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No places found.")
			return nil
		}
		return formatPlaceScores(cmd.OutOrStdout(), places)
	})
}

func newPlacesShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <place-id>",
		Short: "Show a place with its fields, history and reviews",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd.Context(), func(d *Deps) error {
				detail, err := d.Places.Show(args[0])
				if err != nil {
					return err
				}
				if globalJSON {
					return writeJSON(cmd.OutOrStdout(), detail)
				}
				return formatPlaceDetail(cmd.OutOrStdout(), detail)
			})
		},
	}
}

func newPlacesAddCmd() *cobra.Command {
	var (
		in       handlers.AddPlaceInput
		lat, lng float64
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a new place",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("lat") {
				in.Lat = &lat
			}
			if cmd.Flags().Changed("lng") {
				in.Lng = &lng
			}
			ctx := cmd.Context()
			return withDeps(ctx, func(d *Deps) error {
				if _, err := d.Session.RequireUser(ctx); err != nil {
					return err
				}
				place, err := d.Places.Add(ctx, in)
				if err != nil {
					return err
				}
				if globalJSON {
					return writeJSON(cmd.OutOrStdout(), place)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s)\n", place.Name, place.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&in.ID, "id", "", "Place ID (default: generated)")
	cmd.Flags().StringVarP(&in.Name, "name", "n", "", "Place name (required)")
	cmd.Flags().StringVarP(&in.Address, "address", "a", "", "Street address")
	cmd.Flags().StringVarP(&in.Type, "type", "t", "WAREHOUSE", "Place type (WAREHOUSE, FACTORY, STORE, PORT)")
	cmd.Flags().Float64Var(&lat, "lat", 0, "Latitude")
	cmd.Flags().Float64Var(&lng, "lng", 0, "Longitude")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

type importFlags struct {
	format string
	dryRun bool
}

func newPlacesImportCmd() *cobra.Command {
	var flags importFlags

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import places from JSON or CSV",
		Long:  "Imports places from a structured file. CSV files need name and address columns.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlacesImport(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "auto", "File format (json, csv, auto)")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Validate without saving")

	return cmd
}

func runPlacesImport(cmd *cobra.Command, filePath string, flags importFlags) error {
	return withDeps(cmd.Context(), func(d *Deps) error {
		result, err := d.Import.Handle(cmd.Context(), filePath, handlers.ImportOptions{
			Format: flags.format,
			DryRun: flags.dryRun,
		})
		if err != nil {
			return fmt.Errorf("importing file: %w", err)
		}
		if globalJSON {
			return writeJSON(cmd.OutOrStdout(), result)
		}

		out := cmd.OutOrStdout()
		if len(result.Errors) > 0 {
			fmt.Fprintf(out, "Skipped rows (%d):\n", len(result.Errors))
			for _, e := range result.Errors {
				fmt.Fprintf(out, "  line %d %q: %s\n", e.Line, e.Name, e.Message)
			}
			fmt.Fprintln(out)
		}
		if flags.dryRun {
			fmt.Fprintf(out, "Dry run: %d places would be imported\n", result.Imported)
		} else {
			fmt.Fprintf(out, "Imported: %d places\n", result.Imported)
		}
		return nil
	})
}
