package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/openalexq/openalexq/internal/openalex"
	"github.com/openalexq/openalexq/internal/output"
)

var sourceCmd = &cobra.Command{
	Use:   "source",
	Short: "Source/journal-related commands",
}

var sourceGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Get source (journal/venue) details by ID",
	Long:  `Retrieve a source by identifier. Accepts OpenAlex IDs and ISSNs.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		defer client.Close()

		source, err := client.GetSource(cmd.Context(), args[0], nil)
		if err != nil {
			return handleError(err)
		}
		return output.FormatSourceDetail(os.Stdout, source, outputCfg())
	},
}

var sourceSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search for sources (journals/venues) by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		defer client.Close()

		page, err := client.SearchSources(cmd.Context(), openalex.SearchOptions{
			Query:   args[0],
			Filter:  flagFilter,
			Sort:    flagSort,
			Page:    flagPage,
			PerPage: flagLimit,
			GroupBy: flagGroupBy,
		})
		if err != nil {
			return handleError(err)
		}
		return output.FormatSourcesPage(os.Stdout, page, flagGroupBy, outputCfg())
	},
}

var sourceWorksCmd = &cobra.Command{
	Use:   "works <id>",
	Short: "Get works from a source (journal/venue)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		defer client.Close()

		page, err := client.SourceWorks(cmd.Context(), args[0], relatedWorksOpts())
		if err != nil {
			return handleError(err)
		}
		return output.FormatWorksPage(os.Stdout, page, flagGroupBy, outputCfg())
	},
}

func init() {
	addEntitySearchFlags(sourceSearchCmd)
	addWorkFilterFlags(sourceWorksCmd)
	sourceWorksCmd.Flags().BoolVar(&flagBibTeX, "bibtex", false, "Output as BibTeX")

	sourceCmd.AddCommand(sourceGetCmd)
	sourceCmd.AddCommand(sourceSearchCmd)
	sourceCmd.AddCommand(sourceWorksCmd)
}
