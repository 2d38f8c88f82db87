package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/openalexq/openalexq/internal/openalex"
	"github.com/openalexq/openalexq/internal/output"
)

var authorCmd = &cobra.Command{
	Use:   "author",
	Short: "Author-related commands",
}

var authorGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Get author details by ID",
	Long:  `Retrieve an author by identifier. Accepts OpenAlex IDs and ORCIDs.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		defer client.Close()

		author, err := client.GetAuthor(cmd.Context(), args[0], nil)
		if err != nil {
			return handleError(err)
		}
		return output.FormatAuthorDetail(os.Stdout, author, outputCfg())
	},
}

var authorSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search for authors by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		defer client.Close()

		page, err := client.SearchAuthors(cmd.Context(), openalex.SearchOptions{
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
		return output.FormatAuthorsPage(os.Stdout, page, flagGroupBy, outputCfg())
	},
}

var authorWorksCmd = &cobra.Command{
	Use:   "works <id>",
	Short: "Get works by an author",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		defer client.Close()

		page, err := client.AuthorWorks(cmd.Context(), args[0], relatedWorksOpts())
		if err != nil {
			return handleError(err)
		}
		return output.FormatWorksPage(os.Stdout, page, flagGroupBy, outputCfg())
	},
}

// relatedWorksOpts collects the shared flags for entity works listings.
func relatedWorksOpts() openalex.RelatedWorksOptions {
	return openalex.RelatedWorksOptions{
		Filter:   flagFilter,
		FromDate: flagFromDate,
		ToDate:   flagToDate,
		Sort:     flagSort,
		Page:     flagPage,
		PerPage:  flagLimit,
		GroupBy:  flagGroupBy,
	}
}

// addEntitySearchFlags registers the flags shared by entity search commands.
func addEntitySearchFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&flagFilter, "filter", "f", "", "OpenAlex filter string")
	cmd.Flags().StringVar(&flagSort, "sort", "", "Sort field")
	cmd.Flags().StringVar(&flagGroupBy, "group-by", "", "Group results by field")
}

func init() {
	addEntitySearchFlags(authorSearchCmd)
	addWorkFilterFlags(authorWorksCmd)
	authorWorksCmd.Flags().BoolVar(&flagBibTeX, "bibtex", false, "Output as BibTeX")

	authorCmd.AddCommand(authorGetCmd)
	authorCmd.AddCommand(authorSearchCmd)
	authorCmd.AddCommand(authorWorksCmd)
}
