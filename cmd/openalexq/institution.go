package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/openalexq/openalexq/internal/openalex"
	"github.com/openalexq/openalexq/internal/output"
)

var institutionCmd = &cobra.Command{
	Use:   "institution",
	Short: "Institution-related commands",
}

var institutionGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Get institution details by ID",
	Long:  `Retrieve an institution by identifier. Accepts OpenAlex IDs and ROR IDs.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		defer client.Close()

		inst, err := client.GetInstitution(cmd.Context(), args[0], nil)
		if err != nil {
			return handleError(err)
		}
		return output.FormatInstitutionDetail(os.Stdout, inst, outputCfg())
	},
}

var institutionSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search for institutions by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		defer client.Close()

		page, err := client.SearchInstitutions(cmd.Context(), openalex.SearchOptions{
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
		return output.FormatInstitutionsPage(os.Stdout, page, flagGroupBy, outputCfg())
	},
}

var institutionWorksCmd = &cobra.Command{
	Use:   "works <id>",
	Short: "Get works from an institution",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		defer client.Close()

		page, err := client.InstitutionWorks(cmd.Context(), args[0], relatedWorksOpts())
		if err != nil {
			return handleError(err)
		}
		return output.FormatWorksPage(os.Stdout, page, flagGroupBy, outputCfg())
	},
}

func init() {
	addEntitySearchFlags(institutionSearchCmd)
	addWorkFilterFlags(institutionWorksCmd)
	institutionWorksCmd.Flags().BoolVar(&flagBibTeX, "bibtex", false, "Output as BibTeX")

	institutionCmd.AddCommand(institutionGetCmd)
	institutionCmd.AddCommand(institutionSearchCmd)
	institutionCmd.AddCommand(institutionWorksCmd)
}
