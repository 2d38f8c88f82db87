// Command openalexq provides a CLI for the OpenAlex scholarly metadata API.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/openalexq/openalexq/internal/openalex"
	"github.com/openalexq/openalexq/internal/output"
)

var (
	flagJSON         bool
	flagBibTeX       bool
	flagEmail        string
	flagLimit        int
	flagPage         int
	flagFilter       string
	flagFromDate     string
	flagToDate       string
	flagMinCitations int
	flagOpenAccess   bool
	flagType         string
	flagSort         string
	flagGroupBy      string
)

// errReported marks an error already printed by handleError.
var errReported = errors.New("reported")

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "openalexq",
	Short:         "OpenAlex scholarly metadata CLI",
	Long:          `A command-line interface for searching and retrieving works, authors, institutions, and sources from the OpenAlex API.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as structured JSON")
	rootCmd.PersistentFlags().StringVar(&flagEmail, "email", "", "Contact email for the polite pool (or set OPENALEX_EMAIL)")
	rootCmd.PersistentFlags().IntVarP(&flagLimit, "limit", "n", 25, "Number of results per page")
	rootCmd.PersistentFlags().IntVarP(&flagPage, "page", "p", 1, "Page number")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(workCmd)
	rootCmd.AddCommand(citationsCmd)
	rootCmd.AddCommand(referencesCmd)
	rootCmd.AddCommand(bibtexCmd)
	rootCmd.AddCommand(authorCmd)
	rootCmd.AddCommand(institutionCmd)
	rootCmd.AddCommand(sourceCmd)
}

// addWorkFilterFlags registers the work-search filter flags on a command.
func addWorkFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&flagFilter, "filter", "f", "", "OpenAlex filter string")
	cmd.Flags().StringVar(&flagFromDate, "from-date", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&flagToDate, "to-date", "", "End date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&flagSort, "sort", "", "Sort field (e.g., cited_by_count:desc)")
	cmd.Flags().StringVar(&flagGroupBy, "group-by", "", "Group results by field")
}

func stdoutIsTTY() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func outputCfg() output.Config {
	return output.Config{
		JSON:   flagJSON || !stdoutIsTTY(),
		BibTeX: flagBibTeX,
	}
}

func contactEmail() string {
	if flagEmail != "" {
		return flagEmail
	}
	return os.Getenv("OPENALEX_EMAIL")
}

func newClient() *openalex.Client {
	var opts []openalex.Option
	if email := contactEmail(); email != "" {
		opts = append(opts, openalex.WithEmail(email))
	}
	return openalex.NewClient(opts...)
}

// handleError prints an API error in the active output format and returns a
// marker so main exits nonzero without double-printing.
func handleError(err error) error {
	var apiErr *openalex.APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	if flagJSON || !stdoutIsTTY() {
		if werr := output.FormatErrorJSON(os.Stdout, apiErr); werr != nil {
			return werr
		}
	} else {
		output.FormatErrorHuman(os.Stderr, apiErr)
	}
	return errReported
}

// searchCmd implements the search subcommand.
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search for works",
	Long:  `Search for works in OpenAlex by full-text query, with optional filters for dates, citations, open access, and work type.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		defer client.Close()

		opts := openalex.SearchWorksOptions{
			Query:      args[0],
			Filter:     flagFilter,
			FromDate:   flagFromDate,
			ToDate:     flagToDate,
			OpenAccess: flagOpenAccess,
			WorkType:   flagType,
			Sort:       flagSort,
			Page:       flagPage,
			PerPage:    flagLimit,
			GroupBy:    flagGroupBy,
		}
		if cmd.Flags().Changed("min-citations") {
			opts.MinCitations = &flagMinCitations
		}

		page, err := client.SearchWorks(cmd.Context(), opts)
		if err != nil {
			return handleError(err)
		}
		return output.FormatWorksPage(os.Stdout, page, flagGroupBy, outputCfg())
	},
}

// workCmd implements the work subcommand.
var workCmd = &cobra.Command{
	Use:   "work <id> [id...]",
	Short: "Get work(s) by ID",
	Long:  `Retrieve one or more works by identifier. Accepts OpenAlex IDs, DOIs, PMIDs, and MAG IDs.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		defer client.Close()

		works := make([]openalex.Work, 0, len(args))
		for _, id := range args {
			work, err := client.GetWork(cmd.Context(), id, nil)
			if err != nil {
				return handleError(err)
			}
			works = append(works, *work)
		}

		cfg := outputCfg()
		if len(works) == 1 && !cfg.BibTeX {
			return output.FormatWorkDetail(os.Stdout, &works[0], cfg)
		}
		return output.FormatWorks(os.Stdout, works, cfg)
	},
}

// citationsCmd implements the citations subcommand.
var citationsCmd = &cobra.Command{
	Use:   "citations <id>",
	Short: "Get works that cite a work",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		defer client.Close()

		page, err := client.Citations(cmd.Context(), args[0], flagPage, flagLimit, nil)
		if err != nil {
			return handleError(err)
		}
		return output.FormatWorksPage(os.Stdout, page, "", outputCfg())
	},
}

// referencesCmd implements the references subcommand.
var referencesCmd = &cobra.Command{
	Use:   "references <id>",
	Short: "Get works cited by a work",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		defer client.Close()

		page, err := client.References(cmd.Context(), args[0], flagPage, flagLimit, nil)
		if err != nil {
			return handleError(err)
		}
		return output.FormatWorksPage(os.Stdout, page, "", outputCfg())
	},
}

// bibtexCmd implements the bibtex subcommand.
var bibtexCmd = &cobra.Command{
	Use:   "bibtex <id> [id...]",
	Short: "Export BibTeX citations for work(s)",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		defer client.Close()

		works := make([]openalex.Work, 0, len(args))
		for _, id := range args {
			work, err := client.GetWork(cmd.Context(), id, openalex.BibTeXWorkFields)
			if err != nil {
				return handleError(err)
			}
			works = append(works, *work)
		}
		return output.FormatWorksBibTeX(os.Stdout, works)
	},
}

func init() {
	addWorkFilterFlags(searchCmd)
	searchCmd.Flags().IntVar(&flagMinCitations, "min-citations", 0, "Minimum citation count")
	searchCmd.Flags().BoolVar(&flagOpenAccess, "open-access", false, "Only open access works")
	searchCmd.Flags().StringVar(&flagType, "type", "", "Work type (article, book, etc.)")
	searchCmd.Flags().BoolVar(&flagBibTeX, "bibtex", false, "Output as BibTeX")

	citationsCmd.Flags().BoolVar(&flagBibTeX, "bibtex", false, "Output as BibTeX")
	referencesCmd.Flags().BoolVar(&flagBibTeX, "bibtex", false, "Output as BibTeX")
	workCmd.Flags().BoolVar(&flagBibTeX, "bibtex", false, "Output as BibTeX")
}
