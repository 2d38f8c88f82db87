package main

import (
	"testing"

	"github.com/spf13/cobra"
)

func resetGlobalFlags() {
	flagJSON = false
	flagBibTeX = false
	flagEmail = ""
	flagLimit = 25
	flagPage = 1
	flagFilter = ""
	flagFromDate = ""
	flagToDate = ""
	flagSort = ""
	flagGroupBy = ""
}

func TestContactEmail_FlagWins(t *testing.T) {
	resetGlobalFlags()
	t.Setenv("OPENALEX_EMAIL", "env@example.com")
	flagEmail = "flag@example.com"

	if got := contactEmail(); got != "flag@example.com" {
		t.Errorf("contactEmail = %q", got)
	}
}

func TestContactEmail_EnvFallback(t *testing.T) {
	resetGlobalFlags()
	t.Setenv("OPENALEX_EMAIL", "env@example.com")

	if got := contactEmail(); got != "env@example.com" {
		t.Errorf("contactEmail = %q", got)
	}
}

func TestContactEmail_Unset(t *testing.T) {
	resetGlobalFlags()
	t.Setenv("OPENALEX_EMAIL", "")

	if got := contactEmail(); got != "" {
		t.Errorf("contactEmail = %q, want empty", got)
	}
}

func TestRelatedWorksOpts(t *testing.T) {
	resetGlobalFlags()
	flagFilter = "is_oa:true"
	flagFromDate = "2020-01-01"
	flagLimit = 50
	flagPage = 3

	opts := relatedWorksOpts()
	if opts.Filter != "is_oa:true" {
		t.Errorf("filter = %q", opts.Filter)
	}
	if opts.FromDate != "2020-01-01" {
		t.Errorf("from date = %q", opts.FromDate)
	}
	if opts.PerPage != 50 || opts.Page != 3 {
		t.Errorf("pagination = %d/%d", opts.Page, opts.PerPage)
	}
}

func TestCommandTree(t *testing.T) {
	subcommands := map[string][]string{
		"search":      nil,
		"work":        nil,
		"citations":   nil,
		"references":  nil,
		"bibtex":      nil,
		"author":      {"get", "search", "works"},
		"institution": {"get", "search", "works"},
		"source":      {"get", "search", "works"},
	}

	for name, children := range subcommands {
		cmd := findCommand(rootCmd, name)
		if cmd == nil {
			t.Errorf("missing command %q", name)
			continue
		}
		for _, child := range children {
			if findCommand(cmd, child) == nil {
				t.Errorf("missing subcommand %q %q", name, child)
			}
		}
	}
}

func findCommand(parent *cobra.Command, name string) *cobra.Command {
	for _, c := range parent.Commands() {
		if c.Name() == name {
			return c
		}
	}
	return nil
}
