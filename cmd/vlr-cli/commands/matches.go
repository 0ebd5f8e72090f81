package commands

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var matchesTiers *[]string

func init() {
	matchesTiers = matchesCmd.Flags().StringSlice("tier", nil, "Only keep matches whose event contains one of these keywords.")
	rootCmd.AddCommand(matchesCmd)
}

var matchesCmd = &cobra.Command{
	Use:   "matches [--tier <keyword>]",
	Short: "Lists upcoming matches.",
	Run: func(cmd *cobra.Command, args []string) {
		service := newService().WithTierKeywords(*matchesTiers)

		matches, err := service.Matches(cmd.Context())
		if err != nil {
			fatal("failed to fetch matches", err)
		}

		t := newTable()
		t.AppendHeader(table.Row{"Id", "Time", "Team 1", "Team 2", "Event"})
		for _, m := range matches {
			t.AppendRow(table.Row{m.ID, m.StartTime, m.Team1.Name, m.Team2.Name, m.Event})
		}
		t.Render()
	},
}
