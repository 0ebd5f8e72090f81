package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(liveCmd)
}

var liveCmd = &cobra.Command{
	Use:   "live",
	Short: "Lists matches currently in progress.",
	Run: func(cmd *cobra.Command, args []string) {
		live, err := newService().Live(cmd.Context())
		if err != nil {
			fatal("failed to fetch live matches", err)
		}
		if len(live) == 0 {
			fmt.Println("No matches are live right now.")
			return
		}

		t := newTable()
		t.AppendHeader(table.Row{"Id", "Team 1", "Score", "Team 2", "Score", "Event"})
		for _, m := range live {
			t.AppendRow(table.Row{
				m.ID,
				m.Team1.Name, m.Team1.Score,
				m.Team2.Name, m.Team2.Score,
				m.Event,
			})
		}
		t.Render()
	},
}
