package commands

import (
	"fmt"
	scraper "vlrdata-backend/lib/scrapers/vlr"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(matchCmd)
}

var matchCmd = &cobra.Command{
	Use:   "match <id>",
	Short: "Shows the scoreboard of a single match.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		detail, err := newService().Match(cmd.Context(), args[0])
		if err != nil {
			fatal("failed to fetch match", err)
		}

		for _, team := range detail.Teams {
			fmt.Printf("%s  %s\n", team.Score, team.Name)
		}
		fmt.Printf("%s / %s\n", detail.Event.Series, detail.Event.Stage)
		if detail.IsUpcoming {
			fmt.Println("This match has not started yet.")
		}

		for _, m := range detail.Maps {
			renderMap(m)
		}
	},
}

func renderMap(m scraper.MapResult) {
	header := m.Name
	for _, ts := range m.Teams {
		header += fmt.Sprintf("  %s %s", ts.Name, ts.Score)
	}
	fmt.Println(header)

	t := newTable()
	t.AppendHeader(table.Row{
		"Player", "Team", "Rating", "ACS", "K", "D", "A",
		"KAST", "ADR", "HS%", "FK", "FD",
	})
	for _, p := range m.Players {
		t.AppendRow(table.Row{
			p.Name, p.Team, p.Rating, p.ACS, p.Kills, p.Deaths, p.Assists,
			p.KAST, p.ADR, p.Headshot, p.FirstKills, p.FirstDeaths,
		})
	}
	t.Render()
}
