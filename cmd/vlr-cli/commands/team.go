package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(teamCmd)
}

var teamCmd = &cobra.Command{
	Use:   "team <id>",
	Short: "Shows a team's roster and recent results.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		team, err := newService().Team(cmd.Context(), args[0])
		if err != nil {
			fatal("failed to fetch team", err)
		}

		fmt.Printf("%s (%s)\n", team.Name, team.Region)

		t := newTable()
		t.AppendHeader(table.Row{"Alias", "Name", "Role"})
		for _, p := range team.Roster {
			t.AppendRow(table.Row{p.Alias, p.RealName, p.Role})
		}
		t.Render()

		if len(team.Recent) == 0 {
			return
		}
		t = newTable()
		t.AppendHeader(table.Row{"Result", "Score", "Opponent"})
		for _, m := range team.Recent {
			t.AppendRow(table.Row{m.Result, m.Score, m.Opponent})
		}
		t.Render()
	},
}
