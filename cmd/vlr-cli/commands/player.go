package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(playerCmd)
}

var playerCmd = &cobra.Command{
	Use:   "player <id>",
	Short: "Shows a player's profile and career statistics.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		player, err := newService().Player(cmd.Context(), args[0])
		if err != nil {
			fatal("failed to fetch player", err)
		}

		fmt.Println(player.Alias)
		if player.RealName != "" {
			fmt.Println(player.RealName)
		}
		if player.Team != "" {
			fmt.Printf("Team: %s\n", player.Team)
		}

		if len(player.CareerStats) > 0 {
			t := newTable()
			t.AppendHeader(table.Row{"Stat", "Value"})
			for label, value := range player.CareerStats {
				t.AppendRow(table.Row{label, value})
			}
			t.SortBy([]table.SortBy{{Name: "Stat", Mode: table.Asc}})
			t.Render()
		}

		if len(player.Recent) > 0 {
			t := newTable()
			t.AppendHeader(table.Row{"Result", "Score", "Opponent"})
			for _, m := range player.Recent {
				t.AppendRow(table.Row{m.Result, m.Score, m.Opponent})
			}
			t.Render()
		}
	},
}
