package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hjwestbye/titanic/pkg/dataset"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print descriptive statistics and the missing-value census",
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := dataset.Load(viper.GetString("input"))
		if err != nil {
			return err
		}

		fmt.Printf("%d passengers\n\n", table.Len())
		fmt.Printf("%-10s %7s %8s %10s %10s %10s %10s %10s\n",
			"column", "count", "missing", "mean", "std", "min", "median", "max")
		for _, col := range table.Summary() {
			if col.Levels == nil {
				fmt.Printf("%-10s %7d %8d %10.2f %10.2f %10.2f %10.2f %10.2f\n",
					col.Name, col.Count, col.Missing, col.Mean, col.Std, col.Min, col.Median, col.Max)
			} else {
				fmt.Printf("%-10s %7d %8d  %s\n",
					col.Name, col.Count, col.Missing, formatLevels(col.Levels))
			}
		}
		return nil
	},
}

func formatLevels(levels map[string]int) string {
	keys := make([]string, 0, len(levels))
	for k := range levels {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := ""
	for i, k := range keys {
		if i > 0 {
			out += "  "
		}
		out += fmt.Sprintf("%s=%d", k, levels[k])
	}
	return out
}
