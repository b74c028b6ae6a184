package main

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/rubikpow/v1/internal/core/puzzle/difficulty"
	"github.com/rubikpow/v1/pkg/constants"
)

var difficultySize int

// difficultyCmd 组合难度查询命令
var difficultyCmd = &cobra.Command{
	Use:   "difficulty",
	Short: "查询给定尺寸的组合难度",
	RunE: func(cmd *cobra.Command, args []string) error {
		oracle := difficulty.NewOracle()
		value := oracle.CalculateDifficulty(difficultySize)

		rows := pterm.TableData{{"尺寸", "难度", "精确性"}}
		exactness := "精确（状态空间总数）"
		if difficultySize > 3 {
			exactness = "数量级近似"
		}
		rows = append(rows, []string{
			pterm.Sprintf("%d", difficultySize),
			value.String(),
			exactness,
		})
		return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
	},
}

func init() {
	difficultyCmd.Flags().IntVar(&difficultySize, "size", 3,
		pterm.Sprintf("魔方边长 (%d-%d)", constants.MinCubeSize, constants.MaxCubeSize))
	rootCmd.AddCommand(difficultyCmd)
}
