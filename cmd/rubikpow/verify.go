package main

import (
	"encoding/hex"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/rubikpow/v1/internal/core/puzzle/difficulty"
	"github.com/rubikpow/v1/internal/core/puzzle/verify"
	"github.com/rubikpow/v1/pkg/types"
)

var (
	verifyInput    scrambleFlags
	verifySolution string
	verifyTarget   uint64
)

// verifyCmd 候选解法验证命令
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "验证候选解法并可选判定难度目标",
	RunE: func(cmd *cobra.Command, args []string) error {
		wire, err := hex.DecodeString(verifySolution)
		if err != nil {
			return fmt.Errorf("--solution 不是合法的十六进制: %w", err)
		}
		solution, err := types.DecodeMoves(wire)
		if err != nil {
			return err
		}

		c, _, err := runScramble(verifyInput)
		if err != nil {
			return err
		}

		solved := verify.NewService(nil).VerifySolution(c, solution)
		digest := difficulty.StateDigest(c)

		pterm.DefaultSection.Println("验证结果")
		pterm.Info.Printf("打乱态摘要: %x\n", digest)
		if solved {
			pterm.Success.Printf("解法有效 (%d 步)\n", len(solution))
		} else {
			pterm.Error.Printf("解法无效 (%d 步)\n", len(solution))
		}

		if cmd.Flags().Changed("target") {
			oracle := difficulty.NewOracle()
			if oracle.MeetsDifficulty(c, verifyTarget) {
				pterm.Success.Printf("哈希低于目标 %d\n", verifyTarget)
			} else {
				pterm.Warning.Printf("哈希高于目标 %d\n", verifyTarget)
			}
		}
		return nil
	},
}

func init() {
	registerScrambleInput(verifyCmd, &verifyInput)
	verifyCmd.Flags().StringVar(&verifySolution, "solution", "", "候选解，线格式十六进制")
	verifyCmd.Flags().Uint64Var(&verifyTarget, "target", 0, "难度目标（可选）")
	_ = verifyCmd.MarkFlagRequired("solution")
	rootCmd.AddCommand(verifyCmd)
}
