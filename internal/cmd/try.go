package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pthm/chatfmt/internal/ui"
)

var tryRaw bool

var tryCmd = &cobra.Command{
	Use:   "try",
	Short: "Score messages interactively as you type",
	Long: `Open a playground that rescores the message on every keystroke.
Needs an interactive terminal.`,
	Args: cobra.NoArgs,
	RunE: runTry,
}

func init() {
	tryCmd.Flags().BoolVar(&tryRaw, "raw", false, "Score the text as is, without removing fenced code blocks")
	RootCmd.AddCommand(tryCmd)
}

func runTry(cmd *cobra.Command, args []string) error {
	s := getScorer()

	evaluate := func(text string) ui.Evaluation {
		a := analyzeMessage(s, text, tryRaw)
		return ui.Evaluation{
			Score:         a.Result.Score,
			IsCode:        a.Result.IsCode,
			ContentLines:  a.Result.ContentLines,
			CodeLines:     a.Result.CodeLines,
			CodeLineRatio: a.Result.CodeLineRatio,
			FencedBlocks:  a.FencedBlocks,
		}
	}

	return GetUI().RunPlayground(evaluate, s.Profile().Name)
}
