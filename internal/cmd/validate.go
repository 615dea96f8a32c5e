package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/harrison/podassess/internal/bank"
)

// NewValidateCommand creates and returns the validate subcommand
func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [bank.csv]",
		Short: "Check a question bank source for problems",
		Long: `Validate a question bank CSV without running an assessment.

Unlike run, validate never falls back to the embedded dataset: the
named source is parsed as-is and every warning is reported. With no
argument the embedded dataset itself is checked.

Exit code: 0 when the source is usable, 1 when it yields no questions`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runValidate(cmd, path)
		},
		SilenceUsage: true,
	}
	return cmd
}

func runValidate(cmd *cobra.Command, path string) error {
	out := cmd.OutOrStdout()

	text := bank.EmbeddedCSV()
	label := "embedded dataset"
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read bank file: %w", err)
		}
		text = string(data)
		label = path
	}

	b, err := bank.Parse(text)
	if err != nil {
		return fmt.Errorf("parse %s: %w", label, err)
	}
	model, err := bank.Flatten(b)
	if err != nil {
		return fmt.Errorf("%s unusable: %w", label, err)
	}

	for _, w := range model.Warnings {
		fmt.Fprintf(out, "warning: %s\n", w)
	}

	fmt.Fprintf(out, "%s: %d dimensions, %d questions", label, len(model.Dimensions), model.TotalQuestions())
	if n := model.TotalQuestions(); n != bank.ExpectedQuestionCount {
		fmt.Fprintf(out, " (expected %d)", bank.ExpectedQuestionCount)
	}
	fmt.Fprintln(out)

	for _, d := range model.Dimensions {
		fmt.Fprintf(out, "  %-14s %d questions\n", d.ID, len(model.QuestionsIn(d.ID)))
	}
	return nil
}
