package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/harrison/podassess/internal/models"
)

// NewQuestionsCommand creates and returns the questions subcommand
func NewQuestionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "questions",
		Short: "Browse the assessment questions",
		Long: `List the assessment questions in presentation order, grouped by
dimension. Use "questions show <id>" for a single question with its
answer options and educational content.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuestionsList(cmd)
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().Bool("remote", false, "load the question bank from the shared store")
	cmd.PersistentFlags().String("bank", "", "load the question bank from a CSV file")

	cmd.AddCommand(newQuestionsShowCommand())
	return cmd
}

func newQuestionsShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one question in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid question id %q", args[0])
			}
			return runQuestionsShow(cmd, id)
		},
		SilenceUsage: true,
	}
}

func runQuestionsList(cmd *cobra.Command) error {
	cfg, err := loadToolConfig(cmd)
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	result, err := loadModel(cmd.Context(), cmd, cfg, log)
	if err != nil {
		return err
	}
	model := result.Model

	out := cmd.OutOrStdout()
	for di, dim := range model.Dimensions {
		if di > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "%s (%s)\n", dim.Name, dim.ID)
		for _, q := range model.QuestionsIn(dim.ID) {
			fmt.Fprintf(out, "  %3d  [%s] %s\n", q.ID, typeLabel(q.Type), q.Text)
		}
	}
	fmt.Fprintf(out, "\n%d questions across %d dimensions (%s source)\n",
		model.TotalQuestions(), len(model.Dimensions), result.Source)
	return nil
}

func runQuestionsShow(cmd *cobra.Command, id int) error {
	cfg, err := loadToolConfig(cmd)
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	result, err := loadModel(cmd.Context(), cmd, cfg, log)
	if err != nil {
		return err
	}

	q, ok := result.Model.QuestionByID(id)
	if !ok {
		return fmt.Errorf("no question with id %d", id)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Question %d (%s, %d of %d)\n", q.ID, q.DimensionName, q.PositionInDimension, q.TotalInDimension)
	fmt.Fprintf(out, "%s\n\n", q.Text)

	if q.Type.HasOptions() {
		fmt.Fprintln(out, "Options:")
		for _, o := range q.Options {
			fmt.Fprintf(out, "  %d  %s\n", o.Value, o.Label)
		}
	} else {
		fmt.Fprintln(out, "Rate from 1 (rarely/never) to 6 (always).")
	}

	if q.Why.WhyMatters != "" {
		fmt.Fprintf(out, "\nWhy this matters:\n  %s\n", q.Why.WhyMatters)
	}
	if len(q.Why.WhenDoneWell) > 0 {
		fmt.Fprintln(out, "\nWhen done well:")
		for _, line := range q.Why.WhenDoneWell {
			fmt.Fprintf(out, "  - %s\n", line)
		}
	}
	if len(q.Why.ProblemsWithout) > 0 {
		fmt.Fprintln(out, "\nProblems without it:")
		for _, line := range q.Why.ProblemsWithout {
			fmt.Fprintf(out, "  - %s\n", line)
		}
	}
	return nil
}

func typeLabel(t models.QuestionType) string {
	switch t {
	case models.TypeScale:
		return "scale"
	case models.TypeQuantity:
		return "quantity"
	case models.TypeMaturity:
		return "maturity"
	default:
		return string(t)
	}
}
