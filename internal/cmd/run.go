package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/harrison/podassess/internal/answers"
	"github.com/harrison/podassess/internal/bank"
	"github.com/harrison/podassess/internal/display"
	"github.com/harrison/podassess/internal/export"
	"github.com/harrison/podassess/internal/models"
	"github.com/harrison/podassess/internal/recommend"
	"github.com/harrison/podassess/internal/scoring"
	"github.com/harrison/podassess/internal/session"
)

// NewRunCommand creates and returns the run subcommand
func NewRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <answers.yaml>",
		Short: "Score an assessment and generate reports",
		Long: `Score a completed assessment from an answers file.

The answers file maps question ids to raw answers: an integer rating
(1-6) for scale questions, the selected option label for choice
questions. Pod name and quarter can live in the file or be passed as
flags (flags win).

The question bank is loaded from the shared store (--remote), a CSV
file (--bank), or the embedded dataset, in that order of preference;
any load failure degrades to the embedded dataset.

Exit code: 0 on success, 1 on error`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAssessment(cmd, args[0])
		},
		SilenceUsage: true,
	}

	cmd.Flags().String("pod", "", "pod name (overrides the answers file)")
	cmd.Flags().String("quarter", "", "quarter label (overrides the answers file)")
	cmd.Flags().Bool("remote", false, "load the question bank from the shared store")
	cmd.Flags().String("bank", "", "load the question bank from a CSV file")
	cmd.Flags().String("csv", "", "write the spreadsheet report to this path")
	cmd.Flags().String("html", "", "write the document report to this path")
	cmd.Flags().Bool("no-save", false, "do not record the run in the session database")

	return cmd
}

func runAssessment(cmd *cobra.Command, answersPath string) error {
	cfg, err := loadToolConfig(cmd)
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	result, err := loadModel(cmd.Context(), cmd, cfg, log)
	if err != nil {
		if errors.Is(err, bank.ErrNoQuestions) {
			display.Warning{
				Title:      "Unable to load the questions configuration",
				Message:    err.Error(),
				Suggestion: "Check the question bank source and retry.",
			}.Display(cmd.ErrOrStderr())
		}
		return err
	}
	model := result.Model
	log.LogDebug(fmt.Sprintf("question bank served from %s source", result.Source))

	file, err := answers.Load(answersPath)
	if err != nil {
		return err
	}

	pod := firstNonEmpty(flagString(cmd, "pod"), file.Pod, "Unnamed Pod")
	quarter := firstNonEmpty(flagString(cmd, "quarter"), file.Quarter, currentQuarter(time.Now()))

	answerSet, warnings := file.Resolve(model)
	for _, w := range warnings {
		log.LogWarn(w)
	}

	res := scoring.Score(model, answerSet)
	areas := recommend.FocusAreas(model, res, answerSet)

	display.RenderResults(cmd.OutOrStdout(), pod, quarter, model, res, areas)

	meta := export.Meta{PodName: pod, Quarter: quarter, Date: time.Now()}
	if path := flagString(cmd, "csv"); path != "" {
		data := export.BuildCSV(meta, model, res, areas, answerSet)
		if err := os.WriteFile(path, []byte(data), 0644); err != nil {
			return fmt.Errorf("write spreadsheet report: %w", err)
		}
		log.LogInfo(fmt.Sprintf("spreadsheet report written to %s", path))
	}
	if path := flagString(cmd, "html"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("write document report: %w", err)
		}
		if err := export.WriteHTML(f, meta, model, res, areas, answerSet); err != nil {
			f.Close()
			return fmt.Errorf("write document report: %w", err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("write document report: %w", err)
		}
		log.LogInfo(fmt.Sprintf("document report written to %s", path))
	}

	if noSave, _ := cmd.Flags().GetBool("no-save"); !noSave {
		if err := recordRun(cfg.SessionDB, pod, quarter, answerSet, res.Overall); err != nil {
			// History is best effort; the assessment itself succeeded.
			log.LogWarn(fmt.Sprintf("could not record session: %v", err))
		}
	}

	return nil
}

// recordRun stores the completed assessment in the session database.
func recordRun(dbPath, pod, quarter string, set models.AnswerSet, overall float64) error {
	store, err := session.NewStore(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	sess := session.New(pod, quarter)
	sess.Answers = set
	sess.Completed = true
	sess.OverallScore = overall
	sess.CurrentIndex = len(set)
	return store.Save(sess)
}

func flagString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// currentQuarter formats a fallback quarter label like "2026-Q3".
func currentQuarter(now time.Time) string {
	quarter := (int(now.Month())-1)/3 + 1
	return fmt.Sprintf("%d-Q%d", now.Year(), quarter)
}
