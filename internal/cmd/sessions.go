package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/harrison/podassess/internal/session"
)

// NewSessionsCommand creates and returns the sessions subcommand
func NewSessionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "Inspect recorded assessment sessions",
		Long: `List the assessment sessions recorded in the local database.
Completed runs carry their overall score; drafts show how far they got.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSessionsList(cmd)
		},
		SilenceUsage: true,
	}

	cmd.AddCommand(newSessionsShowCommand())
	cmd.AddCommand(newSessionsDeleteCommand())
	cmd.AddCommand(newSessionsClearCommand())
	return cmd
}

func newSessionsShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one session with its answers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSessionsShow(cmd, args[0])
		},
		SilenceUsage: true,
	}
}

func newSessionsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSessionsDelete(cmd, args[0])
		},
		SilenceUsage: true,
	}
}

func newSessionsClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all draft sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSessionsClear(cmd)
		},
		SilenceUsage: true,
	}
}

func runSessionsList(cmd *cobra.Command) error {
	store, err := openSessionStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()
	out := cmd.OutOrStdout()

	sessions, err := store.List()
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Fprintln(out, "no sessions recorded")
		return nil
	}

	for _, s := range sessions {
		state := fmt.Sprintf("draft (%d answered)", len(s.Answers))
		if s.Completed {
			state = fmt.Sprintf("completed, overall %.2f", s.OverallScore)
		}
		fmt.Fprintf(out, "%s  %s  %s / %s  %s\n",
			s.ID, s.UpdatedAt.Local().Format("2006-01-02 15:04"), s.PodName, s.Quarter, state)
	}
	return nil
}

func runSessionsShow(cmd *cobra.Command, id string) error {
	store, err := openSessionStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()
	out := cmd.OutOrStdout()

	s, err := store.Get(id)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Session %s\n", s.ID)
	fmt.Fprintf(out, "Pod:      %s\n", s.PodName)
	fmt.Fprintf(out, "Quarter:  %s\n", s.Quarter)
	fmt.Fprintf(out, "Started:  %s\n", s.StartedAt.Local().Format("2006-01-02 15:04"))
	fmt.Fprintf(out, "Updated:  %s\n", s.UpdatedAt.Local().Format("2006-01-02 15:04"))
	if s.Completed {
		fmt.Fprintf(out, "Overall:  %.2f\n", s.OverallScore)
	} else {
		fmt.Fprintf(out, "Progress: %d answered\n", len(s.Answers))
	}

	ids := make([]int, 0, len(s.Answers))
	for qid := range s.Answers {
		ids = append(ids, qid)
	}
	sort.Ints(ids)
	for _, qid := range ids {
		a := s.Answers[qid]
		score := "-"
		if a.Score != nil {
			score = fmt.Sprintf("%d", *a.Score)
		}
		fmt.Fprintf(out, "  %3d  %s  (%s)\n", qid, a.Raw, score)
	}
	return nil
}

func runSessionsDelete(cmd *cobra.Command, id string) error {
	store, err := openSessionStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Delete(id); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "deleted session %s\n", id)
	return nil
}

func runSessionsClear(cmd *cobra.Command) error {
	store, err := openSessionStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	n, err := store.ClearDrafts()
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "cleared %d draft sessions\n", n)
	return nil
}

func openSessionStore(cmd *cobra.Command) (*session.Store, error) {
	cfg, err := loadToolConfig(cmd)
	if err != nil {
		return nil, err
	}
	return session.NewStore(cfg.SessionDB)
}
