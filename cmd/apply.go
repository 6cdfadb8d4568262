package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jobo-world/jobo-go/jobo"
)

// applyCmd groups the auto-apply session commands
var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Drive auto-apply sessions",
	Long: `Start, answer, and end auto-apply sessions. Session state lives on the
server; these commands only reflect the last-seen state.`,
}

var applyStartCmd = &cobra.Command{
	Use:   "start APPLY_URL",
	Short: "Start an auto-apply session for a job's apply URL",
	Args:  cobra.ExactArgs(1),
	RunE:  runApplyStart,
}

var applyAnswerCmd = &cobra.Command{
	Use:   "answer SESSION_ID FIELD=VALUE...",
	Short: "Submit field answers for an active session",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runApplyAnswer,
}

var applyEndCmd = &cobra.Command{
	Use:   "end SESSION_ID",
	Short: "End an auto-apply session",
	Args:  cobra.ExactArgs(1),
	RunE:  runApplyEnd,
}

func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.AddCommand(applyStartCmd)
	applyCmd.AddCommand(applyAnswerCmd)
	applyCmd.AddCommand(applyEndCmd)
}

func runApplyStart(cmd *cobra.Command, args []string) error {
	session, err := client.AutoApply.StartSession(context.Background(), args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Session %s started (provider: %s)\n\n", session.SessionID, session.Provider)
	printSessionFields(session)
	return nil
}

func runApplyAnswer(cmd *cobra.Command, args []string) error {
	sessionID, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid session ID: %w", err)
	}

	var answers []jobo.FieldAnswer
	for _, arg := range args[1:] {
		fieldID, value, ok := strings.Cut(arg, "=")
		if !ok || fieldID == "" {
			return fmt.Errorf("invalid answer %q (expected FIELD=VALUE)", arg)
		}
		answers = append(answers, jobo.FieldAnswer{FieldID: fieldID, Value: value})
	}

	session, err := client.AutoApply.SetAnswers(context.Background(), sessionID, answers)
	if err != nil {
		return err
	}

	if session.IsTerminal {
		fmt.Printf("Session %s finished (status: %s)\n", session.SessionID, session.Status)
		return nil
	}

	fmt.Printf("Session %s updated\n\n", session.SessionID)
	printSessionFields(session)
	return nil
}

func runApplyEnd(cmd *cobra.Command, args []string) error {
	sessionID, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid session ID: %w", err)
	}

	ended, err := client.AutoApply.EndSession(context.Background(), sessionID)
	if err != nil {
		return err
	}
	if !ended {
		fmt.Printf("Session %s not found\n", sessionID)
		return nil
	}

	fmt.Printf("Session %s ended\n", sessionID)
	return nil
}

func printSessionFields(session *jobo.AutoApplySession) {
	if len(session.Fields) == 0 {
		fmt.Println("No fields to answer.")
		return
	}

	fmt.Printf("%-20s %-10s %-8s %s\n", "FIELD", "TYPE", "REQUIRED", "OPTIONS")
	for _, field := range session.Fields {
		required := ""
		if field.Required {
			required = "yes"
		}
		fmt.Printf("%-20s %-10s %-8s %s\n", field.ID, field.Type, required, strings.Join(field.Options, ", "))
	}
}
