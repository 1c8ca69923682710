package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"quizapi/internal/client"

	"github.com/spf13/cobra"
)

func newQuestionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "question",
		Short: "Manage questions",
	}
	cmd.AddCommand(
		newQuestionListCmd(),
		newQuestionGetCmd(),
		newQuestionCreateCmd(),
		newQuestionUpdateCmd(),
		newQuestionDeleteCmd(),
	)
	return cmd
}

func newQuestionListCmd() *cobra.Command {
	var quizID string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List questions, optionally for one quiz",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := client.New(apiURL).ListQuestions(cmd.Context(), quizID)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tQUESTION\tANSWERS")
			for _, row := range rows {
				fmt.Fprintf(w, "%s\t%s\t%s\n", row.ID, row.Question, joinInts(row.Ans))
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&quizID, "quiz", "", "only questions owned by this quiz")
	return cmd
}

func newQuestionGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one question",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := client.New(apiURL).GetQuestion(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printQuestionDetail(q)
			return nil
		},
	}
}

func newQuestionCreateCmd() *cobra.Command {
	var (
		text    string
		options []string
		correct []int
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a question with four options",
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := client.New(apiURL).CreateQuestion(cmd.Context(), client.QuestionInput{
				Question:      text,
				Options:       options,
				CorrectAnswer: correct,
			})
			if err != nil {
				return err
			}
			fmt.Printf("created question %s\n", q.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&text, "text", "", "question prompt (required)")
	cmd.Flags().StringSliceVar(&options, "option", nil, "option text, exactly four (repeatable)")
	cmd.Flags().IntSliceVar(&correct, "correct", nil, "0-indexed correct option (repeatable)")
	cmd.MarkFlagRequired("text")
	cmd.MarkFlagRequired("option")
	cmd.MarkFlagRequired("correct")
	return cmd
}

func newQuestionUpdateCmd() *cobra.Command {
	var (
		text    string
		options []string
		correct []int
	)
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a question (only the given flags are stored)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var update client.QuestionUpdate
			if cmd.Flags().Changed("text") {
				update.Question = &text
			}
			if cmd.Flags().Changed("option") {
				update.Options = options
			}
			if cmd.Flags().Changed("correct") {
				update.CorrectAnswer = correct
			}
			q, err := client.New(apiURL).UpdateQuestion(cmd.Context(), args[0], update)
			if err != nil {
				return err
			}
			fmt.Printf("updated question %s\n", q.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&text, "text", "", "new prompt")
	cmd.Flags().StringSliceVar(&options, "option", nil, "replace the four options (repeatable)")
	cmd.Flags().IntSliceVar(&correct, "correct", nil, "replace the correct set (repeatable)")
	return cmd
}

func newQuestionDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a question and drop it from any quiz",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.New(apiURL).DeleteQuestion(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("question deleted")
			return nil
		},
	}
}

func printQuestionDetail(q *client.Question) {
	fmt.Printf("%s\n%s\n", q.Question, q.ID)
	correct := make(map[int]bool, len(q.CorrectAnswer))
	for _, idx := range q.CorrectAnswer {
		correct[idx] = true
	}
	for i, opt := range q.Options {
		mark := " "
		if correct[i] {
			mark = "*"
		}
		fmt.Printf("  %s %d) %s\n", mark, i+1, opt)
	}
}
