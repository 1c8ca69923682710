package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"quizapi/internal/client"

	"github.com/spf13/cobra"
)

func newQuizCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Manage quizzes",
	}
	cmd.AddCommand(
		newQuizListCmd(),
		newQuizGetCmd(),
		newQuizCreateCmd(),
		newQuizUpdateCmd(),
		newQuizDeleteCmd(),
		newQuizAddQuestionCmd(),
		newQuizRemoveQuestionCmd(),
	)
	return cmd
}

func newQuizListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all quizzes",
		RunE: func(cmd *cobra.Command, args []string) error {
			quizzes, err := client.New(apiURL).ListQuizzes(cmd.Context())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tQUESTIONS\tUPDATED")
			for _, q := range quizzes {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", q.ID, q.Title, len(q.Questions), q.UpdatedAt.Format("2006-01-02 15:04"))
			}
			return w.Flush()
		},
	}
}

func newQuizGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one quiz with its questions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			quiz, err := client.New(apiURL).GetQuiz(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printQuiz(quiz)
			return nil
		},
	}
}

func newQuizCreateCmd() *cobra.Command {
	var (
		title       string
		description string
		questions   []string
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a quiz",
		RunE: func(cmd *cobra.Command, args []string) error {
			quiz, err := client.New(apiURL).CreateQuiz(cmd.Context(), client.QuizInput{
				Title:       title,
				Description: description,
				Questions:   questions,
			})
			if err != nil {
				return err
			}
			fmt.Printf("created quiz %s\n", quiz.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "quiz title (required)")
	cmd.Flags().StringVar(&description, "description", "", "quiz description")
	cmd.Flags().StringSliceVar(&questions, "question", nil, "question id to include (repeatable)")
	cmd.MarkFlagRequired("title")
	return cmd
}

func newQuizUpdateCmd() *cobra.Command {
	var (
		title       string
		description string
		questions   []string
	)
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a quiz (only the given flags are stored)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var update client.QuizUpdate
			if cmd.Flags().Changed("title") {
				update.Title = &title
			}
			if cmd.Flags().Changed("description") {
				update.Description = &description
			}
			if cmd.Flags().Changed("question") {
				update.Questions = &questions
			}
			quiz, err := client.New(apiURL).UpdateQuiz(cmd.Context(), args[0], update)
			if err != nil {
				return err
			}
			fmt.Printf("updated quiz %s\n", quiz.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVar(&description, "description", "", "new description")
	cmd.Flags().StringSliceVar(&questions, "question", nil, "replace the question list (repeatable)")
	return cmd
}

func newQuizDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a quiz",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.New(apiURL).DeleteQuiz(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("quiz deleted")
			return nil
		},
	}
}

func newQuizAddQuestionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add-question <quizId> <questionId>",
		Short: "Add an existing question to a quiz",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			api := client.New(apiURL)
			if err := api.AddQuestionToQuiz(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			return refetchQuiz(cmd.Context(), api, args[0])
		},
	}
}

func newQuizRemoveQuestionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove-question <quizId> <questionId>",
		Short: "Remove a question from a quiz",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			api := client.New(apiURL)
			if err := api.RemoveQuestionFromQuiz(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			return refetchQuiz(cmd.Context(), api, args[0])
		},
	}
}

// refetchQuiz reloads and prints the quiz after a membership change.
func refetchQuiz(ctx context.Context, api *client.Client, id string) error {
	quiz, err := api.GetQuiz(ctx, id)
	if err != nil {
		return err
	}
	printQuiz(quiz)
	return nil
}

func printQuiz(quiz *client.Quiz) {
	fmt.Printf("%s\n%s\n", quiz.Title, quiz.ID)
	if quiz.Description != "" {
		fmt.Println(quiz.Description)
	}
	for i, q := range quiz.Questions {
		fmt.Printf("  %d. %s (%s)\n", i+1, q.Question, q.ID)
	}
}
