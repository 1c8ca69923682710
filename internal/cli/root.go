package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var apiURL string

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	envAPI := os.Getenv("API_URL")
	if envAPI == "" {
		envAPI = "http://localhost:5000"
	}

	cmd := &cobra.Command{
		Use:   "quizapi",
		Short: "Quiz-taking web API with a terminal player and admin client",
	}

	cmd.PersistentFlags().StringVar(&apiURL, "api", envAPI, "base URL of the quiz API")
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newPlayCmd())
	cmd.AddCommand(newQuizCmd())
	cmd.AddCommand(newQuestionCmd())
	return cmd
}
