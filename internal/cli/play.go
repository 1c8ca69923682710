package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"quizapi/internal/client"
	"quizapi/internal/player"

	"github.com/spf13/cobra"
)

func newPlayCmd() *cobra.Command {
	var (
		quizID string
		name   string
	)
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Take a quiz in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd.Context(), quizID, name)
		},
	}
	cmd.Flags().StringVar(&quizID, "quiz", "", "take this quiz instead of a random one")
	cmd.Flags().StringVar(&name, "name", "", "player name (prompted when omitted)")
	return cmd
}

func runPlay(ctx context.Context, quizID, name string) error {
	reader := bufio.NewReader(os.Stdin)

	if name == "" {
		fmt.Print("Enter your name: ")
		line, _ := reader.ReadString('\n')
		name = strings.TrimSpace(line)
	}

	api := client.New(apiURL)
	runner := player.New(api, name)
	if err := runner.Start(ctx, quizID); err != nil {
		return fmt.Errorf("error fetching quiz, please check server: %w", err)
	}

	fmt.Printf("\nHi %s, starting quiz!\n", runner.PlayerName())

	for runner.State() != player.StateFinished {
		printQuestion(runner)
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		input := strings.TrimSpace(strings.ToLower(line))

		switch input {
		case "s":
			correct, err := runner.Submit()
			if err != nil {
				fmt.Println(err)
				continue
			}
			if correct {
				fmt.Println("Correct!")
			} else {
				fmt.Println("Wrong. Press c to show the correct answer, n for next.")
			}
		case "c":
			if positions := runner.RevealCorrect(); positions != nil {
				fmt.Printf("Correct answer: option(s) %s\n", joinInts(positions))
			}
		case "n":
			if err := runner.Next(ctx); err != nil && runner.State() != player.StateFinished {
				fmt.Println(err)
			} else if err != nil {
				fmt.Printf("warning: could not submit result: %v\n", err)
			}
		case "q":
			return nil
		default:
			n, err := strconv.Atoi(input)
			if err != nil {
				fmt.Println("Enter an option number, s to submit, c to show answer, n for next, q to quit.")
				continue
			}
			if err := runner.Toggle(n); err != nil {
				fmt.Println(err)
			}
		}
	}

	printSummary(runner)
	return nil
}

func printQuestion(r *player.Runner) {
	q := r.Question()
	fmt.Printf("\n%d. %s\n", r.Index()+1, q.Question)
	if r.MultipleChoice() {
		fmt.Println("(multiple answers, toggle each that applies)")
	}
	selected := r.Selected()
	for i, text := range q.Options {
		mark := " "
		for _, n := range selected {
			if n == i+1 {
				mark = "x"
			}
		}
		fmt.Printf("  [%s] %d) %s\n", mark, i+1, text)
	}
	fmt.Printf("%d of %d questions | s=submit c=show answer n=next q=quit\n", r.Index()+1, r.Total())
}

func printSummary(r *player.Runner) {
	fmt.Printf("\n%s, you scored %d of %d\n\n", r.PlayerName(), r.Score(), r.Total())
	for i, ans := range r.Answers() {
		status := "correct"
		if !ans.IsCorrect {
			status = "wrong"
		}
		fmt.Printf("%d. %s\n   your answer: %s (%s, correct: %s)\n", i+1, ans.Question, ans.UserAnswer, status, ans.Correct)
	}
}

func joinInts(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}
