package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"ai-studybuddy-be/pkg/studyclient"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newQuizCmd() *cobra.Command {
	var topic string
	var difficulty string
	var numQuestions int

	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Take an interactive quiz on the uploaded materials",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newAPIClient()
			manager := newSessionManager(client)
			id, err := requireSession(manager)
			if err != nil {
				return err
			}

			flow := studyclient.NewQuizFlow(client, id)
			quiz, err := flow.Generate(cmd.Context(), topic, difficulty, numQuestions)
			if err != nil {
				return err
			}
			if quiz.Warning != "" {
				color.Yellow("Note: %s", quiz.Warning)
			}
			questions := flow.Questions()
			if len(questions) == 0 {
				return fmt.Errorf("no questions could be generated, upload more material first")
			}

			reader := bufio.NewReader(os.Stdin)
			for i, q := range questions {
				fmt.Printf("\n%d) %s\n", i+1, q.Question)
				for j, opt := range q.Options {
					fmt.Printf("   %c. %s\n", 'a'+j, opt)
				}

				for {
					fmt.Print("Your answer: ")
					line, err := reader.ReadString('\n')
					if err != nil {
						return err
					}
					choice, ok := parseChoice(strings.TrimSpace(line), q.Options)
					if !ok {
						fmt.Println("Pick one of the listed options.")
						continue
					}
					if err := flow.Select(i, choice); err != nil {
						return err
					}
					break
				}
			}

			analysis, err := flow.Submit(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Println()
			printAnalysis(analysis, flow.Results())
			return nil
		},
	}

	cmd.Flags().StringVar(&topic, "topic", "", "narrow the quiz to one topic")
	cmd.Flags().StringVar(&difficulty, "difficulty", "medium", "easy, medium or hard")
	cmd.Flags().IntVar(&numQuestions, "num", 5, "number of questions")
	return cmd
}

// parseChoice accepts a letter (a, b, ...), a 1-based number, or the full
// option text.
func parseChoice(input string, options []string) (string, bool) {
	if input == "" {
		return "", false
	}

	if len(input) == 1 {
		idx := int(strings.ToLower(input)[0] - 'a')
		if idx >= 0 && idx < len(options) {
			return options[idx], true
		}
	}
	if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(options) {
		return options[n-1], true
	}
	for _, opt := range options {
		if strings.EqualFold(opt, input) {
			return opt, true
		}
	}
	return "", false
}

func printAnalysis(analysis *studyclient.QuizAnalysis, results []studyclient.QuizResult) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"#", "Topic", "Your Answer", "Correct"})
	for i, r := range results {
		mark := color.GreenString("✓")
		if !r.IsCorrect {
			mark = color.RedString("✗ " + r.CorrectAnswer)
		}
		t.AppendRow(table.Row{i + 1, r.Topic, r.SelectedValue, mark})
	}
	t.Render()

	fmt.Println()
	color.Cyan("Score: %d/%d (%.0f%%)", analysis.Score, analysis.Total, analysis.Percentage)
	if len(analysis.WeakTopics) > 0 {
		fmt.Println("Topics to review:", strings.Join(analysis.WeakTopics, ", "))
	}
	fmt.Println(analysis.Recommendation)
}
