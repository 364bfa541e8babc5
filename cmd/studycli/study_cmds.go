package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newChatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat <message>",
		Short: "Ask a question about the uploaded materials",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newAPIClient()
			manager := newSessionManager(client)
			id, err := requireSession(manager)
			if err != nil {
				return err
			}

			res, err := client.Chat(cmd.Context(), id, strings.Join(args, " "))
			if err != nil {
				return err
			}

			fmt.Println(res.Response)
			if len(res.Sources) > 0 {
				fmt.Println()
				color.Cyan("Sources:")
				for _, s := range res.Sources {
					if s.Page > 0 {
						fmt.Printf(" - %s (page %d of %d)\n", s.Source, s.Page, s.Pages)
					} else {
						fmt.Printf(" - %s\n", s.Source)
					}
				}
			}
			return nil
		},
	}
}

func newSummaryCmd() *cobra.Command {
	var summaryType string
	var source string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Summarize the uploaded materials",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newAPIClient()
			manager := newSessionManager(client)
			id, err := requireSession(manager)
			if err != nil {
				return err
			}

			summary, err := client.Summary(cmd.Context(), id, summaryType, source)
			if err != nil {
				return err
			}
			fmt.Println(summary)
			return nil
		},
	}

	cmd.Flags().StringVar(&summaryType, "type", "brief", "summary type: brief or detailed")
	cmd.Flags().StringVar(&source, "source", "", "restrict to one document by name")
	return cmd
}

func newAskCmd() *cobra.Command {
	var language string
	var audioOut string

	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask the AI teacher (Pro), optionally saving the spoken reply",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newAPIClient()
			manager := newSessionManager(client)
			id, err := requireSession(manager)
			if err != nil {
				return err
			}

			turn, err := client.AudioInteract(cmd.Context(), id, strings.Join(args, " "), language, nil, "")
			if err != nil {
				return err
			}

			color.Cyan("Teacher:")
			fmt.Println(turn.AiText)

			if turn.AudioBase64 == "" {
				color.Yellow("(no audio available, text-only reply)")
				return nil
			}
			if audioOut != "" {
				if err := writeBase64File(audioOut, turn.AudioBase64); err != nil {
					return err
				}
				fmt.Println("Audio saved to", audioOut)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&language, "language", "", "reply language (default English)")
	cmd.Flags().StringVar(&audioOut, "audio-out", "", "save the spoken reply as an mp3 file")
	return cmd
}
