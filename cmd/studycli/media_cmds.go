package main

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"

	"ai-studybuddy-be/pkg/studyclient"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newPaperCmd() *cobra.Command {
	var subject string
	var referencePath string
	var out string

	cmd := &cobra.Command{
		Use:   "paper",
		Short: "Generate a sample exam paper (Pro) and save it as .docx",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newAPIClient()
			manager := newSessionManager(client)
			id, err := requireSession(manager)
			if err != nil {
				return err
			}

			var reference *studyclient.File
			if referencePath != "" {
				content, err := os.ReadFile(referencePath)
				if err != nil {
					return err
				}
				reference = &studyclient.File{
					Name:    filepath.Base(referencePath),
					Content: content,
				}
			}

			res, err := client.GeneratePaper(cmd.Context(), id, subject, reference)
			if err != nil {
				return err
			}
			paper := &res.Paper
			color.Green("Generated: %s (%d marks, %d min)", paper.ExamName, paper.TotalMarks, paper.DurationMins)
			for _, s := range paper.Sections {
				fmt.Printf(" - %s: %d question(s), %d marks\n", s.Title, len(s.Questions), s.Marks)
			}

			// The paper is already in hand; a failed download only needs
			// this call retried, not a regeneration.
			if err := client.DownloadPaper(cmd.Context(), paper, out); err != nil {
				return fmt.Errorf("paper generated but download failed: %w", err)
			}
			fmt.Println("Saved to", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "subject hint for the paper")
	cmd.Flags().StringVar(&referencePath, "file", "", "past exam paper whose structure the generated paper copies")
	cmd.Flags().StringVar(&out, "out", "sample_paper.docx", "output file")
	return cmd
}

func newSlidesCmd() *cobra.Command {
	var topic string
	var numSlides int
	var out string

	cmd := &cobra.Command{
		Use:   "slides",
		Short: "Generate a .pptx slide deck from the materials",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newAPIClient()
			manager := newSessionManager(client)
			id, err := requireSession(manager)
			if err != nil {
				return err
			}

			if err := client.GenerateSlides(cmd.Context(), id, topic, numSlides, out); err != nil {
				return err
			}
			color.Green("Slides saved to %s", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&topic, "topic", "", "topic to focus the deck on")
	cmd.Flags().IntVar(&numSlides, "num", 5, "number of slides")
	cmd.Flags().StringVar(&out, "out", "study_slides.pptx", "output file")
	return cmd
}

func newImageCmd() *cobra.Command {
	var topic string
	var style string
	var fromContext bool
	var out string

	cmd := &cobra.Command{
		Use:   "image",
		Short: "Generate an educational illustration (Pro)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if topic == "" {
				return fmt.Errorf("--topic is required")
			}

			client := newAPIClient()
			manager := newSessionManager(client)
			id, err := requireSession(manager)
			if err != nil {
				return err
			}

			var res *studyclient.GeneratedImage
			if fromContext {
				res, err = client.GenerateImageFromContext(cmd.Context(), id, topic)
			} else {
				res, err = client.GenerateImage(cmd.Context(), topic, style)
			}
			if err != nil {
				return err
			}

			if err := writeBase64File(out, res.ImageData); err != nil {
				return err
			}
			fmt.Println("Prompt:", res.PromptUsed)
			if res.Note != "" {
				fmt.Println(res.Note)
			}
			color.Green("Image saved to %s", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&topic, "topic", "", "concept to illustrate")
	cmd.Flags().StringVar(&style, "style", "", "illustration style (default educational diagram)")
	cmd.Flags().BoolVar(&fromContext, "from-context", false, "ground the image in the uploaded documents")
	cmd.Flags().StringVar(&out, "out", "illustration.png", "output file")
	return cmd
}

func newModelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "Show which AI models the backend is running",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newAPIClient()
			info, err := client.Models(cmd.Context())
			if err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.AppendHeader(table.Row{"Capability", "Provider", "Model"})
			t.AppendRow(table.Row{"Chat", info.LLMProvider, info.LLMModel})
			t.AppendRow(table.Row{"Embeddings", info.EmbeddingProvider, fmt.Sprintf("%s (%d dims)", info.EmbeddingModel, info.EmbeddingDims)})
			if info.ImageModel != "" {
				t.AppendRow(table.Row{"Images", "openai-compatible", info.ImageModel})
			}
			speech := "disabled"
			if info.SpeechEnabled {
				speech = "enabled"
			}
			t.AppendRow(table.Row{"Speech", "openai-compatible", speech})
			t.Render()
			return nil
		},
	}
}

func newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Inspect or upgrade the subscription plan",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "status",
			Short: "Show the current plan",
			RunE: func(cmd *cobra.Command, args []string) error {
				client := newAPIClient()
				status, err := client.PlanStatus(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Printf("Plan: %s (%s)\n", status.Plan, status.Status)
				if status.Entitled {
					color.Green("Pro features unlocked")
				}
				if status.PeriodEnd != nil {
					fmt.Println("Renews/expires:", status.PeriodEnd.Format("2006-01-02"))
				}
				fmt.Println("Pro features:", status.ProFeatures)
				return nil
			},
		},
		&cobra.Command{
			Use:   "upgrade",
			Short: "Create a Pro upgrade checkout",
			RunE: func(cmd *cobra.Command, args []string) error {
				client := newAPIClient()
				res, err := client.UpgradePlan(cmd.Context())
				if err != nil {
					return err
				}
				color.Green("Checkout created: %s", res.OrderId)
				fmt.Println("Pay at:", res.RedirectURL)
				return nil
			},
		},
	)

	return cmd
}

func writeBase64File(path, b64 string) error {
	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return fmt.Errorf("could not decode response payload: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
