package main

import (
	"fmt"
	"os"
	"path/filepath"

	"ai-studybuddy-be/pkg/studyclient"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage the active study session",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "new",
			Short: "Start a fresh session (replaces any stored one)",
			RunE: func(cmd *cobra.Command, args []string) error {
				client := newAPIClient()
				manager := newSessionManager(client)

				// End the previous session first so orphaned data does
				// not pile up on the server.
				if _, err := manager.Current(); err == nil {
					if _, err := manager.End(cmd.Context()); err != nil {
						return err
					}
				}

				id, err := manager.GetOrCreate(cmd.Context())
				if err != nil {
					return err
				}
				color.Green("Session started: %s", id)
				return nil
			},
		},
		&cobra.Command{
			Use:   "end",
			Short: "Delete the session and all its documents",
			RunE: func(cmd *cobra.Command, args []string) error {
				client := newAPIClient()
				manager := newSessionManager(client)

				res, err := manager.End(cmd.Context())
				if err != nil {
					return err
				}
				color.Yellow("Session %s ended (%d chunks removed)", res.SessionId, res.DeletedChunks)
				return nil
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show the stored session and its documents",
			RunE: func(cmd *cobra.Command, args []string) error {
				client := newAPIClient()
				manager := newSessionManager(client)

				id, err := requireSession(manager)
				if err != nil {
					return err
				}
				fmt.Println("Session:", id)

				docs, err := client.ListDocuments(cmd.Context(), id)
				if err != nil {
					return err
				}
				if len(docs) == 0 {
					fmt.Println("No indexed documents yet.")
					return nil
				}
				for _, d := range docs {
					fmt.Println(" -", d)
				}
				return nil
			},
		},
	)

	return cmd
}

func newUploadCmd() *cobra.Command {
	var youtubeURL string
	var wait bool

	cmd := &cobra.Command{
		Use:   "upload [files...]",
		Short: "Upload study materials and wait for indexing",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && youtubeURL == "" {
				return fmt.Errorf("provide at least one file or --youtube")
			}

			client := newAPIClient()
			manager := newSessionManager(client)
			id, err := manager.GetOrCreate(cmd.Context())
			if err != nil {
				return err
			}

			var files []studyclient.File
			for _, path := range args {
				content, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				files = append(files, studyclient.File{
					Name:    filepath.Base(path),
					Content: content,
				})
			}

			res, err := client.Upload(cmd.Context(), id, files, youtubeURL)
			if err != nil {
				return err
			}
			fmt.Println(res.Message)

			if !wait {
				return nil
			}

			fmt.Println("Waiting for documents to be indexed...")
			poller := studyclient.NewDocumentPoller(client)
			docs, err := poller.WaitForDocuments(cmd.Context(), id)
			if err != nil {
				return err
			}
			color.Green("Indexed %d document(s):", len(docs))
			for _, d := range docs {
				fmt.Println(" -", d)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&youtubeURL, "youtube", "", "YouTube URL to transcribe and index")
	cmd.Flags().BoolVar(&wait, "wait", true, "poll until documents are indexed")
	return cmd
}
