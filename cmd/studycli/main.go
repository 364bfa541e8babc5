package main

import (
	"fmt"
	"os"

	"ai-studybuddy-be/pkg/studyclient"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	flagServer string
	flagToken  string
	flagState  string
)

func main() {
	root := &cobra.Command{
		Use:           "studycli",
		Short:         "Study buddy from the terminal: upload materials, chat, quiz yourself",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	defaultServer := os.Getenv("STUDYBUDDY_SERVER")
	if defaultServer == "" {
		defaultServer = "http://localhost:8000"
	}

	root.PersistentFlags().StringVar(&flagServer, "server", defaultServer, "backend base URL")
	root.PersistentFlags().StringVar(&flagToken, "token", os.Getenv("STUDYBUDDY_TOKEN"), "bearer token for plan endpoints")
	root.PersistentFlags().StringVar(&flagState, "state", studyclient.DefaultStorePath(), "path of the session state file")

	root.AddCommand(
		newSessionCmd(),
		newUploadCmd(),
		newChatCmd(),
		newQuizCmd(),
		newSummaryCmd(),
		newPaperCmd(),
		newSlidesCmd(),
		newImageCmd(),
		newAskCmd(),
		newModelsCmd(),
		newPlanCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newAPIClient() *studyclient.Client {
	opts := []studyclient.Option{}
	if flagToken != "" {
		opts = append(opts, studyclient.WithToken(flagToken))
	}
	return studyclient.NewClient(flagServer, opts...)
}

func newSessionManager(client *studyclient.Client) *studyclient.SessionManager {
	return studyclient.NewSessionManager(client, studyclient.NewFileStore(flagState))
}

// requireSession resolves the stored session id or fails the command.
func requireSession(manager *studyclient.SessionManager) (uuid.UUID, error) {
	id, err := manager.Current()
	if err != nil {
		return uuid.Nil, fmt.Errorf("no active session, run 'studycli session new' first")
	}
	return id, nil
}
