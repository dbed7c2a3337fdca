package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/easyearn/admin-console/models"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	notifyTitle   string
	notifyMessage string
)

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Broadcast a notification to all users",
	Run: func(cmd *cobra.Command, args []string) {

		// Load the config and set up logging
		commonSetUp()

		ctx := log.Logger.WithContext(context.Background())
		service, cleanup := newService(ctx)
		defer cleanup()

		toast, err := service.SendNotification(ctx, models.Notification{
			Title:   notifyTitle,
			Message: notifyMessage,
		})

		fmt.Printf("%s: %s\n", toast.Title, toast.Description)
		if err != nil {
			cleanup()
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(notifyCmd)
	notifyCmd.Flags().StringVar(&notifyTitle, "title", "", "notification title")
	notifyCmd.Flags().StringVar(&notifyMessage, "message", "", "notification message body")
}
