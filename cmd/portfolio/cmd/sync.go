package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/brightlane-studio/portfolio-backend/internal/imagesync/domain"
	"github.com/brightlane-studio/portfolio-backend/internal/imagesync/drive"
)

var (
	syncFolderID string
	syncAPIKey   string
	syncTimeout  time.Duration
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run one image reconciliation pass",
	Long: `List images in a Google Drive folder and attach matching images to
published projects.

Without an API key the pass authenticates with Google application default
credentials, so private folders shared with the service account work too.

Examples:
  # Use GOOGLE_DRIVE_API_KEY and GOOGLE_DRIVE_FOLDER_ID
  portfolio sync

  # Use application default credentials against a specific folder
  GOOGLE_APPLICATION_CREDENTIALS=sa.json portfolio sync --folder 1AbCdEf`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if syncTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, syncTimeout)
			defer cancel()
		}

		folderID := syncFolderID
		if folderID == "" {
			folderID = cfg.Drive.FolderID
		}
		apiKey := syncAPIKey
		if apiKey == "" {
			apiKey = cfg.Drive.APIKey
		}

		a, err := newApp(ctx, cfg)
		if err != nil {
			return err
		}
		defer a.Close()

		var report *domain.Report
		if apiKey != "" {
			report, err = a.reconciler.Reconcile(ctx, apiKey, folderID)
		} else {
			lister, lerr := drive.NewDefaultCredentialsLister(ctx)
			if lerr != nil {
				return lerr
			}
			report, err = a.reconciler.ReconcileWith(ctx, lister, folderID)
		}
		if err != nil {
			return err
		}

		data, _ := json.MarshalIndent(report, "", "  ")
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func init() {
	syncCmd.Flags().StringVar(&syncFolderID, "folder", "", "Drive folder id (default GOOGLE_DRIVE_FOLDER_ID)")
	syncCmd.Flags().StringVar(&syncAPIKey, "api-key", "", "Drive API key (default GOOGLE_DRIVE_API_KEY)")
	syncCmd.Flags().DurationVar(&syncTimeout, "timeout", 0, "abort the pass after this long (0 waits indefinitely)")
	rootCmd.AddCommand(syncCmd)
}
