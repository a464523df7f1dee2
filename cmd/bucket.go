package cmd

import (
	"fmt"

	"bucket-manager/feature/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	bucketFlag    string
	yesFlag       bool
	errorPageFlag string
	checkWebsite  bool
)

// bucketCmd is the parent command for bucket operations.
var bucketCmd = &cobra.Command{
	Use:   "bucket",
	Short: "Create, inspect and delete buckets",
}

var bucketCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a publicly readable bucket",
	Long: `Creates a bucket readable by anyone. The name is lower-cased and stripped of
characters outside [a-z0-9.]; when that changes it you are asked to confirm.
Buckets whose name starts with "www." are also enabled as web sites.

Examples:
  bucket create assets
  bucket create My_Site --yes`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd, store.WithNamePolicy(confirmName(cmd, yesFlag)))
		if err != nil {
			return err
		}

		name, err := a.service.CreateBucket(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), name)
		return nil
	},
}

var bucketDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Empty and delete a bucket",
	Long:  `Deletes every object of the bucket one by one, then the bucket. Not atomic: a failure leaves the bucket partially emptied.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, bucket, err := bucketApp(cmd)
		if err != nil {
			return err
		}
		if !yesFlag && !confirmYes(cmd, fmt.Sprintf("Type 'yes' to delete bucket %s and all of its objects: ", bucket)) {
			a.logger.Warn("Operation cancelled by user. No changes were made.")
			return nil
		}
		return a.service.DeleteBucket(cmd.Context(), bucket)
	},
}

var bucketEmptyCmd = &cobra.Command{
	Use:   "empty",
	Short: "Delete every object of a bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, bucket, err := bucketApp(cmd)
		if err != nil {
			return err
		}
		if !yesFlag && !confirmYes(cmd, fmt.Sprintf("Type 'yes' to delete all objects of %s: ", bucket)) {
			a.logger.Warn("Operation cancelled by user. No changes were made.")
			return nil
		}
		return a.service.EmptyBucket(cmd.Context(), bucket)
	},
}

var bucketExistsCmd = &cobra.Command{
	Use:   "exists",
	Short: "Report whether a bucket exists",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, bucket, err := bucketApp(cmd)
		if err != nil {
			return err
		}
		exists, err := a.service.BucketExists(cmd.Context(), bucket)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), exists)
		return nil
	},
}

var bucketListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all buckets",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		names, err := a.service.ListBuckets(cmd.Context())
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

var bucketLocationCmd = &cobra.Command{
	Use:   "location",
	Short: "Print the region of a bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, bucket, err := bucketApp(cmd)
		if err != nil {
			return err
		}
		location, err := a.service.BucketLocation(cmd.Context(), bucket)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), location)
		return nil
	},
}

var bucketWebsiteCmd = &cobra.Command{
	Use:   "website",
	Short: "Enable website hosting on a bucket",
	Long: `Serves the bucket as a web site with index.html as index document.

Examples:
  bucket website --bucket www.example.com --error-page 404.html
  bucket website --bucket www.example.com --check`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, bucket, err := bucketApp(cmd)
		if err != nil {
			return err
		}

		if checkWebsite {
			enabled, err := a.service.IsWebsiteEnabled(cmd.Context(), bucket)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), enabled)
			return nil
		}

		if err := a.service.EnableWebsite(cmd.Context(), bucket, errorPageFlag); err != nil {
			return err
		}
		a.logger.Info("Website hosting enabled", zap.String("bucket", bucket))
		return nil
	},
}

// bucketApp builds the app and resolves the target bucket.
func bucketApp(cmd *cobra.Command) (*app, string, error) {
	a, err := newApp(cmd)
	if err != nil {
		return nil, "", err
	}
	bucket, err := a.bucketName(bucketFlag)
	if err != nil {
		return nil, "", err
	}
	return a, bucket, nil
}

func init() {
	bucketCmd.PersistentFlags().StringVarP(&bucketFlag, "bucket", "b", "", "Bucket name (defaults to storage.bucket)")

	bucketCreateCmd.Flags().BoolVar(&yesFlag, "yes", false, "Accept a sanitized bucket name without asking")
	bucketDeleteCmd.Flags().BoolVar(&yesFlag, "yes", false, "Auto-confirm destructive actions (non-interactive)")
	bucketEmptyCmd.Flags().BoolVar(&yesFlag, "yes", false, "Auto-confirm destructive actions (non-interactive)")
	bucketWebsiteCmd.Flags().StringVar(&errorPageFlag, "error-page", "", "Key of the error document")
	bucketWebsiteCmd.Flags().BoolVar(&checkWebsite, "check", false, "Only report whether website hosting is enabled")

	bucketCmd.AddCommand(bucketCreateCmd, bucketDeleteCmd, bucketEmptyCmd, bucketExistsCmd,
		bucketListCmd, bucketLocationCmd, bucketWebsiteCmd)
	RootCmd.AddCommand(bucketCmd)
}
