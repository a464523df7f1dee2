package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"bucket-manager/feature/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	objectBucketFlag string
	keyFlag          string
	aclFlag          string
	progressFlag     bool
	outputFlag       string
	prefixFlag       string
	detailsFlag      bool
)

// objectCmd is the parent command for object operations.
var objectCmd = &cobra.Command{
	Use:   "object",
	Short: "Upload, download, list and delete objects",
}

var objectUploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload a local file",
	Long: `Uploads a file and then sets its modification time to the time the object
was stored, so later comparisons see both copies as the same.

Examples:
  object upload site/index.html --bucket www.example.com --key index.html
  object upload backup.zip --progress`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, bucket, err := objectApp(cmd)
		if err != nil {
			return err
		}

		key := keyFlag
		if key == "" {
			key = filepath.ToSlash(filepath.Base(args[0]))
		}

		opts, err := uploadOptions(cmd)
		if err != nil {
			return err
		}

		result, err := a.service.UploadFile(cmd.Context(), bucket, key, args[0], opts...)
		if err != nil && !errors.Is(err, store.ErrTimestampSync) {
			return err
		}
		if err != nil {
			a.logger.Warn("Uploaded, but local timestamp was not updated", zap.Error(err))
		}
		printUpload(cmd, result)
		return nil
	},
}

var objectPutCmd = &cobra.Command{
	Use:   "put <key> [text]",
	Short: "Store text, or standard input, as an object",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, bucket, err := objectApp(cmd)
		if err != nil {
			return err
		}

		opts, err := uploadOptions(cmd)
		if err != nil {
			return err
		}

		var result store.UploadResult
		if len(args) == 2 {
			result, err = a.service.UploadString(cmd.Context(), bucket, args[0], args[1], opts...)
		} else {
			// The service needs the length up front
			data, readErr := io.ReadAll(cmd.InOrStdin())
			if readErr != nil {
				return fmt.Errorf("failed to read standard input: %w", readErr)
			}
			result, err = a.service.UploadStream(cmd.Context(), bucket, args[0], bytes.NewReader(data), int64(len(data)), opts...)
		}
		if err != nil {
			return err
		}
		printUpload(cmd, result)
		return nil
	},
}

var objectDownloadCmd = &cobra.Command{
	Use:   "download <key>",
	Short: "Download an object",
	Long:  `Writes the object to --output, or to standard output when --output is "-" or empty.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, bucket, err := objectApp(cmd)
		if err != nil {
			return err
		}

		rc, err := a.service.DownloadFile(cmd.Context(), bucket, args[0])
		if err != nil {
			return err
		}
		defer rc.Close()

		var w io.Writer = cmd.OutOrStdout()
		if outputFlag != "" && outputFlag != "-" {
			f, err := os.Create(outputFlag)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", outputFlag, err)
			}
			defer f.Close()
			w = f
		}

		n, err := io.Copy(w, rc)
		if err != nil {
			return fmt.Errorf("failed to read %s/%s: %w", bucket, args[0], err)
		}
		a.logger.Debug("Downloaded object", zap.String("bucket", bucket), zap.String("key", args[0]), zap.Int64("bytes", n))
		return nil
	},
}

var objectListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List objects under a prefix",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, bucket, err := objectApp(cmd)
		if err != nil {
			return err
		}

		if !detailsFlag {
			lines, err := a.service.ListObjectsByPrefix(cmd.Context(), bucket, prefixFlag)
			if err != nil {
				return err
			}
			for _, line := range lines {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		}

		summaries, err := a.service.GetAllObjectData(cmd.Context(), bucket, prefixFlag)
		if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "KEY\tSIZE\tLAST MODIFIED\tETAG")
		for _, s := range summaries {
			fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", s.Key, s.Size, s.LastModified.Format(time.RFC3339), s.ETag)
		}
		return tw.Flush()
	},
}

var objectInfoCmd = &cobra.Command{
	Use:   "info <key>",
	Short: "Show the listing entry of one object",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, bucket, err := objectApp(cmd)
		if err != nil {
			return err
		}
		s, err := a.service.GetOneObjectData(cmd.Context(), bucket, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "key:           %s\nsize:          %d\netag:          %s\nlast modified: %s\n",
			s.Key, s.Size, s.ETag, s.LastModified.Format(time.RFC3339))
		return nil
	},
}

var objectURLCmd = &cobra.Command{
	Use:   "url <key>",
	Short: "Print the URL of an object",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, bucket, err := objectApp(cmd)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), a.service.ResourceURL(bucket, args[0]))
		return nil
	},
}

var objectStatusCmd = &cobra.Command{
	Use:   "status <key> <file>",
	Short: "Compare an object with a local file",
	Long: `Prints one of remote-missing, remote-older, same, remote-newer or
local-missing, comparing modification times to the second.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, bucket, err := objectApp(cmd)
		if err != nil {
			return err
		}
		status, err := a.service.Compare(cmd.Context(), bucket, args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), status)
		return nil
	},
}

var objectRemoveCmd = &cobra.Command{
	Use:   "rm <key>",
	Short: "Delete an object",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, bucket, err := objectApp(cmd)
		if err != nil {
			return err
		}
		if err := a.service.DeleteObject(cmd.Context(), bucket, args[0]); err != nil {
			return err
		}
		a.logger.Info("Deleted object", zap.String("bucket", bucket), zap.String("key", args[0]))
		return nil
	},
}

// objectApp builds the app and resolves the target bucket.
func objectApp(cmd *cobra.Command) (*app, string, error) {
	a, err := newApp(cmd)
	if err != nil {
		return nil, "", err
	}
	bucket, err := a.bucketName(objectBucketFlag)
	if err != nil {
		return nil, "", err
	}
	return a, bucket, nil
}

func uploadOptions(cmd *cobra.Command) ([]store.UploadOption, error) {
	var opts []store.UploadOption
	switch acl := store.ACL(aclFlag); acl {
	case "":
	case store.ACLPublicRead, store.ACLPrivate:
		opts = append(opts, store.WithACL(acl))
	default:
		return nil, fmt.Errorf("unsupported acl %q: use %s or %s", aclFlag, store.ACLPublicRead, store.ACLPrivate)
	}
	if progressFlag {
		opts = append(opts, store.WithProgress(progressDots(cmd)))
	}
	return opts, nil
}

func printUpload(cmd *cobra.Command, r store.UploadResult) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s/%s (size = %d, etag = %s, last modified = %s)\n",
		r.Bucket, r.Key, r.Size, r.ETag, r.LastModified.Format(time.RFC3339))
}

func init() {
	objectCmd.PersistentFlags().StringVarP(&objectBucketFlag, "bucket", "b", "", "Bucket name (defaults to storage.bucket)")

	for _, c := range []*cobra.Command{objectUploadCmd, objectPutCmd} {
		c.Flags().StringVar(&aclFlag, "acl", "", "Canned ACL (public-read, private)")
		c.Flags().BoolVar(&progressFlag, "progress", false, "Print upload progress")
	}
	objectUploadCmd.Flags().StringVarP(&keyFlag, "key", "k", "", "Object key (defaults to the file name)")
	objectDownloadCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output file")
	objectListCmd.Flags().StringVarP(&prefixFlag, "prefix", "p", "", "Key prefix")
	objectListCmd.Flags().BoolVarP(&detailsFlag, "details", "l", false, "Show size, time and ETag in columns")

	objectCmd.AddCommand(objectUploadCmd, objectPutCmd, objectDownloadCmd, objectListCmd,
		objectInfoCmd, objectURLCmd, objectStatusCmd, objectRemoveCmd)
	RootCmd.AddCommand(objectCmd)
}
