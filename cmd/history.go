package cmd

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"bucket-manager/feature/journal"

	"github.com/spf13/cobra"
)

var (
	historyBucketFlag string
	historyLimitFlag  int
)

// historyCmd prints the transfer journal.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent uploads, downloads and deletes",
	Long:  `Reads the transfer journal. Requires DATABASE_ENABLED=true and a reachable database.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		if a.journal == nil {
			return errors.New("transfer journal is not enabled")
		}

		records, err := a.journal.Recent(cmd.Context(), historyBucketFlag, historyLimitFlag)
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "TIME\tOPERATION\tBUCKET\tKEY\tSIZE\tERROR")
		for _, r := range records {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\n",
				r.CreatedAt.Format(time.RFC3339), r.Operation, r.Bucket, r.Key, r.Size, r.Error)
		}
		return tw.Flush()
	},
}

func init() {
	historyCmd.Flags().StringVarP(&historyBucketFlag, "bucket", "b", "", "Only show transfers of this bucket")
	historyCmd.Flags().IntVarP(&historyLimitFlag, "limit", "n", journal.DefaultLimit, "Number of records")
	RootCmd.AddCommand(historyCmd)
}
