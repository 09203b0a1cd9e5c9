package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mwhite7112/cityform/internal/db"
)

var enquiriesLimit int32

var enquiriesCmd = &cobra.Command{
	Use:   "enquiries",
	Short: "List the most recent stored enquiries",
	RunE: func(cmd *cobra.Command, args []string) error {
		sqlDB, err := openDB()
		if err != nil {
			return err
		}
		defer sqlDB.Close()

		items, err := db.New(sqlDB).ListRecentEnquiries(cmd.Context(), enquiriesLimit)
		if err != nil {
			return fmt.Errorf("list enquiries: %w", err)
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "RECEIVED\tNAME\tCITY\tEVENT")
		for _, e := range items {
			event := e.EventType
			if e.OtherEvent != "" {
				event += " (" + e.OtherEvent + ")"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.CreatedAt.Format("2006-01-02 15:04"), e.Name, e.City, event)
		}
		return tw.Flush()
	},
}

func init() {
	enquiriesCmd.Flags().Int32Var(&enquiriesLimit, "limit", 20, "number of enquiries to show")
}
