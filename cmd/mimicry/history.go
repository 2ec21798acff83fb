package mimicry

import (
	"fmt"
	"os"
	"strconv"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/mimicry/mimicry/internal/audit"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var historyLimit int

func init() {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show runs recorded with --audit",
		Args:  cobra.NoArgs,
		RunE:  runHistory,
	}
	cmd.Flags().IntVar(&historyLimit, "limit", 20, "show at most N runs (0 = all)")

	lookup := &cobra.Command{
		Use:   "lookup FILE",
		Short: "Find the run that produced FILE by its fingerprint",
		Args:  cobra.ExactArgs(1),
		RunE:  runHistoryLookup,
	}
	rm := &cobra.Command{
		Use:   "rm INDEX",
		Short: "Delete a run record (index as shown by history)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("index: %w", err)
			}
			if err := audit.NewAuditLog(flagAuditFile).DeleteRecord(i); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted record", i)
			return nil
		},
	}
	cmd.AddCommand(lookup, rm)
	rootCmd.AddCommand(cmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	recs, err := audit.NewAuditLog(flagAuditFile).LoadHistory()
	if err != nil {
		return err
	}
	if historyLimit > 0 && len(recs) > historyLimit {
		recs = recs[:historyLimit]
	}
	return printRecords(cmd, recs)
}

func runHistoryLookup(cmd *cobra.Command, args []string) error {
	b, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	recs, err := audit.NewAuditLog(flagAuditFile).FindByOutputHash(xxhash.Sum64(b))
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		return fmt.Errorf("no recorded run produced %s", args[0])
	}
	return printRecords(cmd, recs)
}

func printRecords(cmd *cobra.Command, recs []audit.RunRecord) error {
	out := cmd.OutOrStdout()
	if len(recs) == 0 {
		fmt.Fprintln(out, "No runs recorded")
		return nil
	}
	table := tablewriter.NewWriter(out)
	table.Header("#", "Time", "Source", "Preset", "Seed", "Substituted", "Markers", "Output xxhash64")
	for i, r := range recs {
		row := []string{
			strconv.Itoa(i),
			r.Timestamp.Local().Format("2006-01-02 15:04:05"),
			r.Source,
			r.Preset,
			strconv.FormatInt(r.Seed, 10),
			strconv.Itoa(r.Substituted),
			strconv.Itoa(r.Markers),
			r.OutputHash,
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}
