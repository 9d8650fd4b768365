// Copyright 2022 Fiometrics Developers

// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at

// 	http://www.apache.org/licenses/LICENSE-2.0

// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/perftools/fiometrics/pkg/fiometrics"
	"github.com/perftools/fiometrics/pkg/gsheet"
	"github.com/spf13/cobra"
)

var (
	output        string
	worksheet     string
	spreadsheetID string
	credsFile     string
	dryRun        bool

	rootCmd = &cobra.Command{
		Use:   "fiometrics [fio output json filepath]",
		Short: "Extracts metrics from fio JSON output and uploads them to a Google sheet",
		Long: `fiometrics parses the JSON output of an fio run, extracts IOPS,
		bandwidth and latency metrics for each job along with the job
		parameters and start/end times, and appends one row per job to a
		Google sheet.`,
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return Extract(context.Background(), args[0], output)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "Options(json)")
	rootCmd.Flags().StringVarP(&worksheet, "worksheet", "w", fiometrics.DefaultWorksheet, "The worksheet rows are appended to.")
	rootCmd.Flags().StringVarP(&spreadsheetID, "spreadsheet", "s", "", "The ID of the target Google spreadsheet.")
	rootCmd.Flags().StringVarP(&credsFile, "credentials", "c", "", "The path to a service account credentials file.")
	rootCmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "Extract and print rows without writing to the sheet.")
}

// Execute executes the main command
func Execute() error {
	return rootCmd.Execute()
}

// Extract runs the extraction pipeline on the given fio output file.
func Extract(ctx context.Context, filepath, output string) error {
	extractor := &fiometrics.Extractor{}
	if !dryRun {
		if spreadsheetID == "" || credsFile == "" {
			return fmt.Errorf("--spreadsheet and --credentials are required unless --dry-run is set")
		}
		sink, err := gsheet.NewClient(ctx, credsFile, spreadsheetID)
		if err != nil {
			fmt.Println(err.Error())
			return err
		}
		extractor.Sink = sink
	}

	spin := spinner.New(spinner.CharSets[9], 100*time.Millisecond)
	spin.Start()
	records, err := extractor.GetMetrics(filepath, worksheet)
	spin.Stop()
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	if output == "json" {
		jsonRes, _ := json.MarshalIndent(records, "", "    ")
		fmt.Println(string(jsonRes))
		return nil
	}
	fmt.Printf("Extracted %d job(s) from %s\n", len(records), filepath)
	for _, r := range records {
		fmt.Println(r.Print())
	}
	return nil
}
