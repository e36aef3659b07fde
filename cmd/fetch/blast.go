package fetch

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/David-OConnor/bio-apis/pkg/repo"
	"github.com/David-OConnor/bio-apis/pkg/repo/ncbi"
)

func NewBlast() *cobra.Command {
	root := &cobra.Command{
		Use:          "blast",
		Long:         "Submit and poll NCBI BLAST searches",
		SilenceUsage: true,
	}

	var client repo.Ncbi
	root.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		client = ncbi.New()
	}

	var program, database string
	submit := &cobra.Command{
		Use:   "submit <sequence>",
		Short: "Submit a search; prints the RID to poll with",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := client.Submit(cmd.Context(), &repo.BlastParams{
				Program:  repo.BlastProgram(program),
				Database: database,
				Sequence: args[0],
			})
			if err != nil {
				return err
			}
			fmt.Printf("RID: %s (estimated %ds)\n", job.RID, job.EstimatedSeconds)
			return nil
		},
	}
	submit.Flags().StringVar(&program, "program", string(repo.BlastP), "blast program (blastn, blastp, blastx, tblastn, tblastx)")
	submit.Flags().StringVar(&database, "db", "nr", "target database")
	root.AddCommand(submit)

	root.AddCommand(&cobra.Command{
		Use:   "poll <rid>",
		Short: "Report a job's current status; prints the result when done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := client.Poll(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if status.State != repo.BlastDone {
				fmt.Println(status.State)
				return nil
			}
			fmt.Print(status.Payload)
			return nil
		},
	})

	var format string
	results := &cobra.Command{
		Use:   "results <rid>",
		Short: "Fetch a finished job's report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := client.Results(cmd.Context(), args[0], repo.BlastFormat(format))
			if err != nil {
				return err
			}
			fmt.Print(out)
			return nil
		},
	}
	results.Flags().StringVar(&format, "format", string(repo.BlastFormatText), "report format (Text, XML, Tabular)")
	root.AddCommand(results)

	root.AddCommand(&cobra.Command{
		Use:   "open <rid>",
		Short: "Open the job's web results page in the browser",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return client.OpenResults(cmd.Context(), args[0])
		},
	})

	return root
}
