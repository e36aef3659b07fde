package fetch

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/David-OConnor/bio-apis/pkg/repo"
	"github.com/David-OConnor/bio-apis/pkg/repo/rcsb"
)

func NewRcsb() *cobra.Command {
	root := &cobra.Command{
		Use:          "rcsb",
		Long:         "Query the RCSB PDB data, search, and file APIs",
		SilenceUsage: true,
	}

	var client repo.Rcsb
	root.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		client = rcsb.New()
	}

	root.AddCommand(&cobra.Command{
		Use:   "cif <pdb-id>",
		Short: "Download an entry's mmCIF file and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cif, err := client.LoadCIF(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Print(cif)
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "entry <pdb-id>",
		Short: "Print an entry's modeled data record as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := client.EntryData(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(data)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "files <pdb-id>",
		Short: "Report which auxiliary files the RCSB hosts for an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			avail, err := client.FilesAvailable(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(avail)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "seq <sequence>",
		Short: "Search entries by protein sequence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			matches, err := client.SearchBySequence(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(matches)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "new",
		Short: "Pick a semi-random entry released in the past week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ident, err := client.NewlyReleased(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Println(ident)
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "open <pdb-id>",
		Short: "Open the entry's overview page in the browser",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return client.OpenOverview(cmd.Context(), args[0])
		},
	})

	return root
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
