package fetch

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/David-OConnor/bio-apis/pkg/repo"
	"github.com/David-OConnor/bio-apis/pkg/repo/geostd"
)

func NewGeostd() *cobra.Command {
	root := &cobra.Command{
		Use:          "geostd",
		Long:         "Search and download Amber Geostd ligand templates",
		SilenceUsage: true,
	}

	var client repo.Geostd
	root.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		client = geostd.New()
	}

	root.AddCommand(&cobra.Command{
		Use:   "all",
		Short: "List every molecule in the collection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			items, err := client.AllMols(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(items)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "find <text>",
		Short: "Search molecules by keyword",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := client.FindMols(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(items)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "files <ident>",
		Short: "Download a molecule's Mol2 (plus FRCMOD/Lib when available)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := client.LoadMolFiles(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Print(files.Mol2)
			if files.Frcmod != nil {
				fmt.Print(*files.Frcmod)
			}
			if files.Lib != nil {
				fmt.Print(*files.Lib)
			}
			return nil
		},
	})

	return root
}
