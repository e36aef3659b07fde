package fetch

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/David-OConnor/bio-apis/pkg/repo"
	"github.com/David-OConnor/bio-apis/pkg/repo/pubchem"
)

func NewPubChem() *cobra.Command {
	root := &cobra.Command{
		Use:          "pubchem",
		Long:         "Query the PubChem PUG-REST API",
		SilenceUsage: true,
	}

	var client repo.PubChem
	root.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		client = pubchem.New()
	}

	root.AddCommand(&cobra.Command{
		Use:   "info <name>",
		Short: "Resolve a compound by name or CAS number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := client.GetCompoundByName(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(info)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "sdf <cid>",
		Short: "Download a compound's 3D conformer SDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cid, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf("cid must be numeric: %w", err)
			}
			sdf, err := client.LoadSDF(cmd.Context(), uint32(cid))
			if err != nil {
				return err
			}
			fmt.Print(sdf)
			return nil
		},
	})

	similar := &cobra.Command{
		Use:   "similar <smiles>",
		Short: "Find CIDs of compounds similar to a SMILES structure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := repo.NewPubChemStructSearch(
				repo.StructSearchSimilarity, repo.NamespaceSMILES, args[0],
				repo.OperationCIDs, repo.FormatJSON)
			if err != nil {
				return err
			}
			body, err := client.Fetch(cmd.Context(), q)
			if err != nil {
				return err
			}
			fmt.Println(string(body))
			return nil
		},
	}
	root.AddCommand(similar)

	root.AddCommand(&cobra.Command{
		Use:   "open <cid>",
		Short: "Open the compound's overview page in the browser",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cid, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf("cid must be numeric: %w", err)
			}
			return client.OpenOverview(cmd.Context(), uint32(cid))
		},
	})

	return root
}
