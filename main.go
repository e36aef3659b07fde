package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/David-OConnor/bio-apis/cmd/fetch"
	"github.com/David-OConnor/bio-apis/internal/config"
	"github.com/David-OConnor/bio-apis/pkg/middleware/logger"
	"github.com/David-OConnor/bio-apis/pkg/utils"
)

func main() {
	rootCtx := utils.SetupSignalContext()
	root := &cobra.Command{
		SilenceUsage:      true,
		Short:             "bioapis",
		Long:              "bioapis - typed clients for public biology and chemistry HTTP APIs",
		PersistentPreRunE: initGlobalResource,
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
		PersistentPostRunE: cleanGlobalResource,
	}
	root.SetContext(rootCtx)
	root.AddCommand(fetch.NewRcsb())
	root.AddCommand(fetch.NewPubChem())
	root.AddCommand(fetch.NewSDF())
	root.AddCommand(fetch.NewBlast())
	root.AddCommand(fetch.NewGeostd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func initGlobalResource(_ *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found - using environment variables")
	}

	v := viper.NewWithOptions(viper.ExperimentalBindStruct())
	v.AutomaticEnv()

	conf := config.Global()
	if err := v.Unmarshal(conf); err != nil {
		log.Fatal(err)
	}

	logger.Init(&logger.LogConfig{
		Path:     conf.Log.LogPath,
		LogLevel: conf.Log.LogLevel,
		Console:  conf.Log.Console,
	})

	return nil
}

func cleanGlobalResource(_ *cobra.Command, _ []string) error {
	logger.Close()
	return nil
}
