/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	devConfig "github.com/rolodex-hq/rolodex/dev/config"
	"github.com/rolodex-hq/rolodex/server"
	"github.com/rolodex-hq/rolodex/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const DEFAULT_PORT = 5000

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start a rolodex server",
	Long:  `The rolodex server exposes the contacts API: create, list & delete`,
	Run: func(cmd *cobra.Command, args []string) {
		server.Start(serverConfig(), isDevEnv)
	},
}

var serverConfFile string

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.Flags().StringVar(&serverConfFile, "sconfig", "", "Config for server")
}

func serverConfig() *viper.Viper {
	config = viper.New()
	config.SetDefault("rolodex.listener.port", DEFAULT_PORT)

	if isDevEnv {
		serverConfFile = devConfigFilePath()
	}

	config.AutomaticEnv() // read in environment variables that match

	// Running with defaults alone is fine; the config file is optional.
	if serverConfFile == "" {
		return config
	}

	config.SetConfigFile(serverConfFile)
	if err := config.ReadInConfig(); err != nil {
		log.Panic(fmt.Sprintf("error reading server config file: %v", err))
	}

	return config
}

// devConfigFilePath returns the path to the dev server config,
// writing the sample config there first if none exists.
func devConfigFilePath() string {
	configDir, err := os.Getwd()
	if err != nil {
		log.Panic(err)
	}

	configFilePath := filepath.Join(configDir, "dev", "config", "server.yml")
	if !utils.FileExist(configFilePath) {
		if err := os.WriteFile(configFilePath, []byte(devConfig.SERVER_YML), 0644); err != nil {
			log.Panic(err)
		}
	}

	return configFilePath
}
