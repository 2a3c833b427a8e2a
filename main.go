// @title Idea Board API
// @version 1.0
// @description Submit ideas, vote once per idea, filter and sort the board, and export the current view.
package main

import (
	"errors"
	"strings"

	_ "github.com/alex-pricope/idea-board/docs"

	"github.com/alex-pricope/idea-board/api"
	"github.com/alex-pricope/idea-board/logging"
	"github.com/spf13/viper"
)

func main() {
	logging.BoostrapLogger("debug")

	// Load env
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			logging.Log.Errorf("Failed to read config file: %v", err)
			panic("Failed to read config file: " + err.Error())
		}
		logging.Log.Warn("No config file found, using environment and defaults")
	}

	// Read config
	config := api.ReadConfig()
	logging.BoostrapLogger(config.Level)

	// Start the service (inside the lambda)
	service := api.NewServer(config)
	service.Start()
}
