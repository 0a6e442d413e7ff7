package config

import (
	"suggestbot/model"

	"github.com/spf13/viper"
)

// Cfg is the loaded configuration, populated by LoadConfig.
var Cfg model.Config

func LoadConfig() (err error) {
	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()

	viper.SetDefault("web.addr", ":3000")
	viper.SetDefault("web.site_title", "Suggestion Bot")
	viper.SetDefault("suggestBot.data_dir", "./data")
	viper.SetDefault("suggestBot.brand_color", "#7c3aed")

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&Cfg)
	return
}
