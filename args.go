package main

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func ParseArgs() Args {
	// server config
	pflag.String("server-addr", "0.0.0.0:8080", "")

	// db config
	pflag.String("db-user", "", "")
	pflag.String("db-password", "", "")
	pflag.String("db-host", "", "")
	pflag.Int("db-port", 5432, "")
	pflag.String("db-database", "", "")
	pflag.String("db-sslmode", "disable", "")

	// auth config
	pflag.String("jwt-secret", "", "")

	// seed an admin user on first boot
	pflag.String("admin-id", "", "")
	pflag.String("admin-email", "", "")

	// bind pflag to viper
	pflag.Parse()
	viper.BindPFlags(pflag.CommandLine)
	viper.AutomaticEnv()
	viper.SetEnvPrefix("AUCTION")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	return Args{
		ServerAddr: viper.GetString("server-addr"),
		DB: DBConfig{
			User:     viper.GetString("db-user"),
			Password: viper.GetString("db-password"),
			Host:     viper.GetString("db-host"),
			Port:     viper.GetInt("db-port"),
			Database: viper.GetString("db-database"),
			SSLMode:  viper.GetString("db-sslmode"),
		},
		JWTSecret:  viper.GetString("jwt-secret"),
		AdminID:    viper.GetString("admin-id"),
		AdminEmail: viper.GetString("admin-email"),
	}
}

type DBConfig struct {
	User     string
	Password string
	Host     string
	Port     int
	Database string
	SSLMode  string
}

type Args struct {
	ServerAddr string
	DB         DBConfig
	JWTSecret  string
	AdminID    string
	AdminEmail string
}

func (args Args) Validate() bool {
	return args.ServerAddr != "" && args.JWTSecret != "" && args.DB.Host != "" && args.DB.Database != ""
}
