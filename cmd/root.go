package cmd

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"db-shift/internal/dialect"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var RootCmd = &cobra.Command{
	Use:   "db-shift",
	Short: "A SQL Server dialect adapter toolkit",
	Long: `
  ____  ____    ____  _   _ ___ _____ _____
 |  _ \| __ )  / ___|| | | |_ _|  ___|_   _|
 | | | |  _ \  \___ \| |_| || || |_    | |
 | |_| | |_) |  ___) |  _  || ||  _|   | |
 |____/|____/  |____/|_| |_|___|_|     |_|

DB SHIFT - dialect translation & constraint-aware flush planning
`,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./db-shift.yaml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// 1. Executable Directory (Priority 1)
		ex, err := os.Executable()
		if err == nil {
			exePath := filepath.Dir(ex)
			viper.AddConfigPath(exePath)
		}

		// 2. Current Directory (Priority 2)
		viper.AddConfigPath(".")

		viper.SetConfigName("db-shift")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}

// openActive resolves the active database config and opens a pooled handle
// against it.
func openActive() (*sql.DB, dialect.Dialect, *DBConfig, error) {
	config, err := GetActiveDBConfig()
	if err != nil {
		return nil, nil, nil, err
	}

	d, err := dialect.Get(config.Driver)
	if err != nil {
		return nil, nil, nil, err
	}

	db, err := sql.Open(config.Driver, d.DSN(config.connParams()))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to open db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, nil, nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	return db, d, config, nil
}
