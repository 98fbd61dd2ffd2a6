package cmd

import (
	"fmt"

	"db-shift/internal/adapter"

	"github.com/spf13/cobra"
)

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Check that the active database is reachable and usable",
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := GetActiveDBConfig()
		if err != nil {
			return err
		}

		conn, err := adapter.Connect(cmd.Context(), config.Params(), nil)
		if err != nil {
			return err
		}
		defer conn.Close()

		ok, err := conn.IsUsable(cmd.Context())
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("database %s is not usable", config.Name)
		}

		fmt.Printf("Database %s (%s) is healthy\n", config.Name, config.Driver)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(probeCmd)
}
