package cmd

import (
	"fmt"
	"log"

	"db-shift/internal/flush"

	"github.com/spf13/cobra"
)

var planCascade bool

var planCmd = &cobra.Command{
	Use:   "plan [tables...]",
	Short: "Print the flush statement sequence for the given tables",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, d, config, err := openActive()
		if err != nil {
			return err
		}
		defer db.Close()

		log.Printf("Using Dialect: %s\n", d.Vendor())

		p := &flush.Planner{DB: db, Dialect: d, Schema: config.Schema}
		stmts, err := p.Plan(cmd.Context(), args, planCascade)
		if err != nil {
			return err
		}

		for _, s := range stmts {
			fmt.Println(s)
		}
		return nil
	},
}

func init() {
	planCmd.Flags().BoolVar(&planCascade, "cascade", false, "delete from referencing tables instead of dropping constraints")
	RootCmd.AddCommand(planCmd)
}
