package cmd

import (
	"fmt"
	"log"

	"db-shift/internal/flush"

	"github.com/gosuri/uiprogress"
	"github.com/spf13/cobra"
)

var flushCascade bool

var flushCmd = &cobra.Command{
	Use:   "flush [tables...]",
	Short: "Empty the given tables, satisfying foreign-key constraints",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, d, config, err := openActive()
		if err != nil {
			return err
		}
		defer db.Close()

		fmt.Printf("Connected to %s (%s)\n", config.Name, config.Driver)

		p := &flush.Planner{DB: db, Dialect: d, Schema: config.Schema}
		stmts, err := p.Plan(cmd.Context(), args, flushCascade)
		if err != nil {
			return err
		}
		log.Printf("Planned %d statements\n", len(stmts))

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		defer func() {
			if tx != nil {
				tx.Rollback()
			}
		}()

		uiprogress.Start()
		bar := uiprogress.AddBar(len(stmts)).AppendCompleted().PrependElapsed()
		for _, s := range stmts {
			if _, err := tx.Exec(s); err != nil {
				uiprogress.Stop()
				return fmt.Errorf("failed to execute %q: %w", s, err)
			}
			bar.Incr()
		}
		uiprogress.Stop()

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit flush transaction: %w", err)
		}
		tx = nil

		log.Println("Flush completed successfully!")
		return nil
	},
}

func init() {
	flushCmd.Flags().BoolVar(&flushCascade, "cascade", false, "delete from referencing tables instead of dropping constraints")
	RootCmd.AddCommand(flushCmd)
}
