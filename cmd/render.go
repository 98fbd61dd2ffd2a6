package cmd

import (
	"fmt"
	"strconv"

	"db-shift/internal/dialect"

	"github.com/spf13/cobra"
)

// render prints translated fragments without touching a database; handy
// for eyeballing what the translators emit.
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print translated SQL fragments",
}

// renderSession pulls session options from the active config when one
// exists, falling back to defaults so render works without a config file.
func renderSession() dialect.Session {
	if config, err := GetActiveDBConfig(); err == nil {
		return config.Session()
	}
	return dialect.DefaultSession()
}

var renderTruncCmd = &cobra.Command{
	Use:   "trunc [unit] [field]",
	Short: "Truncate a timestamp field to a calendar unit",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ms := &dialect.MSSQLDialect{}
		sql, err := ms.DateTruncSQL(args[0], args[1], renderSession())
		if err != nil {
			return err
		}
		fmt.Println(sql)
		return nil
	},
}

var renderPaginateCmd = &cobra.Command{
	Use:   "paginate [low] [high]",
	Short: "Emit an OFFSET/FETCH pagination fragment",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		low, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid low mark %q: %w", args[0], err)
		}
		var high *int64
		if len(args) == 2 {
			h, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid high mark %q: %w", args[1], err)
			}
			high = &h
		}
		ms := &dialect.MSSQLDialect{}
		fmt.Println(ms.LimitOffsetSQL(low, high))
		return nil
	},
}

var renderPatternCmd = &cobra.Command{
	Use:   "pattern [lookup] [operand]",
	Short: "Emit a LIKE-based pattern match fragment",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ms := &dialect.MSSQLDialect{}
		sql, err := ms.PatternMatchSQL(args[0], ms.PatternEscapeSQL(args[1]))
		if err != nil {
			return err
		}
		fmt.Println(sql)
		return nil
	},
}

func init() {
	renderCmd.AddCommand(renderTruncCmd)
	renderCmd.AddCommand(renderPaginateCmd)
	renderCmd.AddCommand(renderPatternCmd)
	RootCmd.AddCommand(renderCmd)
}
