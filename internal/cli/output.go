package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/rentaride/rentaride/internal/query"
)

// renderList prints rows as a tab-aligned table, or as JSON filtered by a
// JMESPath expression when --query is given.
func renderList(w io.Writer, queryExpr string, rows any, table func(tw *tabwriter.Writer)) error {
	if queryExpr != "" {
		filtered, err := query.Apply(queryExpr, rows)
		if err != nil {
			return err
		}
		return printJSON(w, filtered)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	table(tw)
	return tw.Flush()
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
