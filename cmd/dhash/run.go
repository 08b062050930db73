package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/theflywheel/dhash"
)

func newRunCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "run [script]",
		Short: "Execute insert/search/delete/stats commands, one per line",
		Long: `Execute table commands read from a script file, or stdin when no file is given.

  insert <key> <value>
  search <key>
  delete <key>
  stats

Blank lines and lines starting with # are ignored.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return errors.Wrap(err, "open script")
				}
				defer f.Close()
				in = f
			}

			table, logger, err := flags.newTable(cmd)
			if err != nil {
				return err
			}
			defer func() {
				table.Destroy()
				_ = logger.Sync()
			}()

			return runScript(table, in, cmd.OutOrStdout())
		},
	}
}

// runScript executes every command in r against table and writes one result
// line per command to w. Command errors are reported inline; only I/O errors
// stop the script.
func runScript(table *dhash.Table, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		out, err := execLine(table, strings.Fields(line))
		if err != nil {
			out = fmt.Sprintf("ERR line %d: %v", lineNo, err)
		}
		if _, err := fmt.Fprintln(w, out); err != nil {
			return errors.Wrap(err, "write result")
		}
	}
	return errors.Wrap(scanner.Err(), "read script")
}

func execLine(table *dhash.Table, fields []string) (string, error) {
	switch cmd, args := fields[0], fields[1:]; cmd {
	case "insert":
		if len(args) < 2 {
			return "", errors.New("usage: insert <key> <value>")
		}
		if err := table.Insert(args[0], strings.Join(args[1:], " ")); err != nil {
			return "", err
		}
		return "OK", nil
	case "search":
		if len(args) != 1 {
			return "", errors.New("usage: search <key>")
		}
		if v, ok := table.Search(args[0]); ok {
			return v, nil
		}
		return "(not found)", nil
	case "delete":
		if len(args) != 1 {
			return "", errors.New("usage: delete <key>")
		}
		table.Delete(args[0])
		return "OK", nil
	case "stats":
		st := table.Stats()
		return fmt.Sprintf("capacity=%d count=%d tombstones=%d load=%.2f",
			st.Capacity, st.Count, st.Tombstones, st.LoadFactor), nil
	default:
		return "", errors.Newf("unknown command %q", cmd)
	}
}
