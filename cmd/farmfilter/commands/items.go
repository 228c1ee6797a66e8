package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// ErrAbsent is returned by has --strict when any item is definitely absent.
var ErrAbsent = errors.New("item not in filter")

func newAddCommand(a *app) *cobra.Command {
	var fromStdin bool

	cmd := &cobra.Command{
		Use:   "add FILE [ITEM...]",
		Short: "Add items to a filter file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, items := args[0], args[1:]
			if fromStdin {
				lines, err := readLines(cmd.InOrStdin())
				if err != nil {
					return err
				}
				items = append(items, lines...)
			}

			f, err := a.load(path)
			if err != nil {
				return err
			}
			f.AddStrings(items...)
			if err := a.store.Save(path, f); err != nil {
				return err
			}

			a.log.Debugf("added %d items to %s", len(items), path)
			fmt.Fprintf(cmd.OutOrStdout(), "added %d items\n", len(items))
			return nil
		},
	}

	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "also read items from stdin, one per line")

	return cmd
}

func newHasCommand(a *app) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "has FILE ITEM...",
		Short: "Test items against a filter file",
		Long: `Test items against a filter file.

Each item is printed with true (probably present) or false (definitely absent).`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.load(args[0])
			if err != nil {
				return err
			}

			absent := 0
			out := cmd.OutOrStdout()
			for _, item := range args[1:] {
				ok := f.HasString(item)
				if !ok {
					absent++
				}
				fmt.Fprintf(out, "%s\t%t\n", item, ok)
			}

			if strict && absent > 0 {
				return fmt.Errorf("%w: %d of %d", ErrAbsent, absent, len(args)-1)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "fail if any item is absent")

	return cmd
}

func newClearCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear FILE",
		Short: "Reset every bit of a filter file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.load(args[0])
			if err != nil {
				return err
			}
			f.Clear()
			if err := a.store.Save(args[0], f); err != nil {
				return err
			}

			a.log.Infof("cleared %s", args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "cleared %s\n", args[0])
			return nil
		},
	}
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := sc.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return lines, nil
}
