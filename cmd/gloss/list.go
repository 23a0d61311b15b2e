package main

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/dkoosis/gloss/pkg/list"
	"github.com/dkoosis/gloss/pkg/style"
	"github.com/spf13/cobra"
)

var listEnumerators = map[string]list.Enumerator{
	"bullet":   list.Bullet,
	"arabic":   list.Arabic,
	"alphabet": list.Alphabet,
	"roman":    list.Roman,
	"dash":     list.Dash,
	"asterisk": list.Asterisk,
}

func listEnumeratorNames() []string {
	names := make([]string, 0, len(listEnumerators))
	for k := range listEnumerators {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}

func newListCmd(a *app) *cobra.Command {
	var enumerator string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Draw an indented outline from stdin as an enumerated list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			enum, ok := listEnumerators[strings.ToLower(enumerator)]
			if !ok {
				return fmt.Errorf("unknown list enumerator %q (want one of %s)",
					enumerator, strings.Join(listEnumeratorNames(), ", "))
			}

			nodes, err := parseOutline(cmd.InOrStdin())
			if err != nil {
				return err
			}
			if len(nodes) == 0 {
				return errors.New("empty outline")
			}

			th := a.cfg.Theme
			enumStyle := a.style(style.NewStyle().Foreground(th.Colors.Primary).PaddingRight(1))
			itemStyle := a.style(th.Styles.TextNormal)
			newList := func() *list.List {
				return list.New().
					Enumerator(enum).
					EnumeratorStyle(enumStyle).
					ItemStyle(itemStyle)
			}

			l := newList()
			for _, n := range nodes {
				n.appendTo(l, newList)
			}
			fmt.Fprintln(cmd.OutOrStdout(), l)
			return nil
		},
	}

	cmd.Flags().StringVar(&enumerator, "enumerator", "bullet",
		"Enumerator: "+strings.Join(listEnumeratorNames(), ", "))
	return cmd
}
