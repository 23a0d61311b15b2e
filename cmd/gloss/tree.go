package main

import (
	"errors"
	"fmt"

	"github.com/dkoosis/gloss/pkg/style"
	"github.com/dkoosis/gloss/pkg/tree"
	"github.com/spf13/cobra"
)

func newTreeCmd(a *app) *cobra.Command {
	var (
		root       string
		enumerator string
	)

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Draw an indented outline from stdin as a tree",
		Long: `Draw an indented outline from stdin as a tree. Each level is indented two
spaces further than its parent.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var enum tree.Enumerator
			switch enumerator {
			case "default", "":
				enum = tree.DefaultEnumerator
			case "rounded":
				enum = tree.RoundedEnumerator
			default:
				return fmt.Errorf("unknown tree enumerator %q", enumerator)
			}

			nodes, err := parseOutline(cmd.InOrStdin())
			if err != nil {
				return err
			}
			if len(nodes) == 0 && root == "" {
				return errors.New("empty outline")
			}

			th := a.cfg.Theme
			t := tree.Root(root).
				Enumerator(enum).
				EnumeratorStyle(a.style(style.NewStyle().Foreground(th.Colors.Subtle).PaddingRight(1))).
				IndenterStyle(a.style(style.NewStyle().Foreground(th.Colors.Subtle))).
				RootStyle(a.style(th.Styles.Header)).
				ItemStyle(a.style(th.Styles.TextNormal))
			for _, n := range nodes {
				t.Child(n.treeChild())
			}
			a.log.Debug().Int("top_level", len(nodes)).Msg("rendering tree")

			fmt.Fprintln(cmd.OutOrStdout(), t)
			return nil
		},
	}

	cmd.Flags().StringVar(&root, "root", "", "Root label drawn above the tree")
	cmd.Flags().StringVar(&enumerator, "enumerator", "default", "Branch style: default, rounded")
	return cmd
}
