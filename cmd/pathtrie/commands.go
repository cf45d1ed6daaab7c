package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"

	"github.com/aglyzov/go-pathtrie/pathtrie"

	"github.com/urfave/cli/v2"
)

var cmdTree = &cli.Command{
	Name:      "tree",
	Usage:     "prints the (sub)tree with its values",
	ArgsUsage: `[path]`,
	Action:    runTree,
}

var cmdFetch = &cli.Command{
	Name:      "fetch",
	Usage:     "prints the values stored at a path",
	ArgsUsage: `<path>`,
	Action:    runFetch,
}

var cmdItems = &cli.Command{
	Name:      "items",
	Usage:     "prints every value of the (sub)tree",
	ArgsUsage: `[path]`,
	Action:    runItems,
}

var cmdList = &cli.Command{
	Name:      "ls",
	Usage:     "lists the direct children of a node",
	ArgsUsage: `[path]`,
	Action:    runList,
}

var cmdCount = &cli.Command{
	Name:      "count",
	Usage:     "prints the number of values in the (sub)tree",
	ArgsUsage: `[path]`,
	Action:    runCount,
}

func loadTrie(cctx *cli.Context) (*pathtrie.Trie[any], error) {
	path := cctx.String("manifest")

	f, err := getFileOrStdin(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := parseManifest(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if delim := cctx.String("delimiter"); delim != "" {
		m.Delimiter = delim
	}

	slog.Debug("loaded manifest", "path", path, "entries", len(m.Entries), "delimiter", m.Delimiter)
	return m.Build(slog.Default()), nil
}

// lookupNode loads the trie and resolves the optional path argument.
func lookupNode(cctx *cli.Context) (*pathtrie.Trie[any], error) {
	tr, err := loadTrie(cctx)
	if err != nil {
		return nil, err
	}
	path := cctx.Args().First()
	node := tr.NodeForRef(path)
	if node == nil {
		return nil, fmt.Errorf("node not found: %q", path)
	}
	return node, nil
}

func printResult(cctx *cli.Context, v any) error {
	out := cctx.App.Writer
	if cctx.Bool("json") {
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(b))
		return nil
	}
	if vals, ok := v.([]any); ok {
		for _, val := range vals {
			fmt.Fprintln(out, val)
		}
		return nil
	}
	if keys, ok := v.([]string); ok {
		for _, key := range keys {
			fmt.Fprintln(out, key)
		}
		return nil
	}
	fmt.Fprintln(out, v)
	return nil
}

func runTree(cctx *cli.Context) error {
	node, err := lookupNode(cctx)
	if err != nil {
		return err
	}
	if cctx.Bool("json") {
		return printResult(cctx, treeJSON(node))
	}
	fmt.Fprint(cctx.App.Writer, node.String())
	return nil
}

func runFetch(cctx *cli.Context) error {
	if cctx.Args().Len() != 1 {
		return fmt.Errorf("expected a single path argument")
	}
	tr, err := loadTrie(cctx)
	if err != nil {
		return err
	}
	return printResult(cctx, tr.Fetch(cctx.Args().First()))
}

func runItems(cctx *cli.Context) error {
	node, err := lookupNode(cctx)
	if err != nil {
		return err
	}
	return printResult(cctx, node.Items())
}

func runList(cctx *cli.Context) error {
	node, err := lookupNode(cctx)
	if err != nil {
		return err
	}
	keys := node.Enumerate()
	sort.Strings(keys)
	return printResult(cctx, keys)
}

func runCount(cctx *cli.Context) error {
	node, err := lookupNode(cctx)
	if err != nil {
		return err
	}
	return printResult(cctx, node.Len())
}

// treeJSON flattens a subtree into a path to values map. Nodes without values
// are left out.
func treeJSON(node *pathtrie.Trie[any]) map[string][]any {
	out := make(map[string][]any)
	node.Walk(func(path string, n *pathtrie.Trie[any]) bool {
		if vals := n.Values(); len(vals) > 0 {
			out[path] = vals
		}
		return true
	})
	return out
}
