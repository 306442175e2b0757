package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/vexyart/stripprefix/internal/site"
)

// NavCmd implements the 'nav' command.
type NavCmd struct {
	Format string `short:"f" enum:"text,json" default:"text" help:"Output format (text or json)"`
}

func (n *NavCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.loadConfig(g)
	if err != nil {
		return err
	}
	h, err := newHost(cfg, g.Logger, overrides{})
	if err != nil {
		return err
	}
	res, err := h.run(context.Background())
	if err != nil {
		return err
	}
	if n.Format == "json" {
		return writeJSON(g.Stdout, navNodes(res.Nav.Items))
	}
	return writeNavText(g.Stdout, res.Nav)
}

type navNode struct {
	Title    string    `json:"title"`
	URL      string    `json:"url,omitempty"`
	Children []navNode `json:"children,omitempty"`
}

func navNodes(items []site.NavItem) []navNode {
	nodes := make([]navNode, 0, len(items))
	for _, item := range items {
		title, _ := item.Title()
		node := navNode{Title: title, URL: navURL(item), Children: navNodes(item.Children())}
		if len(node.Children) == 0 {
			node.Children = nil
		}
		nodes = append(nodes, node)
	}
	return nodes
}

func navURL(item site.NavItem) string {
	switch it := item.(type) {
	case *site.Page:
		return "/" + it.File.URL()
	case *site.Link:
		return it.Target
	default:
		return ""
	}
}

func writeNavText(w io.Writer, nav *site.Nav) error {
	var sb strings.Builder
	nav.Walk(func(item site.NavItem, depth int) {
		title, ok := item.Title()
		if !ok {
			title = "(untitled)"
		}
		sb.WriteString(strings.Repeat("  ", depth))
		sb.WriteString("- ")
		sb.WriteString(title)
		if url := navURL(item); url != "" {
			fmt.Fprintf(&sb, " (%s)", url)
		}
		sb.WriteByte('\n')
	})
	_, err := io.WriteString(w, sb.String())
	return err
}
