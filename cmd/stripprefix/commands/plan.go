package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/vexyart/stripprefix/internal/stripprefix"
)

const statusUnchanged = "unchanged"

// PlanCmd implements the 'plan' command.
type PlanCmd struct {
	Format          string `short:"f" enum:"text,json" default:"text" help:"Output format (text or json)"`
	DryRun          bool   `name:"dry-run" help:"Force dry_run on, whatever the config says"`
	NoStrict        bool   `name:"no-strict" help:"Warn about collisions instead of failing"`
	MetricsTextfile string `name:"metrics-textfile" help:"Write Prometheus metrics to this file after the run" type:"path"`
}

func (p *PlanCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.loadConfig(g)
	if err != nil {
		return err
	}
	h, err := newHost(cfg, g.Logger, overrides{DryRun: p.DryRun, NoStrict: p.NoStrict})
	if err != nil {
		return err
	}
	return p.plan(context.Background(), g.Stdout, h)
}

// plan runs one pass and prints its report. The report is printed even when
// the pass fails on collisions, so the offending sources are visible.
func (p *PlanCmd) plan(ctx context.Context, w io.Writer, h *host) error {
	res, runErr := h.run(ctx)
	if metricsErr := h.writeMetrics(p.MetricsTextfile); metricsErr != nil && runErr == nil {
		runErr = metricsErr
	}
	if res == nil {
		return runErr
	}

	report := newPlanReport(res, h.core.Options().DryRun)
	var err error
	if p.Format == "json" {
		err = writeJSON(w, report)
	} else {
		err = report.writeText(w)
	}
	if err != nil {
		return err
	}
	return runErr
}

type planEntry struct {
	SrcPath  string `json:"src_path"`
	DestPath string `json:"dest_path"`
	URL      string `json:"url"`
	Status   string `json:"status"`
}

type planReport struct {
	BuildID        string                  `json:"build_id"`
	DryRun         bool                    `json:"dry_run"`
	Pages          []planEntry             `json:"pages"`
	Collisions     []stripprefix.Collision `json:"collisions"`
	LinksRewritten int                     `json:"links_rewritten"`
	TitlesStripped int                     `json:"nav_titles_stripped"`
}

func newPlanReport(res *result, dryRun bool) *planReport {
	byPath := make(map[string]stripprefix.Transformation, len(res.Transformations))
	for _, t := range res.Transformations {
		byPath[t.SrcPath] = t
	}

	report := &planReport{
		BuildID:        res.BuildID,
		DryRun:         dryRun,
		Pages:          []planEntry{},
		Collisions:     res.Collisions,
		LinksRewritten: res.LinksRewritten,
		TitlesStripped: res.TitlesStripped,
	}
	if report.Collisions == nil {
		report.Collisions = []stripprefix.Collision{}
	}
	for _, f := range res.Files.Pages() {
		entry := planEntry{SrcPath: f.SrcPath(), DestPath: f.DestPath(), URL: f.URL(), Status: statusUnchanged}
		if t, ok := byPath[f.SrcPath()]; ok {
			entry.Status = string(t.Status)
			// Dry runs leave the file alone; show what it would get.
			entry.DestPath, entry.URL = t.NewDest, t.NewURL
			if t.Status == stripprefix.StatusSkippedCollision {
				entry.DestPath, entry.URL = t.OldDest, t.OldURL
			}
		}
		report.Pages = append(report.Pages, entry)
	}
	return report
}

func (r *planReport) writeText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SOURCE\tDESTINATION\tURL\tSTATUS")
	stripped := 0
	for _, e := range r.Pages {
		url := e.URL
		if url == "" {
			url = "/"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.SrcPath, e.DestPath, url, e.Status)
		if e.Status != statusUnchanged && e.Status != string(stripprefix.StatusSkippedCollision) {
			stripped++
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	for _, c := range r.Collisions {
		fmt.Fprintf(w, "collision: %s <- %v\n", c.Destination, c.Sources)
	}
	verb := "stripped"
	if r.DryRun {
		verb = "would strip"
	}
	_, err := fmt.Fprintf(w, "%d pages, %s %d, %d collisions, %d links rewritten, %d nav titles stripped\n",
		len(r.Pages), verb, stripped, len(r.Collisions), r.LinksRewritten, r.TitlesStripped)
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
