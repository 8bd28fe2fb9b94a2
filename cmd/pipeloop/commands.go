package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pipeloop/internal/render"
)

func (a *app) runSolve(cmd *cobra.Command, args []string) error {
	m, err := a.load(args)
	if err != nil {
		return err
	}
	far, err := m.DistanceToFarthestPoint(cmd.Context())
	if err != nil {
		return err
	}
	n, err := m.CountEnclosedCells(cmd.Context())
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "farthest: %d\n", far)
	fmt.Fprintf(out, "enclosed: %d\n", n)
	return nil
}

func (a *app) runRender(cmd *cobra.Command, args []string) error {
	m, err := a.load(args)
	if err != nil {
		return err
	}
	res, err := m.Classify(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), render.Grid(m.Grid(), m.Members(), res.Inside, render.Options{
		Color:   a.cfg.Render.Color,
		Inside:  a.cfg.Render.Inside,
		Outside: a.cfg.Render.Outside,
	}))
	return nil
}

func (a *app) runStats(cmd *cobra.Command, args []string) error {
	m, err := a.load(args)
	if err != nil {
		return err
	}
	g := m.Grid()
	start, _ := g.PipeAt(g.Start)

	members := m.Members()
	junkCells, junkGroups := 0, 0
	for _, comp := range g.Components() {
		if members.Contains(comp[0]) {
			continue
		}
		junkGroups++
		junkCells += len(comp)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "size: %dx%d\n", g.Rows, g.Cols)
	fmt.Fprintf(out, "start: %v %c\n", g.Start, start.Rune())
	fmt.Fprintf(out, "loop: %d\n", members.Len())
	fmt.Fprintf(out, "junk: %d cells in %d groups\n", junkCells, junkGroups)
	return nil
}
