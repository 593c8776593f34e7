// Package report renders an analysis.Result for people and machines.
//
// Vertices are numbered from 1 in every rendering, matching how radios are
// listed in a scenario file.
package report

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/radiomesh/analysis"
)

// Output formats.
const (
	FormatText   = "text"
	FormatStyled = "styled"
	FormatYAML   = "yaml"
)

// ErrUnknownFormat indicates an output format Write does not support.
var ErrUnknownFormat = errors.New("report: unknown format")

// TreeEdge is one spanning-tree link between two radios.
type TreeEdge struct {
	From   int     `yaml:"from"`
	To     int     `yaml:"to"`
	Weight float64 `yaml:"weight"`
}

// Route is the hop path from the source radio to Target.
type Route struct {
	Target    int   `yaml:"target"`
	Path      []int `yaml:"path,flow,omitempty"`
	Hops      int   `yaml:"hops"`
	Reachable bool  `yaml:"reachable"`
}

// Report is the renderable form of an analysis result.
type Report struct {
	Radios          int        `yaml:"radios"`
	Radius          float64    `yaml:"radius"`
	Tree            []TreeEdge `yaml:"tree,omitempty"`
	TreeWeight      float64    `yaml:"tree_weight"`
	TreeError       string     `yaml:"tree_error,omitempty"`
	Source          int        `yaml:"source"`
	Routes          []Route    `yaml:"routes"`
	Diameter        int        `yaml:"diameter"`
	Connected       bool       `yaml:"connected"`
	Clusters        [][]int    `yaml:"clusters,flow"`
	ChromaticNumber int        `yaml:"chromatic_number"`
	Colors          []int      `yaml:"colors,flow"`
}

// FromResult converts res to a Report, shifting every vertex to 1-based numbering.
func FromResult(res *analysis.Result) Report {
	r := Report{
		Radios:          res.Radios,
		Radius:          res.Radius,
		TreeWeight:      res.TreeWeight,
		Source:          res.Source + 1,
		Diameter:        res.Diameter,
		Connected:       res.Connected,
		ChromaticNumber: res.ChromaticNumber(),
		Colors:          res.Coloring.Colors,
	}
	for _, c := range res.Clusters {
		cluster := make([]int, len(c))
		for i, v := range c {
			cluster[i] = v + 1
		}
		r.Clusters = append(r.Clusters, cluster)
	}
	if res.TreeErr != nil {
		r.TreeError = res.TreeErr.Error()
	}
	for _, e := range res.Tree {
		r.Tree = append(r.Tree, TreeEdge{From: e.From + 1, To: e.To + 1, Weight: e.Weight})
	}
	r.Routes = make([]Route, 0, len(res.Routes))
	for _, rt := range res.Routes {
		out := Route{Target: rt.Target + 1, Hops: rt.Hops, Reachable: rt.Reachable}
		for _, v := range rt.Path {
			out.Path = append(out.Path, v+1)
		}
		r.Routes = append(r.Routes, out)
	}

	return r
}

// Write renders r in the named format.
func Write(w io.Writer, format string, r Report) error {
	switch format {
	case FormatText, "":
		return WriteText(w, r)
	case FormatStyled:
		return WriteStyled(w, r)
	case FormatYAML:
		return WriteYAML(w, r)
	default:
		return fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
}

// section is one block of the plain-text report.
type section struct {
	title string
	lines []string
}

// sections lays out the report content shared by the text and styled renderings.
func sections(r Report) []section {
	tree := section{title: "Minimum spanning tree"}
	if r.TreeError != "" {
		tree.lines = append(tree.lines, "no single MST exists")
	} else {
		for _, e := range r.Tree {
			tree.lines = append(tree.lines, fmt.Sprintf("%d %d %s", e.From, e.To, twoPlaces(e.Weight)))
		}
		tree.lines = append(tree.lines, twoPlaces(r.TreeWeight))
	}

	routes := section{title: "Routes from radio " + strconv.Itoa(r.Source)}
	for _, rt := range r.Routes {
		if !rt.Reachable {
			routes.lines = append(routes.lines, fmt.Sprintf("%d unreachable", rt.Target))
			continue
		}
		ids := make([]string, len(rt.Path))
		for i, v := range rt.Path {
			ids[i] = strconv.Itoa(v)
		}
		routes.lines = append(routes.lines, strings.Join(ids, " ")+" "+strconv.Itoa(rt.Hops))
	}

	return []section{
		tree,
		routes,
		{title: "Diameter", lines: []string{strconv.Itoa(r.Diameter)}},
		{title: "Chromatic number", lines: []string{strconv.Itoa(r.ChromaticNumber)}},
	}
}

// WriteText writes the classic report: tree edges with two-decimal weights,
// the tree total, one route per radio ("path... hops"), the diameter and the
// chromatic number, one value per line and no headings.
func WriteText(w io.Writer, r Report) error {
	var b strings.Builder
	for _, s := range sections(r) {
		for _, line := range s.lines {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	_, err := io.WriteString(w, b.String())

	return err
}

func twoPlaces(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
