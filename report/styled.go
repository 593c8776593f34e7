package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// WriteStyled writes the text report with a styled heading above each
// section. Colors are only emitted when w is a color-capable terminal.
func WriteStyled(w io.Writer, r Report) error {
	renderer := lipgloss.NewRenderer(w)
	titleStyle := renderer.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00FF99"))
	bodyStyle := renderer.NewStyle().
		PaddingLeft(2).
		Foreground(lipgloss.Color("#AAAAAA"))

	all := sections(r)
	if len(r.Clusters) > 1 {
		all = append(all, clusterSection(r.Clusters))
	}

	var b strings.Builder
	for i, s := range all {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(titleStyle.Render(strings.ToUpper(s.title)))
		b.WriteByte('\n')
		b.WriteString(bodyStyle.Render(strings.Join(s.lines, "\n")))
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())

	return err
}

// clusterSection lists each group of radios that can reach one another.
func clusterSection(clusters [][]int) section {
	s := section{title: fmt.Sprintf("Clusters (%d)", len(clusters))}
	for _, c := range clusters {
		ids := make([]string, len(c))
		for i, v := range c {
			ids[i] = strconv.Itoa(v)
		}
		s.lines = append(s.lines, strings.Join(ids, " "))
	}

	return s
}
