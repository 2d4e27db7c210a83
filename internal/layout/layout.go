// Package layout describes how dashboard widgets are arranged into panels.
package layout

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	v1 "github.com/cxinsights/cx-dashboard/internal/api/v1"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultLayout []byte

// WidgetKind names a renderable widget.
type WidgetKind string

const (
	KindKPIs            WidgetKind = "kpis"
	KindCumulative      WidgetKind = "cumulative"
	KindDailyCounts     WidgetKind = "daily_counts"
	KindRanking         WidgetKind = "ranking"
	KindBreakdown       WidgetKind = "breakdown"
	KindCategoryRanks   WidgetKind = "category_ranks"
	KindComplaintsTable WidgetKind = "complaints_table"
)

// needsDimension reports whether the kind groups by a dimension.
func (k WidgetKind) needsDimension() bool {
	return k == KindRanking || k == KindBreakdown
}

func (k WidgetKind) valid() bool {
	switch k {
	case KindKPIs, KindCumulative, KindDailyCounts, KindRanking, KindBreakdown, KindCategoryRanks, KindComplaintsTable:
		return true
	}
	return false
}

type Layout struct {
	Title  string  `yaml:"title"`
	Panels []Panel `yaml:"panels"`
}

type Panel struct {
	Title   string   `yaml:"title"`
	Widgets []Widget `yaml:"widgets"`
}

type Widget struct {
	Kind      WidgetKind   `yaml:"kind"`
	Title     string       `yaml:"title"`
	Dimension v1.Dimension `yaml:"dimension"`
}

// Default returns the built-in two-panel layout.
func Default() *Layout {
	l, err := Parse(defaultLayout)
	if err != nil {
		panic(fmt.Sprintf("embedded layout is invalid: %v", err))
	}
	return l
}

// Load reads a layout file. An empty path returns the built-in layout.
func Load(path string) (*Layout, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout %s: %w", path, err)
	}
	l, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid layout %s: %w", path, err)
	}
	return l, nil
}

// Parse decodes and validates a YAML layout. Unknown fields are rejected.
func Parse(data []byte) (*Layout, error) {
	var l Layout
	dec := yaml.NewDecoder(strings.NewReader(string(data)))
	dec.KnownFields(true)
	if err := dec.Decode(&l); err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}
	l.normalize()
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

func (l *Layout) normalize() {
	for i := range l.Panels {
		for j := range l.Panels[i].Widgets {
			w := &l.Panels[i].Widgets[j]
			w.Kind = WidgetKind(strings.ToLower(strings.TrimSpace(string(w.Kind))))
			w.Dimension = v1.Dimension(strings.ToLower(strings.TrimSpace(string(w.Dimension))))
		}
	}
}

// Validate checks that every widget is renderable.
func (l *Layout) Validate() error {
	if len(l.Panels) == 0 {
		return fmt.Errorf("layout has no panels")
	}
	for i, p := range l.Panels {
		if strings.TrimSpace(p.Title) == "" {
			return fmt.Errorf("panel %d: title is required", i)
		}
		if len(p.Widgets) == 0 {
			return fmt.Errorf("panel %q has no widgets", p.Title)
		}
		for j, w := range p.Widgets {
			if !w.Kind.valid() {
				return fmt.Errorf("panel %q widget %d: unknown kind %q", p.Title, j, w.Kind)
			}
			switch {
			case w.Kind.needsDimension() && !w.Dimension.Valid():
				return fmt.Errorf("panel %q widget %d: %s needs a dimension (country, channel, category or status), got %q",
					p.Title, j, w.Kind, w.Dimension)
			case !w.Kind.needsDimension() && w.Dimension != "":
				return fmt.Errorf("panel %q widget %d: %s does not take a dimension", p.Title, j, w.Kind)
			}
		}
	}
	return nil
}

// Dimensions lists the distinct dimensions that a kind is used with, in layout order.
func (l *Layout) Dimensions(kind WidgetKind) []v1.Dimension {
	var out []v1.Dimension
	seen := map[v1.Dimension]bool{}
	for _, p := range l.Panels {
		for _, w := range p.Widgets {
			if w.Kind == kind && !seen[w.Dimension] {
				seen[w.Dimension] = true
				out = append(out, w.Dimension)
			}
		}
	}
	return out
}
