//go:build ignore

// gen-series writes the fixed-arity tuple types and SeriesN combinators of
// internal/domain/parsec.
//
// Usage: go run scripts/gen-series.go [--max 10] [--dir internal/domain/parsec]
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

const header = "// Code generated by scripts/gen-series.go; DO NOT EDIT.\n\n"

var tupleTmpl = template.Must(template.New("tuple").Parse(`package parsec
{{range .}}
// Tuple{{.N}} is the value produced by Series{{.N}}.
type Tuple{{.N}}[{{.TypeParams}} any] struct {
{{- range .Idx}}
	V{{.}} T{{.}}
{{- end}}
}

// Unpack returns the elements of t in order.
func (t Tuple{{.N}}[{{.TypeParams}}]) Unpack() ({{.TypeParams}}) {
	return {{.Fields "t"}}
}
{{end}}`))

var seriesTmpl = template.Must(template.New("series").Parse(`package parsec
{{range .}}
// Series{{.N}} runs {{.ParamNames}} in order, each starting where the
// previous one stopped, and collects their values.
func Series{{.N}}[{{.TypeParams}} any]({{.Params}}) Parser[Tuple{{.N}}[{{.TypeParams}}]] {
{{- if eq .N 2}}
	return &seriesParser[T1, T2, Tuple2[T1, T2]]{
		head: p1,
		tail: p2,
		join: func(v1 T1, v2 T2) Tuple2[T1, T2] {
			return Tuple2[T1, T2]{V1: v1, V2: v2}
		},
		name: seriesName(p1, p2),
	}
{{- else}}
	name := seriesName({{.ParamNames}})
	return &seriesParser[T1, Tuple{{.Prev}}[{{.TailTypeParams}}], Tuple{{.N}}[{{.TypeParams}}]]{
		head: p1,
		tail: Series{{.Prev}}({{.TailParamNames}}),
		join: func(v1 T1, t Tuple{{.Prev}}[{{.TailTypeParams}}]) Tuple{{.N}}[{{.TypeParams}}] {
			return Tuple{{.N}}[{{.TypeParams}}]{V1: v1, {{.Shifted}}}
		},
		name: name,
	}
{{- end}}
}
{{end}}`))

type arity struct {
	N int
}

func (a arity) Prev() int { return a.N - 1 }

func (a arity) Idx() []int {
	idx := make([]int, a.N)
	for i := range idx {
		idx[i] = i + 1
	}
	return idx
}

func (a arity) join(from int, f func(i int) string) string {
	parts := make([]string, 0, a.N)
	for i := from; i <= a.N; i++ {
		parts = append(parts, f(i))
	}
	return strings.Join(parts, ", ")
}

func (a arity) TypeParams() string {
	return a.join(1, func(i int) string { return fmt.Sprintf("T%d", i) })
}

func (a arity) TailTypeParams() string {
	return a.join(2, func(i int) string { return fmt.Sprintf("T%d", i) })
}

func (a arity) Params() string {
	return a.join(1, func(i int) string { return fmt.Sprintf("p%d Parser[T%d]", i, i) })
}

func (a arity) ParamNames() string {
	return a.join(1, func(i int) string { return fmt.Sprintf("p%d", i) })
}

func (a arity) TailParamNames() string {
	return a.join(2, func(i int) string { return fmt.Sprintf("p%d", i) })
}

func (a arity) Fields(recv string) string {
	return a.join(1, func(i int) string { return fmt.Sprintf("%s.V%d", recv, i) })
}

func (a arity) Shifted() string {
	return a.join(2, func(i int) string { return fmt.Sprintf("V%d: t.V%d", i, i-1) })
}

func main() {
	maxArity := flag.Int("max", 10, "Largest SeriesN to generate")
	dir := flag.String("dir", "internal/domain/parsec", "Output package directory")
	flag.Parse()

	if *maxArity < 2 {
		fmt.Fprintf(os.Stderr, "--max must be at least 2, got %d\n", *maxArity)
		os.Exit(1)
	}

	var arities []arity
	for n := 2; n <= *maxArity; n++ {
		arities = append(arities, arity{N: n})
	}

	for file, tmpl := range map[string]*template.Template{
		"tuple_gen.go":  tupleTmpl,
		"series_gen.go": seriesTmpl,
	} {
		if err := render(filepath.Join(*dir, file), tmpl, arities); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}

func render(path string, tmpl *template.Template, arities []arity) error {
	var buf bytes.Buffer
	buf.WriteString(header)
	if err := tmpl.Execute(&buf, arities); err != nil {
		return fmt.Errorf("execute %s: %w", filepath.Base(path), err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("format %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, src, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
