package main

import (
	"fmt"
	"io"

	"eecalc/pkg/form"
)

// printer collects what a form writes and prints it in write order.
type printer struct {
	labels map[form.Field]string
	order  []form.Field
	values map[form.Field]float64
	flags  map[form.Field]form.Flag
}

func newPrinter(labels map[form.Field]string) *printer {
	return &printer{
		labels: labels,
		values: make(map[form.Field]float64),
		flags:  make(map[form.Field]form.Flag),
	}
}

func (p *printer) touch(f form.Field) {
	for _, seen := range p.order {
		if seen == f {
			return
		}
	}
	p.order = append(p.order, f)
}

func (p *printer) Show(f form.Field, v float64) {
	p.touch(f)
	p.values[f] = v
}

func (p *printer) Clear(f form.Field) {
	p.touch(f)
	delete(p.values, f)
}

func (p *printer) Mark(f form.Field, flag form.Flag) {
	p.touch(f)
	p.flags[f] = flag
}

func (p *printer) flush(w io.Writer) {
	for _, f := range p.order {
		v, ok := p.values[f]
		text := "-"
		if ok {
			text = fmt.Sprintf("%.6g %s", v, p.labels[f])
		}
		if flag := p.flags[f]; flag != form.FlagNone {
			text += fmt.Sprintf("  [%v]", flag)
		}
		fmt.Fprintf(w, "%-20s %s\n", f, text)
	}
	p.order = p.order[:0]
}
