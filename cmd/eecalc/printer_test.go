package main

import (
	"bytes"
	"strings"
	"testing"

	"eecalc/pkg/form"
	"eecalc/pkg/units"
)

func TestPrinterLED(t *testing.T) {
	p := newPrinter(map[form.Field]string{form.LEDResistance: "Ω", form.LEDPower: "W"})
	form.NewLED(units.Default(), p, nil).Change(form.LEDEvent{
		Supply:         form.Value(3),
		ForwardVoltage: form.Value(2),
		Current:        form.Value(20),
		CurrentUnit:    units.MilliAmp,
		Series:         2,
	})

	var out bytes.Buffer
	p.flush(&out)
	text := out.String()
	if !strings.Contains(text, "led.resistance") || !strings.Contains(text, "[infeasible]") {
		t.Errorf("output:\n%s", text)
	}
	if strings.Contains(text, "Ω") {
		t.Errorf("infeasible resistance printed a value:\n%s", text)
	}
}

func TestNumber(t *testing.T) {
	if n := number("2k"); !n.OK || n.Value != 2000 {
		t.Errorf("number(2k) = %+v", n)
	}
	if n := number("abc"); n.OK {
		t.Errorf("number(abc) = %+v", n)
	}
}
