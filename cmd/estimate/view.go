package main

import (
	"fmt"
	"io"

	"dreamhome-estimator/internal/service"
)

// terminalView renders a submission on a terminal. The trigger control is
// the progress line shown while the request is in flight.
type terminalView struct {
	out         io.Writer
	errOut      io.Writer
	interactive bool

	label    string
	disabled bool
	price    string
}

func newTerminalView(out, errOut io.Writer, interactive bool) *terminalView {
	return &terminalView{out: out, errOut: errOut, interactive: interactive, label: "estimate"}
}

func (v *terminalView) ButtonLabel() string { return v.label }

func (v *terminalView) SetButtonLabel(label string) {
	v.label = label
	if v.interactive && label == service.CalculatingLabel {
		fmt.Fprint(v.out, label)
	}
}

// clearProgress erases the progress line before the outcome is written.
func (v *terminalView) clearProgress() {
	if v.interactive && v.label == service.CalculatingLabel {
		fmt.Fprint(v.out, "\r\033[K")
	}
}

func (v *terminalView) SetButtonDisabled(disabled bool) { v.disabled = disabled }

func (v *terminalView) HideResult() {}

func (v *terminalView) ShowResult() {
	v.clearProgress()
	fmt.Fprintf(v.out, "Estimated Property Value: %s\n", v.price)
}

func (v *terminalView) SetPrice(text string) { v.price = text }

func (v *terminalView) Alert(message string) {
	v.clearProgress()
	fmt.Fprintln(v.errOut, message)
}

// batchView keeps a row's outcome off the terminal; the caller reports it
// from the returned service.Result.
type batchView struct {
	label string
}

func (v *batchView) ButtonLabel() string         { return v.label }
func (v *batchView) SetButtonLabel(label string) { v.label = label }
func (v *batchView) SetButtonDisabled(bool)      {}
func (v *batchView) HideResult()                 {}
func (v *batchView) ShowResult()                 {}
func (v *batchView) SetPrice(string)             {}
func (v *batchView) Alert(string)                {}
