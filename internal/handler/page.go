package handler

import "dreamhome-estimator/internal/form"

// PredictButtonLabel is the idle label of the form's submit button.
const PredictButtonLabel = "✨ Predict Market Value"

// pageData is what the index.html template renders.
type pageData struct {
	ButtonLabel    string
	ButtonDisabled bool
	ResultHidden   bool
	Price          string
	Alerts         []string
	Values         form.Values
}

// pageView holds the state of one rendered page. It lives for a single
// request and is the service.View the submission mutates.
type pageView struct {
	label        string
	disabled     bool
	resultHidden bool
	price        string
	alerts       []string
}

func newPageView() *pageView {
	return &pageView{label: PredictButtonLabel, resultHidden: true}
}

func (v *pageView) ButtonLabel() string { return v.label }

func (v *pageView) SetButtonLabel(label string) { v.label = label }

func (v *pageView) SetButtonDisabled(disabled bool) { v.disabled = disabled }

func (v *pageView) HideResult() { v.resultHidden = true }

func (v *pageView) ShowResult() { v.resultHidden = false }

func (v *pageView) SetPrice(text string) { v.price = text }

func (v *pageView) Alert(message string) { v.alerts = append(v.alerts, message) }

func (v *pageView) data(values form.Values) pageData {
	return pageData{
		ButtonLabel:    v.label,
		ButtonDisabled: v.disabled,
		ResultHidden:   v.resultHidden,
		Price:          v.price,
		Alerts:         v.alerts,
		Values:         values,
	}
}
