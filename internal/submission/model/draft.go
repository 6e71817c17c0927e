package model

import (
	"strings"

	"github.com/festy23/swimdq/internal/infraction"
)

// Draft is the in-progress selection of one official for one meet. It lives
// in the official's session and is never persisted on its own.
type Draft struct {
	Stroke    string   `json:"stroke"`
	Selected  []string `json:"selected"`
	OtherText string   `json:"otherText"`
}

// HasStroke reports whether a stroke has been chosen.
func (d *Draft) HasStroke() bool {
	return d.Stroke != ""
}

// SelectStroke chooses a stroke. Choosing a different stroke clears the
// selection and the other text.
func (d *Draft) SelectStroke(stroke string) {
	if stroke == d.Stroke {
		return
	}
	d.Stroke = stroke
	d.Selected = nil
	d.OtherText = ""
}

// Toggle adds value when absent and removes it when present. It reports
// whether value is selected afterwards.
func (d *Draft) Toggle(value string) bool {
	for i, v := range d.Selected {
		if v == value {
			d.Selected = append(d.Selected[:i], d.Selected[i+1:]...)
			return false
		}
	}
	d.Selected = append(d.Selected, value)
	return true
}

// IsSelected reports whether value is currently selected.
func (d *Draft) IsSelected(value string) bool {
	for _, v := range d.Selected {
		if v == value {
			return true
		}
	}
	return false
}

// SetOtherText stores the free-text infraction.
func (d *Draft) SetOtherText(text string) {
	d.OtherText = text
}

// Infractions returns the selected values in toggle order followed by the
// trimmed other text, if any.
func (d *Draft) Infractions() []string {
	out := make([]string, 0, len(d.Selected)+1)
	out = append(out, d.Selected...)
	if other := strings.TrimSpace(d.OtherText); other != "" {
		out = append(out, infraction.OtherPrefix+other)
	}
	return out
}
