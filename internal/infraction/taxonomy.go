// Package infraction holds the static catalog of selectable DQ infractions,
// organised by stroke and, for most strokes, by body-part category.
package infraction

// Medley is the cross-stroke entry whose labels are offered alongside every
// other stroke.
const Medley = "Medley"

// OtherCategory is the category bucket whose labels are stored bare.
const OtherCategory = "Other"

// OtherPrefix prefixes the free-text infraction appended on submit.
const OtherPrefix = "Other: "

// Label is one selectable infraction.
type Label struct {
	// Group is the heading the label is shown under: "Medley" for the
	// cross-stroke list, otherwise the category name.
	Group string `json:"group"`
	// Display is the text shown on the toggle.
	Display string `json:"display"`
	// Value is what gets stored on the submission.
	Value string `json:"value"`
}

// Entry is a stroke's taxonomy entry: either Flat or Grouped.
type Entry interface {
	labels(stroke string) []Label
}

// Flat is an ordered list of labels stored verbatim.
type Flat []string

func (f Flat) labels(stroke string) []Label {
	out := make([]Label, 0, len(f))
	for _, l := range f {
		out = append(out, Label{Group: stroke, Display: l, Value: l})
	}
	return out
}

// Category is a named, ordered group of labels.
type Category struct {
	Name   string
	Labels []string
}

// Grouped is an ordered list of categories. Labels are stored as
// "<Category>: <Label>", except those in the Other bucket.
type Grouped []Category

func (g Grouped) labels(string) []Label {
	var out []Label
	for _, c := range g {
		for _, l := range c.Labels {
			value := c.Name + ": " + l
			if c.Name == OtherCategory {
				value = l
			}
			out = append(out, Label{Group: c.Name, Display: l, Value: value})
		}
	}
	return out
}

// Taxonomy maps stroke names to entries, keeping declaration order.
type Taxonomy struct {
	strokes []string
	entries map[string]Entry
}

// StrokeEntry pairs a stroke with its entry for New.
type StrokeEntry struct {
	Stroke string
	Entry  Entry
}

// New builds a taxonomy from entries in the given order. Later duplicates of
// a stroke replace earlier ones but keep the first position.
func New(entries ...StrokeEntry) *Taxonomy {
	t := &Taxonomy{entries: make(map[string]Entry, len(entries))}
	for _, e := range entries {
		if _, ok := t.entries[e.Stroke]; !ok {
			t.strokes = append(t.strokes, e.Stroke)
		}
		t.entries[e.Stroke] = e.Entry
	}
	return t
}

// Strokes returns the selectable strokes in declared order.
func (t *Taxonomy) Strokes() []string {
	out := make([]string, len(t.strokes))
	copy(out, t.strokes)
	return out
}

// IsStroke reports whether stroke has an entry.
func (t *Taxonomy) IsStroke(stroke string) bool {
	_, ok := t.entries[stroke]
	return ok
}

// LabelsFor returns the labels offered for stroke: the Medley list first,
// then the stroke's own labels. Unknown strokes yield nothing.
func (t *Taxonomy) LabelsFor(stroke string) []Label {
	if !t.IsStroke(stroke) {
		return []Label{}
	}

	var out []Label
	for _, s := range uniqueStrokes(Medley, stroke) {
		entry, ok := t.entries[s]
		if !ok {
			continue
		}
		out = append(out, entry.labels(s)...)
	}
	if out == nil {
		return []Label{}
	}
	return out
}

// Offers reports whether value is selectable for stroke.
func (t *Taxonomy) Offers(stroke, value string) bool {
	for _, l := range t.LabelsFor(stroke) {
		if l.Value == value {
			return true
		}
	}
	return false
}

func uniqueStrokes(strokes ...string) []string {
	seen := make(map[string]bool, len(strokes))
	out := make([]string, 0, len(strokes))
	for _, s := range strokes {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// Default returns the catalog used by officials at the pool deck.
func Default() *Taxonomy {
	return New(
		StrokeEntry{Medley, Flat{
			"Stroke Infraction",
			"Out of Sequence",
			"Fourth Distance Wrong Stroke",
		}},
		StrokeEntry{"Butterfly", Grouped{
			{"Kick", []string{"Alternating", "Breast", "Scissors"}},
			{"Arms", []string{"Non-Simultaneous", "Underwater Recovery"}},
			{"Touch", []string{"One Hand", "Not Separated", "No Touch"}},
			{OtherCategory, []string{
				"Not Toward Wall",
				"Head Did Not Break Surface by 15m",
				"Re-Submerged",
			}},
		}},
		StrokeEntry{"Backstroke", Grouped{
			{OtherCategory, []string{
				"No Touch At Turn",
				"Past Vertical at Turn",
				"Delay Arm Pull",
				"Delay Initiating Turn",
				"Multiple Strokes",
				"Toes Over Lip",
				"Head Did Not Break Surface by 15m",
				"Re-Submerged",
				"Not On Back",
				"Shoulders Past Vertical",
			}},
		}},
		StrokeEntry{"Breaststroke", Grouped{
			{"Kick", []string{"Alternating", "Butterfly", "Scissors"}},
			{"Arms", []string{"Past Hipline", "Non-Simultaneous", "Elbows Recovered"}},
			{"Touch", []string{"One Hand", "Not Separated", "No Touch"}},
			{OtherCategory, []string{
				"Not Toward Wall",
				"Cycle: Double Pulls/Kicks",
				"Kick Before Pull",
				"Head Not Up Before Hands Turn",
			}},
		}},
		StrokeEntry{"Freestyle", Grouped{
			{OtherCategory, []string{"No Touch At Turn", "Head Did Not Break Surface by 15m", "Re-Submerged"}},
		}},
		StrokeEntry{"Relays", Grouped{
			{OtherCategory, []string{"Early Take Off", "Changed Order"}},
		}},
		StrokeEntry{"Miscellaneous", Grouped{
			{OtherCategory, []string{"False Start", "Declared False Start", "Did Not Finish", "Delay of Meet"}},
		}},
	)
}
