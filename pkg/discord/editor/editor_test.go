package editor

import (
	"testing"
	"time"
)

func TestDefaultDraftSeedsEveryProperty(t *testing.T) {
	t.Parallel()

	e, _ := newTestEditor()
	for _, p := range allProperties {
		if !e.hasProperty(p) {
			t.Errorf("fresh draft is missing %v", p)
		}
	}
	if e.propLength != initialPropertyCount {
		t.Errorf("propLength = %d, want %d", e.propLength, initialPropertyCount)
	}
	if e.selecting != noCursor {
		t.Errorf("selecting = %d, want no cursor", e.selecting)
	}
	if e.change {
		t.Error("fresh editor must start in build mode")
	}

	fields := e.draft.Fields
	if len(fields) != 3 {
		t.Fatalf("got %d seed fields, want 3", len(fields))
	}
	if fields[0].Inline || !fields[1].Inline || !fields[2].Inline {
		t.Errorf("seed inline flags = %v %v %v, want false true true",
			fields[0].Inline, fields[1].Inline, fields[2].Inline)
	}
}

func TestClearPropertyRoundTrip(t *testing.T) {
	t.Parallel()

	for _, p := range allProperties {
		e, _ := newTestEditor()
		e.clearProperty(p)
		e.removed[p] = true
		if e.hasProperty(p) {
			t.Errorf("%v still present after removal", p)
		}
		for _, other := range allProperties {
			if other != p && !e.hasProperty(other) {
				t.Errorf("removing %v also cleared %v", p, other)
			}
		}
	}
}

func TestBlackColorCountsAsPresent(t *testing.T) {
	t.Parallel()

	e, _ := newTestEditor()
	e.draft.Color = 0
	if !e.hasProperty(PropColor) {
		t.Fatal("color set to #000000 must still count as present")
	}
	found := false
	for _, p := range e.presentProperties() {
		if p == PropColor {
			found = true
		}
	}
	if !found {
		t.Error("presentProperties omits a black color")
	}
}

func TestUpdatePropLength(t *testing.T) {
	t.Parallel()

	e, _ := newTestEditor()
	e.removed[PropTitle] = true
	e.removed[PropURL] = true
	e.updatePropLength()
	if e.propLength != initialPropertyCount-2 {
		t.Errorf("propLength = %d, want %d", e.propLength, initialPropertyCount-2)
	}
}

func TestToggleTimestamp(t *testing.T) {
	t.Parallel()

	e, _ := newTestEditor()
	if e.draft.Timestamp == "" {
		t.Fatal("fresh draft must carry a timestamp")
	}
	if _, err := time.Parse(time.RFC3339, e.draft.Timestamp); err != nil {
		t.Fatalf("seed timestamp is not RFC3339: %v", err)
	}

	e.toggleTimestamp()
	if e.draft.Timestamp != "" {
		t.Error("toggle did not unset the timestamp")
	}

	e.toggleTimestamp()
	if _, err := time.Parse(time.RFC3339, e.draft.Timestamp); err != nil {
		t.Errorf("re-toggled timestamp is not RFC3339: %v", err)
	}
}

func TestRenderSurfaces(t *testing.T) {
	t.Parallel()

	e, api := newTestEditor()

	if err := e.render(mainPanel()); err != nil {
		t.Fatalf("render main: %v", err)
	}
	edit := api.lastEdit()
	if edit == nil || edit.Components == nil {
		t.Fatal("main render produced no component edit")
	}
	if got := len(*edit.Components); got != 3 {
		t.Errorf("main panel rows = %d, want 3", got)
	}

	if err := e.render(fieldPanel()); err != nil {
		t.Fatalf("render fields: %v", err)
	}
	if got := len(*api.lastEdit().Components); got != 4 {
		t.Errorf("field panel rows = %d, want 4", got)
	}

	if err := e.render(bare()); err != nil {
		t.Fatalf("render bare: %v", err)
	}
	if got := len(*api.lastEdit().Components); got != 0 {
		t.Errorf("bare render rows = %d, want 0", got)
	}
}

func TestParsePropertyCoversMenu(t *testing.T) {
	t.Parallel()

	for _, p := range allProperties {
		got, ok := ParseProperty(p.String())
		if !ok || got != p {
			t.Errorf("ParseProperty(%q) = %v, %v", p.String(), got, ok)
		}
	}
	if _, ok := ParseProperty("bogus"); ok {
		t.Error("ParseProperty accepted an unknown value")
	}
}
