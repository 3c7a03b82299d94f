package editor

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

func TestIncrementField(t *testing.T) {
	t.Parallel()

	e, api := newTestEditor()
	notices := NewNotices(api)
	i := &discordgo.Interaction{ID: "comp-1"}

	if err := e.incrementField(i, notices); err != nil {
		t.Fatalf("incrementField: %v", err)
	}
	if got := len(e.draft.Fields); got != 4 {
		t.Fatalf("got %d fields, want 4", got)
	}
	last := e.draft.Fields[3]
	if last.Name != "Regular field title" || last.Value != "Regular field value" || last.Inline {
		t.Errorf("unexpected appended field: %+v", last)
	}
}

func TestIncrementFieldCap(t *testing.T) {
	t.Parallel()

	e, api := newTestEditor()
	notices := NewNotices(api)
	i := &discordgo.Interaction{ID: "comp-1"}

	for len(e.draft.Fields) < maxFields {
		e.draft.Fields = append(e.draft.Fields, newField())
	}

	if err := e.incrementField(i, notices); err != nil {
		t.Fatalf("incrementField at cap: %v", err)
	}
	if got := len(e.draft.Fields); got != maxFields {
		t.Errorf("got %d fields, want the cap to hold at %d", got, maxFields)
	}
	resp := api.lastResponse()
	if resp == nil || resp.Type != discordgo.InteractionResponseChannelMessageWithSource {
		t.Fatalf("expected a notice, got %+v", resp)
	}
	if got := resp.Data.Embeds[0].Description; got != fieldCapDesc {
		t.Errorf("notice description = %q, want %q", got, fieldCapDesc)
	}
}

func TestDecrementField(t *testing.T) {
	t.Parallel()

	e, api := newTestEditor()
	notices := NewNotices(api)
	i := &discordgo.Interaction{ID: "comp-1"}
	e.selecting = 2

	if err := e.decrementField(i, notices); err != nil {
		t.Fatalf("decrementField: %v", err)
	}
	if got := len(e.draft.Fields); got != 2 {
		t.Fatalf("got %d fields, want 2", got)
	}
	if e.selecting != noCursor {
		t.Errorf("cursor %d now points past the list, want reset", e.selecting)
	}
}

func TestDecrementFieldFloor(t *testing.T) {
	t.Parallel()

	e, api := newTestEditor()
	notices := NewNotices(api)
	i := &discordgo.Interaction{ID: "comp-1"}
	e.draft.Fields = e.draft.Fields[:1]

	if err := e.decrementField(i, notices); err != nil {
		t.Fatalf("decrementField at floor: %v", err)
	}
	if got := len(e.draft.Fields); got != 1 {
		t.Errorf("got %d fields, want the floor to hold at 1", got)
	}
	resp := api.lastResponse()
	if resp == nil || resp.Type != discordgo.InteractionResponseChannelMessageWithSource {
		t.Fatalf("expected a notice, got %+v", resp)
	}
	if got := resp.Data.Embeds[0].Description; got != fieldFloorDesc {
		t.Errorf("notice description = %q, want %q", got, fieldFloorDesc)
	}
}

func TestSetInline(t *testing.T) {
	t.Parallel()

	e, _ := newTestEditor()
	i := &discordgo.Interaction{ID: "comp-1"}

	e.selecting = 0
	if err := e.setInline(i, true); err != nil {
		t.Fatalf("setInline: %v", err)
	}
	if !e.draft.Fields[0].Inline {
		t.Error("selected field not flipped to inline")
	}
	if e.draft.Fields[1].Inline != true || e.draft.Fields[2].Inline != true {
		t.Error("unselected fields changed")
	}

	if err := e.setInline(i, false); err != nil {
		t.Fatalf("setInline: %v", err)
	}
	if e.draft.Fields[0].Inline {
		t.Error("selected field not flipped back")
	}
}

func TestSetInlineWithoutCursor(t *testing.T) {
	t.Parallel()

	e, _ := newTestEditor()
	i := &discordgo.Interaction{ID: "comp-1"}

	if err := e.setInline(i, true); err != nil {
		t.Fatalf("setInline: %v", err)
	}
	if e.draft.Fields[0].Inline {
		t.Error("cursorless press mutated the list")
	}
}

func TestSetInlineAll(t *testing.T) {
	t.Parallel()

	e, _ := newTestEditor()
	i := &discordgo.Interaction{ID: "comp-1"}

	if err := e.setInlineAll(i, true); err != nil {
		t.Fatalf("setInlineAll: %v", err)
	}
	for idx, f := range e.draft.Fields {
		if !f.Inline {
			t.Errorf("field %d not inline", idx)
		}
	}

	if err := e.setInlineAll(i, false); err != nil {
		t.Fatalf("setInlineAll: %v", err)
	}
	for idx, f := range e.draft.Fields {
		if f.Inline {
			t.Errorf("field %d still inline", idx)
		}
	}
}

func TestRemoveField(t *testing.T) {
	t.Parallel()

	e, api := newTestEditor()
	notices := NewNotices(api)
	i := &discordgo.Interaction{ID: "comp-1"}

	e.draft.Fields[1].Name = "marked"
	e.selecting = 1
	if err := e.removeField(i, notices); err != nil {
		t.Fatalf("removeField: %v", err)
	}
	if got := len(e.draft.Fields); got != 2 {
		t.Fatalf("got %d fields, want 2", got)
	}
	for _, f := range e.draft.Fields {
		if f.Name == "marked" {
			t.Error("selected field survived removal")
		}
	}
	if e.selecting != noCursor {
		t.Errorf("selecting = %d after removal, want reset", e.selecting)
	}
}

func TestRemoveAllFields(t *testing.T) {
	t.Parallel()

	e, api := newTestEditor()
	i := &discordgo.Interaction{ID: "comp-1"}
	e.selecting = 1

	if err := e.removeAllFields(i); err != nil {
		t.Fatalf("removeAllFields: %v", err)
	}
	if len(e.draft.Fields) != 0 {
		t.Errorf("got %d fields, want 0", len(e.draft.Fields))
	}
	if e.selecting != noCursor {
		t.Errorf("selecting = %d, want reset", e.selecting)
	}

	// The empty list renders with the placeholder option.
	edit := api.lastEdit()
	if edit == nil || edit.Components == nil {
		t.Fatal("no re-render after all_remove")
	}
}

func TestSelectField(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		value     string
		wantIndex int
	}{
		{"placeholder only acks", "-", noCursor},
		{"index zero", "0", 0},
		{"last index", "2", 2},
		{"out of range ignored", "7", noCursor},
		{"garbage ignored", "x", noCursor},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e, _ := newTestEditor()
			i := &discordgo.Interaction{ID: "comp-1"}
			if err := e.selectField(i, tt.value); err != nil {
				t.Fatalf("selectField(%q): %v", tt.value, err)
			}
			if e.selecting != tt.wantIndex {
				t.Errorf("selecting = %d, want %d", e.selecting, tt.wantIndex)
			}
		})
	}
}

func TestBackToMain(t *testing.T) {
	t.Parallel()

	e, api := newTestEditor()
	i := &discordgo.Interaction{ID: "comp-1"}
	e.selecting = 1

	if err := e.backToMain(i); err != nil {
		t.Fatalf("backToMain: %v", err)
	}
	if e.selecting != noCursor {
		t.Errorf("selecting = %d, want reset", e.selecting)
	}
	edit := api.lastEdit()
	if edit == nil || edit.Components == nil || len(*edit.Components) != 3 {
		t.Fatal("back did not restore the main panel")
	}
}
