package editor

import (
	"strconv"

	"github.com/bwmarrin/discordgo"
)

// Field-editor notice wording.
const (
	fieldFloorTitle = "Impossible operation"
	fieldFloorDesc  = "The number of fields must be 1 or more."
	fieldCapTitle   = "Impossible operation"
	fieldCapDesc    = "The number of fields must be 25 or less."
)

// maxFields is the embed field cap imposed by the platform.
const maxFields = 25

// newField returns the placeholder a freshly incremented field starts with.
func newField() *discordgo.MessageEmbedField {
	return &discordgo.MessageEmbedField{
		Name:  "Regular field title",
		Value: "Regular field value",
	}
}

// incrementField appends one placeholder field. The platform cap is a
// blocking notice; the draft is untouched at the limit.
//
// Caller holds e.mu.
func (e *Editor) incrementField(i *discordgo.Interaction, notices *Notices) error {
	if len(e.draft.Fields) >= maxFields {
		return notices.Invalid(i, fieldCapTitle, fieldCapDesc)
	}
	if err := ackUpdate(e.api, i); err != nil {
		return err
	}
	e.draft.Fields = append(e.draft.Fields, newField())
	return e.render(fieldPanel())
}

// decrementField drops the last field. Going below one field is a blocking
// notice; all_remove is the only path to an empty list.
//
// Caller holds e.mu.
func (e *Editor) decrementField(i *discordgo.Interaction, notices *Notices) error {
	if len(e.draft.Fields) <= 1 {
		return notices.Invalid(i, fieldFloorTitle, fieldFloorDesc)
	}
	if err := ackUpdate(e.api, i); err != nil {
		return err
	}
	e.draft.Fields = e.draft.Fields[:len(e.draft.Fields)-1]
	if e.selecting >= len(e.draft.Fields) {
		e.selecting = noCursor
	}
	return e.render(fieldPanel())
}

// setInline flips the inline flag on the selected field. Without a cursor the
// press only acks; the buttons are disabled client-side anyway.
//
// Caller holds e.mu.
func (e *Editor) setInline(i *discordgo.Interaction, inline bool) error {
	if err := ackUpdate(e.api, i); err != nil {
		return err
	}
	if e.selecting == noCursor || e.selecting >= len(e.draft.Fields) {
		return nil
	}
	e.draft.Fields[e.selecting].Inline = inline
	return e.render(fieldPanel())
}

// setInlineAll flips the inline flag on every field.
//
// Caller holds e.mu.
func (e *Editor) setInlineAll(i *discordgo.Interaction, inline bool) error {
	if err := ackUpdate(e.api, i); err != nil {
		return err
	}
	for _, f := range e.draft.Fields {
		f.Inline = inline
	}
	return e.render(fieldPanel())
}

// removeField deletes the selected field and resets the cursor. The one-field
// floor applies the same way it does for decrement.
//
// Caller holds e.mu.
func (e *Editor) removeField(i *discordgo.Interaction, notices *Notices) error {
	if len(e.draft.Fields) <= 1 {
		return notices.Invalid(i, fieldFloorTitle, fieldFloorDesc)
	}
	if e.selecting == noCursor || e.selecting >= len(e.draft.Fields) {
		return ackUpdate(e.api, i)
	}
	if err := ackUpdate(e.api, i); err != nil {
		return err
	}
	e.draft.Fields = append(e.draft.Fields[:e.selecting], e.draft.Fields[e.selecting+1:]...)
	e.selecting = noCursor
	return e.render(fieldPanel())
}

// removeAllFields empties the field list. This is the only operation allowed
// to leave zero fields.
//
// Caller holds e.mu.
func (e *Editor) removeAllFields(i *discordgo.Interaction) error {
	if err := ackUpdate(e.api, i); err != nil {
		return err
	}
	e.draft.Fields = nil
	e.selecting = noCursor
	return e.render(fieldPanel())
}

// backToMain leaves the field editor and restores the main surface.
//
// Caller holds e.mu.
func (e *Editor) backToMain(i *discordgo.Interaction) error {
	if err := ackUpdate(e.api, i); err != nil {
		return err
	}
	e.selecting = noCursor
	return e.render(renderOptions{components: true, change: e.change})
}

// selectField moves the cursor. The "-" placeholder shown on an empty list
// only acks.
//
// Caller holds e.mu.
func (e *Editor) selectField(i *discordgo.Interaction, value string) error {
	if value == "-" {
		return ackUpdate(e.api, i)
	}
	idx, ok := parseFieldIndex(value, len(e.draft.Fields))
	if !ok {
		return ackUpdate(e.api, i)
	}
	if err := ackUpdate(e.api, i); err != nil {
		return err
	}
	e.selecting = idx
	return e.render(fieldPanel())
}

func parseFieldIndex(value string, n int) (int, bool) {
	idx, err := strconv.Atoi(value)
	if err != nil || idx < 0 || idx >= n {
		return 0, false
	}
	return idx, true
}
