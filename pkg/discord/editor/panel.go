package editor

import (
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"
)

// Custom IDs of the control surface. These strings are the wire contract
// between rendered widgets and the dispatcher.
const (
	idSelectOptions     = "select_options"
	idSelectFields      = "select_fields"
	idSubmit            = "submit"
	idCancel            = "cancel"
	idChange            = "change"
	idIncrement         = "increment"
	idDecrement         = "decrement"
	idBack              = "back"
	idEnabledInline     = "enabled_inline"
	idDisabledInline    = "disabled_inline"
	idEnabledAllInline  = "enabled_all_inline"
	idDisabledAllInline = "disabled_all_inline"
	idRemove            = "remove"
	idAllRemove         = "all_remove"
)

// noCursor marks the absent selection cursor. Index 0 is a valid cursor.
const noCursor = -1

// buildMainComponents renders the main control surface. The output is a pure
// function of the change flag: row 1 the property select menu, row 2 the
// submit/cancel buttons, row 3 the mode toggle.
func buildMainComponents(change bool) []discordgo.MessageComponent {
	placeholder := "Build options"
	verb := "Set"
	if change {
		placeholder = "Remove options"
		verb = "Remove"
	}

	options := []discordgo.SelectMenuOption{
		{Label: "color", Value: "color", Description: fmt.Sprintf("%s the color. (HEX)", verb)},
		{Label: "title", Value: "title", Description: fmt.Sprintf("%s the title.", verb)},
		{Label: "titleURL", Value: "url", Description: fmt.Sprintf("%s the title URL.", verb)},
		{Label: "author", Value: "author", Description: fmt.Sprintf("%s the author. (3 options)", verb)},
		{Label: "description", Value: "description", Description: fmt.Sprintf("%s the description.", verb)},
		{Label: "thumbnail", Value: "thumbnail", Description: fmt.Sprintf("%s the thumbnail.", verb)},
		{Label: "fields", Value: "fields", Description: fmt.Sprintf("%s the fields.", verb)},
		{Label: "image", Value: "image", Description: fmt.Sprintf("%s the image.", verb)},
		{Label: "timestamp", Value: "timestamp", Description: "Toggle timestamp."},
		{Label: "footer", Value: "footer", Description: fmt.Sprintf("%s the footer. (2 options)", verb)},
	}

	modeButton := discordgo.Button{
		CustomID: idChange,
		Label:    "🔧 Mode: Build",
		Style:    discordgo.SecondaryButton,
	}
	if change {
		modeButton.Label = "🧹 Mode: Remove"
		modeButton.Style = discordgo.DangerButton
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					MenuType:    discordgo.StringSelectMenu,
					CustomID:    idSelectOptions,
					Placeholder: placeholder,
					Options:     options,
				},
			},
		},
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					CustomID: idSubmit,
					Label:    "✅ Submit",
					Style:    discordgo.SuccessButton,
				},
				discordgo.Button{
					CustomID: idCancel,
					Label:    "🗑️ Cancel",
					Style:    discordgo.DangerButton,
				},
			},
		},
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{modeButton},
		},
	}
}

// buildFieldComponents renders the field-editor surface. Cursor-scoped
// buttons are disabled exactly when selecting is noCursor; index 0 is a valid
// selection.
func buildFieldComponents(fields []*discordgo.MessageEmbedField, selecting int) []discordgo.MessageComponent {
	cursorless := selecting == noCursor

	var options []discordgo.SelectMenuOption
	if len(fields) == 0 {
		options = []discordgo.SelectMenuOption{{Label: "-", Value: "-"}}
	} else {
		options = make([]discordgo.SelectMenuOption, 0, len(fields))
		for i := range fields {
			options = append(options, discordgo.SelectMenuOption{
				Label:       strconv.Itoa(i + 1),
				Value:       strconv.Itoa(i),
				Description: fmt.Sprintf("Edit number of %d field.", i+1),
			})
		}
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					CustomID: idIncrement,
					Label:    "➕ Increment",
					Style:    discordgo.SuccessButton,
				},
				discordgo.Button{
					CustomID: idDecrement,
					Label:    "➖ Decrement",
					Style:    discordgo.DangerButton,
				},
				discordgo.Button{
					CustomID: idBack,
					Label:    "🔙 Back",
					Style:    discordgo.SecondaryButton,
				},
			},
		},
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					CustomID: idEnabledAllInline,
					Label:    "⏫ Enabled all",
					Style:    discordgo.SuccessButton,
				},
				discordgo.Button{
					CustomID: idEnabledInline,
					Label:    "🔼 Enabled",
					Style:    discordgo.SuccessButton,
					Disabled: cursorless,
				},
				discordgo.Button{
					CustomID: idDisabledInline,
					Label:    "🔽 Disabled",
					Style:    discordgo.DangerButton,
					Disabled: cursorless,
				},
				discordgo.Button{
					CustomID: idDisabledAllInline,
					Label:    "⏬ Disabled all",
					Style:    discordgo.DangerButton,
				},
			},
		},
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					CustomID: idRemove,
					Label:    "🔨 Remove",
					Style:    discordgo.SecondaryButton,
					Disabled: cursorless,
				},
				discordgo.Button{
					CustomID: idAllRemove,
					Label:    "🗑️ All Remove",
					Style:    discordgo.DangerButton,
				},
			},
		},
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					MenuType:    discordgo.StringSelectMenu,
					CustomID:    idSelectFields,
					Placeholder: "Number of fields",
					Options:     options,
				},
			},
		},
	}
}
