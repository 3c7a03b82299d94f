package editor

import (
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/hazelnoot/embedstudio/pkg/log"
)

// officialURL is the default link placed on the seed title and author.
const officialURL = "https://discord.com"

// DefaultIconURL is the icon used by the seed draft when no override is
// configured.
const DefaultIconURL = "https://cdn.discordapp.com/embed/avatars/0.png"

// defaultFields seeds a fresh draft with one regular and two inline fields.
func defaultFields() []*discordgo.MessageEmbedField {
	return []*discordgo.MessageEmbedField{
		{Name: "Regular field title", Value: "Regular field value"},
		{Name: "Inline field title", Value: "Inline field value", Inline: true},
		{Name: "Inline field title", Value: "Inline field value", Inline: true},
	}
}

// defaultDraft builds the draft a new session starts from: every top-level
// property populated with placeholder content.
func defaultDraft(iconURL string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Some title",
		URL:         officialURL,
		Description: "Some description",
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Color:       0x5865F2,
		Author: &discordgo.MessageEmbedAuthor{
			Name:    "Some name",
			IconURL: iconURL,
			URL:     officialURL,
		},
		Thumbnail: &discordgo.MessageEmbedThumbnail{URL: iconURL},
		Image:     &discordgo.MessageEmbedImage{URL: iconURL},
		Footer: &discordgo.MessageEmbedFooter{
			Text:    "Some text",
			IconURL: iconURL,
		},
		Fields: defaultFields(),
	}
}

// Editor owns one editing session: the draft embed, the removal ledger, the
// selection cursor, and the panel mode. The draft is a plain embed value the
// editor composes mutations onto; it is not a builder subclass.
//
// All mutation entry points run under mu so handlers interleaving at the
// dispatcher cannot both touch the draft.
type Editor struct {
	mu sync.Mutex

	api  InteractionAPI
	root *discordgo.Interaction

	draft      *discordgo.MessageEmbed
	removed    map[Property]bool
	propLength int
	selecting  int
	change     bool

	userID    string
	guildID   string
	channelID string
	panelID   string
	startedAt time.Time

	logger *log.Logger
}

// newEditor creates a session bound to the invoking interaction and user.
func newEditor(api InteractionAPI, root *discordgo.Interaction, userID, iconURL string) *Editor {
	return &Editor{
		api:        api,
		root:       root,
		draft:      defaultDraft(iconURL),
		removed:    make(map[Property]bool, initialPropertyCount),
		propLength: initialPropertyCount,
		selecting:  noCursor,
		userID:     userID,
		guildID:    root.GuildID,
		channelID:  root.ChannelID,
		startedAt:  time.Now(),
		logger: log.DiscordLogger().WithFields(map[string]any{
			"component": "embed_editor",
			"user":      userID,
		}),
	}
}

// renderOptions selects which control surface accompanies the draft on the
// next render.
type renderOptions struct {
	components bool
	fields     bool
	change     bool
}

func mainPanel() renderOptions  { return renderOptions{components: true} }
func fieldPanel() renderOptions { return renderOptions{components: true, fields: true} }
func bare() renderOptions       { return renderOptions{} }

// render reconciles the visible reply with the current draft. It edits the
// original response, so the panel message stays the single source of truth.
func (e *Editor) render(opts renderOptions) error {
	components := []discordgo.MessageComponent{}
	if opts.components {
		if opts.fields {
			components = buildFieldComponents(e.draft.Fields, e.selecting)
		} else {
			components = buildMainComponents(opts.change)
		}
	}

	embeds := []*discordgo.MessageEmbed{e.draft}
	_, err := e.api.EditResponse(e.root, &discordgo.WebhookEdit{
		Embeds:     &embeds,
		Components: &components,
	})
	return err
}

// renderEmbed replaces the reply with an arbitrary embed and no control
// surface. Used for the fatal-error embed.
func (e *Editor) renderEmbed(embed *discordgo.MessageEmbed) error {
	embeds := []*discordgo.MessageEmbed{embed}
	components := []discordgo.MessageComponent{}
	_, err := e.api.EditResponse(e.root, &discordgo.WebhookEdit{
		Embeds:     &embeds,
		Components: &components,
	})
	return err
}

// presentProperties lists the top-level properties currently set on the
// draft.
func (e *Editor) presentProperties() []Property {
	var present []Property
	for _, p := range allProperties {
		if e.hasProperty(p) {
			present = append(present, p)
		}
	}
	return present
}

func (e *Editor) hasProperty(p Property) bool {
	switch p {
	case PropColor:
		// Zero is a renderable color (#000000), so presence follows the
		// removal ledger rather than the value.
		return !e.removed[PropColor]
	case PropTitle:
		return e.draft.Title != ""
	case PropURL:
		return e.draft.URL != ""
	case PropAuthor:
		return e.draft.Author != nil
	case PropDescription:
		return e.draft.Description != ""
	case PropThumbnail:
		return e.draft.Thumbnail != nil
	case PropFields:
		return len(e.draft.Fields) > 0
	case PropImage:
		return e.draft.Image != nil
	case PropTimestamp:
		return e.draft.Timestamp != ""
	case PropFooter:
		return e.draft.Footer != nil
	}
	return false
}

// clearProperty unsets one top-level property on the draft.
func (e *Editor) clearProperty(p Property) {
	switch p {
	case PropColor:
		e.draft.Color = 0
	case PropTitle:
		e.draft.Title = ""
	case PropURL:
		e.draft.URL = ""
	case PropAuthor:
		e.draft.Author = nil
	case PropDescription:
		e.draft.Description = ""
	case PropThumbnail:
		e.draft.Thumbnail = nil
	case PropFields:
		e.draft.Fields = nil
	case PropImage:
		e.draft.Image = nil
	case PropTimestamp:
		e.draft.Timestamp = ""
	case PropFooter:
		e.draft.Footer = nil
	}
}

// updatePropLength recomputes the property counter from the removal ledger.
func (e *Editor) updatePropLength() {
	removed := 0
	for _, done := range e.removed {
		if done {
			removed++
		}
	}
	e.propLength = initialPropertyCount - removed
}

// toggleTimestamp flips the timestamp between unset and now.
func (e *Editor) toggleTimestamp() {
	if e.draft.Timestamp != "" {
		e.draft.Timestamp = ""
		return
	}
	e.draft.Timestamp = time.Now().UTC().Format(time.RFC3339)
}

// Draft returns the embed under edit. Exposed for the dispatcher and tests;
// callers must hold no expectation of a copy.
func (e *Editor) Draft() *discordgo.MessageEmbed {
	return e.draft
}
