package editor

import (
	"github.com/bwmarrin/discordgo"
	"github.com/hazelnoot/embedstudio/pkg/log"
	"github.com/hazelnoot/embedstudio/pkg/theme"
)

// Notices delivers transient warning and error banners in response to an
// interaction. A notice acknowledges the interaction it replies to and never
// mutates the draft.
type Notices struct {
	api InteractionAPI
}

// NewNotices creates a notice emitter over the given API.
func NewNotices(api InteractionAPI) *Notices {
	return &Notices{api: api}
}

// Invalid sends a blocking red notice.
func (n *Notices) Invalid(i *discordgo.Interaction, title, description string) error {
	return n.send(i, title, description, theme.Current().NoticeInvalid)
}

// Warning sends a non-blocking yellow notice.
func (n *Notices) Warning(i *discordgo.Interaction, title, description string) error {
	return n.send(i, title, description, theme.Current().NoticeWarning)
}

func (n *Notices) send(i *discordgo.Interaction, title, description string, color int) error {
	err := n.api.Respond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{{
				Title:       title,
				Description: description,
				Color:       color,
			}},
			Flags: discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.DiscordLogger().WithError(err).WithField("notice", title).Error("Failed to deliver notice")
	}
	return err
}
