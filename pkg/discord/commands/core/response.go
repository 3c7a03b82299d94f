package core

import (
	"github.com/bwmarrin/discordgo"
	"github.com/hazelnoot/embedstudio/pkg/theme"
)

// Responder sends standardized interaction responses.
type Responder struct {
	session *discordgo.Session
}

// NewResponder creates a responder bound to a session.
func NewResponder(session *discordgo.Session) *Responder {
	return &Responder{session: session}
}

// Error sends a visible error response for a failed command.
func (r *Responder) Error(i *discordgo.InteractionCreate, message string) error {
	return r.respondEmbed(i, message, theme.Current().Error, false)
}

// Ephemeral sends an ephemeral informational response.
func (r *Responder) Ephemeral(i *discordgo.InteractionCreate, message string) error {
	return r.respondEmbed(i, message, theme.Current().Info, true)
}

func (r *Responder) respondEmbed(i *discordgo.InteractionCreate, message string, color int, ephemeral bool) error {
	var flags discordgo.MessageFlags
	if ephemeral {
		flags = discordgo.MessageFlagsEphemeral
	}
	return r.session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{{
				Description: message,
				Color:       color,
			}},
			Flags: flags,
		},
	})
}
