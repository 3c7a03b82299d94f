package editor

import "github.com/bwmarrin/discordgo"

// InteractionAPI narrows *discordgo.Session to the interaction operations the
// editor performs, so tests can fake the SDK.
type InteractionAPI interface {
	// Respond acknowledges an interaction: initial reply, message update,
	// deferred update, or modal.
	Respond(i *discordgo.Interaction, resp *discordgo.InteractionResponse) error

	// Response fetches the message created by the initial reply.
	Response(i *discordgo.Interaction) (*discordgo.Message, error)

	// EditResponse edits the message created by the initial reply.
	EditResponse(i *discordgo.Interaction, edit *discordgo.WebhookEdit) (*discordgo.Message, error)

	// DeleteResponse deletes the message created by the initial reply.
	DeleteResponse(i *discordgo.Interaction) error

	// Followup posts a follow-up message on an acknowledged interaction.
	Followup(i *discordgo.Interaction, params *discordgo.WebhookParams) (*discordgo.Message, error)
}

// sessionAPI adapts a live *discordgo.Session to InteractionAPI.
type sessionAPI struct {
	s *discordgo.Session
}

// NewSessionAPI wraps a discordgo session in the narrow interaction interface.
func NewSessionAPI(s *discordgo.Session) InteractionAPI {
	return &sessionAPI{s: s}
}

func (a *sessionAPI) Respond(i *discordgo.Interaction, resp *discordgo.InteractionResponse) error {
	return a.s.InteractionRespond(i, resp)
}

func (a *sessionAPI) Response(i *discordgo.Interaction) (*discordgo.Message, error) {
	return a.s.InteractionResponse(i)
}

func (a *sessionAPI) EditResponse(i *discordgo.Interaction, edit *discordgo.WebhookEdit) (*discordgo.Message, error) {
	return a.s.InteractionResponseEdit(i, edit)
}

func (a *sessionAPI) DeleteResponse(i *discordgo.Interaction) error {
	return a.s.InteractionResponseDelete(i)
}

func (a *sessionAPI) Followup(i *discordgo.Interaction, params *discordgo.WebhookParams) (*discordgo.Message, error) {
	return a.s.FollowupMessageCreate(i, true, params)
}
