package editor

import (
	"sync"

	"github.com/bwmarrin/discordgo"
)

// fakeAPI records interaction calls so tests can assert on the rendered
// output without a live session.
type fakeAPI struct {
	mu sync.Mutex

	responses []*discordgo.InteractionResponse
	edits     []*discordgo.WebhookEdit
	deletes   int

	respondErr error
	panelID    string
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{panelID: "panel-1"}
}

func (f *fakeAPI) Respond(_ *discordgo.Interaction, resp *discordgo.InteractionResponse) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.respondErr != nil {
		return f.respondErr
	}
	f.responses = append(f.responses, resp)
	return nil
}

func (f *fakeAPI) Response(_ *discordgo.Interaction) (*discordgo.Message, error) {
	return &discordgo.Message{ID: f.panelID}, nil
}

func (f *fakeAPI) EditResponse(_ *discordgo.Interaction, edit *discordgo.WebhookEdit) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.edits = append(f.edits, edit)
	return &discordgo.Message{ID: f.panelID}, nil
}

func (f *fakeAPI) DeleteResponse(_ *discordgo.Interaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes++
	return nil
}

func (f *fakeAPI) Followup(_ *discordgo.Interaction, _ *discordgo.WebhookParams) (*discordgo.Message, error) {
	return &discordgo.Message{ID: "followup-1"}, nil
}

func (f *fakeAPI) lastResponse() *discordgo.InteractionResponse {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.responses) == 0 {
		return nil
	}
	return f.responses[len(f.responses)-1]
}

func (f *fakeAPI) lastEdit() *discordgo.WebhookEdit {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.edits) == 0 {
		return nil
	}
	return f.edits[len(f.edits)-1]
}

func (f *fakeAPI) editCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.edits)
}

// newTestEditor builds an editor over a fakeAPI, bound to user u1.
func newTestEditor() (*Editor, *fakeAPI) {
	api := newFakeAPI()
	root := &discordgo.Interaction{ID: "root-1", GuildID: "g1", ChannelID: "c1"}
	e := newEditor(api, root, "u1", DefaultIconURL)
	return e, api
}

// componentInteraction builds one component press on the editor panel.
func componentInteraction(userID, panelID, customID string, values ...string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:   "comp-1",
			Type: discordgo.InteractionMessageComponent,
			Data: discordgo.MessageComponentInteractionData{
				CustomID: customID,
				Values:   values,
			},
			Message: &discordgo.Message{ID: panelID},
			GuildID: "g1",
			Member:  &discordgo.Member{User: &discordgo.User{ID: userID}},
		},
	}
}

// modalInteraction builds one modal submission with the given text inputs.
func modalInteraction(userID, modalID string, inputs map[string]string) *discordgo.InteractionCreate {
	var rows []discordgo.MessageComponent
	for id, value := range inputs {
		rows = append(rows, discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.TextInput{CustomID: id, Value: value},
			},
		})
	}
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:   "modal-1",
			Type: discordgo.InteractionModalSubmit,
			Data: discordgo.ModalSubmitInteractionData{
				CustomID:   modalID,
				Components: rows,
			},
			GuildID: "g1",
			Member:  &discordgo.Member{User: &discordgo.User{ID: userID}},
		},
	}
}
