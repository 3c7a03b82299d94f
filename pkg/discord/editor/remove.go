package editor

import (
	"github.com/bwmarrin/discordgo"
)

// Removal notice wording.
const (
	removalLockTitle = "Impossible operation"
	removalLockDesc  = "If there are two or fewer elements and two of them contain timestamps, they can't be removed."
	badElementTitle  = "Bad element request"
	badElementDesc   = "The last remaining property can't be removed."
)

// removeProperty applies one idempotent property removal. Preconditions are
// checked in order: the timestamp lock, the removal ledger, and the property
// floor. A removal that passes them clears the property, records it in the
// ledger, cascades title→url, recomputes the property counter, and re-renders
// the main panel in build mode.
//
// Caller holds e.mu.
func (e *Editor) removeProperty(p Property, i *discordgo.Interaction, notices *Notices) error {
	present := e.presentProperties()

	timestamped := false
	for _, pp := range present {
		if pp == PropTimestamp {
			timestamped = true
			break
		}
	}
	if len(present) <= 2 && timestamped {
		return notices.Invalid(i, removalLockTitle, removalLockDesc)
	}

	if e.removed[p] {
		// Re-removal is a no-op but the event still wants an ack.
		return ackUpdate(e.api, i)
	}

	if e.propLength <= 1 {
		return notices.Invalid(i, badElementTitle, badElementDesc)
	}

	if err := ackUpdate(e.api, i); err != nil {
		return err
	}

	e.clearProperty(p)
	e.removed[p] = true

	// A title-less URL cannot render; removing the title takes the URL with it.
	if e.draft.Title == "" && e.draft.URL != "" {
		e.draft.URL = ""
		e.removed[PropURL] = true
	}

	e.updatePropLength()
	e.change = false
	return e.render(mainPanel())
}

// ackUpdate acknowledges a component interaction without changing the
// message; the follow-up render happens through the original response.
func ackUpdate(api InteractionAPI, i *discordgo.Interaction) error {
	return api.Respond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	})
}
