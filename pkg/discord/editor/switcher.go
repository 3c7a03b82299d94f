package editor

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
)

// modalAwaitTimeout bounds how long a property editor waits for the user to
// submit the modal form. A timeout drops the edit silently, exactly like a
// user dismissing the dialog.
const modalAwaitTimeout = 60 * time.Second

// Validation notice wording.
const (
	invalidHexTitle  = "Invalid hex color"
	invalidHexDesc   = "Hex colors must be specified according to the rules."
	invalidURLTitle  = "Invalid URL"
	invalidURLDesc   = "URL must be specified according to the rules."
	unsupportedTitle = "Unsupported format"
	unsupportedDesc  = "Discord doesn't support this image format."
)

// editProperty dispatches one build-mode menu pick. Timestamp toggles in
// place and fields switch surfaces; every other property runs a modal cycle.
func (d *Dispatcher) editProperty(e *Editor, i *discordgo.InteractionCreate, p Property) error {
	switch p {
	case PropTimestamp:
		e.mu.Lock()
		defer e.mu.Unlock()
		if err := ackUpdate(e.api, i.Interaction); err != nil {
			return err
		}
		e.toggleTimestamp()
		return e.render(mainPanel())

	case PropFields:
		e.mu.Lock()
		defer e.mu.Unlock()
		if err := ackUpdate(e.api, i.Interaction); err != nil {
			return err
		}
		return e.render(fieldPanel())

	default:
		return d.runModalEditor(e, i, p)
	}
}

// runModalEditor shows the property's modal, re-renders the unchanged panel
// so it stays responsive, and hands the rest of the cycle to a goroutine that
// awaits the submission.
func (d *Dispatcher) runModalEditor(e *Editor, i *discordgo.InteractionCreate, p Property) error {
	modal := modalFor(p)
	if modal == nil {
		return ackUpdate(e.api, i.Interaction)
	}

	if err := e.api.Respond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: modal,
	}); err != nil {
		return err
	}

	e.mu.Lock()
	err := e.render(mainPanel())
	e.mu.Unlock()
	if err != nil {
		return err
	}

	go d.awaitAndApply(e, p)
	return nil
}

// awaitAndApply blocks on the modal submission up to the deadline, then
// validates and applies it under the session lock. Timeouts are silent.
func (d *Dispatcher) awaitAndApply(e *Editor, p Property) {
	ctx, cancel := context.WithTimeout(context.Background(), modalAwaitTimeout)
	defer cancel()

	ic, err := d.awaitModal(ctx, e.userID)
	if err != nil {
		e.logger.WithField("property", p).Debug("Modal await ended without submission")
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if !d.live(e) {
		// The session ended while the modal was open. Ack the submission
		// so the client does not hang, and drop the edit.
		_ = ackUpdate(d.api, ic.Interaction)
		return
	}

	if err := d.applySubmission(e, ic, p); err != nil {
		d.fatal(e, err)
	}
}

// applySubmission validates one modal submission and mutates the draft.
// Invalid input produces a notice and leaves the draft unchanged; the session
// stays alive either way. Caller holds e.mu.
func (d *Dispatcher) applySubmission(e *Editor, ic *discordgo.InteractionCreate, p Property) error {
	data := ic.ModalSubmitData()

	switch p {
	case PropColor:
		content := textInputValue(data, idColorInput)
		if !ValidHexColor(content) {
			return d.notices.Invalid(ic.Interaction, invalidHexTitle, invalidHexDesc)
		}
		v, err := strconv.ParseInt(strings.ToUpper(content)[1:], 16, 32)
		if err != nil {
			return d.notices.Invalid(ic.Interaction, invalidHexTitle, invalidHexDesc)
		}
		e.draft.Color = int(v)
		return d.ackAndRender(e, ic)

	case PropTitle:
		e.draft.Title = textInputValue(data, idTitleInput)
		return d.ackAndRender(e, ic)

	case PropURL:
		content := textInputValue(data, idTitleURLInput)
		if !ValidURL(content) {
			return d.notices.Invalid(ic.Interaction, invalidURLTitle, invalidURLDesc)
		}
		e.draft.URL = content
		return d.ackAndRender(e, ic)

	case PropAuthor:
		name := textInputValue(data, idAuthorNameInput)
		iconURL, acked, ok := d.imageVerify(ic, idAuthorIconInput)
		if !ok {
			return nil
		}
		// The author link is required by the form but deliberately not
		// URL-validated, matching the platform's lenient handling.
		nameURL := textInputValue(data, idAuthorURLInput)
		e.draft.Author = &discordgo.MessageEmbedAuthor{
			Name:    name,
			IconURL: iconURL,
			URL:     nameURL,
		}
		return d.finishSubmission(e, ic, acked)

	case PropDescription:
		e.draft.Description = textInputValue(data, idDescriptionInput)
		return d.ackAndRender(e, ic)

	case PropThumbnail:
		content, acked, ok := d.imageVerify(ic, idThumbnailInput)
		if !ok {
			return nil
		}
		e.draft.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: content}
		return d.finishSubmission(e, ic, acked)

	case PropImage:
		content, acked, ok := d.imageVerify(ic, idImageInput)
		if !ok {
			return nil
		}
		e.draft.Image = &discordgo.MessageEmbedImage{URL: content}
		return d.finishSubmission(e, ic, acked)

	case PropFooter:
		text := textInputValue(data, idFooterTextInput)
		iconURL, acked, ok := d.imageVerify(ic, idFooterIconInput)
		if !ok {
			return nil
		}
		e.draft.Footer = &discordgo.MessageEmbedFooter{
			Text:    text,
			IconURL: iconURL,
		}
		return d.finishSubmission(e, ic, acked)
	}

	return nil
}

// imageVerify extracts and checks an image URL from the submission. A
// malformed URL is blocking; an unsupported extension only warns and the
// value is still used. The second return reports whether a notice already
// acknowledged the interaction.
func (d *Dispatcher) imageVerify(ic *discordgo.InteractionCreate, customID string) (value string, acked, ok bool) {
	content := textInputValue(ic.ModalSubmitData(), customID)

	if !ValidURL(content) {
		_ = d.notices.Invalid(ic.Interaction, invalidURLTitle, invalidURLDesc)
		return "", true, false
	}

	if !SupportedImageFormat(content) {
		_ = d.notices.Warning(ic.Interaction, unsupportedTitle, unsupportedDesc)
		return content, true, true
	}

	return content, false, true
}

// ackAndRender acknowledges the submission and reconciles the panel.
func (d *Dispatcher) ackAndRender(e *Editor, ic *discordgo.InteractionCreate) error {
	return d.finishSubmission(e, ic, false)
}

func (d *Dispatcher) finishSubmission(e *Editor, ic *discordgo.InteractionCreate, acked bool) error {
	if !acked {
		if err := ackUpdate(e.api, ic.Interaction); err != nil {
			return err
		}
	}
	return e.render(mainPanel())
}
