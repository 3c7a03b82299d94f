package editor

import "github.com/bwmarrin/discordgo"

// Modal custom IDs and their text-input IDs, part of the wire contract.
const (
	idColorModal       = "color-modal"
	idColorInput       = "color-modal-content"
	idTitleModal       = "title-modal"
	idTitleInput       = "title-modal-content"
	idTitleURLModal    = "title-url-modal"
	idTitleURLInput    = "title-url-modal-content"
	idAuthorModal      = "author-modal"
	idAuthorNameInput  = "author-modal-content_1"
	idAuthorIconInput  = "author-modal-content_2"
	idAuthorURLInput   = "author-modal-content_3"
	idDescriptionModal = "description-modal"
	idDescriptionInput = "description-modal-content"
	idThumbnailModal   = "thumbnail-modal"
	idThumbnailInput   = "thumbnail-modal-content"
	idImageModal       = "image-modal"
	idImageInput       = "image-modal-content"
	idFooterModal      = "footer-modal"
	idFooterTextInput  = "footer-modal-content_1"
	idFooterIconInput  = "footer-modal-content_2"
)

// modalCustomIDs is the filter set AwaitModalSubmit accepts.
var modalCustomIDs = map[string]struct{}{
	idColorModal:       {},
	idTitleModal:       {},
	idTitleURLModal:    {},
	idAuthorModal:      {},
	idDescriptionModal: {},
	idThumbnailModal:   {},
	idImageModal:       {},
	idFooterModal:      {},
}

func textInputRow(customID, label, placeholder string, style discordgo.TextInputStyle, minLen, maxLen int) discordgo.ActionsRow {
	return discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.TextInput{
				CustomID:    customID,
				Label:       label,
				Placeholder: placeholder,
				Style:       style,
				Required:    true,
				MinLength:   minLen,
				MaxLength:   maxLen,
			},
		},
	}
}

// modalFor returns the modal form for one editable property. Timestamp and
// fields have no modal; the caller never asks for one.
func modalFor(p Property) *discordgo.InteractionResponseData {
	switch p {
	case PropColor:
		return &discordgo.InteractionResponseData{
			CustomID: idColorModal,
			Title:    "Edit Embed Color",
			Components: []discordgo.MessageComponent{
				textInputRow(idColorInput, "Color", "#FFFFFF", discordgo.TextInputShort, 7, 7),
			},
		}
	case PropTitle:
		return &discordgo.InteractionResponseData{
			CustomID: idTitleModal,
			Title:    "Edit Embed Title",
			Components: []discordgo.MessageComponent{
				textInputRow(idTitleInput, "Title", "Some Title", discordgo.TextInputParagraph, 0, 256),
			},
		}
	case PropURL:
		return &discordgo.InteractionResponseData{
			CustomID: idTitleURLModal,
			Title:    "Edit Embed Title URL",
			Components: []discordgo.MessageComponent{
				textInputRow(idTitleURLInput, "Title URL", officialURL, discordgo.TextInputParagraph, 0, 0),
			},
		}
	case PropAuthor:
		return &discordgo.InteractionResponseData{
			CustomID: idAuthorModal,
			Title:    "Edit Embed Author",
			Components: []discordgo.MessageComponent{
				textInputRow(idAuthorNameInput, "Author Name", "Some name", discordgo.TextInputParagraph, 0, 256),
				textInputRow(idAuthorIconInput, "Author Icon URL", "https://", discordgo.TextInputParagraph, 0, 0),
				textInputRow(idAuthorURLInput, "Author Name URL", officialURL, discordgo.TextInputParagraph, 0, 0),
			},
		}
	case PropDescription:
		return &discordgo.InteractionResponseData{
			CustomID: idDescriptionModal,
			Title:    "Edit Embed Description",
			Components: []discordgo.MessageComponent{
				textInputRow(idDescriptionInput, "Description", "Some Description", discordgo.TextInputParagraph, 0, 0),
			},
		}
	case PropThumbnail:
		return &discordgo.InteractionResponseData{
			CustomID: idThumbnailModal,
			Title:    "Edit Embed Thumbnail",
			Components: []discordgo.MessageComponent{
				textInputRow(idThumbnailInput, "Thumbnail URL", "https://", discordgo.TextInputParagraph, 0, 0),
			},
		}
	case PropImage:
		return &discordgo.InteractionResponseData{
			CustomID: idImageModal,
			Title:    "Edit Embed Image",
			Components: []discordgo.MessageComponent{
				textInputRow(idImageInput, "Image URL", "https://", discordgo.TextInputParagraph, 0, 0),
			},
		}
	case PropFooter:
		return &discordgo.InteractionResponseData{
			CustomID: idFooterModal,
			Title:    "Edit Embed Footer",
			Components: []discordgo.MessageComponent{
				textInputRow(idFooterTextInput, "Footer Text", "Some text", discordgo.TextInputParagraph, 0, 2048),
				textInputRow(idFooterIconInput, "Footer Icon URL", "https://", discordgo.TextInputParagraph, 0, 0),
			},
		}
	}
	return nil
}

// textInputValue extracts a named text input from a modal submission.
func textInputValue(data discordgo.ModalSubmitInteractionData, customID string) string {
	for _, row := range data.Components {
		var comps []discordgo.MessageComponent
		switch ar := row.(type) {
		case *discordgo.ActionsRow:
			comps = ar.Components
		case discordgo.ActionsRow:
			comps = ar.Components
		default:
			continue
		}
		for _, c := range comps {
			switch ti := c.(type) {
			case *discordgo.TextInput:
				if ti.CustomID == customID {
					return ti.Value
				}
			case discordgo.TextInput:
				if ti.CustomID == customID {
					return ti.Value
				}
			}
		}
	}
	return ""
}
