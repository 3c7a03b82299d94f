package commands

import (
	"github.com/hazelnoot/embedstudio/pkg/discord/commands/core"
	"github.com/hazelnoot/embedstudio/pkg/discord/editor"
)

// NewEmbedCommand builds the /embed command, which opens a fresh editor
// session on the invoking interaction.
func NewEmbedCommand(dispatcher *editor.Dispatcher) *core.SimpleCommand {
	return core.NewSimpleCommand(
		"embed",
		"Open the interactive embed editor",
		nil,
		func(ctx *core.Context) error {
			ctx.Logger.WithField("user", ctx.UserID).Info("Opening embed editor")
			if err := dispatcher.StartSession(ctx.Interaction); err != nil {
				ctx.Logger.WithError(err).Error("Failed to open embed editor")
				return core.NewCommandError("Failed to open the embed editor. Please retry.", true)
			}
			return nil
		},
		true,
	)
}
