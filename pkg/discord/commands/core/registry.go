package core

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/hazelnoot/embedstudio/pkg/log"
)

// CommandRouter routes slash-command interactions to registered handlers.
type CommandRouter struct {
	session   *discordgo.Session
	registry  *CommandRegistry
	responder *Responder
}

// NewCommandRouter creates a new command router.
func NewCommandRouter(session *discordgo.Session) *CommandRouter {
	return &CommandRouter{
		session:   session,
		registry:  NewCommandRegistry(),
		responder: NewResponder(session),
	}
}

// RegisterCommand registers a command.
func (cr *CommandRouter) RegisterCommand(cmd Command) {
	cr.registry.Register(cmd)
}

// GetRegistry returns the command registry.
func (cr *CommandRouter) GetRegistry() *CommandRegistry {
	return cr.registry
}

// GetResponder returns the responder.
func (cr *CommandRouter) GetResponder() *Responder {
	return cr.responder
}

// HandleInteraction dispatches slash-command interactions. Component and
// modal interactions are handled elsewhere (the editor dispatcher).
func (cr *CommandRouter) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	cr.handleSlashCommand(i)
}

func (cr *CommandRouter) handleSlashCommand(i *discordgo.InteractionCreate) {
	commandName := i.ApplicationCommandData().Name
	ctx := cr.buildContext(i)

	ctx.Logger.Debug("Processing slash command")

	cmd, exists := cr.registry.GetCommand(commandName)
	if !exists {
		ctx.Logger.Error("Command not found")
		_ = cr.responder.Error(i, "Command not found")
		return
	}

	if cmd.RequiresGuild() && ctx.GuildID == "" {
		ctx.Logger.Warn("Command used outside of guild")
		_ = cr.responder.Error(i, "This command can only be used in a server")
		return
	}

	if err := cmd.Handle(ctx); err != nil {
		ctx.Logger.WithError(err).Error("Command execution failed")

		if cmdErr, ok := err.(*CommandError); ok {
			if cmdErr.Ephemeral {
				_ = cr.responder.Ephemeral(i, cmdErr.Message)
			} else {
				_ = cr.responder.Error(i, cmdErr.Message)
			}
		} else {
			_ = cr.responder.Error(i, "An error occurred while executing the command")
		}
	}
}

func (cr *CommandRouter) buildContext(i *discordgo.InteractionCreate) *Context {
	userID := ""
	if i.Member != nil && i.Member.User != nil {
		userID = i.Member.User.ID
	} else if i.User != nil {
		userID = i.User.ID
	}

	return &Context{
		Session:     cr.session,
		Interaction: i,
		Logger: log.DiscordLogger().WithFields(map[string]any{
			"command": i.ApplicationCommandData().Name,
			"guild":   i.GuildID,
			"user":    userID,
		}),
		GuildID:   i.GuildID,
		ChannelID: i.ChannelID,
		UserID:    userID,
	}
}

// CommandManager owns the command lifecycle against the Discord API.
type CommandManager struct {
	session *discordgo.Session
	router  *CommandRouter
	logger  *log.Logger
}

// NewCommandManager creates a new command manager.
func NewCommandManager(session *discordgo.Session) *CommandManager {
	return &CommandManager{
		session: session,
		router:  NewCommandRouter(session),
		logger:  log.ApplicationLogger().WithField("component", "command_manager"),
	}
}

// GetRouter returns the command router.
func (cm *CommandManager) GetRouter() *CommandRouter {
	return cm.router
}

// SetupCommands registers the interaction handler and synchronizes the
// registered commands with Discord incrementally: unchanged commands are
// skipped, changed ones edited, new ones created, orphans deleted.
func (cm *CommandManager) SetupCommands() error {
	cm.session.AddHandler(cm.router.HandleInteraction)

	registered, err := cm.session.ApplicationCommands(cm.session.State.User.ID, "")
	if err != nil {
		return fmt.Errorf("failed to fetch registered commands: %w", err)
	}

	regByName := make(map[string]*discordgo.ApplicationCommand, len(registered))
	for _, rc := range registered {
		regByName[rc.Name] = rc
	}

	codeCommands := cm.router.registry.GetAllCommands()

	created, updated, unchanged := 0, 0, 0
	for name, cmd := range codeCommands {
		desired := &discordgo.ApplicationCommand{
			Name:        cmd.Name(),
			Description: cmd.Description(),
			Options:     cmd.Options(),
		}

		if existing, ok := regByName[name]; ok {
			if CompareCommands(existing, desired) {
				cm.logger.WithField("command", name).Debug("Command unchanged, skipping")
				unchanged++
				continue
			}

			if _, err := cm.session.ApplicationCommandEdit(cm.session.State.User.ID, "", existing.ID, desired); err != nil {
				return fmt.Errorf("error updating command '%s': %w", name, err)
			}
			cm.logger.WithField("command", name).Info("Command updated")
			updated++
		} else {
			if _, err := cm.session.ApplicationCommandCreate(cm.session.State.User.ID, "", desired); err != nil {
				return fmt.Errorf("error creating command '%s': %w", name, err)
			}
			cm.logger.WithField("command", name).Info("Command created")
			created++
		}
	}

	deleted := 0
	for _, rc := range registered {
		if _, exists := codeCommands[rc.Name]; !exists {
			if err := cm.session.ApplicationCommandDelete(cm.session.State.User.ID, "", rc.ID); err != nil {
				cm.logger.WithFields(map[string]any{
					"command": rc.Name,
					"error":   err,
				}).Warn("Error removing orphan command")
				continue
			}
			cm.logger.WithField("command", rc.Name).Info("Orphan command removed")
			deleted++
		}
	}

	cm.logger.WithFields(map[string]any{
		"created":   created,
		"updated":   updated,
		"deleted":   deleted,
		"unchanged": unchanged,
		"total":     len(codeCommands),
	}).Info("Command synchronization completed")

	return nil
}
