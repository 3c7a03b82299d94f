package core

import (
	"github.com/bwmarrin/discordgo"
	"github.com/hazelnoot/embedstudio/pkg/log"
)

// Command represents one application command.
type Command interface {
	Name() string
	Description() string
	Options() []*discordgo.ApplicationCommandOption
	Handle(ctx *Context) error
	RequiresGuild() bool
}

// Context carries everything a command handler needs for one invocation.
type Context struct {
	Session     *discordgo.Session
	Interaction *discordgo.InteractionCreate
	Logger      *log.Logger
	GuildID     string
	ChannelID   string
	UserID      string
}

// CommandRegistry holds registered commands by name.
type CommandRegistry struct {
	commands map[string]Command
}

func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{commands: make(map[string]Command)}
}

// Register adds a command to the registry, replacing any previous command of
// the same name.
func (r *CommandRegistry) Register(cmd Command) {
	r.commands[cmd.Name()] = cmd
}

// GetCommand returns a command by name.
func (r *CommandRegistry) GetCommand(name string) (Command, bool) {
	cmd, exists := r.commands[name]
	return cmd, exists
}

// GetAllCommands returns all registered commands keyed by name.
func (r *CommandRegistry) GetAllCommands() map[string]Command {
	return r.commands
}

// CommandError is an error a handler returns when the failure should be shown
// to the invoking user rather than swallowed.
type CommandError struct {
	Message   string
	Ephemeral bool
}

func (e *CommandError) Error() string {
	return e.Message
}

// NewCommandError creates a new command error.
func NewCommandError(message string, ephemeral bool) *CommandError {
	return &CommandError{Message: message, Ephemeral: ephemeral}
}

// SimpleCommand implements Command for handler-function commands.
type SimpleCommand struct {
	name          string
	description   string
	options       []*discordgo.ApplicationCommandOption
	handler       func(ctx *Context) error
	requiresGuild bool
}

// NewSimpleCommand creates a simple command.
func NewSimpleCommand(
	name, description string,
	options []*discordgo.ApplicationCommandOption,
	handler func(ctx *Context) error,
	requiresGuild bool,
) *SimpleCommand {
	return &SimpleCommand{
		name:          name,
		description:   description,
		options:       options,
		handler:       handler,
		requiresGuild: requiresGuild,
	}
}

func (sc *SimpleCommand) Name() string        { return sc.name }
func (sc *SimpleCommand) Description() string { return sc.description }
func (sc *SimpleCommand) Options() []*discordgo.ApplicationCommandOption {
	return sc.options
}
func (sc *SimpleCommand) Handle(ctx *Context) error { return sc.handler(ctx) }
func (sc *SimpleCommand) RequiresGuild() bool       { return sc.requiresGuild }
