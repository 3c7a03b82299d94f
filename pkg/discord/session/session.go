package session

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/hazelnoot/embedstudio/pkg/errutil"
	"github.com/hazelnoot/embedstudio/pkg/log"
)

// Error messages
const (
	ErrSessionCreationFailed   = "failed to create Discord session: %w"
	ErrSessionConnectionFailed = "failed to connect to Discord: %w"
)

// NewDiscordSession creates and opens a Discord session.
func NewDiscordSession(token string) (*discordgo.Session, error) {
	var s *discordgo.Session

	if token == "" {
		return nil, fmt.Errorf("discord bot token is empty")
	}

	log.DiscordLogger().Info("Creating Discord session (token redacted)")

	if err := errutil.HandleDiscordError("create_session", func() error {
		var sessionErr error
		s, sessionErr = discordgo.New("Bot " + token)
		return sessionErr
	}); err != nil {
		return nil, fmt.Errorf(ErrSessionCreationFailed, err)
	}

	// The editor needs guild context only; interaction events arrive
	// regardless of intents.
	s.Identify.Intents = discordgo.IntentsGuilds

	log.DiscordLogger().Info("Connecting to Discord...")
	if err := errutil.HandleDiscordError("connect", func() error {
		return s.Open()
	}); err != nil {
		return nil, fmt.Errorf(ErrSessionConnectionFailed, err)
	}

	log.DiscordLogger().Info("Connected to Discord successfully")
	return s, nil
}
