package app

import (
	"fmt"
	"os"
	"time"

	"github.com/hazelnoot/embedstudio/pkg/discord/commands"
	"github.com/hazelnoot/embedstudio/pkg/discord/commands/core"
	"github.com/hazelnoot/embedstudio/pkg/discord/editor"
	"github.com/hazelnoot/embedstudio/pkg/discord/session"
	"github.com/hazelnoot/embedstudio/pkg/errutil"
	"github.com/hazelnoot/embedstudio/pkg/log"
	"github.com/hazelnoot/embedstudio/pkg/storage"
	"github.com/hazelnoot/embedstudio/pkg/theme"
	"github.com/hazelnoot/embedstudio/pkg/util"
)

// Run bootstraps the bot and blocks until shutdown. appName affects
// config/data/log paths; tokenEnv is the environment variable containing the
// bot token. The tokenEnv is read from the current process environment first;
// if empty, a fallback $HOME/.local/bin/.env file is loaded and the variable
// re-checked.
func Run(appName, tokenEnv string) error {
	started := time.Now()

	// App name first (affects paths)
	util.SetAppName(appName)

	// Load env (with $HOME/.local/bin fallback)
	token, loadErr := util.LoadEnvWithLocalBinFallback(tokenEnv)

	// Logger first so subsequent steps can log meaningfully
	if err := log.SetupLogger(util.LogDir()); err != nil {
		return fmt.Errorf("configure logger: %w", err)
	}
	defer log.Sync()

	if loadErr != nil {
		log.ApplicationLogger().Warn(fmt.Sprintf("Warning: %v", loadErr))
	}

	// Theme configuration
	if name := os.Getenv("EMBEDSTUDIO_THEME"); name != "" {
		if err := theme.SetCurrent(name); err != nil {
			log.ApplicationLogger().Warn(fmt.Sprintf("Failed to set theme from EMBEDSTUDIO_THEME: %v", err))
		}
	}

	log.ApplicationLogger().Info(fmt.Sprintf("🚀 Starting %s...", appName))

	// Token must be present
	if token == "" {
		return fmt.Errorf("%s not set in environment or .env file", tokenEnv)
	}

	// Discord session
	log.DiscordLogger().Info("🔑 Attempting to authenticate with Discord API...")
	discordSession, err := session.NewDiscordSession(token)
	if err != nil {
		return fmt.Errorf("create discord session: %w", err)
	}
	if discordSession.State == nil || discordSession.State.User == nil {
		return fmt.Errorf("discord session state not properly initialized")
	}
	log.DiscordLogger().Info(fmt.Sprintf("✅ Authenticated as %s#%s", discordSession.State.User.Username, discordSession.State.User.Discriminator))

	// SQLite history store (support EMBEDSTUDIO_DB_PATH override). The
	// dispatcher tolerates a nil store, so history can be switched off.
	var store *storage.Store
	if util.EnvBool("EMBEDSTUDIO_DISABLE_HISTORY") {
		log.ApplicationLogger().Info("📕 History recording disabled via EMBEDSTUDIO_DISABLE_HISTORY")
	} else {
		dbPath := util.HistoryDBPath()
		if v := os.Getenv("EMBEDSTUDIO_DB_PATH"); v != "" {
			dbPath = v
		}
		store = storage.NewStore(dbPath)
		if err := errutil.HandleConfigError("history db", dbPath, store.Init); err != nil {
			return err
		}
	}

	// Editor dispatcher
	dispatcher := editor.NewDispatcher(
		editor.NewSessionAPI(discordSession),
		store,
		os.Getenv("EMBEDSTUDIO_ICON_URL"),
	)
	discordSession.AddHandler(dispatcher.HandleInteraction)

	// Commands
	commandManager := core.NewCommandManager(discordSession)
	commandManager.GetRouter().RegisterCommand(commands.NewEmbedCommand(dispatcher))
	if err := commandManager.SetupCommands(); err != nil {
		return fmt.Errorf("configure slash commands: %w", err)
	}

	log.ApplicationLogger().Info("🔗 Slash commands sync completed")
	log.ApplicationLogger().Info(fmt.Sprintf("🎯 %s initialized successfully in %s", appName, time.Since(started).Round(time.Millisecond)))
	log.ApplicationLogger().Info(fmt.Sprintf("🤖 %s running. Press Ctrl+C to stop...", appName))

	// Wait for shutdown signal
	util.WaitForInterrupt()
	log.ApplicationLogger().Info(fmt.Sprintf("🛑 Stopping %s...", appName))

	if sessions := dispatcher.Sessions(); sessions > 0 {
		log.ApplicationLogger().Warn(fmt.Sprintf("Shutting down with %d editor session(s) still open", sessions))
	}

	if store != nil {
		_ = store.Close()
	}
	if discordSession != nil {
		_ = discordSession.Close()
	}

	return nil
}
