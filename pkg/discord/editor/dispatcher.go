package editor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/hazelnoot/embedstudio/pkg/log"
	"github.com/hazelnoot/embedstudio/pkg/storage"
	"github.com/hazelnoot/embedstudio/pkg/theme"
)

// Fatal embed wording.
const (
	fatalTitle = "An unexpected error has occurred"
	fatalDesc  = "Please retry."
)

// Wrong-user notice wording.
const (
	wrongUserTitle = "Invalid user"
	wrongUserDesc  = "Only the user who started this editor can use it."
)

// Dispatcher routes component and modal interactions to live editing
// sessions. Sessions are keyed by the panel message ID; modal waiters are
// keyed by user ID. Unexpected errors are absorbed here: the session gets the
// fatal embed and ends, other sessions are unaffected.
type Dispatcher struct {
	api     InteractionAPI
	notices *Notices
	store   *storage.Store
	iconURL string
	logger  *log.Logger

	mu       sync.Mutex
	sessions map[string]*Editor
	waiters  map[string]chan *discordgo.InteractionCreate
}

// NewDispatcher creates a dispatcher. store may be nil to disable history
// recording, and an empty iconURL falls back to the default avatar.
func NewDispatcher(api InteractionAPI, store *storage.Store, iconURL string) *Dispatcher {
	if iconURL == "" {
		iconURL = DefaultIconURL
	}
	return &Dispatcher{
		api:      api,
		notices:  NewNotices(api),
		store:    store,
		iconURL:  iconURL,
		logger:   log.DiscordLogger().WithField("component", "embed_dispatcher"),
		sessions: make(map[string]*Editor),
		waiters:  make(map[string]chan *discordgo.InteractionCreate),
	}
}

// StartSession answers a slash command with a fresh draft panel and registers
// the session under the created message.
func (d *Dispatcher) StartSession(i *discordgo.InteractionCreate) error {
	userID := interactionUserID(i)
	if userID == "" {
		return fmt.Errorf("interaction carries no user")
	}

	e := newEditor(d.api, i.Interaction, userID, d.iconURL)

	err := d.api.Respond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{e.draft},
			Components: buildMainComponents(false),
		},
	})
	if err != nil {
		return fmt.Errorf("open editor panel: %w", err)
	}

	msg, err := d.api.Response(i.Interaction)
	if err != nil {
		return fmt.Errorf("resolve editor panel: %w", err)
	}
	e.panelID = msg.ID

	d.mu.Lock()
	d.sessions[msg.ID] = e
	d.mu.Unlock()

	e.logger.WithField("panel", msg.ID).Info("Editor session started")
	return nil
}

// HandleInteraction is the gateway handler for everything after the opening
// slash command. Unknown messages and foreign custom IDs are ignored so other
// handlers on the session can claim them.
func (d *Dispatcher) HandleInteraction(_ *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionMessageComponent:
		d.handleComponent(i)
	case discordgo.InteractionModalSubmit:
		d.handleModalSubmit(i)
	}
}

func (d *Dispatcher) handleComponent(i *discordgo.InteractionCreate) {
	if i.Message == nil {
		return
	}

	d.mu.Lock()
	e := d.sessions[i.Message.ID]
	d.mu.Unlock()
	if e == nil {
		return
	}

	if interactionUserID(i) != e.userID {
		_ = d.notices.Invalid(i.Interaction, wrongUserTitle, wrongUserDesc)
		return
	}

	defer d.absorb(e)

	if err := d.routeComponent(e, i); err != nil {
		d.fatal(e, err)
	}
}

func (d *Dispatcher) routeComponent(e *Editor, i *discordgo.InteractionCreate) error {
	data := i.MessageComponentData()

	switch data.CustomID {
	case idSelectOptions:
		if len(data.Values) == 0 {
			return ackUpdate(d.api, i.Interaction)
		}
		p, ok := ParseProperty(data.Values[0])
		if !ok {
			return ackUpdate(d.api, i.Interaction)
		}
		e.mu.Lock()
		change := e.change
		e.mu.Unlock()
		if change {
			e.mu.Lock()
			defer e.mu.Unlock()
			return e.removeProperty(p, i.Interaction, d.notices)
		}
		return d.editProperty(e, i, p)

	case idChange:
		e.mu.Lock()
		defer e.mu.Unlock()
		if err := ackUpdate(d.api, i.Interaction); err != nil {
			return err
		}
		e.change = !e.change
		return e.render(renderOptions{components: true, change: e.change})

	case idSubmit:
		return d.submit(e, i)

	case idCancel:
		return d.cancel(e, i)

	case idSelectFields:
		if len(data.Values) == 0 {
			return ackUpdate(d.api, i.Interaction)
		}
		e.mu.Lock()
		defer e.mu.Unlock()
		return e.selectField(i.Interaction, data.Values[0])

	case idIncrement:
		e.mu.Lock()
		defer e.mu.Unlock()
		return e.incrementField(i.Interaction, d.notices)

	case idDecrement:
		e.mu.Lock()
		defer e.mu.Unlock()
		return e.decrementField(i.Interaction, d.notices)

	case idBack:
		e.mu.Lock()
		defer e.mu.Unlock()
		return e.backToMain(i.Interaction)

	case idEnabledInline:
		e.mu.Lock()
		defer e.mu.Unlock()
		return e.setInline(i.Interaction, true)

	case idDisabledInline:
		e.mu.Lock()
		defer e.mu.Unlock()
		return e.setInline(i.Interaction, false)

	case idEnabledAllInline:
		e.mu.Lock()
		defer e.mu.Unlock()
		return e.setInlineAll(i.Interaction, true)

	case idDisabledAllInline:
		e.mu.Lock()
		defer e.mu.Unlock()
		return e.setInlineAll(i.Interaction, false)

	case idRemove:
		e.mu.Lock()
		defer e.mu.Unlock()
		return e.removeField(i.Interaction, d.notices)

	case idAllRemove:
		e.mu.Lock()
		defer e.mu.Unlock()
		return e.removeAllFields(i.Interaction)
	}

	return nil
}

// submit freezes the draft: the panel loses its controls, the snapshot goes
// to history, and the session ends.
func (d *Dispatcher) submit(e *Editor, i *discordgo.InteractionCreate) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := ackUpdate(d.api, i.Interaction); err != nil {
		return err
	}
	if err := e.render(bare()); err != nil {
		return err
	}

	d.endSession(e)
	if d.store != nil {
		rec := storage.FinalizedEmbed{
			GuildID:     e.guildID,
			ChannelID:   e.channelID,
			UserID:      e.userID,
			Embed:       e.draft,
			SubmittedAt: time.Now(),
			Duration:    time.Since(e.startedAt),
		}
		if err := d.store.RecordFinalizedEmbed(rec); err != nil {
			d.logger.WithError(err).Error("Failed to record finalized embed")
		}
		d.countOutcome(storage.OutcomeSubmitted)
	}
	e.logger.WithField("panel", e.panelID).Info("Editor session submitted")
	return nil
}

// cancel discards the draft by deleting the panel message.
func (d *Dispatcher) cancel(e *Editor, i *discordgo.InteractionCreate) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := ackUpdate(d.api, i.Interaction); err != nil {
		return err
	}
	if err := d.api.DeleteResponse(e.root); err != nil {
		return err
	}

	d.endSession(e)
	d.countOutcome(storage.OutcomeCancelled)
	e.logger.WithField("panel", e.panelID).Info("Editor session cancelled")
	return nil
}

func (d *Dispatcher) handleModalSubmit(i *discordgo.InteractionCreate) {
	data := i.ModalSubmitData()
	if _, ok := modalCustomIDs[data.CustomID]; !ok {
		return
	}

	userID := interactionUserID(i)
	d.mu.Lock()
	ch := d.waiters[userID]
	delete(d.waiters, userID)
	d.mu.Unlock()

	if ch == nil {
		// The deadline has already passed. Ack so the client does not
		// show a spinner error, but the edit is gone.
		_ = ackUpdate(d.api, i.Interaction)
		return
	}
	ch <- i
}

// errWaiterReleased reports that a pending modal waiter was closed because
// the session ended or a newer modal superseded it.
var errWaiterReleased = errors.New("modal waiter released")

// awaitModal blocks until the user submits one of the editor's modals or the
// context expires. One waiter per user; opening a second modal releases the
// first, and ending the session releases any pending one.
func (d *Dispatcher) awaitModal(ctx context.Context, userID string) (*discordgo.InteractionCreate, error) {
	ch := make(chan *discordgo.InteractionCreate, 1)

	d.mu.Lock()
	if prev, ok := d.waiters[userID]; ok {
		close(prev)
	}
	d.waiters[userID] = ch
	d.mu.Unlock()

	select {
	case ic, ok := <-ch:
		if !ok {
			return nil, errWaiterReleased
		}
		return ic, nil
	case <-ctx.Done():
		d.mu.Lock()
		if d.waiters[userID] == ch {
			delete(d.waiters, userID)
			d.mu.Unlock()
			return nil, ctx.Err()
		}
		d.mu.Unlock()
		// The waiter was claimed right at the deadline. A submission is
		// either in flight or the channel was closed; take it so the edit
		// is applied instead of lost.
		if ic, ok := <-ch; ok {
			return ic, nil
		}
		return nil, errWaiterReleased
	}
}

// absorb recovers a handler panic and converts it into the fatal path, so a
// bad session never takes the gateway handler down.
func (d *Dispatcher) absorb(e *Editor) {
	if r := recover(); r != nil {
		d.fatal(e, fmt.Errorf("editor panic: %v", r))
	}
}

// fatal replaces the panel with the error embed and ends the session. A
// failed render means the interaction token expired; the session still ends,
// just quietly.
func (d *Dispatcher) fatal(e *Editor, cause error) {
	e.logger.WithError(cause).Error("Editor session failed")

	fatal := &discordgo.MessageEmbed{
		Title:       fatalTitle,
		Description: fatalDesc,
		Color:       theme.Current().EditorFatal,
	}
	if err := e.renderEmbed(fatal); err != nil {
		e.logger.WithError(err).Debug("Failed to render fatal embed")
	}

	d.endSession(e)
	d.countOutcome(storage.OutcomeFailed)
}

// endSession drops the session from the registry. Safe to call twice.
func (d *Dispatcher) endSession(e *Editor) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if ch, ok := d.waiters[e.userID]; ok {
		delete(d.waiters, e.userID)
		close(ch)
	}
	if e.panelID != "" {
		delete(d.sessions, e.panelID)
		return
	}
	for id, s := range d.sessions {
		if s == e {
			delete(d.sessions, id)
		}
	}
}

// live reports whether the session is still registered.
func (d *Dispatcher) live(e *Editor) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.sessions[e.panelID]
	return ok
}

func (d *Dispatcher) countOutcome(outcome string) {
	if d.store == nil {
		return
	}
	if err := d.store.IncrementOutcome(outcome); err != nil {
		d.logger.WithError(err).WithField("outcome", outcome).Error("Failed to count session outcome")
	}
}

// Sessions reports how many editors are live.
func (d *Dispatcher) Sessions() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.sessions)
}

func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}
