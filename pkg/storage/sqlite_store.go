package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bwmarrin/discordgo"
	_ "modernc.org/sqlite"
)

// Store wraps an embedded SQLite database that records finalized embeds and
// session outcomes. It uses modernc.org/sqlite for CGO-less builds.
//
// Drafts are never persisted: only embeds the user submitted are written, and
// nothing is ever read back into an editing session.
type Store struct {
	dbPath string
	db     *sql.DB
}

// NewStore creates a new Store pointing to dbPath. Call Init() before using it.
func NewStore(dbPath string) *Store {
	return &Store{dbPath: dbPath}
}

// Init opens the SQLite database, configures pragmas, and ensures the schema
// exists.
func (s *Store) Init() error {
	if s.db != nil {
		return nil
	}
	if s.dbPath == "" {
		return fmt.Errorf("db path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(s.dbPath), 0o755); err != nil {
		return fmt.Errorf("failed to create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.dbPath)
	if err != nil {
		return fmt.Errorf("open sqlite: %w", err)
	}

	// Pragmas for durability and concurrency
	if _, err := db.Exec(`PRAGMA journal_mode=WAL;`); err != nil {
		_ = db.Close()
		return fmt.Errorf("set WAL: %w", err)
	}
	if _, err := db.Exec(`PRAGMA busy_timeout=5000;`); err != nil {
		_ = db.Close()
		return fmt.Errorf("set busy_timeout: %w", err)
	}
	if _, err := db.Exec(`PRAGMA synchronous=NORMAL;`); err != nil {
		_ = db.Close()
		return fmt.Errorf("set synchronous: %w", err)
	}

	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return err
	}

	s.db = db
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func ensureSchema(db *sql.DB) error {
	const schema = `
CREATE TABLE IF NOT EXISTS finalized_embeds (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	guild_id     TEXT NOT NULL,
	channel_id   TEXT NOT NULL,
	user_id      TEXT NOT NULL,
	embed_json   TEXT NOT NULL,
	field_count  INTEGER NOT NULL,
	submitted_at TIMESTAMP NOT NULL,
	duration_ms  INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_finalized_embeds_user
	ON finalized_embeds (guild_id, user_id);

CREATE TABLE IF NOT EXISTS session_outcomes (
	outcome TEXT PRIMARY KEY,
	count   INTEGER NOT NULL DEFAULT 0
);
`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// FinalizedEmbed is a snapshot of a submitted embed together with the session
// that produced it.
type FinalizedEmbed struct {
	GuildID     string
	ChannelID   string
	UserID      string
	Embed       *discordgo.MessageEmbed
	SubmittedAt time.Time
	Duration    time.Duration
}

// RecordFinalizedEmbed writes one submitted embed. The embed is stored as a
// JSON snapshot so schema changes in the SDK do not invalidate history rows.
func (s *Store) RecordFinalizedEmbed(f FinalizedEmbed) error {
	if s.db == nil {
		return fmt.Errorf("store not initialized")
	}
	if f.Embed == nil {
		return fmt.Errorf("nil embed")
	}

	raw, err := json.Marshal(f.Embed)
	if err != nil {
		return fmt.Errorf("marshal embed: %w", err)
	}

	_, err = s.db.Exec(`
INSERT INTO finalized_embeds (guild_id, channel_id, user_id, embed_json, field_count, submitted_at, duration_ms)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		f.GuildID, f.ChannelID, f.UserID, string(raw), len(f.Embed.Fields),
		f.SubmittedAt.UTC(), f.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("insert finalized embed: %w", err)
	}
	return nil
}

// CountFinalizedEmbeds returns the number of embeds a user has submitted in a
// guild.
func (s *Store) CountFinalizedEmbeds(guildID, userID string) (int, error) {
	if s.db == nil {
		return 0, fmt.Errorf("store not initialized")
	}
	var n int
	err := s.db.QueryRow(`
SELECT COUNT(*) FROM finalized_embeds WHERE guild_id = ? AND user_id = ?`,
		guildID, userID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count finalized embeds: %w", err)
	}
	return n, nil
}

// LatestFinalizedEmbed returns the most recently submitted embed for a user in
// a guild, or (nil, false, nil) when there is none.
func (s *Store) LatestFinalizedEmbed(guildID, userID string) (*discordgo.MessageEmbed, bool, error) {
	if s.db == nil {
		return nil, false, fmt.Errorf("store not initialized")
	}
	var raw string
	err := s.db.QueryRow(`
SELECT embed_json FROM finalized_embeds
WHERE guild_id = ? AND user_id = ?
ORDER BY id DESC LIMIT 1`,
		guildID, userID,
	).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("query finalized embed: %w", err)
	}

	var embed discordgo.MessageEmbed
	if err := json.Unmarshal([]byte(raw), &embed); err != nil {
		return nil, false, fmt.Errorf("unmarshal embed: %w", err)
	}
	return &embed, true, nil
}

// Session outcome labels recorded by IncrementOutcome.
const (
	OutcomeSubmitted = "submitted"
	OutcomeCancelled = "cancelled"
	OutcomeFailed    = "failed"
)

// IncrementOutcome bumps the counter for one session outcome.
func (s *Store) IncrementOutcome(outcome string) error {
	if s.db == nil {
		return fmt.Errorf("store not initialized")
	}
	_, err := s.db.Exec(`
INSERT INTO session_outcomes (outcome, count) VALUES (?, 1)
ON CONFLICT(outcome) DO UPDATE SET count = count + 1`,
		outcome,
	)
	if err != nil {
		return fmt.Errorf("increment outcome: %w", err)
	}
	return nil
}

// OutcomeCounts returns all recorded outcome counters.
func (s *Store) OutcomeCounts() (map[string]int, error) {
	if s.db == nil {
		return nil, fmt.Errorf("store not initialized")
	}
	rows, err := s.db.Query(`SELECT outcome, count FROM session_outcomes`)
	if err != nil {
		return nil, fmt.Errorf("query outcomes: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var outcome string
		var n int
		if err := rows.Scan(&outcome, &n); err != nil {
			return nil, fmt.Errorf("scan outcome: %w", err)
		}
		counts[outcome] = n
	}
	return counts, rows.Err()
}
