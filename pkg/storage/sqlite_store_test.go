package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore(filepath.Join(t.TempDir(), "history.db"))
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestRecordFinalizedEmbed(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	embed := &discordgo.MessageEmbed{
		Title:       "Release notes",
		Description: "v0.3.0",
		Color:       0x5865F2,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "a", Value: "1"},
			{Name: "b", Value: "2", Inline: true},
		},
	}
	rec := FinalizedEmbed{
		GuildID:     "g1",
		ChannelID:   "c1",
		UserID:      "u1",
		Embed:       embed,
		SubmittedAt: time.Now(),
		Duration:    42 * time.Second,
	}
	if err := s.RecordFinalizedEmbed(rec); err != nil {
		t.Fatalf("RecordFinalizedEmbed: %v", err)
	}

	n, err := s.CountFinalizedEmbeds("g1", "u1")
	if err != nil {
		t.Fatalf("CountFinalizedEmbeds: %v", err)
	}
	if n != 1 {
		t.Errorf("count = %d, want 1", n)
	}

	got, ok, err := s.LatestFinalizedEmbed("g1", "u1")
	if err != nil {
		t.Fatalf("LatestFinalizedEmbed: %v", err)
	}
	if !ok {
		t.Fatal("no embed returned")
	}
	if got.Title != embed.Title || got.Color != embed.Color || len(got.Fields) != 2 {
		t.Errorf("round-tripped embed = %+v", got)
	}
	if !got.Fields[1].Inline {
		t.Error("inline flag lost in the snapshot")
	}
}

func TestLatestFinalizedEmbedPicksNewest(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	for _, title := range []string{"first", "second"} {
		rec := FinalizedEmbed{
			GuildID:     "g1",
			ChannelID:   "c1",
			UserID:      "u1",
			Embed:       &discordgo.MessageEmbed{Title: title},
			SubmittedAt: time.Now(),
		}
		if err := s.RecordFinalizedEmbed(rec); err != nil {
			t.Fatalf("RecordFinalizedEmbed(%q): %v", title, err)
		}
	}

	got, ok, err := s.LatestFinalizedEmbed("g1", "u1")
	if err != nil || !ok {
		t.Fatalf("LatestFinalizedEmbed: ok=%v err=%v", ok, err)
	}
	if got.Title != "second" {
		t.Errorf("latest title = %q, want %q", got.Title, "second")
	}
}

func TestLatestFinalizedEmbedEmpty(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	got, ok, err := s.LatestFinalizedEmbed("g1", "nobody")
	if err != nil {
		t.Fatalf("LatestFinalizedEmbed: %v", err)
	}
	if ok || got != nil {
		t.Errorf("got %+v, %v; want nil, false", got, ok)
	}
}

func TestRecordFinalizedEmbedRejectsNil(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	if err := s.RecordFinalizedEmbed(FinalizedEmbed{GuildID: "g1"}); err == nil {
		t.Error("nil embed accepted")
	}
}

func TestIncrementOutcome(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	for i := 0; i < 3; i++ {
		if err := s.IncrementOutcome(OutcomeSubmitted); err != nil {
			t.Fatalf("IncrementOutcome: %v", err)
		}
	}
	if err := s.IncrementOutcome(OutcomeCancelled); err != nil {
		t.Fatalf("IncrementOutcome: %v", err)
	}

	counts, err := s.OutcomeCounts()
	if err != nil {
		t.Fatalf("OutcomeCounts: %v", err)
	}
	if counts[OutcomeSubmitted] != 3 {
		t.Errorf("submitted = %d, want 3", counts[OutcomeSubmitted])
	}
	if counts[OutcomeCancelled] != 1 {
		t.Errorf("cancelled = %d, want 1", counts[OutcomeCancelled])
	}
	if _, ok := counts[OutcomeFailed]; ok {
		t.Error("failed counter present without any increments")
	}
}

func TestStoreRequiresInit(t *testing.T) {
	t.Parallel()

	s := NewStore(filepath.Join(t.TempDir(), "history.db"))
	if err := s.IncrementOutcome(OutcomeFailed); err == nil {
		t.Error("uninitialized store accepted a write")
	}
}
