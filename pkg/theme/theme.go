package theme

import (
	"fmt"
	"sync"
)

// Color is the int value used by discordgo.MessageEmbed.Color
type Color = int

// Theme holds all color roles used across the project.
// Keep these roles generic enough so they can be reused across features.
// If a feature needs a very specific color, add it here so themes can
// override it explicitly.
type Theme struct {
	// Human-friendly name for the theme (unique within the registry).
	Name string

	// Core roles
	Primary Color // General primary color (Discord "blurple" by default)
	Accent  Color // Accent color (often the same as primary)
	Info    Color
	Success Color
	Warning Color
	Error   Color
	Danger  Color // When we want a stronger red than Error
	Muted   Color // Neutral / disabled / default

	// Editor-specific roles
	NoticeInvalid Color // blocking validation notices
	NoticeWarning Color // non-blocking format warnings
	EditorFatal   Color // the "unexpected error" embed that ends a session
}

// Clone returns a copy of the Theme.
func (t *Theme) Clone() *Theme {
	cp := *t
	return &cp
}

// ensureDefaults fills zero-valued fields with fallbacks derived from other
// roles, so themes can override only a subset of fields.
func (t *Theme) ensureDefaults() {
	if t.Accent == 0 {
		t.Accent = t.Primary
	}
	if t.Info == 0 {
		t.Info = 0x3B82F6
	}
	if t.Success == 0 {
		t.Success = 0x57F287
	}
	if t.Warning == 0 {
		t.Warning = 0xF59E0B
	}
	if t.Error == 0 {
		t.Error = 0xED4245
	}
	if t.Danger == 0 {
		t.Danger = 0xED4245
	}
	if t.Muted == 0 {
		t.Muted = 0x99AAB5
	}

	if t.NoticeInvalid == 0 {
		t.NoticeInvalid = t.Error
	}
	if t.NoticeWarning == 0 {
		t.NoticeWarning = t.Warning
	}
	if t.EditorFatal == 0 {
		t.EditorFatal = t.Danger
	}
}

// defaultTheme returns the current built-in theme.
func defaultTheme() *Theme {
	th := &Theme{
		Name:    "default",
		Primary: 0x5865F2, // Discord blurple

		Info:    0x3B82F6,
		Success: 0x57F287,
		Warning: 0xF59E0B,
		Error:   0xED4245,
		Danger:  0xED4245,
		Muted:   0x99AAB5,
	}
	th.ensureDefaults()
	return th
}

var (
	mu        sync.RWMutex
	registry  = map[string]*Theme{}
	currentTh = defaultTheme()
)

// Register adds a theme to the registry. It returns an error if the name is
// empty or already registered.
func Register(t *Theme) error {
	if t == nil {
		return fmt.Errorf("theme: cannot register nil theme")
	}
	if t.Name == "" {
		return fmt.Errorf("theme: name is required")
	}
	cp := t.Clone()
	cp.ensureDefaults()

	mu.Lock()
	defer mu.Unlock()
	if _, exists := registry[cp.Name]; exists {
		return fmt.Errorf("theme: theme %q already registered", cp.Name)
	}
	registry[cp.Name] = cp
	return nil
}

// MustRegister is like Register but panics on error.
func MustRegister(t *Theme) {
	if err := Register(t); err != nil {
		panic(err)
	}
}

// SetCurrent switches the active theme by name. Empty name resets to default.
func SetCurrent(name string) error {
	mu.Lock()
	defer mu.Unlock()
	if name == "" {
		currentTh = defaultTheme()
		return nil
	}
	th, ok := registry[name]
	if !ok {
		return fmt.Errorf("theme: theme %q not found", name)
	}
	currentTh = th.Clone()
	currentTh.ensureDefaults()
	return nil
}

// Current returns a copy of the current theme.
// Modifying the returned value does not affect the global theme.
func Current() *Theme {
	mu.RLock()
	defer mu.RUnlock()
	return currentTh.Clone()
}
