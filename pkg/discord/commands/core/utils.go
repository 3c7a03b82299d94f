package core

import (
	"encoding/json"

	"github.com/bwmarrin/discordgo"
)

// CompareCommands reports whether two application commands are equivalent in
// the attributes this bot manages (name, description, options). Comparison is
// done over the JSON form, which tolerates the extra server-side fields the
// API fills in on registered commands.
func CompareCommands(a, b *discordgo.ApplicationCommand) bool {
	ca := struct {
		Name        string                                `json:"name"`
		Description string                                `json:"description"`
		Options     []*discordgo.ApplicationCommandOption `json:"options"`
	}{a.Name, a.Description, a.Options}
	cb := struct {
		Name        string                                `json:"name"`
		Description string                                `json:"description"`
		Options     []*discordgo.ApplicationCommandOption `json:"options"`
	}{b.Name, b.Description, b.Options}
	ba, _ := json.Marshal(ca)
	bb, _ := json.Marshal(cb)
	return string(ba) == string(bb)
}
