package command

import (
	"suggestbot/command/def"

	"github.com/bwmarrin/discordgo"
)

// AllCommands contains all of the commands
var AllCommands = []*discordgo.ApplicationCommand{
	def.SuggestCommand,
	def.ApproveCommand,
	def.DenyCommand,
	def.SuggestionsCommand,
	def.SuggestionCommand,
}
