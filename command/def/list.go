package def

import "github.com/bwmarrin/discordgo"

var SuggestionsCommand = &discordgo.ApplicationCommand{
	Name:        "suggestions",
	Description: "List suggestions (paginated)",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "filter",
			Description: "Filter: all,pending,approved,denied",
		},
	},
}

var SuggestionCommand = &discordgo.ApplicationCommand{
	Name:        "suggestion",
	Description: "Show a suggestion by ID",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "id",
			Description: "Suggestion ID",
			Required:    true,
		},
	},
}
