package def

import "github.com/bwmarrin/discordgo"

var SuggestCommand = &discordgo.ApplicationCommand{
	Name:        "suggest",
	Description: "Submit a suggestion",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "idea",
			Description: "Your suggestion",
			Required:    true,
		},
	},
}
