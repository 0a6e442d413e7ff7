package def

import "github.com/bwmarrin/discordgo"

var ApproveCommand = &discordgo.ApplicationCommand{
	Name:        "approve",
	Description: "Approve a suggestion (manager only)",
	Options:     decideOptions(),
}

var DenyCommand = &discordgo.ApplicationCommand{
	Name:        "deny",
	Description: "Deny a suggestion (manager only)",
	Options:     decideOptions(),
}

func decideOptions() []*discordgo.ApplicationCommandOption {
	return []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "id",
			Description: "Suggestion ID",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "reason",
			Description: "Reason",
		},
	}
}
