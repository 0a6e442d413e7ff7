package bot

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"suggestbot/command"
	"suggestbot/handler"
)

// New 使用提供的机器人令牌创建一个新的 Discord 会话
// The interaction router and the intents the bot needs are wired here; the
// caller opens and closes the session.
func New(token string) (*discordgo.Session, error) {
	dg, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("creating Discord session: %w", err)
	}

	dg.AddHandler(handler.OnInteractionCreate)

	// 设置必要的intents
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessageReactions

	return dg, nil
}

// RegisterCommands registers the slash commands to every allowed guild, or
// globally when no guild is configured.
func RegisterCommands(dg *discordgo.Session, guildIDs []string) error {
	if len(guildIDs) == 0 {
		guildIDs = []string{""}
	}

	for _, guildID := range guildIDs {
		for _, cmd := range command.AllCommands {
			if _, err := dg.ApplicationCommandCreate(dg.State.User.ID, guildID, cmd); err != nil {
				return fmt.Errorf("creating %q command: %w", cmd.Name, err)
			}
		}
		if guildID == "" {
			log.Println("Registered global commands.")
		} else {
			log.Printf("Registered commands to guild %s", guildID)
		}
	}
	return nil
}
