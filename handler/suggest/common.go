package suggest

import (
	"log"

	"github.com/bwmarrin/discordgo"

	"suggestbot/utils"
)

const genericFailure = "An error occurred."

// interactionUser returns the invoking user for both guild and DM
// interactions.
func interactionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil {
		return i.Member.User
	}
	return i.User
}

// deferReply acknowledges the interaction within the 3 second deadline so
// the handler can do slow work (Discord round trips, database) afterwards.
func deferReply(s *discordgo.Session, i *discordgo.InteractionCreate, ephemeral bool) bool {
	data := &discordgo.InteractionResponseData{}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: data,
	})
	if err != nil {
		log.Printf("Error sending deferred response: %v", err)
		return false
	}
	return true
}

// editReply replaces the deferred response with a plain text message.
func editReply(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	_, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: utils.StringPtr(content),
	})
	if err != nil {
		log.Printf("Error editing interaction response: %v", err)
	}
}

// respondEphemeral replies immediately with an ephemeral message, used for
// rejections that need no slow work.
func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("Error sending interaction response: %v", err)
	}
}

// recoverInteraction keeps a panicking handler from taking the process down;
// the actor gets one generic failure notice.
func recoverInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if r := recover(); r != nil {
		log.Printf("Panic in interaction handler: %v", r)
		editReply(s, i, genericFailure)
	}
}
