package suggest

import (
	"errors"
	"log"

	"github.com/bwmarrin/discordgo"

	"suggestbot/model"
	"suggestbot/suggestion"
)

// ShowHandler handles /suggestion: the full card for one id, with live vote
// counts when Discord will hand them over.
func (h *Handlers) ShowHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	id := i.ApplicationCommandData().Options[0].IntValue()

	if !deferReply(s, i, false) {
		return
	}

	go func() {
		defer recoverInteraction(s, i)

		sub, err := h.svc.Get(id)
		if err != nil {
			if errors.Is(err, suggestion.ErrNotFound) {
				editReply(s, i, "Suggestion not found")
			} else {
				editReply(s, i, genericFailure)
			}
			return
		}

		// The card renders without votes if the fetch fails.
		var votes *model.VoteCounts
		if vc, err := h.svc.VoteCounts(sub); err != nil {
			log.Printf("Could not fetch reactions for #%s: %v", suggestion.FormatSID(sub.ID), err)
		} else {
			votes = &vc
		}

		embed := suggestion.BuildDetailEmbed(sub, votes, h.svc.BrandColor())
		_, err = s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
			Embeds: &[]*discordgo.MessageEmbed{embed},
		})
		if err != nil {
			log.Printf("Error editing interaction response: %v", err)
		}
	}()
}
