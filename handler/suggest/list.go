package suggest

import (
	"log"

	"github.com/bwmarrin/discordgo"

	"suggestbot/suggestion"
)

// ListHandler handles /suggestions: page 0 of the filtered listing, with
// pager buttons.
func (h *Handlers) ListHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	filter := "all"
	if opts := i.ApplicationCommandData().Options; len(opts) > 0 {
		filter = opts[0].StringValue()
	}

	if !deferReply(s, i, false) {
		return
	}

	go func() {
		defer recoverInteraction(s, i)

		rows, filter, err := h.svc.ListByFilter(filter)
		if err != nil {
			editReply(s, i, genericFailure)
			return
		}

		embed := suggestion.BuildListEmbed(rows, 0, suggestion.PageSize, filter, h.svc.BrandColor())
		pager := suggestion.BuildPagerRow(0, len(rows), suggestion.PageSize, filter)
		_, err = s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
			Embeds:     &[]*discordgo.MessageEmbed{embed},
			Components: &[]discordgo.MessageComponent{pager},
		})
		if err != nil {
			log.Printf("Error editing interaction response: %v", err)
		}
	}()
}

// PageHandler handles the prev/next buttons. The filter and current page
// ride in the custom ID, so the row set is re-derived on every step instead
// of being held in server-side session state.
func (h *Handlers) PageHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	req := suggestion.ParsePageRequest(i.MessageComponentData().CustomID)

	rows, filter, err := h.svc.ListByFilter(req.Filter)
	if err != nil {
		respondEphemeral(s, i, genericFailure)
		return
	}

	page := req.Step(len(rows), suggestion.PageSize)
	embed := suggestion.BuildListEmbed(rows, page, suggestion.PageSize, filter, h.svc.BrandColor())
	pager := suggestion.BuildPagerRow(page, len(rows), suggestion.PageSize, filter)

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: []discordgo.MessageComponent{pager},
		},
	})
	if err != nil {
		log.Printf("Error updating list message: %v", err)
	}
}
