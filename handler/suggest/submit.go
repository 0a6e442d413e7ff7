package suggest

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"suggestbot/suggestion"
)

// SubmitHandler handles /suggest. Anyone may submit.
func (h *Handlers) SubmitHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	idea := i.ApplicationCommandData().Options[0].StringValue()
	user := interactionUser(i)

	if !deferReply(s, i, true) {
		return
	}

	go func() {
		defer recoverInteraction(s, i)

		sub, err := h.svc.Submit(user.ID, user.String(), idea)
		if err != nil {
			switch {
			case errors.Is(err, suggestion.ErrEmptyContent):
				editReply(s, i, "❌ Your suggestion is empty.")
			case errors.Is(err, suggestion.ErrPostFailed):
				editReply(s, i, "❌ Suggestion channel not found. Check SUGGESTION_CHANNEL_ID.")
			default:
				editReply(s, i, genericFailure)
			}
			return
		}

		editReply(s, i, fmt.Sprintf("✅ Suggestion posted as #%s", suggestion.FormatSID(sub.ID)))
	}()
}
