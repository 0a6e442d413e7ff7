package suggest

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"suggestbot/model"
	"suggestbot/suggestion"
	"suggestbot/utils"
)

// ApproveHandler handles /approve.
func (h *Handlers) ApproveHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	h.decideHandler(s, i, model.StatusApproved)
}

// DenyHandler handles /deny.
func (h *Handlers) DenyHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	h.decideHandler(s, i, model.StatusDenied)
}

func (h *Handlers) decideHandler(s *discordgo.Session, i *discordgo.InteractionCreate, status model.Status) {
	// 权限检查
	if !utils.CanManage(i.Member, h.auth) {
		respondEphemeral(s, i, "❌ You need Manage Server permission.")
		return
	}

	var id int64
	reason := "No reason provided"
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "id":
			id = opt.IntValue()
		case "reason":
			reason = opt.StringValue()
		}
	}
	actor := interactionUser(i)

	if !deferReply(s, i, true) {
		return
	}

	go func() {
		defer recoverInteraction(s, i)

		sub, err := h.svc.Decide(id, status, actor.String(), reason)
		if err != nil {
			switch {
			case errors.Is(err, suggestion.ErrNotFound):
				editReply(s, i, "Suggestion not found")
			case errors.Is(err, suggestion.ErrAlreadyDecided):
				editReply(s, i, fmt.Sprintf("❌ Suggestion #%s has already been decided.", suggestion.FormatSID(id)))
			default:
				editReply(s, i, genericFailure)
			}
			return
		}

		glyph := "✅"
		if sub.Status == model.StatusDenied {
			glyph = "❌"
		}
		editReply(s, i, fmt.Sprintf("%s #%s marked %s", glyph, suggestion.FormatSID(sub.ID), sub.Status))
	}()
}
