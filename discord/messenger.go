package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"suggestbot/model"
)

// Client adapts a discordgo session to the suggestion.Messenger port.
type Client struct {
	session *discordgo.Session
}

// NewClient wraps an existing session.
func NewClient(session *discordgo.Session) *Client {
	return &Client{session: session}
}

// PostMessage sends an embed to the channel and returns its message ref.
func (c *Client) PostMessage(channelID string, embed *discordgo.MessageEmbed) (model.MessageRef, error) {
	msg, err := c.session.ChannelMessageSendEmbed(channelID, embed)
	if err != nil {
		return model.MessageRef{}, fmt.Errorf("sending message to channel %s: %w", channelID, err)
	}
	return model.MessageRef{ChannelID: msg.ChannelID, MessageID: msg.ID}, nil
}

// EditMessage replaces the embed on a previously posted message.
func (c *Client) EditMessage(ref model.MessageRef, embed *discordgo.MessageEmbed) error {
	_, err := c.session.ChannelMessageEditEmbed(ref.ChannelID, ref.MessageID, embed)
	if err != nil {
		return fmt.Errorf("editing message %s: %w", ref.MessageID, err)
	}
	return nil
}

// AddReaction adds the bot's reaction to a message.
func (c *Client) AddReaction(ref model.MessageRef, emoji string) error {
	return c.session.MessageReactionAdd(ref.ChannelID, ref.MessageID, emoji)
}

// ReactionCounts returns the per-emoji reaction tally on a message, with the
// bot's own seed reactions subtracted out.
func (c *Client) ReactionCounts(ref model.MessageRef) (map[string]int, error) {
	msg, err := c.session.ChannelMessage(ref.ChannelID, ref.MessageID)
	if err != nil {
		return nil, fmt.Errorf("fetching message %s: %w", ref.MessageID, err)
	}

	counts := make(map[string]int, len(msg.Reactions))
	for _, r := range msg.Reactions {
		count := r.Count
		if r.Me {
			count--
		}
		if count < 0 {
			count = 0
		}
		counts[r.Emoji.Name] = count
	}
	return counts, nil
}
