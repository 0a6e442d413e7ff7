package suggestion

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"suggestbot/model"
)

const (
	// PageSize 每页显示5条建议
	PageSize = 5

	EmojiUpvote   = "👍"
	EmojiDownvote = "👎"

	// contentLimit bounds a list row's content; longer content is cut to
	// ellipsisAt runes plus "...".
	contentLimit = 120
	ellipsisAt   = 117
)

// FormatSID renders a suggestion id zero-padded to three digits. Wider ids
// keep their natural width.
func FormatSID(id int64) string {
	return fmt.Sprintf("%03d", id)
}

// StatusLabel maps a status to its glyph and label.
func StatusLabel(status model.Status) string {
	switch status {
	case model.StatusApproved:
		return "✅ Approved"
	case model.StatusDenied:
		return "❌ Denied"
	default:
		return "🟡 Pending Review"
	}
}

// TruncateContent bounds content to the list row limit.
func TruncateContent(content string) string {
	runes := []rune(content)
	if len(runes) <= contentLimit {
		return content
	}
	return string(runes[:ellipsisAt]) + "..."
}

// FilterTitle capitalizes a normalized filter for the list embed title.
func FilterTitle(filter string) string {
	if filter == "" || filter == "all" {
		return "All"
	}
	return strings.ToUpper(filter[:1]) + filter[1:]
}

// BuildPlaceholderEmbed 创建并返回新建议的占位 Embed
// It is posted before the record exists, so it carries no id.
func BuildPlaceholderEmbed(content, authorTag string, color int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "💡 New Suggestion",
		Description: content,
		Color:       color,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Status", Value: StatusLabel(model.StatusPending)},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "Suggested by " + authorTag},
	}
}

// BuildSuggestionEmbed 创建并返回单条建议的 Embed
func BuildSuggestionEmbed(sub *model.Suggestion, votes *model.VoteCounts, color int) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("💡 Suggestion #%s", FormatSID(sub.ID)),
		Description: sub.Content,
		Color:       color,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Status", Value: StatusLabel(sub.Status), Inline: true},
		},
		Footer:    &discordgo.MessageEmbedFooter{Text: "Suggested by " + sub.AuthorTag},
		Timestamp: time.Now().Format(time.RFC3339),
	}
	if votes != nil {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "Votes",
			Value:  fmt.Sprintf("%s %d | %s %d", EmojiUpvote, votes.Up, EmojiDownvote, votes.Down),
			Inline: true,
		})
	}
	return embed
}

// BuildDecisionEmbed renders a decided suggestion with the deciding actor
// and reason appended.
func BuildDecisionEmbed(sub *model.Suggestion, actorTag, reason string, color int) *discordgo.MessageEmbed {
	embed := BuildSuggestionEmbed(sub, nil, color)
	embed.Fields = append(embed.Fields,
		&discordgo.MessageEmbedField{Name: fmt.Sprintf("%s by", sub.Status), Value: actorTag},
		&discordgo.MessageEmbedField{Name: "Reason", Value: reason},
	)
	return embed
}

// BuildDetailEmbed renders the show-by-id card: the suggestion embed plus
// its creation time.
func BuildDetailEmbed(sub *model.Suggestion, votes *model.VoteCounts, color int) *discordgo.MessageEmbed {
	embed := BuildSuggestionEmbed(sub, votes, color)
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:   "Created At",
		Value:  sub.CreatedAt.Format("2006-01-02 15:04:05 MST"),
		Inline: true,
	})
	return embed
}

// PageCount is never zero, so an empty listing still renders as page 1/1.
func PageCount(total, pageSize int) int {
	if total <= 0 {
		return 1
	}
	return (total + pageSize - 1) / pageSize
}

// ClampPage keeps a page index within [0, PageCount-1].
func ClampPage(page, total, pageSize int) int {
	if page < 0 {
		return 0
	}
	if last := PageCount(total, pageSize) - 1; page > last {
		return last
	}
	return page
}

// BuildListEmbed 创建并返回分页建议列表的 Embed
func BuildListEmbed(rows []*model.Suggestion, page, pageSize int, filter string, color int) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("Suggestions — %s", FilterTitle(filter)),
		Color: color,
	}

	start := page * pageSize
	if start > len(rows) {
		start = len(rows)
	}
	end := start + pageSize
	if end > len(rows) {
		end = len(rows)
	}
	slice := rows[start:end]

	if len(slice) == 0 {
		embed.Description = "No suggestions to show on this page."
	}
	for _, r := range slice {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("#%s — %s", FormatSID(r.ID), r.Status),
			Value: fmt.Sprintf("%s\n*by %s*", TruncateContent(r.Content), r.AuthorTag),
		})
	}

	embed.Footer = &discordgo.MessageEmbedFooter{
		Text: fmt.Sprintf("Page %d/%d • Showing %d of %d",
			page+1, PageCount(len(rows), pageSize), len(slice), len(rows)),
	}
	return embed
}

// BuildPagerRow builds the prev/next buttons for a list page. Previous is
// disabled on the first page, next when the following page would start past
// the last row.
func BuildPagerRow(page, totalRows, pageSize int, filter string) discordgo.ActionsRow {
	prev := PageRequest{Action: ActionPrev, Page: page, Filter: filter}
	next := PageRequest{Action: ActionNext, Page: page, Filter: filter}
	return discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    "Previous",
				Style:    discordgo.SecondaryButton,
				CustomID: prev.CustomID(),
				Disabled: page == 0,
			},
			discordgo.Button{
				Label:    "Next",
				Style:    discordgo.SecondaryButton,
				CustomID: next.CustomID(),
				Disabled: (page+1)*pageSize >= totalRows,
			},
		},
	}
}
