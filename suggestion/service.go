package suggestion

import (
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"suggestbot/model"
)

// maxListRows bounds the superset fetched for in-memory pagination.
const maxListRows = 1000

// Store is the persistence port backing the lifecycle service.
type Store interface {
	Create(authorID, authorTag, content string, ref model.MessageRef) (int64, error)
	SetStatus(id int64, status model.Status) error
	Get(id int64) (*model.Suggestion, error)
	List(filter string, limit, offset int) ([]*model.Suggestion, error)
	CountAll() (int, error)
	CountByStatus(status model.Status) (int, error)
}

// Messenger is the Discord-facing port. Implemented by discord.Client.
type Messenger interface {
	PostMessage(channelID string, embed *discordgo.MessageEmbed) (model.MessageRef, error)
	EditMessage(ref model.MessageRef, embed *discordgo.MessageEmbed) error
	AddReaction(ref model.MessageRef, emoji string) error
	ReactionCounts(ref model.MessageRef) (map[string]int, error)
}

// Service drives the suggestion lifecycle: Pending on submit, then a single
// terminal transition to Approved or Denied.
type Service struct {
	store     Store
	messenger Messenger
	channelID string
	color     int
}

// NewService creates a lifecycle service posting to the given channel.
func NewService(store Store, messenger Messenger, channelID string, color int) *Service {
	return &Service{store: store, messenger: messenger, channelID: channelID, color: color}
}

// BrandColor is the embed color used for every rendered card.
func (s *Service) BrandColor() int {
	return s.color
}

// Submit posts the suggestion to the channel first and records it only after
// the post succeeds, so no row ever exists without a visible message.
func (s *Service) Submit(authorID, authorTag, content string) (*model.Suggestion, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}

	ref, err := s.messenger.PostMessage(s.channelID, BuildPlaceholderEmbed(content, authorTag, s.color))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPostFailed, err)
	}

	// Seed the voting reactions. Losing one is not worth failing the submit.
	for _, emoji := range []string{EmojiUpvote, EmojiDownvote} {
		if err := s.messenger.AddReaction(ref, emoji); err != nil {
			log.Printf("Could not add %s reaction to message %s: %v", emoji, ref.MessageID, err)
		}
	}

	id, err := s.store.Create(authorID, authorTag, content, ref)
	if err != nil {
		return nil, fmt.Errorf("recording suggestion: %w", err)
	}
	sub, err := s.Get(id)
	if err != nil {
		return nil, fmt.Errorf("reloading suggestion %d: %w", id, err)
	}

	// Swap the placeholder for the numbered card. The row is already
	// persisted, so a failed edit only leaves the placeholder rendering.
	if err := s.messenger.EditMessage(ref, BuildSuggestionEmbed(sub, nil, s.color)); err != nil {
		log.Printf("Could not edit suggestion message %s: %v", ref.MessageID, err)
	}
	return sub, nil
}

// Decide moves a Pending suggestion to Approved or Denied. The persisted
// status is authoritative; updating the posted card is best-effort.
func (s *Service) Decide(id int64, status model.Status, actorTag, reason string) (*model.Suggestion, error) {
	if !status.Decided() {
		return nil, fmt.Errorf("invalid decision status %q", status)
	}

	sub, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if sub.Status != model.StatusPending {
		return nil, ErrAlreadyDecided
	}

	if err := s.store.SetStatus(id, status); err != nil {
		return nil, fmt.Errorf("updating suggestion %d: %w", id, err)
	}
	sub.Status = status

	if err := s.messenger.EditMessage(sub.Message, BuildDecisionEmbed(sub, actorTag, reason, s.color)); err != nil {
		log.Printf("Could not edit suggestion message %s: %v", sub.Message.MessageID, err)
	}
	return sub, nil
}

// Get retrieves a suggestion by id.
func (s *Service) Get(id int64) (*model.Suggestion, error) {
	sub, err := s.store.Get(id)
	if err != nil {
		return nil, fmt.Errorf("loading suggestion %d: %w", id, err)
	}
	if sub == nil {
		return nil, ErrNotFound
	}
	return sub, nil
}

// NormalizeFilter maps a user-supplied filter to one of all, pending,
// approved or denied. Unrecognized values become "all".
func NormalizeFilter(filter string) string {
	switch f := strings.ToLower(strings.TrimSpace(filter)); f {
	case "pending", "approved", "denied":
		return f
	default:
		return "all"
	}
}

// ListByFilter returns the bounded superset of suggestions matching the
// filter, most recent first, along with the normalized filter.
func (s *Service) ListByFilter(filter string) ([]*model.Suggestion, string, error) {
	filter = NormalizeFilter(filter)
	rows, err := s.store.List(filter, maxListRows, 0)
	if err != nil {
		return nil, filter, fmt.Errorf("listing suggestions: %w", err)
	}
	return rows, filter, nil
}

// VoteCounts fetches the live reaction tally for a suggestion's message. The
// messenger already subtracts the bot's own seed reactions.
func (s *Service) VoteCounts(sub *model.Suggestion) (model.VoteCounts, error) {
	counts, err := s.messenger.ReactionCounts(sub.Message)
	if err != nil {
		return model.VoteCounts{}, err
	}
	return model.VoteCounts{Up: counts[EmojiUpvote], Down: counts[EmojiDownvote]}, nil
}

// Stats computes the aggregate counts shown on the web panel.
func (s *Service) Stats() (model.Stats, error) {
	total, err := s.store.CountAll()
	if err != nil {
		return model.Stats{}, err
	}
	pending, err := s.store.CountByStatus(model.StatusPending)
	if err != nil {
		return model.Stats{}, err
	}
	approved, err := s.store.CountByStatus(model.StatusApproved)
	if err != nil {
		return model.Stats{}, err
	}
	return model.Stats{Total: total, Pending: pending, Approved: approved}, nil
}
