package suggest

import (
	"suggestbot/command/def"
	"suggestbot/handler"
	"suggestbot/model"
	"suggestbot/suggestion"
)

// Handlers wires the suggestion commands to the lifecycle service.
type Handlers struct {
	svc  *suggestion.Service
	auth model.Auth
}

// Register registers all handlers for the suggestion commands and the pager
// components.
func Register(svc *suggestion.Service, auth model.Auth) {
	h := &Handlers{svc: svc, auth: auth}

	handler.AddCommandHandler(def.SuggestCommand.Name, h.SubmitHandler)
	handler.AddCommandHandler(def.ApproveCommand.Name, h.ApproveHandler)
	handler.AddCommandHandler(def.DenyCommand.Name, h.DenyHandler)
	handler.AddCommandHandler(def.SuggestionsCommand.Name, h.ListHandler)
	handler.AddCommandHandler(def.SuggestionCommand.Name, h.ShowHandler)

	// 分页按钮
	handler.AddComponentHandler(suggestion.ActionPrev, h.PageHandler)
	handler.AddComponentHandler(suggestion.ActionNext, h.PageHandler)
}
