package suggestion

import "errors"

// Errors surfaced to the command dispatcher. Best-effort side effects
// (editing the posted card after a decision, fetching reaction tallies)
// never produce these; failures there are logged at the call site.
var (
	// ErrEmptyContent rejects suggestions that are blank after trimming.
	ErrEmptyContent = errors.New("suggestion content is empty")

	// ErrNotFound means no suggestion exists with the requested id.
	ErrNotFound = errors.New("suggestion not found")

	// ErrAlreadyDecided rejects approve/deny on a non-Pending suggestion.
	// Approved and Denied are terminal.
	ErrAlreadyDecided = errors.New("suggestion already decided")

	// ErrPostFailed means the suggestion could not be posted to Discord.
	// When submit fails with it, no record was created.
	ErrPostFailed = errors.New("could not post suggestion")
)
