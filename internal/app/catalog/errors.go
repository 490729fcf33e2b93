package catalog

// Static messages returned to callers when an operation fails for any reason
// other than "not found".
const (
	MsgGames            = "failed to fetch games"
	MsgGame             = "failed to fetch game"
	MsgFeaturedGames    = "failed to fetch featured games"
	MsgGamesByGenre     = "failed to fetch games by genre"
	MsgGamesByDeveloper = "failed to fetch games by developer"
	MsgGamesByPlatform  = "failed to fetch games by platform"
	MsgGamesByRating    = "failed to fetch games by rating"
	MsgGenres           = "failed to fetch genres"
	MsgGenre            = "failed to fetch genre"
	MsgDevelopers       = "failed to fetch developers"
	MsgDeveloper        = "failed to fetch developer"
)

// Error is returned by every catalog operation on unexpected failure.
// Error() yields only the operation's static message; the upstream cause is
// reachable through errors.Unwrap for logging and diagnostics.
type Error struct {
	Op      string
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}
