package types

// ------------------------------
// Response Types
// ------------------------------

// LoginData is the /login payload. The backend nests the user object under
// a second "data" key next to the token; the tag keeps that quirk intact.
type LoginData struct {
	Token string       `json:"token"`
	User  *UserProfile `json:"data"`
}

// DeleteAck acknowledges a deletion. Some routes return the removed entity,
// some a bare confirmation; only Acknowledged is guaranteed meaningful.
type DeleteAck struct {
	Acknowledged bool   `json:"acknowledged,omitempty"`
	DeletedCount int    `json:"deletedCount,omitempty"`
	Message      string `json:"message,omitempty"`
}
