package models

// Review event operations.
const (
	ReviewCreated = "review_created"
	ReviewUpdated = "review_updated"
	ReviewDeleted = "review_deleted"
)

// ReviewEvent describes a review mutation published to the activity stream.
type ReviewEvent struct {
	EventID   string `json:"event_id"`  // EventID is a unique identifier for the event.
	Timestamp int64  `json:"timestamp"` // Timestamp is the Unix timestamp (in seconds) of the mutation.
	Operation string `json:"operation"` // Operation is one of review_created, review_updated, review_deleted.
	ReviewID  string `json:"review_id"`
	UserID    string `json:"user_id"`
	BookID    string `json:"book_id"`
	Rating    int    `json:"rating"`
}
