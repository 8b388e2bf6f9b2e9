package domain

import "time"

// Tournament is a competitive event record. Owner and Participants hold
// user identifiers, not embedded user data; resolving them to display
// attributes is an explicit lookup at read time.
//
// Invariants: OwnerID is immutable after creation and always present in
// Participants; Participants is an ordered sequence without duplicates.
type Tournament struct {
	ID           string    `bson:"_id"`
	Name         string    `bson:"name"`
	Description  string    `bson:"description"`
	OwnerID      string    `bson:"owner_id"`
	Participants []string  `bson:"participants"`
	CreatedAt    time.Time `bson:"created_at"`
}

// HasParticipant reports whether the given user id is already a member.
func (t *Tournament) HasParticipant(userID string) bool {
	for _, id := range t.Participants {
		if id == userID {
			return true
		}
	}
	return false
}
