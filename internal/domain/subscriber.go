package domain

import "time"

// Subscriber is a newsletter signup, keyed by unique email.
type Subscriber struct {
	ID        string    `bson:"_id"`
	Email     string    `bson:"email"`
	CreatedAt time.Time `bson:"created_at"`
}
