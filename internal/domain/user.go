package domain

import "time"

// User represents an authenticated account of the system. Email is the
// unique, case-sensitive lookup key; PasswordHash is an opaque bcrypt
// digest and must never appear in responses or logs.
type User struct {
	ID           string    `bson:"_id"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password_hash"`
	CreatedAt    time.Time `bson:"created_at"`
}
