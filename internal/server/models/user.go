// Package models holds the server-side data model.
package models

import "time"

// User is a registered identity. Created on registration and immutable
// afterwards. The password itself is never stored: Salt and Verifier together
// form the argon2id secret verifier.
type User struct {
	ID        string
	UserName  string
	Salt      []byte
	Verifier  []byte
	CreatedAt time.Time
}
