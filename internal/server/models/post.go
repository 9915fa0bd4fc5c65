package models

import "time"

// Post is a message on a user's wall. WallOwner and Author are both
// usernames; the wall owner must exist when the post is created, the author
// is the authenticated requester. Posts are immutable.
type Post struct {
	ID        string    `json:"id"`
	WallOwner string    `json:"wall_owner"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
