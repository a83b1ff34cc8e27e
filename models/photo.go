package models

import "time"

// Photo represents a single shared photo together with its embedded
// like and comment sub-collections.
//
// Likes and Comments are append-only from the API's perspective, with one
// exception: a dislike removes the first occurrence of the username from
// Likes. Duplicate likes are permitted and preserved in insertion order.
type Photo struct {
	// ID is an opaque unique identifier assigned by the store on creation.
	ID string `json:"id"`

	// Name is the optional original filename of the uploaded image.
	Name string `json:"name,omitempty"`

	// Data holds the raw image bytes. Optional: a photo may exist with
	// only a caption. Serialized as base64 in JSON.
	Data []byte `json:"data,omitempty"`

	// Caption is an optional free-text caption.
	Caption string `json:"caption,omitempty"`

	// Likes is the ordered list of usernames that liked the photo.
	// Insertion order equals like order; duplicates are permitted.
	Likes []string `json:"likesUsernames"`

	// Comments is the ordered list of comments left on the photo.
	Comments []Comment `json:"commentUsernames"`

	// CreatedAt is the timestamp when the photo record was created.
	CreatedAt time.Time `json:"created_at"`
}

// Comment is a single {username, comment} pair attached to a photo.
// The username is free text and is intentionally not validated against
// registered accounts.
type Comment struct {
	Username string `json:"username"`
	Comment  string `json:"comment"`
}

// TableName returns the name of the database table
// associated with the Photo model.
func (p Photo) TableName() string {
	return "photos"
}
