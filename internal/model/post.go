package model

import "time"

type Post struct {
	ID        string    `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Body      string    `db:"body" json:"body"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

type CreatePostParams struct {
	ID        string
	Title     string
	Body      string
	CreatedAt time.Time
}
