package model

// CommentBase carries the fields of a comment that a client supplies on create.
type CommentBase struct {
	PostID int    `json:"postId" yaml:"postId"`
	Name   string `json:"name" yaml:"name"`
	Email  string `json:"email" yaml:"email"`
	Body   string `json:"body" yaml:"body"`
}

// Comment is a comment as stored by the API.
type Comment struct {
	ID          int `json:"id" yaml:"id"`
	CommentBase `yaml:",inline"`
}

// CommentPatch is a partial update. Nil fields are not sent.
type CommentPatch struct {
	ID     int     `json:"id"`
	PostID *int    `json:"postId,omitempty"`
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty"`
	Body   *string `json:"body,omitempty"`
}
