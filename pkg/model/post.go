package model

// PostBase carries the fields of a post that a client supplies on create.
type PostBase struct {
	Title  string `json:"title" yaml:"title"`
	Body   string `json:"body" yaml:"body"`
	UserID int    `json:"userId" yaml:"userId"`
}

// Post is a post as stored by the API.
type Post struct {
	ID       int `json:"id" yaml:"id"`
	PostBase `yaml:",inline"`
}

// PostPatch is a partial update. Nil fields are not sent.
type PostPatch struct {
	ID     int     `json:"id"`
	Title  *string `json:"title,omitempty"`
	Body   *string `json:"body,omitempty"`
	UserID *int    `json:"userId,omitempty"`
}

// ComputedPost is a post decorated with its owning user. User is nil when no
// user with the post's UserID exists.
type ComputedPost struct {
	Post
	User *User `json:"user,omitempty"`
}
