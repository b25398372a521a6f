package posts

import "github.com/postboard/placeholder_sdk_go/pkg/model"

// Compute attaches to each post the first user whose ID equals the post's
// UserID. Posts without a matching user keep a nil User. Output order follows
// posts and the result is never nil.
func Compute(posts []model.Post, users []model.User) []model.ComputedPost {
	out := make([]model.ComputedPost, 0, len(posts))
	if len(posts) == 0 {
		return out
	}

	byID := make(map[int]*model.User, len(users))
	for i := range users {
		if _, seen := byID[users[i].ID]; !seen {
			byID[users[i].ID] = &users[i]
		}
	}
	for _, p := range posts {
		cp := model.ComputedPost{Post: p}
		if u, ok := byID[p.UserID]; ok {
			user := *u
			cp.User = &user
		}
		out = append(out, cp)
	}
	return out
}
