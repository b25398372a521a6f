// Package posts provides a client for the /posts collection of the
// placeholder REST API, its nested comments route, and the computed view that
// joins every post with its owning user.
package posts
