// Package model holds the record shapes served by the placeholder REST API:
// posts, comments and users, together with the create and patch payloads
// accepted for each and the ComputedPost view produced by joining posts with
// their owning users.
package model
