// Package placeholder_sdk bootstraps the posts, comments and users clients
// from environment variables. PLACEHOLDER_RUNTIME_MODE selects between the
// hosted REST API ("http") and an in-memory replica ("mock"); "auto", the
// default, picks http when PLACEHOLDER_API_URL is set and mock otherwise. All
// three clients share one transport, and the posts client is wired to the
// users client for its computed view.
package placeholder_sdk
