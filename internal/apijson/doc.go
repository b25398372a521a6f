// Package apijson decodes response bodies of the placeholder API into typed
// records. Bodies are checked against the JSON schema of the declared resource
// before decoding so that a response of the wrong shape fails loudly instead
// of producing a zero-valued record. Request payloads are encoded by
// httpx.JSONBody.
package apijson
