package mock

import (
	"net/http"
	"net/http/httptest"
)

type handlerTransport struct {
	h http.Handler
}

// Transport returns a RoundTripper that serves every request with h in
// process. Request URLs keep their host; only the path and query are routed.
func Transport(h http.Handler) http.RoundTripper {
	return &handlerTransport{h: h}
}

func (t *handlerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := req.Context().Err(); err != nil {
		return nil, err
	}
	rec := httptest.NewRecorder()
	t.h.ServeHTTP(rec, req)
	resp := rec.Result()
	resp.Request = req
	return resp, nil
}
