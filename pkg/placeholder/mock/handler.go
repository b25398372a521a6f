package mock

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/golang/glog"
	"github.com/gorilla/mux"
)

// Handler serves m with the routes of the hosted API:
//
//	GET|POST              /{posts|comments|users}
//	GET|PUT|PATCH|DELETE  /{posts|comments|users}/{id}
//	GET                   /posts/{id}/comments
//	GET                   /users/{id}/posts
func Handler(m *Mock) http.Handler {
	h := &handler{store: m}
	r := mux.NewRouter()
	r.StrictSlash(true)

	r.HandleFunc("/posts/{id:[0-9]+}/comments", h.nested(Comments, "postId")).Methods(http.MethodGet)
	r.HandleFunc("/users/{id:[0-9]+}/posts", h.nested(Posts, "userId")).Methods(http.MethodGet)

	r.HandleFunc("/{resource:posts|comments|users}", h.list).Methods(http.MethodGet)
	r.HandleFunc("/{resource:posts|comments|users}", h.create).Methods(http.MethodPost)
	r.HandleFunc("/{resource:posts|comments|users}/{id:[0-9]+}", h.get).Methods(http.MethodGet)
	r.HandleFunc("/{resource:posts|comments|users}/{id:[0-9]+}", h.replace).Methods(http.MethodPut)
	r.HandleFunc("/{resource:posts|comments|users}/{id:[0-9]+}", h.merge).Methods(http.MethodPatch)
	r.HandleFunc("/{resource:posts|comments|users}/{id:[0-9]+}", h.delete).Methods(http.MethodDelete)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, Record{})
	})
	return r
}

type handler struct {
	store *Mock
}

func (h *handler) list(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.List(mux.Vars(r)["resource"], r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (h *handler) nested(child, foreignKey string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := url.Values{}
		for k, v := range r.URL.Query() {
			query[k] = v
		}
		query.Set(foreignKey, mux.Vars(r)["id"])
		records, err := h.store.List(child, query)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, records)
	}
}

func (h *handler) get(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	rec, err := h.store.Get(vars["resource"], pathID(vars))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (h *handler) create(w http.ResponseWriter, r *http.Request) {
	fields, ok := readObject(w, r)
	if !ok {
		return
	}
	rec, err := h.store.Create(mux.Vars(r)["resource"], fields)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (h *handler) replace(w http.ResponseWriter, r *http.Request) {
	fields, ok := readObject(w, r)
	if !ok {
		return
	}
	vars := mux.Vars(r)
	rec, err := h.store.Replace(vars["resource"], pathID(vars), fields)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (h *handler) merge(w http.ResponseWriter, r *http.Request) {
	fields, ok := readObject(w, r)
	if !ok {
		return
	}
	vars := mux.Vars(r)
	rec, err := h.store.Merge(vars["resource"], pathID(vars), fields)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (h *handler) delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.store.Delete(vars["resource"], pathID(vars)); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Record{})
}

func pathID(vars map[string]string) int {
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		return 0
	}
	return id
}

func readObject(w http.ResponseWriter, r *http.Request) (Record, bool) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, Record{"error": err.Error()})
		return nil, false
	}
	var fields Record
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		writeJSON(w, http.StatusBadRequest, Record{"error": "body must be a JSON object"})
		return nil, false
	}
	return fields, true
}

func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrNotFound) {
		writeJSON(w, http.StatusNotFound, Record{})
		return
	}
	glog.Errorf("[mock]unexpected store error: %v", err)
	writeJSON(w, http.StatusInternalServerError, Record{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		glog.Errorf("[mock]encode response: %v", err)
	}
}
