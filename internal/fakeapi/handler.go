package fakeapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/postclient/internal/post"
	"github.com/2beens/postclient/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{
		store: store,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/posts/", handler.handleAll).Methods("GET").Name("all-posts")
	router.HandleFunc("/posts/", handler.handleNew).Methods("POST").Name("new-post")
	router.HandleFunc("/posts/{id}", handler.handleGet).Methods("GET").Name("get-post")
	router.HandleFunc("/posts/{id}", handler.handleUpdate).Methods("PUT").Name("update-post")
	router.HandleFunc("/posts/{id}", handler.handleDelete).Methods("DELETE").Name("delete-post")
}

func (handler *Handler) handleAll(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteJSONResponseOK(w, handler.store.All())
}

func (handler *Handler) handleNew(w http.ResponseWriter, r *http.Request) {
	newPost, ok := decodePost(w, r)
	if !ok {
		return
	}

	created := handler.store.Add(newPost)
	log.Tracef("new post added: %s", created)

	pkg.WriteJSONResponse(w, created, http.StatusCreated)
}

func (handler *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromVars(w, r)
	if !ok {
		return
	}

	found, err := handler.store.Get(id)
	if err != nil {
		writeStoreError(w, id, err)
		return
	}

	pkg.WriteJSONResponseOK(w, found)
}

func (handler *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromVars(w, r)
	if !ok {
		return
	}

	updatedPost, ok := decodePost(w, r)
	if !ok {
		return
	}

	updated, err := handler.store.Update(id, updatedPost)
	if err != nil {
		writeStoreError(w, id, err)
		return
	}

	pkg.WriteJSONResponseOK(w, updated)
}

func (handler *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromVars(w, r)
	if !ok {
		return
	}

	if err := handler.store.Delete(id); err != nil {
		writeStoreError(w, id, err)
		return
	}

	pkg.WriteJSONResponseOK(w, post.Post{})
}

func idFromVars(w http.ResponseWriter, r *http.Request) (int, bool) {
	idStr := mux.Vars(r)["id"]
	if idStr == "" {
		pkg.WriteTextResponse(w, "error, id empty", http.StatusBadRequest)
		return 0, false
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		pkg.WriteTextResponse(w, "error, id NaN", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func decodePost(w http.ResponseWriter, r *http.Request) (post.Post, bool) {
	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		pkg.WriteTextResponse(w, "error, expected application/json body", http.StatusUnsupportedMediaType)
		return nil, false
	}

	var p post.Post
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		log.Errorf("decode post body: %s", err)
		pkg.WriteTextResponse(w, "error, invalid post json", http.StatusBadRequest)
		return nil, false
	}
	if p == nil {
		p = post.Post{}
	}
	return p, true
}

func writeStoreError(w http.ResponseWriter, id int, err error) {
	if errors.Is(err, ErrPostNotFound) {
		pkg.WriteJSONResponse(w, post.Post{}, http.StatusNotFound)
		return
	}
	log.Errorf("post %d: %s", id, err)
	pkg.WriteTextResponse(w, "internal server error", http.StatusInternalServerError)
}
