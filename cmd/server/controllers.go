package main

import (
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-controller-kit/routing"
)

func init() {
	routing.MountPath(&StatusController{}, "/api")
	routing.Get(&BaseController{}, "Health", "/health")
	routing.Get(&StatusController{}, "Status", "/test")

	routing.MountPath(&NotesController{}, "/notes")
	routing.Get(&NotesController{}, "List", "/")
	routing.Get(&NotesController{}, "GetNote", "/{id}")
	routing.Post(&NotesController{}, "Create", "/", true)
	routing.Delete(&NotesController{}, "Remove", "/{id}", true)
	routing.UseOn(&NotesController{}, "Create", requireToken(demoSigningKey))
	routing.UseOn(&NotesController{}, "Remove", requireToken(demoSigningKey))
}

// BaseController carries the liveness endpoint shared by every controller
// that embeds it.
type BaseController struct{}

func (c *BaseController) Health(w http.ResponseWriter, r *http.Request) (any, error) {
	return "OK", nil
}

// StatusController reports API status under /api.
type StatusController struct {
	BaseController
}

func (c *StatusController) Status(w http.ResponseWriter, r *http.Request) (any, error) {
	return map[string]string{"STATUS": "OK"}, nil
}

// Note is one stored note.
type Note struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// NotesController is a small in-memory CRUD controller demonstrating typed
// failures and the auth-required flag.
type NotesController struct {
	mu    sync.RWMutex
	notes map[string]Note
}

func NewNotesController() *NotesController {
	return &NotesController{notes: make(map[string]Note)}
}

func (c *NotesController) List(w http.ResponseWriter, r *http.Request) (any, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	all := make([]Note, 0, len(c.notes))
	for _, n := range c.notes {
		all = append(all, n)
	}
	return all, nil
}

func (c *NotesController) GetNote(w http.ResponseWriter, r *http.Request) (any, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	note, ok := c.notes[chi.URLParam(r, "id")]
	if !ok {
		return nil, routing.ErrNotFound
	}
	return note, nil
}

func (c *NotesController) Create(w http.ResponseWriter, r *http.Request) (any, error) {
	body, ok := routing.Body(r)
	if !ok {
		return nil, routing.ErrBadRequest
	}
	fields, ok := body.(map[string]any)
	if !ok {
		return nil, routing.ErrBadRequest
	}
	text, ok := fields["text"].(string)
	if !ok || text == "" {
		return nil, routing.ErrBadRequest
	}

	note := Note{ID: uuid.NewString(), Text: text}

	c.mu.Lock()
	c.notes[note.ID] = note
	c.mu.Unlock()

	return note, nil
}

func (c *NotesController) Remove(w http.ResponseWriter, r *http.Request) (any, error) {
	id := chi.URLParam(r, "id")

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.notes[id]; !ok {
		return nil, routing.ErrNotFound
	}
	delete(c.notes, id)

	return nil, nil
}
