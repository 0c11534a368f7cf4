package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hungryops/lunchpick/internal/session"
	"github.com/hungryops/lunchpick/pkg/catalog"
	"github.com/hungryops/lunchpick/pkg/picker"
)

func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(s.Session.Items())
}

type AddItemRequest struct {
	Name  string `json:"name"`
	Price string `json:"price"`
	Tags  string `json:"tags"`
}

func (s *Server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	item, added, err := s.Session.Add(r.Context(), req.Name, catalog.ParsePrice(req.Price), catalog.SplitTags(req.Tags))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !added {
		http.Error(w, "item name must not be empty", http.StatusUnprocessableEntity)
		return
	}
	json.NewEncoder(w).Encode(item)
}

func (s *Server) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	removed, err := s.Session.Remove(r.Context(), r.PathValue("id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(map[string]bool{"removed": removed})
}

type SetWeightRequest struct {
	Weight int `json:"weight"`
}

func (s *Server) handleSetWeight(w http.ResponseWriter, r *http.Request) {
	var req SetWeightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := s.Session.SetWeight(r.Context(), r.PathValue("id"), req.Weight)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !updated {
		http.Error(w, "unknown item id", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(map[string]bool{"updated": true})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(s.Session.History())
}

func (s *Server) handleClearHistory(w http.ResponseWriter, r *http.Request) {
	if err := s.Session.ClearHistory(r.Context()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type PickRequest struct {
	Budget      string `json:"budget"`
	ExcludeTags string `json:"exclude_tags"`
	AvoidRecent bool   `json:"avoid_recent"`
	WindowDays  int    `json:"window_days"`
}

type PickResponse struct {
	Item *catalog.Item `json:"item"`
}

func (s *Server) handlePick(w http.ResponseWriter, r *http.Request) {
	var req PickRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	item, err := s.Session.Pick(r.Context(), picker.Constraints{
		Budget:       catalog.ParsePrice(req.Budget),
		ExcludedTags: catalog.SplitTags(req.ExcludeTags),
		AvoidRecent:  req.AvoidRecent,
		WindowDays:   req.WindowDays,
	})
	switch {
	case errors.Is(err, session.ErrPickInFlight):
		http.Error(w, err.Error(), http.StatusConflict)
		return
	case errors.Is(err, picker.ErrNoCandidates):
		// Not an error to the client: "no result" is a valid outcome.
		json.NewEncoder(w).Encode(PickResponse{})
		return
	case err != nil:
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(PickResponse{Item: &item})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(s.Session.Stats())
}
