package web

import (
	"net/http"

	"github.com/vbonduro/menuscan/internal/domain"
	"github.com/vbonduro/menuscan/internal/session"
)

// cartUpdate feeds the item controls of one item plus the out-of-band cart
// footer.
type cartUpdate struct {
	session.View
	Item domain.MenuItem
}

func findItem(categories []domain.MenuCategory, id string) (domain.MenuItem, bool) {
	for _, c := range categories {
		for _, item := range c.Items {
			if item.ID == id {
				return item, true
			}
		}
	}
	return domain.MenuItem{}, false
}

func (s *Server) handleIncrement(w http.ResponseWriter, r *http.Request) {
	id := s.sessionID(w, r)
	itemID := r.PathValue("id")
	v, err := s.service.Increment(r.Context(), id, itemID)
	if err != nil {
		s.fail(w, r, err, "failed to add item")
		return
	}
	s.renderCartUpdate(w, r, v, itemID)
}

func (s *Server) handleDecrement(w http.ResponseWriter, r *http.Request) {
	id := s.sessionID(w, r)
	itemID := r.PathValue("id")
	v, err := s.service.Decrement(r.Context(), id, itemID)
	if err != nil {
		s.fail(w, r, err, "failed to remove item")
		return
	}
	s.renderCartUpdate(w, r, v, itemID)
}

func (s *Server) renderCartUpdate(w http.ResponseWriter, r *http.Request, v session.View, itemID string) {
	if !isHTMX(r) {
		redirectHome(w, r)
		return
	}
	item, ok := findItem(v.Categories, itemID)
	if !ok {
		http.NotFound(w, r)
		return
	}
	if err := s.renderPartial(w, "cart_update", cartUpdate{View: v, Item: item},
		"partials/cart_update.html", "partials/item_controls.html", "partials/cart_footer.html",
	); err != nil {
		s.logger.Error("render partial failed", "error", err)
	}
}
