package web

import (
	"net/http"
	"strconv"

	"github.com/vbonduro/menuscan/internal/domain"
	"github.com/vbonduro/menuscan/internal/i18n"
	"github.com/vbonduro/menuscan/internal/session"
)

// screenData is what every screen template receives.
type screenData struct {
	session.View
	Languages    []domain.LanguageOption
	Suggested    string
	LoadingSteps []string
	Step         int
	NextStep     int
}

var screenFiles = map[session.Screen][]string{
	session.ScreenLanguage:   {"base.html", "pages/language.html"},
	session.ScreenUpload:     {"base.html", "pages/upload.html", "partials/page_list.html"},
	session.ScreenProcessing: {"base.html", "pages/processing.html", "partials/processing_status.html"},
	session.ScreenOrdering:   {"base.html", "pages/ordering.html", "partials/item_controls.html", "partials/cart_footer.html"},
	session.ScreenSummary:    {"base.html", "pages/summary.html"},
}

func newScreenData(v session.View, r *http.Request) screenData {
	d := screenData{View: v}
	switch v.Screen {
	case session.ScreenLanguage:
		d.Languages = i18n.Languages()
		d.Suggested = i18n.Match(r.Header.Get("Accept-Language")).Code
	case session.ScreenProcessing:
		d.LoadingSteps = i18n.LoadingSteps(v.Code())
		d.NextStep = 1
	}
	return d
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	id := s.sessionID(w, r)

	// A finished analysis is applied on the next view as well as on the poll.
	v, _, err := s.service.Poll(r.Context(), id)
	if err != nil {
		s.fail(w, r, err, "failed to load session")
		return
	}

	if err := s.renderPage(w, newScreenData(v, r), screenFiles[v.Screen]...); err != nil {
		s.logger.Error("render page failed", "screen", v.Screen, "error", err)
	}
}

func (s *Server) handleSelectLanguage(w http.ResponseWriter, r *http.Request) {
	id := s.sessionID(w, r)
	if _, err := s.service.SelectLanguage(r.Context(), id, r.FormValue("code")); err != nil {
		s.fail(w, r, err, "failed to select language")
		return
	}
	redirectHome(w, r)
}

func (s *Server) handleBack(w http.ResponseWriter, r *http.Request) {
	id := s.sessionID(w, r)
	if _, err := s.service.Back(r.Context(), id); err != nil {
		s.fail(w, r, err, "failed to go back")
		return
	}
	redirectHome(w, r)
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	id := s.sessionID(w, r)
	if _, err := s.service.Analyze(r.Context(), id); err != nil {
		s.fail(w, r, err, "failed to start analysis")
		return
	}
	redirectHome(w, r)
}

// handleProcessing answers the processing screen's poll. It returns the next
// loading caption until the analysis has been applied, then redirects.
func (s *Server) handleProcessing(w http.ResponseWriter, r *http.Request) {
	id := s.sessionID(w, r)
	v, changed, err := s.service.Poll(r.Context(), id)
	if err != nil {
		s.fail(w, r, err, "failed to poll analysis")
		return
	}
	if changed || v.Screen != session.ScreenProcessing {
		redirectHome(w, r)
		return
	}

	d := newScreenData(v, r)
	step, _ := strconv.Atoi(r.URL.Query().Get("step"))
	if step < 0 {
		step = 0
	}
	if n := len(d.LoadingSteps); n > 0 {
		d.Step = step % n
	}
	d.NextStep = step + 1
	if err := s.renderPartial(w, "processing_status", d, "partials/processing_status.html"); err != nil {
		s.logger.Error("render partial failed", "error", err)
	}
}

func (s *Server) handleOrder(w http.ResponseWriter, r *http.Request) {
	id := s.sessionID(w, r)
	if _, err := s.service.Proceed(r.Context(), id); err != nil {
		s.fail(w, r, err, "failed to place order")
		return
	}
	redirectHome(w, r)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	id := s.sessionID(w, r)
	if _, err := s.service.Reset(r.Context(), id); err != nil {
		s.fail(w, r, err, "failed to reset")
		return
	}
	redirectHome(w, r)
}
