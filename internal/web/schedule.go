package web

import (
	"math/rand/v2"
	"net/http"
	"strconv"
	"strings"

	"arbiter/internal/db"
	"arbiter/internal/schedule"
)

func (h *Handler) handleScheduleGames(w http.ResponseWriter, r *http.Request) {
	settings, err := h.store.GetSettings(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.renderSchedule(w, r, schedule.NewPage(formDefaults(settings)))
}

func (h *Handler) handleScheduleGamesSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	sess, _ := sessionFrom(r.Context())
	api := h.remote(r.Context(), sess.APIToken)
	submitter := &schedule.Submitter{
		Tokens:   api,
		Pairings: api,
		Rand:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		Location: h.loc,
		Log:      h.log.With(zapOperator(sess)),
	}

	form := formFromRequest(r)
	page := schedule.NewPage(form)
	page.Submit(r.Context(), submitter, form)
	h.metrics.observeSubmission(page.Feedback)
	h.renderSchedule(w, r, page)
}

func (h *Handler) renderSchedule(w http.ResponseWriter, r *http.Request, page *schedule.Page) {
	view := buildScheduleView(page, h.remoteURL, h.loc)
	if sess, ok := sessionFrom(r.Context()); ok {
		view.Username = sess.Username
	}
	h.render(w, http.StatusOK, "schedule_games.html", view)
	page.MarkDrawn()
}

func formFromRequest(r *http.Request) schedule.Form {
	return schedule.Form{
		Players:        r.Form.Get("players"),
		ClockLimit:     r.Form.Get("clock.limit"),
		ClockIncrement: r.Form.Get("clock.increment"),
		Variant:        r.Form.Get("variant"),
		Rated:          r.Form.Get("rated") == "on",
		RandomColor:    r.Form.Get("randomColor") == "on",
		PairAt:         r.Form.Get("pairAt"),
		StartClocksAt:  r.Form.Get("startClocksAt"),
		Rules:          r.Form["rules"],
		FEN:            strings.TrimSpace(r.Form.Get("fen")),
		Message:        r.Form.Get("message"),
	}
}

func formDefaults(s db.Settings) schedule.Form {
	return schedule.Form{
		ClockLimit:     strconv.FormatFloat(s.ClockLimitMin, 'f', -1, 64),
		ClockIncrement: strconv.Itoa(s.ClockIncrement),
		Variant:        s.Variant,
		Rated:          s.Rated,
		RandomColor:    s.RandomColor,
	}
}
