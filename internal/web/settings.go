package web

import (
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"arbiter/internal/db"
	"arbiter/internal/pairing"
)

type settingsView struct {
	Page     string
	Username string
	Settings db.Settings
	Variants []VariantOption
	Saved    bool
}

func (h *Handler) handleSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.store.GetSettings(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	view := settingsView{
		Page:     "settings",
		Settings: settings,
		Variants: variantOptions(settings.Variant),
		Saved:    r.URL.Query().Get("saved") == "1",
	}
	if sess, ok := sessionFrom(r.Context()); ok {
		view.Username = sess.Username
	}
	h.render(w, http.StatusOK, "settings.html", view)
}

func (h *Handler) handleSettingsSave(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	defaults := db.DefaultSettings()

	limit, err := strconv.ParseFloat(strings.TrimSpace(r.Form.Get("clock_limit")), 64)
	if err != nil || limit < 0 {
		limit = defaults.ClockLimitMin
	}
	increment, err := strconv.Atoi(strings.TrimSpace(r.Form.Get("clock_increment")))
	if err != nil || increment < 0 {
		increment = defaults.ClockIncrement
	}

	settings := db.Settings{
		ClockLimitMin:  limit,
		ClockIncrement: increment,
		Variant:        pairing.NormalizeVariant(r.Form.Get("variant")),
		Rated:          r.Form.Get("rated") == "on",
		RandomColor:    r.Form.Get("random_color") == "on",
	}
	if err := h.store.UpdateSettings(r.Context(), settings); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if sess, ok := sessionFrom(r.Context()); ok {
		h.log.Info("form defaults updated", zapOperator(sess))
	}
	http.Redirect(w, r, "/endpoint/settings?saved=1", http.StatusSeeOther)
}

func zapOperator(sess db.Session) zap.Field {
	return zap.String("operator", sess.Username)
}
