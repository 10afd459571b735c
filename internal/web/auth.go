package web

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"arbiter/internal/db"
)

const sessionCookie = "arbiter_session"

type sessionKey struct{}

func withSession(ctx context.Context, sess db.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, sess)
}

func sessionFrom(ctx context.Context) (db.Session, bool) {
	sess, ok := ctx.Value(sessionKey{}).(db.Session)
	return sess, ok
}

func (h *Handler) requireSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookie)
		if err != nil || cookie.Value == "" {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		sess, err := h.store.SessionByID(r.Context(), cookie.Value)
		if errors.Is(err, sql.ErrNoRows) {
			clearSessionCookie(w)
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if err := h.store.TouchSession(r.Context(), sess.ID); err != nil {
			h.log.Warn("touch session", zap.Error(err))
		}
		next(w, r.WithContext(withSession(r.Context(), sess)))
	}
}

type loginView struct {
	Page     string
	Username string
	Error    string
}

func (h *Handler) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "login.html", loginView{Page: "login"})
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	token := strings.TrimSpace(r.Form.Get("token"))
	if token == "" {
		h.metrics.logins.WithLabelValues("rejected").Inc()
		h.render(w, http.StatusBadRequest, "login.html", loginView{Page: "login", Error: "API token required"})
		return
	}
	account, err := h.remote(r.Context(), token).Account(r.Context())
	if err != nil {
		h.metrics.logins.WithLabelValues("rejected").Inc()
		h.log.Info("login rejected", zap.Error(err))
		h.render(w, http.StatusUnauthorized, "login.html", loginView{
			Page:  "login",
			Error: "Could not verify token: " + err.Error(),
		})
		return
	}
	sess, err := h.store.CreateSession(r.Context(), account.Username, token)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.metrics.logins.WithLabelValues("accepted").Inc()
	h.log.Info("login", zap.String("username", account.Username))

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    sess.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   r.TLS != nil,
	})
	http.Redirect(w, r, "/endpoint/schedule-games", http.StatusSeeOther)
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if sess, ok := sessionFrom(r.Context()); ok {
		if err := h.store.DeleteSession(r.Context(), sess.ID); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
	clearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{Name: sessionCookie, Value: "", Path: "/", MaxAge: -1})
}
