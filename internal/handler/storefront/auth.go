package storefront

import (
	"net/http"

	"github.com/stridewear/stride/internal/domain"
	"github.com/stridewear/stride/internal/handler"
	"github.com/stridewear/stride/internal/middleware"
	"github.com/stridewear/stride/internal/service"
)

// AuthHandler handles login and logout
type AuthHandler struct {
	sessions *service.SessionGate
	renderer *handler.Renderer
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(sessions *service.SessionGate, renderer *handler.Renderer) *AuthHandler {
	return &AuthHandler{
		sessions: sessions,
		renderer: renderer,
	}
}

// ShowForm handles GET /login
func (h *AuthHandler) ShowForm(w http.ResponseWriter, r *http.Request) {
	data := BaseTemplateData(r)
	data["Email"] = ""
	data["Error"] = ""
	h.renderer.RenderHTTP(w, "login", data)
}

// HandleSubmit handles POST /login. Admins land on the admin console,
// everyone else on the storefront. A failed attempt re-renders the form
// with the submitted email preserved.
func (h *AuthHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}
	email := r.FormValue("email")
	password := r.FormValue("password")

	kv := middleware.GetKV(ctx)
	if kv == nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	sess, err := h.sessions.Login(ctx, kv, email, password)
	if err != nil {
		middleware.GetLogger(ctx).Info("login failed", "error", err)
		data := BaseTemplateData(r)
		data["Email"] = email
		data["Error"] = domain.ErrorMessage(err)
		w.WriteHeader(http.StatusUnauthorized)
		h.renderer.RenderHTTP(w, "login", data)
		return
	}

	if sess.IsAdmin() {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleLogout handles POST /logout
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	kv := middleware.GetKV(r.Context())
	if kv != nil {
		h.sessions.Logout(kv)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
