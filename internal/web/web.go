package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"pet-adoption/internal/domain/applications"
	"pet-adoption/internal/domain/messages"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/domain/stats"
	"pet-adoption/internal/domain/users"
	"pet-adoption/internal/middleware"
	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/ports/auth"
	"pet-adoption/internal/ports/capabilities"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = []string{"login.html", "admin.html", "shelter.html", "adopter.html"} //nolint: gochecknoglobals

type Options struct {
	Users        *users.Service
	Pets         *pets.Service
	Applications *applications.Service
	Messages     *messages.Service
	Stats        *stats.Service

	Issuer       auth.Issuer
	Capabilities capabilities.CapabilitiesResolver

	SessionTTL         time.Duration
	SecureCookie       bool
	PlatformName       string
	MaxApplicationDays int
}

// Handler sirve el login y los dashboards HTML por rol.
type Handler struct {
	opts      Options
	templates map[string]*template.Template
}

func New(opts Options) (*Handler, error) {
	tpls := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html",
			"templates/partials.html",
			"templates/"+page,
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		tpls[page] = t
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = 30 * time.Minute
	}
	return &Handler{opts: opts, templates: tpls}, nil
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.loginPage)
	r.Post("/login", h.login)
	r.Post("/logout", h.logout)
	r.Post("/register", h.register)

	r.Route("/dashboard", func(dr chi.Router) {
		dr.Use(requireSession)
		dr.Get("/", h.dashboard)

		dr.Post("/profile", h.updateProfile)
		dr.Post("/password", h.changePassword)
		dr.With(h.require(capabilities.SendMessages)).Post("/messages", h.sendMessage)

		dr.With(h.require(capabilities.ListPet)).Post("/pets", h.addPet)
		dr.With(h.require(capabilities.ModeratePets)).Post("/pets/{petID}/approve", h.moderatePet(h.opts.Pets.Approve, "Pet listing approved!"))
		dr.With(h.require(capabilities.ModeratePets)).Post("/pets/{petID}/reject", h.moderatePet(h.opts.Pets.Reject, "Pet listing rejected!"))

		dr.With(h.require(capabilities.SubmitApplication)).Post("/applications", h.apply)
		dr.With(h.require(capabilities.ReviewApplication)).Post("/applications/{appID}/status", h.updateApplicationStatus)

		dr.With(h.require(capabilities.ManageUsers)).Post("/users/{userID}/role", h.updateRole)
	})
}

func (h *Handler) require(c capabilities.Capability) func(http.Handler) http.Handler {
	return middleware.Require(h.opts.Capabilities, c)
}

// requireSession manda al login si no hay sesión válida.
func requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c, ok := middleware.GetClaims(r.Context()); !ok || c.UserID <= 0 {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, page string, data pageData) {
	data.PlatformName = h.opts.PlatformName
	data.MaxApplicationDays = h.opts.MaxApplicationDays
	data.Flash = r.URL.Query().Get("msg")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates[page].ExecuteTemplate(w, "layout.html", data); err != nil {
		logger.Get(r.Context()).Error("could not render page", zap.String("page", page), zap.Error(err))
	}
}

// redirect vuelve a target con un flash en ?msg=.
func redirect(w http.ResponseWriter, r *http.Request, target, msg string) {
	if msg != "" {
		target += "?msg=" + url.QueryEscape(msg)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func formInt(r *http.Request, key string) int64 {
	v, _ := strconv.ParseInt(r.FormValue(key), 10, 64)
	return v
}

func urlInt(r *http.Request, key string) int64 {
	v, _ := strconv.ParseInt(chi.URLParam(r, key), 10, 64)
	return v
}

func (h *Handler) setSession(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.opts.SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.opts.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.opts.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}
