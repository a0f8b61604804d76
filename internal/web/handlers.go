package web

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"pet-adoption/internal/domain/applications"
	"pet-adoption/internal/domain/messages"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/domain/users"
	"pet-adoption/internal/middleware"
	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/ports/auth"

	"go.uber.org/zap"
)

const dashboardPath = "/dashboard"

func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	if c, ok := middleware.GetClaims(r.Context()); ok && c.UserID > 0 {
		http.Redirect(w, r, dashboardPath, http.StatusSeeOther)
		return
	}
	h.render(w, r, "login.html", pageData{})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	u, err := h.opts.Users.Authenticate(r.Context(), r.FormValue("email"), r.FormValue("password"))
	if err != nil {
		if !errors.Is(err, users.ErrInvalidCredentials) {
			logger.Get(r.Context()).Error("login failed", zap.Error(err))
		}
		redirect(w, r, "/", "Invalid email or password!")
		return
	}

	token, err := h.opts.Issuer.Issue(r.Context(), auth.Claims{UserID: u.ID, Email: u.Email, Role: u.Role})
	if err != nil {
		logger.Get(r.Context()).Error("could not issue session token", zap.Error(err))
		redirect(w, r, "/", "Could not start session, try again.")
		return
	}

	h.setSession(w, token)
	http.Redirect(w, r, dashboardPath, http.StatusSeeOther)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.clearSession(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	_, err := h.opts.Users.Register(r.Context(), users.RegisterInput{
		Name:     r.FormValue("name"),
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
		Role:     auth.Role(r.FormValue("role")),
	})
	switch {
	case err == nil:
		redirect(w, r, "/", "Account created! Please log in.")
	case errors.Is(err, users.ErrInvalidInput):
		redirect(w, r, "/", "Please fill in name, email and password.")
	case errors.Is(err, users.ErrRoleNotAllowed):
		redirect(w, r, "/", "Only adopter or shelter accounts can be registered.")
	default:
		logger.Get(r.Context()).Error("register failed", zap.Error(err))
		redirect(w, r, "/", "Could not create account.")
	}
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	claims, _ := middleware.GetClaims(ctx)

	me, err := h.opts.Users.GetByID(ctx, claims.UserID)
	if err != nil {
		// Token válido de un usuario que ya no existe (p.ej. reinicio en memoria).
		h.clearSession(w)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	all, err := h.opts.Users.List(ctx)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	inbox, err := h.opts.Messages.Inbox(ctx, me.ID)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	data := pageData{
		User:       &me,
		Inbox:      h.messageRows(ctx, inbox),
		Recipients: recipients(all, me.ID),
	}

	// El rol sale del usuario guardado; AuthContext ya refrescó las claims.
	var page string
	switch me.Role {
	case auth.RoleAdmin:
		page = "admin.html"
		err = h.adminData(r, &data, all)
	case auth.RoleShelter:
		page = "shelter.html"
		err = h.shelterData(r, &data)
	default:
		page = "adopter.html"
		err = h.adopterData(r, &data)
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.render(w, r, page, data)
}

func (h *Handler) adminData(r *http.Request, data *pageData, all []users.User) error {
	st, err := h.opts.Stats.Platform(r.Context())
	if err != nil {
		return err
	}
	pending, err := h.opts.Pets.ListPending(r.Context())
	if err != nil {
		return err
	}
	data.Stats = &st
	data.Users = all
	data.Pending = h.petCards(r.Context(), pending)
	return nil
}

func (h *Handler) shelterData(r *http.Request, data *pageData) error {
	ctx := r.Context()
	st, err := h.opts.Stats.Shelter(ctx, data.User.ID)
	if err != nil {
		return err
	}
	mine, err := h.opts.Pets.ListByShelter(ctx, data.User.ID)
	if err != nil {
		return err
	}
	received, err := h.opts.Applications.ListForShelter(ctx, data.User.ID)
	if err != nil {
		return err
	}
	data.ShelterStats = &st
	data.MyPets = h.petCards(ctx, mine)
	data.Received = h.appRows(ctx, received)
	return nil
}

func (h *Handler) adopterData(r *http.Request, data *pageData) error {
	ctx := r.Context()
	data.SearchType = strings.TrimSpace(r.URL.Query().Get("type"))
	data.SearchBreed = strings.TrimSpace(r.URL.Query().Get("breed"))
	data.Searching = data.SearchType != "" || data.SearchBreed != ""

	var (
		list []pets.Pet
		err  error
	)
	if data.Searching {
		list, err = h.opts.Pets.Search(ctx, data.SearchType, data.SearchBreed)
	} else {
		list, err = h.opts.Pets.ListAvailable(ctx)
	}
	if err != nil {
		return err
	}
	mine, err := h.opts.Applications.ListByAdopter(ctx, data.User.ID)
	if err != nil {
		return err
	}
	data.Available = h.petCards(ctx, list)
	data.MyApps = h.appRows(ctx, mine)
	return nil
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	logger.Get(r.Context()).Error("dashboard failed", zap.Error(err))
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func (h *Handler) addPet(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.GetClaims(r.Context())
	_, err := h.opts.Pets.Create(r.Context(), claims.UserID, pets.CreateInput{
		Name:        r.FormValue("name"),
		Type:        r.FormValue("type"),
		Breed:       r.FormValue("breed"),
		Age:         int(formInt(r, "age")),
		Description: r.FormValue("description"),
	})
	switch {
	case err == nil:
		redirect(w, r, dashboardPath, "Pet listing submitted!")
	case errors.Is(err, pets.ErrInvalidInput):
		redirect(w, r, dashboardPath, "Please fill in name, type and breed.")
	default:
		h.fail(w, r, err)
	}
}

func (h *Handler) moderatePet(op func(ctx context.Context, id int64) (pets.Pet, error), flash string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, err := op(r.Context(), urlInt(r, "petID"))
		switch {
		case err == nil:
			redirect(w, r, dashboardPath, flash)
		case errors.Is(err, pets.ErrNotFound), errors.Is(err, pets.ErrInvalidInput):
			redirect(w, r, dashboardPath, "Pet not found.")
		default:
			h.fail(w, r, err)
		}
	}
}

func (h *Handler) apply(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.GetClaims(r.Context())
	_, err := h.opts.Applications.Submit(r.Context(), claims.UserID, formInt(r, "pet_id"), r.FormValue("notes"))
	switch {
	case err == nil:
		redirect(w, r, dashboardPath, "Application submitted successfully!")
	case errors.Is(err, applications.ErrInvalidInput):
		redirect(w, r, dashboardPath, "Please tell the shelter why you would like to adopt.")
	case errors.Is(err, applications.ErrPetNotFound), errors.Is(err, applications.ErrPetUnavailable):
		redirect(w, r, dashboardPath, "This pet is no longer available.")
	default:
		h.fail(w, r, err)
	}
}

func (h *Handler) updateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.GetClaims(r.Context())
	status := applications.Status(r.FormValue("status"))
	_, err := h.opts.Applications.UpdateStatus(r.Context(), urlInt(r, "appID"), status, claims)
	switch {
	case err == nil:
		redirect(w, r, dashboardPath, "Application status updated!")
	case errors.Is(err, applications.ErrInvalidInput):
		redirect(w, r, dashboardPath, "Invalid application status.")
	case errors.Is(err, applications.ErrNotFound), errors.Is(err, applications.ErrForbidden):
		redirect(w, r, dashboardPath, "Application not found.")
	default:
		h.fail(w, r, err)
	}
}

func (h *Handler) updateRole(w http.ResponseWriter, r *http.Request) {
	_, err := h.opts.Users.UpdateRole(r.Context(), urlInt(r, "userID"), auth.Role(r.FormValue("role")))
	switch {
	case err == nil:
		redirect(w, r, dashboardPath, "User role updated!")
	case errors.Is(err, users.ErrInvalidInput), errors.Is(err, users.ErrNotFound):
		redirect(w, r, dashboardPath, "Could not update role.")
	default:
		h.fail(w, r, err)
	}
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.GetClaims(r.Context())
	_, err := h.opts.Users.UpdateProfile(r.Context(), claims.UserID, users.ProfileInput{
		Name:  r.FormValue("name"),
		Email: r.FormValue("email"),
	})
	switch {
	case err == nil:
		redirect(w, r, dashboardPath, "Profile updated!")
	case errors.Is(err, users.ErrInvalidInput), errors.Is(err, users.ErrNotFound):
		redirect(w, r, dashboardPath, "Could not update profile.")
	default:
		h.fail(w, r, err)
	}
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.GetClaims(r.Context())
	err := h.opts.Users.ChangePassword(r.Context(), claims.UserID, r.FormValue("current"), r.FormValue("new"))
	switch {
	case err == nil:
		redirect(w, r, dashboardPath, "Password changed!")
	case errors.Is(err, users.ErrWrongPassword):
		redirect(w, r, dashboardPath, "Current password is incorrect.")
	case errors.Is(err, users.ErrInvalidInput), errors.Is(err, users.ErrNotFound):
		redirect(w, r, dashboardPath, "Could not change password.")
	default:
		h.fail(w, r, err)
	}
}

func (h *Handler) sendMessage(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.GetClaims(r.Context())
	_, err := h.opts.Messages.Send(r.Context(), claims.UserID, formInt(r, "recipient_id"), r.FormValue("content"))
	switch {
	case err == nil:
		redirect(w, r, dashboardPath, "Message sent!")
	case errors.Is(err, messages.ErrInvalidInput), errors.Is(err, messages.ErrRecipientNotFound):
		redirect(w, r, dashboardPath, "Could not send message.")
	default:
		h.fail(w, r, err)
	}
}
