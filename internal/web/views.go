package web

import (
	"context"
	"html/template"
	"strings"

	"pet-adoption/internal/domain/applications"
	"pet-adoption/internal/domain/messages"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/domain/stats"
	"pet-adoption/internal/domain/users"
	"pet-adoption/internal/ports/auth"
)

const unknownName = "Unknown"

type pageData struct {
	PlatformName       string
	MaxApplicationDays int
	Flash              string

	User *users.User

	// admin
	Stats   *stats.Platform
	Users   []users.User
	Pending []petCard

	// shelter
	ShelterStats *stats.Shelter
	MyPets       []petCard
	Received     []appRow

	// adopter
	SearchType  string
	SearchBreed string
	Searching   bool
	Available   []petCard
	MyApps      []appRow

	Inbox      []messageRow
	Recipients []users.User
}

type petCard struct {
	pets.Pet
	ShelterName string
}

type appRow struct {
	applications.Application
	PetName     string
	AdopterName string
	ShelterName string
}

type messageRow struct {
	messages.Message
	SenderName string
}

var funcs = template.FuncMap{ //nolint: gochecknoglobals
	"statusBadge":   statusBadge,
	"approvalBadge": approvalBadge,
	"appBadge":      appBadge,
	"title":         title,
}

func statusBadge(s pets.Status) string {
	if s == pets.StatusAvailable {
		return "success"
	}
	return "danger"
}

func approvalBadge(a pets.Approval) string {
	switch a {
	case pets.ApprovalApproved:
		return "success"
	case pets.ApprovalPending:
		return "warning"
	default:
		return "danger"
	}
}

func appBadge(s applications.Status) string {
	switch s {
	case applications.StatusApproved:
		return "success"
	case applications.StatusRejected:
		return "danger"
	default:
		return "warning"
	}
}

// title: "shelter" => "Shelter".
func title(r auth.Role) string {
	s := string(r)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func (h *Handler) petCards(ctx context.Context, in []pets.Pet) []petCard {
	out := make([]petCard, 0, len(in))
	for _, p := range in {
		out = append(out, petCard{Pet: p, ShelterName: h.opts.Users.NameOf(ctx, p.ShelterID)})
	}
	return out
}

// appRows: referencias colgadas (mascota o usuario borrados) salen como "Unknown".
func (h *Handler) appRows(ctx context.Context, in []applications.Application) []appRow {
	out := make([]appRow, 0, len(in))
	for _, a := range in {
		row := appRow{
			Application: a,
			PetName:     unknownName,
			AdopterName: h.opts.Users.NameOf(ctx, a.AdopterID),
			ShelterName: unknownName,
		}
		if p, err := h.opts.Pets.GetByID(ctx, a.PetID); err == nil {
			row.PetName = p.Name
			row.ShelterName = h.opts.Users.NameOf(ctx, p.ShelterID)
		}
		out = append(out, row)
	}
	return out
}

func (h *Handler) messageRows(ctx context.Context, in []messages.Message) []messageRow {
	out := make([]messageRow, 0, len(in))
	for _, m := range in {
		out = append(out, messageRow{Message: m, SenderName: h.opts.Users.NameOf(ctx, m.SenderID)})
	}
	return out
}

// recipients: todos menos uno mismo.
func recipients(all []users.User, self int64) []users.User {
	out := make([]users.User, 0, len(all))
	for _, u := range all {
		if u.ID != self {
			out = append(out, u)
		}
	}
	return out
}
