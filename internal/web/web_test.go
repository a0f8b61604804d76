package web_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"pet-adoption/internal/adapters/auth/jwtauth"
	"pet-adoption/internal/adapters/capabilities/roles"
	"pet-adoption/internal/adapters/storage/memory"
	"pet-adoption/internal/domain/applications"
	"pet-adoption/internal/domain/messages"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/domain/stats"
	"pet-adoption/internal/domain/users"
	"pet-adoption/internal/middleware"
	"pet-adoption/internal/web"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	h, _ := newTestServerWithRepos(t)
	return h
}

// newTestServerWithRepos expone los repos para sembrar datos fuera de los servicios.
func newTestServerWithRepos(t *testing.T) (http.Handler, memory.Repos) {
	t.Helper()

	repos := memory.NewSeededRepos(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	userSvc := users.NewService(repos.Users, nil)
	petSvc := pets.NewService(repos.Pets, nil)
	appSvc := applications.NewService(repos.Applications, petSvc, nil)

	tokens, err := jwtauth.New(jwtauth.Config{Secret: "test-secret", TTL: time.Hour})
	require.NoError(t, err)

	h, err := web.New(web.Options{
		Users:              userSvc,
		Pets:               petSvc,
		Applications:       appSvc,
		Messages:           messages.NewService(repos.Messages, userSvc, nil),
		Stats:              stats.NewService(userSvc, petSvc, appSvc),
		Issuer:             tokens,
		Capabilities:       roles.NewResolver(),
		SessionTTL:         time.Hour,
		PlatformName:       "Online Pet Adoption Platform",
		MaxApplicationDays: 30,
	})
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(middleware.AuthContext(middleware.AuthOptions{Verifier: tokens, Roles: userSvc}))
	h.RegisterRoutes(r)
	return r, repos
}

func do(t *testing.T, h http.Handler, method, path string, form url.Values, session *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if session != nil {
		req.AddCookie(session)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func loginAs(t *testing.T, h http.Handler, email, password string) *http.Cookie {
	t.Helper()

	rec := do(t, h, http.MethodPost, "/login", url.Values{"email": {email}, "password": {password}}, nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/dashboard", rec.Header().Get("Location"))

	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookie {
			require.True(t, c.HttpOnly)
			return c
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

// availableCard es el input oculto del formulario de solicitud de cada mascota listada.
func availableCard(petID int) string {
	return fmt.Sprintf(`name="pet_id" value="%d"`, petID)
}

func flashOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	require.Equal(t, http.StatusSeeOther, rec.Code)
	u, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	return u.Query().Get("msg")
}

func dashboard(t *testing.T, h http.Handler, session *http.Cookie, query string) string {
	t.Helper()

	rec := do(t, h, http.MethodGet, "/dashboard"+query, nil, session)
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func TestLogin_WrongPassword_RedirectsWithFlash(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodPost, "/login", url.Values{"email": {"john@email.com"}, "password": {"nope"}}, nil)
	require.Equal(t, "Invalid email or password!", flashOf(t, rec))
	require.Empty(t, rec.Result().Cookies())
}

func TestLoginPage_ShowsFlash_AndRedirectsWhenLoggedIn(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/?msg=Account+created%21+Please+log+in.", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Account created! Please log in.")
	require.Contains(t, rec.Body.String(), "Online Pet Adoption Platform")

	session := loginAs(t, h, "john@email.com", "john123")
	rec = do(t, h, http.MethodGet, "/", nil, session)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/dashboard", rec.Header().Get("Location"))
}

func TestDashboard_RequiresSession(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/dashboard", nil, nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/", rec.Header().Get("Location"))

	rec = do(t, h, http.MethodGet, "/dashboard", nil, &http.Cookie{Name: middleware.SessionCookie, Value: "garbage"})
	require.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestLogout_ClearsCookie(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodPost, "/logout", nil, nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, middleware.SessionCookie, cookies[0].Name)
	require.Negative(t, cookies[0].MaxAge)
}

func TestRegister_ThenLogin(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodPost, "/register", url.Values{
		"name": {"Ana"}, "email": {"ana@email.com"}, "password": {"ana123"}, "role": {"adopter"},
	}, nil)
	require.Equal(t, "Account created! Please log in.", flashOf(t, rec))

	session := loginAs(t, h, "ana@email.com", "ana123")
	body := dashboard(t, h, session, "")
	require.Contains(t, body, "Welcome, Ana (Adopter)")
	require.Contains(t, body, "You haven't submitted any applications yet.")
}

func TestRegister_AdminRoleRejected(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodPost, "/register", url.Values{
		"name": {"Eve"}, "email": {"eve@email.com"}, "password": {"x"}, "role": {"admin"},
	}, nil)
	require.Equal(t, "Only adopter or shelter accounts can be registered.", flashOf(t, rec))

	rec = do(t, h, http.MethodPost, "/register", url.Values{
		"name": {"Eve"}, "email": {"eve@email.com"}, "role": {"adopter"},
	}, nil)
	require.Equal(t, "Please fill in name, email and password.", flashOf(t, rec))
}

func TestAdopterDashboard_ListsOnlyListedPets(t *testing.T) {
	h := newTestServer(t)
	session := loginAs(t, h, "john@email.com", "john123")

	body := dashboard(t, h, session, "")
	require.Contains(t, body, availableCard(1))
	require.Contains(t, body, availableCard(2))
	require.NotContains(t, body, availableCard(3))
	require.Contains(t, body, "Age: 3 years")
	require.Contains(t, body, "From: Happy Paws Shelter")
	require.Contains(t, body, "I love dogs and have a large backyard")
}

func TestAdopterDashboard_Search(t *testing.T) {
	h := newTestServer(t)
	session := loginAs(t, h, "john@email.com", "john123")

	body := dashboard(t, h, session, "?type=cat")
	require.Contains(t, body, availableCard(2))
	require.NotContains(t, body, availableCard(1))

	body = dashboard(t, h, session, "?breed=poodle")
	require.Contains(t, body, "No pets match your search.")
}

func TestApply_AndShelterMarksAdopted(t *testing.T) {
	h := newTestServer(t)
	sarah := loginAs(t, h, "sarah@email.com", "sarah123")

	rec := do(t, h, http.MethodPost, "/dashboard/applications", url.Values{"pet_id": {"1"}, "notes": {"Big garden"}}, sarah)
	require.Equal(t, "Application submitted successfully!", flashOf(t, rec))

	shelter := loginAs(t, h, "shelter@happypaws.com", "shelter123")
	body := dashboard(t, h, shelter, "")
	require.Contains(t, body, "Max - Application from Sarah Adopter")
	require.Contains(t, body, "Luna - Application from Sarah Adopter")

	// Solicitud 3 es la de Sarah por Max.
	rec = do(t, h, http.MethodPost, "/dashboard/applications/3/status", url.Values{"status": {"adopted"}}, shelter)
	require.Equal(t, "Application status updated!", flashOf(t, rec))

	body = dashboard(t, h, sarah, "")
	require.NotContains(t, body, availableCard(1))
	require.Contains(t, body, `badge badge-warning">adopted</span>`)

	rec = do(t, h, http.MethodPost, "/dashboard/applications", url.Values{"pet_id": {"1"}, "notes": {"again"}}, sarah)
	require.Equal(t, "This pet is no longer available.", flashOf(t, rec))
}

func TestShelter_AddPet_AdminApproves(t *testing.T) {
	h := newTestServer(t)
	shelter := loginAs(t, h, "shelter@happypaws.com", "shelter123")

	rec := do(t, h, http.MethodPost, "/dashboard/pets", url.Values{
		"name": {"Rocky"}, "type": {"Dog"}, "breed": {"Beagle"}, "age": {"1"}, "description": {"Curious"},
	}, shelter)
	require.Equal(t, "Pet listing submitted!", flashOf(t, rec))

	body := dashboard(t, h, shelter, "")
	require.Contains(t, body, "<h5>Rocky</h5>")
	require.Contains(t, body, "Age: 1 years")
	require.Contains(t, body, `<p class="mb-1">Curious</p>`)
	require.Contains(t, body, `badge badge-warning">pending</span>`)

	admin := loginAs(t, h, "admin@petadoption.com", "admin123")
	body = dashboard(t, h, admin, "")
	require.Contains(t, body, "Rocky - Dog (Beagle)")
	require.Contains(t, body, "Buddy - Dog (Labrador)")

	rec = do(t, h, http.MethodPost, "/dashboard/pets/4/approve", nil, admin)
	require.Equal(t, "Pet listing approved!", flashOf(t, rec))
	rec = do(t, h, http.MethodPost, "/dashboard/pets/3/reject", nil, admin)
	require.Equal(t, "Pet listing rejected!", flashOf(t, rec))

	john := loginAs(t, h, "john@email.com", "john123")
	body = dashboard(t, h, john, "")
	require.Contains(t, body, availableCard(4))
	require.NotContains(t, body, availableCard(3))
}

func TestFormActions_EnforceCapabilities(t *testing.T) {
	h := newTestServer(t)
	john := loginAs(t, h, "john@email.com", "john123")

	rec := do(t, h, http.MethodPost, "/dashboard/pets", url.Values{"name": {"X"}, "type": {"Dog"}, "breed": {"Y"}}, john)
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = do(t, h, http.MethodPost, "/dashboard/pets/3/approve", nil, john)
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = do(t, h, http.MethodPost, "/dashboard/users/3/role", url.Values{"role": {"admin"}}, john)
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminDashboard_StatsAndRoleChange(t *testing.T) {
	h := newTestServer(t)
	admin := loginAs(t, h, "admin@petadoption.com", "admin123")

	body := dashboard(t, h, admin, "")
	require.Contains(t, body, "Admin Dashboard")
	require.Contains(t, body, "<h3>4</h3><p class=\"mb-0\">Total Users</p>")
	require.Contains(t, body, "<h3>1</h3><p class=\"mb-0\">Pending Approval</p>")
	require.Contains(t, body, `John Adopter (adopter) <span class="badge badge-primary">john@email.com</span>`)

	john := loginAs(t, h, "john@email.com", "john123")
	rec := do(t, h, http.MethodPost, "/dashboard/pets", url.Values{"name": {"Rex"}, "type": {"Dog"}, "breed": {"Boxer"}}, john)
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = do(t, h, http.MethodPost, "/dashboard/users/3/role", url.Values{"role": {"shelter"}}, admin)
	require.Equal(t, "User role updated!", flashOf(t, rec))

	// La misma sesión ya tiene los permisos del rol nuevo.
	require.Contains(t, dashboard(t, h, john, ""), "Shelter Dashboard")
	rec = do(t, h, http.MethodPost, "/dashboard/pets", url.Values{"name": {"Rex"}, "type": {"Dog"}, "breed": {"Boxer"}}, john)
	require.Equal(t, "Pet listing submitted!", flashOf(t, rec))
}

func TestRoleDemotion_RevokesWriteAccess(t *testing.T) {
	h := newTestServer(t)
	admin := loginAs(t, h, "admin@petadoption.com", "admin123")
	shelter := loginAs(t, h, "shelter@happypaws.com", "shelter123")

	rec := do(t, h, http.MethodPost, "/dashboard/users/2/role", url.Values{"role": {"adopter"}}, admin)
	require.Equal(t, "User role updated!", flashOf(t, rec))

	rec = do(t, h, http.MethodPost, "/dashboard/pets", url.Values{"name": {"Rex"}, "type": {"Dog"}, "breed": {"Boxer"}}, shelter)
	require.Equal(t, http.StatusForbidden, rec.Code)
	rec = do(t, h, http.MethodPost, "/dashboard/applications/1/status", url.Values{"status": {"approved"}}, shelter)
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestDashboard_DanglingReferencesShowUnknown(t *testing.T) {
	h, repos := newTestServerWithRepos(t)
	ctx := context.Background()

	_, err := repos.Messages.Create(ctx, messages.Message{SenderID: 99, RecipientID: 3, Content: "ghost note", SentAt: time.Now()})
	require.NoError(t, err)
	_, err = repos.Pets.Create(ctx, pets.Pet{
		ShelterID: 99, Name: "Orphan", Type: "Cat", Breed: "Tabby", Age: 5,
		Status: pets.StatusAvailable, Approval: pets.ApprovalApproved,
	})
	require.NoError(t, err)

	john := loginAs(t, h, "john@email.com", "john123")
	body := dashboard(t, h, john, "")
	require.Contains(t, body, "<strong>Unknown</strong>")
	require.Contains(t, body, "From: Unknown")
	require.Contains(t, body, "ghost note")
}

func TestMessages_SendAndInbox(t *testing.T) {
	h := newTestServer(t)
	john := loginAs(t, h, "john@email.com", "john123")

	rec := do(t, h, http.MethodPost, "/dashboard/messages", url.Values{"recipient_id": {"2"}, "content": {"Is Max good with kids?"}}, john)
	require.Equal(t, "Message sent!", flashOf(t, rec))

	rec = do(t, h, http.MethodPost, "/dashboard/messages", url.Values{"recipient_id": {"99"}, "content": {"hi"}}, john)
	require.Equal(t, "Could not send message.", flashOf(t, rec))

	shelter := loginAs(t, h, "shelter@happypaws.com", "shelter123")
	body := dashboard(t, h, shelter, "")
	require.Contains(t, body, "<strong>John Adopter</strong>")
	require.Contains(t, body, "Is Max good with kids?")
}

func TestProfile_AndPassword(t *testing.T) {
	h := newTestServer(t)
	john := loginAs(t, h, "john@email.com", "john123")

	rec := do(t, h, http.MethodPost, "/dashboard/password", url.Values{"current": {"wrong"}, "new": {"x"}}, john)
	require.Equal(t, "Current password is incorrect.", flashOf(t, rec))

	rec = do(t, h, http.MethodPost, "/dashboard/password", url.Values{"current": {"john123"}, "new": {"john456"}}, john)
	require.Equal(t, "Password changed!", flashOf(t, rec))

	rec = do(t, h, http.MethodPost, "/dashboard/profile", url.Values{"name": {"Johnny"}}, john)
	require.Equal(t, "Profile updated!", flashOf(t, rec))

	john = loginAs(t, h, "john@email.com", "john456")
	require.Contains(t, dashboard(t, h, john, ""), "Welcome, Johnny (Adopter)")
}
