package httpapi

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/contact"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/contest"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/match"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/player"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/store"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/team"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/user"
	"github.com/riskibarqy/fantasy-cricket/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fantasy-cricket/internal/infrastructure/repository/offline"
	"github.com/riskibarqy/fantasy-cricket/internal/infrastructure/session"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/id"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/logging"
	"github.com/riskibarqy/fantasy-cricket/internal/usecase"
)

const ownerOpenID = "owner-1"

type fakeLogin struct {
	identity usecase.LoginInput
}

func (f fakeLogin) Exchange(context.Context, string, string) (usecase.LoginInput, error) {
	return f.identity, nil
}

type testServer struct {
	router   http.Handler
	sessions *session.Manager
	users    *memory.UserRepository
	players  *memory.PlayerRepository
	contests *memory.ContestRepository
	first    match.Match
}

type envelope struct {
	APIVersion string `json:"apiVersion"`
	Data       any    `json:"data"`
	Error      *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	s := memory.NewStore()
	if _, err := memory.NewSeedRepository(s).Seed(t.Context(), usecase.SeedBundles()); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	userRepo := memory.NewUserRepository(s)
	matchRepo := memory.NewMatchRepository(s)
	playerRepo := memory.NewPlayerRepository(s)
	teamRepo := memory.NewTeamRepository(s)
	contestRepo := memory.NewContestRepository(s)

	matches, err := matchRepo.List(t.Context(), match.Filter{})
	if err != nil || len(matches) == 0 {
		t.Fatalf("list seeded matches: %v", err)
	}

	ts := &testServer{
		users:    userRepo,
		players:  playerRepo,
		contests: contestRepo,
		first:    matches[0],
	}
	ts.router, ts.sessions = buildRouter(t, store.Attached(), routerRepos{
		users:    userRepo,
		matches:  matchRepo,
		players:  playerRepo,
		teams:    teamRepo,
		contests: contestRepo,
		contacts: memory.NewContactRepository(s),
		seeder:   memory.NewSeedRepository(s),
	}, fakeLogin{identity: usecase.LoginInput{OpenID: ownerOpenID, Name: "Owner", LoginMethod: "google"}})
	return ts
}

type routerRepos struct {
	users    user.Repository
	matches  match.Repository
	players  player.Repository
	teams    team.Repository
	contests contest.Repository
	contacts contact.Repository
	seeder   match.Seeder
}

func buildRouter(t *testing.T, status store.Status, repos routerRepos, login LoginProvider) (http.Handler, *session.Manager) {
	t.Helper()

	logger := logging.NewNop()
	sessions, err := session.NewManager(session.Config{Secret: "test-secret", TTL: time.Hour}, id.NewUUIDGenerator())
	if err != nil {
		t.Fatalf("new session manager: %v", err)
	}

	userService := usecase.NewUserService(repos.users, status, ownerOpenID, logger)
	handler := NewHandler(
		usecase.NewMatchService(repos.matches),
		usecase.NewPlayerService(repos.players),
		usecase.NewTeamService(repos.matches, repos.players, repos.teams, status, team.DefaultRules(), logger),
		usecase.NewContestService(repos.contests, repos.teams, status, logger),
		usecase.NewLeaderboardService(repos.users),
		usecase.NewDashboardService(repos.users, repos.teams, repos.contests),
		userService,
		usecase.NewContactService(repos.contacts, status, logger),
		usecase.NewSeedService(repos.seeder, status, nil, logger),
		sessions,
		login,
		logger,
	)
	return NewRouter(handler, sessions, userService, id.NewUUIDGenerator(), logger, nil), sessions
}

func (ts *testServer) login(t *testing.T, openID string, role user.Role) *http.Cookie {
	t.Helper()

	if _, err := ts.users.Upsert(t.Context(), user.UpsertInput{OpenID: openID, Name: openID, Role: role, LastSignedIn: time.Now()}); err != nil {
		t.Fatalf("upsert user %s: %v", openID, err)
	}
	token, err := ts.sessions.Issue(user.Principal{OpenID: openID, Name: openID})
	if err != nil {
		t.Fatalf("issue session: %v", err)
	}
	return &http.Cookie{Name: ts.sessions.CookieName(), Value: token}
}

// cheapestEleven picks the eleven lowest-credit players of the first fixture.
func (ts *testServer) cheapestEleven(t *testing.T) []int64 {
	t.Helper()

	players, err := ts.players.ListByMatch(t.Context(), ts.first.ID)
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	sort.SliceStable(players, func(i, j int) bool { return players[i].Credits < players[j].Credits })

	ids := make([]int64, 0, 11)
	for _, p := range players[:11] {
		ids = append(ids, p.ID)
	}
	return ids
}

func (ts *testServer) createTeamBody(t *testing.T, name string) string {
	t.Helper()

	ids := ts.cheapestEleven(t)
	body, err := sonic.MarshalString(map[string]any{
		"matchId":       ts.first.ID,
		"name":          name,
		"captainId":     ids[0],
		"viceCaptainId": ids[1],
		"playerIds":     ids,
		"totalCredits":  82,
	})
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	return body
}

func serve(t *testing.T, router http.Handler, method, target, body string, cookie *http.Cookie) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		if err := sonic.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode %s %s response: %v (%s)", method, target, err, rec.Body.String())
		}
	}
	return rec, env
}

func requireErrorStatus(t *testing.T, rec *httptest.ResponseRecorder, env envelope, code int, status string) {
	t.Helper()

	if rec.Code != code {
		t.Fatalf("expected http %d, got %d: %s", code, rec.Code, rec.Body.String())
	}
	if env.Error == nil || env.Error.Status != status {
		t.Fatalf("expected error status %s, got %s", status, rec.Body.String())
	}
}

func TestProtectedProcedures_RequireSession(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		method string
		target string
		body   string
	}{
		{http.MethodPost, "/rpc/teams.create", `{"not":"even valid"`},
		{http.MethodPost, "/rpc/teams.create", ts.createTeamBody(t, "Valid")},
		{http.MethodGet, "/rpc/teams.myTeams", ""},
		{http.MethodGet, "/rpc/teams.byMatch?matchId=abc", ""},
		{http.MethodGet, "/rpc/teams.getWithPlayers?teamId=1", ""},
		{http.MethodPost, "/rpc/contests.join", `{"contestId":1,"teamId":1}`},
		{http.MethodGet, "/rpc/dashboard.stats", ""},
		{http.MethodGet, "/rpc/dashboard.profile", ""},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			rec, env := serve(t, ts.router, tt.method, tt.target, tt.body, nil)
			requireErrorStatus(t, rec, env, http.StatusUnauthorized, "UNAUTHENTICATED")
		})
	}

	forged := &http.Cookie{Name: ts.sessions.CookieName(), Value: "not-a-token"}
	rec, env := serve(t, ts.router, http.MethodGet, "/rpc/dashboard.stats", "", forged)
	requireErrorStatus(t, rec, env, http.StatusUnauthorized, "UNAUTHENTICATED")
}

func TestAdminSeedData_Tiers(t *testing.T) {
	ts := newTestServer(t)

	rec, env := serve(t, ts.router, http.MethodPost, "/rpc/admin.seedData", "", nil)
	requireErrorStatus(t, rec, env, http.StatusUnauthorized, "UNAUTHENTICATED")

	rec, env = serve(t, ts.router, http.MethodPost, "/rpc/admin.seedData", "", ts.login(t, "player-1", user.RoleUser))
	requireErrorStatus(t, rec, env, http.StatusForbidden, "PERMISSION_DENIED")

	rec, env = serve(t, ts.router, http.MethodPost, "/rpc/admin.seedData", "", ts.login(t, "admin-1", user.RoleAdmin))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d: %s", rec.Code, rec.Body.String())
	}
	data, _ := env.Data.(map[string]any)
	if data["message"] != usecase.SeedMessageAlreadySeeded || data["seeded"] != false {
		t.Fatalf("unexpected seed result: %v", env.Data)
	}
}

func TestAuthMe(t *testing.T) {
	ts := newTestServer(t)

	rec, env := serve(t, ts.router, http.MethodGet, "/rpc/auth.me", "", nil)
	if rec.Code != http.StatusOK || env.Data != nil {
		t.Fatalf("expected null user for anonymous caller, got %d %s", rec.Code, rec.Body.String())
	}

	rec, env = serve(t, ts.router, http.MethodGet, "/rpc/auth.me", "", ts.login(t, "player-1", ""))
	data, _ := env.Data.(map[string]any)
	if rec.Code != http.StatusOK || data["openId"] != "player-1" || data["role"] != "user" {
		t.Fatalf("unexpected auth.me response: %s", rec.Body.String())
	}
}

func TestAuthLogout_ClearsCookie(t *testing.T) {
	ts := newTestServer(t)

	for _, cookie := range []*http.Cookie{nil, ts.login(t, "player-1", "")} {
		rec, env := serve(t, ts.router, http.MethodPost, "/rpc/auth.logout", "", cookie)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		data, _ := env.Data.(map[string]any)
		if data["success"] != true {
			t.Fatalf("expected success, got %s", rec.Body.String())
		}

		cleared := rec.Result().Cookies()
		if len(cleared) != 1 || cleared[0].Name != ts.sessions.CookieName() || cleared[0].MaxAge != -1 {
			t.Fatalf("expected cleared session cookie, got %+v", cleared)
		}
	}
}

func TestCreateTeam_ValidationAndSuccess(t *testing.T) {
	ts := newTestServer(t)
	cookie := ts.login(t, "player-1", "")
	ids := ts.cheapestEleven(t)

	short, _ := sonic.MarshalString(map[string]any{
		"matchId": ts.first.ID, "name": "Ten", "captainId": ids[0], "viceCaptainId": ids[1],
		"playerIds": ids[:10], "totalCredits": 70,
	})
	rec, env := serve(t, ts.router, http.MethodPost, "/rpc/teams.create", short, cookie)
	requireErrorStatus(t, rec, env, http.StatusBadRequest, "INVALID_ARGUMENT")

	rec, env = serve(t, ts.router, http.MethodPost, "/rpc/teams.create", `{"matchId":1,"extra":true}`, cookie)
	requireErrorStatus(t, rec, env, http.StatusBadRequest, "INVALID_ARGUMENT")

	same, _ := sonic.MarshalString(map[string]any{
		"matchId": ts.first.ID, "name": "Same", "captainId": ids[0], "viceCaptainId": ids[0],
		"playerIds": ids, "totalCredits": 82,
	})
	rec, env = serve(t, ts.router, http.MethodPost, "/rpc/teams.create", same, cookie)
	requireErrorStatus(t, rec, env, http.StatusConflict, "ABORTED")

	rec, env = serve(t, ts.router, http.MethodPost, "/rpc/teams.create", ts.createTeamBody(t, "Budget XI"), cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	data, _ := env.Data.(map[string]any)
	if data["name"] != "Budget XI" {
		t.Fatalf("unexpected create response: %s", rec.Body.String())
	}

	rec, env = serve(t, ts.router, http.MethodGet, "/rpc/teams.myTeams", "", cookie)
	items, _ := env.Data.([]any)
	if rec.Code != http.StatusOK || len(items) != 1 {
		t.Fatalf("expected one team, got %s", rec.Body.String())
	}
}

func TestGetTeamWithPlayers_OtherUsersTeamIsNull(t *testing.T) {
	ts := newTestServer(t)
	owner := ts.login(t, "player-1", "")

	rec, env := serve(t, ts.router, http.MethodPost, "/rpc/teams.create", ts.createTeamBody(t, "Mine"), owner)
	if rec.Code != http.StatusOK {
		t.Fatalf("create team: %d %s", rec.Code, rec.Body.String())
	}
	teamID := int64(env.Data.(map[string]any)["id"].(float64))
	target := "/rpc/teams.getWithPlayers?teamId=" + strconv.FormatInt(teamID, 10)

	rec, env = serve(t, ts.router, http.MethodGet, target, "", owner)
	data, _ := env.Data.(map[string]any)
	players, _ := data["players"].([]any)
	if rec.Code != http.StatusOK || len(players) != 11 {
		t.Fatalf("expected roster of 11, got %s", rec.Body.String())
	}

	rec, env = serve(t, ts.router, http.MethodGet, target, "", ts.login(t, "player-2", ""))
	if rec.Code != http.StatusOK || env.Data != nil {
		t.Fatalf("expected null for another user's team, got %s", rec.Body.String())
	}
}

func TestJoinContest_CapacityAndDuplicate(t *testing.T) {
	ts := newTestServer(t)

	c, err := ts.contests.Create(t.Context(), contest.Contest{
		MatchID:         ts.first.ID,
		Name:            "Head to head",
		MaxParticipants: 1,
		Status:          contest.StatusOpen,
	})
	if err != nil {
		t.Fatalf("create contest: %v", err)
	}

	join := func(cookie *http.Cookie) (*httptest.ResponseRecorder, envelope) {
		rec, env := serve(t, ts.router, http.MethodPost, "/rpc/teams.create", ts.createTeamBody(t, "XI"), cookie)
		if rec.Code != http.StatusOK {
			t.Fatalf("create team: %d %s", rec.Code, rec.Body.String())
		}
		teamID := int64(env.Data.(map[string]any)["id"].(float64))
		body := `{"contestId":` + strconv.FormatInt(c.ID, 10) + `,"teamId":` + strconv.FormatInt(teamID, 10) + `}`
		return serve(t, ts.router, http.MethodPost, "/rpc/contests.join", body, cookie)
	}

	alice := ts.login(t, "alice", "")
	rec, env := join(alice)
	if rec.Code != http.StatusOK {
		t.Fatalf("first join: %d %s", rec.Code, rec.Body.String())
	}
	if data, _ := env.Data.(map[string]any); data["success"] != true {
		t.Fatalf("expected success, got %s", rec.Body.String())
	}

	rec, env = join(alice)
	requireErrorStatus(t, rec, env, http.StatusConflict, "ABORTED")
	if !strings.Contains(env.Error.Message, contest.ErrAlreadyJoined.Error()) {
		t.Fatalf("expected already joined message, got %q", env.Error.Message)
	}

	rec, env = join(ts.login(t, "bob", ""))
	requireErrorStatus(t, rec, env, http.StatusConflict, "ABORTED")
	if !strings.Contains(env.Error.Message, contest.ErrFull.Error()) {
		t.Fatalf("expected contest full message, got %q", env.Error.Message)
	}
}

func TestJoinContest_TrailingDataAndLeaderboardRank(t *testing.T) {
	ts := newTestServer(t)

	c, err := ts.contests.Create(t.Context(), contest.Contest{
		MatchID:         ts.first.ID,
		Name:            "Mega",
		MaxParticipants: 5,
		Status:          contest.StatusOpen,
	})
	if err != nil {
		t.Fatalf("create contest: %v", err)
	}

	alice := ts.login(t, "alice", "")
	rec, env := serve(t, ts.router, http.MethodPost, "/rpc/teams.create", ts.createTeamBody(t, "XI"), alice)
	if rec.Code != http.StatusOK {
		t.Fatalf("create team: %d %s", rec.Code, rec.Body.String())
	}
	teamID := int64(env.Data.(map[string]any)["id"].(float64))
	body := `{"contestId":` + strconv.FormatInt(c.ID, 10) + `,"teamId":` + strconv.FormatInt(teamID, 10) + `}`

	rec, env = serve(t, ts.router, http.MethodPost, "/rpc/contests.join", body+` {"contestId":9}`, alice)
	requireErrorStatus(t, rec, env, http.StatusBadRequest, "INVALID_ARGUMENT")

	leaderboard := "/rpc/contests.leaderboard?contestId=" + strconv.FormatInt(c.ID, 10)
	rec, env = serve(t, ts.router, http.MethodGet, leaderboard, "", nil)
	if rows, _ := env.Data.([]any); rec.Code != http.StatusOK || len(rows) != 0 {
		t.Fatalf("expected no entries after rejected join, got %s", rec.Body.String())
	}

	rec, _ = serve(t, ts.router, http.MethodPost, "/rpc/contests.join", body+"\n", alice)
	if rec.Code != http.StatusOK {
		t.Fatalf("join with trailing newline: %d %s", rec.Code, rec.Body.String())
	}

	rec, env = serve(t, ts.router, http.MethodGet, leaderboard, "", nil)
	rows, _ := env.Data.([]any)
	if rec.Code != http.StatusOK || len(rows) != 1 {
		t.Fatalf("expected one leaderboard row, got %s", rec.Body.String())
	}
	row := rows[0].(map[string]any)
	if rank, present := row["rank"]; !present || rank != nil {
		t.Fatalf("expected null rank before scoring, got %s", rec.Body.String())
	}
	if row["position"] != float64(1) {
		t.Fatalf("expected position 1, got %s", rec.Body.String())
	}

	u, found, err := ts.users.GetByOpenID(t.Context(), "alice")
	if err != nil || !found {
		t.Fatalf("lookup alice: found=%v err=%v", found, err)
	}
	if !ts.contests.SetEntryRank(c.ID, u.ID, 3) {
		t.Fatal("expected alice's entry to exist")
	}

	_, env = serve(t, ts.router, http.MethodGet, leaderboard, "", nil)
	rows, _ = env.Data.([]any)
	row = rows[0].(map[string]any)
	if row["rank"] != float64(3) || row["position"] != float64(1) {
		t.Fatalf("expected stored rank 3 at position 1, got %v", row)
	}
}

func TestGlobalLeaderboard_Limit(t *testing.T) {
	ts := newTestServer(t)

	for _, target := range []string{"/rpc/leaderboard.global?limit=0", "/rpc/leaderboard.global?limit=101", "/rpc/leaderboard.global?limit=ten"} {
		rec, env := serve(t, ts.router, http.MethodGet, target, "", nil)
		requireErrorStatus(t, rec, env, http.StatusBadRequest, "INVALID_ARGUMENT")
	}

	ts.login(t, "player-1", "")
	rec, env := serve(t, ts.router, http.MethodGet, "/rpc/leaderboard.global", "", nil)
	items, _ := env.Data.([]any)
	if rec.Code != http.StatusOK || len(items) != 1 {
		t.Fatalf("expected one leaderboard row, got %s", rec.Body.String())
	}
}

func TestContactSubmit(t *testing.T) {
	ts := newTestServer(t)

	rec, env := serve(t, ts.router, http.MethodPost, "/rpc/contact.submit", `{"name":"Asha","email":"nope","message":"hi"}`, nil)
	requireErrorStatus(t, rec, env, http.StatusBadRequest, "INVALID_ARGUMENT")

	rec, env = serve(t, ts.router, http.MethodPost, "/rpc/contact.submit", `{"name":"","email":"asha@example.com","message":"hi"}`, nil)
	requireErrorStatus(t, rec, env, http.StatusBadRequest, "INVALID_ARGUMENT")

	rec, env = serve(t, ts.router, http.MethodPost, "/rpc/contact.submit", `{"name":"Asha","email":"asha@example.com","subject":"Scores","message":"When are points updated?"}`, nil)
	data, _ := env.Data.(map[string]any)
	if rec.Code != http.StatusOK || data["success"] != true || data["id"] == nil {
		t.Fatalf("unexpected contact response: %s", rec.Body.String())
	}
}

func TestReads_MissingAndUnknown(t *testing.T) {
	ts := newTestServer(t)

	for _, target := range []string{"/rpc/matches.getById?id=9999", "/rpc/contests.getById?id=9999"} {
		rec, env := serve(t, ts.router, http.MethodGet, target, "", nil)
		if rec.Code != http.StatusOK || env.Data != nil {
			t.Fatalf("%s: expected null data, got %s", target, rec.Body.String())
		}
	}

	rec, env := serve(t, ts.router, http.MethodGet, "/rpc/matches.list?status=upcoming", "", nil)
	items, _ := env.Data.([]any)
	if rec.Code != http.StatusOK || len(items) != 6 {
		t.Fatalf("expected six upcoming matches, got %s", rec.Body.String())
	}

	rec, env = serve(t, ts.router, http.MethodGet, "/rpc/matches.list?status=postponed", "", nil)
	if items, ok := env.Data.([]any); rec.Code != http.StatusOK || !ok || len(items) != 0 {
		t.Fatalf("expected an empty list for an unknown status, got %s", rec.Body.String())
	}

	rec, env = serve(t, ts.router, http.MethodGet, "/rpc/matches.getById", "", nil)
	requireErrorStatus(t, rec, env, http.StatusBadRequest, "INVALID_ARGUMENT")

	rec, env = serve(t, ts.router, http.MethodGet, "/rpc/matches.remove", "", nil)
	requireErrorStatus(t, rec, env, http.StatusNotFound, "NOT_FOUND")

	rec, env = serve(t, ts.router, http.MethodPost, "/rpc/matches.list", "", nil)
	requireErrorStatus(t, rec, env, http.StatusNotFound, "NOT_FOUND")
}

func TestStoreAbsent(t *testing.T) {
	router, _ := buildRouter(t, store.Detached(), routerRepos{
		users:    offline.UserRepository{},
		matches:  offline.MatchRepository{},
		players:  offline.PlayerRepository{},
		teams:    offline.TeamRepository{},
		contests: offline.ContestRepository{},
		contacts: offline.ContactRepository{},
		seeder:   offline.SeedRepository{},
	}, nil)

	rec, env := serve(t, router, http.MethodGet, "/rpc/matches.list", "", nil)
	items, ok := env.Data.([]any)
	if rec.Code != http.StatusOK || !ok || len(items) != 0 {
		t.Fatalf("expected empty match list, got %s", rec.Body.String())
	}

	rec, env = serve(t, router, http.MethodPost, "/rpc/contact.submit", `{"name":"Asha","email":"asha@example.com","message":"hi"}`, nil)
	requireErrorStatus(t, rec, env, http.StatusServiceUnavailable, "UNAVAILABLE")
}

func TestOAuthCallback_SignsInOwnerAsAdmin(t *testing.T) {
	ts := newTestServer(t)

	state := base64.StdEncoding.EncodeToString([]byte("http://localhost:3000/oauth/callback"))
	rec, _ := serve(t, ts.router, http.MethodGet, "/oauth/callback?code=abc&state="+state, "", nil)
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/" {
		t.Fatalf("expected redirect to /, got %d %q", rec.Code, rec.Header().Get("Location"))
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected session cookie, got %+v", cookies)
	}

	_, env := serve(t, ts.router, http.MethodGet, "/rpc/auth.me", "", cookies[0])
	data, _ := env.Data.(map[string]any)
	if data["openId"] != ownerOpenID || data["role"] != "admin" {
		t.Fatalf("expected owner promoted to admin, got %v", env.Data)
	}

	rec, env = serve(t, ts.router, http.MethodGet, "/oauth/callback?code=abc", "", nil)
	requireErrorStatus(t, rec, env, http.StatusBadRequest, "INVALID_ARGUMENT")
}
