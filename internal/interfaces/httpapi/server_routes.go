package httpapi

import "net/http"

// Queries are served on GET with input in the query string, mutations on POST
// with a JSON body.

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.HandleFunc("GET /oauth/callback", handler.OAuthCallback)
	mux.HandleFunc("/rpc/", handler.UnknownProcedure)
}

func registerPublicProcedures(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /rpc/auth.me", handler.Me)
	mux.HandleFunc("POST /rpc/auth.logout", handler.Logout)

	mux.HandleFunc("GET /rpc/matches.list", handler.ListMatches)
	mux.HandleFunc("GET /rpc/matches.getById", handler.GetMatch)
	mux.HandleFunc("GET /rpc/players.byMatch", handler.ListPlayersByMatch)

	mux.HandleFunc("GET /rpc/contests.list", handler.ListContests)
	mux.HandleFunc("GET /rpc/contests.getById", handler.GetContest)
	mux.HandleFunc("GET /rpc/contests.leaderboard", handler.ContestLeaderboard)
	mux.HandleFunc("GET /rpc/leaderboard.global", handler.GlobalLeaderboard)

	mux.HandleFunc("POST /rpc/contact.submit", handler.SubmitContact)
}

func registerProtectedProcedures(mux *http.ServeMux, handler *Handler) {
	mux.Handle("POST /rpc/teams.create", RequireAuth(http.HandlerFunc(handler.CreateTeam)))
	mux.Handle("GET /rpc/teams.myTeams", RequireAuth(http.HandlerFunc(handler.ListMyTeams)))
	mux.Handle("GET /rpc/teams.byMatch", RequireAuth(http.HandlerFunc(handler.ListMyTeamsByMatch)))
	mux.Handle("GET /rpc/teams.getWithPlayers", RequireAuth(http.HandlerFunc(handler.GetTeamWithPlayers)))

	mux.Handle("POST /rpc/contests.join", RequireAuth(http.HandlerFunc(handler.JoinContest)))

	mux.Handle("GET /rpc/dashboard.stats", RequireAuth(http.HandlerFunc(handler.DashboardStats)))
	mux.Handle("GET /rpc/dashboard.profile", RequireAuth(http.HandlerFunc(handler.DashboardProfile)))
}

func registerAdminProcedures(mux *http.ServeMux, handler *Handler) {
	mux.Handle("POST /rpc/admin.seedData", RequireAdmin(http.HandlerFunc(handler.SeedData)))
}
