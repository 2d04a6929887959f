package usecase

import (
	"fmt"
	"time"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/contest"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/match"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/player"
)

type seedFixture struct {
	team1, team1Short string
	team2, team2Short string
	tournament        string
	venue             string
	date              time.Time
}

type playerTemplate struct {
	name    string
	role    player.Role
	credits int
}

var ist = time.FixedZone("IST", 5*60*60+30*60)

var seedFixtures = []seedFixture{
	{"Mumbai Indians", "MI", "Chennai Super Kings", "CSK", "IPL 2026", "Wankhede Stadium, Mumbai", time.Date(2026, 3, 22, 19, 30, 0, 0, ist)},
	{"Royal Challengers Bengaluru", "RCB", "Kolkata Knight Riders", "KKR", "IPL 2026", "M. Chinnaswamy Stadium, Bengaluru", time.Date(2026, 3, 23, 15, 30, 0, 0, ist)},
	{"Delhi Capitals", "DC", "Rajasthan Royals", "RR", "IPL 2026", "Arun Jaitley Stadium, Delhi", time.Date(2026, 3, 24, 19, 30, 0, 0, ist)},
	{"India", "IND", "Australia", "AUS", "ICC Champions Trophy 2026", "Narendra Modi Stadium, Ahmedabad", time.Date(2026, 3, 28, 14, 0, 0, 0, ist)},
	{"Punjab Kings", "PBKS", "Sunrisers Hyderabad", "SRH", "IPL 2026", "IS Bindra Stadium, Mohali", time.Date(2026, 3, 25, 19, 30, 0, 0, ist)},
	{"Gujarat Titans", "GT", "Lucknow Super Giants", "LSG", "IPL 2026", "Narendra Modi Stadium, Ahmedabad", time.Date(2026, 3, 26, 19, 30, 0, 0, ist)},
}

var teamTemplates = map[string][]playerTemplate{
	"Mumbai Indians": {
		{"Rohit Sharma", player.RoleBatsman, 10},
		{"Ishan Kishan", player.RoleWicketKeeper, 9},
		{"Suryakumar Yadav", player.RoleBatsman, 10},
		{"Tilak Varma", player.RoleBatsman, 8},
		{"Hardik Pandya", player.RoleAllRounder, 10},
		{"Tim David", player.RoleAllRounder, 8},
		{"Jasprit Bumrah", player.RoleBowler, 10},
		{"Piyush Chawla", player.RoleBowler, 7},
		{"Akash Madhwal", player.RoleBowler, 7},
		{"Gerald Coetzee", player.RoleBowler, 8},
		{"Naman Dhir", player.RoleBatsman, 7},
	},
	"Chennai Super Kings": {
		{"Ruturaj Gaikwad", player.RoleBatsman, 10},
		{"Devon Conway", player.RoleBatsman, 9},
		{"MS Dhoni", player.RoleWicketKeeper, 9},
		{"Shivam Dube", player.RoleAllRounder, 9},
		{"Ravindra Jadeja", player.RoleAllRounder, 10},
		{"Moeen Ali", player.RoleAllRounder, 8},
		{"Deepak Chahar", player.RoleBowler, 8},
		{"Tushar Deshpande", player.RoleBowler, 7},
		{"Matheesha Pathirana", player.RoleBowler, 9},
		{"Maheesh Theekshana", player.RoleBowler, 8},
		{"Rachin Ravindra", player.RoleAllRounder, 8},
	},
	"Royal Challengers Bengaluru": {
		{"Virat Kohli", player.RoleBatsman, 11},
		{"Faf du Plessis", player.RoleBatsman, 9},
		{"Glenn Maxwell", player.RoleAllRounder, 9},
		{"Rajat Patidar", player.RoleBatsman, 8},
		{"Dinesh Karthik", player.RoleWicketKeeper, 8},
		{"Wanindu Hasaranga", player.RoleAllRounder, 9},
		{"Mohammed Siraj", player.RoleBowler, 9},
		{"Harshal Patel", player.RoleBowler, 8},
		{"Josh Hazlewood", player.RoleBowler, 9},
		{"Karn Sharma", player.RoleBowler, 7},
		{"Cameron Green", player.RoleAllRounder, 9},
	},
	"Kolkata Knight Riders": {
		{"Shreyas Iyer", player.RoleBatsman, 10},
		{"Venkatesh Iyer", player.RoleAllRounder, 8},
		{"Andre Russell", player.RoleAllRounder, 10},
		{"Sunil Narine", player.RoleAllRounder, 10},
		{"Phil Salt", player.RoleWicketKeeper, 9},
		{"Rinku Singh", player.RoleBatsman, 8},
		{"Mitchell Starc", player.RoleBowler, 10},
		{"Varun Chakravarthy", player.RoleBowler, 8},
		{"Harshit Rana", player.RoleBowler, 7},
		{"Ramandeep Singh", player.RoleAllRounder, 7},
		{"Angkrish Raghuvanshi", player.RoleBatsman, 7},
	},
	"Delhi Capitals": {
		{"David Warner", player.RoleBatsman, 10},
		{"Prithvi Shaw", player.RoleBatsman, 8},
		{"Rishabh Pant", player.RoleWicketKeeper, 10},
		{"Axar Patel", player.RoleAllRounder, 9},
		{"Mitchell Marsh", player.RoleAllRounder, 9},
		{"Tristan Stubbs", player.RoleBatsman, 8},
		{"Anrich Nortje", player.RoleBowler, 9},
		{"Kuldeep Yadav", player.RoleBowler, 9},
		{"Mukesh Kumar", player.RoleBowler, 7},
		{"Ishant Sharma", player.RoleBowler, 7},
		{"Abishek Porel", player.RoleWicketKeeper, 7},
	},
	"Rajasthan Royals": {
		{"Sanju Samson", player.RoleWicketKeeper, 10},
		{"Jos Buttler", player.RoleBatsman, 10},
		{"Yashasvi Jaiswal", player.RoleBatsman, 10},
		{"Shimron Hetmyer", player.RoleBatsman, 8},
		{"Ravichandran Ashwin", player.RoleAllRounder, 9},
		{"Dhruv Jurel", player.RoleWicketKeeper, 7},
		{"Trent Boult", player.RoleBowler, 9},
		{"Yuzvendra Chahal", player.RoleBowler, 9},
		{"Sandeep Sharma", player.RoleBowler, 7},
		{"Riyan Parag", player.RoleAllRounder, 8},
		{"Avesh Khan", player.RoleBowler, 8},
	},
}

// fallbackTemplate is used for teams without a named squad. Names are
// prefixed with the team short code.
var fallbackTemplate = []playerTemplate{
	{"Opener 1", player.RoleBatsman, 9},
	{"Opener 2", player.RoleBatsman, 8},
	{"Middle Order 1", player.RoleBatsman, 8},
	{"Keeper", player.RoleWicketKeeper, 8},
	{"All-Rounder 1", player.RoleAllRounder, 9},
	{"All-Rounder 2", player.RoleAllRounder, 8},
	{"Fast Bowler 1", player.RoleBowler, 9},
	{"Fast Bowler 2", player.RoleBowler, 8},
	{"Spinner 1", player.RoleBowler, 8},
	{"Spinner 2", player.RoleBowler, 7},
	{"Batsman 3", player.RoleBatsman, 7},
}

// SeedBundles returns the demo fixtures with their squads and free contests.
func SeedBundles() []match.SeedBundle {
	out := make([]match.SeedBundle, 0, len(seedFixtures))
	for _, f := range seedFixtures {
		players := make([]player.Player, 0, 22)
		players = append(players, squadFor(f.team1, f.team1Short)...)
		players = append(players, squadFor(f.team2, f.team2Short)...)

		out = append(out, match.SeedBundle{
			Match: match.Match{
				Team1:      f.team1,
				Team1Short: f.team1Short,
				Team2:      f.team2,
				Team2Short: f.team2Short,
				Tournament: f.tournament,
				Venue:      f.venue,
				MatchDate:  f.date.UTC(),
				Status:     match.StatusUpcoming,
			},
			Players:  players,
			Contests: contestsFor(f),
		})
	}
	return out
}

func squadFor(teamName, short string) []player.Player {
	templates, named := teamTemplates[teamName]
	if !named {
		templates = fallbackTemplate
	}

	out := make([]player.Player, 0, len(templates))
	for _, tpl := range templates {
		name := tpl.name
		if !named {
			name = short + " " + tpl.name
		}
		out = append(out, player.Player{
			Name:      name,
			Team:      teamName,
			TeamShort: short,
			Role:      tpl.role,
			Credits:   tpl.credits,
		})
	}
	return out
}

func contestsFor(f seedFixture) []contest.Contest {
	prefix := fmt.Sprintf("%s vs %s", f.team1Short, f.team2Short)
	return []contest.Contest{
		{
			Name:             prefix + " - Free Contest",
			Description:      fmt.Sprintf("Free contest for %s vs %s. Join and compete with other cricket enthusiasts!", f.team1, f.team2),
			MaxParticipants:  1000,
			EntryFee:         0,
			PrizeDescription: "Leaderboard Rankings & Bragging Rights",
			Status:           contest.StatusOpen,
		},
		{
			Name:             prefix + " - Mega Contest",
			Description:      "Mega free contest with higher competition. Show your cricket knowledge!",
			MaxParticipants:  5000,
			EntryFee:         0,
			PrizeDescription: "Top Rankings & Achievement Badges",
			Status:           contest.StatusOpen,
		},
	}
}
