package contest

import "testing"

func TestOrderStandings(t *testing.T) {
	stored := 2
	rows := OrderStandings([]Standing{
		{UserID: 1, UserName: "Asha", TeamName: "Blue", Points: 120},
		{UserID: 2, UserName: "", TeamName: " ", Points: 80, Rank: &stored},
	})

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Position != 1 || rows[1].Position != 2 {
		t.Fatalf("unexpected positions: %d, %d", rows[0].Position, rows[1].Position)
	}
	if rows[0].Rank != nil {
		t.Fatalf("unscored entry must keep a nil rank, got %d", *rows[0].Rank)
	}
	if rows[1].Rank == nil || *rows[1].Rank != 2 {
		t.Fatalf("stored rank must pass through, got %v", rows[1].Rank)
	}
	if rows[1].UserName != "Unknown" || rows[1].TeamName != "Unknown" {
		t.Fatalf("expected Unknown fallbacks, got %q / %q", rows[1].UserName, rows[1].TeamName)
	}
}

func TestContest_IsFull(t *testing.T) {
	c := Contest{MaxParticipants: 1}
	if c.IsFull() {
		t.Fatalf("empty contest reported full")
	}
	c.CurrentParticipants = 1
	if !c.IsFull() {
		t.Fatalf("expected contest to be full")
	}
}
