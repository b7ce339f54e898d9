package repository

import (
	"path/filepath"
	"testing"

	"brightplay/internal/database"
	"brightplay/internal/game"
	"brightplay/internal/models"
)

func testDB(t *testing.T) *database.DB {
	t.Helper()

	db, err := database.Initialize(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}
	return db
}

func TestPlayerRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := testDB(t)
	repo := NewPlayerRepository(db)

	created, err := repo.CreatePlayer("Sam", "sam@example.com", "hashed")
	if err != nil {
		t.Fatalf("CreatePlayer() failed: %v", err)
	}
	if created.ID == 0 {
		t.Error("CreatePlayer() returned zero ID")
	}

	byEmail, err := repo.GetPlayerByEmail("sam@example.com")
	if err != nil {
		t.Fatalf("GetPlayerByEmail() failed: %v", err)
	}
	if byEmail == nil || byEmail.ID != created.ID || byEmail.Name != "Sam" {
		t.Errorf("GetPlayerByEmail() = %+v, want id %d", byEmail, created.ID)
	}
	if byEmail.IsOAuth() {
		t.Error("local account should not report as OAuth")
	}

	byID, err := repo.GetPlayerByID(created.ID)
	if err != nil {
		t.Fatalf("GetPlayerByID() failed: %v", err)
	}
	if byID == nil || byID.Email != "sam@example.com" {
		t.Errorf("GetPlayerByID() = %+v", byID)
	}

	missing, err := repo.GetPlayerByEmail("nobody@example.com")
	if err != nil {
		t.Fatalf("GetPlayerByEmail(missing) failed: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown email, got %+v", missing)
	}
}

func TestUpsertOAuthPlayer(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := testDB(t)
	repo := NewPlayerRepository(db)

	first, err := repo.UpsertOAuthPlayer("google", "sub-123", "Robin", "robin@example.com")
	if err != nil {
		t.Fatalf("UpsertOAuthPlayer() failed: %v", err)
	}
	if !first.IsOAuth() {
		t.Error("oauth account should report as OAuth")
	}

	// Second sign-in resolves to the same account and refreshes the name.
	second, err := repo.UpsertOAuthPlayer("google", "sub-123", "Robin K", "robin@example.com")
	if err != nil {
		t.Fatalf("second UpsertOAuthPlayer() failed: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("repeat sign-in created a new account: %d != %d", second.ID, first.ID)
	}
	if second.Name != "Robin K" {
		t.Errorf("name not refreshed: %q", second.Name)
	}

	// A different provider with the same subject is a different account.
	other, err := repo.UpsertOAuthPlayer("facebook", "sub-123", "Robin", "")
	if err != nil {
		t.Fatalf("UpsertOAuthPlayer(facebook) failed: %v", err)
	}
	if other.ID == first.ID {
		t.Error("providers must not share accounts")
	}
}

func TestHistoryRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := testDB(t)
	players := NewPlayerRepository(db)
	history := NewHistoryRepository(db)

	player, err := players.CreatePlayer("Sam", "sam@example.com", "hashed")
	if err != nil {
		t.Fatalf("CreatePlayer() failed: %v", err)
	}

	for i, score := range []int{5, 7, 8} {
		_, err := history.RecordResult(&models.GameResult{
			PlayerID:    player.ID,
			GameID:      "snack-snap",
			Score:       score,
			TotalRounds: 8,
			Dimension:   "function",
		})
		if err != nil {
			t.Fatalf("RecordResult(%d) failed: %v", i, err)
		}
	}

	results, err := history.RecentResults(player.ID, 2)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("RecentResults() returned %d rows, want 2", len(results))
	}
	// Newest first.
	if results[0].Score != 8 || results[1].Score != 7 {
		t.Errorf("RecentResults() order wrong: %d, %d", results[0].Score, results[1].Score)
	}
	if results[0].Accuracy() != 100 {
		t.Errorf("Accuracy() = %v, want 100", results[0].Accuracy())
	}
}

func TestPlayerStoreCapAndIsolation(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := testDB(t)
	players := NewPlayerRepository(db)
	history := NewHistoryRepository(db)

	alex, err := players.CreatePlayer("Alex", "alex@example.com", "hashed")
	if err != nil {
		t.Fatal(err)
	}
	blair, err := players.CreatePlayer("Blair", "blair@example.com", "hashed")
	if err != nil {
		t.Fatal(err)
	}

	store := history.PlayerStore(alex.ID)
	for i := 0; i < game.HistoryLimit+5; i++ {
		if err := store.AppendScore("snack-snap", i); err != nil {
			t.Fatalf("AppendScore(%d) failed: %v", i, err)
		}
	}
	// A score under another game id does not count against the cap.
	if err := store.AppendScore("odd-one-out", 3); err != nil {
		t.Fatal(err)
	}

	recent, err := store.ReadRecent("snack-snap", game.HistoryLimit+5)
	if err != nil {
		t.Fatalf("ReadRecent() failed: %v", err)
	}
	if len(recent) != game.HistoryLimit {
		t.Fatalf("history length = %d, want %d", len(recent), game.HistoryLimit)
	}
	if recent[0] != game.HistoryLimit+4 {
		t.Errorf("recent[0] = %d, want %d", recent[0], game.HistoryLimit+4)
	}
	if recent[len(recent)-1] != 5 {
		t.Errorf("oldest kept = %d, want 5", recent[len(recent)-1])
	}

	// Another player's store sees nothing.
	otherRecent, err := history.PlayerStore(blair.ID).ReadRecent("snack-snap", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(otherRecent) != 0 {
		t.Errorf("history leaked across players: %v", otherRecent)
	}

	// The store satisfies the engine's finalize path.
	s := game.NewSession("snack-snap", nil)
	if got := s.Finalize(store); got != 0 {
		t.Errorf("Finalize() = %d, want 0", got)
	}
}
