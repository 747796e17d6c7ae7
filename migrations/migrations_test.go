package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	entries, err := fs.ReadDir(FS, ".")
	require.NoError(t, err)

	ups := map[string]bool{}
	downs := map[string]bool{}
	for _, e := range entries {
		name := e.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		}
	}

	require.NotEmpty(t, ups)
	assert.Equal(t, ups, downs)
}

func TestTeamsMigrationGuardsMembership(t *testing.T) {
	body, err := fs.ReadFile(FS, "000002_teams.up.sql")
	require.NoError(t, err)

	sql := string(body)
	assert.Contains(t, sql, "UNIQUE (user_id)")
	assert.Contains(t, sql, "team_members_guard")
	assert.Contains(t, sql, ">= 3")
}

func TestOneTeamPerUserMigration(t *testing.T) {
	body, err := fs.ReadFile(FS, "000003_one_team_per_user.up.sql")
	require.NoError(t, err)

	sql := string(body)
	assert.Contains(t, sql, "CREATE UNIQUE INDEX IF NOT EXISTS teams_leader_uidx ON teams (team_leader_id)")
	assert.Contains(t, sql, "teams_leader_guard")
	assert.Contains(t, sql, "WHERE team_leader_id = NEW.user_id")
}
