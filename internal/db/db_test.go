package db

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dateplan/internal/model"
)

func openTemp(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := Open(filepath.Join(t.TempDir(), "dateplan.db"))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestOpen_SeedsBuiltInCatalog(t *testing.T) {
	conn := openTemp(t)

	venues, err := ListVenues(conn)
	require.NoError(t, err)
	require.Len(t, venues, 12)
	assert.Equal(t, "1", venues[0].ID)
	assert.Equal(t, "The Garden Bistro", venues[0].Name)
	assert.Equal(t, model.CategoryDining, venues[0].Category)
	assert.Equal(t, 3, venues[0].PriceTier)
	assert.Equal(t, "12", venues[11].ID)

	templates, err := ListTemplates(conn)
	require.NoError(t, err)
	require.Len(t, templates, 8)
	assert.Equal(t, "classic-dinner", templates[0].ID)
	assert.Equal(t, []model.Category{model.CategoryDining, model.CategoryEntertainment}, templates[0].Categories)
	assert.Equal(t, []model.Category{model.CategoryActivity, model.CategoryDining, model.CategoryActivity}, templates[7].Categories)
}

func TestOpen_ReopenDoesNotReseed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dateplan.db")
	first, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := Open(path)
	require.NoError(t, err)
	defer second.Close()

	venues, err := ListVenues(second)
	require.NoError(t, err)
	assert.Len(t, venues, 12)
}

func TestLoadDistanceTable_SeededTableIsSymmetric(t *testing.T) {
	conn := openTemp(t)

	table, err := LoadDistanceTable(conn)
	require.NoError(t, err)
	assert.Empty(t, table.Asymmetric())
	assert.Equal(t, []string{"Arts District", "Downtown", "Midtown", "Waterfront"}, table.Zones())

	for _, from := range table.Zones() {
		for _, to := range table.Zones() {
			assert.Equal(t, table.Distance(from, to), table.Distance(to, from), "%s <-> %s", from, to)
		}
	}
	assert.Equal(t, 1.2, table.Distance("Downtown", "Midtown"))
	assert.Equal(t, 2.8, table.Distance("Waterfront", "Midtown"))
}

func TestListVenues_RejectsInvalidRow(t *testing.T) {
	conn := openTemp(t)

	_, err := conn.Exec(`INSERT INTO venues (id, position, name, category, zone, rating, price_tier, image_url)
		VALUES ('bad', 99, 'Broken', 'dining', 'Downtown', 4.0, 2, 'not a url')`)
	require.NoError(t, err)

	_, err = ListVenues(conn)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid venue bad")
}

func TestListTemplates_RejectsTemplateWithoutSteps(t *testing.T) {
	conn := openTemp(t)

	_, err := conn.Exec(`INSERT INTO templates (id, position, name) VALUES ('empty', 99, 'Empty')`)
	require.NoError(t, err)

	_, err = ListTemplates(conn)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid template empty")
}

func TestLoadCatalog(t *testing.T) {
	conn := openTemp(t)

	msg, err := LoadCatalog(conn)
	require.NoError(t, err)
	assert.Len(t, msg.Venues, 12)
	assert.Len(t, msg.Distances, 12)
	assert.Len(t, msg.Templates, 8)
}
