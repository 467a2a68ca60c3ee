package importer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"foodgram-backend/domain"
	"foodgram-backend/entities"
	"foodgram-backend/internal/testutil"
	"foodgram-backend/pkg/ingredient"
	"foodgram-backend/pkg/tag"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newImporter(db *gorm.DB) Importer {
	return NewImporter(tag.NewTagRepository(db), ingredient.NewIngredientRepository(db))
}

func TestImportTagsCSV(t *testing.T) {
	db := testutil.NewTestDB(t)
	imp := newImporter(db)
	path := writeFile(t, "tags.csv", "name,color,slug\nBreakfast,E26C2D,breakfast\nLunch, #49B64E,lunch\nBroken,zzz,broken\n")

	res, err := imp.ImportTags(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, domain.ImportResult{Created: 2, Failed: 1}, res)

	var tags []entities.Tag
	require.NoError(t, db.Order("name").Find(&tags).Error)
	require.Len(t, tags, 2)
	assert.Equal(t, "#E26C2D", tags[0].Color)
	assert.Equal(t, "#49B64E", tags[1].Color)

	res, err = imp.ImportTags(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, domain.ImportResult{Existed: 2, Failed: 1}, res)
}

func TestImportTagsJSON(t *testing.T) {
	db := testutil.NewTestDB(t)
	path := writeFile(t, "tags.json", `[{"name":"Dinner","color":"#8775D2","slug":"dinner"}]`)

	res, err := newImporter(db).ImportTags(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Created)

	var got entities.Tag
	require.NoError(t, db.Where("slug = ?", "dinner").First(&got).Error)
	assert.Equal(t, "Dinner", got.Name)
}

func TestImportIngredients(t *testing.T) {
	db := testutil.NewTestDB(t)
	imp := newImporter(db)
	ctx := context.Background()

	csvPath := writeFile(t, "ingredients.csv", "flour,g\nmilk,ml\nflour,g\nsalt\n")
	res, err := imp.ImportIngredients(ctx, csvPath)
	require.NoError(t, err)
	assert.Equal(t, domain.ImportResult{Created: 2, Existed: 1}, res)

	jsonPath := writeFile(t, "ingredients.json", `[{"name":"milk","measurement_unit":"l"},{"name":"","measurement_unit":"g"}]`)
	res, err = imp.ImportIngredients(ctx, jsonPath)
	require.NoError(t, err)
	assert.Equal(t, domain.ImportResult{Created: 1, Failed: 1}, res)

	var count int64
	require.NoError(t, db.Model(&entities.Ingredient{}).Count(&count).Error)
	assert.Equal(t, int64(3), count)
}

func TestImportRejectsFiles(t *testing.T) {
	imp := newImporter(testutil.NewTestDB(t))
	ctx := context.Background()

	_, err := imp.ImportTags(ctx, writeFile(t, "tags.xml", "<tags/>"))
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)

	_, err = imp.ImportIngredients(ctx, filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorIs(t, err, domain.ErrImportFileMissing)

	_, err = imp.ImportTags(ctx, writeFile(t, "tags.json", `{"name":"not an array"}`))
	assert.Error(t, err)
}
