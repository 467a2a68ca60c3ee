// Package importer loads tag and ingredient dictionaries from CSV or JSON files.
package importer

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"foodgram-backend/domain"
	"foodgram-backend/entities"
	"foodgram-backend/internal/utils"
	"foodgram-backend/pkg/ingredient"
	"foodgram-backend/pkg/tag"

	"github.com/gofiber/fiber/v2/log"
)

const (
	formatCSV  = ".csv"
	formatJSON = ".json"
)

type (
	Importer interface {
		ImportTags(ctx context.Context, path string) (domain.ImportResult, error)
		ImportIngredients(ctx context.Context, path string) (domain.ImportResult, error)
	}

	importer struct {
		tagRepository        tag.TagRepository
		ingredientRepository ingredient.IngredientRepository
	}
)

func NewImporter(tagRepository tag.TagRepository, ingredientRepository ingredient.IngredientRepository) Importer {
	return &importer{
		tagRepository:        tagRepository,
		ingredientRepository: ingredientRepository,
	}
}

func (i *importer) ImportTags(ctx context.Context, path string) (domain.ImportResult, error) {
	records, err := readRecords(path, 3, func(row []string) domain.TagRecord {
		return domain.TagRecord{Name: row[0], Color: row[1], Slug: row[2]}
	})
	if err != nil {
		return domain.ImportResult{}, err
	}

	var result domain.ImportResult
	for _, rec := range records {
		created, err := i.saveTag(ctx, rec)
		tally(&result, path, rec.Name, created, err)
	}
	return result, nil
}

func (i *importer) saveTag(ctx context.Context, rec domain.TagRecord) (bool, error) {
	color, err := utils.ValidateHexColor(rec.Color)
	if err != nil {
		return false, err
	}
	name, slug := strings.TrimSpace(rec.Name), strings.TrimSpace(rec.Slug)
	if name == "" || slug == "" {
		return false, errors.New("name and slug are required")
	}
	return i.tagRepository.GetOrCreateTag(ctx, &entities.Tag{Name: name, Color: color, Slug: slug})
}

func (i *importer) ImportIngredients(ctx context.Context, path string) (domain.ImportResult, error) {
	records, err := readRecords(path, 2, func(row []string) domain.IngredientRecord {
		return domain.IngredientRecord{Name: row[0], MeasurementUnit: row[1]}
	})
	if err != nil {
		return domain.ImportResult{}, err
	}

	var result domain.ImportResult
	for _, rec := range records {
		created, err := i.saveIngredient(ctx, rec)
		tally(&result, path, rec.Name, created, err)
	}
	return result, nil
}

func (i *importer) saveIngredient(ctx context.Context, rec domain.IngredientRecord) (bool, error) {
	name, unit := strings.TrimSpace(rec.Name), strings.TrimSpace(rec.MeasurementUnit)
	if name == "" || unit == "" {
		return false, errors.New("name and measurement_unit are required")
	}
	return i.ingredientRepository.GetOrCreateIngredient(ctx, &entities.Ingredient{Name: name, MeasurementUnit: unit})
}

// readRecords decodes a CSV file (positional columns, optional "name" header) or a JSON array.
func readRecords[T any](path string, columns int, fromRow func([]string) T) ([]T, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != formatCSV && ext != formatJSON {
		return nil, domain.ErrUnsupportedFormat
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrImportFileMissing, path)
		}
		return nil, err
	}
	defer f.Close()

	if ext == formatJSON {
		var records []T
		if err := json.NewDecoder(f).Decode(&records); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		return records, nil
	}

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var records []T
	for line := 1; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		if line == 1 && strings.EqualFold(strings.TrimSpace(row[0]), "name") {
			continue
		}
		if len(row) < columns {
			log.Warnw("skipping short row", "file", path, "line", line, "columns", len(row))
			continue
		}
		records = append(records, fromRow(row))
	}
	return records, nil
}

func tally(result *domain.ImportResult, path, name string, created bool, err error) {
	switch {
	case err != nil:
		result.Failed++
		log.Warnw("import row failed", "file", path, "name", name, "error", err)
	case created:
		result.Created++
		log.Infow("imported", "file", path, "name", name)
	default:
		result.Existed++
	}
}
