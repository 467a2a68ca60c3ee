package domain

import "errors"

var (
	ErrUnsupportedFormat = errors.New("file must be in json or csv format")
	ErrImportFileMissing = errors.New("import file not found, put it into the data directory")
)

type (
	TagRecord struct {
		Name  string `json:"name"`
		Color string `json:"color"`
		Slug  string `json:"slug"`
	}

	IngredientRecord struct {
		Name            string `json:"name"`
		MeasurementUnit string `json:"measurement_unit"`
	}

	ImportResult struct {
		Created int
		Existed int
		Failed  int
	}
)

