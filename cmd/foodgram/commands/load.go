package commands

import (
	"context"
	"errors"
	"fmt"

	"foodgram-backend/domain"
	"foodgram-backend/pkg/importer"
	"foodgram-backend/pkg/ingredient"
	"foodgram-backend/pkg/tag"

	"github.com/spf13/cobra"
)

const (
	defaultTagsFile        = "data/tags.csv"
	defaultIngredientsFile = "data/ingredients.csv"
)

var loadTagsCmd = &cobra.Command{
	Use:   "load-tags [file]",
	Short: "Import tags from a CSV or JSON file",
	Long: `Import tags from a CSV (name,color,slug) or JSON file.
Existing tags are matched by slug and left unchanged.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runImport(cmd, fileArg(args, defaultTagsFile), importer.Importer.ImportTags)
	},
}

var loadIngredientsCmd = &cobra.Command{
	Use:   "load-ingredients [file]",
	Short: "Import ingredients from a CSV or JSON file",
	Long: `Import ingredients from a CSV (name,measurement_unit) or JSON file.
Existing ingredients are matched by name and unit.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runImport(cmd, fileArg(args, defaultIngredientsFile), importer.Importer.ImportIngredients)
	},
}

func init() {
	rootCmd.AddCommand(loadTagsCmd, loadIngredientsCmd)
}

func fileArg(args []string, fallback string) string {
	if len(args) > 0 {
		return args[0]
	}
	return fallback
}

func runImport(cmd *cobra.Command, path string, load func(importer.Importer, context.Context, string) (domain.ImportResult, error)) error {
	db, err := connect()
	if err != nil {
		return err
	}
	imp := importer.NewImporter(tag.NewTagRepository(db), ingredient.NewIngredientRepository(db))

	res, err := load(imp, cmd.Context(), path)
	switch {
	case errors.Is(err, domain.ErrUnsupportedFormat), errors.Is(err, domain.ErrImportFileMissing):
		fmt.Fprintln(cmd.OutOrStdout(), err)
		return nil
	case err != nil:
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d created, %d already present, %d failed\n", path, res.Created, res.Existed, res.Failed)
	return nil
}
