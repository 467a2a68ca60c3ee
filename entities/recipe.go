package entities

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type Tag struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"size:200;uniqueIndex;not null;check:chk_tags_name_not_empty,length(name) > 0" json:"name"`
	Color string `gorm:"size:7;not null;default:'#FFFFFF';check:chk_tags_color_not_empty,length(color) > 0" json:"color"`
	Slug  string `gorm:"size:200;uniqueIndex;not null;check:chk_tags_slug_not_empty,length(slug) > 0" json:"slug"`
}

type Ingredient struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	Name            string `gorm:"size:200;not null;uniqueIndex:idx_ingredient_name_unit;check:chk_ingredients_name_not_empty,length(name) > 0" json:"name"`
	MeasurementUnit string `gorm:"size:200;not null;uniqueIndex:idx_ingredient_name_unit;check:chk_ingredients_unit_not_empty,length(measurement_unit) > 0" json:"measurement_unit"`
	// SearchName is the Unicode lower-cased name; SQL LOWER() folds ASCII only on SQLite.
	SearchName      string `gorm:"size:200;not null;default:'';index" json:"-"`
}

func (i *Ingredient) BeforeSave(tx *gorm.DB) error {
	i.SearchName = strings.ToLower(i.Name)
	return nil
}

type Recipe struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:200;not null;uniqueIndex:idx_recipe_name_author;check:chk_recipes_name_not_empty,length(name) > 0" json:"name"`
	AuthorID    uint      `gorm:"not null;uniqueIndex:idx_recipe_name_author" json:"author_id"`
	PubDate     time.Time `gorm:"<-:create;autoCreateTime;index" json:"pub_date"`
	Image       string    `gorm:"not null" json:"image"`
	Text        string    `gorm:"type:text;not null" json:"text"`
	CookingTime int       `gorm:"not null;default:1" json:"cooking_time"`

	Author            *User               `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author,omitempty"`
	Tags              []*Tag              `gorm:"many2many:recipe_tags;constraint:OnDelete:CASCADE" json:"tags,omitempty"`
	AmountIngredients []*AmountIngredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"ingredients,omitempty"`
	Timestamp
}

// AmountIngredient links a recipe to an ingredient with a quantity.
type AmountIngredient struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	RecipeID     uint `gorm:"not null;uniqueIndex:idx_amount_recipe_ingredient" json:"recipe_id"`
	IngredientID uint `gorm:"not null;uniqueIndex:idx_amount_recipe_ingredient;index" json:"ingredient_id"`
	Amount       int  `gorm:"not null;default:1" json:"amount"`

	Ingredient *Ingredient `gorm:"foreignKey:IngredientID;constraint:OnDelete:CASCADE" json:"ingredient,omitempty"`
}
