package categorizer

import (
	"strings"

	"fjacquet/expense-analyzer/internal/logging"
	"fjacquet/expense-analyzer/internal/models"
	"fjacquet/expense-analyzer/internal/textutils"
)

// keywordTable is tried top to bottom and the first category with a matching
// keyword wins. "gas" (Transport) therefore shadows "gas bill" (Utilities).
var keywordTable = []models.CategoryConfig{
	{Name: models.CategoryFood, Keywords: []string{"starbucks", "restaurant", "cafe", "whole foods", "mcdonalds", "chipotle", "grocery", "bakery"}},
	{Name: models.CategoryTransport, Keywords: []string{"uber", "lyft", "bus", "train", "gas", "petrol", "parking", "bridge toll"}},
	{Name: models.CategoryRent, Keywords: []string{"rent", "mortgage", "housing"}},
	{Name: models.CategorySubscriptions, Keywords: []string{"netflix", "spotify", "hulu", "disney", "prime", "apple music", "gym"}},
	{Name: models.CategoryUtilities, Keywords: []string{"electric", "water", "gas bill", "internet", "phone", "verizon", "att"}},
	{Name: models.CategoryShopping, Keywords: []string{"amazon", "target", "walmart", "best buy", "clothing", "electronics"}},
}

// Keywords returns a copy of the keyword table in match order.
func Keywords() []models.CategoryConfig {
	out := make([]models.CategoryConfig, len(keywordTable))
	for i, cfg := range keywordTable {
		out[i] = models.CategoryConfig{
			Name:     cfg.Name,
			Keywords: append([]string(nil), cfg.Keywords...),
		}
	}
	return out
}

// KeywordStrategy matches the normalized description against the keyword table.
type KeywordStrategy struct {
	categories []models.CategoryConfig
	logger     logging.Logger
}

// NewKeywordStrategy creates a KeywordStrategy over the built-in table.
func NewKeywordStrategy(logger logging.Logger) *KeywordStrategy {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &KeywordStrategy{
		categories: keywordTable,
		logger:     logger,
	}
}

// Name returns the name of this strategy for logging and debugging.
func (s *KeywordStrategy) Name() string {
	return "Keyword"
}

// Categorize implements CategorizationStrategy.
func (s *KeywordStrategy) Categorize(tx Transaction) (models.Category, bool) {
	description := textutils.Normalize(tx.Description)
	if description == "" {
		return "", false
	}

	for _, categoryConfig := range s.categories {
		for _, keyword := range categoryConfig.Keywords {
			if strings.Contains(description, keyword) {
				s.logger.Debug("Transaction categorized using keyword matching",
					logging.Field{Key: "strategy", Value: s.Name()},
					logging.Field{Key: logging.FieldDescription, Value: tx.Description},
					logging.Field{Key: logging.FieldKeyword, Value: keyword},
					logging.Field{Key: logging.FieldCategory, Value: categoryConfig.Name})
				return categoryConfig.Name, true
			}
		}
	}

	return "", false
}
