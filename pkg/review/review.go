// Package review models review records and stamps word counts onto them.
package review

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/reviewwc/pkg/words"
)

// Field names recognized on a review record. Everything else is opaque
// and passes through untouched.
const (
	DefaultTextField  = "text"
	DefaultCountField = "wordCount"
)

// Record is one review. Records are open-ended objects; only the text
// field is interpreted.
type Record map[string]any

// Augmenter derives the word-count field on decoded review records.
type Augmenter struct {
	textField  string
	countField string
}

// NewAugmenter creates an Augmenter reading textField and writing
// countField. Empty names fall back to the defaults.
func NewAugmenter(textField, countField string) *Augmenter {
	if textField == "" {
		textField = DefaultTextField
	}
	if countField == "" {
		countField = DefaultCountField
	}
	return &Augmenter{
		textField:  textField,
		countField: countField,
	}
}

// Augment walks a decoded top-level array and sets the word-count field
// on every object element, overwriting any prior value. Non-object
// elements are left in place and reported via the skipped count.
// Elements are mutated in place; the returned slice is the input slice.
func (a *Augmenter) Augment(ctx context.Context, elements []any) (updated, skipped int) {
	logger := zerolog.Ctx(ctx)

	for i, el := range elements {
		rec, ok := el.(map[string]any)
		if !ok {
			logger.Warn().Int("index", i).Msg("found non-object review element, leaving as-is")
			skipped++
			continue
		}

		// Absent text is treated the same as null text.
		rec[a.countField] = words.CountValue(rec[a.textField])
		updated++
	}

	logger.Debug().Int("updated", updated).Int("skipped", skipped).Msg("augmented review elements")
	return updated, skipped
}
