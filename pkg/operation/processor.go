// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package operation

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/walteh/reviewwc/pkg/config"
	"github.com/walteh/reviewwc/pkg/review"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Processor rewrites one review file at a time: decode, augment,
// re-encode, overwrite.
type Processor struct {
	augmenter *review.Augmenter
	indent    int
}

// 🏭 NewProcessor creates a Processor from the run configuration.
func NewProcessor(cfg *config.Config) *Processor {
	return &Processor{
		augmenter: review.NewAugmenter(cfg.TextField, cfg.CountField),
		indent:    cfg.Indent,
	}
}

// 📝 ProcessFile reads the file at path, stamps word counts onto every
// record, and overwrites the file with the augmented content. Any
// failure leaves the on-disk bytes untouched: the rewrite is a single
// atomic replace, never a partial write. Failures never panic out;
// they come back as the error.
func (p *Processor) ProcessFile(ctx context.Context, path string) (updated, skipped int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("unexpected panic: %v", r)
		}
	}()

	logger := zerolog.Ctx(ctx).With().Str("path", path).Logger()
	ctx = logger.WithContext(ctx)

	data, err := os.ReadFile(path)
	if err != nil {
		return 0, 0, errors.Errorf("reading file: %w", err)
	}

	elements, err := review.Decode(data)
	if err != nil {
		return 0, 0, err
	}

	updated, skipped = p.augmenter.Augment(ctx, elements)

	out, err := review.Encode(elements, p.indent)
	if err != nil {
		return 0, 0, err
	}

	if err := writeFileAtomic(path, out); err != nil {
		return 0, 0, err
	}

	logger.Debug().Int("updated", updated).Int("skipped", skipped).Msg("rewrote review file")
	return updated, skipped, nil
}

// writeFileAtomic replaces path's content in one rename so readers
// never observe a half-written file.
func writeFileAtomic(path string, content []byte) error {
	tempPath := path + ".tmp"

	if err := os.WriteFile(tempPath, content, 0644); err != nil {
		return errors.Errorf("writing temp file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath) // Clean up temp file
		return errors.Errorf("renaming temp file: %w", err)
	}

	return nil
}
