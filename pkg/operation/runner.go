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

// Package operation drives the batch run over located review files.
package operation

import (
	"context"

	"github.com/walteh/reviewwc/pkg/config"
	"github.com/walteh/reviewwc/pkg/discover"
	"github.com/walteh/reviewwc/pkg/review"
	"gitlab.com/tozd/go/errors"
)

// 📈 Reporter is the user-facing sink for run progress. Implemented by
// status.Reporter.
type Reporter interface {
	// Discovery lists the files found for processing
	Discovery(files []string)
	// NoFiles reports an empty match set
	NoFiles(dir string)
	// FileSuccess reports one successfully rewritten file
	FileSuccess(path string, updated int)
	// FileWarning reports a file skipped for a shape problem
	FileWarning(path, reason string)
	// ElementWarning reports one non-object element inside a file
	ElementWarning(path string)
	// FileError reports a file that failed to process
	FileError(path string, err error)
	// Summary reports the final tally
	Summary(succeeded, total int)
}

// 📊 Result tallies one batch run. It lives only for the run; nothing
// is persisted.
type Result struct {
	// Attempted is the number of files the run tried to process
	Attempted int
	// Succeeded is the number of files fully rewritten
	Succeeded int
	// Updated is the total number of records stamped across all files
	Updated int
}

// Failed returns the number of files that could not be processed.
func (r *Result) Failed() int {
	return r.Attempted - r.Succeeded
}

// 🔧 Options contains configuration for the runner
type Options struct {
	// Config is the run configuration
	Config *config.Config
	// Reporter receives user-facing progress
	Reporter Reporter
}

// 🏃 Runner executes one batch run end to end.
type Runner struct {
	cfg       *config.Config
	processor *Processor
	reporter  Reporter
}

// 🏗️ NewRunner creates a new runner with the given options
func NewRunner(opts Options) (*Runner, error) {
	if opts.Config == nil {
		return nil, errors.New("config is required")
	}
	if opts.Reporter == nil {
		return nil, errors.New("reporter is required")
	}
	return &Runner{
		cfg:       opts.Config,
		processor: NewProcessor(opts.Config),
		reporter:  opts.Reporter,
	}, nil
}

// Run processes every matching file exactly once, sequentially, in
// sorted order. Files are independent: a failure is reported and
// tallied, never escalated, and the run moves on to the next file.
// The returned error covers only discovery itself.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	files, err := discover.Locate(ctx, r.cfg.Directory, r.cfg.Pattern)
	if err != nil {
		return nil, errors.Errorf("locating review files: %w", err)
	}

	result := &Result{}
	if len(files) == 0 {
		r.reporter.NoFiles(r.cfg.Directory)
		return result, nil
	}

	r.reporter.Discovery(files)

	for _, path := range files {
		result.Attempted++

		updated, skipped, err := r.processor.ProcessFile(ctx, path)
		if err != nil {
			if errors.Is(err, review.ErrNotArray) {
				r.reporter.FileWarning(path, "does not contain a list of reviews. Skipping.")
			} else {
				r.reporter.FileError(path, err)
			}
			continue
		}

		for i := 0; i < skipped; i++ {
			r.reporter.ElementWarning(path)
		}

		result.Succeeded++
		result.Updated += updated
		r.reporter.FileSuccess(path, updated)
	}

	r.reporter.Summary(result.Succeeded, result.Attempted)
	return result, nil
}
