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

package status

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 📢 Reporter prints user-facing progress for a batch run. Every line
// is mirrored to zerolog so debug output tells the same story.
type Reporter struct {
	out io.Writer
	log zerolog.Logger
}

// 🎯 NewReporter creates a Reporter writing to stdout.
func NewReporter(ctx context.Context) *Reporter {
	return NewReporterTo(ctx, os.Stdout)
}

// NewReporterTo creates a Reporter writing to w. Used by tests to
// capture output.
func NewReporterTo(ctx context.Context, w io.Writer) *Reporter {
	return &Reporter{
		out: w,
		log: *zerolog.Ctx(ctx),
	}
}

// 📋 Discovery lists the files found for processing.
func (r *Reporter) Discovery(files []string) {
	pterm.Info.WithPrefix(pterm.Prefix{Text: "🔍"}).WithWriter(r.out).
		Printfln("Found %d Review files to process:", len(files))
	for _, path := range files {
		fmt.Fprintf(r.out, "  - %s\n", path)
	}
	fmt.Fprintln(r.out)
	r.log.Info().Int("count", len(files)).Msg("located review files")
}

// 🔍 NoFiles reports an empty match set.
func (r *Reporter) NoFiles(dir string) {
	pterm.Warning.WithPrefix(pterm.Prefix{Text: "🔍"}).WithWriter(r.out).
		Printfln("No Review files found in directory '%s'", dir)
	r.log.Info().Str("dir", dir).Msg("no review files found")
}

// ✅ FileSuccess reports one successfully rewritten file.
func (r *Reporter) FileSuccess(path string, updated int) {
	fmt.Fprintln(r.out, FormatFileSuccess(path, updated))
	r.log.Info().Str("path", path).Int("updated", updated).Msg("processed review file")
}

// ⚠️ FileWarning reports a file skipped for a shape problem.
func (r *Reporter) FileWarning(path, reason string) {
	fmt.Fprintln(r.out, FormatFileWarning(path, reason))
	r.log.Warn().Str("path", path).Msg(reason)
}

// ⚠️ ElementWarning reports one non-object element inside a file.
func (r *Reporter) ElementWarning(path string) {
	fmt.Fprintln(r.out, FormatElementWarning(path))
	r.log.Warn().Str("path", path).Msg("found non-object review element")
}

// ❌ FileError reports a file that failed to process.
func (r *Reporter) FileError(path string, err error) {
	fmt.Fprintln(r.out, FormatFileError(path, err))
	r.log.Error().Err(err).Str("path", path).Msg("processing review file")
}

// 📊 Summary reports the final tally.
func (r *Reporter) Summary(succeeded, total int) {
	fmt.Fprintln(r.out)
	pterm.Success.WithPrefix(pterm.Prefix{Text: "📊"}).WithWriter(r.out).
		Println(FormatSummary(succeeded, total))
	r.log.Info().Int("succeeded", succeeded).Int("total", total).Msg("run complete")
}
