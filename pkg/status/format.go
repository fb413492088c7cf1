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
	"fmt"

	"github.com/fatih/color"
)

// FormatFileSuccess formats the per-file success line.
func FormatFileSuccess(path string, updated int) string {
	return fmt.Sprintf("%s Successfully processed %s: Updated %d reviews.", color.GreenString("✓"), path, updated)
}

// FormatFileWarning formats a per-file warning line.
func FormatFileWarning(path, reason string) string {
	return fmt.Sprintf("%s Warning: %s %s", color.YellowString("⚠"), path, reason)
}

// FormatElementWarning formats the warning for a non-object array
// element found inside a file.
func FormatElementWarning(path string) string {
	return fmt.Sprintf("%s Warning: Found non-object review in %s. Skipping.", color.YellowString("⚠"), path)
}

// FormatFileError formats a per-file failure line.
func FormatFileError(path string, err error) string {
	return fmt.Sprintf("%s Error processing %s: %v", color.RedString("✗"), path, err)
}

// FormatSummary formats the final tally line.
func FormatSummary(succeeded, total int) string {
	return fmt.Sprintf("Processing complete. Successfully updated %d/%d files.", succeeded, total)
}
