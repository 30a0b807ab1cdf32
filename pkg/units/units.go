// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

// Package units renders raw byte counts and durations for the text report.
package units

import (
	"fmt"
	"math"
)

const bytesPerMB = 1024 * 1024

// FormatBytes renders bytes as megabytes with two decimals, e.g. "1.50 MB".
func FormatBytes(bytes uint64) string {
	return fmt.Sprintf("%.2f MB", float64(bytes)/bytesPerMB)
}

// FormatUptime renders seconds as "5.123s" below one minute and as
// "<minutes>m <seconds>s" from one minute on. Both parts of the long form
// are floored.
func FormatUptime(seconds float64) string {
	if seconds < 60 {
		return fmt.Sprintf("%.3fs", seconds)
	}
	minutes := math.Floor(seconds / 60)
	secs := math.Floor(math.Mod(seconds, 60))
	return fmt.Sprintf("%dm %ds", int64(minutes), int64(secs))
}
