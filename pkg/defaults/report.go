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

package defaults

import "os"

// Environment section defaults.
const (
	// ModeVariable is the environment variable read as the run mode.
	ModeVariable = "GO_ENV"

	// ModeNotSet is reported when the mode variable is unset or empty.
	ModeNotSet = "not set"

	// EnvPreviewLimit is the number of variables listed in verbose text output.
	EnvPreviewLimit = 10

	// EnvValueMaxLen is the longest value shown in full in verbose text output.
	EnvValueMaxLen = 50

	// EnvValueKeepLen is the prefix kept when a value is truncated.
	EnvValueKeepLen = 47

	// EnvValueEllipsis is appended to truncated values.
	EnvValueEllipsis = "..."
)

// Persistence defaults.
const (
	// ReportsDirName is the directory, next to the executable, that holds saved reports.
	ReportsDirName = "reports"

	// ReportFilePrefix and ReportFileExt frame the timestamp in a report file name.
	ReportFilePrefix = "report-"
	ReportFileExt    = ".json"

	// ReportDirPerm is used when creating the reports directory.
	ReportDirPerm os.FileMode = 0o755

	// ReportFilePerm is used when writing a report file.
	ReportFilePerm os.FileMode = 0o644
)

// EnvPrefix prefixes every environment variable the CLI reads for its own flags.
const EnvPrefix = "ENVINSPECT_"
