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

package store

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/NVIDIA/envinspect/pkg/defaults"
	"github.com/NVIDIA/envinspect/pkg/errors"
	"github.com/NVIDIA/envinspect/pkg/report"
	"github.com/NVIDIA/envinspect/pkg/serializer"
)

const timestampLayout = "2006-01-02T15:04:05.000Z"

// Store persists reports as JSON files in a directory.
type Store struct {
	// Dir is the reports directory. It is created on first save.
	Dir string

	// Now returns the save time. Nil means time.Now.
	Now func() time.Time
}

// New returns a Store writing to dir, or to DefaultDir when dir is empty.
func New(dir string) (*Store, error) {
	if dir == "" {
		d, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}
	return &Store{Dir: dir}, nil
}

// DefaultDir returns the reports directory next to the running executable.
func DefaultDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeIO, "failed to resolve executable path", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), defaults.ReportsDirName), nil
}

// FileName returns the report file name for t, e.g.
// "report-2026-10-18T12-34-56-789Z.json". The timestamp is UTC with
// millisecond precision; ':' and '.' are replaced so the name is valid on
// every file system.
func FileName(t time.Time) string {
	ts := t.UTC().Format(timestampLayout)
	ts = strings.NewReplacer(":", "-", ".", "-").Replace(ts)
	return defaults.ReportFilePrefix + ts + defaults.ReportFileExt
}

// Save writes r as indented JSON and returns the path of the file.
// An existing file with the same name is overwritten.
func (s *Store) Save(ctx context.Context, r *report.Report) (string, error) {
	if r == nil {
		return "", errors.New(errors.ErrCodeInvalidRequest, "report is nil")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.Dir, defaults.ReportDirPerm); err != nil {
		return "", errors.WrapWithContext(errors.ErrCodeIO, "failed to create reports directory", err,
			map[string]any{"dir": s.Dir})
	}

	data, err := serializer.Marshal(serializer.FormatJSON, r)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, "failed to encode report", err)
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	path := filepath.Join(s.Dir, FileName(now()))

	if err := serializer.WriteToFile(path, data, defaults.ReportFilePerm); err != nil {
		return "", errors.WrapWithContext(errors.ErrCodeIO, "failed to write report", err,
			map[string]any{"path": path})
	}

	slog.Debug("report saved", "path", path, "bytes", len(data))
	return path, nil
}

// Load reads a report written by Save. The format follows the file extension.
func Load(path string) (*report.Report, error) {
	r, err := serializer.FromFile[report.Report](path)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeIO, "failed to load report", err,
			map[string]any{"path": path})
	}
	return r, nil
}
