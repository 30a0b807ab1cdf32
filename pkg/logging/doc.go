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

// Package logging provides structured logging utilities for envinspect.
//
// # Overview
//
// This package wraps the standard library slog package with envinspect defaults
// and conventions for consistent logging across all components. It supports
// environment-based log level configuration, module/version context injection,
// and automatic source location tracking for debug logs.
//
// # Features
//
//   - Structured JSON logging to stderr, keeping stdout for the report
//   - Environment-based log level configuration (LOG_LEVEL)
//   - Automatic module, version and per-run id (uuid) context
//   - Source location tracking for debug logs
//   - Flexible log level parsing
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages
//   - WARN/WARNING: Warning messages for potentially problematic situations (default)
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("envinspect", "v1.0.0")
//	    defer slog.Info("application started")
//
//	    // Use slog as normal
//	    slog.Info("processing request", "id", "req-123")
//	    slog.Debug("detailed state", "data", complexObject)
//	    slog.Error("operation failed", "error", err)
//	}
//
// Creating a custom logger:
//
//	logger := logging.NewStructuredLogger("envinspect", "v2.0.0", "debug")
//	logger.Info("collector finished", "collector", "system")
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("envinspect", "v1.0.0", "warn")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug envinspect --json
//
// If LOG_LEVEL is not set, defaults to WARN level. The --log-level flag
// takes precedence.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "collector finished",
//	    "module": "envinspect",
//	    "version": "v1.0.0",
//	    "run": "0b6f2c8e-5d0a-4d53-9a57-3c1f3f3e6f0a",
//	    "collector": "system"
//	}
//
// Debug logs additionally include a "source" object with function, file
// and line.
//
// # Integration
//
// This package is used by:
//   - pkg/cli - logger initialisation from --log-level
//   - pkg/collector - per-collector debug logging
//   - pkg/inspector - run orchestration logging
//   - pkg/store - report persistence logging
package logging
