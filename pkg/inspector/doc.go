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

// Package inspector orchestrates a single inspection run.
//
// An Inspector asks its collector.Factory for the system, process and
// environment collectors, runs them one after another, assembles the
// report and hands it to the selected renderer:
//
//	insp := &inspector.Inspector{
//	    Factory: collector.NewDefaultFactory(collector.WithVerbose(true)),
//	    Output:  inspector.OutputJSON,
//	    Save:    true,
//	}
//	if err := insp.Run(ctx); err != nil {
//	    return err
//	}
//
// Text output may clear the terminal first. When a report is saved the
// notice goes to Out for text output and to Err otherwise, so structured
// output on Out stays parseable.
//
// Collection timings are kept in a private Prometheus registry and are
// included in the prometheus output.
package inspector
