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

	"github.com/walteh/recolor/pkg/detect"
	"gitlab.com/tozd/go/errors"
)

// 📋 ScanReport is what a scan found
type ScanReport struct {
	Files    map[string]detect.Detections // relative path -> detections
	Order    []string                     // relative paths in walk order
	Scanned  int                          // eligible files read
	Failed   int                          // eligible files that could not be read
	Literals int                          // literal occurrences across all files
}

// 🔎 ScanOperation reports detections without prompting or writing anything
type ScanOperation struct {
	BaseOperation

	report ScanReport
}

// NewScanOperation creates a new scan operation
func NewScanOperation(opts Options) *ScanOperation {
	return &ScanOperation{
		BaseOperation: NewBaseOperation(opts),
		report:        ScanReport{Files: make(map[string]detect.Detections)},
	}
}

// Report returns the findings of the last Execute
func (op *ScanOperation) Report() ScanReport {
	return op.report
}

// 🏃 Execute runs the scan
func (op *ScanOperation) Execute(ctx context.Context) error {
	op.report = ScanReport{Files: make(map[string]detect.Detections)}

	err := op.walk(ctx, func(ctx context.Context, rel, abs string) error {
		content, err := op.readFile(abs)
		if err != nil {
			op.report.Failed++
			op.Logger.Errorf("Error reading %s: %v", rel, err)
			return nil
		}
		op.report.Scanned++

		detections := op.detector.Detect(string(content))
		if len(detections) == 0 {
			return nil
		}

		op.report.Files[rel] = detections
		op.report.Order = append(op.report.Order, rel)
		op.report.Literals += detections.Count()

		op.Logger.FileHeader(rel)
		for _, d := range detections {
			op.Logger.DetectionLine(d.Number, d.Line, d.Texts())
		}
		return nil
	})
	if err != nil {
		return errors.Errorf("walking %s: %w", op.Root, err)
	}
	return nil
}
