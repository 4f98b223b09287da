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
	"bytes"
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/recolor/pkg/log"
	"github.com/walteh/recolor/pkg/plan"
	"github.com/walteh/recolor/pkg/status"
	"github.com/walteh/recolor/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🎨 NewRecolorOperation creates the interactive recolor operation
func NewRecolorOperation(opts Options, store status.Store) Operation {
	return &recolorOperation{
		BaseOperation: NewBaseOperation(opts),
		planner:       plan.New(opts.Prompter, opts.Target, opts.Replacement),
		replacer:      text.NewColorReplacer(opts.Target),
		status:        store,
	}
}

// 🎨 recolorOperation implements the recolor operation
type recolorOperation struct {
	BaseOperation

	planner  *plan.Planner
	replacer text.TextReplacer
	status   status.Store
}

// 🏃 Execute runs the recolor operation
func (op *recolorOperation) Execute(ctx context.Context) error {
	if op.Prompter == nil {
		return errors.Errorf("prompter is required")
	}

	created, err := op.status.EnsureRoot(ctx)
	if err != nil {
		return errors.Errorf("preparing output root: %w", err)
	}
	if created {
		op.Logger.Infof("Output folder created: %s", op.status.BaseDir())
		op.Logger.Infof("A %s file has been added to %s", status.MarkerFile, op.status.BaseDir())
	} else {
		op.Logger.Infof("Existing output folder: %s", op.status.BaseDir())
	}

	if err := op.walk(ctx, op.processFile); err != nil {
		return errors.Errorf("walking %s: %w", op.Root, err)
	}
	return nil
}

// 📄 processFile detects, plans, rewrites and writes one file. Failures are
// recorded and reported; only context cancellation is returned.
func (op *recolorOperation) processFile(ctx context.Context, rel, abs string) error {
	logger := zerolog.Ctx(ctx).With().Str("file", rel).Logger()

	content, err := op.readFile(abs)
	if err != nil {
		op.fail(ctx, rel, "", errors.Errorf("reading file: %w", err))
		return nil
	}

	detections := op.detector.Detect(string(content))
	if len(detections) == 0 {
		op.status.TrackFile(ctx, status.FileInfo{Path: rel, Status: status.StatusClean})
		return nil
	}
	logger.Debug().Int("lines", len(detections)).Int("literals", detections.Count()).Msg("colors detected")

	op.Logger.FileHeader(rel)
	for _, d := range detections {
		op.Logger.DetectionLine(d.Number, d.Line, d.Texts())
	}

	mode, err := op.planner.ChooseMode(ctx, rel)
	if err != nil {
		op.fail(ctx, rel, "", err)
		return ctx.Err()
	}

	if mode == plan.ModeSkip {
		op.skip(ctx, rel, mode)
		return nil
	}

	colorMap, err := op.planner.Build(ctx, mode, detections)
	if err != nil {
		op.fail(ctx, rel, mode, err)
		return ctx.Err()
	}
	if mode == plan.ModeAuto {
		op.Logger.Infof("Auto mode: %d colors will be replaced", len(colorMap))
	}

	result, err := op.replacer.ReplaceText(ctx, bytes.NewReader(content), colorMap)
	if err != nil {
		op.fail(ctx, rel, mode, errors.Errorf("replacing colors: %w", err))
		return nil
	}
	if !result.WasModified {
		op.skip(ctx, rel, mode)
		return nil
	}

	if err := op.status.WriteFile(ctx, rel, result.ModifiedContent); err != nil {
		op.fail(ctx, rel, mode, errors.Errorf("writing output: %w", err))
		return nil
	}

	out, _ := op.status.OutputPath(rel)
	op.status.TrackFile(ctx, status.FileInfo{
		Path:         rel,
		Status:       status.StatusWritten,
		Mode:         string(mode),
		Replacements: result.ReplacementCount,
	})
	op.Logger.LogFileOutcome(ctx, log.FileOutcome{
		Path:         rel,
		Status:       status.StatusWritten.String(),
		Mode:         string(mode),
		Output:       out,
		Replacements: result.ReplacementCount,
	})
	return nil
}

func (op *recolorOperation) skip(ctx context.Context, rel string, mode plan.Mode) {
	op.status.TrackFile(ctx, status.FileInfo{Path: rel, Status: status.StatusSkipped, Mode: string(mode)})
	op.Logger.LogFileOutcome(ctx, log.FileOutcome{
		Path:   rel,
		Status: status.StatusSkipped.String(),
		Mode:   string(mode),
	})
}

func (op *recolorOperation) fail(ctx context.Context, rel string, mode plan.Mode, err error) {
	op.status.TrackFile(ctx, status.FileInfo{Path: rel, Status: status.StatusFailed, Mode: string(mode), Error: err})
	op.Logger.LogFileOutcome(ctx, log.FileOutcome{
		Path:   rel,
		Status: status.StatusFailed.String(),
		Mode:   string(mode),
		Err:    err,
	})
}
