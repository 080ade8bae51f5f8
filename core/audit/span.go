// Copyright 2024 - 2025, the localegen contributors
// SPDX-License-Identifier: AGPL-3.0-only

package audit

import (
	"context"
	"fmt"
	"runtime/trace"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

// Span represents a pipeline stage in flight.
type Span struct {
	// only these fields are set automatically
	task     *trace.Task
	start    time.Time
	duration time.Duration

	Stage  Stage
	Detail string
	Bytes  int // size of the produced output, if the stage writes any
	Error  error
}

// Stage names a phase of a generation run.
type Stage string

// Constants for pipeline stages.
const (
	StageLoad     Stage = "load"
	StageValidate Stage = "validate"
	StageGenerate Stage = "generate"
	StageWrite    Stage = "write"
)

// Begin starts timing the span and opens a runtime/trace task for it.
func (span *Span) Begin(ctx context.Context) context.Context {
	span.start = time.Now()

	ctx, span.task = trace.NewTask(ctx, "pipeline."+string(span.Stage))

	return ctx
}

// End stops timing the span. Calling End more than once is harmless.
func (span *Span) End() {
	// only measure once
	if span.task != nil {
		span.duration = time.Since(span.start)
		span.task.End()

		span.task = nil
	}
}

func (span Span) Log() {
	event := log.Debug()

	event.Str("sys", "pipeline")
	event.Str("stage", string(span.Stage))
	event.Str("detail", span.Detail)
	event.Dur("dur", span.duration)

	if span.Bytes > 0 {
		event.Str("len", humanizeSize(span.Bytes))
	}

	if span.Error != nil {
		event.Err(span.Error)
	}

	event.Send()
}

const (
	bytesInKB = 1024
	bytesInMB = bytesInKB * bytesInKB
	bytesInGB = bytesInMB * bytesInKB
)

func humanizeSize(x int) string {
	if x < bytesInKB {
		return strconv.Itoa(x)
	}

	if x < bytesInMB {
		return fmt.Sprintf("%.2fK", float64(x)/bytesInKB)
	}

	if x < bytesInGB {
		return fmt.Sprintf("%.2fM", float64(x)/bytesInMB)
	}

	return fmt.Sprintf("%.2fG", float64(x)/bytesInGB)
}
