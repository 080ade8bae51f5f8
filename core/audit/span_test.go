package audit_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"

	"codeberg.org/localegen/localegen/core/audit"
)

func TestSpanLog(t *testing.T) {
	var buf bytes.Buffer

	prev := log.Logger
	log.Logger = zerolog.New(&buf)

	t.Cleanup(func() { log.Logger = prev })

	span := audit.Span{
		Stage:  audit.StageWrite,
		Detail: "locale-output/messages_gen.go",
		Bytes:  2048,
	}

	_ = span.Begin(context.Background())
	span.End()
	span.Log()

	out := buf.String()
	assert.Contains(t, out, `"sys":"pipeline"`)
	assert.Contains(t, out, `"stage":"write"`)
	assert.Contains(t, out, `"detail":"locale-output/messages_gen.go"`)
	assert.Contains(t, out, `"len":"2.00K"`)
}

func TestSpanLogSmallOutputOmitsSize(t *testing.T) {
	var buf bytes.Buffer

	prev := log.Logger
	log.Logger = zerolog.New(&buf)

	t.Cleanup(func() { log.Logger = prev })

	span := audit.Span{Stage: audit.StageLoad, Detail: "locale-input"}

	_ = span.Begin(context.Background())
	span.End()
	span.Log()

	out := buf.String()
	assert.Contains(t, out, `"stage":"load"`)
	assert.NotContains(t, out, `"len"`)
}
