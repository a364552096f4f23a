package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formstate/pkg/logger"
)

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestDomainAttrs(t *testing.T) {
	tests := []struct {
		attr slog.Attr
		key  string
		want any
	}{
		{logger.Form("todolistform"), "form", "todolistform"},
		{logger.Instance("abc"), "instance", "abc"},
		{logger.Field("description"), "field", "description"},
		{logger.Revision(7), "revision", uint64(7)},
		{logger.Store("redis"), "store", "redis"},
		{logger.Duration(time.Second), "duration", time.Second},
		{logger.Component("form"), "component", "form"},
		{logger.Event("submit"), "event", "submit"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.key, tt.attr.Key)
			assert.Equal(t, tt.want, tt.attr.Value.Any())
		})
	}
}

func TestTransition(t *testing.T) {
	attr := logger.Transition("idle", "submitting", "submit")
	require.Equal(t, "phase", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 3)
	assert.Equal(t, "from", g[0].Key)
	assert.Equal(t, "idle", g[0].Value.String())
	assert.Equal(t, "submitting", g[1].Value.String())
	assert.Equal(t, "submit", g[2].Value.String())
}
