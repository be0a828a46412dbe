package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/config"
	"resume-builder/internal/mail"
	"resume-builder/internal/render"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&config.Config{LogLevel: "warn", LogFormat: "json"}, &buf)
	logger.Info("hidden")
	logger.Warn("shown", "k", "v")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "shown", line["msg"])
	assert.Equal(t, "v", line["k"])

	buf.Reset()
	newLogger(&config.Config{LogLevel: "debug"}, &buf).Debug("details")
	assert.Contains(t, buf.String(), "msg=details")
}

func TestNewRenderer(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, ok := newRenderer(&config.Config{PDFRenderer: "layout"}, logger).(*render.Generator)
	assert.True(t, ok)
	_, ok = newRenderer(&config.Config{PDFRenderer: "chrome"}, logger).(*render.HTMLRenderer)
	assert.True(t, ok)
}

func TestNewMailer(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	m, err := newMailer(&config.Config{}, logger)
	require.NoError(t, err)
	assert.IsType(t, mail.LogMailer{}, m)

	m, err = newMailer(&config.Config{SMTPHost: "smtp.example.com", SMTPPort: 587, EmailFrom: "noreply@example.com"}, logger)
	require.NoError(t, err)
	assert.IsType(t, &mail.SMTPMailer{}, m)
}
