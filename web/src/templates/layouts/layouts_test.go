package layouts_test

import (
	"bytes"
	"testing"

	"github.com/nfrund/resumio/internal/theme"
	"github.com/nfrund/resumio/web/src/templates/layouts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

func TestDocument(t *testing.T) {
	meta := layouts.PageMeta{Title: "ATS Checker", Path: "/", Active: theme.ResolveActive("/")}

	var buf bytes.Buffer
	require.NoError(t, layouts.Document(meta, g.Text("page body")).Render(&buf))
	out := buf.String()

	assert.Contains(t, out, "<!doctype html>")
	assert.Contains(t, out, "<title>ATS Checker - Resumio</title>")
	assert.Contains(t, out, `<style id="theme-vars">`)
	assert.Contains(t, out, `data-theme="home"`)
	assert.Contains(t, out, `<main id="content"`)
	assert.Contains(t, out, "page body")
}

func TestCalculateTitle(t *testing.T) {
	assert.Equal(t, "Resumio", layouts.CalculateTitle(""))
	assert.Equal(t, "Builder - Resumio", layouts.CalculateTitle("Builder"))
}
