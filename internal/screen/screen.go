// Package screen renders the app's HTML screens.
package screen

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Printer returns a number formatter for locale, falling back to English
// when locale does not parse.
func Printer(locale string) *message.Printer {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return message.NewPrinter(tag)
}

// Stars formats n the way every screen shows a star count.
func Stars(p *message.Printer, n int) string {
	return p.Sprintf("%d★", n)
}

// html collects writes and keeps the first error.
type html struct {
	w   io.Writer
	err error
}

func (h *html) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *html) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *html) attr(name, value string) {
	h.raw(" " + name + `="`)
	h.text(value)
	h.raw(`"`)
}

func (h *html) component(ctx context.Context, c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

func (h *html) fieldError(errs map[string]string, field string) {
	msg, ok := errs[field]
	if !ok {
		return
	}
	h.raw(`<p class="error-text" id="` + field + `-error">`)
	h.text(msg)
	h.raw(`</p>`)
}

func inputClass(errs map[string]string, field, base string) string {
	if _, ok := errs[field]; ok {
		return base + " input-error"
	}
	return base
}

// Layout wraps body in the page shell with the tab bar.
func Layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw(`<title>`)
		h.text(title)
		h.raw(` · Gold Starz</title><link rel="stylesheet" href="/static/css/app.css"></head><body>`)
		h.raw(`<nav class="tabs"><a href="/">Rewards</a><a href="/tasks">Tasks</a></nav><main class="container">`)
		h.raw(`<h1>`)
		h.text(title)
		h.raw(`</h1>`)
		h.component(ctx, body)
		h.raw(`</main></body></html>`)
		return h.err
	})
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
