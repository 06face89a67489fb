package httpapi

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-widget/internal/surface"
	"github.com/i474232898/weather-widget/internal/weather"
)

//go:embed web/index.html.tmpl
var pageSource string

var pageTemplate = template.Must(template.New("index").Parse(pageSource))

type pageData struct {
	Title       string
	Emoji       string
	ToggleLabel string
	Background  template.CSS
	SessionID   string
	Width       int
	Height      int
	PollMillis  int64
}

// renderPage serves the fixed-size widget page seeded with the current state.
func renderPage(c *fiber.Ctx, st surface.State, opts Options) error {
	bg := st.Background
	if bg == "" {
		bg = weather.DefaultGradient
	}

	data := pageData{
		Title:       st.Title,
		Emoji:       st.Emoji,
		ToggleLabel: st.ToggleLabel,
		Background:  template.CSS(bg),
		SessionID:   st.SessionID,
		Width:       opts.Width,
		Height:      opts.Height,
		PollMillis:  opts.PollInterval.Milliseconds(),
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to render widget page")
	}

	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}
