// Package webui is the server-rendered front end: a small fiber app
// that builds a view per request, runs it against the API, and renders
// the result with html/template.
package webui

import (
	"bytes"
	"embed"
	"html/template"
	"net/url"

	"github.com/gofiber/fiber/v3"

	"github.com/collymonsterr/podsummary/internal/middleware"
	"github.com/collymonsterr/podsummary/internal/view"
)

//go:embed templates/*.html
var templateFS embed.FS

// Server renders the two pages and handles their form posts.
type Server struct {
	router *view.Router
	tmpl   *template.Template
}

func NewServer(router *view.Router) (*Server, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Server{router: router, tmpl: tmpl}, nil
}

// Register mounts the page routes on app.
func (s *Server) Register(app *fiber.App) {
	app.Get("/", s.home)
	app.Post("/summarize", s.summarize)
	app.Get("/channel", s.channel)
	app.Post("/channel-lookup", s.channelLookup)
	app.Post("/admin", s.admin)
	app.Post("/delete/:id", s.deleteEntry)
}

func (s *Server) home(c fiber.Ctx) error {
	v := s.router.Home()
	v.Init(c.Context())
	if id := fiber.Query[string](c, "entry"); id != "" {
		// Stored entries render from history state, no summarize call.
		v.SelectHistory(id)
	} else {
		v.HandleQuery(c.Context(), queryValues(c))
	}
	if tab := fiber.Query[string](c, "tab"); tab != "" {
		v.SetTab(view.Tab(tab))
	}
	if fiber.Query[string](c, "history") == "1" {
		v.ToggleHistory()
	}
	return s.render(c, "home.html", v)
}

// summarize handles the URL form. Validation failures re-render the
// page with the message instead of redirecting, so the input survives.
func (s *Server) summarize(c fiber.Ctx) error {
	v := s.router.Home()
	v.Init(c.Context())
	v.InputURL = c.FormValue("youtube_url")
	v.Submit(c.Context(), v.InputURL)
	return s.render(c, "home.html", v)
}

func (s *Server) channel(c fiber.Ctx) error {
	v := s.router.Channel(queryValues(c))
	v.Load(c.Context())
	return s.render(c, "channel.html", v)
}

func (s *Server) channelLookup(c fiber.Ctx) error {
	target := c.FormValue("channel_url")
	return c.Redirect().To("/channel?url=" + url.QueryEscape(target))
}

func (s *Server) admin(c fiber.Ctx) error {
	v := s.router.Home()
	var err error
	switch c.FormValue("action") {
	case "enable":
		err = v.EnableAdmin(c.FormValue("admin_key"))
	case "disable":
		err = v.DisableAdmin()
	}
	if err != nil {
		middleware.Logger.Warn().Err(err).Msg("admin mode change failed")
	}
	return c.Redirect().To("/")
}

// deleteEntry requires the confirm field so a stray POST cannot drop a
// row. Errors re-render the page with the message attached.
func (s *Server) deleteEntry(c fiber.Ctx) error {
	v := s.router.Home()
	v.Init(c.Context())
	if c.FormValue("confirm") != "yes" {
		return c.Redirect().To("/")
	}
	v.Delete(c.Context(), c.Params("id"))
	if v.DeleteErr != "" {
		return s.render(c, "home.html", v)
	}
	return c.Redirect().To("/")
}

func (s *Server) render(c fiber.Ctx, name string, data any) error {
	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		middleware.Logger.Error().Err(err).Str("template", name).Msg("render failed")
		return c.Status(fiber.StatusInternalServerError).SendString("template error")
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(buf.Bytes())
}

func queryValues(c fiber.Ctx) url.Values {
	vals := url.Values{}
	c.RequestCtx().QueryArgs().VisitAll(func(k, v []byte) {
		vals.Add(string(k), string(v))
	})
	return vals
}
