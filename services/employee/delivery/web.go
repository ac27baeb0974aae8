package delivery

import (
	"io/fs"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
)

type webHandler struct {
	index []byte
}

// NewWebDelivery serves the browser client. Every client route answers with
// the same page; scripts and styles live under /assets.
func NewWebDelivery(app *fiber.App, assets fs.FS) error {
	index, err := fs.ReadFile(assets, "index.html")
	if err != nil {
		return err
	}

	handler := &webHandler{
		index: index,
	}

	app.Use("/assets", filesystem.New(filesystem.Config{
		Root:       http.FS(assets),
		PathPrefix: "assets",
		MaxAge:     3600,
	}))

	app.Get("/", handler.deliveryIndex)
	app.Get("/add", handler.deliveryIndex)
	app.Get("/edit/:id", handler.deliveryIndex)

	return nil
}

func (wh *webHandler) deliveryIndex(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(fiber.StatusOK).Send(wh.index)
}
