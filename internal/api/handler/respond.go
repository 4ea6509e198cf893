package handler

import "github.com/labstack/echo/v4"

// Envelope is the wire shape produced by every route; the frontend depends
// on it staying stable.
type Envelope struct {
	Status  string   `json:"status"`
	Message string   `json:"message"`
	Data    any      `json:"data,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

func respond(c echo.Context, code int, message string, data any) error {
	return c.JSON(code, Envelope{Status: "success", Message: message, Data: data})
}
