package api

import (
	"github.com/labstack/echo/v4"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// POSTBroadcast relays a raw transaction to the bitcoin node.
	POSTBroadcast(ctx echo.Context) error
	// GETHealth reports whether the node behind the relay answers.
	GETHealth(ctx echo.Context) error
}

// EchoRouter is the router surface the handlers are registered on.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	router.POST("/broadcast", si.POSTBroadcast)
	router.GET("/health", si.GETHealth)
}
