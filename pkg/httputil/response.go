package httputil

import (
	"encoding/json"

	"github.com/valyala/fasthttp"
)

// ErrorResponse is the body of every failed API call
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse carries a human readable acknowledgement
type MessageResponse struct {
	Message string `json:"message"`
}

// WriteResponse writes a JSON body with status 200
func WriteResponse(ctx *fasthttp.RequestCtx, data any) {
	WriteResponseWithStatus(ctx, data, fasthttp.StatusOK)
}

// WriteResponseWithStatus writes a JSON body with custom status
func WriteResponseWithStatus(ctx *fasthttp.RequestCtx, data any, status int) {
	writeJSON(ctx, data, status)
}

// WriteErrorResponse writes an error JSON response
func WriteErrorResponse(ctx *fasthttp.RequestCtx, message string, status int) {
	writeJSON(ctx, ErrorResponse{Error: message}, status)
}

// WriteNoContent writes an empty 204 response
func WriteNoContent(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(fasthttp.StatusNoContent)
	ctx.ResetBody()
}

// WriteHealthResponse writes a health check response
func WriteHealthResponse(ctx *fasthttp.RequestCtx, data any, healthy bool) {
	status := fasthttp.StatusOK
	if !healthy {
		status = fasthttp.StatusServiceUnavailable
	}
	writeJSON(ctx, data, status)
}

// writeJSON writes JSON response to context
func writeJSON(ctx *fasthttp.RequestCtx, data any, status int) {
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)

	body, err := json.Marshal(data)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		ctx.SetBody([]byte(`{"error":"failed to marshal response"}`))
		return
	}

	ctx.SetBody(body)
}
