package httputil

import (
	"testing"
	"time"

	"github.com/fasthttp/router"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	pkgerrors "github.com/hm-yang2/board-share/pkg/errors"
)

type recordingObserver struct {
	method string
	route  string
	status int
}

func (o *recordingObserver) ObserveHTTPRequest(method, route string, status int, _ time.Duration) {
	o.method, o.route, o.status = method, route, status
}

func TestWriteErrorResponse(t *testing.T) {
	ctx := &fasthttp.RequestCtx{}

	WriteErrorResponse(ctx, "Channel not found", fasthttp.StatusNotFound)

	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())
	assert.Equal(t, "application/json", string(ctx.Response.Header.ContentType()))
	assert.JSONEq(t, `{"error":"Channel not found"}`, string(ctx.Response.Body()))
}

func TestWriteResponseWithStatus(t *testing.T) {
	ctx := &fasthttp.RequestCtx{}

	WriteResponseWithStatus(ctx, map[string]string{"role": "OWNER"}, fasthttp.StatusCreated)

	assert.Equal(t, fasthttp.StatusCreated, ctx.Response.StatusCode())
	assert.JSONEq(t, `{"role":"OWNER"}`, string(ctx.Response.Body()))
}

func TestRequestID_GeneratesAndPreserves(t *testing.T) {
	var seen string
	handler := RequestID()(func(ctx *fasthttp.RequestCtx) {
		seen = GetRequestID(ctx)
	})

	ctx := &fasthttp.RequestCtx{}
	handler(ctx)
	require.NotEmpty(t, seen)
	assert.Equal(t, seen, string(ctx.Response.Header.Peek(RequestIDHeader)))

	ctx = &fasthttp.RequestCtx{}
	ctx.Request.Header.Set(RequestIDHeader, "abc-123")
	handler(ctx)
	assert.Equal(t, "abc-123", seen)
}

func TestAccessLog_ReportsToObserver(t *testing.T) {
	observer := &recordingObserver{}
	handler := AccessLog(zerolog.Nop(), observer)(func(ctx *fasthttp.RequestCtx) {
		ctx.SetStatusCode(fasthttp.StatusTeapot)
	})

	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(fasthttp.MethodGet)
	ctx.Request.SetRequestURI("/api/channel/7")
	ctx.SetUserValue(router.MatchedRoutePathParam, "/api/channel/{id}")
	handler(ctx)

	assert.Equal(t, fasthttp.MethodGet, observer.method)
	assert.Equal(t, "/api/channel/{id}", observer.route)
	assert.Equal(t, fasthttp.StatusTeapot, observer.status)
}

func TestRecover(t *testing.T) {
	handler := Recover(zerolog.Nop())(func(ctx *fasthttp.RequestCtx) {
		panic("boom")
	})

	ctx := &fasthttp.RequestCtx{}
	require.NotPanics(t, func() { handler(ctx) })
	assert.Equal(t, fasthttp.StatusInternalServerError, ctx.Response.StatusCode())
}

func TestCORS(t *testing.T) {
	called := false
	handler := CORS("http://localhost:5173")(func(ctx *fasthttp.RequestCtx) {
		called = true
	})

	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(fasthttp.MethodOptions)
	ctx.Request.Header.Set("Origin", "http://localhost:5173")
	handler(ctx)

	assert.False(t, called)
	assert.Equal(t, fasthttp.StatusNoContent, ctx.Response.StatusCode())
	assert.Equal(t, "http://localhost:5173", string(ctx.Response.Header.Peek("Access-Control-Allow-Origin")))
	assert.Equal(t, "true", string(ctx.Response.Header.Peek("Access-Control-Allow-Credentials")))

	ctx = &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(fasthttp.MethodGet)
	ctx.Request.Header.Set("Origin", "http://evil.example")
	handler(ctx)

	assert.True(t, called)
	assert.Empty(t, ctx.Response.Header.Peek("Access-Control-Allow-Origin"))
}

func TestPathUint(t *testing.T) {
	ctx := &fasthttp.RequestCtx{}
	ctx.SetUserValue("id", "42")
	id, err := PathUint(ctx, "id")
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)

	ctx.SetUserValue("id", "abc")
	_, err = PathUint(ctx, "id")
	var validationErr *pkgerrors.ValidationError
	assert.ErrorAs(t, err, &validationErr)

	ctx.SetUserValue("id", "0")
	_, err = PathUint(ctx, "id")
	assert.Error(t, err)
}

func TestQueryUint(t *testing.T) {
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.SetRequestURI("/api/channel/role")
	id, err := QueryUint(ctx, "channelId")
	require.NoError(t, err)
	assert.Nil(t, id)

	ctx.Request.SetRequestURI("/api/channel/role?channelId=5")
	id, err = QueryUint(ctx, "channelId")
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, uint(5), *id)
}

func TestDecodeJSON(t *testing.T) {
	var body struct {
		Code string `json:"code"`
	}

	ctx := &fasthttp.RequestCtx{}
	assert.Error(t, DecodeJSON(ctx, &body))

	ctx.Request.SetBodyString(`{"code":"xyz"}`)
	require.NoError(t, DecodeJSON(ctx, &body))
	assert.Equal(t, "xyz", body.Code)

	ctx.Request.SetBodyString(`{bad`)
	err := DecodeJSON(ctx, &body)
	var validationErr *pkgerrors.ValidationError
	assert.ErrorAs(t, err, &validationErr)

}
