package httputil

import (
	"encoding/json"
	"strconv"

	"github.com/valyala/fasthttp"

	pkgerrors "github.com/hm-yang2/board-share/pkg/errors"
)

// PathUint reads a positive numeric route parameter
func PathUint(ctx *fasthttp.RequestCtx, name string) (uint, error) {
	raw, _ := ctx.UserValue(name).(string)
	if raw == "" {
		return 0, pkgerrors.NewValidationErrorf("%s is required", name)
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || v == 0 {
		return 0, pkgerrors.NewValidationErrorf("invalid %s: %s", name, raw)
	}
	return uint(v), nil
}

// QueryUint reads an optional numeric query parameter; nil when absent
func QueryUint(ctx *fasthttp.RequestCtx, name string) (*uint, error) {
	raw := string(ctx.QueryArgs().Peek(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || v == 0 {
		return nil, pkgerrors.NewValidationErrorf("invalid %s: %s", name, raw)
	}
	id := uint(v)
	return &id, nil
}

// DecodeJSON unmarshals the request body into v
func DecodeJSON(ctx *fasthttp.RequestCtx, v any) error {
	if len(ctx.PostBody()) == 0 {
		return pkgerrors.NewValidationError("request body is required")
	}
	if err := json.Unmarshal(ctx.PostBody(), v); err != nil {
		return pkgerrors.NewValidationError("invalid request body")
	}
	return nil
}
