// Package session carries the authenticated caller through a request.
package session

import (
	"github.com/valyala/fasthttp"

	autherrors "github.com/hm-yang2/board-share/internal/domain/auth/errors"
	userentities "github.com/hm-yang2/board-share/internal/domain/user/entities"
)

const userKey = "session_user"

// SetUser attaches the authenticated user to the request
func SetUser(ctx *fasthttp.RequestCtx, user *userentities.User) {
	ctx.SetUserValue(userKey, user)
}

// User returns the authenticated user or ErrNotAuthenticated
func User(ctx *fasthttp.RequestCtx) (*userentities.User, error) {
	user, ok := ctx.UserValue(userKey).(*userentities.User)
	if !ok || user == nil {
		return nil, autherrors.ErrNotAuthenticated
	}
	return user, nil
}
