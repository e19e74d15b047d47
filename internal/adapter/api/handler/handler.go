package handler

import (
	"github.com/labstack/echo/v4"

	"finderskeeper/internal/usecase"
)

// callerIdentity reads the claims the auth middleware stored on the context.
func callerIdentity(c echo.Context) usecase.Identity {
	uid, _ := c.Get("uid").(string)
	email, _ := c.Get("email").(string)
	name, _ := c.Get("name").(string)

	return usecase.Identity{
		UserID: uid,
		Email:  email,
		Name:   name,
	}
}
