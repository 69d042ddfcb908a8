package api

import (
	"context"
	"net/http"

	"adminconsole/internal/backend"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"`
}

type Auth struct {
	resource
}

func (a *Auth) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	res, err := a.client.Do(ctx, backend.Request{
		Method: http.MethodPost,
		Path:   a.path("/auth/login"),
		Body:   req,
	})
	if err != nil {
		return LoginResponse{}, err
	}

	var out LoginResponse
	if err := res.Decode(&out); err != nil {
		return LoginResponse{}, err
	}
	return out, nil
}
