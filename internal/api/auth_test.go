package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adminconsole/internal/backend"
)

func TestAuthLogin(t *testing.T) {
	fb, set := newFakeBackend(t, http.StatusOK, "application/json", `{"token":"t1","expiresIn":3600}`)

	out, err := set.Auth.Login(context.Background(), LoginRequest{Email: "a@b.com", Password: "x"})
	require.NoError(t, err)

	assert.Equal(t, LoginResponse{Token: "t1", ExpiresIn: 3600}, out)
	assert.Equal(t, "/api/auth/login", fb.last.Path)
	assert.Empty(t, fb.last.Auth)
	assert.Equal(t, map[string]any{"email": "a@b.com", "password": "x"}, fb.last.Body)
}

func TestAuthLoginRejected(t *testing.T) {
	_, set := newFakeBackend(t, http.StatusUnauthorized, "application/json", `{"message":"Sai mật khẩu"}`)

	_, err := set.Auth.Login(context.Background(), LoginRequest{Email: "a@b.com", Password: "bad"})
	require.Error(t, err)
	assert.ErrorIs(t, err, backend.ErrUnauthorized)
	assert.Equal(t, "Sai mật khẩu", err.Error())
}

func TestDashboardSummary(t *testing.T) {
	fb, set := newFakeBackend(t, http.StatusOK, "application/json", `{
		"totalUsers":3,"totalProducts":4,"totalOrders":5,"totalRevenue":600000,
		"monthlyRevenue":[{"month":"T1","revenue":100}],
		"monthlyOrders":[{"month":"T1","orders":2}],
		"orders":[{"id":1,"totalAmount":100,"paymentStatus":"PAID","createdAt":"2024-01-01"}]
	}`)

	s, err := set.Dashboard.GetSummary(context.Background(), "tok")
	require.NoError(t, err)

	assert.Equal(t, "/api/dashboard/summary", fb.last.Path)
	assert.Equal(t, 3, s.TotalUsers)
	assert.Equal(t, 600000.0, s.TotalRevenue)
	require.Len(t, s.MonthlyOrders, 1)
	assert.Equal(t, 2, s.MonthlyOrders[0].Orders)
	require.Len(t, s.Orders, 1)
	assert.Equal(t, "PAID", string(s.Orders[0].PaymentStatus))
}
