package api

import (
	"context"
	"net/http"
	"strings"

	"adminconsole/internal/backend"
	"adminconsole/internal/models"
)

// UserDTO is the backend's user record.
type UserDTO struct {
	UserID      int64     `json:"userId"`
	FullName    string    `json:"fullName"`
	Email       string    `json:"email"`
	PhoneNumber *string   `json:"phoneNumber"`
	Role        string    `json:"role"`
	Status      string    `json:"status"`
	CreatedAt   timestamp `json:"createdAt"`
	CreatedDate timestamp `json:"createdDate"`
	Created     timestamp `json:"created"`
}

type CreateUserDTO struct {
	FullName    string  `json:"fullName"`
	Email       string  `json:"email"`
	Password    string  `json:"password,omitempty"`
	PhoneNumber *string `json:"phoneNumber"`
	Role        string  `json:"role"`
	Status      string  `json:"status"`
}

// UserInput is the UI-side payload for creating or patching a user.
type UserInput struct {
	FullName    string
	Email       string
	Password    string
	PhoneNumber *string
	Role        models.UserRole
	Status      models.UserStatus
}

// UserResult carries either the user echoed by the backend or the plain-text
// message some endpoints answer with instead.
type UserResult struct {
	User    *models.User
	Message string
}

func ToUser(dto UserDTO) models.User {
	return models.User{
		ID:          dto.UserID,
		FullName:    dto.FullName,
		Email:       dto.Email,
		PhoneNumber: dto.PhoneNumber,
		Role:        models.UserRole(dto.Role),
		Status:      models.UserStatus(dto.Status),
		CreatedAt:   firstNonEmpty(dto.CreatedAt, dto.CreatedDate, dto.Created),
	}
}

func ToCreateUserDTO(in UserInput) CreateUserDTO {
	role := in.Role
	if role == "" {
		role = models.UserRoleUser
	}
	status := in.Status
	if status == "" {
		status = models.UserStatusActive
	}
	return CreateUserDTO{
		FullName:    strings.TrimSpace(in.FullName),
		Email:       strings.TrimSpace(in.Email),
		Password:    in.Password,
		PhoneNumber: in.PhoneNumber,
		Role:        string(role),
		Status:      string(status),
	}
}

// ToUpdateUserBody builds the update payload. nameField selects the key the
// backend expects for the user's name.
func ToUpdateUserBody(id int64, nameField string, in UserInput) map[string]any {
	return map[string]any{
		"id":          id,
		nameField:     strings.TrimSpace(in.FullName),
		"email":       strings.TrimSpace(in.Email),
		"phoneNumber": in.PhoneNumber,
		"role":        string(in.Role),
		"status":      string(in.Status),
	}
}

type Users struct {
	resource
	nameField string
}

func (u *Users) List(ctx context.Context, token string) ([]models.User, error) {
	res, err := u.client.Do(ctx, backend.Request{Path: u.path("/user/all"), Token: token})
	if err != nil {
		return nil, err
	}
	if res.Empty() {
		return []models.User{}, nil
	}

	var dtos []UserDTO
	if err := res.Decode(&dtos); err != nil {
		return nil, err
	}
	users := make([]models.User, 0, len(dtos))
	for _, dto := range dtos {
		users = append(users, ToUser(dto))
	}
	return users, nil
}

func (u *Users) Create(ctx context.Context, token string, in UserInput) (UserResult, error) {
	res, err := u.client.Do(ctx, backend.Request{
		Method: http.MethodPost,
		Path:   u.path("/auth/register"),
		Body:   ToCreateUserDTO(in),
		Token:  token,
	})
	if err != nil {
		return UserResult{}, err
	}
	return userResult(res)
}

func (u *Users) Update(ctx context.Context, token string, id int64, in UserInput) (UserResult, error) {
	res, err := u.client.Do(ctx, backend.Request{
		Method: http.MethodPut,
		Path:   u.path("/user/update"),
		Body:   ToUpdateUserBody(id, u.nameField, in),
		Token:  token,
	})
	if err != nil {
		return UserResult{}, err
	}
	return userResult(res)
}

// Remove soft-deletes the user on the backend.
func (u *Users) Remove(ctx context.Context, token string, id int64) error {
	_, err := u.client.Do(ctx, backend.Request{
		Method: http.MethodDelete,
		Path:   u.path("/user/delete-soft/%d", id),
		Token:  token,
	})
	return err
}

func userResult(res *backend.Result) (UserResult, error) {
	if res.Empty() {
		return UserResult{}, nil
	}
	if !res.IsJSON() {
		return UserResult{Message: res.Text()}, nil
	}

	var dto UserDTO
	if err := res.Decode(&dto); err != nil {
		return UserResult{}, err
	}
	user := ToUser(dto)
	return UserResult{User: &user}, nil
}
