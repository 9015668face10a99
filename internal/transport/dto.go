package transport

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type SignUpRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	// No role field on purpose: the role is assigned server-side.
}

func (r SignUpRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Password, validation.Required, validation.Length(6, 72)),
		validation.Field(&r.Email, validation.Required, is.Email),
	)
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r SignInRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

type TokenResponse struct {
	AccessToken string `json:"accessToken"`
}

type CreatePostRequest struct {
	Title    string `json:"title"`
	Contents string `json:"contents"`
}

func (r CreatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Contents, validation.Required),
	)
}

type UpdatePostRequest struct {
	Title    string `json:"title"`
	Contents string `json:"contents"`
}

func (r UpdatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Contents, validation.Required),
	)
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type CreateBlogRequest struct {
	Author   string `json:"author"`
	Title    string `json:"title"`
	Contents string `json:"contents"`
}

func (r CreateBlogRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Author, validation.Required),
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Contents, validation.Required),
	)
}
