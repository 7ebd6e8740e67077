package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type TestCreateCategoryRequest struct {
	Title string `json:"title" validate:"required,categorytitle,max=100"`
	Icon  string `json:"icon" validate:"omitempty,iconname"`
}

type TestCreatePhraseRequest struct {
	CategoryID    string `json:"category_id" validate:"required"`
	English       string `json:"english" validate:"required,max=500"`
	Vietnamese    string `json:"vietnamese" validate:"required,max=500"`
	Pronunciation string `json:"pronunciation" validate:"max=500"`
}

type TestRegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

func TestValidator_CreateCategory(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		req       TestCreateCategoryRequest
		wantError bool
		errorMsg  string
	}{
		{
			name: "Valid category request",
			req: TestCreateCategoryRequest{
				Title: "Greetings",
				Icon:  "chatbubble-outline",
			},
			wantError: false,
		},
		{
			name: "Vietnamese title is valid",
			req: TestCreateCategoryRequest{
				Title: "Chào hỏi",
				Icon:  "chatbubble-outline",
			},
			wantError: false,
		},
		{
			name: "Missing title",
			req: TestCreateCategoryRequest{
				Title: "",
				Icon:  "cart-outline",
			},
			wantError: true,
			errorMsg:  "title is required",
		},
		{
			name: "Invalid title characters",
			req: TestCreateCategoryRequest{
				Title: "Shopping@#$%",
				Icon:  "cart-outline",
			},
			wantError: true,
			errorMsg:  "invalid characters",
		},
		{
			name: "Title too long",
			req: TestCreateCategoryRequest{
				Title: strings.Repeat("a", 101),
				Icon:  "cart-outline",
			},
			wantError: true,
			errorMsg:  "at most 100 characters",
		},
		{
			name: "Empty icon is valid",
			req: TestCreateCategoryRequest{
				Title: "Travel",
				Icon:  "",
			},
			wantError: false,
		},
		{
			name: "Invalid icon name",
			req: TestCreateCategoryRequest{
				Title: "Travel",
				Icon:  "Airplane_Outline",
			},
			wantError: true,
			errorMsg:  "lowercase icon name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)

			if tt.wantError {
				assert.Error(t, err)
				if tt.errorMsg != "" {
					assert.Contains(t, err.Error(), tt.errorMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_CreatePhrase(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		req       TestCreatePhraseRequest
		wantError bool
		errorMsg  string
	}{
		{
			name: "Valid phrase request",
			req: TestCreatePhraseRequest{
				CategoryID:    "cat-1",
				English:       "Hello",
				Vietnamese:    "Xin chào",
				Pronunciation: "sin chow",
			},
			wantError: false,
		},
		{
			name: "Empty pronunciation is valid",
			req: TestCreatePhraseRequest{
				CategoryID: "cat-1",
				English:    "Hello",
				Vietnamese: "Xin chào",
			},
			wantError: false,
		},
		{
			name: "Missing category",
			req: TestCreatePhraseRequest{
				English:    "Hello",
				Vietnamese: "Xin chào",
			},
			wantError: true,
			errorMsg:  "category_id is required",
		},
		{
			name: "Missing english text",
			req: TestCreatePhraseRequest{
				CategoryID: "cat-1",
				Vietnamese: "Xin chào",
			},
			wantError: true,
			errorMsg:  "english is required",
		},
		{
			name: "Missing vietnamese text",
			req: TestCreatePhraseRequest{
				CategoryID: "cat-1",
				English:    "Hello",
			},
			wantError: true,
			errorMsg:  "vietnamese is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)

			if tt.wantError {
				assert.Error(t, err)
				if tt.errorMsg != "" {
					assert.Contains(t, err.Error(), tt.errorMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_Register(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		req       TestRegisterRequest
		wantError bool
		errorMsg  string
	}{
		{
			name: "Valid register request",
			req: TestRegisterRequest{
				Email:    "user@example.com",
				Password: "supersecret",
			},
			wantError: false,
		},
		{
			name: "Invalid email",
			req: TestRegisterRequest{
				Email:    "not-an-email",
				Password: "supersecret",
			},
			wantError: true,
			errorMsg:  "email must be a valid email address",
		},
		{
			name: "Password too short",
			req: TestRegisterRequest{
				Email:    "user@example.com",
				Password: "short",
			},
			wantError: true,
			errorMsg:  "password must be at least 8 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)

			if tt.wantError {
				assert.Error(t, err)
				if tt.errorMsg != "" {
					assert.Contains(t, err.Error(), tt.errorMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
