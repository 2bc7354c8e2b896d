package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/adapter/fake"
	domainerror "github.com/MatheusJosue/planilha-financeira-v2/internal/domain/error"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/valueobject"
)

func TestRegisterUserUseCase_Execute(t *testing.T) {
	tests := []struct {
		name     string
		input    RegisterUserInput
		seed     bool
		wantCode string
	}{
		{name: "valid", input: RegisterUserInput{Email: " Ana@Example.com ", Name: "Ana", Password: "s3nha-forte"}},
		{name: "missing name", input: RegisterUserInput{Email: "ana@example.com", Name: " ", Password: "s3nha-forte"}, wantCode: string(domainerror.ErrCodeMissingFields)},
		{name: "invalid email", input: RegisterUserInput{Email: "ana", Name: "Ana", Password: "s3nha-forte"}, wantCode: string(domainerror.ErrCodeInvalidEmail)},
		{name: "weak password", input: RegisterUserInput{Email: "ana@example.com", Name: "Ana", Password: "123"}, wantCode: string(domainerror.ErrCodeWeakPassword)},
		{name: "email taken", input: RegisterUserInput{Email: "ana@example.com", Name: "Ana", Password: "s3nha-forte"}, seed: true, wantCode: string(domainerror.ErrCodeEmailExists)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := fake.NewUsers()
			uc := NewRegisterUserUseCase(users, fake.Passwords{}, fake.NewTokens())
			if tt.seed {
				if _, err := uc.Execute(context.Background(), tt.input); err != nil {
					t.Fatalf("seed: %v", err)
				}
			}

			out, err := uc.Execute(context.Background(), tt.input)

			if tt.wantCode != "" {
				code, _ := domainerror.CodeOf(err)
				if code != tt.wantCode {
					t.Errorf("expected code %s, got %v", tt.wantCode, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.User.Email != "ana@example.com" {
				t.Errorf("expected normalized email, got %q", out.User.Email)
			}
			if out.AccessToken == "" || out.RefreshToken == "" {
				t.Errorf("expected tokens to be issued")
			}
		})
	}
}

func TestLoginRefreshLogout(t *testing.T) {
	ctx := context.Background()
	users := fake.NewUsers()
	tokens := fake.NewTokens()

	if _, err := NewRegisterUserUseCase(users, fake.Passwords{}, tokens).Execute(ctx, RegisterUserInput{
		Email: "ana@example.com", Name: "Ana", Password: "s3nha-forte",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	login := NewLoginUserUseCase(users, fake.Passwords{}, tokens)
	if _, err := login.Execute(ctx, LoginUserInput{Email: "ana@example.com", Password: "errada"}); !errors.Is(err, domainerror.ErrInvalidCredentials) {
		t.Errorf("expected invalid credentials, got %v", err)
	}
	if _, err := login.Execute(ctx, LoginUserInput{Email: "nobody@example.com", Password: "s3nha-forte"}); !errors.Is(err, domainerror.ErrInvalidCredentials) {
		t.Errorf("expected invalid credentials for unknown email, got %v", err)
	}

	session, err := login.Execute(ctx, LoginUserInput{Email: "ANA@example.com", Password: "s3nha-forte"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	refresh := NewRefreshTokenUseCase(users, tokens)
	rotated, err := refresh.Execute(ctx, RefreshTokenInput{RefreshToken: session.RefreshToken})
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if _, err := refresh.Execute(ctx, RefreshTokenInput{RefreshToken: session.RefreshToken}); !errors.Is(err, domainerror.ErrInvalidToken) {
		t.Errorf("expected rotated token to be rejected, got %v", err)
	}

	sessions := fake.NewSessions()
	_ = sessions.SetSelectedMonth(ctx, session.User.ID, valueobject.NewMonth(2024, time.May))
	logout := NewLogoutUserUseCase(tokens, sessions, nil)

	out, err := logout.Execute(ctx, LogoutUserInput{RefreshToken: rotated.RefreshToken})
	if err != nil {
		t.Fatalf("logout: %v", err)
	}
	if !out.SessionClosed {
		t.Errorf("expected the session to be closed")
	}
	if _, ok, _ := sessions.GetSelectedMonth(ctx, session.User.ID); ok {
		t.Errorf("expected session cache to be cleared on logout")
	}
	if out, _ := logout.Execute(ctx, LogoutUserInput{RefreshToken: "unknown"}); out.SessionClosed {
		t.Errorf("expected unknown token logout to be a no-op")
	}
	if _, err := refresh.Execute(ctx, RefreshTokenInput{RefreshToken: rotated.RefreshToken}); !errors.Is(err, domainerror.ErrInvalidToken) {
		t.Errorf("expected logged out token to be rejected, got %v", err)
	}
}

func TestClearAllDataUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	users := fake.NewUsers()
	out, err := NewRegisterUserUseCase(users, fake.Passwords{}, fake.NewTokens()).Execute(ctx, RegisterUserInput{
		Email: "ana@example.com", Name: "Ana", Password: "s3nha-forte",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	userID := out.User.ID

	tests := []struct {
		name         string
		password     string
		confirmation string
		wantErr      error
	}{
		{name: "wrong confirmation", password: "s3nha-forte", confirmation: "delete", wantErr: domainerror.ErrInvalidConfirmation},
		{name: "wrong password", password: "errada", confirmation: ClearConfirmation, wantErr: domainerror.ErrInvalidCredentials},
		{name: "wipes data", password: "s3nha-forte", confirmation: ClearConfirmation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := &fake.AccountData{}
			sessions := fake.NewSessions()
			_ = sessions.SetSelectedMonth(ctx, userID, valueobject.NewMonth(2024, time.May))

			_, err := NewClearAllDataUseCase(users, fake.Passwords{}, data, sessions, nil).Execute(ctx, ClearAllDataInput{
				UserID: userID, Password: tt.password, Confirmation: tt.confirmation,
			})

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected %v, got %v", tt.wantErr, err)
				}
				if len(data.Cleared) != 0 {
					t.Errorf("expected nothing deleted")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(data.Cleared) != 1 || data.Cleared[0] != userID {
				t.Errorf("expected data of %s to be cleared, got %v", userID, data.Cleared)
			}
			if _, ok, _ := sessions.GetSelectedMonth(ctx, userID); ok {
				t.Errorf("expected session cache to be cleared")
			}
		})
	}
}

func TestClearAllDataUseCase_UnknownUser(t *testing.T) {
	_, err := NewClearAllDataUseCase(fake.NewUsers(), fake.Passwords{}, &fake.AccountData{}, fake.NewSessions(), nil).Execute(
		context.Background(), ClearAllDataInput{UserID: uuid.New(), Password: "x", Confirmation: ClearConfirmation},
	)
	if !errors.Is(err, domainerror.ErrUserNotFound) {
		t.Errorf("expected user not found, got %v", err)
	}
}

func TestRefreshTokenUseCase_OwnerGone(t *testing.T) {
	ctx := context.Background()
	tokens := fake.NewTokens()
	pair, err := tokens.GenerateTokenPair(ctx, uuid.New(), "ghost@example.com", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = NewRefreshTokenUseCase(fake.NewUsers(), tokens).Execute(ctx, RefreshTokenInput{RefreshToken: pair.RefreshToken})
	if !errors.Is(err, domainerror.ErrInvalidToken) {
		t.Errorf("expected invalid token, got %v", err)
	}
	if live, _ := tokens.IsRefreshTokenValid(ctx, pair.RefreshToken); !live {
		t.Errorf("expected the token to stay unrevoked when rejected")
	}
}
