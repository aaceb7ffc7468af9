package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/inventory-tracker/internal/application/dto"
	"github.com/jhoicas/inventory-tracker/internal/domain"
	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
	"github.com/jhoicas/inventory-tracker/internal/domain/repository"
)

// UserUseCase aplica reglas de negocio para usuarios: hash de password y unicidad
// de username y email. Las respuestas nunca incluyen el password.
type UserUseCase struct {
	repo     repository.UserRepository
	hashCost int
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo, hashCost: bcrypt.DefaultCost}
}

// Create hashea el password con bcrypt, fija CreatedAt y persiste.
// Devuelve ErrUsernameTaken o ErrEmailAlreadyExists si ya existen.
func (uc *UserUseCase) Create(ctx context.Context, in dto.UserRequest) (*dto.UserResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkUnique(ctx, "", in); err != nil {
		return nil, err
	}
	hash, err := uc.hash(in.Password)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Username:     in.Username,
		PasswordHash: hash,
		Role:         in.Role,
		Email:        in.Email,
		CreatedAt:    Now(),
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	zerolog.Ctx(ctx).Debug().Str("user_id", user.ID).Str("username", user.Username).Msg("usuario creado")
	return toUserResponse(user), nil
}

// GetByID obtiene un usuario por ID; (nil, nil) si no existe.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	return toUserResponseOrNil(uc.repo.GetByID(ctx, id))
}

// GetByUsername coincidencia exacta por username.
func (uc *UserUseCase) GetByUsername(ctx context.Context, username string) (*dto.UserResponse, error) {
	return toUserResponseOrNil(uc.repo.GetByUsername(ctx, username))
}

// GetByEmail coincidencia exacta por email.
func (uc *UserUseCase) GetByEmail(ctx context.Context, email string) (*dto.UserResponse, error) {
	return toUserResponseOrNil(uc.repo.GetByEmail(ctx, email))
}

// List lista todos los usuarios.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUserResponse(u))
	}
	return items, nil
}

// Update reemplaza el usuario con el id indicado (upsert). CreatedAt se conserva;
// si Password viene vacío se conserva el hash almacenado.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UserRequest) (*dto.UserResponse, error) {
	if id == "" || in.Username == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.checkUnique(ctx, id, in); err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:       id,
		Username: in.Username,
		Role:     in.Role,
		Email:    in.Email,
	}
	if existing != nil {
		user.CreatedAt = existing.CreatedAt
		user.PasswordHash = existing.PasswordHash
	} else {
		user.CreatedAt = Now()
	}
	if in.Password != "" {
		if user.PasswordHash, err = uc.hash(in.Password); err != nil {
			return nil, err
		}
	}
	if user.PasswordHash == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.repo.Save(ctx, user); err != nil {
		return nil, err
	}
	zerolog.Ctx(ctx).Debug().Str("user_id", id).Msg("usuario reemplazado")
	return toUserResponse(user), nil
}

// Delete elimina un usuario por ID. Sus transacciones se conservan.
func (uc *UserUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// checkUnique verifica username y email contra otros usuarios (selfID se excluye).
func (uc *UserUseCase) checkUnique(ctx context.Context, selfID string, in dto.UserRequest) error {
	other, err := uc.repo.GetByUsername(ctx, in.Username)
	if err != nil {
		return err
	}
	if other != nil && other.ID != selfID {
		return domain.ErrUsernameTaken
	}
	if in.Email == "" {
		return nil
	}
	other, err = uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return err
	}
	if other != nil && other.ID != selfID {
		return domain.ErrEmailAlreadyExists
	}
	return nil
}

func (uc *UserUseCase) hash(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), uc.hashCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(h), nil
}

func toUserResponseOrNil(u *entity.User, err error) (*dto.UserResponse, error) {
	if err != nil {
		return nil, err
	}
	return toUserResponse(u), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
