package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/wellness/internal/error_values"
	"github.com/limbo/wellness/internal/repository"
	"github.com/limbo/wellness/pkg/entity"
)

type UserService struct {
	repo repository.UsersRepositoryI
}

func NewUserService(usersRepo repository.UsersRepositoryI) *UserService {
	if usersRepo == nil {
		log.Fatal("on user service provided nil repo")
	}
	return &UserService{
		repo: usersRepo,
	}
}

func (us *UserService) EnsureUser(ctx context.Context, uid uuid.UUID, name string) (*entity.User, error) {
	user, err := us.repo.FindByID(ctx, uid)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, errorvalues.ErrUserNotFound) {
		return nil, errors.New("repository searching error: " + err.Error())
	}
	if uid == uuid.Nil {
		return nil, errors.Join(errorvalues.ErrValidation, errors.New("empty user id"))
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = uid.String()
	}
	err = us.repo.Create(ctx, &entity.User{
		ID:   uid,
		Name: name,
	})
	if err != nil {
		return nil, errors.New("repository creating error: " + err.Error())
	}
	user, err = us.repo.FindByID(ctx, uid)
	if err != nil {
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) GetByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	user, err := us.repo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return user, nil
}
