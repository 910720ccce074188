package users

import (
	"context"
	"fmt"

	"github.com/Domenick1991/bookingapi/internal/domain"
	"github.com/Domenick1991/bookingapi/internal/kafka"
	"github.com/Domenick1991/bookingapi/internal/logger"
	"github.com/Domenick1991/bookingapi/internal/metrics"
	"github.com/Domenick1991/bookingapi/internal/repository"
	"github.com/Domenick1991/bookingapi/internal/service"
)

type UserUseCase interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
}

// RegisterInput.Password is accepted and dropped; it is never stored.
type RegisterInput struct {
	Email    string
	Name     string
	Password string
}

type UserService struct {
	users       repository.UserRepository
	producer    service.Producer
	eventsTopic string
	log         *logger.Logger
}

type UserServiceOption func(*UserService)

func WithEvents(producer service.Producer, topic string) UserServiceOption {
	return func(s *UserService) {
		s.producer = producer
		s.eventsTopic = topic
	}
}

func WithLogger(log *logger.Logger) UserServiceOption {
	return func(s *UserService) {
		s.log = log
	}
}

func NewUserService(users repository.UserRepository, opts ...UserServiceOption) *UserService {
	s := &UserService{users: users, log: logger.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register stores a new user with the "user" role. Email format and
// uniqueness are not checked.
func (s *UserService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	user := &domain.User{
		Email: input.Email,
		Name:  input.Name,
		Role:  domain.RoleUser,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	metrics.IncUserRegistered()
	s.log.InfoContext(ctx, "user registered", "user_id", user.ID)

	if err := s.publish(ctx, user); err != nil {
		s.log.WarnContext(ctx, "failed to publish user_registered", "user_id", user.ID, "error", err)
	}
	return user, nil
}

func (s *UserService) publish(ctx context.Context, user *domain.User) error {
	if s.producer == nil || s.eventsTopic == "" {
		return nil
	}
	event := kafka.NewUserRegisteredEvent(user)
	return s.producer.Publish(ctx, s.eventsTopic, event.Key(), event)
}

var _ UserUseCase = (*UserService)(nil)
