// Package repository provides hand-written testify mocks for the domain
// repository interfaces.
package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"taskboard/internal/domain/entity"
	"taskboard/internal/domain/repository"
)

// MockUserRepository mocks repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

// NewMockUserRepository creates a mock whose expectations are asserted on cleanup.
func NewMockUserRepository(t *testing.T) *MockUserRepository {
	m := &MockUserRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

// MockTaskRepository mocks repository.TaskRepository.
type MockTaskRepository struct {
	mock.Mock
}

// NewMockTaskRepository creates a mock whose expectations are asserted on cleanup.
func NewMockTaskRepository(t *testing.T) *MockTaskRepository {
	m := &MockTaskRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTaskRepository) FindByID(ctx context.Context, id int64) (*entity.Task, error) {
	args := m.Called(ctx, id)
	task, _ := args.Get(0).(*entity.Task)

	return task, args.Error(1)
}

func (m *MockTaskRepository) FindByOwner(ctx context.Context, ownerID int64, skip, limit int) ([]*entity.Task, error) {
	args := m.Called(ctx, ownerID, skip, limit)
	tasks, _ := args.Get(0).([]*entity.Task)

	return tasks, args.Error(1)
}

func (m *MockTaskRepository) Create(ctx context.Context, task *entity.Task) error {
	return m.Called(ctx, task).Error(0)
}

func (m *MockTaskRepository) Update(ctx context.Context, task *entity.Task) error {
	return m.Called(ctx, task).Error(0)
}

func (m *MockTaskRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// MockRepositoryFactory mocks repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

// NewMockRepositoryFactory creates a mock whose expectations are asserted on cleanup.
func NewMockRepositoryFactory(t *testing.T) *MockRepositoryFactory {
	m := &MockRepositoryFactory{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRepositoryFactory) UserRepo() repository.UserRepository {
	args := m.Called()
	repo, _ := args.Get(0).(repository.UserRepository)

	return repo
}

func (m *MockRepositoryFactory) TaskRepo() repository.TaskRepository {
	args := m.Called()
	repo, _ := args.Get(0).(repository.TaskRepository)

	return repo
}

// StubTransactionManager runs the callback against a fixed factory without a
// real transaction. It keeps use case tests focused on business logic.
type StubTransactionManager struct {
	Factory repository.RepositoryFactory
}

func (s *StubTransactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(s.Factory)
}

// StubRepositoryFactory hands out fixed repository instances.
type StubRepositoryFactory struct {
	Users repository.UserRepository
	Tasks repository.TaskRepository
}

func (s *StubRepositoryFactory) UserRepo() repository.UserRepository {
	return s.Users
}

func (s *StubRepositoryFactory) TaskRepo() repository.TaskRepository {
	return s.Tasks
}
