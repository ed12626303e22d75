package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/epicboard/internal/domain"
	"github.com/alexanderramin/epicboard/internal/repository"
)

type workspaceService struct {
	workspaces repository.WorkspaceRepo
	users      repository.UserRepo
}

func NewWorkspaceService(workspaces repository.WorkspaceRepo, users repository.UserRepo) WorkspaceService {
	return &workspaceService{workspaces: workspaces, users: users}
}

func (s *workspaceService) Create(ctx context.Context, in CreateWorkspaceInput) (*domain.Workspace, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.OwnerID = strings.TrimSpace(in.OwnerID)
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	w := &domain.Workspace{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.OwnerID != "" {
		if _, err := s.users.GetByID(ctx, in.OwnerID); err != nil {
			return nil, fmt.Errorf("resolving owner: %w", err)
		}
		w.OwnerID = &in.OwnerID
	}

	if err := s.workspaces.Create(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *workspaceService) GetByID(ctx context.Context, id string) (*domain.Workspace, error) {
	return s.workspaces.GetByID(ctx, id)
}

func (s *workspaceService) List(ctx context.Context) ([]*domain.Workspace, error) {
	return s.workspaces.List(ctx)
}
