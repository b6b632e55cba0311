package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"skillax-backend/internal/domains/admin/model"
	"skillax-backend/internal/domains/admin/repository"
	blogrepo "skillax-backend/internal/domains/blog/repository"
	courserepo "skillax-backend/internal/domains/course/repository"
	"skillax-backend/internal/shared/errs"
	"skillax-backend/internal/shared/utils"
	"skillax-backend/pkg/jwt"
	"skillax-backend/pkg/logger"
)

const bcryptCost = 12

type Service interface {
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	Me(ctx context.Context, email string) (*model.PublicUser, error)
	Seed(ctx context.Context) error
}

type adminService struct {
	repo    repository.Repository
	courses courserepo.Repository
	blogs   blogrepo.Repository
	tokens  *jwt.Manager
}

func NewService(repo repository.Repository, courses courserepo.Repository, blogs blogrepo.Repository, tokens *jwt.Manager) Service {
	return &adminService{repo: repo, courses: courses, blogs: blogs, tokens: tokens}
}

func (s *adminService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrValidationFailed, err.Error())
	}

	admin, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	// Unknown email and wrong password fail identically so the endpoint
	// cannot be used to probe which accounts exist.
	if admin == nil {
		return nil, fmt.Errorf("%w: invalid credentials", errs.ErrInvalidCredential)
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)) != nil {
		return nil, fmt.Errorf("%w: invalid credentials", errs.ErrInvalidCredential)
	}

	token, err := s.tokens.Issue(admin.ID, admin.Email, admin.Role)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &model.LoginResponse{Token: token, User: admin.Public()}, nil
}

func (s *adminService) Me(ctx context.Context, email string) (*model.PublicUser, error) {
	admin, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, fmt.Errorf("%w: admin account not found", errs.ErrNotFound)
	}
	user := admin.Public()
	return &user, nil
}

// Seed bootstraps the default admin account, reseeds the flagship courses
// and seeds sample blog posts when the blog collection is empty. Safe to
// call repeatedly.
func (s *adminService) Seed(ctx context.Context) error {
	existing, err := s.repo.FindByEmail(ctx, SeedAdminEmail)
	if err != nil {
		return err
	}
	if existing == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(seedAdminPassword), bcryptCost)
		if err != nil {
			return fmt.Errorf("hash seed password: %w", err)
		}
		admin := &model.AdminUser{
			ID:        uuid.NewString(),
			Email:     SeedAdminEmail,
			Name:      "Skillax Admin",
			Password:  string(hash),
			Role:      model.RoleAdmin,
			CreatedAt: utils.NowUTC(),
		}
		if err := s.repo.Create(ctx, admin); err != nil {
			return err
		}
		logger.Info("seeded default admin account", map[string]interface{}{"email": SeedAdminEmail})
	}

	// Courses are authoritative seed content: wipe and reinsert so edits to
	// the flagship programs always win.
	if err := s.courses.DeleteAll(ctx); err != nil {
		return err
	}
	for _, course := range seedCourses() {
		if err := s.courses.Create(ctx, course); err != nil {
			return err
		}
	}

	count, err := s.blogs.CountAll(ctx)
	if err != nil {
		return err
	}
	if count == 0 {
		for _, post := range seedBlogPosts() {
			if err := s.blogs.Create(ctx, post); err != nil {
				return err
			}
		}
	}
	return nil
}
