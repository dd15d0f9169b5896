package user

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ianlcz/gestidogs-api-server-sub000/internal/database"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/pkg/apperr"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/pkg/principal"
)

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, f Filter) ([]User, error)
	Update(ctx context.Context, u *User) error
	TouchLastConnection(ctx context.Context, userID int64, at time.Time) error
	Delete(ctx context.Context, id int64) (int64, error)
}

type TokenIssuer interface {
	GenerateToken(userID int64, role string) (string, error)
	TTL() time.Duration
}

type Service struct {
	repo       Repository
	tokens     TokenIssuer
	bcryptCost int
}

func NewService(repo Repository, tokens TokenIssuer, bcryptCost int) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{repo: repo, tokens: tokens, bcryptCost: bcryptCost}
}

// Register opens a client account and logs it in.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	u := &User{
		Firstname: strings.TrimSpace(req.Firstname),
		Lastname:  strings.TrimSpace(req.Lastname),
		Email:     req.Email,
		Phone:     req.Phone,
		Role:      principal.RoleClient,
	}
	if err := s.create(ctx, u, req.Password); err != nil {
		return nil, err
	}
	return s.issue(u)
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	u, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, apperr.BadRequest("failed to load user", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if err := s.repo.TouchLastConnection(ctx, u.ID, now); err != nil {
		log.Printf("user_last_connection_failed user_id=%d error=%v", u.ID, err)
	} else {
		u.LastConnectionAt = &now
	}

	return s.issue(u)
}

// Create is the staff path; managers cannot mint administrators.
func (s *Service) Create(ctx context.Context, p principal.Principal, req CreateRequest) (*User, error) {
	if req.Role == principal.RoleAdministrator && p.Role != principal.RoleAdministrator {
		return nil, ErrForbidden
	}

	u := &User{
		Firstname:       strings.TrimSpace(req.Firstname),
		Lastname:        strings.TrimSpace(req.Lastname),
		Email:           req.Email,
		Phone:           req.Phone,
		Role:            req.Role,
		EstablishmentID: req.EstablishmentID,
	}
	if err := s.create(ctx, u, req.Password); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) create(ctx context.Context, u *User, password string) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	if existing, err := s.repo.GetByEmail(ctx, u.Email); err == nil && existing != nil {
		return ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return apperr.Unprocessable("failed to hash password", err)
	}
	u.PasswordHash = string(hash)

	if err := s.repo.Create(ctx, u); err != nil {
		if database.IsUniqueViolation(err) {
			return ErrEmailTaken
		}
		return apperr.Unprocessable("failed to create user", err)
	}
	return nil
}

func (s *Service) issue(u *User) (*AuthResponse, error) {
	token, err := s.tokens.GenerateToken(u.ID, string(u.Role))
	if err != nil {
		return nil, apperr.Unprocessable("failed to issue token", err)
	}
	return &AuthResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.tokens.TTL().Seconds()),
		User:        u,
	}, nil
}

func (s *Service) Find(ctx context.Context, f Filter) ([]User, error) {
	users, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, apperr.BadRequest("failed to list users", err)
	}
	return users, nil
}

func (s *Service) FindOne(ctx context.Context, id int64) (*User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, apperr.BadRequest("failed to load user", err)
	}
	return u, nil
}

// Update lets users edit themselves; staff may edit anyone and are the only
// ones allowed to change a role or an establishment.
func (s *Service) Update(ctx context.Context, p principal.Principal, id int64, req UpdateRequest) (*User, error) {
	u, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}

	if p.UserID != id && !p.IsStaff() {
		return nil, ErrForbidden
	}
	if !canManage(p, u) {
		return nil, ErrForbidden
	}
	if (req.Role != nil || req.EstablishmentID != nil) && !p.IsStaff() {
		return nil, ErrForbidden
	}
	if req.Role != nil && *req.Role == principal.RoleAdministrator && p.Role != principal.RoleAdministrator {
		return nil, ErrForbidden
	}

	if req.Firstname != nil {
		u.Firstname = strings.TrimSpace(*req.Firstname)
	}
	if req.Lastname != nil {
		u.Lastname = strings.TrimSpace(*req.Lastname)
	}
	if req.Email != nil {
		u.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Phone != nil {
		u.Phone = *req.Phone
	}
	if req.Avatar != nil {
		u.Avatar = *req.Avatar
	}
	if req.Role != nil {
		u.Role = *req.Role
	}
	if req.EstablishmentID != nil {
		u.EstablishmentID = req.EstablishmentID
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), s.bcryptCost)
		if err != nil {
			return nil, apperr.Unprocessable("failed to hash password", err)
		}
		u.PasswordHash = string(hash)
	}
	u.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, u); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, apperr.Unprocessable("failed to update user", err)
	}
	return u, nil
}

// Delete removes an account. Only administrators may remove an administrator.
func (s *Service) Delete(ctx context.Context, p principal.Principal, id int64) error {
	u, err := s.FindOne(ctx, id)
	if err != nil {
		return err
	}
	if !canManage(p, u) {
		return ErrForbidden
	}

	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return apperr.BadRequest("failed to delete user", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// canManage reports whether p may edit or remove u. Administrator accounts are
// reserved to administrators.
func canManage(p principal.Principal, u *User) bool {
	return u.Role != principal.RoleAdministrator || p.Role == principal.RoleAdministrator
}
