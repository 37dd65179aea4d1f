package clia

import (
	"context"
	"errors"
	"time"

	domainCLIA "package-intake/internal/domain/clia"
	appErrors "package-intake/pkg/errors"
	"package-intake/pkg/utils"
)

// RosterRequest carries one roster entry for create and update.
type RosterRequest struct {
	UserID         string `json:"userId" validate:"required,max=255"`
	LastUpdateUser string `json:"lastUpdateUser" validate:"max=255"`
}

// AdminService manages the CLIA admin roster.
type AdminService struct {
	repo domainCLIA.AdminRepository
	now  func() time.Time
}

func NewAdminService(repo domainCLIA.AdminRepository) *AdminService {
	return &AdminService{repo: repo, now: time.Now}
}

func (s *AdminService) Create(ctx context.Context, req *RosterRequest) (*domainCLIA.Admin, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	now := s.now()
	a := &domainCLIA.Admin{
		UserID:             utils.SanitizeString(req.UserID),
		LastUpdateDatetime: &now,
		LastUpdateUser:     utils.SanitizeString(req.LastUpdateUser),
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AdminService) GetByID(ctx context.Context, id int64) (*domainCLIA.Admin, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *AdminService) GetByUserID(ctx context.Context, userID string) (*domainCLIA.Admin, error) {
	return s.repo.GetByUserID(ctx, userID)
}

// IsAdmin reports whether the user id is on the admin roster.
func (s *AdminService) IsAdmin(ctx context.Context, userID string) (bool, error) {
	_, err := s.repo.GetByUserID(ctx, userID)
	if errors.Is(err, domainCLIA.ErrAdminNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *AdminService) Update(ctx context.Context, id int64, req *RosterRequest) (*domainCLIA.Admin, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	a.UserID = utils.SanitizeString(req.UserID)
	a.LastUpdateDatetime = &now
	a.LastUpdateUser = utils.SanitizeString(req.LastUpdateUser)

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AdminService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *AdminService) List(ctx context.Context) ([]*domainCLIA.Admin, error) {
	return s.repo.List(ctx)
}

// MemberService manages the CLIA member roster.
type MemberService struct {
	repo domainCLIA.MemberRepository
	now  func() time.Time
}

func NewMemberService(repo domainCLIA.MemberRepository) *MemberService {
	return &MemberService{repo: repo, now: time.Now}
}

func (s *MemberService) Create(ctx context.Context, req *RosterRequest) (*domainCLIA.Member, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	now := s.now()
	m := &domainCLIA.Member{
		UserID:             utils.SanitizeString(req.UserID),
		LastUpdateDatetime: &now,
		LastUpdateUser:     utils.SanitizeString(req.LastUpdateUser),
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MemberService) GetByID(ctx context.Context, id int64) (*domainCLIA.Member, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *MemberService) GetByUserID(ctx context.Context, userID string) (*domainCLIA.Member, error) {
	return s.repo.GetByUserID(ctx, userID)
}

// IsMember reports whether the user id is on the member roster.
func (s *MemberService) IsMember(ctx context.Context, userID string) (bool, error) {
	_, err := s.repo.GetByUserID(ctx, userID)
	if errors.Is(err, domainCLIA.ErrMemberNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *MemberService) Update(ctx context.Context, id int64, req *RosterRequest) (*domainCLIA.Member, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	m.UserID = utils.SanitizeString(req.UserID)
	m.LastUpdateDatetime = &now
	m.LastUpdateUser = utils.SanitizeString(req.LastUpdateUser)

	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MemberService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *MemberService) List(ctx context.Context) ([]*domainCLIA.Member, error) {
	return s.repo.List(ctx)
}
