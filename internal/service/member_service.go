package service

import (
	"context"
	"errors"

	"tripplanner-api/internal/apperr"
	"tripplanner-api/internal/auth"
	"tripplanner-api/internal/models"
	"tripplanner-api/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// MemberService covers sign-up, login and the session lifecycle.
type MemberService struct {
	members    repository.MemberRepository
	sessions   *auth.Sessions
	logger     *zap.Logger
	bcryptCost int
}

func NewMemberService(members repository.MemberRepository, sessions *auth.Sessions, logger *zap.Logger) *MemberService {
	return &MemberService{
		members:    members,
		sessions:   sessions,
		logger:     logger,
		bcryptCost: bcrypt.DefaultCost,
	}
}

type SignUpInput struct {
	Email    string
	Nickname string
	Password string
}

func (s *MemberService) SignUp(ctx context.Context, in SignUpInput) (*models.Member, error) {
	exists, err := s.members.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if exists {
		return nil, apperr.New(apperr.DuplicateEmail)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	member := &models.Member{
		Email:    in.Email,
		Nickname: in.Nickname,
		Password: string(hashed),
		Role:     models.RoleUser,
	}
	if err := s.members.Create(ctx, member); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperr.New(apperr.DuplicateEmail)
		}
		return nil, apperr.Internal(err)
	}

	s.logger.Info("member signed up", zap.Int64("member_id", member.ID))
	return member, nil
}

func (s *MemberService) Login(ctx context.Context, email, password string) (*models.Member, *auth.TokenPair, error) {
	member, err := s.members.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil, apperr.New(apperr.MemberNotFound)
	}
	if err != nil {
		return nil, nil, apperr.Internal(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(member.Password), []byte(password)); err != nil {
		return nil, nil, apperr.New(apperr.InvalidPassword)
	}

	pair, err := s.sessions.IssueTokenPair(ctx, member.ID, member.Email)
	if err != nil {
		return nil, nil, err
	}
	return member, pair, nil
}

func (s *MemberService) GetMember(ctx context.Context, memberID int64) (*models.Member, error) {
	member, err := s.members.GetByID(ctx, memberID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.New(apperr.MemberNotFound)
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return member, nil
}

func (s *MemberService) Refresh(ctx context.Context, refreshToken string) (*auth.TokenPair, error) {
	if refreshToken == "" {
		return nil, apperr.Newf(apperr.InvalidToken, "refresh token is missing")
	}
	return s.sessions.Refresh(ctx, refreshToken)
}

func (s *MemberService) Logout(ctx context.Context, refreshToken string) error {
	return s.sessions.Revoke(ctx, refreshToken)
}

func (s *MemberService) LogoutAll(ctx context.Context, memberID int64) (int, error) {
	return s.sessions.RevokeAll(ctx, memberID)
}
