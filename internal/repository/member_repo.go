package repository

import (
	"context"
	"time"

	"tripplanner-api/internal/models"

	"github.com/jmoiron/sqlx"
)

type memberRepository struct {
	db *sqlx.DB
}

func NewMemberRepository(db *sqlx.DB) MemberRepository {
	return &memberRepository{db: db}
}

const memberColumns = `id, email, nickname, password, role, created_at, updated_at`

func (r *memberRepository) Create(ctx context.Context, member *models.Member) error {
	now := time.Now().UTC()
	if member.Role == "" {
		member.Role = models.RoleUser
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO members (email, nickname, password, role, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		member.Email, member.Nickname, member.Password, member.Role, now, now)
	if err != nil {
		return translate("failed to create member", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return translate("failed to read member id", err)
	}
	member.ID = id
	member.CreatedAt = now
	member.UpdatedAt = now
	return nil
}

func (r *memberRepository) GetByID(ctx context.Context, id int64) (*models.Member, error) {
	var member models.Member
	if err := r.db.GetContext(ctx, &member, `SELECT `+memberColumns+` FROM members WHERE id = ?`, id); err != nil {
		return nil, translate("failed to get member", err)
	}
	return &member, nil
}

func (r *memberRepository) GetByEmail(ctx context.Context, email string) (*models.Member, error) {
	var member models.Member
	if err := r.db.GetContext(ctx, &member, `SELECT `+memberColumns+` FROM members WHERE email = ?`, email); err != nil {
		return nil, translate("failed to get member by email", err)
	}
	return &member, nil
}

func (r *memberRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	if err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM members WHERE email = ?)`, email); err != nil {
		return false, translate("failed to check member email", err)
	}
	return exists, nil
}
