package postgres

import (
	"context"
	"database/sql"
	"errors"

	"arenahub-backend/internal/domain"
	"arenahub-backend/internal/repository"
)

type teamRepository struct {
	db *sql.DB
}

func NewTeamRepository(db *sql.DB) repository.TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) Create(ctx context.Context, team *domain.Team) error {
	query := `INSERT INTO teams (name, tag, logo_url) VALUES ($1, $2, $3) RETURNING id, created_on`
	if err := r.db.QueryRowContext(ctx, query, team.Name, team.Tag, team.LogoURL).Scan(&team.ID, &team.CreatedOn); err != nil {
		return err
	}
	// Every team gets a wallet row up front so balance reads never miss.
	_, err := r.db.ExecContext(ctx, `INSERT INTO team_wallets (team_id) VALUES ($1) ON CONFLICT DO NOTHING`, team.ID)
	return err
}

func (r *teamRepository) GetByID(ctx context.Context, id int32) (*domain.Team, error) {
	var t domain.Team
	query := `SELECT id, name, tag, logo_url, created_on FROM teams WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&t.ID, &t.Name, &t.Tag, &t.LogoURL, &t.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *teamRepository) AddMember(ctx context.Context, m *domain.TeamMember) error {
	query := `INSERT INTO team_members (team_id, user_id, role, balance_cents)
	          VALUES ($1, $2, $3, $4) RETURNING joined_on`
	return r.db.QueryRowContext(ctx, query, m.TeamID, m.UserID, m.Role, m.BalanceCents).Scan(&m.JoinedOn)
}

func (r *teamRepository) GetMember(ctx context.Context, teamID, userID int32) (*domain.TeamMember, error) {
	var m domain.TeamMember
	query := `SELECT team_id, user_id, role, balance_cents, joined_on
	          FROM team_members WHERE team_id = $1 AND user_id = $2`
	err := r.db.QueryRowContext(ctx, query, teamID, userID).
		Scan(&m.TeamID, &m.UserID, &m.Role, &m.BalanceCents, &m.JoinedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *teamRepository) ListMembers(ctx context.Context, teamID int32) ([]domain.TeamMember, error) {
	query := `SELECT team_id, user_id, role, balance_cents, joined_on
	          FROM team_members WHERE team_id = $1 ORDER BY joined_on`
	rows, err := r.db.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []domain.TeamMember
	for rows.Next() {
		var m domain.TeamMember
		if err := rows.Scan(&m.TeamID, &m.UserID, &m.Role, &m.BalanceCents, &m.JoinedOn); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}
