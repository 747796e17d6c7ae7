package team

import (
	"context"

	"hackfest/internal/http/api"
	"hackfest/internal/models"
	repo "hackfest/internal/repository"
)

func (s *TeamService) ListTeams(ctx context.Context) ([]api.TeamDetailsSchema, error) {
	teams, err := s.teamProvider.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return s.withDetails(ctx, teams)
}

func (s *TeamService) GetTeam(ctx context.Context, teamID string) (*api.TeamDetailsSchema, error) {
	team, err := s.teamProvider.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	details, err := s.withDetails(ctx, []*models.Team{team})
	if err != nil {
		return nil, err
	}
	if len(details) == 0 {
		// leader row is gone
		return nil, repo.ErrNotFound
	}

	return &details[0], nil
}

// ApproveTeam marks the team approved. Approving an approved team is a no-op.
func (s *TeamService) ApproveTeam(ctx context.Context, teamID string) (*api.TeamSchema, error) {
	resp := &api.TeamSchema{}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		if err := s.teamProvider.SetStatus(ctx, teamID, models.TeamStatusApproved); err != nil {
			return err
		}

		team, err := s.teamProvider.GetByID(ctx, teamID)
		if err != nil {
			return err
		}

		*resp = api.TeamFromModel(team)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (s *TeamService) DeleteTeam(ctx context.Context, teamID string) error {
	return s.teamProvider.Delete(ctx, teamID)
}
