package team

import (
	"context"
	"errors"
	"log/slog"

	"hackfest/internal/http/api"
	"hackfest/internal/lib/sl"
	"hackfest/internal/models"
	repo "hackfest/internal/repository"
)

// RespondToInvite records the invitee's answer. Accepting also adds the
// user to the team; both writes commit together or not at all.
func (s *TeamService) RespondToInvite(
	ctx context.Context,
	inviteID, userID string,
	response models.InviteStatus,
) error {
	if !response.IsResponse() {
		return ErrInvalidResponse
	}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		invite, err := s.inviteProvider.Respond(ctx, inviteID, userID, response)
		if err != nil {
			if isNotFound(err) {
				return s.explainMissingInvite(ctx, inviteID, userID)
			}
			return err
		}

		if response != models.InviteStatusAccepted {
			return nil
		}

		return s.join(ctx, invite.TeamID, userID)
	})
	if err != nil {
		return err
	}

	s.metrics.InviteResponded(string(response))

	return nil
}

// explainMissingInvite tells an answered invite apart from one that does not
// exist. Invites addressed to someone else are reported as missing.
func (s *TeamService) explainMissingInvite(ctx context.Context, inviteID, userID string) error {
	invite, err := s.inviteProvider.GetByID(ctx, inviteID)
	if err != nil {
		if isNotFound(err) {
			return ErrInviteNotFound
		}
		return err
	}

	if invite.InviteeID != userID {
		return ErrInviteNotFound
	}

	return ErrInviteResponded
}

func (s *TeamService) join(ctx context.Context, teamID, userID string) error {
	// блокируем команду до конца транзакции, чтобы параллельные accept не обошли лимит
	team, err := s.teamProvider.LockByID(ctx, teamID)
	if err != nil {
		return err
	}

	if team.LeaderID == userID {
		return ErrSelfInvite
	}

	if err := s.teamProvider.LockUser(ctx, userID); err != nil {
		return err
	}

	busy, err := s.teamProvider.IsUserInAnyTeam(ctx, userID)
	if err != nil {
		return err
	}
	if busy {
		return ErrAlreadyInTeam
	}

	count, err := s.teamProvider.CountMembers(ctx, teamID)
	if err != nil {
		return err
	}
	if count >= models.MaxTeamMembers {
		return ErrTeamFull
	}

	err = s.teamProvider.AddMember(ctx, teamID, userID)
	switch {
	case errors.Is(err, repo.ErrUserInTeam):
		return ErrAlreadyInTeam
	case errors.Is(err, repo.ErrTeamFull):
		return ErrTeamFull
	}

	return err
}

// GetUserInvites returns the user's pending invites. Store failures are
// logged and yield an empty list.
func (s *TeamService) GetUserInvites(ctx context.Context, userID string) []api.InviteSchema {
	invites, err := s.inviteProvider.ListPendingByInvitee(ctx, userID)
	if err != nil {
		s.log.Error("failed to get user team invites", slog.String("user_id", userID), sl.Err(err))
		return []api.InviteSchema{}
	}

	resp := make([]api.InviteSchema, 0, len(invites))
	for _, inv := range invites {
		resp = append(resp, api.InviteFromModel(inv))
	}

	return resp
}

// SearchUsersByEmail finds users whose email contains query. Queries shorter
// than two characters and store failures yield an empty list.
func (s *TeamService) SearchUsersByEmail(ctx context.Context, query string, limit int) []api.UserPublic {
	if len([]rune(query)) < minSearchQueryLen {
		return []api.UserPublic{}
	}

	if limit <= 0 {
		limit = s.searchDefaultLimit
	}
	if limit > s.searchMaxLimit {
		limit = s.searchMaxLimit
	}

	users, err := s.userProvider.SearchByEmail(ctx, query, limit)
	if err != nil {
		s.log.Error("failed to search users", slog.String("query", query), sl.Err(err))
		return []api.UserPublic{}
	}

	resp := make([]api.UserPublic, 0, len(users))
	for _, u := range users {
		resp = append(resp, api.UserPublic{ID: u.ID, Name: u.Name, Email: u.Email})
	}

	return resp
}

// GetUserTeams returns the teams the user leads or belongs to.
func (s *TeamService) GetUserTeams(ctx context.Context, userID string) []api.TeamSchema {
	teams, err := s.teamProvider.ListByUser(ctx, userID)
	if err != nil {
		s.log.Error("failed to get user teams", slog.String("user_id", userID), sl.Err(err))
		return []api.TeamSchema{}
	}

	resp := make([]api.TeamSchema, 0, len(teams))
	for _, t := range teams {
		resp = append(resp, api.TeamFromModel(t))
	}

	return resp
}

// GetUserTeamsWithDetails is GetUserTeams with leader and member profiles
// resolved.
func (s *TeamService) GetUserTeamsWithDetails(ctx context.Context, userID string) []api.TeamDetailsSchema {
	teams, err := s.teamProvider.ListByUser(ctx, userID)
	if err != nil {
		s.log.Error("failed to get user teams", slog.String("user_id", userID), sl.Err(err))
		return []api.TeamDetailsSchema{}
	}

	resp, err := s.withDetails(ctx, teams)
	if err != nil {
		s.log.Error("failed to resolve team members", slog.String("user_id", userID), sl.Err(err))
		return []api.TeamDetailsSchema{}
	}

	return resp
}

// withDetails resolves every leader and member with one lookup. Teams whose
// leader no longer exists are skipped, as are members that were removed.
func (s *TeamService) withDetails(ctx context.Context, teams []*models.Team) ([]api.TeamDetailsSchema, error) {
	resp := make([]api.TeamDetailsSchema, 0, len(teams))
	if len(teams) == 0 {
		return resp, nil
	}

	seen := make(map[string]struct{})
	ids := make([]string, 0, len(teams)*(models.MaxTeamMembers+1))
	for _, t := range teams {
		for _, id := range append([]string{t.LeaderID}, t.Members...) {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}

	users, err := s.userProvider.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*models.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	for _, t := range teams {
		leader, ok := byID[t.LeaderID]
		if !ok {
			continue
		}

		members := make([]api.UserPublic, 0, len(t.Members))
		for _, id := range t.Members {
			if u, ok := byID[id]; ok {
				members = append(members, api.UserPublicFromModel(u))
			}
		}

		resp = append(resp, api.TeamDetailsSchema{
			TeamSchema:   api.TeamFromModel(t),
			TeamLeader:   api.UserPublicFromModel(leader),
			Members:      members,
			TotalMembers: 1 + len(members),
		})
	}

	return resp, nil
}
