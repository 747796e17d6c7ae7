package api

import "hackfest/internal/models"

func UserPublicFromModel(u *models.User) UserPublic {
	return UserPublic{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
	}
}

func UserFromModel(u *models.User) UserSchema {
	return UserSchema{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func TeamFromModel(t *models.Team) TeamSchema {
	members := make([]string, 0, len(t.Members))
	members = append(members, t.Members...)

	return TeamSchema{
		ID:           t.ID,
		Name:         t.Name,
		Status:       string(t.Status),
		TeamLeaderID: t.LeaderID,
		TeamMembers:  members,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func InviteFromModel(d *models.TeamInviteDetails) InviteSchema {
	leader := UserPublic{ID: d.LeaderID, Name: d.LeaderName, Email: d.LeaderEmail}

	return InviteSchema{
		ID:        d.ID,
		TeamID:    d.TeamID,
		InviteeID: d.InviteeID,
		InviterID: d.InviterID,
		Status:    string(d.Status),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
		Team: InviteTeam{
			ID:         d.TeamID,
			Name:       d.TeamName,
			TeamLeader: leader,
		},
		Inviter: UserPublic{ID: d.InviterID, Name: d.InviterName, Email: d.InviterEmail},
	}
}

func EventFromModel(e *models.Event) EventSchema {
	return EventSchema{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		ImageURL:    e.ImageURL,
		WhatsappURL: e.WhatsappURL,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		TotalHours:  e.TotalHours,
		TicketCost:  e.TicketCost,
		CreatedBy:   e.CreatedBy,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func TicketFromModel(t *models.Ticket) TicketSchema {
	return TicketSchema{
		ID:          t.ID,
		Name:        t.Name,
		PhoneNumber: t.PhoneNumber,
		Status:      string(t.Status),
		EventID:     t.EventID,
		UserID:      t.UserID,
		CreatedAt:   t.CreatedAt,
	}
}

func TicketDetailsFromModel(t *models.TicketDetails) TicketDetailsSchema {
	return TicketDetailsSchema{
		TicketSchema: TicketFromModel(&t.Ticket),
		Event: TicketEvent{
			ID:         t.EventID,
			Name:       t.EventName,
			StartDate:  t.EventStartDate,
			EndDate:    t.EventEndDate,
			TicketCost: t.EventTicketCost,
		},
		Creator: UserPublic{ID: t.UserID, Name: t.UserName, Email: t.UserEmail},
	}
}
