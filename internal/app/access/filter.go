// Package access implements per-role row-level visibility rules.
//
// Every filter is a pure function of (principal, collection): no storage
// access, no mutation of its inputs, deterministic for fixed inputs. The
// services fetch candidate collections from the repositories and shape
// responses through these filters.
package access

import (
	"github.com/campushq/mentorhub/internal/app/models"
)

// Directory is a read-only snapshot of the user collection together with
// the profile rows needed to resolve mentor links. Profile maps are keyed
// by user ID.
type Directory struct {
	Users          []*models.User
	MentorProfiles map[int64]*models.MentorProfile
	MenteeProfiles map[int64]*models.MenteeProfile
}

// VisibleUsers returns the subset of the directory the principal may see.
// Admins see everyone, a mentor sees the mentees linked to their own
// profile, a mentee sees only their assigned mentor.
func VisibleUsers(principal *models.User, dir Directory) []*models.User {
	switch principal.Role {
	case models.RoleAdmin:
		out := make([]*models.User, len(dir.Users))
		copy(out, dir.Users)
		return out

	case models.RoleMentor:
		own := dir.MentorProfiles[principal.ID]
		if own == nil {
			return nil
		}
		var out []*models.User
		for _, u := range dir.Users {
			if u.Role != models.RoleMentee {
				continue
			}
			mp := dir.MenteeProfiles[u.ID]
			if mp != nil && mp.MentorProfileID != nil && *mp.MentorProfileID == own.ID {
				out = append(out, u)
			}
		}
		return out

	case models.RoleMentee:
		own := dir.MenteeProfiles[principal.ID]
		if own == nil || own.MentorProfileID == nil {
			return nil
		}
		for _, u := range dir.Users {
			mp := dir.MentorProfiles[u.ID]
			if mp != nil && mp.ID == *own.MentorProfileID {
				return []*models.User{u}
			}
		}
		return nil
	}

	return nil
}

// VisibleMeetings returns the meetings the principal participates in,
// as mentor or as mentee. No other meeting is ever visible.
func VisibleMeetings(principalID int64, meetings []*models.Meeting) []*models.Meeting {
	var out []*models.Meeting
	for _, m := range meetings {
		if m.IsParticipant(principalID) {
			out = append(out, m)
		}
	}
	return out
}

// VisibleMessages returns the messages where the principal is sender or
// receiver.
func VisibleMessages(principalID int64, messages []*models.Message) []*models.Message {
	var out []*models.Message
	for _, msg := range messages {
		if msg.SenderID == principalID || msg.ReceiverID == principalID {
			out = append(out, msg)
		}
	}
	return out
}

// VisibleAchievements returns the achievements the principal may see.
// Admins see all; a mentor sees achievements awarded from their profile;
// a mentee sees achievements awarded to their profile. mentorProfileID and
// menteeProfileID are the principal's own profile IDs (nil when the
// principal does not hold that role).
func VisibleAchievements(principal *models.User, mentorProfileID, menteeProfileID *int64, achievements []*models.Achievement) []*models.Achievement {
	switch principal.Role {
	case models.RoleAdmin:
		out := make([]*models.Achievement, len(achievements))
		copy(out, achievements)
		return out

	case models.RoleMentor:
		if mentorProfileID == nil {
			return nil
		}
		var out []*models.Achievement
		for _, a := range achievements {
			if a.MentorProfileID != nil && *a.MentorProfileID == *mentorProfileID {
				out = append(out, a)
			}
		}
		return out

	case models.RoleMentee:
		if menteeProfileID == nil {
			return nil
		}
		var out []*models.Achievement
		for _, a := range achievements {
			if a.MenteeProfileID != nil && *a.MenteeProfileID == *menteeProfileID {
				out = append(out, a)
			}
		}
		return out
	}

	return nil
}
