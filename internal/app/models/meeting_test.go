package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeetingStatusValid(t *testing.T) {
	for _, s := range []MeetingStatus{MeetingStatusPending, MeetingStatusAccepted, MeetingStatusRejected, MeetingStatusCompleted} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, MeetingStatus("cancelled").Valid())
	assert.False(t, MeetingStatus("").Valid())
}

func TestMeetingStatusTransitions(t *testing.T) {
	all := []MeetingStatus{MeetingStatusPending, MeetingStatusAccepted, MeetingStatusRejected, MeetingStatusCompleted}

	allowed := map[MeetingStatus][]MeetingStatus{
		MeetingStatusPending:   {MeetingStatusAccepted, MeetingStatusRejected},
		MeetingStatusAccepted:  {MeetingStatusCompleted},
		MeetingStatusRejected:  {},
		MeetingStatusCompleted: {},
	}

	for from, nexts := range allowed {
		ok := map[MeetingStatus]bool{}
		for _, n := range nexts {
			ok[n] = true
		}
		for _, to := range all {
			assert.Equal(t, ok[to], from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestMeetingIsParticipant(t *testing.T) {
	m := &Meeting{MentorID: 2, MenteeID: 4}
	assert.True(t, m.IsParticipant(2))
	assert.True(t, m.IsParticipant(4))
	assert.False(t, m.IsParticipant(1))
}

func TestMeetingTransitionAllowedBy(t *testing.T) {
	m := &Meeting{MentorID: 2, MenteeID: 4}

	cases := []struct {
		name   string
		userID int64
		next   MeetingStatus
		want   bool
	}{
		{"mentee accepts", 4, MeetingStatusAccepted, true},
		{"mentee rejects", 4, MeetingStatusRejected, true},
		{"mentor cannot accept", 2, MeetingStatusAccepted, false},
		{"mentor cannot reject", 2, MeetingStatusRejected, false},
		{"mentor completes", 2, MeetingStatusCompleted, true},
		{"mentee completes", 4, MeetingStatusCompleted, true},
		{"outsider cannot accept", 9, MeetingStatusAccepted, false},
		{"outsider cannot complete", 9, MeetingStatusCompleted, false},
		{"nobody drives a meeting back to pending", 4, MeetingStatusPending, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, m.TransitionAllowedBy(tc.userID, tc.next), tc.name)
	}
}

func TestRoleTypeValid(t *testing.T) {
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleMentor.Valid())
	assert.True(t, RoleMentee.Valid())
	assert.False(t, RoleType("student").Valid())
	assert.False(t, RoleType("").Valid())
}
