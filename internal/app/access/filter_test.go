package access

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campushq/mentorhub/internal/app/models"
)

func ptr(v int64) *int64 { return &v }

func testDirectory() Directory {
	admin := &models.User{ID: 1, Role: models.RoleAdmin}
	mentorA := &models.User{ID: 2, Role: models.RoleMentor}
	mentorB := &models.User{ID: 3, Role: models.RoleMentor}
	menteeA := &models.User{ID: 4, Role: models.RoleMentee}
	menteeB := &models.User{ID: 5, Role: models.RoleMentee}
	unassigned := &models.User{ID: 6, Role: models.RoleMentee}

	return Directory{
		Users: []*models.User{admin, mentorA, mentorB, menteeA, menteeB, unassigned},
		MentorProfiles: map[int64]*models.MentorProfile{
			2: {ID: 10, UserID: 2},
			3: {ID: 11, UserID: 3},
		},
		MenteeProfiles: map[int64]*models.MenteeProfile{
			4: {ID: 20, UserID: 4, MentorProfileID: ptr(10)},
			5: {ID: 21, UserID: 5, MentorProfileID: ptr(11)},
			6: {ID: 22, UserID: 6},
		},
	}
}

func userIDs(users []*models.User) []int64 {
	out := make([]int64, 0, len(users))
	for _, u := range users {
		out = append(out, u.ID)
	}
	return out
}

func TestVisibleUsersAdminSeesEveryone(t *testing.T) {
	dir := testDirectory()
	got := VisibleUsers(&models.User{ID: 1, Role: models.RoleAdmin}, dir)
	assert.ElementsMatch(t, []int64{1, 2, 3, 4, 5, 6}, userIDs(got))
}

func TestVisibleUsersMentorSeesOwnMenteesOnly(t *testing.T) {
	dir := testDirectory()
	got := VisibleUsers(&models.User{ID: 2, Role: models.RoleMentor}, dir)
	assert.Equal(t, []int64{4}, userIDs(got))
}

func TestVisibleUsersMentorWithoutProfile(t *testing.T) {
	dir := testDirectory()
	got := VisibleUsers(&models.User{ID: 99, Role: models.RoleMentor}, dir)
	assert.Empty(t, got)
}

func TestVisibleUsersMenteeSeesAssignedMentor(t *testing.T) {
	dir := testDirectory()
	got := VisibleUsers(&models.User{ID: 4, Role: models.RoleMentee}, dir)
	assert.Equal(t, []int64{2}, userIDs(got))
}

func TestVisibleUsersUnassignedMenteeSeesNobody(t *testing.T) {
	dir := testDirectory()
	got := VisibleUsers(&models.User{ID: 6, Role: models.RoleMentee}, dir)
	assert.Empty(t, got)
}

func TestVisibleUsersDoesNotMutateDirectory(t *testing.T) {
	dir := testDirectory()
	before := userIDs(dir.Users)
	_ = VisibleUsers(&models.User{ID: 1, Role: models.RoleAdmin}, dir)
	_ = VisibleUsers(&models.User{ID: 2, Role: models.RoleMentor}, dir)
	assert.Equal(t, before, userIDs(dir.Users))
}

func TestVisibleMeetings(t *testing.T) {
	meetings := []*models.Meeting{
		{ID: 1, MentorID: 2, MenteeID: 4},
		{ID: 2, MentorID: 3, MenteeID: 5},
		{ID: 3, MentorID: 2, MenteeID: 5},
	}

	asMentor := VisibleMeetings(2, meetings)
	assert.Len(t, asMentor, 2)

	asMentee := VisibleMeetings(4, meetings)
	assert.Len(t, asMentee, 1)
	assert.Equal(t, int64(1), asMentee[0].ID)

	outsider := VisibleMeetings(99, meetings)
	assert.Empty(t, outsider)
}

func TestVisibleMeetingsExcludeNonParticipantAdmin(t *testing.T) {
	meetings := []*models.Meeting{
		{ID: 1, MentorID: 2, MenteeID: 4},
		{ID: 2, MentorID: 3, MenteeID: 5},
	}

	// Meeting visibility has no admin carve-out: an admin who is not a
	// party to a meeting does not see it.
	assert.Empty(t, VisibleMeetings(1, meetings))
}

func TestVisibleMessages(t *testing.T) {
	messages := []*models.Message{
		{ID: 1, SenderID: 4, ReceiverID: 2},
		{ID: 2, SenderID: 2, ReceiverID: 4},
		{ID: 3, SenderID: 5, ReceiverID: 3},
	}

	got := VisibleMessages(4, messages)
	assert.Len(t, got, 2)

	assert.Empty(t, VisibleMessages(99, messages))
}

func TestVisibleAchievements(t *testing.T) {
	achievements := []*models.Achievement{
		{ID: 1, MentorProfileID: ptr(10), MenteeProfileID: ptr(20)},
		{ID: 2, MentorProfileID: ptr(11), MenteeProfileID: ptr(21)},
	}

	admin := &models.User{ID: 1, Role: models.RoleAdmin}
	assert.Len(t, VisibleAchievements(admin, nil, nil, achievements), 2)

	mentor := &models.User{ID: 2, Role: models.RoleMentor}
	got := VisibleAchievements(mentor, ptr(10), nil, achievements)
	assert.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)

	mentee := &models.User{ID: 5, Role: models.RoleMentee}
	got = VisibleAchievements(mentee, nil, ptr(21), achievements)
	assert.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)

	// Principal with no profile row of the matching role sees nothing.
	assert.Empty(t, VisibleAchievements(mentor, nil, nil, achievements))
	assert.Empty(t, VisibleAchievements(mentee, nil, nil, achievements))
}
