package query_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/authz"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/entity"
	"github.com/mentorpal/mentor-graphql-sub001/internal/testutil/mocks"
	"github.com/mentorpal/mentor-graphql-sub001/internal/usecase/mentor/query"
)

func TestGetMentorQuery_Execute_PassesHomePageData(t *testing.T) {
	ctx := context.Background()
	resolver := mocks.NewMockPermissionResolver(t)
	mentor := entity.NewMentor(uuid.New(), "m")
	homePage := &authz.LeftHomePageData{Time: time.Now(), TargetMentors: []uuid.UUID{mentor.ID}}

	resolver.On("AuthorizeMentorView", ctx, authz.Anonymous(), mentor.ID, homePage).Return(mentor, nil)

	output, err := query.NewGetMentorQuery(resolver).Execute(ctx, query.GetMentorInput{
		Actor:    authz.Anonymous(),
		MentorID: mentor.ID,
		HomePage: homePage,
	})

	require.NoError(t, err)
	assert.Same(t, mentor, output.Mentor)
}

func TestGetMentorQuery_Execute_HomePageOnly(t *testing.T) {
	ctx := context.Background()
	resolver := mocks.NewMockPermissionResolver(t)
	mentorID := uuid.New()

	resolver.On("AuthorizeMentorView", ctx, authz.Anonymous(), mentorID, (*authz.LeftHomePageData)(nil)).
		Return(nil, authz.Deny(authz.ReasonMentorHomePageOnly).Err())

	output, err := query.NewGetMentorQuery(resolver).Execute(ctx, query.GetMentorInput{Actor: authz.Anonymous(), MentorID: mentorID})

	assert.Nil(t, output)
	assert.EqualError(t, err, "FORBIDDEN: mentor can only be accessed via homepage")
}
