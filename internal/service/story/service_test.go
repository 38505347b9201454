package story

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/pentest-stories/internal/domain"
	"github.com/heartmarshall/pentest-stories/pkg/ctxutil"
)

//go:generate moq -out story_repo_mock_test.go -pkg story . storyRepo
//go:generate moq -out tag_repo_mock_test.go -pkg story . tagRepo
//go:generate moq -out vertical_repo_mock_test.go -pkg story . verticalRepo
//go:generate moq -out profile_counter_mock_test.go -pkg story . profileCounter
//go:generate moq -out tx_manager_mock_test.go -pkg story . txManager

type fixture struct {
	stories   *storyRepoMock
	tags      *tagRepoMock
	verticals *verticalRepoMock
	profiles  *profileCounterMock
	tx        *txManagerMock
}

func newFixture() *fixture {
	return &fixture{
		stories: &storyRepoMock{},
		tags: &tagRepoMock{
			GetByStoryIDsFunc: func(ctx context.Context, storyIDs []uuid.UUID) (map[uuid.UUID][]domain.Tag, error) {
				return map[uuid.UUID][]domain.Tag{}, nil
			},
		},
		verticals: &verticalRepoMock{},
		profiles:  &profileCounterMock{},
		tx: &txManagerMock{
			RunInTxFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
				return fn(ctx)
			},
		},
	}
}

func (f *fixture) service() *Service {
	return NewService(
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		f.stories, f.tags, f.verticals, f.profiles, f.tx,
	)
}

func userCtx(id uuid.UUID) context.Context {
	return ctxutil.WithUserRole(ctxutil.WithUserID(context.Background(), id), "user")
}

func adminCtx(id uuid.UUID) context.Context {
	return ctxutil.WithUserRole(ctxutil.WithUserID(context.Background(), id), "admin")
}

func ptr[T any](v T) *T { return &v }
