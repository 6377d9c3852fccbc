package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_note "github.com/lwhite702/klutr/internal/mocks/note"
	mock_pipeline "github.com/lwhite702/klutr/internal/mocks/pipeline"
	mock_user "github.com/lwhite702/klutr/internal/mocks/user"
	"github.com/lwhite702/klutr/internal/note"
	"github.com/lwhite702/klutr/internal/testutil"
)

type runnerMocks struct {
	users      *mock_user.MockRepository
	notes      *mock_note.MockRepository
	classifier *mock_pipeline.MockClassifier
	embedder   *mock_pipeline.MockEmbedder
	engine     *mock_pipeline.MockClusterEngine
	stacks     *mock_pipeline.MockStackBuilder
	insights   *mock_pipeline.MockInsightGenerator
}

func newRunnerMocks(t *testing.T) runnerMocks {
	t.Helper()

	ctrl := gomock.NewController(t)
	return runnerMocks{
		users:      mock_user.NewMockRepository(ctrl),
		notes:      mock_note.NewMockRepository(ctrl),
		classifier: mock_pipeline.NewMockClassifier(ctrl),
		embedder:   mock_pipeline.NewMockEmbedder(ctrl),
		engine:     mock_pipeline.NewMockClusterEngine(ctrl),
		stacks:     mock_pipeline.NewMockStackBuilder(ctrl),
		insights:   mock_pipeline.NewMockInsightGenerator(ctrl),
	}
}

func (m runnerMocks) newRunner(opts ...RunnerOption) *Runner {
	return NewRunner(m.users, m.notes, m.classifier, m.embedder, m.engine, m.stacks, m.insights, opts...)
}

// expectIdleUser wires the queries for a user with nothing pending.
func (m runnerMocks) expectIdleUser(userID string) {
	m.notes.EXPECT().FindUnclassified(gomock.Any(), userID, defaultBatchSize).Return(nil, nil)
	m.notes.EXPECT().FindWithoutEmbedding(gomock.Any(), userID, defaultBatchSize).Return(nil, nil)
	m.engine.EXPECT().Cluster(gomock.Any(), userID).Return(nil)
	m.stacks.EXPECT().Build(gomock.Any(), userID).Return(nil, nil)
}

func TestRunner_Run(t *testing.T) {
	t.Run("processes every user", func(t *testing.T) {
		mocks := newRunnerMocks(t)
		mocks.users.EXPECT().ListIDs(gomock.Any()).Return([]string{"user-1", "user-2"}, nil)
		mocks.expectIdleUser("user-1")
		mocks.expectIdleUser("user-2")

		assert.NoError(t, mocks.newRunner().Run(context.Background()))
	})

	t.Run("one failing user does not block the rest", func(t *testing.T) {
		mocks := newRunnerMocks(t)
		mocks.users.EXPECT().ListIDs(gomock.Any()).Return([]string{"user-1", "user-2"}, nil)

		mocks.notes.EXPECT().FindUnclassified(gomock.Any(), "user-1", defaultBatchSize).Return(nil, nil)
		mocks.notes.EXPECT().FindWithoutEmbedding(gomock.Any(), "user-1", defaultBatchSize).Return(nil, nil)
		mocks.engine.EXPECT().Cluster(gomock.Any(), "user-1").Return(assert.AnError)
		mocks.expectIdleUser("user-2")

		assert.NoError(t, mocks.newRunner().Run(context.Background()))
	})

	t.Run("failing to list users aborts the batch", func(t *testing.T) {
		mocks := newRunnerMocks(t)
		mocks.users.EXPECT().ListIDs(gomock.Any()).Return(nil, assert.AnError)

		assert.ErrorIs(t, mocks.newRunner().Run(context.Background()), assert.AnError)
	})
}

func TestRunner_RunWeekly(t *testing.T) {
	now := time.Date(2025, 6, 8, 3, 0, 0, 0, time.UTC)

	t.Run("generates an insight after each user's pass", func(t *testing.T) {
		mocks := newRunnerMocks(t)
		mocks.users.EXPECT().ListIDs(gomock.Any()).Return([]string{"user-1"}, nil)
		mocks.expectIdleUser("user-1")
		mocks.insights.EXPECT().Generate(gomock.Any(), "user-1", now).Return(nil)

		runner := mocks.newRunner()
		runner.now = func() time.Time { return now }
		assert.NoError(t, runner.RunWeekly(context.Background()))
	})

	t.Run("a failed pipeline pass skips that user's insight", func(t *testing.T) {
		mocks := newRunnerMocks(t)
		mocks.users.EXPECT().ListIDs(gomock.Any()).Return([]string{"user-1", "user-2"}, nil)

		mocks.notes.EXPECT().FindUnclassified(gomock.Any(), "user-1", defaultBatchSize).Return(nil, assert.AnError)
		mocks.expectIdleUser("user-2")
		mocks.insights.EXPECT().Generate(gomock.Any(), "user-2", gomock.Any()).Return(nil)

		assert.NoError(t, mocks.newRunner().RunWeekly(context.Background()))
	})

	t.Run("an insight failure does not block the next user", func(t *testing.T) {
		mocks := newRunnerMocks(t)
		mocks.users.EXPECT().ListIDs(gomock.Any()).Return([]string{"user-1", "user-2"}, nil)
		mocks.expectIdleUser("user-1")
		mocks.insights.EXPECT().Generate(gomock.Any(), "user-1", gomock.Any()).Return(assert.AnError)
		mocks.expectIdleUser("user-2")
		mocks.insights.EXPECT().Generate(gomock.Any(), "user-2", gomock.Any()).Return(nil)

		assert.NoError(t, mocks.newRunner().RunWeekly(context.Background()))
	})
}

func TestRunner_ProcessUser(t *testing.T) {
	t.Run("classifies, embeds, clusters, and builds stacks in order", func(t *testing.T) {
		mocks := newRunnerMocks(t)

		unclassified := testutil.NewNote(t, "n1", "user-1", testutil.WithContent("buy milk"))
		unembedded := testutil.NewNote(t, "n2", "user-1",
			testutil.WithType(note.TypeIdea), testutil.WithContent("plant watering app"))

		gomock.InOrder(
			mocks.notes.EXPECT().
				FindUnclassified(gomock.Any(), "user-1", defaultBatchSize).
				Return([]note.Note{unclassified}, nil),
			mocks.classifier.EXPECT().
				Classify(gomock.Any(), "buy milk").
				Return(note.Classification{Type: note.TypeTask, Tags: []string{"groceries"}}),
			mocks.notes.EXPECT().
				UpdateClassification(gomock.Any(), "user-1", "n1",
					note.Classification{Type: note.TypeTask, Tags: []string{"groceries"}}).
				Return(nil),
			mocks.notes.EXPECT().
				FindWithoutEmbedding(gomock.Any(), "user-1", defaultBatchSize).
				Return([]note.Note{unembedded}, nil),
			mocks.embedder.EXPECT().
				Embed(gomock.Any(), "plant watering app").
				Return([]float64{0.1, 0.2}, nil),
			mocks.notes.EXPECT().
				UpdateEmbedding(gomock.Any(), "n2", []float64{0.1, 0.2}).
				Return(nil),
			mocks.engine.EXPECT().Cluster(gomock.Any(), "user-1").Return(nil),
			mocks.stacks.EXPECT().Build(gomock.Any(), "user-1").Return(nil, nil),
		)

		assert.NoError(t, mocks.newRunner().ProcessUser(context.Background(), "user-1"))
	})

	t.Run("an embedding failure aborts before clustering", func(t *testing.T) {
		mocks := newRunnerMocks(t)

		pending := testutil.NewNote(t, "n1", "user-1", testutil.WithContent("buy milk"))
		mocks.notes.EXPECT().
			FindUnclassified(gomock.Any(), "user-1", defaultBatchSize).
			Return(nil, nil)
		mocks.notes.EXPECT().
			FindWithoutEmbedding(gomock.Any(), "user-1", defaultBatchSize).
			Return([]note.Note{pending}, nil)
		mocks.embedder.EXPECT().
			Embed(gomock.Any(), "buy milk").
			Return(nil, assert.AnError)

		err := mocks.newRunner().ProcessUser(context.Background(), "user-1")
		require.ErrorIs(t, err, assert.AnError)
		assert.ErrorContains(t, err, "embedder.Embed(note n1)")
	})

	t.Run("honors a configured batch size", func(t *testing.T) {
		mocks := newRunnerMocks(t)

		mocks.notes.EXPECT().FindUnclassified(gomock.Any(), "user-1", 10).Return(nil, nil)
		mocks.notes.EXPECT().FindWithoutEmbedding(gomock.Any(), "user-1", 10).Return(nil, nil)
		mocks.engine.EXPECT().Cluster(gomock.Any(), "user-1").Return(nil)
		mocks.stacks.EXPECT().Build(gomock.Any(), "user-1").Return(nil, nil)

		runner := mocks.newRunner(WithBatchSize(10))
		assert.NoError(t, runner.ProcessUser(context.Background(), "user-1"))
	})
}
