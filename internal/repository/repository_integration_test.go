package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/RKBattleSLoth/DreamWeaver/internal/config"
	"github.com/RKBattleSLoth/DreamWeaver/internal/interfaces"
	"github.com/RKBattleSLoth/DreamWeaver/internal/models"
	"github.com/RKBattleSLoth/DreamWeaver/internal/repository"
	"github.com/RKBattleSLoth/DreamWeaver/internal/service"
	"github.com/RKBattleSLoth/DreamWeaver/migrations"
)

type RepositoryIntegrationSuite struct {
	suite.Suite
	ctx         context.Context
	pgContainer *postgres.PostgresContainer
	rdContainer *tcredis.RedisContainer
	pgPool      *pgxpool.Pool
	redisClient *redis.Client
	logger      *zap.Logger

	userRepo    interfaces.UserRepository
	tokenRepo   interfaces.TokenRepository
	profileRepo interfaces.ChildProfileRepository
	storyRepo   interfaces.StoryRepository
	genRepo     interfaces.GenerationRequestRepository
	authService service.AuthService
}

func (s *RepositoryIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()
	var err error

	s.logger, err = zap.NewDevelopment()
	require.NoError(s.T(), err)

	s.pgContainer, err = postgres.Run(s.ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Minute),
		),
	)
	require.NoError(s.T(), err, "Failed to start postgres container")

	pgConnStr, err := s.pgContainer.ConnectionString(s.ctx, "sslmode=disable")
	require.NoError(s.T(), err)

	s.pgPool, err = pgxpool.New(s.ctx, pgConnStr)
	require.NoError(s.T(), err, "Failed to connect to test postgres")

	require.NoError(s.T(), s.runMigrations(pgConnStr), "Failed to run migrations")

	s.rdContainer, err = tcredis.Run(s.ctx,
		"docker.io/redis:7-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("* Ready to accept connections").
				WithOccurrence(1).
				WithStartupTimeout(1*time.Minute),
		),
	)
	require.NoError(s.T(), err, "Failed to start redis container")

	redisHost, err := s.rdContainer.Host(s.ctx)
	require.NoError(s.T(), err)
	redisPort, err := s.rdContainer.MappedPort(s.ctx, "6379/tcp")
	require.NoError(s.T(), err)

	s.redisClient = redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", redisHost, redisPort.Port()),
	})
	require.NoError(s.T(), s.redisClient.Ping(s.ctx).Err())

	cfg := &config.Config{
		Env:             "test",
		LogLevel:        "debug",
		JWTSecret:       "integration-test-secret",
		PasswordPepper:  "integration-test-pepper",
		AccessTokenTTL:  5 * time.Minute,
		RefreshTokenTTL: 10 * time.Minute,
	}

	s.userRepo = repository.NewPgUserRepository(s.pgPool, s.logger)
	s.tokenRepo = repository.NewRedisTokenRepository(s.redisClient, s.logger)
	s.profileRepo = repository.NewPgChildProfileRepository(s.pgPool, s.logger)
	s.storyRepo = repository.NewPgStoryRepository(s.pgPool, s.logger)
	s.genRepo = repository.NewPgGenerationRequestRepository(s.pgPool, s.logger)
	s.authService = service.NewAuthService(s.userRepo, s.tokenRepo, cfg, s.logger)
}

func (s *RepositoryIntegrationSuite) TearDownSuite() {
	if s.pgPool != nil {
		s.pgPool.Close()
	}
	if s.redisClient != nil {
		s.redisClient.Close()
	}
	if s.pgContainer != nil {
		if err := s.pgContainer.Terminate(s.ctx); err != nil {
			s.logger.Error("Failed to terminate postgres container", zap.Error(err))
		}
	}
	if s.rdContainer != nil {
		if err := s.rdContainer.Terminate(s.ctx); err != nil {
			s.logger.Error("Failed to terminate redis container", zap.Error(err))
		}
	}
}

func (s *RepositoryIntegrationSuite) SetupTest() {
	require.NoError(s.T(), s.redisClient.FlushDB(s.ctx).Err())
	_, err := s.pgPool.Exec(s.ctx, "TRUNCATE TABLE users RESTART IDENTITY CASCADE")
	require.NoError(s.T(), err)
}

func (s *RepositoryIntegrationSuite) runMigrations(dbURL string) error {
	sourceDriver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("failed to create iofs source driver: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", sourceDriver, dbURL)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

func TestRepositoryIntegrationSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(RepositoryIntegrationSuite))
}

// --- Helpers ---

func (s *RepositoryIntegrationSuite) createUser(email string) *models.User {
	user := &models.User{Email: email, Name: "Test Parent", PasswordHash: "x"}
	require.NoError(s.T(), s.userRepo.CreateUser(s.ctx, user))
	return user
}

func (s *RepositoryIntegrationSuite) createProfile(userID uuid.UUID, name string) *models.ChildProfile {
	profile := &models.ChildProfile{UserID: userID, Name: name}
	require.NoError(s.T(), s.profileRepo.Create(s.ctx, profile))
	return profile
}

func (s *RepositoryIntegrationSuite) createStory(userID uuid.UUID, title string) *models.Story {
	story := &models.Story{
		UserID:             userID,
		Title:              title,
		Content:            "Once upon a time a small fox fell asleep.",
		Length:             models.StoryLengthShort,
		WordCount:          9,
		ReadingTimeMinutes: 5,
	}
	require.NoError(s.T(), s.storyRepo.Create(s.ctx, story))
	return story
}

// --- Tests ---

func (s *RepositoryIntegrationSuite) TestUserRepository_DuplicateEmail() {
	t := s.T()
	s.createUser("parent@example.com")

	dup := &models.User{Email: "parent@example.com", Name: "Other", PasswordHash: "y"}
	err := s.userRepo.CreateUser(s.ctx, dup)
	require.ErrorIs(t, err, models.ErrEmailAlreadyExists)
}

func (s *RepositoryIntegrationSuite) TestChildProfileRepository_ActiveIsExclusive() {
	t := s.T()
	user := s.createUser("parent@example.com")

	first := s.createProfile(user.ID, "Mia")
	second := s.createProfile(user.ID, "Theo")

	require.NoError(t, s.profileRepo.SetActive(s.ctx, user.ID, first.ID))
	require.NoError(t, s.profileRepo.SetActive(s.ctx, user.ID, second.ID))

	active, err := s.profileRepo.GetActive(s.ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, second.ID, active.ID)

	got, err := s.profileRepo.GetByID(s.ctx, user.ID, first.ID)
	require.NoError(t, err)
	require.False(t, got.IsActive)
}

func (s *RepositoryIntegrationSuite) TestChildProfileRepository_SetActiveOtherUsersProfile() {
	t := s.T()
	owner := s.createUser("owner@example.com")
	intruder := s.createUser("intruder@example.com")
	profile := s.createProfile(owner.ID, "Mia")

	err := s.profileRepo.SetActive(s.ctx, intruder.ID, profile.ID)
	require.ErrorIs(t, err, models.ErrNotFound)
}

func (s *RepositoryIntegrationSuite) TestStoryRepository_ToggleFavorite() {
	t := s.T()
	user := s.createUser("parent@example.com")
	story := s.createStory(user.ID, "The Dragon's Nap")

	toggled, err := s.storyRepo.ToggleFavorite(s.ctx, user.ID, story.ID)
	require.NoError(t, err)
	require.True(t, toggled.IsFavorite)

	favorites, err := s.storyRepo.ListFavorites(s.ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, favorites, 1)

	toggled, err = s.storyRepo.ToggleFavorite(s.ctx, user.ID, story.ID)
	require.NoError(t, err)
	require.False(t, toggled.IsFavorite)
}

func (s *RepositoryIntegrationSuite) TestStoryRepository_MarkAsReadKeepsFirstTimestamp() {
	t := s.T()
	user := s.createUser("parent@example.com")
	story := s.createStory(user.ID, "The Dragon's Nap")

	first, err := s.storyRepo.MarkAsRead(s.ctx, user.ID, story.ID)
	require.NoError(t, err)
	require.NotNil(t, first.LastReadAt)

	second, err := s.storyRepo.MarkAsRead(s.ctx, user.ID, story.ID)
	require.NoError(t, err)
	require.NotNil(t, second.LastReadAt)
	require.True(t, second.LastReadAt.Equal(*first.LastReadAt))
}

func (s *RepositoryIntegrationSuite) TestStoryRepository_OwnerScoping() {
	t := s.T()
	owner := s.createUser("owner@example.com")
	intruder := s.createUser("intruder@example.com")
	story := s.createStory(owner.ID, "Private Story")

	_, err := s.storyRepo.GetByID(s.ctx, intruder.ID, story.ID)
	require.ErrorIs(t, err, models.ErrNotFound)

	err = s.storyRepo.Delete(s.ctx, intruder.ID, story.ID)
	require.ErrorIs(t, err, models.ErrNotFound)

	// Still reachable by the owner.
	_, err = s.storyRepo.GetByID(s.ctx, owner.ID, story.ID)
	require.NoError(t, err)
}

func (s *RepositoryIntegrationSuite) TestGenerationRequestRepository_Lifecycle() {
	t := s.T()
	user := s.createUser("parent@example.com")
	profile := s.createProfile(user.ID, "Mia")
	story := s.createStory(user.ID, "The Dragon's Nap")

	req := &models.GenerationRequest{
		UserID:         user.ID,
		ChildProfileID: profile.ID,
		Length:         models.StoryLengthMedium,
	}
	require.NoError(t, s.genRepo.Create(s.ctx, req))
	require.Equal(t, models.GenerationStatusPending, req.Status)

	active, err := s.genRepo.HasActiveRequest(s.ctx, user.ID)
	require.NoError(t, err)
	require.True(t, active)

	require.NoError(t, s.genRepo.MarkGenerating(s.ctx, req.ID))

	// pending -> generating is one-shot.
	err = s.genRepo.MarkGenerating(s.ctx, req.ID)
	require.ErrorIs(t, err, models.ErrNotFound)

	require.NoError(t, s.genRepo.MarkCompleted(s.ctx, req.ID, story.ID))

	got, err := s.genRepo.GetByID(s.ctx, user.ID, req.ID)
	require.NoError(t, err)
	require.Equal(t, models.GenerationStatusCompleted, got.Status)
	require.NotNil(t, got.StoryID)
	require.Equal(t, story.ID, *got.StoryID)
	require.Nil(t, got.ErrorMessage)

	// Terminal states never change again.
	err = s.genRepo.MarkFailed(s.ctx, req.ID, "too late")
	require.ErrorIs(t, err, models.ErrNotFound)

	active, err = s.genRepo.HasActiveRequest(s.ctx, user.ID)
	require.NoError(t, err)
	require.False(t, active)
}

func (s *RepositoryIntegrationSuite) TestGenerationRequestRepository_FailFromPending() {
	t := s.T()
	user := s.createUser("parent@example.com")
	profile := s.createProfile(user.ID, "Mia")

	req := &models.GenerationRequest{
		UserID:         user.ID,
		ChildProfileID: profile.ID,
		Length:         models.StoryLengthShort,
	}
	require.NoError(t, s.genRepo.Create(s.ctx, req))

	require.NoError(t, s.genRepo.MarkFailed(s.ctx, req.ID, "model unavailable"))

	got, err := s.genRepo.GetByID(s.ctx, user.ID, req.ID)
	require.NoError(t, err)
	require.Equal(t, models.GenerationStatusFailed, got.Status)
	require.NotNil(t, got.ErrorMessage)
	require.Equal(t, "model unavailable", *got.ErrorMessage)
	require.Nil(t, got.StoryID)
}

func (s *RepositoryIntegrationSuite) TestGenerationRequestRepository_OneActivePerUser() {
	t := s.T()
	user := s.createUser("parent@example.com")
	other := s.createUser("other@example.com")
	profile := s.createProfile(user.ID, "Mia")
	otherProfile := s.createProfile(other.ID, "Theo")

	first := &models.GenerationRequest{
		UserID:         user.ID,
		ChildProfileID: profile.ID,
		Length:         models.StoryLengthMedium,
	}
	require.NoError(t, s.genRepo.Create(s.ctx, first))

	// The unique partial index rejects a second in-flight request even when
	// the insert never went through the HasActiveRequest check.
	second := &models.GenerationRequest{
		UserID:         user.ID,
		ChildProfileID: profile.ID,
		Length:         models.StoryLengthShort,
	}
	err := s.genRepo.Create(s.ctx, second)
	require.ErrorIs(t, err, models.ErrUserHasActiveGeneration)

	// Still rejected while the first request is generating.
	require.NoError(t, s.genRepo.MarkGenerating(s.ctx, first.ID))
	err = s.genRepo.Create(s.ctx, second)
	require.ErrorIs(t, err, models.ErrUserHasActiveGeneration)

	// Other users are unaffected.
	require.NoError(t, s.genRepo.Create(s.ctx, &models.GenerationRequest{
		UserID:         other.ID,
		ChildProfileID: otherProfile.ID,
		Length:         models.StoryLengthMedium,
	}))

	// Once the first request is terminal, the user can submit again.
	require.NoError(t, s.genRepo.MarkFailed(s.ctx, first.ID, "model unavailable"))
	require.NoError(t, s.genRepo.Create(s.ctx, second))
}

func (s *RepositoryIntegrationSuite) TestAuthService_RegisterLoginRefresh() {
	t := s.T()
	ctx := context.Background()

	user, tokens, err := s.authService.Register(ctx, "parent@example.com", "password123", "Pat")
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, user.ID)
	require.NotEmpty(t, tokens.AccessToken)
	require.NotEmpty(t, tokens.RefreshToken)

	claims, err := s.authService.VerifyAccessToken(ctx, tokens.AccessToken)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.UserID)

	loginTokens, err := s.authService.Login(ctx, "parent@example.com", "password123")
	require.NoError(t, err)
	require.NotEmpty(t, loginTokens.AccessToken)

	_, err = s.authService.Login(ctx, "parent@example.com", "wrongpassword")
	require.ErrorIs(t, err, models.ErrInvalidCredentials)

	rotated, err := s.authService.Refresh(ctx, loginTokens.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, rotated.AccessToken)

	// The old refresh token is revoked after rotation.
	_, err = s.authService.Refresh(ctx, loginTokens.RefreshToken)
	require.ErrorIs(t, err, models.ErrTokenNotFound)
}
