package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/avc-dev/shortlinks/internal/config"
	"github.com/avc-dev/shortlinks/internal/mocks"
	"github.com/avc-dev/shortlinks/internal/model"
	"github.com/avc-dev/shortlinks/internal/repository"
	"github.com/avc-dev/shortlinks/internal/service"
	"github.com/avc-dev/shortlinks/internal/store"
	"github.com/avc-dev/shortlinks/internal/usecase"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testEnv struct {
	shell  *Shell
	store  *store.Store
	opener *mocks.MockOpener
	out    *bytes.Buffer
	owner  uuid.UUID
}

func newTestEnv(t *testing.T, input string) *testEnv {
	t.Helper()

	st := store.NewStore()
	repo := repository.New(st)
	cfg := config.NewDefaultConfig()
	opener := mocks.NewMockOpener(t)
	uc := usecase.NewLinkUsecase(repo, service.NewLinkService(repo, cfg), opener, cfg, zap.NewNop())

	out := &bytes.Buffer{}
	owner := uuid.New()

	return &testEnv{
		shell:  New(uc, owner, strings.NewReader(input), out, zap.NewNop()),
		store:  st,
		opener: opener,
		out:    out,
		owner:  owner,
	}
}

func (e *testEnv) onlyLink(t *testing.T) model.Link {
	t.Helper()

	links := e.store.ListAll()
	require.Len(t, links, 1)
	return links[0]
}

func TestRun_Banner(t *testing.T) {
	// Arrange
	env := newTestEnv(t, "")

	// Act
	err := env.shell.Run(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Contains(t, env.out.String(), "Your UUID: "+env.owner.String())
	assert.Contains(t, env.out.String(), "Commands: create <url>")
}

func TestRun_CreateAndList(t *testing.T) {
	// Arrange
	env := newTestEnv(t, "create https://example.com --limit 2 --ttl-hours 5\nlist\nexit\ncreate https://never.example\n")

	// Act
	err := env.shell.Run(context.Background())

	// Assert
	require.NoError(t, err)
	link := env.onlyLink(t)
	assert.Equal(t, 2, link.MaxClicks)
	assert.Equal(t, link.CreatedAt.Add(5*time.Hour), link.ExpiresAt)

	expectedLine := fmt.Sprintf("http://localhost:8080/u/%s | https://example.com | clicks 0/2 | exp %s | active=true",
		link.ID, link.ExpiresAt.Format(time.RFC3339))
	assert.Equal(t, 2, strings.Count(env.out.String(), expectedLine))
}

func TestRun_CreateUnlimited(t *testing.T) {
	// Arrange
	env := newTestEnv(t, "create https://example.com\n")

	// Act
	err := env.shell.Run(context.Background())

	// Assert
	require.NoError(t, err)
	link := env.onlyLink(t)
	assert.Equal(t, 0, link.MaxClicks)
	assert.Contains(t, env.out.String(), "clicks 0/∞")
}

func TestExecute_OpenResults(t *testing.T) {
	// Arrange
	env := newTestEnv(t, "")
	require.NoError(t, env.shell.Execute("create https://example.com --limit 1"))
	link := env.onlyLink(t)
	env.opener.EXPECT().Open("https://example.com").Return(nil).Once()
	env.out.Reset()

	// Act
	require.NoError(t, env.shell.Execute("open "+link.ID.String()))
	require.NoError(t, env.shell.Execute("open "+link.ID.String()))
	require.NoError(t, env.shell.Execute("open "+link.ID.String()))
	require.NoError(t, env.shell.Execute("open missing1"))

	// Assert
	assert.Equal(t, "Opened in browser\nClick limit exceeded: access blocked\nLink inactive\nLink not found\n", env.out.String())
}

func TestExecute_OwnerCommands(t *testing.T) {
	// Arrange
	env := newTestEnv(t, "")
	require.NoError(t, env.shell.Execute("create https://example.com"))
	link := env.onlyLink(t)
	env.out.Reset()

	// Act
	require.NoError(t, env.shell.Execute("set-limit "+link.ID.String()+" 7"))
	require.NoError(t, env.shell.Execute("set-ttl "+link.ID.String()+" 48"))
	updated := env.onlyLink(t)
	require.NoError(t, env.shell.Execute("delete "+link.ID.String()))

	// Assert
	assert.Equal(t, "Updated limit\nUpdated TTL\nDeleted\n", env.out.String())
	assert.Equal(t, 7, updated.MaxClicks)
	assert.Equal(t, link.CreatedAt.Add(48*time.Hour), updated.ExpiresAt)
	assert.Equal(t, 0, env.store.Len())
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		expectedErr error
	}{
		{name: "Create without URL", line: "create", expectedErr: usecase.ErrInvalidInput},
		{name: "Create with bad scheme", line: "create ftp://example.com", expectedErr: usecase.ErrInvalidURL},
		{name: "Create with bad limit", line: "create https://example.com --limit many", expectedErr: usecase.ErrInvalidInput},
		{name: "Create with unknown flag", line: "create https://example.com --color red", expectedErr: usecase.ErrInvalidInput},
		{name: "Create with extra argument", line: "create https://example.com extra", expectedErr: usecase.ErrInvalidInput},
		{name: "Open without id", line: "open", expectedErr: usecase.ErrInvalidInput},
		{name: "Delete unknown link", line: "delete missing1", expectedErr: usecase.ErrLinkNotFound},
		{name: "Set limit not a number", line: "set-limit missing1 ten", expectedErr: usecase.ErrInvalidInput},
		{name: "Set TTL missing hours", line: "set-ttl missing1", expectedErr: usecase.ErrInvalidInput},
		{name: "Create with zero TTL", line: "create https://example.com --ttl-hours 0", expectedErr: usecase.ErrInvalidInput},
		{
			name:        "Create with TTL overflowing duration",
			line:        fmt.Sprintf("create https://example.com --ttl-hours %d", usecase.MaxTTLHours+1),
			expectedErr: usecase.ErrInvalidInput,
		},
		{
			name:        "Set TTL overflowing duration",
			line:        fmt.Sprintf("set-ttl missing1 %d", usecase.MaxTTLHours+1),
			expectedErr: usecase.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			env := newTestEnv(t, "")

			// Act
			err := env.shell.Execute(tt.line)

			// Assert
			require.ErrorIs(t, err, tt.expectedErr)
			assert.Equal(t, 0, env.store.Len())
		})
	}
}

func TestExecute_ForbiddenForOtherOwner(t *testing.T) {
	// Arrange
	env := newTestEnv(t, "")
	foreign := model.Link{
		ID:        "foreign1",
		Owner:     uuid.New(),
		Target:    "https://example.com",
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
		Active:    true,
	}
	env.store.Upsert(foreign)

	// Act & Assert
	require.ErrorIs(t, env.shell.Execute("delete foreign1"), usecase.ErrForbidden)
	require.ErrorIs(t, env.shell.Execute("set-limit foreign1 3"), usecase.ErrForbidden)
	require.ErrorIs(t, env.shell.Execute("set-ttl foreign1 3"), usecase.ErrForbidden)

	stored, err := env.store.Get("foreign1")
	require.NoError(t, err)
	assert.Equal(t, foreign, stored)
}

func TestRun_PrintsErrorsAndContinues(t *testing.T) {
	// Arrange
	env := newTestEnv(t, "delete missing1\nbogus\nhelp\n")

	// Act
	err := env.shell.Run(context.Background())

	// Assert
	require.NoError(t, err)
	output := env.out.String()
	assert.Contains(t, output, "Error: link not found: missing1")
	assert.Contains(t, output, "Unknown command. Type 'help'.")
	assert.Contains(t, output, "set-ttl <id> <hours>\nexit\n")
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	// Arrange
	reader, writer := io.Pipe()
	defer writer.Close()

	env := newTestEnv(t, "")
	env.shell.in = reader
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	// Act
	go func() { done <- env.shell.Run(ctx) }()
	cancel()

	// Assert
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("command loop did not stop")
	}
	env.opener.AssertNotCalled(t, "Open", mock.Anything)
}
