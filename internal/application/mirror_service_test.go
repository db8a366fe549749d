package application

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/bnema/droidmirror/internal/domain"
	"github.com/bnema/droidmirror/internal/ports"
	"github.com/bnema/droidmirror/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testTool = MirrorTool{Path: "/opt/scrcpy/scrcpy", Dir: "/opt/scrcpy", PathPrepend: "/opt/platform-tools"}

func newMirrorService(spawner ports.Spawner, clock ports.Clock) (*MirrorService, *SessionRegistry) {
	registry := NewSessionRegistry(nil, 0)
	return NewMirrorService(spawner, registry, testTool, clock, nil, 0), registry
}

func TestMirrorStartSpawnsAndRegisters(t *testing.T) {
	t.Parallel()

	proc := newFakeProcess(4242)
	spawner := mocks.NewMockSpawner(t)
	spawner.EXPECT().Spawn(mock.Anything, ports.SpawnRequest{
		Path: "/opt/scrcpy/scrcpy",
		Args: []string{
			"-s", "R3CN70ABCDE",
			"--max-size", "1920",
			"--video-bit-rate", "8000000",
			"--max-fps", "60",
			"--stay-awake",
		},
		Dir:         "/opt/scrcpy",
		PathPrepend: "/opt/platform-tools",
	}).Return(proc, nil).Once()

	startedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, registry := newMirrorService(spawner, &instantClock{now: startedAt})

	id, err := svc.Start(context.Background(), "R3CN70ABCDE", domain.DefaultMirrorOptions())
	require.NoError(t, err)
	assert.Equal(t, domain.SessionID("session_4242_R3CN70ABCDE"), id)
	assert.True(t, registry.IsRunning(id))

	sessions := svc.Sessions()
	require.Len(t, sessions, 1)
	assert.Equal(t, domain.SessionInfo{ID: id, DeviceID: "R3CN70ABCDE", PID: 4242, StartedAt: startedAt}, sessions[0])
}

func TestMirrorStartPropagatesSpawnError(t *testing.T) {
	t.Parallel()

	spawner := mocks.NewMockSpawner(t)
	spawner.EXPECT().Spawn(mock.Anything, mock.Anything).
		Return(nil, domain.NewError(domain.KindExec, "failed to start scrcpy: no such file", nil)).Once()

	svc, registry := newMirrorService(spawner, &instantClock{})
	_, err := svc.Start(context.Background(), "R3CN70ABCDE", domain.DefaultMirrorOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrExec))
	assert.Equal(t, 0, registry.ActiveCount())
}

func TestMirrorStartRequiresDevice(t *testing.T) {
	t.Parallel()

	svc, _ := newMirrorService(mocks.NewMockSpawner(t), &instantClock{})
	_, err := svc.Start(context.Background(), " ", domain.DefaultMirrorOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestMirrorStartManyKeepsOrderAndJoinsErrors(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	pid := 100
	spawner := mocks.NewMockSpawner(t)
	spawner.EXPECT().Spawn(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, req ports.SpawnRequest) (ports.Process, error) {
		if req.Args[1] == "BROKEN" {
			return nil, domain.NewError(domain.KindExec, "device offline", nil)
		}
		mu.Lock()
		defer mu.Unlock()
		pid++
		return newFakeProcess(pid), nil
	})

	svc, registry := newMirrorService(spawner, &instantClock{})
	results, err := svc.StartMany(context.Background(), []string{"A", "BROKEN", "C"}, domain.MirrorOptions{})
	require.Error(t, err)
	assert.ErrorContains(t, err, "start BROKEN: device offline")

	require.Len(t, results, 3)
	assert.Equal(t, "A", results[0].DeviceID)
	assert.NoError(t, results[0].Err)
	assert.Error(t, results[1].Err)
	assert.Empty(t, results[1].SessionID)
	assert.Equal(t, "C", results[2].DeviceID)
	assert.Equal(t, 2, registry.ActiveCount())
}

func TestMirrorStopAndStopAll(t *testing.T) {
	t.Parallel()

	procs := []*fakeProcess{newFakeProcess(1), newFakeProcess(2), newFakeProcess(3)}
	spawner := mocks.NewMockSpawner(t)
	for _, proc := range procs {
		spawner.EXPECT().Spawn(mock.Anything, mock.Anything).Return(proc, nil).Once()
	}

	svc, _ := newMirrorService(spawner, &instantClock{})
	ids := make([]domain.SessionID, 0, len(procs))
	for _, device := range []string{"A", "B", "C"} {
		id, err := svc.Start(context.Background(), device, domain.DefaultMirrorOptions())
		require.NoError(t, err)
		ids = append(ids, id)
	}

	require.NoError(t, svc.Stop(ids[0]))
	assert.Equal(t, 2, svc.ActiveCount())
	assert.True(t, errors.Is(svc.Stop(ids[0]), domain.ErrNotFound))

	assert.Equal(t, 2, svc.StopAll())
	assert.Equal(t, 0, svc.ActiveCount())
	for _, proc := range procs {
		assert.Equal(t, int32(1), proc.kills.Load())
	}
}

func TestMirrorSuperviseReapsUntilEmpty(t *testing.T) {
	t.Parallel()

	first := newFakeProcess(1)
	second := newFakeProcess(2)
	spawner := mocks.NewMockSpawner(t)
	spawner.EXPECT().Spawn(mock.Anything, mock.Anything).Return(first, nil).Once()
	spawner.EXPECT().Spawn(mock.Anything, mock.Anything).Return(second, nil).Once()

	clock := &tickingClock{}
	svc, _ := newMirrorService(spawner, clock)
	_, err := svc.Start(context.Background(), "A", domain.DefaultMirrorOptions())
	require.NoError(t, err)
	_, err = svc.Start(context.Background(), "B", domain.DefaultMirrorOptions())
	require.NoError(t, err)

	clock.onTick = func(tick int) {
		switch tick {
		case 1:
			first.exit(0)
		case 3:
			second.exit(1)
		}
	}

	var exited []domain.SessionID
	svc.Supervise(context.Background(), 250*time.Millisecond, func(id domain.SessionID) {
		exited = append(exited, id)
	})

	assert.Equal(t, []domain.SessionID{"session_1_A", "session_2_B"}, exited)
	assert.Equal(t, 0, svc.ActiveCount())
	assert.Equal(t, int32(0), first.kills.Load())
}

func TestMirrorSuperviseStopsSessionsOnCancel(t *testing.T) {
	t.Parallel()

	proc := newFakeProcess(7)
	spawner := mocks.NewMockSpawner(t)
	spawner.EXPECT().Spawn(mock.Anything, mock.Anything).Return(proc, nil).Once()

	svc, _ := newMirrorService(spawner, blockingClock{})
	_, err := svc.Start(context.Background(), "A", domain.DefaultMirrorOptions())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	svc.Supervise(ctx, time.Second, nil)

	assert.Equal(t, 0, svc.ActiveCount())
	assert.Equal(t, int32(1), proc.kills.Load())
}

func TestMirrorToolVersion(t *testing.T) {
	t.Parallel()

	spawner := mocks.NewMockSpawner(t)
	spawner.EXPECT().Output(mock.Anything, ports.SpawnRequest{
		Path:        "/opt/scrcpy/scrcpy",
		Args:        []string{"--version"},
		Dir:         "/opt/scrcpy",
		PathPrepend: "/opt/platform-tools",
	}).Return("scrcpy 3.1 <https://github.com/Genymobile/scrcpy>\n\nDependencies (compiled / linked):", nil).Once()

	svc, _ := newMirrorService(spawner, &instantClock{})
	version, err := svc.ToolVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "scrcpy 3.1 <https://github.com/Genymobile/scrcpy>", version)
}

// tickingClock fires immediately and runs onTick before each tick is delivered.
type tickingClock struct {
	ticks  int
	onTick func(tick int)
}

func (c *tickingClock) Now() time.Time { return time.Time{} }

func (c *tickingClock) After(d time.Duration) <-chan time.Time {
	c.ticks++
	if c.onTick != nil {
		c.onTick(c.ticks)
	}
	ch := make(chan time.Time, 1)
	ch <- time.Time{}.Add(d)
	return ch
}
