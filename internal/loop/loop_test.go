package loop_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tomz197/stressgame/internal/game"
	"github.com/tomz197/stressgame/internal/game/config"
	"github.com/tomz197/stressgame/internal/input"
	"github.com/tomz197/stressgame/internal/loop"
	"github.com/tomz197/stressgame/internal/loop/mocks"
	"github.com/tomz197/stressgame/internal/object"
	"github.com/tomz197/stressgame/internal/render"
	"go.uber.org/mock/gomock"
)

func quietGame() *game.Game {
	return game.New(game.WithWaves(func() object.WaveSource { return object.NoWaves }))
}

func TestClientTogglesAndPresents(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockActionSource(ctrl)
	presenter := mocks.NewMockPresenter(ctrl)

	gomock.InOrder(
		src.EXPECT().Poll().Return([]input.Action{input.ActionToggle}),
		src.EXPECT().Poll().Return(nil),
	)

	var labels []string
	presenter.EXPECT().Present(gomock.Any()).Times(2).DoAndReturn(func(f *render.Frame) error {
		labels = append(labels, f.ControlLabel)
		if f.Count(render.KindCircle, render.Shooter) != 1 {
			t.Errorf("frame has no shooter")
		}
		return nil
	})

	g := quietGame()
	c := loop.NewClient(g, src, presenter, loop.ClientOptions{})

	now := time.Now()
	for i := range 2 {
		done, err := c.Step(now, config.TargetFrameTime)
		if done || err != nil {
			t.Fatalf("step %d: done=%v err=%v", i, done, err)
		}
		now = now.Add(config.TargetFrameTime)
	}

	if g.Phase() != game.PhaseActive {
		t.Fatalf("phase = %v, want active", g.Phase())
	}
	if labels[0] != config.RestartLabel || labels[1] != config.RestartLabel {
		t.Fatalf("labels = %v", labels)
	}
	if g.Session().Frame != 2 {
		t.Fatalf("frames = %d, want 2", g.Session().Frame)
	}
}

func TestClientRoutesActions(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockActionSource(ctrl)
	presenter := mocks.NewMockPresenter(ctrl)

	src.EXPECT().Poll().Return([]input.Action{input.ActionToggle, input.ActionBoost, input.ActionTheme})
	presenter.EXPECT().Present(gomock.Any()).Return(nil)

	g := quietGame()
	c := loop.NewClient(g, src, presenter, loop.ClientOptions{})
	if _, err := c.Step(time.Now(), config.TargetFrameTime); err != nil {
		t.Fatal(err)
	}

	want := config.InitialBulletFrequency + config.BoostBulletFrequency + config.BulletFrequencyRamp
	if got := g.Session().BulletFrequency; got < want-1e-9 || got > want+1e-9 {
		t.Fatalf("bullet frequency = %v, want %v", got, want)
	}
	if g.Theme() != render.ThemeDark {
		t.Fatalf("theme = %v, want dark", g.Theme())
	}
}

func TestClientQuit(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockActionSource(ctrl)
	presenter := mocks.NewMockPresenter(ctrl)

	src.EXPECT().Poll().Return([]input.Action{input.ActionQuit})
	presenter.EXPECT().Present(gomock.Any()).Times(0)

	c := loop.NewClient(quietGame(), src, presenter, loop.ClientOptions{})
	done, err := c.Step(time.Now(), 0)
	if !done || err != nil {
		t.Fatalf("done=%v err=%v, want done without error", done, err)
	}
}

func TestClientPresentError(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockActionSource(ctrl)
	presenter := mocks.NewMockPresenter(ctrl)

	broken := errors.New("broken pipe")
	src.EXPECT().Poll().Return(nil)
	presenter.EXPECT().Present(gomock.Any()).Return(broken)

	c := loop.NewClient(quietGame(), src, presenter, loop.ClientOptions{})
	done, err := c.Step(time.Now(), 0)
	if !done || !errors.Is(err, broken) {
		t.Fatalf("done=%v err=%v, want wrapped %v", done, err, broken)
	}
}

func TestClientIdleTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockActionSource(ctrl)
	presenter := mocks.NewMockPresenter(ctrl)

	src.EXPECT().Poll().Return(nil).Times(3)
	presenter.EXPECT().Present(gomock.Any()).Return(nil).Times(2)

	c := loop.NewClient(quietGame(), src, presenter, loop.ClientOptions{IdleTimeout: time.Second})

	start := time.Now()
	if done, err := c.Step(start, 0); done || err != nil {
		t.Fatalf("first step: done=%v err=%v", done, err)
	}
	if done, err := c.Step(start.Add(time.Second), 0); done || err != nil {
		t.Fatalf("at the limit: done=%v err=%v", done, err)
	}
	done, err := c.Step(start.Add(2*time.Second), 0)
	if !done || !errors.Is(err, loop.ErrIdle) {
		t.Fatalf("done=%v err=%v, want ErrIdle", done, err)
	}
}

func TestClientRunStopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockActionSource(ctrl)
	presenter := mocks.NewMockPresenter(ctrl)

	src.EXPECT().Poll().Return(nil).AnyTimes()
	presenter.EXPECT().Present(gomock.Any()).Return(nil).MinTimes(1)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	c := loop.NewClient(quietGame(), src, presenter, loop.ClientOptions{FrameTime: time.Millisecond})
	if err := c.Run(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Run() = %v, want deadline exceeded", err)
	}
}

func TestClientRunReturnsOnQuit(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockActionSource(ctrl)
	presenter := mocks.NewMockPresenter(ctrl)

	gomock.InOrder(
		src.EXPECT().Poll().Return([]input.Action{input.ActionToggle}),
		src.EXPECT().Poll().Return(nil).Times(2),
		src.EXPECT().Poll().Return([]input.Action{input.ActionQuit}),
	)
	presenter.EXPECT().Present(gomock.Any()).Return(nil).Times(3)

	c := loop.NewClient(quietGame(), src, presenter, loop.ClientOptions{FrameTime: time.Millisecond})
	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run() = %v, want nil", err)
	}
}
