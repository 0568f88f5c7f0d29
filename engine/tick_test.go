package engine

import (
	"io"
	"math/rand"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/pellet-run/ai"
	"github.com/lixenwraith/pellet-run/core"
	"github.com/lixenwraith/pellet-run/maze"
	"github.com/lixenwraith/pellet-run/navigation"
	"github.com/lixenwraith/pellet-run/parameter"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// worldFromRows builds a world over a handcrafted layout for
// deterministic tick tests. Legend: '#' wall, '.' empty, 'o' dot,
// 'P' power pellet, 'B' bonus dot, 'T' teleporter, 'S' safe zone.
// The player starts at playerPos with no heading and a speed threshold
// of one so it steps every tick.
func worldFromRows(rows []string, playerPos core.Point) (*World, *MockTimeProvider) {
	mock := NewMockTimeProvider(testEpoch)
	g := maze.NewGrid(len(rows[0]), len(rows))

	var teleporters []core.Point
	dots := 0
	for y, row := range rows {
		for x, ch := range row {
			p := core.Point{X: x, Y: y}
			switch ch {
			case '#':
				g.Set(p, maze.Wall)
			case '.':
				g.Set(p, maze.Empty)
			case 'o':
				g.Set(p, maze.Dot)
				dots++
			case 'P':
				g.Set(p, maze.PowerPellet)
			case 'B':
				g.Set(p, maze.BonusDot)
			case 'T':
				g.Set(p, maze.Teleporter)
				teleporters = append(teleporters, p)
			case 'S':
				g.Set(p, maze.SafeZone)
			}
		}
	}
	if len(teleporters) == 2 {
		g.TeleporterPairs = append(g.TeleporterPairs, [2]core.Point{teleporters[0], teleporters[1]})
	}

	w := &World{
		state:      newGameState(),
		clock:      NewPausableClock(mock),
		scheduler:  NewScheduler(),
		generation: 1,
		rng:        rand.New(rand.NewSource(1)),
		log:        quietLogger(),
	}
	w.level = &maze.Level{
		Grid:           g,
		PlayerSpawn:    playerPos,
		AdversarySpawn: playerPos,
		TotalDots:      dots,
	}
	w.finder = navigation.NewFinder(
		g.Width, g.Height,
		func(x, y int) bool { return g.IsWall(core.Point{X: x, Y: y}) },
		parameter.PathCacheCapacity,
		parameter.PathCacheTTL,
		func() time.Time { return w.clock.Now() },
	)
	w.state.TotalDots = dots
	w.state.BaseSpeed = 1
	w.player.resetAt(playerPos)
	return w, mock
}

// pinned returns an adversary boxed so tightly it can never move
func pinned(pos core.Point) *ai.Adversary {
	return &ai.Adversary{Pos: pos, Spawn: pos, Kind: ai.Random}
}

// TestDotScoringAndCombo verifies base score, combo bonus growth inside
// the window and combo reset beyond it
func TestDotScoringAndCombo(t *testing.T) {
	w, mock := worldFromRows([]string{
		"#######",
		"#.ooo.#",
		"#######",
	}, core.Point{X: 1, Y: 1})

	w.Steer(core.DirRight)

	// First dot: base score only
	w.Tick()
	if w.state.Score != parameter.DotScore {
		t.Fatalf("first dot scored %d, want %d", w.state.Score, parameter.DotScore)
	}
	if w.state.Combo != 1 {
		t.Fatalf("combo %d after first dot, want 1", w.state.Combo)
	}

	// Second dot half a window later: combo 2, one bonus step
	mock.Advance(500 * time.Millisecond)
	w.Tick()
	want := 2*parameter.DotScore + parameter.DotComboBonus
	if w.state.Score != want {
		t.Errorf("score %d after combo dot, want %d", w.state.Score, want)
	}
	if w.state.Combo != 2 {
		t.Errorf("combo %d, want 2", w.state.Combo)
	}

	// Third dot past the window: chain restarts, no bonus
	mock.Advance(2 * time.Second)
	w.Tick()
	want += parameter.DotScore
	if w.state.Score != want {
		t.Errorf("score %d after stale-window dot, want %d", w.state.Score, want)
	}
	if w.state.Combo != 1 {
		t.Errorf("combo %d after window lapse, want 1", w.state.Combo)
	}
}

// TestPauseFreezesComboWindow verifies a pause does not break a combo
// because the window runs on game time
func TestPauseFreezesComboWindow(t *testing.T) {
	w, mock := worldFromRows([]string{
		"#######",
		"#.oo..#",
		"#######",
	}, core.Point{X: 1, Y: 1})

	w.Steer(core.DirRight)
	w.Tick()

	w.TogglePause()
	mock.Advance(time.Minute)
	w.TogglePause()

	w.Tick()
	if w.state.Combo != 2 {
		t.Errorf("combo %d after paused gap, want 2", w.state.Combo)
	}
}

// TestPelletScaresRosterAndExpiresTogether verifies the shared scared
// countdown flips the whole roster at once
func TestPelletScaresRosterAndExpiresTogether(t *testing.T) {
	w, _ := worldFromRows([]string{
		"#########",
		"#.P.#.#.#",
		"#########",
	}, core.Point{X: 1, Y: 1})
	w.roster = []*ai.Adversary{pinned(core.Point{X: 5, Y: 1}), pinned(core.Point{X: 7, Y: 1})}

	w.Steer(core.DirRight)
	w.Tick()

	if w.state.Score != parameter.PelletScore {
		t.Fatalf("pellet scored %d, want %d", w.state.Score, parameter.PelletScore)
	}
	for i, adv := range w.roster {
		if !adv.Scared {
			t.Fatalf("adversary %d not scared after pellet", i)
		}
	}

	// Run the countdown out; nobody drops scared early
	for w.state.PowerTicks > 1 {
		w.Tick()
		for i, adv := range w.roster {
			if !adv.Scared {
				t.Fatalf("adversary %d dropped scared at %d remaining ticks", i, w.state.PowerTicks)
			}
		}
	}
	w.Tick()
	for i, adv := range w.roster {
		if adv.Scared {
			t.Errorf("adversary %d still scared after expiry", i)
		}
	}
}

// TestCaptureScoring verifies eating a scared adversary pays the
// level-scaled bounty and sends it home
func TestCaptureScoring(t *testing.T) {
	w, _ := worldFromRows([]string{
		"#####",
		"#...#",
		"#####",
	}, core.Point{X: 1, Y: 1})
	spawn := core.Point{X: 3, Y: 1}
	adv := pinned(core.Point{X: 2, Y: 1})
	adv.Spawn = spawn
	adv.Scared = true
	w.roster = []*ai.Adversary{adv}
	w.state.PowerTicks = 100
	w.state.Level = 4
	w.state.Multiplier = 2

	w.Steer(core.DirRight)
	w.Tick()

	want := (parameter.CaptureBaseScore + parameter.CapturePerLevel*4) * 2
	if w.state.Score != want {
		t.Errorf("capture scored %d, want %d", w.state.Score, want)
	}
	if adv.Pos != spawn || adv.Scared {
		t.Errorf("captured adversary left as %+v", adv)
	}
	if w.state.Lives != parameter.StartingLives {
		t.Errorf("capture cost a life")
	}
}

// TestDeathResetsPositionsAndCombo verifies a normal-state collision
// costs a life and resets the field
func TestDeathResetsPositionsAndCombo(t *testing.T) {
	w, _ := worldFromRows([]string{
		"######",
		"#.o..#",
		"######",
	}, core.Point{X: 1, Y: 1})
	advSpawn := core.Point{X: 4, Y: 1}
	adv := pinned(core.Point{X: 3, Y: 1})
	adv.Spawn = advSpawn
	w.roster = []*ai.Adversary{adv}

	w.Steer(core.DirRight)
	w.Tick() // dot at (2,1), combo 1
	w.Tick() // step into the adversary

	if w.state.Lives != parameter.StartingLives-1 {
		t.Fatalf("lives %d after death, want %d", w.state.Lives, parameter.StartingLives-1)
	}
	if w.state.Combo != 0 {
		t.Errorf("combo %d survived death, want 0", w.state.Combo)
	}
	if w.player.Pos != w.level.PlayerSpawn {
		t.Errorf("player at %v after death, want spawn %v", w.player.Pos, w.level.PlayerSpawn)
	}
	if adv.Pos != advSpawn {
		t.Errorf("adversary at %v after death, want spawn %v", adv.Pos, advSpawn)
	}
	if w.state.Phase != PhasePlaying {
		t.Errorf("phase %v with lives remaining", w.state.Phase)
	}
}

// TestGameOverOnLastLife verifies the run ends when the last life goes
func TestGameOverOnLastLife(t *testing.T) {
	w, _ := worldFromRows([]string{
		"#####",
		"#...#",
		"#####",
	}, core.Point{X: 1, Y: 1})
	w.roster = []*ai.Adversary{pinned(core.Point{X: 2, Y: 1})}
	w.state.Lives = 1

	w.Steer(core.DirRight)
	w.Tick()

	if w.state.Phase != PhaseGameOver {
		t.Fatalf("phase %v after last life, want game over", w.state.Phase)
	}
	if !w.clock.IsPaused() {
		t.Error("clock still running after game over")
	}
	w.Tick()
	if w.state.Phase != PhaseGameOver {
		t.Error("tick advanced a finished game")
	}
}

// TestLevelCompleteOnLastDot verifies collecting every dot freezes the
// run for the upgrade screen
func TestLevelCompleteOnLastDot(t *testing.T) {
	w, _ := worldFromRows([]string{
		"#####",
		"#.o.#",
		"#####",
	}, core.Point{X: 1, Y: 1})

	w.Steer(core.DirRight)
	w.Tick()

	if w.state.Phase != PhaseUpgrading {
		t.Fatalf("phase %v after last dot, want upgrading", w.state.Phase)
	}
	if !w.clock.IsPaused() {
		t.Error("clock still running on the upgrade screen")
	}
}

// TestBonusDotGrantsLife verifies the bonus dot pays score and a life
func TestBonusDotGrantsLife(t *testing.T) {
	w, _ := worldFromRows([]string{
		"#####",
		"#.B.#",
		"#####",
	}, core.Point{X: 1, Y: 1})

	w.Steer(core.DirRight)
	w.Tick()

	if w.state.Score != parameter.BonusScore {
		t.Errorf("bonus scored %d, want %d", w.state.Score, parameter.BonusScore)
	}
	if w.state.Lives != parameter.StartingLives+1 {
		t.Errorf("lives %d after bonus, want %d", w.state.Lives, parameter.StartingLives+1)
	}
}

// TestTeleporterMovesPlayer verifies stepping on a pad lands on its pair
func TestTeleporterMovesPlayer(t *testing.T) {
	w, _ := worldFromRows([]string{
		"#######",
		"#.T.T.#",
		"#######",
	}, core.Point{X: 1, Y: 1})

	w.Steer(core.DirRight)
	w.Tick()

	if want := (core.Point{X: 4, Y: 1}); w.player.Pos != want {
		t.Errorf("player at %v after teleport, want %v", w.player.Pos, want)
	}
}

// TestSafeZoneBoostAndScheduledRevert verifies the speed boost applies
// on entry and reverts when its game-time deadline passes
func TestSafeZoneBoostAndScheduledRevert(t *testing.T) {
	w, mock := worldFromRows([]string{
		"####",
		"#.S#",
		"####",
	}, core.Point{X: 1, Y: 1})
	w.state.BaseSpeed = parameter.PlayerBaseSpeed

	w.Steer(core.DirRight)
	for i := 0; i < parameter.PlayerBaseSpeed; i++ {
		w.Tick()
	}

	if !w.state.Boosted {
		t.Fatal("safe zone entry did not boost")
	}
	if got := w.state.PlayerSpeed(); got != parameter.PlayerBaseSpeed-parameter.SafeZoneBoost {
		t.Errorf("boosted speed %d, want %d", got, parameter.PlayerBaseSpeed-parameter.SafeZoneBoost)
	}

	mock.Advance(parameter.SafeZoneBoostDuration + time.Second)
	w.Tick()
	if w.state.Boosted {
		t.Error("boost survived its deadline")
	}
}

// TestBoostRevertDiscardedAcrossLevels verifies a scheduled revert from
// an old level never fires into the new one
func TestBoostRevertDiscardedAcrossLevels(t *testing.T) {
	w, mock := worldFromRows([]string{
		"####",
		"#.S#",
		"####",
	}, core.Point{X: 1, Y: 1})

	fired := false
	w.scheduleIn(parameter.SafeZoneBoostDuration, func() { fired = true })
	w.generation++ // level transition invalidates the revert

	mock.Advance(parameter.SafeZoneBoostDuration + time.Second)
	w.Tick()
	if fired {
		t.Error("stale scheduled effect fired after level transition")
	}
	if w.scheduler.Len() != 0 {
		t.Error("stale effect left pending")
	}
}

// TestStaleBoostRevertSparesNewBoost verifies a revert armed by an
// earlier safe zone entry cannot cut short a boost gained after that
// first boost ended early
func TestStaleBoostRevertSparesNewBoost(t *testing.T) {
	w, mock := worldFromRows([]string{
		"#####",
		"#.S.#",
		"#####",
	}, core.Point{X: 1, Y: 1})
	d := parameter.SafeZoneBoostDuration

	w.Steer(core.DirRight)
	w.Tick() // onto the safe zone, revert armed
	if !w.state.Boosted {
		t.Fatal("safe zone entry did not boost")
	}

	// Death ends the boost early; its revert stays pending
	w.state.Boosted = false
	w.Tick() // step off the zone

	mock.Advance(d / 2)
	w.Steer(core.DirLeft)
	w.Tick() // back onto the zone, fresh boost
	if !w.state.Boosted {
		t.Fatal("re-entry did not boost")
	}

	// Past the first revert's deadline, before the second's
	mock.Advance(d/2 + time.Second)
	w.Tick()
	if !w.state.Boosted {
		t.Fatal("revert from the ended boost cut the new boost short")
	}

	mock.Advance(d)
	w.Tick()
	if w.state.Boosted {
		t.Error("boost survived its own deadline")
	}
}

// TestPauseBlocksTicks verifies the simulation is inert while paused
func TestPauseBlocksTicks(t *testing.T) {
	w, _ := worldFromRows([]string{
		"#####",
		"#.o.#",
		"#####",
	}, core.Point{X: 1, Y: 1})

	w.Steer(core.DirRight)
	w.TogglePause()
	w.Tick()

	if w.player.Pos != (core.Point{X: 1, Y: 1}) {
		t.Error("player moved while paused")
	}
	if w.state.Score != 0 {
		t.Error("score changed while paused")
	}
}

// TestBufferedTurnTakesCorner verifies an early turn request is held
// until its cell opens
func TestBufferedTurnTakesCorner(t *testing.T) {
	w, _ := worldFromRows([]string{
		"#####",
		"#...#",
		"###.#",
		"#####",
	}, core.Point{X: 1, Y: 1})

	w.Steer(core.DirRight)
	w.Tick()
	// Down is blocked here; the request rides along until the corner
	w.Steer(core.DirDown)
	w.Tick()
	if want := (core.Point{X: 3, Y: 1}); w.player.Pos != want {
		t.Fatalf("player at %v mid-corridor, want %v", w.player.Pos, want)
	}

	w.Tick()
	if want := (core.Point{X: 3, Y: 2}); w.player.Pos != want {
		t.Errorf("player at %v, want corner turn to %v", w.player.Pos, want)
	}
}
