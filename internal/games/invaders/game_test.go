package invaders

import (
	"testing"

	"github.com/dkarpov/arcadium/internal/core"
	"github.com/dkarpov/arcadium/internal/engine"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     98765,
	}
}

// inputScript alternates ship sweeps with constant fire.
func inputScript(n int) []core.InputFrame {
	seq := make([]core.InputFrame, n)
	for i := range seq {
		seq[i] = core.NewInputFrame()
		seq[i].Hold(core.ActionFire)
		if i%60 < 30 {
			seq[i].Hold(core.ActionRight)
		} else {
			seq[i].Hold(core.ActionLeft)
		}
	}
	return seq
}

func TestGameDeterminism(t *testing.T) {
	seq := inputScript(600)

	run := func() Snapshot {
		g := New()
		g.Reset(testConfig())
		for _, in := range seq {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", snap1.Score, snap2.Score)
	}
}

func TestGameReset(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	before := g.Snapshot()

	for _, in := range inputScript(300) {
		g.Step(in)
	}

	g.Reset(testConfig())
	after := g.Snapshot()

	if before.Hash() != after.Hash() {
		t.Error("Reset did not restore the initial snapshot")
	}
}

func TestInvadersSpawnOverTime(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	in := core.NewInputFrame()
	ticks := g.cfg.Spawning.InitialDelay + 3*g.cfg.Spawning.EveryTicks
	for i := 0; i < ticks; i++ {
		g.Step(in)
	}

	if n := g.eng.Store().CountKind(engine.KindNPC); n < 2 {
		t.Errorf("invaders after %d ticks = %d, want at least 2", ticks, n)
	}
	if n := g.eng.Store().CountKind(engine.KindNPC); n > g.cfg.Spawning.MaxLive {
		t.Errorf("invaders = %d, want at most MaxLive %d", n, g.cfg.Spawning.MaxLive)
	}
}

func TestFireCooldownLimitsBullets(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	in := core.NewInputFrame()
	in.Hold(core.ActionFire)
	for i := 0; i < g.cfg.Gameplay.FireCooldown; i++ {
		g.Step(in)
	}

	// Constant fire through one cooldown window yields exactly one bullet.
	if n := g.eng.Store().CountKind(engine.KindProjectile); n != 1 {
		t.Errorf("bullets = %d, want 1 within one cooldown window", n)
	}
}

func TestBulletKillsInvader(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	invader := g.eng.SpawnAt(engine.KindNPC, core.Vec(40, 10))
	bullet := g.eng.SpawnAt(engine.KindProjectile, core.Vec(40, 11))
	bullet.Vel = core.Vec(0, -30)
	iid, bid := invader.ID, bullet.ID

	before := g.eng.Session().Score
	in := core.NewInputFrame()
	for i := 0; i < 10; i++ {
		g.Step(in)
	}

	if g.eng.Store().Get(iid) != nil {
		t.Error("invader survived a bullet")
	}
	if g.eng.Store().Get(bid) != nil {
		t.Error("bullet survived the kill")
	}
	if got := g.eng.Session().Score - before; got < g.cfg.Gameplay.InvaderPoints+1 {
		t.Errorf("kill awarded %d, want at least base+streak", got)
	}

	// The kill burst leaves particles behind.
	if n := g.eng.Store().CountKind(engine.KindParticle); n == 0 {
		t.Error("no burst particles after a kill")
	}
}

func TestBaselineBreachCostsLife(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	lives := g.eng.Session().Lives

	inv := g.eng.SpawnAt(engine.KindNPC, core.Vec(10, g.baselineY-0.5))
	inv.Vel = core.Vec(0, 30)
	id := inv.ID

	in := core.NewInputFrame()
	for i := 0; i < 10; i++ {
		g.Step(in)
	}

	if g.eng.Store().Get(id) != nil {
		t.Error("breaching invader was not reaped")
	}
	if g.eng.Session().Lives != lives-1 {
		t.Errorf("lives = %d, want %d after a breach", g.eng.Session().Lives, lives-1)
	}
}

func TestShieldBlocksRamDamage(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	lives := g.eng.Session().Lives

	g.eng.Timers().Start(EffectShield, g.ship, 600, nil)

	ship := g.eng.Store().Get(g.ship)
	inv := g.eng.SpawnAt(engine.KindNPC, core.Vec(ship.Pos.X, ship.Pos.Y-1))
	inv.Vel = core.Vec(0, 20)
	id := inv.ID

	in := core.NewInputFrame()
	for i := 0; i < 10; i++ {
		g.Step(in)
	}

	if g.eng.Store().Get(id) != nil {
		t.Error("ramming invader not destroyed")
	}
	if g.eng.Session().Lives != lives {
		t.Errorf("lives = %d, want unchanged %d behind the shield", g.eng.Session().Lives, lives)
	}
}

func TestRamWithoutShieldCostsLife(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	lives := g.eng.Session().Lives

	ship := g.eng.Store().Get(g.ship)
	inv := g.eng.SpawnAt(engine.KindNPC, core.Vec(ship.Pos.X, ship.Pos.Y-1))
	inv.Vel = core.Vec(0, 20)

	in := core.NewInputFrame()
	for i := 0; i < 10; i++ {
		g.Step(in)
	}

	if g.eng.Session().Lives != lives-1 {
		t.Errorf("lives = %d, want %d after an unshielded ram", g.eng.Session().Lives, lives-1)
	}
}

func TestShieldPickupStartsTimer(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	ship := g.eng.Store().Get(g.ship)
	pickup := g.eng.SpawnAt(engine.KindCollectible, core.Vec(ship.Pos.X, ship.Pos.Y-1))
	pickup.Vel = core.Vec(0, 10)

	in := core.NewInputFrame()
	for i := 0; i < 15; i++ {
		g.Step(in)
	}

	if !g.eng.Timers().Active(EffectShield, g.ship) {
		t.Error("collected pickup did not start the shield timer")
	}
}
