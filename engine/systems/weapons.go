package systems

import (
	"math"

	"github.com/relayzero/drift-engine/engine/core"
	"github.com/relayzero/drift-engine/engine/vec"
)

const missileSpreadStep = 4 * 0.0174 // radians between volley rotations

// WeaponSystem runs all three fire controllers: point-defense pods
// (heat gated), the player railgun (cooldown gated) and the torpedo
// volley launcher (button + cooldown gated).
type WeaponSystem struct {
	Settings *core.Settings
	Input    *PilotInput

	railCooldown    float64
	missileCooldown float64
}

func (s *WeaponSystem) Priority() int { return 30 }

func (s *WeaponSystem) Update(w *core.World, dt float64) {
	s.updatePods(w, dt)
	s.updateRailgun(w, dt)
	s.updateMissiles(w, dt)
}

// ---- Point defense ----

func (s *WeaponSystem) updatePods(w *core.World, dt float64) {
	// Missiles inbound per target ship, for pod threat selection
	inbound := make(map[core.EntityID][]core.EntityID)
	for _, mid := range w.Query(core.CompMissile, core.CompMissileTarget, core.CompTransform) {
		mt := w.Get(mid, core.CompMissileTarget).(*core.MissileTarget)
		if w.Alive(mt.Target) {
			inbound[mt.Target] = append(inbound[mt.Target], mid)
		}
	}

	var playerID core.EntityID
	var playerTr *core.Transform
	if players := w.Query(core.CompPlayer, core.CompTransform); len(players) > 0 {
		playerID = players[0]
		playerTr = w.Get(playerID, core.CompTransform).(*core.Transform)
	}

	for _, id := range w.Query(core.CompBulletPod, core.CompShip, core.CompTransform, core.CompSide) {
		pod := w.Get(id, core.CompBulletPod).(*core.BulletPod)
		if pod.Heat < 0 {
			// Cooling down; climbs back toward ready
			pod.Heat += dt
			continue
		}
		pod.Heat += dt
		if pod.Heat <= s.Settings.PDCHeatLimit {
			continue
		}
		// The attempt is consumed whether or not anything fires
		pod.Heat = -s.Settings.PDCCooldown

		tr := w.Get(id, core.CompTransform).(*core.Transform)
		side := w.Get(id, core.CompSide).(*core.Side)

		if threat, ok := s.nearestThreat(w, tr, inbound[id]); ok {
			s.burstAt(w, tr, side.S, threat)
			continue
		}

		// No inbound missiles: engage the player when in range, with a
		// stochastic skip to throttle the fire rate
		if playerTr == nil || !side.S.Opposes(core.SidePlayer) {
			continue
		}
		if tr.Pos.Dist(playerTr.Pos) >= pod.Range {
			continue
		}
		if w.Rand.Float64() < s.Settings.PDCSkipChance {
			continue
		}
		s.burstAt(w, tr, side.S, playerID)
	}
}

func (s *WeaponSystem) nearestThreat(w *core.World, tr *core.Transform, missiles []core.EntityID) (core.EntityID, bool) {
	best := core.EntityID(0)
	bestDist := math.MaxFloat64
	for _, mid := range missiles {
		mtr, ok := w.Get(mid, core.CompTransform).(*core.Transform)
		if !ok {
			continue
		}
		if d := tr.Pos.Dist(mtr.Pos); d < bestDist {
			bestDist = d
			best = mid
		}
	}
	return best, best != 0
}

// burstAt fires a full slug burst at a jittered prediction of the
// target's future position, staggering activation so impacts spread
func (s *WeaponSystem) burstAt(w *core.World, tr *core.Transform, side core.SideID, target core.EntityID) {
	ttr, ok := w.Get(target, core.CompTransform).(*core.Transform)
	if !ok {
		return
	}
	var tvel vec.V2
	if v, ok := w.Get(target, core.CompVelocity).(*core.Velocity); ok {
		tvel = v.V
	}

	for i := 0; i < s.Settings.PDCBurst; i++ {
		aim := ttr.Pos.Add(tvel).Add(vec.V(
			w.Rand.Float64()*4-2,
			w.Rand.Float64()*4-2,
		))
		dir := aim.Sub(tr.Pos).Normalize()
		if dir.LenSq() == 0 {
			continue
		}
		id := w.Spawn()
		w.Attach(id, &core.Transform{Pos: tr.Pos, Rot: dir.Angle() - math.Pi/2, Scale: s.Settings.PDCSlugScale})
		w.Attach(id, &core.Velocity{V: dir.Scale(s.Settings.PDCSlugSpeed)})
		w.Attach(id, &core.ActivationTime{Remaining: float64(i) * s.Settings.PDCStagger})
		w.Attach(id, core.NewFadeout(s.Settings.PDCSlugFade))
		w.Attach(id, &core.Side{S: side})
		w.Attach(id, &core.Slug{})
		w.Attach(id, &core.SpatialElement{Radius: 2})
		w.Attach(id, &core.GameObject{})
	}
}

// ---- Railgun ----

func (s *WeaponSystem) updateRailgun(w *core.World, dt float64) {
	s.railCooldown -= dt
	aim := s.Input.Frame.Aim
	if s.railCooldown > 0 || aim.LenSq() == 0 {
		return
	}
	players := w.Query(core.CompPlayer, core.CompTransform)
	if len(players) == 0 {
		return
	}
	tr := w.Get(players[0], core.CompTransform).(*core.Transform)

	target := tr.Pos.Add(aim.Normalize().Scale(100))
	dir := target.Sub(tr.Pos).Normalize()

	id := w.Spawn()
	w.Attach(id, &core.Transform{Pos: tr.Pos, Rot: dir.Angle() - math.Pi/2, Scale: 1})
	w.Attach(id, &core.Velocity{V: dir.Scale(s.Settings.RailgunSpeed)})
	w.Attach(id, core.NewFadeout(0.025))
	w.Attach(id, &core.Side{S: core.SidePlayer})
	w.Attach(id, &core.Rail{})
	w.Attach(id, &core.SpatialElement{Radius: 2})
	w.Attach(id, &core.GameObject{})

	s.railCooldown = s.Settings.RailgunCooldown
}

// ---- Torpedo volley ----

func (s *WeaponSystem) updateMissiles(w *core.World, dt float64) {
	s.missileCooldown -= dt
	if !s.Input.Frame.Buttons.Has(core.BtnFireMissile) || s.missileCooldown > 0 {
		return
	}
	players := w.Query(core.CompPlayer, core.CompTransform)
	if len(players) == 0 {
		return
	}
	tr := w.Get(players[0], core.CompTransform).(*core.Transform)

	// Ships the scanner currently holds in the cone
	var candidates []core.EntityID
	for _, id := range w.Query(core.CompFireTarget, core.CompTransform) {
		if w.Get(id, core.CompFireTarget).(*core.FireTarget).InCone {
			candidates = append(candidates, id)
		}
	}

	for i := 0; i < s.Settings.MissileCount; i++ {
		rot := tr.Rot + float64(i)*missileSpreadStep*s.Settings.MissileAngle
		dir := vec.FromAngle(rot + math.Pi/2)
		pos := tr.Pos.Add(tr.Right().Scale(5 + w.Rand.Float64()*0.5))
		speed := 5.0 + w.Rand.Float64()*0.5

		id := w.Spawn()
		w.Attach(id, &core.Transform{Pos: pos, Rot: rot, Scale: 1})
		w.Attach(id, &core.Velocity{V: dir.Scale(speed)})
		w.Attach(id, &core.ActivationTime{Remaining: 0.5 + w.Rand.Float64()*0.45})
		w.Attach(id, core.NewFadeout(s.Settings.MissileLifetime))
		w.Attach(id, &core.Side{S: core.SidePlayer})
		w.Attach(id, &core.Missile{})
		w.Attach(id, &core.NoiseFlight{})
		w.Attach(id, &core.SpatialElement{Radius: 5})
		w.Attach(id, &core.GameObject{})
		if len(candidates) > 0 {
			pick := candidates[w.Rand.Intn(len(candidates))]
			w.Attach(id, &core.MissileTarget{Target: pick})
		}
	}

	s.missileCooldown = s.Settings.MissileCooldown
}
