package core

// Settings holds the tunable combat, camera and feedback numbers.
// Defaults match the shipped balance; a level directory may carry a
// settings.json overriding any subset.
type Settings struct {
	// Targeting
	ScanRadius float64 `json:"scanRadius"`

	// Railgun
	RailgunCooldown float64 `json:"railgunCooldown"` // seconds between rounds
	RailgunRange    float64 `json:"railgunRange"`    // slug-intercept radius
	RailgunSpeed    float64 `json:"railgunSpeed"`    // px per tick

	// Torpedoes
	MissileCooldown float64 `json:"missileCooldown"`
	MissileLifetime float64 `json:"missileLifetime"` // fadeout rate per tick
	MissileCount    int     `json:"missileCount"`    // volley size
	MissileAngle    float64 `json:"missileAngle"`    // volley spread multiplier

	// Point defense
	PDCHeatLimit     float64 `json:"pdcHeatLimit"`
	PDCCooldown      float64 `json:"pdcCooldown"` // heat resets to -PDCCooldown
	PDCBurst         int     `json:"pdcBurst"`
	PDCStagger       float64 `json:"pdcStagger"` // per-shot activation delay
	PDCSlugSpeed     float64 `json:"pdcSlugSpeed"`
	PDCSlugScale     float64 `json:"pdcSlugScale"`
	PDCSlugFade      float64 `json:"pdcSlugFade"`
	PDCSkipChance    float64 `json:"pdcSkipChance"`    // skip draw when engaging the player
	PDCDestroyChance float64 `json:"pdcDestroyChance"` // slug lost on player proximity
	PDCDamageChance  float64 `json:"pdcDamageChance"`  // slug wounds the player
	EnemyPodLockout  float64 `json:"enemyPodLockout"`  // spawn heat debt, seconds
	EnemyPodRange    float64 `json:"enemyPodRange"`

	// Camera
	CameraSpeed    float64 `json:"cameraSpeed"`
	CameraOffset   float64 `json:"cameraOffset"`
	CameraDeadzone float64 `json:"cameraDeadzone"`

	// Feedback
	UseRumble          bool    `json:"useRumble"`
	TimeBetweenRumbles float64 `json:"timeBetweenRumbles"`

	// Enemy waves
	SpawnInterval float64 `json:"spawnInterval"`
	SpawnSpread   float64 `json:"spawnSpread"`
}

// DefaultSettings returns the shipped balance
func DefaultSettings() *Settings {
	return &Settings{
		ScanRadius:         300,
		RailgunCooldown:    0.03,
		RailgunRange:       10,
		RailgunSpeed:       4.0,
		MissileCooldown:    0.1,
		MissileLifetime:    0.01,
		MissileCount:       10,
		MissileAngle:       1.0,
		PDCHeatLimit:       5.0,
		PDCCooldown:        2.0,
		PDCBurst:           10,
		PDCStagger:         0.05,
		PDCSlugSpeed:       2.5,
		PDCSlugScale:       0.33,
		PDCSlugFade:        0.005,
		PDCSkipChance:      0.8,
		PDCDestroyChance:   0.3,
		PDCDamageChance:    0.5,
		EnemyPodLockout:    10,
		EnemyPodRange:      250,
		CameraSpeed:        0.05,
		CameraOffset:       100,
		CameraDeadzone:     150,
		UseRumble:          true,
		TimeBetweenRumbles: 0.1,
		SpawnInterval:      10,
		SpawnSpread:        400,
	}
}
