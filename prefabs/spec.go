package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// ActorSpec is the tuning shared by the player and enemy prefabs. Zero
// fields keep the built-in defaults.
type ActorSpec struct {
	Name         string         `yaml:"name"`
	Color        *YAMLColor     `yaml:"color"`
	Resource     ResourceSpec   `yaml:"resource"`
	Body         BodySpec       `yaml:"body"`
	GroundRadius float64        `yaml:"ground_radius"`
	Locomotion   LocomotionSpec `yaml:"locomotion"`
	Attack       AttackSpec     `yaml:"attack"`
	Receiver     ReceiverSpec   `yaml:"receiver"`
	Audio        []AudioSpec    `yaml:"audio"`
}

type PlayerSpec struct {
	ActorSpec     `yaml:",inline"`
	Jump          JumpSpec  `yaml:"jump"`
	Dash          DashSpec  `yaml:"dash"`
	Slide         SlideSpec `yaml:"slide"`
	FastFall      float64   `yaml:"fast_fall"`
	RestorePerHit int       `yaml:"restore_per_hit"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type EnemySpec struct {
	ActorSpec     `yaml:",inline"`
	Hop           HopSpec       `yaml:"hop"`
	Detection     DetectionSpec `yaml:"detection"`
	ReturnToSpawn *bool         `yaml:"return_to_spawn"`
	Hops          bool          `yaml:"hops"`
	EngageScript  string        `yaml:"engage_script"`
}

func LoadEnemySpec(filename string) (*EnemySpec, error) {
	if filename == "" {
		filename = "enemy.yaml"
	}
	spec, err := LoadSpec[EnemySpec](filename)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type ResourceSpec struct {
	Max int    `yaml:"max"`
	Key string `yaml:"key"`
}

type BodySpec struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Mass         float64 `yaml:"mass"`
	GravityScale float64 `yaml:"gravity_scale"`
}

type LocomotionSpec struct {
	WalkSpeed       float64 `yaml:"walk_speed"`
	AirAcceleration float64 `yaml:"air_acceleration"`
	AirControl      float64 `yaml:"air_control"`
	AirDeceleration float64 `yaml:"air_deceleration"`
	AirTurn         float64 `yaml:"air_turn"`
}

type JumpSpec struct {
	Force            float64 `yaml:"force"`
	SecondMultiplier float64 `yaml:"second_multiplier"`
	MaxJumps         int     `yaml:"max_jumps"`
	ActionLock       float64 `yaml:"action_lock"`
	InputHold        float64 `yaml:"input_hold"`
}

type DashSpec struct {
	Speed                 float64 `yaml:"speed"`
	Duration              float64 `yaml:"duration"`
	Cooldown              float64 `yaml:"cooldown"`
	ActionLock            float64 `yaml:"action_lock"`
	HangDuration          float64 `yaml:"hang_duration"`
	HangGravityMultiplier float64 `yaml:"hang_gravity_multiplier"`
	HangSpeedMultiplier   float64 `yaml:"hang_speed_multiplier"`
	HangUpwardBoost       float64 `yaml:"hang_upward_boost"`
	DecelDuration         float64 `yaml:"decel_duration"`
}

type SlideSpec struct {
	Speed    float64 `yaml:"speed"`
	Duration float64 `yaml:"duration"`
	Cooldown float64 `yaml:"cooldown"`
}

type AttackSpec struct {
	Damage     int                           `yaml:"damage"`
	Cooldown   float64                       `yaml:"cooldown"`
	Duration   float64                       `yaml:"duration"`
	Windup     float64                       `yaml:"windup"`
	Reach      float64                       `yaml:"reach"`
	Box        SizeSpec                      `yaml:"box"`
	Directions map[string]AttackOverrideSpec `yaml:"directions"`
}

// AttackOverrideSpec replaces reach and box size for one direction.
type AttackOverrideSpec struct {
	Reach  float64 `yaml:"reach"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type SizeSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type HopSpec struct {
	Speed        float64 `yaml:"speed"`
	Force        float64 `yaml:"force"`
	Cooldown     float64 `yaml:"cooldown"`
	Timeout      float64 `yaml:"timeout"`
	LandVelocity float64 `yaml:"land_velocity"`
}

type ReceiverSpec struct {
	InvulnerabilityTime float64 `yaml:"invulnerability_time"`
	KnockbackForce      float64 `yaml:"knockback_force"`
	MaxKnockbackSpeed   float64 `yaml:"max_knockback_speed"`
	DestroyDelay        float64 `yaml:"destroy_delay"`
}

type DetectionSpec struct {
	DetectionRange      float64 `yaml:"detection_range"`
	ChaseRange          float64 `yaml:"chase_range"`
	ChaseDropBuffer     float64 `yaml:"chase_drop_buffer"`
	VerticalTolerance   float64 `yaml:"vertical_tolerance"`
	RequireLineOfSight  *bool   `yaml:"require_line_of_sight"`
	AttackRange         float64 `yaml:"attack_range"`
	AttackCooldown      float64 `yaml:"attack_cooldown"`
	Windup              float64 `yaml:"windup"`
	ReturnStopThreshold float64 `yaml:"return_stop_threshold"`
	MoveSpeed           float64 `yaml:"move_speed"`
	ReturnSpeed         float64 `yaml:"return_speed"`
}

type AudioSpec struct {
	Name   string  `yaml:"name"`
	File   string  `yaml:"file"`
	Volume float64 `yaml:"volume"`
}

// LevelSpec lays out one scene.
type LevelSpec struct {
	Name        string      `yaml:"name"`
	Hub         bool        `yaml:"hub"`
	PlayerSpawn PointSpec   `yaml:"player_spawn"`
	Ground      []BoxSpec   `yaml:"ground"`
	Enemies     []SpawnSpec `yaml:"enemies"`
	Traps       []TrapSpec  `yaml:"traps"`
}

func LoadLevelSpec(filename string) (*LevelSpec, error) {
	spec, err := LoadSpec[LevelSpec](filename)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type BoxSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SpawnSpec places an enemy prefab. Overrides holds per-spawn sections
// decoded with DecodeComponentSpec.
type SpawnSpec struct {
	Prefab    string         `yaml:"prefab"`
	X         float64        `yaml:"x"`
	Y         float64        `yaml:"y"`
	Overrides map[string]any `yaml:"overrides"`
}

type TrapSpec struct {
	X          float64 `yaml:"x"`
	Y          float64 `yaml:"y"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Delay      float64 `yaml:"delay"`
	Distance   float64 `yaml:"distance"`
	TravelTime float64 `yaml:"travel_time"`
	Upward     float64 `yaml:"upward"`
	Damage     int     `yaml:"damage"`
	Direction  float64 `yaml:"direction"`
	SingleUse  bool    `yaml:"single_use"`
}

// DecodeComponentSpec re-decodes a loosely typed yaml section into T.
func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
