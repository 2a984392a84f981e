package pong

import "math"

const twoPi = 2 * math.Pi

// clampStep is the per-iteration correction of ClampStepwise.
const clampStep float32 = 0.01

// Simulation owns the game geometry and ball kinematics and advances them one
// tick at a time. It is not safe for concurrent use.
type Simulation struct {
	// Positions is the live vertex buffer handed to the renderer.
	Positions Buffer

	// Angle is the ball heading in radians, kept in [0, 2π).
	Angle float64
	// Speed is the ball displacement per tick in NDC units.
	Speed float64
	// Timer counts ticks since the last reset.
	Timer uint32

	start Buffer
	input *InputState
	cfg   Config
}

// NewSimulation creates a Simulation reading paddle input from input.
// A nil input leaves the human paddle still.
func NewSimulation(input *InputState, opts ...Option) *Simulation {
	cfg := buildConfig(opts)
	if input == nil {
		input = NewInputState()
	}
	s := &Simulation{
		start: StartBuffer(),
		input: input,
		cfg:   cfg,
	}
	s.Positions = s.start
	s.Angle = OpeningAngle(cfg.Rand)
	s.Speed = cfg.InitialSpeed
	return s
}

// Config returns the simulation tuning.
func (s *Simulation) Config() Config {
	return s.cfg
}

// Input returns the InputState driving the human paddle.
func (s *Simulation) Input() *InputState {
	return s.input
}

// Start returns a copy of the layout restored on every reset.
func (s *Simulation) Start() Buffer {
	return s.start
}

// Phase reports whether the ball is waiting to be served or moving.
func (s *Simulation) Phase() Phase {
	if s.Timer > s.cfg.ServeDelay {
		return PhaseInPlay
	}
	return PhaseServing
}

// BallCenter returns the mean of the ball vertices.
func (s *Simulation) BallCenter() Vec2 {
	var c Vec2
	for _, v := range s.Positions.Ball() {
		c = c.Add(v)
	}
	return c.Mul(1.0 / BallSides)
}

// Step advances the game by one tick and reports what happened.
//
// The order of the stages matters: each reads the geometry left by the
// previous one.
func (s *Simulation) Step() Event {
	var ev Event

	translateY(s.Positions.PlayerOne(), s.input.Velocity())
	s.clamp(s.Positions.PlayerOne())

	s.trackBall()
	s.clamp(s.Positions.PlayerOne())
	s.clamp(s.Positions.PlayerTwo())

	if s.hitsWall() {
		s.Angle = twoPi - s.Angle + Jitter(s.cfg.Rand, s.cfg.Variance)
		ev |= EventWallBounce
	}
	s.Angle = wrapAngle(s.Angle)

	if hit := s.paddleHit(); hit != EventNone {
		s.Angle = math.Pi - s.Angle + Jitter(s.cfg.Rand, s.cfg.Variance)
		s.Speed += s.cfg.SpeedIncrement
		ev |= hit
	}
	s.Angle = wrapAngle(s.Angle)

	if s.isOut() {
		s.Timer = 0
		ev |= EventOut
	}

	if s.Timer == 0 {
		s.reset()
		ev |= EventReset
	}

	if s.Timer > s.cfg.ServeDelay {
		if s.Timer == s.cfg.ServeDelay+1 {
			ev |= EventServe
		}
		s.advanceBall()
	}

	s.Timer++
	return ev
}

func (s *Simulation) reset() {
	s.Positions = s.start
	s.Angle = s.cfg.ServeAngle(s.cfg.Rand)
	s.Speed = s.cfg.InitialSpeed
}

// trackBall moves the AI paddle toward the ball while the ball is on the AI
// half and heading its way. The second check sees the paddle after the first
// move, so a ball less than one step below the center leaves it in place.
func (s *Simulation) trackBall() {
	if !headingRight(s.Angle) {
		return
	}
	lead := s.Positions[BallStart]
	if lead.X <= 0 {
		return
	}
	p := s.Positions.PlayerTwo()
	if paddleCenter(p) > lead.Y {
		translateY(p, -s.cfg.AIStep)
	}
	if paddleCenter(p) < lead.Y {
		translateY(p, s.cfg.AIStep)
	}
}

// paddleCenter is the mean y of the bottom-left and top-right corners.
func paddleCenter(p []Vec2) float32 {
	return (p[0].Y + p[2].Y) / 2
}

func (s *Simulation) hitsWall() bool {
	for _, v := range s.Positions.Ball() {
		if v.Y > 1 || v.Y < -1 {
			return true
		}
	}
	return false
}

func (s *Simulation) isOut() bool {
	for _, v := range s.Positions.Ball() {
		if v.X > 1 || v.X < -1 {
			return true
		}
	}
	return false
}

// paddleHit returns the paddle the ball bounces off, if any. A paddle only
// counts while the ball is heading toward it.
func (s *Simulation) paddleHit() Event {
	ball := s.Positions.Ball()
	if headingLeft(s.Angle) && BoundingRect(s.Positions.PlayerOne()).ContainsAny(ball) {
		return EventPlayerHit
	}
	if headingRight(s.Angle) && BoundingRect(s.Positions.PlayerTwo()).ContainsAny(ball) {
		return EventAIHit
	}
	return EventNone
}

func (s *Simulation) advanceBall() {
	d := Vec2{
		X: float32(math.Cos(s.Angle) * s.Speed),
		Y: float32(math.Sin(s.Angle) * s.Speed),
	}
	ball := s.Positions.Ball()
	for i := range ball {
		ball[i] = ball[i].Add(d)
	}
}

// clamp pulls a paddle back inside [-1, 1] vertically.
func (s *Simulation) clamp(paddle []Vec2) {
	r := BoundingRect(paddle)
	switch s.cfg.ClampMode {
	case ClampStepwise:
		for r.Max.Y > 1 {
			translateY(paddle, -clampStep)
			r = BoundingRect(paddle)
		}
		for r.Min.Y < -1 {
			translateY(paddle, clampStep)
			r = BoundingRect(paddle)
		}
	default:
		if r.Max.Y > 1 {
			translateY(paddle, 1-r.Max.Y)
		} else if r.Min.Y < -1 {
			translateY(paddle, -1-r.Min.Y)
		}
	}
}

func translateY(points []Vec2, dy float32) {
	if dy == 0 {
		return
	}
	for i := range points {
		points[i].Y += dy
	}
}

// wrapAngle brings an angle drifted by at most one turn back into [0, 2π).
func wrapAngle(a float64) float64 {
	if a >= twoPi {
		a -= twoPi
	}
	if a < 0 {
		a += twoPi
	}
	return a
}

// headingLeft is true for angles in (π/2, 3π/2).
func headingLeft(a float64) bool {
	return a > math.Pi/2 && a < 3*math.Pi/2
}

// headingRight is true for angles in [0, π/2) or (3π/2, 2π).
func headingRight(a float64) bool {
	return a < math.Pi/2 || a > 3*math.Pi/2
}
