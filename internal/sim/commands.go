package sim

import (
	"time"

	"github.com/google/uuid"
)

type CommandType string

const (
	CmdGoTo       CommandType = "goto"
	CmdTrajectory CommandType = "trajectory"
	CmdHold       CommandType = "hold"
	CmdStop       CommandType = "stop"
)

type Command interface {
	Type() CommandType
	CommandID() uuid.UUID
	ReceivedAt() time.Time
}

// Meta identifies a command and records when it was received.
type Meta struct {
	ID uuid.UUID `json:"-"`
	At time.Time `json:"-"`
}

// NewMeta stamps a new command with a random ID and the current time.
func NewMeta() Meta { return Meta{ID: uuid.New(), At: time.Now()} }

func (m Meta) CommandID() uuid.UUID  { return m.ID }
func (m Meta) ReceivedAt() time.Time { return m.At }

type GoToCommand struct {
	Meta
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	Alt   float64 `json:"alt"`
	Speed float64 `json:"speed,omitempty"` // m/s
}

func (c GoToCommand) Type() CommandType { return CmdGoTo }

type Waypoint struct {
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	Alt   float64 `json:"alt"`
	Speed float64 `json:"speed,omitempty"` // m/s optional
}

type TrajectoryCommand struct {
	Meta
	Waypoints []Waypoint `json:"waypoints"`
	Loop      bool       `json:"loop,omitempty"`
}

func (c TrajectoryCommand) Type() CommandType { return CmdTrajectory }

type HoldCommand struct{ Meta }

func (c HoldCommand) Type() CommandType { return CmdHold }

type StopCommand struct{ Meta }

func (c StopCommand) Type() CommandType { return CmdStop }
