package game

import "fmt"

// Coord is a board cell, X is the column and Y the row.
type Coord struct {
	X int
	Y int
}

func (c Coord) InBounds() bool {
	return c.X >= 0 && c.X < BoardSize && c.Y >= 0 && c.Y < BoardSize
}

// Neighbors returns the orthogonally adjacent cells that lie on the board.
func (c Coord) Neighbors() []Coord {
	neighbors := make([]Coord, 0, 4)
	for _, d := range []Coord{{0, -1}, {1, 0}, {0, 1}, {-1, 0}} {
		n := Coord{X: c.X + d.X, Y: c.Y + d.Y}
		if n.InBounds() {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

type AntKind int

const (
	Queen AntKind = iota
	Worker
	Soldier
)

func (k AntKind) String() string {
	switch k {
	case Queen:
		return "queen"
	case Worker:
		return "worker"
	case Soldier:
		return "soldier"
	default:
		return fmt.Sprintf("AntKind(%d)", int(k))
	}
}

type antStats struct {
	health int
	attack int
	cost   int // Food needed to build, 0 if not buildable
}

var antStatsByKind = map[AntKind]antStats{
	Queen:   {health: 10, attack: 2, cost: 0},
	Worker:  {health: 4, attack: 0, cost: 1},
	Soldier: {health: 6, attack: 2, cost: 2},
}

// MaxHealth returns the health an ant of this kind starts with.
func (k AntKind) MaxHealth() int {
	return antStatsByKind[k].health
}

func (k AntKind) Attack() int {
	return antStatsByKind[k].attack
}

func (k AntKind) Cost() int {
	return antStatsByKind[k].cost
}

type Ant struct {
	Kind     AntKind
	Owner    int
	Coords   Coord
	Health   int
	Carrying bool // Workers only: carrying food back to a drop-off
	HasMoved bool
}

type ConstrKind int

const (
	Anthill ConstrKind = iota
	Tunnel
	Grass
	Food
)

func (k ConstrKind) String() string {
	switch k {
	case Anthill:
		return "anthill"
	case Tunnel:
		return "tunnel"
	case Grass:
		return "grass"
	case Food:
		return "food"
	default:
		return fmt.Sprintf("ConstrKind(%d)", int(k))
	}
}

// AnthillCaptureHealth is the number of enemy turn ends an anthill survives.
const AnthillCaptureHealth = 3

type Construction struct {
	Kind          ConstrKind
	Owner         int // NoWinner for neutral food
	Coords        Coord
	CaptureHealth int // Anthills only
}

// IsDropOff reports whether a worker can deliver food here.
func (c Construction) IsDropOff() bool {
	return c.Kind == Anthill || c.Kind == Tunnel
}

// Inventory is a player's food, ants and constructions.
type Inventory struct {
	Player        int
	FoodCount     int
	Ants          []Ant
	Constructions []Construction
}
