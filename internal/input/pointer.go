package input

import (
	"github.com/go-vgo/robotgo"
)

// RobotPointer drives the system cursor through robotgo.
type RobotPointer struct {
	Button string
	Double bool
}

func NewRobotPointer() *RobotPointer {
	return &RobotPointer{Button: "left"}
}

func (p *RobotPointer) Location() (int, int) {
	return robotgo.Location()
}

// Click moves the cursor to (x, y) and clicks there.
func (p *RobotPointer) Click(x, y int) {
	robotgo.Move(x, y)
	robotgo.Click(p.Button, p.Double)
}
