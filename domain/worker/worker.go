/*
Package worker shows an interface that is too wide for one of its implementers.

Worker forces Eat onto Robot, which can only refuse it at run time. Code that
needs only one capability should ask for Workable or Feedable instead.
*/
package worker

import (
	"solid-example/domain/shared"
	"solid-example/pkg/logger"

	"go.uber.org/zap"
)

type Workable interface {
	Work() error
}

type Feedable interface {
	Eat() error
}

// Worker is the fat interface: both capabilities at once.
type Worker interface {
	Workable
	Feedable
}

type Robot struct {
	number int
}

func NewRobot(number int) *Robot {
	return &Robot{number: number}
}

func (r *Robot) Number() int { return r.number }

func (r *Robot) Work() error {
	logger.Debug("robot working", zap.Int("robot", r.number))
	return nil
}

// Eat is forced on Robot by Worker and always fails.
func (r *Robot) Eat() error {
	return shared.NewUnsupportedOperationError("robot", "eat", "robots don't eat")
}

type Human struct {
	name   string
	meals  int
	shifts int
}

func NewHuman(name string) *Human {
	return &Human{name: name}
}

func (h *Human) Work() error {
	h.shifts++
	return nil
}

func (h *Human) Eat() error {
	h.meals++
	return nil
}

func (h *Human) Shifts() int { return h.shifts }
func (h *Human) Meals() int  { return h.meals }

// RunShift makes every workable do one unit of work.
func RunShift(workers ...Workable) error {
	for _, w := range workers {
		if err := w.Work(); err != nil {
			return err
		}
	}
	return nil
}

// LunchBreak feeds everyone, failing on the first one that cannot eat.
func LunchBreak(workers ...Worker) error {
	for _, w := range workers {
		if err := w.Eat(); err != nil {
			return err
		}
	}
	return nil
}

var (
	_ Worker   = (*Robot)(nil)
	_ Worker   = (*Human)(nil)
	_ Workable = (*Robot)(nil)
)
