package fourier

import (
	"github.com/google/uuid"
)

// Container is a collection of simulator sessions keyed by id, for hosts
// driving several sketches from a single tick source.
type Container map[string]*Simulator

// Add stores sim under a fresh id and returns the id.
func (c Container) Add(sim *Simulator) uuid.UUID {
	id := uuid.New()
	c[id.String()] = sim
	return id
}

// Get returns the session stored under id.
func (c Container) Get(id uuid.UUID) (*Simulator, bool) {
	sim, ok := c[id.String()]
	return sim, ok
}

// Remove deletes the session stored under id.
func (c Container) Remove(id uuid.UUID) {
	delete(c, id.String())
}

// StepAll advances every session by one tick.
func (c Container) StepAll() {
	for key := range c {
		c[key].Step()
	}
}

// UnmarshalYAML builds a container of sessions from named configs.
func (c *Container) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw map[string]Config
	if err := unmarshal(&raw); err != nil {
		return err
	}

	if *c == nil {
		*c = make(Container)
	}
	for key, cfg := range raw {
		sim, err := NewSimulator(cfg)
		if err != nil {
			return err
		}
		(*c)[key] = sim
	}
	return nil
}
