package config

import (
	"go.uber.org/zap"

	"github.com/raj457036/Path-Finding-Visualizer/scheduler"
	"github.com/raj457036/Path-Finding-Visualizer/session"
)

// SessionOptions converts c into the options of session.New.
func (c *Config) SessionOptions(logger *zap.Logger, metrics *scheduler.Metrics) ([]session.Option, error) {
	name, err := c.SearchName()
	if err != nil {
		return nil, err
	}
	searchOpts, err := c.SearchOptions()
	if err != nil {
		return nil, err
	}
	speed, err := c.Speed()
	if err != nil {
		return nil, err
	}
	return []session.Option{
		session.WithAlgorithm(name, searchOpts...),
		session.WithSpeed(speed),
		session.WithMaxReplayFrames(c.Scheduler.MaxReplayFrames),
		session.WithLogger(logger),
		session.WithMetrics(metrics),
	}, nil
}

// ApplyTo pushes the algorithm and speed of c into a live session. Grid size
// and replay cap take effect only on a new session.
func (c *Config) ApplyTo(s *session.Session) error {
	name, err := c.SearchName()
	if err != nil {
		return err
	}
	searchOpts, err := c.SearchOptions()
	if err != nil {
		return err
	}
	speed, err := c.Speed()
	if err != nil {
		return err
	}
	if err := s.SelectAlgorithm(name, searchOpts...); err != nil {
		return err
	}
	s.SetSpeed(speed)
	return nil
}
