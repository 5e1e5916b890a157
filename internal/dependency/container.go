// Package dependency wires core harborbot services using go.uber.org/dig.
package dependency

import (
	"fmt"
	"time"

	"go.uber.org/dig"

	"github.com/harborbot/harborbot/internal/config"
	"github.com/harborbot/harborbot/internal/heartbeat"
	"github.com/harborbot/harborbot/internal/imaging"
	"github.com/harborbot/harborbot/internal/playbook"
	"github.com/harborbot/harborbot/internal/schedule"
	"github.com/harborbot/harborbot/internal/sender"
)

// Container holds the resolved core service singletons.
// Callers use the typed getter methods; they never need to import dig directly.
type Container struct {
	registry  *playbook.Registry
	snd       *sender.Sender
	scheduler *schedule.Service
	hb        *heartbeat.Service
}

func (c *Container) Registry() *playbook.Registry  { return c.registry }
func (c *Container) Sender() *sender.Sender        { return c.snd }
func (c *Container) Scheduler() *schedule.Service  { return c.scheduler }
func (c *Container) Heartbeat() *heartbeat.Service { return c.hb }

// New builds and wires all core services from cfg. The registry carries the
// playbooks the embedding program registered; rasterizer may be nil when no
// SVG rendering backend is available.
func New(cfg *config.Config, registry *playbook.Registry, rasterizer imaging.Rasterizer) (*Container, error) {
	d := dig.New()

	if err := d.Provide(func() *config.Config { return cfg }); err != nil {
		return nil, err
	}
	if err := d.Provide(func() *playbook.Registry { return registry }); err != nil {
		return nil, err
	}
	if err := d.Provide(func() imaging.Rasterizer { return rasterizer }); err != nil {
		return nil, err
	}
	if err := d.Provide(newWebAPI); err != nil {
		return nil, err
	}
	if err := d.Provide(newEncoder); err != nil {
		return nil, err
	}
	if err := d.Provide(newExpander); err != nil {
		return nil, err
	}
	if err := d.Provide(newSender); err != nil {
		return nil, err
	}
	if err := d.Provide(newScheduler); err != nil {
		return nil, err
	}
	if err := d.Provide(newHeartbeat); err != nil {
		return nil, err
	}

	var result *Container
	err := d.Invoke(func(
		snd *sender.Sender,
		scheduler *schedule.Service,
		hb *heartbeat.Service,
	) {
		result = &Container{
			registry:  registry,
			snd:       snd,
			scheduler: scheduler,
			hb:        hb,
		}
	})
	return result, err
}

func newWebAPI(cfg *config.Config) (sender.API, error) {
	token := cfg.ResolveBotToken()
	if token == "" {
		return nil, fmt.Errorf("no Slack bot token configured — set SLACK_TOKEN or edit %s", config.ConfigPath())
	}
	return sender.NewWebAPI(token), nil
}

func newEncoder(cfg *config.Config, registry *playbook.Registry) *playbook.Encoder {
	return playbook.NewEncoder(registry, cfg.Slack.TargetID)
}

func newExpander(rasterizer imaging.Rasterizer) *imaging.Expander {
	return imaging.NewExpander(rasterizer)
}

func newSender(api sender.API, encoder *playbook.Encoder, expander *imaging.Expander) *sender.Sender {
	return sender.New(api, encoder, expander)
}

func newScheduler(cfg *config.Config, registry *playbook.Registry, snd *sender.Sender) *schedule.Service {
	return schedule.NewService(cfg.Reports.Dir, cfg.Slack.Channel, registry, snd)
}

func newHeartbeat(cfg *config.Config, snd *sender.Sender) *heartbeat.Service {
	return heartbeat.NewService(snd, time.Duration(cfg.Heartbeat.IntervalMinutes)*time.Minute)
}
