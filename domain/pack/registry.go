package pack

import (
	"fmt"

	"github.com/felixgeelhaar/agent-toolkit/domain/tool"
)

// Install validates p and registers each of its tools with reg.
func Install(p *Pack, reg tool.Registry) error {
	if err := p.Validate(); err != nil {
		return err
	}
	for _, t := range p.Tools {
		if err := reg.Register(t); err != nil {
			return fmt.Errorf("install %s: %w", p.Name, err)
		}
	}
	return nil
}
