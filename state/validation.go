package state

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// TopologyConfigValidator checks the shape of a topology description before it
// is built: field constraints, a single root, and unique switch and port ids.
// Dangling link references are reported by BuildTopology.
func TopologyConfigValidator(cfg *TopologyCfg) error {
	if cfg == nil {
		return errors.New("topology config is nil")
	}
	if err := validate.Struct(cfg); err != nil {
		return formatValidationError(err)
	}

	roots := make([]SwitchId, 0, 1)
	seen := make(map[SwitchId]struct{}, len(cfg.Switches))
	for _, sc := range cfg.Switches {
		if _, ok := seen[sc.Id]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicateSwitch, sc.Id)
		}
		seen[sc.Id] = struct{}{}
		if sc.Root {
			roots = append(roots, sc.Id)
		}
		ports := make(map[PortId]struct{}, len(sc.Ports))
		for _, pc := range sc.Ports {
			if _, ok := ports[pc.Id]; ok {
				return fmt.Errorf("%w: %d on switch %d", ErrDuplicatePort, pc.Id, sc.Id)
			}
			ports[pc.Id] = struct{}{}
		}
	}
	if len(roots) == 0 {
		return ErrMissingRoot
	}
	if len(roots) > 1 {
		return fmt.Errorf("%w: %v", ErrDuplicateRoot, roots)
	}
	return nil
}

func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s: failed %s=%s", fe.Namespace(), fe.Tag(), fe.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s: failed %s", fe.Namespace(), fe.Tag()))
		}
	}
	return fmt.Errorf("invalid topology: %s", strings.Join(msgs, "; "))
}
