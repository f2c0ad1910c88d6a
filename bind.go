package argtable

import (
	"github.com/pkg/errors"
)

// Bind returns a Handler that stores each match in the target registered for its ID. Flags set
// a *bool target to true or increment a *int target, so "-vvv" counts. Everything else is
// converted with Unmarshal. Matches without a target are ignored, except for help options
// which make the handler Quit.
func Bind[ID comparable](targets map[ID]interface{}) Handler[ID] {
	return func(ctx Context[ID]) (ParseControl, error) {
		target, ok := targets[ctx.ID]
		if !ok {
			if ctx.Option.IsHelp() {
				return Quit, nil
			}
			return Continue, nil
		}
		if !ctx.HasValue {
			return Continue, bindFlag(target)
		}
		return Continue, Unmarshal(target, ctx.Value)
	}
}

func bindFlag(target interface{}) error {
	switch t := target.(type) {
	case *bool:
		*t = true
	case *int:
		*t++
	default:
		return errors.Errorf("can't bind flag to %T", target)
	}
	return nil
}
