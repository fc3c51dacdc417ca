package xfacade

import "fmt"

// Placeholder is the payload used for values the facade cannot render.
const Placeholder = "UNIMPLEMENTED"

// Render converts v to payload text. Strings, fmt.Stringer and error values
// render as text; anything else, including a String or Error method that
// panics, degrades to Placeholder. Render never fails.
func Render(v any) (s string) {
	defer func() {
		if recover() != nil {
			s = Placeholder
		}
	}()
	switch vv := v.(type) {
	case string:
		return vv
	case fmt.Stringer:
		return vv.String()
	case error:
		return vv.Error()
	default:
		return Placeholder
	}
}
