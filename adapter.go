package xfacade

// Adapter is an external logging backend the Logger delegates to (Strategy).
// The backend renders with its own sinks; records it produces must come back
// through the attached Bridge so observers still see them.
type Adapter interface {
	Log(level Level, msg string)
	// Attach is called once by Builder.Build before the first Log.
	Attach(b Bridge)
}

// Bridge accepts records translated from an external backend and fans them
// out to observers. It never renders them again.
type Bridge interface {
	Forward(r Record)
}
