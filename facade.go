package xfacade

// Facade helpers using the global Singleton logger.
// Usage: xfacade.Info("boot complete")

func Info(msg string)                 { L().Info(msg) }
func Debug(msg string)                { L().Debug(msg) }
func Warning(msg string)              { L().Warning(msg) }
func Error(msg string)                { L().Error(msg) }
func Log(level Level, v any)          { L().Log(level, v) }
func RegisterCallback(fn func(Record)) { L().RegisterCallback(fn) }
