package config

const (
	defaultDataDir               = "~/.local/share/stockmeta"
	defaultLogDir                = "~/.local/share/stockmeta/logs"
	defaultExportDir             = "~/stockmeta/exports"
	defaultServiceBaseURL        = "https://generativelanguage.googleapis.com"
	defaultServiceModel          = "gemini-2.0-flash"
	defaultServiceTimeoutSeconds = 60
	defaultItemDelaySeconds      = 2
	defaultServerBind            = "127.0.0.1:8974"
	defaultNotifyRequestTimeout  = 10
	defaultLogFormat             = "console"
	defaultLogLevel              = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir:   defaultDataDir,
			LogDir:    defaultLogDir,
			ExportDir: defaultExportDir,
		},
		Service: Service{
			BaseURL:        defaultServiceBaseURL,
			Model:          defaultServiceModel,
			TimeoutSeconds: defaultServiceTimeoutSeconds,
		},
		Batch: Batch{
			ItemDelaySeconds: defaultItemDelaySeconds,
			SkipDuplicates:   true,
		},
		Server: Server{
			Bind: defaultServerBind,
		},
		Notifications: Notifications{
			RequestTimeout: defaultNotifyRequestTimeout,
			Batch:          true,
			Errors:         true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
