package config

import (
	"github.com/spf13/pflag"
)

// Flags holds the values of the command-line flags registered by
// [RegisterFlags]. Unset flags keep their zero value so lower-priority
// sources can fill them.
type Flags struct {
	jsonConfigPath string
	file           string
	resource       string
	section        string
	order          []string
	logLevel       string
}

// RegisterFlags registers all configuration flags on fs and returns the
// holder their values are parsed into.
//
// Flags:
//
//	-c/--config      json file path with tool configs
//	-f/--file        settings file path
//	-r/--resource    embedded settings resource name
//	-s/--section     environment variable section
//	--order          comma separated source order, e.g. file,resource,env
//	-l/--log-level   log level (debug, info, warn, error)
func RegisterFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}

	fs.StringVarP(&f.jsonConfigPath, "config", "c", "", "JSON config file path")
	fs.StringVarP(&f.file, "file", "f", "", "Settings file path")
	fs.StringVarP(&f.resource, "resource", "r", "", "Embedded settings resource name")
	fs.StringVarP(&f.section, "section", "s", "", "Environment variable section")
	fs.StringSliceVar(&f.order, "order", nil, "Source order (file, resource, env)")
	fs.StringVarP(&f.logLevel, "log-level", "l", "", "Log level")

	return f
}

func (f *Flags) config() *StructuredConfig {
	return &StructuredConfig{
		Settings: Settings{
			File:     f.file,
			Resource: f.resource,
			Section:  f.section,
			Order:    f.order,
		},
		Log:          Log{Level: f.logLevel},
		JSONFilePath: f.jsonConfigPath,
	}
}
