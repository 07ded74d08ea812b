package config

import "github.com/namsral/flag"

// Config holds the web server settings. Each flag can also be supplied as an
// environment variable (CALCUDOKU_ADDR and so on).
type Config struct {
	Addr     string
	DBPath   string
	LogLevel string
}

func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSetWithEnvPrefix("calcudoku-web", "CALCUDOKU", flag.ContinueOnError)
	fs.StringVar(&c.Addr, "addr", ":8080", "listen address")
	fs.StringVar(&c.DBPath, "db", "./calcudoku.db", "path to the sqlite puzzle store")
	fs.StringVar(&c.LogLevel, "log-level", "info", "debug|info|warn|error")
	return fs.Parse(args)
}
