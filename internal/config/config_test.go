package config

import (
	"testing"

	"github.com/matryer/is"
)

func TestLoadDefaults(t *testing.T) {
	is := is.New(t)
	var c Config
	is.NoErr(c.Load(nil))
	is.Equal(c.Addr, ":8080")
	is.Equal(c.DBPath, "./calcudoku.db")
	is.Equal(c.LogLevel, "info")
}

func TestLoadFlags(t *testing.T) {
	is := is.New(t)
	var c Config
	is.NoErr(c.Load([]string{"-addr", ":9000", "-db", "/tmp/p.db", "-log-level", "debug"}))
	is.Equal(c.Addr, ":9000")
	is.Equal(c.DBPath, "/tmp/p.db")
	is.Equal(c.LogLevel, "debug")
}
