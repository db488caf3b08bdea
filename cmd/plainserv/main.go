package main

import (
	"flag"
	"log"

	"github.com/fatih/color"
	"github.com/ser1103/plainserv"
	"github.com/ser1103/plainserv/settings"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a .toml, .yaml or .json settings file")
		port       = flag.Int("port", 0, "port to listen on (1025-65535)")
		root       = flag.String("root", "", "directory files are served from")
		index      = flag.String("index", "", "page substituted for directory requests")
	)
	flag.Parse()

	s := settings.Default()
	if *configPath != "" {
		var err error
		if s, err = settings.FromFile(*configPath); err != nil {
			log.Fatalf("plainserv: %v", err)
		}
	}

	// flags win over the config file
	if *port != 0 {
		if !validPort(*port) {
			log.Fatalf("plainserv: port %d is out of range (want 1025-65535)", *port)
		}
		s.Port = uint16(*port)
	}
	if *root != "" {
		s.FS.Root = *root
	}
	if *index != "" {
		s.FS.IndexPage = *index
	}

	app := plainserv.New().
		Tune(s).
		NotifyOnStart(func() {
			color.Green("listening on port %d, serving %s", s.Port, s.FS.Root)
		}).
		NotifyOnStop(func() {
			color.Yellow("server stopped")
		})

	if err := app.Serve(); err != nil {
		log.Fatalf("plainserv: %v", err)
	}
}

// validPort reports whether p fits the listenable range: above the reserved
// ports, inside uint16. Checked before the uint16 conversion, which would
// otherwise silently truncate values like 70000.
func validPort(p int) bool {
	return p >= 1025 && p <= 65535
}
