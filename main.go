package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/jasonlvhit/gocron"
	"github.com/peterbourgon/ff"
	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/great-circle/api"

	_ "net/http/pprof"
)

func main() {

	fs := flag.NewFlagSet("great-circle", flag.ExitOnError)
	var (
		listen          = fs.String("listen", ":8888", "address the API listens on")
		pprofListen     = fs.String("pprof-listen", "", "address serving net/http/pprof, disabled when empty")
		debug           = fs.Bool("debug", false, "log at debug level")
		cpuprofile      = fs.Bool("cpuprofile", false, "profile every legs request")
		cacheSize       = fs.Int("cache-size", 1024, "number of origins kept with their solutions")
		metricsInterval = fs.Uint64("metrics-interval", 15, "seconds between two refreshes of the registry gauge")
		_               = fs.String("config", "", "config file")
	)
	if err := ff.Parse(fs, os.Args[1:],
		ff.WithEnvVarPrefix("GCIRCLE"),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
	); err != nil {
		log.Fatal(err)
	}

	initLogger(*debug)

	s := api.InitServer(*cpuprofile, *cacheSize)

	scheduler := gocron.NewScheduler()
	scheduler.Every(*metricsInterval).Seconds().Do(s.UpdateMetrics)
	go scheduler.Start()

	if *pprofListen != "" {
		go func() {
			log.Infof("Serve pprof on %s", *pprofListen)
			log.Error(http.ListenAndServe(*pprofListen, nil))
		}()
	}

	log.Infof("Start server on %s", *listen)

	log.Fatal(http.ListenAndServe(*listen, s.Handler()))
}
