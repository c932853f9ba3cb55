package main

import (
	"log"
	"net/http"
	"time"

	"github.com/moptim/glimmer"
	"github.com/moptim/glimmer/stream"
)

// RunServe runs the field without a window, broadcasting frames to
// websocket viewers and replaying their control commands.
func RunServe(conf *Config) error {
	sim, err := glimmer.New(conf.Count, float32(conf.AspectRatio), seedOf(conf))
	if err != nil {
		return err
	}

	srv := stream.New(&sim.Keys)
	mux := http.NewServeMux()
	mux.Handle("/ws", srv.Handler())

	errc := make(chan error, 1)
	go func() {
		errc <- http.ListenAndServe(conf.Serve, mux)
	}()
	log.Printf("serving frames on ws://%s/ws", conf.Serve)

	clock := glimmer.NewClock(conf.TickHz)
	ticker := time.NewTicker(time.Second / time.Duration(conf.TickHz))
	defer ticker.Stop()

	for {
		select {
		case err := <-errc:
			return err
		case <-ticker.C:
			sim.Step(clock.Tick(sim.Params.LimitTime))
			if sim.Params.Draw {
				srv.Broadcast(stream.FrameOf(sim.Snapshot()))
			}
		}
	}
}
