package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/davecgh/go-spew/spew"
	"github.com/lmittmann/tint"

	"github.com/nvasilev/huemirror/clip"
	"github.com/nvasilev/huemirror/mirror"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to the TOML config file")
	discover := flag.Bool("discover", false, "look up bridges on the local network and exit")
	register := flag.Bool("register", false, "mint a new app key (press the link button first) and exit")
	poll := flag.Duration("poll", 0, "poll the bridge at this interval instead of following the event stream")
	flag.Parse()

	if err := run(*configPath, *discover, *register, *poll); err != nil {
		fmt.Fprintln(os.Stderr, "huemirror:", err)
		os.Exit(1)
	}
}

func run(configPath string, discover, register bool, poll time.Duration) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if discover {
		bridges, err := clip.Discover(ctx)
		if err != nil {
			return err
		}
		for _, b := range bridges {
			fmt.Printf("%s\t%s:%d\n", b.ID, b.InternalIPAddress, b.Port)
		}
		return nil
	}

	var config mirror.Config
	if _, err := toml.DecodeFile(configPath, &config); err != nil {
		return err
	}

	log := slog.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level:      config.Logger.SlogLevel(),
		TimeFormat: time.TimeOnly,
	}))

	transport := clip.NewClient(log, config.Bridge.Clip())

	if register {
		host, err := os.Hostname()
		if err != nil {
			host = "huemirror"
		}
		key, err := transport.Register(ctx, "huemirror", host)
		if err != nil {
			return err
		}
		fmt.Println("app_key =", key.Key)
		return nil
	}

	client := mirror.New(log, transport)
	defer client.Close()

	if poll > 0 {
		if err := client.StartPolling(ctx, poll); err != nil {
			return err
		}
	} else {
		err := client.StartListening(ctx, func(changed []clip.ResourceRef) {
			for _, ref := range changed {
				log.Info("resource changed",
					slog.String("type", string(ref.Type)),
					slog.String("id", ref.ID),
				)
				dumpResource(client, ref)
			}
		})
		if err != nil {
			return err
		}
	}

	log.Info("mirror running",
		slog.Int("lights", client.NumLights()),
		slog.Int("rooms", client.NumRooms()),
		slog.Int("scenes", client.NumScenes()),
		slog.Int("devices", client.NumDevices()),
	)

	<-ctx.Done()
	return nil
}

func dumpResource(client *mirror.Client, ref clip.ResourceRef) {
	switch ref.Type {
	case clip.RTypeLight:
		if l, ok := client.Light(ref.ID); ok {
			spew.Dump(l)
		}
	case clip.RTypeGroupedLight:
		if g, ok := client.GroupedLight(ref.ID); ok {
			spew.Dump(g)
		}
	case clip.RTypeMotion:
		if m, ok := client.Motion(ref.ID); ok {
			spew.Dump(m)
		}
	case clip.RTypeButton:
		if b, ok := client.Button(ref.ID); ok {
			spew.Dump(b)
		}
	}
}
