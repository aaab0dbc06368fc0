package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	HTTP   *HTTP
	Lookup *Lookup
	Form   *Form
	App    *App
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string `env:"APP_MODE"`
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
}

// Lookup points at an external user lookup service. An empty HostString
// selects the built-in simulation with the given delay range.
type Lookup struct {
	HostString string        `env:"LOOKUP_ADDRESS"`
	Timeout    time.Duration `env:"LOOKUP_TIMEOUT"`
	DelayMin   time.Duration `env:"LOOKUP_DELAY_MIN"`
	DelayMax   time.Duration `env:"LOOKUP_DELAY_MAX"`
}

type Form struct {
	InitialBalance int64         `env:"INITIAL_BALANCE"`
	Debounce       time.Duration `env:"DEBOUNCE"`
	SendCycleMin   time.Duration `env:"SEND_CYCLE_MIN"`
	SendCycleMax   time.Duration `env:"SEND_CYCLE_MAX"`
	SuccessWindow  time.Duration `env:"SUCCESS_WINDOW"`
}

func NewConfig() (*Config, error) {
	return parse(flag.CommandLine, os.Args[1:])
}

func parse(fs *flag.FlagSet, args []string) (*Config, error) {
	var http HTTP
	var lookup Lookup
	var form Form
	var app App

	fs.StringVar(&http.HostString, "a", `localhost:8080`, "HTTP server endpoint")
	fs.StringVar(&lookup.HostString, "r", "", "User lookup service address, empty for simulation")
	fs.DurationVar(&lookup.Timeout, "lookup-timeout", 5*time.Second, "User lookup request timeout")
	fs.DurationVar(&lookup.DelayMin, "lookup-delay-min", 500*time.Millisecond, "Simulated lookup min delay")
	fs.DurationVar(&lookup.DelayMax, "lookup-delay-max", 1500*time.Millisecond, "Simulated lookup max delay")
	fs.Int64Var(&form.InitialBalance, "b", 73687526, "Initial coin balance")
	fs.DurationVar(&form.Debounce, "debounce", 500*time.Millisecond, "Username quiescence window")
	fs.DurationVar(&form.SendCycleMin, "send-cycle-min", 2*time.Second, "Send sequence min duration")
	fs.DurationVar(&form.SendCycleMax, "send-cycle-max", 4*time.Second, "Send sequence max duration")
	fs.DurationVar(&form.SuccessWindow, "success-window", 3*time.Second, "Success display window")
	fs.StringVar(&app.LogLevel, "l", `info`, "Log level")
	fs.StringVar(&app.Mode, "m", AppModeDevelop, "PROD / DEV")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	err := env.Parse(&http)
	if err != nil {
		return nil, fmt.Errorf("error parsing http config: %w", err)
	}
	err = env.Parse(&lookup)
	if err != nil {
		return nil, fmt.Errorf("error parsing lookup config: %w", err)
	}
	err = env.Parse(&form)
	if err != nil {
		return nil, fmt.Errorf("error parsing form config: %w", err)
	}
	err = env.Parse(&app)
	if err != nil {
		return nil, fmt.Errorf("error parsing app config: %w", err)
	}

	if lookup.DelayMax < lookup.DelayMin {
		return nil, fmt.Errorf("lookup delay max %s is below min %s", lookup.DelayMax, lookup.DelayMin)
	}
	if form.SendCycleMax < form.SendCycleMin {
		return nil, fmt.Errorf("send cycle max %s is below min %s", form.SendCycleMax, form.SendCycleMin)
	}

	config := Config{
		HTTP:   &http,
		Lookup: &lookup,
		Form:   &form,
		App:    &app,
	}

	return &config, nil
}
