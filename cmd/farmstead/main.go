// Command farmstead runs the farming simulation with a line-based terminal
// front end: it reads commands from stdin, feeds them through the fuzzy
// parser into the simulation core and prints the resulting state.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/appengine-ltd/farmstead/internal/farm"
	"github.com/appengine-ltd/farmstead/internal/parser"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var commandDefs = []parser.CommandDef{
	{Canonical: "move", Aliases: []string{"go", "walk"}},
	{Canonical: "up", Aliases: []string{"w", "north"}},
	{Canonical: "down", Aliases: []string{"s", "south"}},
	{Canonical: "left", Aliases: []string{"a", "west"}},
	{Canonical: "right", Aliases: []string{"d", "east"}},
	{Canonical: "till", Aliases: []string{"hoe"}},
	{Canonical: "untill"},
	{Canonical: "plant", Aliases: []string{"sow"}},
	{Canonical: "harvest", Aliases: []string{"pick", "reap"}},
	{Canonical: "remove", Aliases: []string{"dig", "dig up"}},
	{Canonical: "select", Aliases: []string{"hold"}},
	{Canonical: "buy", Aliases: []string{"purchase"}},
	{Canonical: "sell"},
	{Canonical: "next", Aliases: []string{"sleep", "end day", "next day"}},
	{Canonical: "inventory", Aliases: []string{"inv", "items", "bag"}},
	{Canonical: "status", Aliases: []string{"stats"}},
	{Canonical: "look", Aliases: []string{"map"}},
	{Canonical: "help", Aliases: []string{"commands"}},
}

func main() {
	// A .env file may supply FARMSTEAD_MAP / FARMSTEAD_CONFIG; absence is
	// not an error.
	_ = godotenv.Load()

	var (
		mapPath     string
		configPath  string
		showVersion bool
	)
	flag.StringVar(&mapPath, "map", envOr("FARMSTEAD_MAP", "maps/map1.txt"), "map file to load")
	flag.StringVar(&configPath, "config", os.Getenv("FARMSTEAD_CONFIG"), "optional YAML config file")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("Farmstead %s (%s) %s\n", version, commit, date)
		return
	}

	cfg := farm.DefaultConfig()
	if configPath != "" {
		loaded, err := farm.LoadConfig(configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if len(cfg.Map) == 0 && cfg.MapPath == "" {
		cfg.MapPath = mapPath
	}

	game, err := farm.NewFarm(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := run(game, os.Stdin); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(game *farm.Farm, in *os.File) error {
	p := parser.New(commandDefs)

	fmt.Println("Welcome to your farm. Type 'help' for commands, 'quit' to leave.")
	fmt.Println(game.ExecuteCommand("look").Message)
	fmt.Println(game.ExecuteCommand("status").Message)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()

		switch line {
		case "quit", "exit", "q":
			fmt.Println("Goodbye.")
			return nil
		}

		intent := p.Parse(line)
		if !intent.Matched() {
			if intent.Suggestion != "" {
				fmt.Printf("Unknown command. Did you mean %q?\n", intent.Suggestion)
			} else if line != "" {
				fmt.Println("Unknown command. Type 'help' for the list.")
			}
			continue
		}

		result := game.ExecuteCommand(intent.CommandLine())
		if !result.Handled {
			fmt.Println("Unknown command. Type 'help' for the list.")
			continue
		}
		fmt.Println(result.Message)
	}
	return scanner.Err()
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
