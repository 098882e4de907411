/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package main

import (
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/chessevo/evochess/internal/config"
	"github.com/chessevo/evochess/internal/evolve"
	"github.com/chessevo/evochess/internal/logging"
)

var out = message.NewPrinter(language.English)

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "standard log level\n(critical|error|warning|notice|info|debug)")
	evoLogLvl := flag.String("evologlvl", "", "evolution log level\n(critical|error|warning|notice|info|debug)")
	generations := flag.Int("generations", 0, "number of generations to run\n(0 = use config file/default)")
	population := flag.Int("population", 0, "population size, must be even\n(0 = use config file/default)")
	rareness := flag.Int("rareness", 0, "1-in-M mutation rareness\n(0 = use config file/default)")
	rounds := flag.Int("rounds", 0, "tournament rounds per generation\n(0 = use config file/default)")
	moveTimeMs := flag.Int("movetime", 0, "per-move search budget in milliseconds\n(0 = use config file/default)")
	saveDir := flag.String("savedir", "", "directory to write the final generation to\n(empty = use config file/default)")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile of the run to ./cpu.pprof")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	// set config file before Setup() is called, otherwise the default is used.
	config.ConfFile = *configFile
	config.Setup()

	// command line options overwrite settings from the config file or defaults
	if *logLvl != "" {
		config.Settings.Log.LogLvl = *logLvl
	}
	if *evoLogLvl != "" {
		config.Settings.Log.EvolutionLogLvl = *evoLogLvl
	}
	if *generations > 0 {
		config.Settings.Evolution.Generations = *generations
	}
	if *population > 0 {
		config.Settings.Evolution.PopulationSize = *population
	}
	if *rareness > 0 {
		config.Settings.Evolution.MutationRareness = *rareness
	}
	if *rounds > 0 {
		config.Settings.Evolution.TournamentRounds = *rounds
	}
	if *moveTimeMs > 0 {
		config.Settings.Evolution.MoveTimeBudget = time.Duration(*moveTimeMs) * time.Millisecond
	}
	if *saveDir != "" {
		config.Settings.Evolution.SaveDir = *saveDir
	}

	// resetting log level after reading config/cmd line - most packages hold a
	// reference to the standard logger from before main() runs, still at its
	// default level.
	logging.GetLog()
	logging.GetEvolutionLog()

	driver := evolve.NewDriver()
	_, keys, err := driver.Run(evolve.Config{
		Generations:      config.Settings.Evolution.Generations,
		PopulationSize:   config.Settings.Evolution.PopulationSize,
		MutationRareness: config.Settings.Evolution.MutationRareness,
		NetworkShape:     config.Settings.Evolution.NetworkShape,
		TournamentRounds: config.Settings.Evolution.TournamentRounds,
		MoveTimeBudget:   config.Settings.Evolution.MoveTimeBudget,
		SaveDir:          config.Settings.Evolution.SaveDir,
	})
	if err != nil {
		out.Println("evolution run failed:", err)
		os.Exit(1)
	}

	out.Println()
	out.Println("Final generation fitness keys:", keys)
}

func printVersionInfo() {
	out.Println("evochess - neuro-evolutionary chess engine trainer")
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
