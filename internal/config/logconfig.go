//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package config

// logConfiguration is a data structure to hold the log level settings
// read from the config file, one per logger the process exposes.
type logConfiguration struct {
	LogLvl          string
	EvolutionLogLvl string
	TestLogLvl      string
}

func init() {
	Settings.Log.LogLvl = "info"
	Settings.Log.EvolutionLogLvl = "info"
	Settings.Log.TestLogLvl = "info"
}

// setupLogLvl resolves the effective log levels: config file values win
// over the package defaults above, but never override an explicit
// non-default value already set via command line flags before Setup()
// runs.
func setupLogLvl() {
	if Settings.Log.LogLvl != "" {
		LogLevel = levelToInt(Settings.Log.LogLvl)
	}
	if Settings.Log.EvolutionLogLvl != "" {
		EvolutionLogLevel = levelToInt(Settings.Log.EvolutionLogLvl)
	}
	if Settings.Log.TestLogLvl != "" {
		TestLogLevel = levelToInt(Settings.Log.TestLogLvl)
	}
}

// levelToInt maps go-logging's textual levels to their numeric value
// (CRITICAL=0 ... DEBUG=5), matching github.com/op/go-logging.Level.
func levelToInt(lvl string) int {
	switch lvl {
	case "critical":
		return 0
	case "error":
		return 1
	case "warning":
		return 2
	case "notice":
		return 3
	case "info":
		return 4
	case "debug":
		return 5
	default:
		return 4
	}
}
