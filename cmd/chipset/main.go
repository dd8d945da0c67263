// This file is part of chipset.
//
// chipset is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// chipset is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with chipset.  If not, see <https://www.gnu.org/licenses/>.

// Command chipset is an illustrative host for the module: it assembles one
// of the worked machine profiles, loads a ROM image, and either runs it
// freely or drops into the line-oriented monitor. It exists to exercise the
// library end to end (spec §1 calls the module a library, not an emulator
// with a frontend of its own) and is not part of the emulated hardware.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/eightbitbus/chipset/audio"
	"github.com/eightbitbus/chipset/clocks"
	"github.com/eightbitbus/chipset/config"
	"github.com/eightbitbus/chipset/diagnostics"
	"github.com/eightbitbus/chipset/hardware/bus"
	"github.com/eightbitbus/chipset/hardware/machine"
	"github.com/eightbitbus/chipset/logger"
	"github.com/eightbitbus/chipset/metrics"
	"github.com/eightbitbus/chipset/monitor"
	"github.com/eightbitbus/chipset/prefs"
)

var profiles = map[string]bus.Profile{
	"atari2600": bus.ProfileAtari2600,
	"bbcmicro":  bus.ProfileBBCMicro,
	"generic":   bus.ProfileGeneric,
}

var frequencies = map[string]clocks.MHz{
	"atari2600": clocks.Atari2600,
	"bbcmicro":  clocks.BBCMicro,
	"generic":   clocks.Generic,
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "chipset:", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		profileName = flag.String("profile", "generic", "machine profile: atari2600, bbcmicro, generic")
		romPath     = flag.String("rom", "", "path to a ROM image to load at 0x0000")
		prefsPath   = flag.String("prefs", "", "load/save CPU tunables at this path")
		override    = flag.String("pushprefs", "", "command-line preference overrides, e.g. cpu.illegalmagic=238")
		wavPath     = flag.String("wav", "", "write TIA audio output to this WAV file (atari2600 profile only)")
		interactive = flag.Bool("monitor", false, "drop into the line-oriented monitor instead of running freely")
		dumpGraph   = flag.String("dump", "", "write a graphviz object-graph dump of the assembled machine and exit")
		statsAddr   = flag.Bool("stats", false, "serve runtime metrics (requires the statsview build tag)")
	)
	flag.Parse()

	logger.SetEcho(os.Stderr)

	profile, ok := profiles[*profileName]
	if !ok {
		return fmt.Errorf("unknown profile %q", *profileName)
	}

	cfg := config.NewDefault()

	if *override != "" {
		prefs.PushCommandLineStack(*override)
		defer prefs.PopCommandLineStack()
	}

	var dsk *prefs.Disk
	if *prefsPath != "" || *override != "" {
		bindPath := *prefsPath
		if bindPath == "" {
			bindPath = os.DevNull
		}
		var err error
		dsk, err = cfg.Bind(bindPath)
		if err != nil {
			return fmt.Errorf("binding prefs: %w", err)
		}
		if *prefsPath != "" {
			if err := dsk.Load(false); err != nil {
				return fmt.Errorf("loading prefs: %w", err)
			}
		}
		if *override != "" {
			if err := dsk.ApplyCommandLineOverrides(); err != nil {
				return fmt.Errorf("applying prefs override: %w", err)
			}
		}
	}

	m, err := machine.New(profile, frequencies[*profileName], cfg)
	if err != nil {
		return fmt.Errorf("assembling machine: %w", err)
	}

	if *dumpGraph != "" {
		f, err := os.Create(*dumpGraph)
		if err != nil {
			return err
		}
		defer f.Close()
		diagnostics.Dump(f, m)
		return nil
	}

	if *romPath != "" {
		image, err := os.ReadFile(*romPath)
		if err != nil {
			return fmt.Errorf("reading ROM: %w", err)
		}
		m.Bus.LoadROM(0x0000, image)
	}

	if *wavPath != "" && m.TIA != nil {
		sink, err := audio.NewWavSink(*wavPath, 31400)
		if err != nil {
			return fmt.Errorf("opening WAV sink: %w", err)
		}
		defer sink.Close()
		m.TIA.SetAudioFunc(sink.Sample)
	}

	if *statsAddr {
		if !metrics.Available() {
			logger.Logf("chipset", "metrics requested but binary was built without the statsview tag")
		} else {
			metrics.Launch(os.Stderr)
		}
	}

	if dsk != nil && *prefsPath != "" {
		defer func() {
			if err := dsk.Save(); err != nil {
				fmt.Fprintln(os.Stderr, "chipset: saving prefs:", err)
			}
		}()
	}

	if *interactive {
		return runMonitor(m)
	}

	runFree(m)
	return nil
}

func runMonitor(m *machine.Machine) error {
	mon, err := monitor.New(m)
	if err != nil {
		return err
	}
	defer mon.Close()

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if !mon.RunLine(scanner.Text()) {
			break
		}
	}
	return scanner.Err()
}

// runFree steps the machine indefinitely. A real frontend would pace this
// against wall-clock time and a host video/audio sink; this illustrative
// host just demonstrates that Step can be called in a loop uninterrupted.
func runFree(m *machine.Machine) {
	for {
		m.Step()
	}
}
