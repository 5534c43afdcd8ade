package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"

	"gioui.org/app"
	"github.com/piirto/piirto"
	"github.com/piirto/piirto/cmd"
	"github.com/piirto/piirto/editor"
	"github.com/piirto/piirto/editor/gioui"
	"github.com/piirto/piirto/oto"
)

var cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
var memprofile = flag.String("memprofile", "", "write memory profile to `file`")
var defaultMidiInput = flag.String("midi-input", "", "connect MIDI input to matching device name prefix")

func main() {
	flag.Parse()
	var f *os.File
	if *cpuprofile != "" {
		var err error
		f, err = os.Create(*cpuprofile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
	}
	audioContext, err := oto.NewContext()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	recoveryFile := ""
	if configDir, err := os.UserConfigDir(); err == nil {
		recoveryFile = filepath.Join(configDir, "piirto", "piirto-track-recovery")
	}
	broker := editor.NewBroker()
	midiContext := cmd.NewMIDIContext()
	defer midiContext.Close()
	model := editor.NewModel(broker, midiContext, recoveryFile)
	if isFlagPassed("midi-input") {
		if index := editor.FindMIDIInputIndex(midiContext, *defaultMidiInput); index > 0 {
			model.MIDI().Input().SetValue(index)
		} else {
			log.Printf("no MIDI input device found with prefix '%s'", *defaultMidiInput)
		}
	}
	player := editor.NewPlayer(broker)

	if a := flag.Args(); len(a) > 0 {
		if f, err := os.Open(a[0]); err == nil {
			model.ReadProject(f)
		}
	}

	gui := gioui.NewGUI(model)
	audioCloser := audioContext.Play(func(buf piirto.AudioBuffer) error {
		player.Process(buf, midiContext)
		return nil
	})

	go func() {
		gui.Main()
		audioCloser.Close()
		if *cpuprofile != "" {
			pprof.StopCPUProfile()
			f.Close()
		}
		if *memprofile != "" {
			f, err := os.Create(*memprofile)
			if err != nil {
				log.Fatal("could not create memory profile: ", err)
			}
			defer f.Close() // error handling omitted for example
			runtime.GC()    // get up-to-date statistics
			if err := pprof.WriteHeapProfile(f); err != nil {
				log.Fatal("could not write memory profile: ", err)
			}
		}
		os.Exit(0)
	}()
	app.Main()
}

func isFlagPassed(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}
