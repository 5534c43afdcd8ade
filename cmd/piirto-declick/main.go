package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/chewxy/math32"
	"github.com/piirto/piirto"
	"github.com/piirto/piirto/version"
)

func main() {
	stdout := flag.Bool("s", false, "Do not write files; write to standard output instead.")
	help := flag.Bool("h", false, "Show help.")
	directory := flag.String("o", "", "Directory where to output all files. The directory and its parents are created if needed. By default, everything is placed in the same directory where the original project file is.")
	threshold := flag.Float64("threshold", 0.25, "Smooth every adjacent sample step larger than this, in linear amplitude.")
	at := flag.String("at", "", "Comma separated list of times in seconds to smooth. When given, step detection is skipped.")
	track := flag.Int("track", -1, "Only process the track at this index, starting from 0. Negative values process every track.")
	brush := flag.Int("brush", 0, "Override the brush radius of the smoothing, in samples.")
	kernel := flag.Int("kernel", 0, "Override the kernel radius of the smoothing, in samples.")
	rawOut := flag.Bool("r", false, "Also output the rendered project as .raw file, a headerless stereo float32 buffer.")
	wavOut := flag.Bool("w", false, "Also output the rendered project as .wav file.")
	pcm := flag.Bool("c", false, "Convert audio to 16-bit signed PCM when outputting.")
	versionFlag := flag.Bool("v", false, "Print version.")
	flag.Usage = printUsage
	flag.Parse()
	if *versionFlag {
		fmt.Println(version.VersionOrHash)
		os.Exit(0)
	}
	if flag.NArg() == 0 || *help {
		flag.Usage()
		os.Exit(0)
	}
	cfg := piirto.DefaultSmoothing()
	if *brush > 0 {
		cfg.BrushRadius = *brush
	}
	if *kernel > 0 {
		cfg.KernelRadius = *kernel
	}
	var times []float64
	if *at != "" {
		for _, part := range strings.Split(*at, ",") {
			t, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
			if err != nil {
				fmt.Fprintf(os.Stderr, "could not parse time %v: %v\n", part, err)
				os.Exit(1)
			}
			times = append(times, t)
		}
	}
	process := func(filename string) error {
		output := func(extension string, contents []byte) error {
			if *stdout {
				_, err := os.Stdout.Write(contents)
				return err
			}
			dir, name := filepath.Split(filename)
			if *directory != "" {
				dir = *directory
			}
			name = strings.TrimSuffix(name, filepath.Ext(name)) + extension
			f := filepath.Join(dir, name)
			if dir != "" {
				if err := os.MkdirAll(dir, os.ModePerm); err != nil {
					return fmt.Errorf("could not create output directory %v: %v", dir, err)
				}
			}
			err := os.WriteFile(f, contents, 0644)
			if err != nil {
				return fmt.Errorf("could not write file %v: %v", f, err)
			}
			return nil
		}
		inputBytes, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("could not read file %v: %v", filename, err)
		}
		var project piirto.Project
		if errJSON := json.Unmarshal(inputBytes, &project); errJSON != nil {
			if errYaml := yaml.Unmarshal(inputBytes, &project); errYaml != nil {
				return fmt.Errorf("the project could not be parsed as .json (%v) or .yml (%v)", errJSON, errYaml)
			}
		}
		total := 0
		for i := range project.Tracks {
			if *track >= 0 && i != *track {
				continue
			}
			t := &project.Tracks[i]
			if len(times) > 0 {
				for _, time := range times {
					smoothAt(t, cfg, time)
				}
				total += len(times)
			} else {
				total += declickTrack(t, cfg, float32(*threshold))
			}
		}
		fmt.Fprintf(os.Stderr, "%v: smoothed %v spots\n", filename, total)
		contents, err := yaml.Marshal(project)
		if err != nil {
			return fmt.Errorf("could not marshal the project: %v", err)
		}
		if err := output(".declicked.yml", contents); err != nil {
			return fmt.Errorf("error outputting project file: %v", err)
		}
		if *rawOut {
			raw, err := piirto.Raw(project.RenderStereo(), *pcm)
			if err != nil {
				return fmt.Errorf("could not generate .raw file: %v", err)
			}
			if err := output(".raw", raw); err != nil {
				return fmt.Errorf("error outputting .raw file: %v", err)
			}
		}
		if *wavOut {
			wav, err := piirto.Wav(project.RenderStereo(), *pcm)
			if err != nil {
				return fmt.Errorf("could not generate .wav file: %v", err)
			}
			if err := output(".wav", wav); err != nil {
				return fmt.Errorf("error outputting .wav file: %v", err)
			}
		}
		return nil
	}
	retval := 0
	for _, param := range flag.Args() {
		if info, err := os.Stat(param); err == nil && info.IsDir() {
			jsonfiles, err := filepath.Glob(filepath.Join(param, "*.json"))
			if err != nil {
				fmt.Fprintf(os.Stderr, "could not glob the path %v for json files: %v\n", param, err)
				retval = 1
				continue
			}
			ymlfiles, err := filepath.Glob(filepath.Join(param, "*.yml"))
			if err != nil {
				fmt.Fprintf(os.Stderr, "could not glob the path %v for yml files: %v\n", param, err)
				retval = 1
				continue
			}
			files := append(ymlfiles, jsonfiles...)
			for _, file := range files {
				err := process(file)
				if err != nil {
					fmt.Fprintf(os.Stderr, "could not process file %v: %v\n", file, err)
					retval = 1
				}
			}
		} else {
			err := process(param)
			if err != nil {
				fmt.Fprintf(os.Stderr, "could not process file %v: %v\n", param, err)
				retval = 1
			}
		}
	}
	os.Exit(retval)
}

// smoothAt applies the smoothing brush centered on the given track time.
// Times falling in a gap between clips are silently ignored.
func smoothAt(t *piirto.Track, cfg piirto.SmoothingConfig, time float64) {
	region, valid := t.FloatsCenteredAroundTime(time, cfg.KernelRadius+cfg.BrushRadius)
	smoothed := cfg.Smooth(region, valid)
	t.SetFloatsCenteredAroundTime(time, smoothed, cfg.BrushRadius, piirto.WriteExact)
}

// declickTrack smooths every spot where the difference of two adjacent
// samples exceeds the threshold, and returns the number of spots smoothed.
// After a smoothing, the scan continues past the rewritten samples, so the
// brush does not chase the steps it just created.
func declickTrack(t *piirto.Track, cfg piirto.SmoothingConfig, threshold float32) int {
	count := 0
	for i := range t.Clips {
		c := &t.Clips[i]
		for s := 1; s < len(c.Samples); s++ {
			if math32.Abs(c.Samples[s]-c.Samples[s-1]) > threshold {
				smoothAt(t, cfg, c.Start+c.SamplesToTime(s))
				count++
				s += cfg.BrushRadius
			}
		}
	}
	return count
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Piirto command line declicker. Smooths out sample steps in .yml/.json project files.\nUsage: %s [flags] [path ...]\n", os.Args[0])
	flag.PrintDefaults()
}
