package window

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"runtime/pprof"
)

// Profiler records a CPU profile for the lifetime of a session
type Profiler struct {
	path string
	file *os.File
	log  *slog.Logger
}

// StartProfiler begins CPU profiling into path
func StartProfiler(path string, log *slog.Logger) (*Profiler, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile file: %w", err)
	}
	if err := pprof.StartCPUProfile(file); err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to start CPU profile: %w", err)
	}
	if log == nil {
		log = slog.Default()
	}
	return &Profiler{path: path, file: file, log: log}, nil
}

// Stop flushes the profile and logs memory stats at exit
func (p *Profiler) Stop() error {
	pprof.StopCPUProfile()
	if err := p.file.Close(); err != nil {
		return fmt.Errorf("failed to close profile file: %w", err)
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	p.log.Info("CPU profile saved",
		"path", p.path,
		"view", "go tool pprof -http=:8080 "+p.path,
		"heap_kb", m.HeapAlloc/1024,
		"num_gc", m.NumGC,
	)
	return nil
}
