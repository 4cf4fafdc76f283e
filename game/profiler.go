package game

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/pprof"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Profiler captures a CPU profile when the update rate drops
type Profiler struct {
	mu              sync.Mutex
	wg              sync.WaitGroup
	logger          *zap.Logger
	isProfiling     bool
	lastCaptureTime time.Time
	captureCooldown time.Duration
	captureDuration time.Duration
	profilesDir     string
}

// NewProfiler creates a profiler writing into dir
func NewProfiler(dir string, logger *zap.Logger) (*Profiler, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create profiles dir: %w", err)
	}
	return &Profiler{
		logger:          logger,
		captureCooldown: 10 * time.Second, // Don't capture more than once every 10 seconds
		captureDuration: 5 * time.Second,
		profilesDir:     dir,
	}, nil
}

// CaptureProfile starts a background CPU profile capture tagged with reason
func (p *Profiler) CaptureProfile(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if time.Since(p.lastCaptureTime) < p.captureCooldown {
		return fmt.Errorf("capture on cooldown (last capture was %v ago)", time.Since(p.lastCaptureTime))
	}
	if p.isProfiling {
		return fmt.Errorf("already profiling")
	}

	p.isProfiling = true
	p.lastCaptureTime = time.Now()

	timestamp := time.Now().Format("20060102-150405")
	profilePath := filepath.Join(p.profilesDir, fmt.Sprintf("tps-drop-%s-%s.cpu.prof", timestamp, reason))

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer func() {
			p.mu.Lock()
			p.isProfiling = false
			p.mu.Unlock()
		}()

		if err := p.captureCPUProfile(profilePath); err != nil {
			p.logger.Warn("CPU profile capture failed", zap.Error(err))
			return
		}
		p.logger.Info("CPU profile saved", zap.String("path", profilePath))
	}()
	return nil
}

func (p *Profiler) captureCPUProfile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create profile file: %w", err)
	}
	defer file.Close()

	if err := pprof.StartCPUProfile(file); err != nil {
		return fmt.Errorf("failed to start CPU profile: %w", err)
	}
	defer pprof.StopCPUProfile()

	time.Sleep(p.captureDuration)
	return nil
}

// IsProfiling returns whether a capture is in progress
func (p *Profiler) IsProfiling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isProfiling
}

// Wait blocks until any running capture has finished
func (p *Profiler) Wait() {
	p.wg.Wait()
}
