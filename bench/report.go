package bench

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/aacfactory/afseed/seed"
	"golang.org/x/sys/cpu"
)

type Metadata struct {
	Timestamp               string   `json:"timestamp"`
	Platform                string   `json:"platform"`
	Arch                    string   `json:"arch"`
	Compiler                string   `json:"compiler"`
	CPUFeatures             []string `json:"cpu_features"`
	BlockSizeBits           int      `json:"block_size_bits"`
	BlockSizeBytes          int      `json:"block_size_bytes"`
	KeySizeBytes            int      `json:"key_size_bytes"`
	TotalRecords            int      `json:"total_records"`
	MemoryMeasurementMethod string   `json:"memory_measurement_method"`
}

type Report struct {
	Benchmarks []Result `json:"benchmarks"`
	Metadata   Metadata `json:"metadata"`
}

func NewReport(results []Result, at time.Time) Report {
	total := 0
	if len(results) > 0 {
		total = results[len(results)-1].BlocksProcessed
	}
	if results == nil {
		results = []Result{}
	}
	return Report{
		Benchmarks: results,
		Metadata: Metadata{
			Timestamp:               at.Format(time.RFC3339),
			Platform:                runtime.GOOS,
			Arch:                    runtime.GOARCH,
			Compiler:                runtime.Version(),
			CPUFeatures:             cpuFeatures(),
			BlockSizeBits:           seed.BlockSize * 8,
			BlockSizeBytes:          seed.BlockSize,
			KeySizeBytes:            seed.KeySize,
			TotalRecords:            total,
			MemoryMeasurementMethod: memoryMethod,
		},
	}
}

func cpuFeatures() (features []string) {
	flags := []struct {
		name string
		has  bool
	}{
		{"aes", cpu.X86.HasAES || cpu.ARM64.HasAES},
		{"sse4.1", cpu.X86.HasSSE41},
		{"avx2", cpu.X86.HasAVX2},
		{"asimd", cpu.ARM64.HasASIMD},
	}
	features = make([]string, 0, len(flags))
	for _, flag := range flags {
		if flag.has {
			features = append(features, flag.name)
		}
	}
	return
}

// WriteReport writes the results as an indented JSON document, creating the
// parent directories of path.
func WriteReport(path string, results []Result) (err error) {
	report := NewReport(results, time.Now())
	p, encodeErr := json.MarshalIndent(report, "", "  ")
	if encodeErr != nil {
		err = errors.Join(errors.New("bench: write report failed"), encodeErr)
		return
	}
	if dir := filepath.Dir(path); dir != "." {
		if mdErr := os.MkdirAll(dir, 0755); mdErr != nil {
			err = errors.Join(errors.New("bench: write report failed"), fmt.Errorf("create %s failed", dir), mdErr)
			return
		}
	}
	if writeErr := os.WriteFile(path, append(p, '\n'), 0644); writeErr != nil {
		err = errors.Join(errors.New("bench: write report failed"), writeErr)
		return
	}
	return
}
