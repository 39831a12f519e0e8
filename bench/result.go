package bench

import "github.com/aacfactory/afseed/seed"

type Timing struct {
	TotalTimeMs           float64 `json:"total_time_ms"`
	EncryptionTimeMs      float64 `json:"encryption_time_ms"`
	DecryptionTimeMs      float64 `json:"decryption_time_ms"`
	EncryptionSpeedOpsSec float64 `json:"encryption_speed_ops_sec"`
	DecryptionSpeedOpsSec float64 `json:"decryption_speed_ops_sec"`
}

type Throughput struct {
	EncryptionMbps float64 `json:"encryption_mbps"`
	DecryptionMbps float64 `json:"decryption_mbps"`
	TotalMbps      float64 `json:"total_mbps"`
}

type Memory struct {
	UsageBytes    uint64  `json:"usage_bytes"`
	UsageMB       float64 `json:"usage_mb"`
	UsageKB       float64 `json:"usage_kb"`
	BytesPerBlock float64 `json:"bytes_per_block"`
	Estimated     bool    `json:"estimated"`
}

// Result is the outcome of the kept trial of one sample size.
type Result struct {
	ID              int        `json:"id"`
	Algorithm       string     `json:"algorithm"`
	Dataset         string     `json:"dataset"`
	Mode            Mode       `json:"mode"`
	Workers         int        `json:"workers"`
	BlocksProcessed int        `json:"blocks_processed"`
	DataSizeBytes   int        `json:"data_size_bytes"`
	DataSizeMB      float64    `json:"data_size_mb"`
	Timing          Timing     `json:"timing"`
	Throughput      Throughput `json:"throughput"`
	Memory          Memory     `json:"memory"`
}

const mb = 1024.0 * 1024.0

// complete derives the rates and the memory views from the raw measures.
func (r *Result) complete() {
	blocks := float64(r.BlocksProcessed)
	bits := float64(r.DataSizeBytes) * 8
	r.DataSizeMB = float64(r.DataSizeBytes) / mb
	r.Timing.TotalTimeMs = r.Timing.EncryptionTimeMs + r.Timing.DecryptionTimeMs
	r.Timing.EncryptionSpeedOpsSec = perSecond(blocks, r.Timing.EncryptionTimeMs)
	r.Timing.DecryptionSpeedOpsSec = perSecond(blocks, r.Timing.DecryptionTimeMs)
	r.Throughput.EncryptionMbps = perSecond(bits, r.Timing.EncryptionTimeMs) / 1e6
	r.Throughput.DecryptionMbps = perSecond(bits, r.Timing.DecryptionTimeMs) / 1e6
	r.Throughput.TotalMbps = perSecond(bits, r.Timing.TotalTimeMs) / 1e6
	r.Memory.UsageMB = float64(r.Memory.UsageBytes) / mb
	r.Memory.UsageKB = float64(r.Memory.UsageBytes) / 1024
	if r.BlocksProcessed > 0 {
		r.Memory.BytesPerBlock = float64(r.Memory.UsageBytes) / blocks
	}
}

func perSecond(n float64, ms float64) float64 {
	if ms <= 0 {
		return 0
	}
	return n * 1000 / ms
}

// memoryDelta turns three resident set samples into the reported usage. The
// usage never drops under the size of the plaintext and ciphertext buffers,
// and an estimate replaces failed samples.
func memoryDelta(blocks int, samples ...uint64) (usage uint64, estimated bool) {
	floor := uint64(blocks) * seed.BlockSize * 2
	lo, hi := uint64(0), uint64(0)
	for i, s := range samples {
		if s == 0 {
			return floor + seed.KeySize + 2*seed.Rounds*4 + 1<<20, true
		}
		if i == 0 || s < lo {
			lo = s
		}
		if s > hi {
			hi = s
		}
	}
	usage = hi - lo
	if usage < floor {
		usage = floor
	}
	return
}
