// Package train computes worker, CPU and GPU counts for training jobs.
//
// On a SLURM cluster the allocation is read from the job scheduler via
// squeue; elsewhere the local machine's resources are used. Results are
// best-effort: any scheduler or driver failure falls back to local
// detection rather than erroring.
package train

import (
	"context"
	"math/rand"
	"os"
	"regexp"
	"runtime"
	"strconv"
	"strings"

	"git.home.luguber.info/inful/pydevkit/internal/paths"
	"git.home.luguber.info/inful/pydevkit/internal/shell"
)

// slurmJobEnv is the environment variable carrying the current job id.
const slurmJobEnv = "SLURM_JOB_ID"

// trailingInt extracts the trailing integer from a squeue gres column
// (e.g. "gres:gpu:4").
var trailingInt = regexp.MustCompile(`(\d+)\s*$`)

// CountCPUs returns the number of CPUs available to this process, reading
// the SLURM allocation when a job id is known. jobID "" reads SLURM_JOB_ID.
func CountCPUs(ctx context.Context, r shell.Runner, jobID string) int {
	if jobID == "" {
		jobID = os.Getenv(slurmJobEnv)
	}
	if jobID != "" {
		if out, err := squeueColumn(ctx, r, jobID, "%c"); err == nil {
			if n, err := strconv.Atoi(out); err == nil {
				return n
			}
		}
	}
	return runtime.NumCPU()
}

// CountGPUs returns the number of GPUs available to this process, reading
// the SLURM allocation when a job id is known and falling back to local
// driver detection. Returns 0 when no GPU is available.
func CountGPUs(ctx context.Context, r shell.Runner, jobID string) int {
	if jobID == "" {
		jobID = os.Getenv(slurmJobEnv)
	}
	if jobID != "" {
		if out, err := squeueColumn(ctx, r, jobID, "%b"); err == nil {
			if m := trailingInt.FindStringSubmatch(out); m != nil {
				n, _ := strconv.Atoi(m[1])
				return n
			}
			return 0
		}
	}
	return localGPUs(ctx, r)
}

// NumWorkers derives a dataloader worker count from the available CPUs and
// GPUs: all CPUs but one when no GPU is present, otherwise CPUs per GPU.
func NumWorkers(ctx context.Context, r shell.Runner, jobID string) int {
	cpus := CountCPUs(ctx, r, jobID)
	gpus := CountGPUs(ctx, r, jobID)
	if gpus == 0 {
		return cpus - 1
	}
	return cpus / gpus
}

// SlurmTmpdir returns the job-local scratch directory, or "" when not
// running under SLURM. The directory is not guaranteed to exist.
func SlurmTmpdir(jobID string) string {
	if jobID == "" {
		jobID = os.Getenv(slurmJobEnv)
	}
	if jobID == "" {
		return ""
	}
	resolved, err := paths.Resolve("/Tmp/slurm." + jobID + ".0")
	if err != nil {
		return ""
	}
	return resolved
}

// Seeded returns a deterministically seeded random source for reproducible
// training runs.
func Seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// squeueColumn returns the second line (first data row) of a single-column
// squeue query for the job.
func squeueColumn(ctx context.Context, r shell.Runner, jobID, format string) (string, error) {
	out, err := shell.Output(ctx, r, "", "squeue", "--job", jobID, "-o", format)
	if err != nil {
		return "", err
	}
	lines := strings.Split(out, "\n")
	if len(lines) < 2 {
		return "", &shell.ExitError{Name: "squeue", ExitCode: 0, Stderr: "missing data row"}
	}
	return strings.TrimSpace(lines[1]), nil
}

// localGPUs counts GPUs via the nvidia driver tooling; 0 when unavailable.
func localGPUs(ctx context.Context, r shell.Runner) int {
	out, err := shell.Output(ctx, r, "", "nvidia-smi", "-L")
	if err != nil {
		return 0
	}
	count := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "GPU ") {
			count++
		}
	}
	return count
}
