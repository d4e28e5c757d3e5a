package collect

import "fmt"

// prrNodeSize and saRecordSize approximate one slice element's memory
// footprint (an int plus either a NodeState byte or a float64),
// rounded up to a machine word for alignment.
const (
	prrNodeSize  = 16
	saRecordSize = 16
)

// formatBytes renders a byte count in the nearest binary unit.
func formatBytes(bytes int64) string {
	if bytes < 1024 {
		return fmt.Sprintf("%d bytes", bytes)
	}
	units := []string{"KiB", "MiB", "GiB", "TiB"}
	value := float64(bytes)
	unit := 0
	for value >= 1024 && unit < len(units)-1 {
		value /= 1024
		unit++
	}
	return fmt.Sprintf("%.3f %s", value, units[unit])
}
